package reshape

// RowOutcome is the result of applying a TransformStep (or a whole
// Process) to a single Row: either a Row to keep, or a decision to drop
// the Row from the output.
type RowOutcome struct {
	Row     Row
	Dropped bool
}

// Keep wraps a Row in a RowOutcome which retains it
func Keep(row Row) RowOutcome {
	return RowOutcome{Row: row}
}

// Drop returns a RowOutcome which discards the Row
func Drop() RowOutcome {
	return RowOutcome{Dropped: true}
}

// TransformStep is the unit of pipeline composition. A step declares its
// effect twice, through two pure and independently testable operations:
// MapSchema simulates the step against a Schema alone, and ApplyToRow
// performs the same transformation on one Row. MapSchema runs exactly once
// per step, at Process construction, before any Row is processed; a step
// must never need row data to decide its schema effect.
type TransformStep interface {
	// Name returns a short name for this step, used in error diagnostics
	Name() string
	// MapSchema returns the Schema induced by applying this step to rows
	// shaped by inputSchema. Steps which do not change the row shape
	// return inputSchema unchanged.
	MapSchema(inputSchema Schema) (Schema, error)
	// ApplyToRow transforms one Row shaped by inputSchema into a kept Row
	// shaped by outputSchema, or a decision to drop it. outputSchema is
	// the step's own MapSchema result, precomputed when the Process was
	// built, so no schema work is repeated per row. A step must not
	// mutate row, retain a reference to it, or carry state across calls.
	ApplyToRow(inputSchema Schema, outputSchema Schema, row Row) (RowOutcome, error)
}
