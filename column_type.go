package reshape

// ColumnType is an interface which is implemented to define a supported
// column kind, together with any per-kind constraints (numeric ranges,
// categorical value sets). Reshape provides the closed set of built-in
// types in the columntype package.
//
// Admissibility is layered: AcceptsKind answers whether a cell value could
// ever inhabit a column of this type, while Accepts additionally enforces
// the type's configured value constraints. Pipelines admit rows on kind
// alone, so constraint-violating cells can still be rewritten by a step.
type ColumnType interface {
	// Kind returns the Kind of cell value this column holds
	Kind() Kind
	// Check verifies that the type's own configuration is internally consistent
	Check() error
	// AcceptsKind returns nil iff v's kind can inhabit this column. For
	// float columns this includes rejecting non-finite values, which no
	// range constraint could repair.
	AcceptsKind(v Value) error
	// Accepts returns nil iff v is a fully admissible cell value for this
	// column, under both its kind and its configured constraints
	Accepts(v Value) error
	// ToString produces a string representation of a value of this type
	ToString(v Value) string
	// Clone returns a copy of this ColumnType
	Clone() ColumnType
}
