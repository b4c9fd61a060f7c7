package reshape

// Schema is an ordered, named, typed description of the shape of a Row.
// Schemas are immutable: every transformation returns a new Schema and
// never alters the receiver, so a Schema captured by one step of a
// pipeline can never be changed by a later one.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	// GetColumn returns the Column with the given name, or an
	// errors.UnknownColumnError if no such column exists
	GetColumn(colName string) (col Column, err error)
	HasColumn(colName string) bool
	// CreateColumn returns a new Schema with a column of the given name and
	// type appended. It fails if the name collides, the name is empty, or
	// the column type's configuration is inconsistent.
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	// RenameColumn returns a new Schema with one column renamed, preserving
	// its position and type. It fails if oldName is absent or newName collides.
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	// ReplaceColumnType returns a new Schema with the named column's type
	// replaced, preserving its name and position. It fails if the name is
	// absent or the new type's configuration is inconsistent.
	ReplaceColumnType(colName string, columnType ColumnType) (newSchema Schema, err error)
	// RemoveColumns returns a new Schema without the named columns,
	// preserving the relative order of the remainder. It fails if any name
	// is absent or if removal would leave the Schema empty.
	RemoveColumns(colNames ...string) (newSchema Schema, err error)
	ColumnNames() []string
	ColumnTypes() []ColumnType
	// ForEachColumn iterates over the columns of this Schema in index order
	ForEachColumn(fn func(name string, col Column) error) error
	// CheckRow checks that row has this Schema's shape: matching column
	// count and, for every position, a cell whose kind can inhabit its
	// column. Per-column value constraints (numeric ranges, categorical
	// sets) are not enforced, so a constraint-violating cell can still
	// enter a pipeline and be rewritten by a step. All violations are
	// reported together.
	CheckRow(row Row) error
	// ValidateRow checks that row fully conforms to this Schema: matching
	// column count and, for every position, an admissible cell value under
	// the column's kind and constraints. All violations are reported
	// together.
	ValidateRow(row Row) error
}
