package reshape

// Row is a representation of a single row of columnar data, along with a
// reference to the Schema describing it. Rows are transient: TransformSteps
// never retain them across invocations, and rewriting a cell produces a
// fresh Row rather than mutating in place.
type Row interface {
	// Schema returns the Schema this Row conforms to
	Schema() Schema
	NumColumns() int
	// Values returns a copy of this Row's cell values in column order
	Values() []Value
	// Value returns the cell value at the given column index
	Value(idx int) Value
	// Get returns the cell value for the named column, or an
	// errors.UnknownColumnError if the column does not exist
	Get(colName string) (Value, error)
	// Set returns a new Row with the named column's cell replaced by v,
	// after checking v is admissible for the column's type. The receiver
	// is unchanged.
	Set(colName string, v Value) (Row, error)
	// Fingerprint returns a hash of this Row's rendered cell values,
	// usable for set-equality comparison of unordered result collections
	Fingerprint() uint64
	// ToString returns a string representation of this Row
	ToString() string
}
