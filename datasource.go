package reshape

// RowSource is a source of schema-conformant Rows to be transformed by a
// Process. Reshape does not parse raw text formats itself; sources adapt
// external data (in-memory tuples, delimited text, JSON lines) into typed
// Rows. A RowSource which enumerates an ordered underlying collection must
// yield its Rows in that order.
type RowSource interface {
	// Schema returns the Schema of the Rows this source produces
	Schema() Schema
	// Next returns the next Row, or an errors.NoMoreRowsError once the
	// source is exhausted
	Next() (Row, error)
}
