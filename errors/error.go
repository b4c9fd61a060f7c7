package errors

import (
	"fmt"
)

// UnknownColumnError occurs when a step, condition or lookup references a
// column name which is absent from the Schema
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a column is created or renamed to a name
// which already exists in the Schema
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// InvalidColumnTypeError occurs when a ColumnType's own configuration is
// internally inconsistent (empty categorical value set, numeric min > max)
type InvalidColumnTypeError struct {
	Name string
	Err  error
}

// Error returns a textual representation of this InvalidColumnTypeError
func (e InvalidColumnTypeError) Error() string {
	return fmt.Sprintf("Column %s has an invalid type configuration: %v", e.Name, e.Err)
}

// Unwrap returns the underlying configuration error
func (e InvalidColumnTypeError) Unwrap() error {
	return e.Err
}

// EmptySchemaError occurs when an operation would produce or use a Schema
// with no columns
type EmptySchemaError struct{}

// Error returns a textual representation of this EmptySchemaError
func (e EmptySchemaError) Error() string {
	return "Schema must contain at least one column"
}

// IncompatibleRowError occurs when a Row's column count does not match an
// expected Schema
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// ValidationError occurs when a cell value violates its column's type or
// constraints at runtime
type ValidationError struct {
	Col string
	Err error
}

// Error returns a textual representation of this ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("Value for column %s is invalid: %v", e.Col, e.Err)
}

// Unwrap returns the underlying admissibility error
func (e ValidationError) Unwrap() error {
	return e.Err
}

// TypeMismatchError occurs when a condition operator is inapplicable to the
// target column's kind
type TypeMismatchError struct {
	Col  string
	Op   string
	Kind string
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Operator %s is not applicable to column %s of kind %s", e.Op, e.Col, e.Kind)
}

// TimeParseError occurs when a string cell does not match the time layout
// configured on a ParseTime step
type TimeParseError struct {
	Col    string
	Value  string
	Layout string
	Err    error
}

// Error returns a textual representation of this TimeParseError
func (e TimeParseError) Error() string {
	return fmt.Sprintf("Value %q in column %s does not match time layout %q: %v", e.Value, e.Col, e.Layout, e.Err)
}

// Unwrap returns the underlying parse error
func (e TimeParseError) Unwrap() error {
	return e.Err
}

// StepError wraps a failure with the index and name of the pipeline step
// which produced it
type StepError struct {
	Index int
	Name  string
	Err   error
}

// Error returns a textual representation of this StepError
func (e StepError) Error() string {
	return fmt.Sprintf("Step %d (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying step failure
func (e StepError) Unwrap() error {
	return e.Err
}

// RowError wraps a failure with the position of the input Row which
// produced it
type RowError struct {
	Position int
	Err      error
}

// Error returns a textual representation of this RowError
func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %v", e.Position, e.Err)
}

// Unwrap returns the underlying row failure
func (e RowError) Unwrap() error {
	return e.Err
}

// NoMoreRowsError occurs when a RowSource has been exhausted
type NoMoreRowsError struct{}

// Error returns a textual representation of this NoMoreRowsError
func (e NoMoreRowsError) Error() string {
	return "No more rows"
}
