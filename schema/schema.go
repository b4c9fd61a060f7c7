package schema

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
)

// column describes one named, typed position within a schema.
type column struct {
	name    string
	idx     int
	colType reshape.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() reshape.Column {
	return &column{c.name, c.idx, c.colType.Clone()}
}

// Name returns the name of this Column within a Schema
func (c *column) Name() string {
	return c.name
}

// Index returns the position of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() reshape.ColumnType {
	return c.colType
}

// Schema is an ordered, named, typed description of the shape of a Row.
// Columns are kept in index order; a name lookup map is maintained
// alongside. Every transformation copies into a fresh schema.
type schema struct {
	columns []*column
	byName  map[string]*column
}

// CreateSchema is a factory for Schemas
func CreateSchema() reshape.Schema {
	return &schema{
		columns: []*column{},
		byName:  make(map[string]*column),
	}
}

// Build constructs a Schema from ordered (name, type) column definitions,
// failing on duplicate or empty names and inconsistent type configurations.
// The resulting Schema must contain at least one column.
func Build(defs ...Def) (reshape.Schema, error) {
	s := CreateSchema()
	for _, def := range defs {
		var err error
		s, err = s.CreateColumn(def.Name, def.Type)
		if err != nil {
			return nil, err
		}
	}
	if s.NumColumns() == 0 {
		return nil, errors.EmptySchemaError{}
	}
	return s, nil
}

// Def is one column definition for Build
type Def struct {
	Name string
	Type reshape.ColumnType
}

// Equals returns nil iff this and another Schema have the same column
// names, kinds and order
func (s *schema) Equals(otherSchema reshape.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return otherSchema.ForEachColumn(func(name string, otherCol reshape.Column) error {
		col, err := s.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if col.Type().Kind() != otherCol.Type().Kind() {
			return fmt.Errorf("Column %s kinds do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() reshape.Schema {
	clone := &schema{
		columns: make([]*column, 0, len(s.columns)),
		byName:  make(map[string]*column, len(s.columns)),
	}
	for _, col := range s.columns {
		c := &column{col.name, col.idx, col.colType.Clone()}
		clone.columns = append(clone.columns, c)
		clone.byName[c.name] = c
	}
	return clone
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.columns)
}

// GetColumn returns the Column with the given name
func (s *schema) GetColumn(colName string) (reshape.Column, error) {
	col, ok := s.byName[colName]
	if !ok {
		return nil, errors.UnknownColumnError{Name: colName}
	}
	return col, nil
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.byName[colName]
	return ok
}

// CreateColumn returns a new Schema with a column of the given name and
// type appended
func (s *schema) CreateColumn(colName string, columnType reshape.ColumnType) (reshape.Schema, error) {
	if colName == "" {
		return nil, fmt.Errorf("column name must not be empty")
	}
	if s.HasColumn(colName) {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	if err := columnType.Check(); err != nil {
		return nil, errors.InvalidColumnTypeError{Name: colName, Err: err}
	}
	clone := s.Clone().(*schema)
	col := &column{colName, len(clone.columns), columnType.Clone()}
	clone.columns = append(clone.columns, col)
	clone.byName[colName] = col
	return clone, nil
}

// RenameColumn returns a new Schema with one column renamed, preserving
// its position and type
func (s *schema) RenameColumn(oldName string, newName string) (reshape.Schema, error) {
	if !s.HasColumn(oldName) {
		return nil, errors.UnknownColumnError{Name: oldName}
	}
	if newName == "" {
		return nil, fmt.Errorf("column name must not be empty")
	}
	if newName != oldName && s.HasColumn(newName) {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	clone := s.Clone().(*schema)
	col := clone.byName[oldName]
	delete(clone.byName, oldName)
	col.name = newName
	clone.byName[newName] = col
	return clone, nil
}

// ReplaceColumnType returns a new Schema with the named column's type
// replaced, preserving its name and position
func (s *schema) ReplaceColumnType(colName string, columnType reshape.ColumnType) (reshape.Schema, error) {
	if !s.HasColumn(colName) {
		return nil, errors.UnknownColumnError{Name: colName}
	}
	if err := columnType.Check(); err != nil {
		return nil, errors.InvalidColumnTypeError{Name: colName, Err: err}
	}
	clone := s.Clone().(*schema)
	clone.byName[colName].colType = columnType.Clone()
	return clone, nil
}

// RemoveColumns returns a new Schema without the named columns, preserving
// the relative order of the remainder
func (s *schema) RemoveColumns(colNames ...string) (reshape.Schema, error) {
	doomed := make(map[string]bool, len(colNames))
	for _, colName := range colNames {
		if !s.HasColumn(colName) {
			return nil, errors.UnknownColumnError{Name: colName}
		}
		doomed[colName] = true
	}
	if len(s.columns)-len(doomed) == 0 {
		return nil, errors.EmptySchemaError{}
	}
	clone := &schema{
		columns: make([]*column, 0, len(s.columns)-len(doomed)),
		byName:  make(map[string]*column),
	}
	for _, col := range s.columns {
		if doomed[col.name] {
			continue
		}
		c := &column{col.name, len(clone.columns), col.colType.Clone()}
		clone.columns = append(clone.columns, c)
		clone.byName[c.name] = c
	}
	return clone, nil
}

// ColumnNames returns the names in this Schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.name
	}
	return names
}

// ColumnTypes returns the types in this Schema, in index order
func (s *schema) ColumnTypes() []reshape.ColumnType {
	types := make([]reshape.ColumnType, len(s.columns))
	for i, col := range s.columns {
		types[i] = col.colType
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema in index order
func (s *schema) ForEachColumn(fn func(name string, col reshape.Column) error) error {
	for _, col := range s.columns {
		if err := fn(col.name, col); err != nil {
			return err
		}
	}
	return nil
}

// CheckRow checks that row has this Schema's width and kind-compatible
// cells, without enforcing per-column value constraints. Every violating
// column is reported rather than stopping at the first.
func (s *schema) CheckRow(row reshape.Row) error {
	if row.NumColumns() != len(s.columns) {
		return errors.IncompatibleRowError{Expected: len(s.columns), Actual: row.NumColumns()}
	}
	var result *multierror.Error
	for _, col := range s.columns {
		if err := col.colType.AcceptsKind(row.Value(col.idx)); err != nil {
			result = multierror.Append(result, errors.ValidationError{Col: col.name, Err: err})
		}
	}
	return result.ErrorOrNil()
}

// ValidateRow checks that row fully conforms to this Schema, reporting
// every violating column rather than stopping at the first
func (s *schema) ValidateRow(row reshape.Row) error {
	if row.NumColumns() != len(s.columns) {
		return errors.IncompatibleRowError{Expected: len(s.columns), Actual: row.NumColumns()}
	}
	var result *multierror.Error
	for _, col := range s.columns {
		if err := col.colType.Accepts(row.Value(col.idx)); err != nil {
			result = multierror.Append(result, errors.ValidationError{Col: col.name, Err: err})
		}
	}
	return result.ErrorOrNil()
}
