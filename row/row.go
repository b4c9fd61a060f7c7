// Package row provides the built-in Row implementation: an ordered slice
// of typed cell values bound to the Schema describing them.
package row

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
)

type rowImpl struct {
	values []reshape.Value
	schema reshape.Schema
}

// Create builds a Row from ordered cell values. The cell count must match
// the schema; full per-column admissibility checking is performed by
// Schema.ValidateRow, which sources and the executor apply at their
// boundaries.
func Create(schema reshape.Schema, values ...reshape.Value) (reshape.Row, error) {
	if len(values) != schema.NumColumns() {
		return nil, errors.IncompatibleRowError{Expected: schema.NumColumns(), Actual: len(values)}
	}
	return &rowImpl{values: values, schema: schema}, nil
}

// Schema returns the Schema this Row conforms to
func (r *rowImpl) Schema() reshape.Schema {
	return r.schema
}

// NumColumns returns the number of cells in this Row
func (r *rowImpl) NumColumns() int {
	return len(r.values)
}

// Values returns a copy of this Row's cell values in column order
func (r *rowImpl) Values() []reshape.Value {
	values := make([]reshape.Value, len(r.values))
	copy(values, r.values)
	return values
}

// Value returns the cell value at the given column index
func (r *rowImpl) Value(idx int) reshape.Value {
	return r.values[idx]
}

// Get returns the cell value for the named column
func (r *rowImpl) Get(colName string) (reshape.Value, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return r.values[col.Index()], nil
}

// Set returns a new Row with the named column's cell replaced by v. The
// receiver is unchanged.
func (r *rowImpl) Set(colName string, v reshape.Value) (reshape.Row, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	if err := col.Type().Accepts(v); err != nil {
		return nil, errors.ValidationError{Col: colName, Err: err}
	}
	values := r.Values()
	values[col.Index()] = v
	return &rowImpl{values: values, schema: r.schema}, nil
}

// Fingerprint returns a hash of this Row's rendered cell values, usable
// for set-equality comparison of unordered result collections
func (r *rowImpl) Fingerprint() uint64 {
	digest := xxhash.New()
	for _, v := range r.values {
		digest.WriteString(v.Render())
		digest.Write([]byte{0x1f}) // unit separator, so ("ab","c") != ("a","bc")
	}
	return digest.Sum64()
}

// ToString returns a string representation of this Row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col reshape.Column) error {
		fmt.Fprintf(&res, "\"%s\": %s,", name, col.Type().ToString(r.values[col.Index()]))
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}
