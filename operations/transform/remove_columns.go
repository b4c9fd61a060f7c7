package transform

import (
	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/row"
)

type removeColumnsStep struct {
	colNames []string
}

// RemoveColumns removes existing columns from the Schema and from every Row
func RemoveColumns(colNames ...string) reshape.TransformStep {
	return &removeColumnsStep{colNames: colNames}
}

// Name returns a short name for this step
func (s *removeColumnsStep) Name() string {
	return "remove_columns"
}

// MapSchema drops the named columns, failing if any is absent
func (s *removeColumnsStep) MapSchema(inputSchema reshape.Schema) (reshape.Schema, error) {
	return inputSchema.RemoveColumns(s.colNames...)
}

// ApplyToRow rebuilds the Row without the removed columns' cells
func (s *removeColumnsStep) ApplyToRow(inputSchema reshape.Schema, outputSchema reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	doomed := make(map[string]bool, len(s.colNames))
	for _, colName := range s.colNames {
		doomed[colName] = true
	}
	values := make([]reshape.Value, 0, outputSchema.NumColumns())
	inputSchema.ForEachColumn(func(name string, col reshape.Column) error {
		if !doomed[name] {
			values = append(values, r.Value(col.Index()))
		}
		return nil
	})
	newRow, err := row.Create(outputSchema, values...)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	return reshape.Keep(newRow), nil
}
