package transform

import (
	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/row"
)

type renameColumnStep struct {
	oldName string
	newName string
}

// RenameColumn renames an existing column, preserving its position, type
// and every Row's cell values
func RenameColumn(oldName string, newName string) reshape.TransformStep {
	return &renameColumnStep{oldName: oldName, newName: newName}
}

// Name returns a short name for this step
func (s *renameColumnStep) Name() string {
	return "rename_column"
}

// MapSchema renames the column, failing if oldName is absent or newName collides
func (s *renameColumnStep) MapSchema(inputSchema reshape.Schema) (reshape.Schema, error) {
	return inputSchema.RenameColumn(s.oldName, s.newName)
}

// ApplyToRow rebinds the Row to the renamed Schema; cell values are unchanged
func (s *renameColumnStep) ApplyToRow(inputSchema reshape.Schema, outputSchema reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	newRow, err := row.Create(outputSchema, r.Values()...)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	return reshape.Keep(newRow), nil
}
