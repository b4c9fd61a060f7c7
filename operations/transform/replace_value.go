package transform

import (
	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/condition"
	"github.com/go-reshape/reshape/errors"
)

type replaceValueStep struct {
	colName     string
	replacement reshape.Value
	cond        condition.Condition
}

// ReplaceValueWhere rewrites the named column's cell to replacement in
// every Row for which the condition holds. Rows where the condition is
// false pass through untouched, and the column's kind never changes.
func ReplaceValueWhere(colName string, replacement reshape.Value, cond condition.Condition) reshape.TransformStep {
	return &replaceValueStep{colName: colName, replacement: replacement, cond: cond}
}

// Name returns a short name for this step
func (s *replaceValueStep) Name() string {
	return "replace_value"
}

// MapSchema leaves the Schema unchanged, after checking that the target
// column exists, the replacement value is admissible for it, and the
// condition applies to its own target column
func (s *replaceValueStep) MapSchema(inputSchema reshape.Schema) (reshape.Schema, error) {
	col, err := inputSchema.GetColumn(s.colName)
	if err != nil {
		return nil, err
	}
	if err := col.Type().Accepts(s.replacement); err != nil {
		return nil, errors.ValidationError{Col: s.colName, Err: err}
	}
	condCol, err := inputSchema.GetColumn(s.cond.Col)
	if err != nil {
		return nil, err
	}
	if err := s.cond.Applicable(condCol.Type().Kind()); err != nil {
		return nil, err
	}
	return inputSchema, nil
}

// ApplyToRow replaces the target cell when the condition holds, and
// returns the Row unchanged otherwise
func (s *replaceValueStep) ApplyToRow(inputSchema reshape.Schema, outputSchema reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	matched, err := s.cond.Evaluate(inputSchema, r)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	if !matched {
		return reshape.Keep(r), nil
	}
	newRow, err := r.Set(s.colName, s.replacement)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	return reshape.Keep(newRow), nil
}
