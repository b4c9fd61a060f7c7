package transform

import (
	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/condition"
)

type dropWhereStep struct {
	cond condition.Condition
}

// DropWhere filters Rows out of the collection. The wrapped condition
// describes what to exclude: a Row is dropped when the condition holds,
// and kept unchanged otherwise.
func DropWhere(cond condition.Condition) reshape.TransformStep {
	return &dropWhereStep{cond: cond}
}

// Name returns a short name for this step
func (s *dropWhereStep) Name() string {
	return "drop_where"
}

// MapSchema leaves the Schema unchanged; filtering is a row-level decision.
// The condition's target column and operator applicability are still
// checked here, so an invalid filter fails at Process construction.
func (s *dropWhereStep) MapSchema(inputSchema reshape.Schema) (reshape.Schema, error) {
	col, err := inputSchema.GetColumn(s.cond.Col)
	if err != nil {
		return nil, err
	}
	if err := s.cond.Applicable(col.Type().Kind()); err != nil {
		return nil, err
	}
	return inputSchema, nil
}

// ApplyToRow drops the Row when the condition holds and keeps it unchanged otherwise
func (s *dropWhereStep) ApplyToRow(inputSchema reshape.Schema, outputSchema reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	matched, err := s.cond.Evaluate(inputSchema, r)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	if matched {
		return reshape.Drop(), nil
	}
	return reshape.Keep(r), nil
}
