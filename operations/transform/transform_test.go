package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/columntype"
	"github.com/go-reshape/reshape/row"
	"github.com/go-reshape/reshape/schema"
)

func createTestSchema(t *testing.T) reshape.Schema {
	s, err := schema.Build(
		schema.Def{Name: "when", Type: &columntype.StringColumnType{}},
		schema.Def{Name: "country", Type: &columntype.CategoricalColumnType{Values: []string{"USA", "CAN", "FR", "MX"}}},
		schema.Def{Name: "amount", Type: &columntype.FloatColumnType{Min: columntype.Bound(0)}},
	)
	require.Nil(t, err)
	return s
}

func createTestRow(t *testing.T, s reshape.Schema, values ...reshape.Value) reshape.Row {
	r, err := row.Create(s, values...)
	require.Nil(t, err)
	return r
}

// applyStep binds a step to its schemas the way a Process does, then
// applies it to one row
func applyStep(t *testing.T, step reshape.TransformStep, s reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	out, err := step.MapSchema(s)
	require.Nil(t, err)
	return step.ApplyToRow(s, out, r)
}
