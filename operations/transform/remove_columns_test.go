package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
)

func TestRemoveColumnsMapSchema(t *testing.T) {
	s := createTestSchema(t)
	out, err := RemoveColumns("when", "amount").MapSchema(s)
	require.Nil(t, err)
	require.Equal(t, []string{"country"}, out.ColumnNames())
}

func TestRemoveColumnsMapSchemaUnknown(t *testing.T) {
	s := createTestSchema(t)
	_, err := RemoveColumns("missing").MapSchema(s)
	require.IsType(t, errors.UnknownColumnError{}, err)
}

func TestRemoveColumnsApplyToRow(t *testing.T) {
	s := createTestSchema(t)
	r := createTestRow(t, s,
		reshape.StringValue("2016-01-01 17:50:00.000"),
		reshape.StringValue("USA"),
		reshape.FloatValue(10),
	)
	outcome, err := applyStep(t, RemoveColumns("when"), s, r)
	require.Nil(t, err)
	require.False(t, outcome.Dropped)
	require.Equal(t, 2, outcome.Row.NumColumns())
	v, err := outcome.Row.Get("country")
	require.Nil(t, err)
	require.True(t, v.Equals(reshape.StringValue("USA")))
	_, err = outcome.Row.Get("when")
	require.IsType(t, errors.UnknownColumnError{}, err)
}
