package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/columntype"
	"github.com/go-reshape/reshape/condition"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/operations/transform"
	"github.com/go-reshape/reshape/row"
	"github.com/go-reshape/reshape/schema"
)

const testTimeLayout = "2006-01-02 15:04:05.000"

func createTransactionSchema(t *testing.T) reshape.Schema {
	s, err := schema.Build(
		schema.Def{Name: "DateTimeString", Type: &columntype.StringColumnType{}},
		schema.Def{Name: "CustomerID", Type: &columntype.StringColumnType{}},
		schema.Def{Name: "MerchantID", Type: &columntype.StringColumnType{}},
		schema.Def{Name: "NumItems", Type: &columntype.IntegerColumnType{}},
		schema.Def{Name: "Country", Type: &columntype.CategoricalColumnType{Values: []string{"USA", "CAN", "FR", "MX"}}},
		schema.Def{Name: "Amount", Type: &columntype.FloatColumnType{Min: columntype.Bound(0)}},
		schema.Def{Name: "Label", Type: &columntype.CategoricalColumnType{Values: []string{"Fraud", "Legit"}}},
	)
	require.Nil(t, err)
	return s
}

func createTransactionProcess(t *testing.T, s reshape.Schema) *Process {
	proc, err := Build(s,
		transform.RemoveColumns("CustomerID", "MerchantID"),
		transform.DropWhere(condition.NotIn("Country", "USA", "CAN")),
		transform.ReplaceValueWhere("Amount", reshape.FloatValue(0), condition.LessThan("Amount", reshape.FloatValue(0))),
		transform.ParseTime("DateTimeString", testTimeLayout, time.UTC),
		transform.RenameColumn("DateTimeString", "DateTime"),
		transform.DeriveFromTime("DateTime", time.UTC, transform.Derivation{Name: "HourOfDay", Field: transform.HourOfDay}),
		transform.RemoveColumns("DateTime"),
	)
	require.Nil(t, err)
	return proc
}

// the final schema is exactly the fold of every step's schema
// transformation over the input schema
func TestProcessFinalSchema(t *testing.T) {
	s := createTransactionSchema(t)
	proc := createTransactionProcess(t, s)
	final := proc.FinalSchema()
	require.Equal(t, []string{"NumItems", "Country", "Amount", "Label", "HourOfDay"}, final.ColumnNames())
	kinds := []reshape.Kind{}
	for _, ct := range final.ColumnTypes() {
		kinds = append(kinds, ct.Kind())
	}
	require.Equal(t, []reshape.Kind{
		reshape.KindInteger,
		reshape.KindCategorical,
		reshape.KindFloat,
		reshape.KindCategorical,
		reshape.KindInteger,
	}, kinds)
	// folding manually step by step produces the same schema
	manual := s
	var err error
	manual, err = transform.RemoveColumns("CustomerID", "MerchantID").MapSchema(manual)
	require.Nil(t, err)
	manual, err = transform.ParseTime("DateTimeString", testTimeLayout, time.UTC).MapSchema(manual)
	require.Nil(t, err)
	manual, err = transform.RenameColumn("DateTimeString", "DateTime").MapSchema(manual)
	require.Nil(t, err)
	manual, err = transform.DeriveFromTime("DateTime", time.UTC, transform.Derivation{Name: "HourOfDay", Field: transform.HourOfDay}).MapSchema(manual)
	require.Nil(t, err)
	manual, err = transform.RemoveColumns("DateTime").MapSchema(manual)
	require.Nil(t, err)
	require.Nil(t, final.Equals(manual))
}

func TestProcessColumnCountDelta(t *testing.T) {
	s := createTransactionSchema(t)
	// removing 2 columns and deriving 1 shrinks a 7-column schema to 6
	proc, err := Build(s,
		transform.RemoveColumns("CustomerID", "MerchantID"),
		transform.ParseTime("DateTimeString", testTimeLayout, time.UTC),
		transform.DeriveFromTime("DateTimeString", time.UTC, transform.Derivation{Name: "HourOfDay", Field: transform.HourOfDay}),
	)
	require.Nil(t, err)
	require.Equal(t, 6, proc.FinalSchema().NumColumns())
}

// referencing a column removed by an earlier step fails construction with
// the offending step's index
func TestProcessBuildUnknownColumn(t *testing.T) {
	s := createTransactionSchema(t)
	_, err := Build(s,
		transform.RemoveColumns("CustomerID"),
		transform.RemoveColumns("MerchantID"),
		transform.RenameColumn("CustomerID", "Customer"),
	)
	require.NotNil(t, err)
	stepErr, ok := err.(errors.StepError)
	require.True(t, ok)
	require.Equal(t, 2, stepErr.Index)
	require.IsType(t, errors.UnknownColumnError{}, stepErr.Err)
}

func TestBuilderAddFailureLeavesBuilderUsable(t *testing.T) {
	s := createTransactionSchema(t)
	b := NewBuilder(s)
	require.Nil(t, b.Add(transform.RemoveColumns("CustomerID")))
	err := b.Add(transform.RemoveColumns("CustomerID"))
	require.NotNil(t, err)
	stepErr, ok := err.(errors.StepError)
	require.True(t, ok)
	require.Equal(t, 1, stepErr.Index)
	// the failed step was not recorded
	require.Nil(t, b.Add(transform.RemoveColumns("MerchantID")))
	proc, err := b.Build()
	require.Nil(t, err)
	require.Equal(t, 2, proc.NumSteps())
	require.Equal(t, 5, proc.FinalSchema().NumColumns())
}

func TestProcessApplyToRowDropsAndRewrites(t *testing.T) {
	s := createTransactionSchema(t)
	proc := createTransactionProcess(t, s)

	fr, err := row.Create(s,
		reshape.StringValue("2016-01-01 17:50:00.000"),
		reshape.StringValue("C1"),
		reshape.StringValue("M1"),
		reshape.IntValue(3),
		reshape.StringValue("FR"),
		reshape.FloatValue(10.0),
		reshape.StringValue("Legit"),
	)
	require.Nil(t, err)
	outcome, err := proc.ApplyToRow(fr)
	require.Nil(t, err)
	require.True(t, outcome.Dropped)

	usa, err := row.Create(s,
		reshape.StringValue("2016-01-01 17:50:00.000"),
		reshape.StringValue("C1"),
		reshape.StringValue("M1"),
		reshape.IntValue(3),
		reshape.StringValue("USA"),
		reshape.FloatValue(-5.0),
		reshape.StringValue("Legit"),
	)
	require.Nil(t, err)
	outcome, err = proc.ApplyToRow(usa)
	require.Nil(t, err)
	require.False(t, outcome.Dropped)
	amount, err := outcome.Row.Get("Amount")
	require.Nil(t, err)
	require.True(t, amount.Equals(reshape.FloatValue(0)))
	hour, err := outcome.Row.Get("HourOfDay")
	require.Nil(t, err)
	require.True(t, hour.Equals(reshape.IntValue(17)))
	require.Nil(t, proc.FinalSchema().ValidateRow(outcome.Row))
}

func TestProcessApplyToRowWrapsStepErrors(t *testing.T) {
	s := createTransactionSchema(t)
	proc := createTransactionProcess(t, s)
	bad, err := row.Create(s,
		reshape.StringValue("not a timestamp"),
		reshape.StringValue("C1"),
		reshape.StringValue("M1"),
		reshape.IntValue(3),
		reshape.StringValue("USA"),
		reshape.FloatValue(10.0),
		reshape.StringValue("Legit"),
	)
	require.Nil(t, err)
	_, err = proc.ApplyToRow(bad)
	require.NotNil(t, err)
	stepErr, ok := err.(errors.StepError)
	require.True(t, ok)
	require.Equal(t, 3, stepErr.Index)
	require.Equal(t, "parse_time", stepErr.Name)
	require.IsType(t, errors.TimeParseError{}, stepErr.Err)
}

func TestProcessIsReusable(t *testing.T) {
	s := createTransactionSchema(t)
	proc := createTransactionProcess(t, s)
	r, err := row.Create(s,
		reshape.StringValue("2016-01-01 17:50:00.000"),
		reshape.StringValue("C1"),
		reshape.StringValue("M1"),
		reshape.IntValue(3),
		reshape.StringValue("USA"),
		reshape.FloatValue(10.0),
		reshape.StringValue("Legit"),
	)
	require.Nil(t, err)
	first, err := proc.ApplyToRow(r)
	require.Nil(t, err)
	second, err := proc.ApplyToRow(r)
	require.Nil(t, err)
	require.Equal(t, first.Row.Fingerprint(), second.Row.Fingerprint())
}
