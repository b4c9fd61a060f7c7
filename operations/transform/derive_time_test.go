package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/columntype"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/row"
	"github.com/go-reshape/reshape/schema"
)

func createTimeSchema(t *testing.T) reshape.Schema {
	s, err := schema.Build(
		schema.Def{Name: "datetime", Type: &columntype.TimeColumnType{}},
		schema.Def{Name: "amount", Type: &columntype.FloatColumnType{}},
	)
	require.Nil(t, err)
	return s
}

func TestDeriveFromTimeMapSchema(t *testing.T) {
	s := createTimeSchema(t)
	step := DeriveFromTime("datetime", time.UTC,
		Derivation{Name: "hour", Field: HourOfDay},
		Derivation{Name: "weekday", Field: DayOfWeek},
	)
	out, err := step.MapSchema(s)
	require.Nil(t, err)
	require.Equal(t, []string{"datetime", "amount", "hour", "weekday"}, out.ColumnNames())
	for _, name := range []string{"hour", "weekday"} {
		col, err := out.GetColumn(name)
		require.Nil(t, err)
		require.Equal(t, reshape.KindInteger, col.Type().Kind())
	}
	// the source column is untouched
	col, err := out.GetColumn("datetime")
	require.Nil(t, err)
	require.Equal(t, reshape.KindTime, col.Type().Kind())
}

func TestDeriveFromTimeMapSchemaErrors(t *testing.T) {
	s := createTimeSchema(t)
	_, err := DeriveFromTime("missing", time.UTC, Derivation{Name: "hour", Field: HourOfDay}).MapSchema(s)
	require.IsType(t, errors.UnknownColumnError{}, err)
	// source must be a Time column
	_, err = DeriveFromTime("amount", time.UTC, Derivation{Name: "hour", Field: HourOfDay}).MapSchema(s)
	require.IsType(t, errors.TypeMismatchError{}, err)
	// derived names must not collide
	_, err = DeriveFromTime("datetime", time.UTC, Derivation{Name: "amount", Field: HourOfDay}).MapSchema(s)
	require.IsType(t, errors.DuplicateColumnError{}, err)
}

func TestDeriveFromTimeApplyToRow(t *testing.T) {
	s := createTimeSchema(t)
	// Friday 2016-01-01 17:50:42 UTC
	tv := reshape.TimeOf(time.Date(2016, 1, 1, 17, 50, 42, 0, time.UTC))
	r, err := row.Create(s, tv, reshape.FloatValue(10))
	require.Nil(t, err)
	step := DeriveFromTime("datetime", time.UTC,
		Derivation{Name: "year", Field: Year},
		Derivation{Name: "month", Field: Month},
		Derivation{Name: "day", Field: DayOfMonth},
		Derivation{Name: "weekday", Field: DayOfWeek},
		Derivation{Name: "hour", Field: HourOfDay},
		Derivation{Name: "minute", Field: MinuteOfHour},
		Derivation{Name: "second", Field: SecondOfMinute},
	)
	outcome, err := applyStep(t, step, s, r)
	require.Nil(t, err)
	expected := map[string]int64{
		"year": 2016, "month": 1, "day": 1, "weekday": 5,
		"hour": 17, "minute": 50, "second": 42,
	}
	for name, want := range expected {
		v, err := outcome.Row.Get(name)
		require.Nil(t, err)
		require.True(t, v.Equals(reshape.IntValue(want)), "field %s", name)
	}
}

func TestDeriveFromTimeHonoursLocation(t *testing.T) {
	s := createTimeSchema(t)
	// 22:50 UTC is 17:50 Eastern
	tv := reshape.TimeOf(time.Date(2016, 1, 1, 22, 50, 0, 0, time.UTC))
	r, err := row.Create(s, tv, reshape.FloatValue(10))
	require.Nil(t, err)
	east, err := time.LoadLocation("America/New_York")
	require.Nil(t, err)
	outcome, err := applyStep(t, DeriveFromTime("datetime", east, Derivation{Name: "hour", Field: HourOfDay}), s, r)
	require.Nil(t, err)
	v, err := outcome.Row.Get("hour")
	require.Nil(t, err)
	require.True(t, v.Equals(reshape.IntValue(17)))
}
