package transform

import (
	"time"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/columntype"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/row"
)

// TimeField enumerates the closed set of fields derivable from a Time column
type TimeField int

const (
	// Year is the calendar year
	Year TimeField = iota
	// Month is the calendar month in [1,12]
	Month
	// DayOfMonth is the day of the month in [1,31]
	DayOfMonth
	// DayOfWeek is the weekday in [0,6], with Sunday as 0
	DayOfWeek
	// HourOfDay is the hour in [0,23]
	HourOfDay
	// MinuteOfHour is the minute in [0,59]
	MinuteOfHour
	// SecondOfMinute is the second in [0,59]
	SecondOfMinute
)

// Derivation names one new Integer column and the time field which populates it
type Derivation struct {
	Name  string
	Field TimeField
}

type deriveFromTimeStep struct {
	sourceCol   string
	loc         *time.Location
	derivations []Derivation
}

// DeriveFromTime appends one Integer column per derivation, computed from
// the (already-parsed) Time value in the source column, in the given
// location. The source column is left untouched.
func DeriveFromTime(sourceCol string, loc *time.Location, derivations ...Derivation) reshape.TransformStep {
	if loc == nil {
		loc = time.UTC
	}
	return &deriveFromTimeStep{sourceCol: sourceCol, loc: loc, derivations: derivations}
}

// Name returns a short name for this step
func (s *deriveFromTimeStep) Name() string {
	return "derive_from_time"
}

// MapSchema appends one Integer column per derivation, failing if the
// source column is absent or not a Time column, or if a new name collides
func (s *deriveFromTimeStep) MapSchema(inputSchema reshape.Schema) (reshape.Schema, error) {
	col, err := inputSchema.GetColumn(s.sourceCol)
	if err != nil {
		return nil, err
	}
	if col.Type().Kind() != reshape.KindTime {
		return nil, errors.TypeMismatchError{Col: s.sourceCol, Op: s.Name(), Kind: col.Type().Kind().String()}
	}
	outputSchema := inputSchema
	for _, d := range s.derivations {
		outputSchema, err = outputSchema.CreateColumn(d.Name, &columntype.IntegerColumnType{})
		if err != nil {
			return nil, err
		}
	}
	return outputSchema, nil
}

// ApplyToRow appends one integer cell per derivation
func (s *deriveFromTimeStep) ApplyToRow(inputSchema reshape.Schema, outputSchema reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	col, err := inputSchema.GetColumn(s.sourceCol)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	tv, ok := r.Value(col.Index()).(reshape.TimeValue)
	if !ok {
		return reshape.RowOutcome{}, errors.ValidationError{
			Col: s.sourceCol,
			Err: errors.TypeMismatchError{Col: s.sourceCol, Op: s.Name(), Kind: r.Value(col.Index()).Kind().String()},
		}
	}
	t := tv.Time(s.loc)
	values := r.Values()
	for _, d := range s.derivations {
		values = append(values, reshape.IntValue(extractTimeField(t, d.Field)))
	}
	newRow, err := row.Create(outputSchema, values...)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	return reshape.Keep(newRow), nil
}

func extractTimeField(t time.Time, field TimeField) int64 {
	switch field {
	case Year:
		return int64(t.Year())
	case Month:
		return int64(t.Month())
	case DayOfMonth:
		return int64(t.Day())
	case DayOfWeek:
		return int64(t.Weekday())
	case HourOfDay:
		return int64(t.Hour())
	case MinuteOfHour:
		return int64(t.Minute())
	default:
		return int64(t.Second())
	}
}
