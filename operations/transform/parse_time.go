package transform

import (
	"time"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/columntype"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/row"
)

type parseTimeStep struct {
	colName string
	layout  string
	loc     *time.Location
}

// ParseTime parses the named String column's cells with the given layout
// and location, changing the column's kind from String to Time in place.
// The column keeps its name and position. A cell which does not match the
// layout is a TimeParseError; there is no silent coercion.
func ParseTime(colName string, layout string, loc *time.Location) reshape.TransformStep {
	if loc == nil {
		loc = time.UTC
	}
	return &parseTimeStep{colName: colName, layout: layout, loc: loc}
}

// Name returns a short name for this step
func (s *parseTimeStep) Name() string {
	return "parse_time"
}

// MapSchema replaces the named column's type with Time, failing if the
// column is absent or not a String column
func (s *parseTimeStep) MapSchema(inputSchema reshape.Schema) (reshape.Schema, error) {
	col, err := inputSchema.GetColumn(s.colName)
	if err != nil {
		return nil, err
	}
	if col.Type().Kind() != reshape.KindString {
		return nil, errors.TypeMismatchError{Col: s.colName, Op: s.Name(), Kind: col.Type().Kind().String()}
	}
	return inputSchema.ReplaceColumnType(s.colName, &columntype.TimeColumnType{})
}

// ApplyToRow parses the target cell into an epoch-millisecond time value
func (s *parseTimeStep) ApplyToRow(inputSchema reshape.Schema, outputSchema reshape.Schema, r reshape.Row) (reshape.RowOutcome, error) {
	col, err := inputSchema.GetColumn(s.colName)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	sv, ok := r.Value(col.Index()).(reshape.StringValue)
	if !ok {
		return reshape.RowOutcome{}, errors.ValidationError{
			Col: s.colName,
			Err: errors.TypeMismatchError{Col: s.colName, Op: s.Name(), Kind: r.Value(col.Index()).Kind().String()},
		}
	}
	t, err := time.ParseInLocation(s.layout, string(sv), s.loc)
	if err != nil {
		return reshape.RowOutcome{}, errors.TimeParseError{Col: s.colName, Value: string(sv), Layout: s.layout, Err: err}
	}
	values := r.Values()
	values[col.Index()] = reshape.TimeOf(t)
	newRow, err := row.Create(outputSchema, values...)
	if err != nil {
		return reshape.RowOutcome{}, err
	}
	return reshape.Keep(newRow), nil
}
