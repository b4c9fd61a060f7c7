package dsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/row"
)

type dsvRowSource struct {
	parser *Parser
	reader *csv.Reader
	schema reshape.Schema
}

// Schema returns the Schema of the Rows this source produces
func (s *dsvRowSource) Schema() reshape.Schema {
	return s.schema
}

// Next parses one DSV line into a typed Row
func (s *dsvRowSource) Next() (reshape.Row, error) {
	fields, err := s.reader.Read()
	if err == io.EOF {
		return nil, errors.NoMoreRowsError{}
	} else if err != nil {
		return nil, err
	}
	values := make([]reshape.Value, s.schema.NumColumns())
	err = s.schema.ForEachColumn(func(name string, col reshape.Column) error {
		v, err := s.parseField(fields[col.Index()], name, col.Type().Kind())
		if err != nil {
			return err
		}
		values[col.Index()] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.Create(s.schema, values...)
}

func (s *dsvRowSource) parseField(field string, colName string, kind reshape.Kind) (reshape.Value, error) {
	if field == s.parser.conf.NilValue {
		return reshape.NilValue{}, nil
	}
	switch kind {
	case reshape.KindString, reshape.KindCategorical:
		return reshape.StringValue(field), nil
	case reshape.KindInteger:
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Column %s was not an integer. Was: %q", colName, field)
		}
		return reshape.IntValue(n), nil
	case reshape.KindFloat:
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("Column %s was not a number. Was: %q", colName, field)
		}
		return reshape.FloatValue(f), nil
	case reshape.KindTime:
		// raw time fields are epoch milliseconds; textual timestamps
		// belong in String columns parsed by a ParseTime step
		ms, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Column %s was not an epoch-millisecond time. Was: %q", colName, field)
		}
		return reshape.TimeValue(ms), nil
	default:
		return nil, fmt.Errorf("Column %s has unsupported kind %s", colName, kind)
	}
}
