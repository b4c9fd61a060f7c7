// Package jsonl adapts JSON-lines text into typed Rows, locating each
// column's value by name within every line.
package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/row"
)

// Parser produces typed Rows from JSON-lines data. Column names are
// interpreted as gjson paths, so nested fields can be addressed with dots.
type Parser struct{}

// CreateParser returns a new JSON-lines Parser
func CreateParser() *Parser {
	return &Parser{}
}

// Parse wraps JSON-lines text in a RowSource producing Rows shaped by
// schema. Blank lines are skipped; a JSON null or missing field becomes a
// nil cell.
func (p *Parser) Parse(r io.Reader, schema reshape.Schema) (reshape.RowSource, error) {
	return &jsonlRowSource{
		scanner: bufio.NewScanner(r),
		schema:  schema,
	}, nil
}

type jsonlRowSource struct {
	scanner *bufio.Scanner
	schema  reshape.Schema
}

// Schema returns the Schema of the Rows this source produces
func (s *jsonlRowSource) Schema() reshape.Schema {
	return s.schema
}

// Next parses one JSON line into a typed Row
func (s *jsonlRowSource) Next() (reshape.Row, error) {
	var line string
	for {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, errors.NoMoreRowsError{}
		}
		line = strings.TrimSpace(s.scanner.Text())
		if len(line) > 0 {
			break
		}
	}
	if !gjson.Valid(line) {
		return nil, fmt.Errorf("line is not valid JSON: %q", line)
	}
	values := make([]reshape.Value, s.schema.NumColumns())
	err := s.schema.ForEachColumn(func(name string, col reshape.Column) error {
		v, err := parseValue(gjson.Get(line, name), name, col.Type().Kind())
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

func parseValue(res gjson.Result, colName string, kind reshape.Kind) (reshape.Value, error) {
	if !res.Exists() || res.Type == gjson.Null {
		return reshape.NilValue{}, nil
	}
	switch kind {
	case reshape.KindString, reshape.KindCategorical:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, res.Raw)
		}
		return reshape.StringValue(res.String()), nil
	case reshape.KindInteger:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return reshape.IntValue(res.Int()), nil
	case reshape.KindFloat:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, res.Raw)
		}
		return reshape.FloatValue(res.Float()), nil
	case reshape.KindTime:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not an epoch-millisecond time. Was: %s", colName, res.Raw)
		}
		return reshape.TimeValue(res.Int()), nil
	default:
		return nil, fmt.Errorf("Column %s has unsupported kind %s", colName, kind)
	}
}
