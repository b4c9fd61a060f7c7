// Package dsv adapts delimiter-separated text into typed Rows, using a
// Schema to interpret each field. Parsing raw text is collaborator
// plumbing: the transform core consumes the resulting RowSource and never
// reads text itself.
package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-reshape/reshape"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of the input. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
}

// Parser produces typed Rows from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse wraps DSV text in a RowSource producing Rows shaped by schema.
// Fields are interpreted by column kind; a field which cannot be parsed
// for its column's kind fails that Row's read. Admissibility constraints
// (categorical sets, float ranges) are enforced by the executor, so a
// lenient run can skip dirty lines.
func (p *Parser) Parse(r io.Reader, schema reshape.Schema) (reshape.RowSource, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumColumns()

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	return &dsvRowSource{
		parser: p,
		reader: reader,
		schema: schema,
	}, nil
}
