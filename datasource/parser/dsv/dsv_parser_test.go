package dsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/columntype"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/schema"
)

func createTestSchema(t *testing.T) reshape.Schema {
	s, err := schema.Build(
		schema.Def{Name: "when", Type: &columntype.StringColumnType{}},
		schema.Def{Name: "country", Type: &columntype.CategoricalColumnType{Values: []string{"USA", "CAN", "FR", "MX"}}},
		schema.Def{Name: "items", Type: &columntype.IntegerColumnType{}},
		schema.Def{Name: "amount", Type: &columntype.FloatColumnType{}},
	)
	require.Nil(t, err)
	return s
}

func TestDSVParserTypedFields(t *testing.T) {
	s := createTestSchema(t)
	data := "2016-01-01 17:50:00.000,USA,3,10.5\n2016-01-02 08:10:00.000,FR,1,-5\n"
	source, err := CreateParser(nil).Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	require.Nil(t, source.Schema().Equals(s))

	r, err := source.Next()
	require.Nil(t, err)
	items, err := r.Get("items")
	require.Nil(t, err)
	require.True(t, items.Equals(reshape.IntValue(3)))
	amount, err := r.Get("amount")
	require.Nil(t, err)
	require.True(t, amount.Equals(reshape.FloatValue(10.5)))

	r, err = source.Next()
	require.Nil(t, err)
	country, err := r.Get("country")
	require.Nil(t, err)
	require.True(t, country.Equals(reshape.StringValue("FR")))

	_, err = source.Next()
	require.IsType(t, errors.NoMoreRowsError{}, err)
}

func TestDSVParserHeaderAndComments(t *testing.T) {
	s := createTestSchema(t)
	data := "when,country,items,amount\n# a comment\n2016-01-01 17:50:00.000,USA,3,10.5\n"
	parser := CreateParser(&ParserConf{HeaderLines: 1, Comment: '#'})
	source, err := parser.Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	r, err := source.Next()
	require.Nil(t, err)
	country, err := r.Get("country")
	require.Nil(t, err)
	require.True(t, country.Equals(reshape.StringValue("USA")))
	_, err = source.Next()
	require.IsType(t, errors.NoMoreRowsError{}, err)
}

func TestDSVParserNilValue(t *testing.T) {
	s := createTestSchema(t)
	data := "2016-01-01 17:50:00.000,null,3,10.5\n"
	parser := CreateParser(&ParserConf{NilValue: "null"})
	source, err := parser.Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	r, err := source.Next()
	require.Nil(t, err)
	country, err := r.Get("country")
	require.Nil(t, err)
	require.True(t, country.Equals(reshape.NilValue{}))
}

func TestDSVParserBadField(t *testing.T) {
	s := createTestSchema(t)
	data := "2016-01-01 17:50:00.000,USA,not-a-number,10.5\n"
	source, err := CreateParser(nil).Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	_, err = source.Next()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "items")
}

func TestDSVParserWrongFieldCount(t *testing.T) {
	s := createTestSchema(t)
	data := "only,three,fields\n"
	source, err := CreateParser(nil).Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	_, err = source.Next()
	require.NotNil(t, err)
}
