package memory

import (
	"bytes"
	"encoding/gob"

	"github.com/pierrec/lz4"

	"github.com/go-reshape/reshape"
)

func init() {
	// cell values travel through gob as reshape.Value interfaces
	gob.Register(reshape.IntValue(0))
	gob.Register(reshape.FloatValue(0))
	gob.Register(reshape.StringValue(""))
	gob.Register(reshape.TimeValue(0))
	gob.Register(reshape.NilValue{})
}

// Partition is a fixed-size run of typed tuples within a Source, with a
// unique ID
type Partition struct {
	id     string
	schema reshape.Schema
	tuples [][]reshape.Value
}

// ID returns the unique ID of this Partition
func (p *Partition) ID() string {
	return p.id
}

// Schema returns the Schema this Partition's tuples conform to
func (p *Partition) Schema() reshape.Schema {
	return p.schema
}

// NumRows returns the number of tuples in this Partition
func (p *Partition) NumRows() int {
	return len(p.tuples)
}

// ToBytes serializes this Partition's tuples to lz4-compressed gob data
func (p *Partition) ToBytes() ([]byte, error) {
	var buff bytes.Buffer
	compressor := lz4.NewWriter(&buff)
	e := gob.NewEncoder(compressor)
	if err := e.Encode(p.tuples); err != nil {
		return nil, err
	}
	if err := compressor.Close(); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// FromBytes deserializes a Partition from lz4-compressed gob data produced
// by ToBytes, binding it to the given Schema
func FromBytes(ser []byte, schema reshape.Schema) (*Partition, error) {
	decompressor := lz4.NewReader(bytes.NewReader(ser))
	var tuples [][]reshape.Value
	d := gob.NewDecoder(decompressor)
	if err := d.Decode(&tuples); err != nil {
		return nil, err
	}
	return createPartition(schema, tuples)
}
