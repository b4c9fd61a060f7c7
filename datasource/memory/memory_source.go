// Package memory provides an in-memory RowSource over typed tuples,
// organized into fixed-size Partitions. Partitions carry unique IDs and
// offer a compressed serialization convenience for callers which need to
// move buffered data around; the transform core itself never touches disk
// or network.
package memory

import (
	"github.com/gofrs/uuid"

	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
	"github.com/go-reshape/reshape/row"
)

// SourceConf configures an in-memory Source
type SourceConf struct {
	// PartitionSize is the maximum number of rows per Partition. Defaults to 128.
	PartitionSize int
}

// Source is an in-memory buffer of typed tuples which will be transformed
// according to a Process
type Source struct {
	schema     reshape.Schema
	partitions []*Partition
	pidx       int
	ridx       int
}

// CreateSource buffers tuples of typed cell values into a partitioned
// RowSource. Each tuple must match the schema's column count; cell
// admissibility is checked by the executor, not here, so dirty tuples can
// still be skipped by a lenient run.
func CreateSource(conf *SourceConf, schema reshape.Schema, tuples [][]reshape.Value) (*Source, error) {
	if conf == nil {
		conf = &SourceConf{}
	}
	if conf.PartitionSize == 0 {
		conf.PartitionSize = 128
	}
	source := &Source{schema: schema}
	for start := 0; start < len(tuples); start += conf.PartitionSize {
		end := start + conf.PartitionSize
		if end > len(tuples) {
			end = len(tuples)
		}
		part, err := createPartition(schema, tuples[start:end])
		if err != nil {
			return nil, err
		}
		source.partitions = append(source.partitions, part)
	}
	return source, nil
}

// Schema returns the Schema of the Rows this Source produces
func (s *Source) Schema() reshape.Schema {
	return s.schema
}

// Next returns the next Row, in tuple order, or an errors.NoMoreRowsError
// once every Partition is exhausted
func (s *Source) Next() (reshape.Row, error) {
	for s.pidx < len(s.partitions) {
		part := s.partitions[s.pidx]
		if s.ridx < part.NumRows() {
			r, err := row.Create(s.schema, part.tuples[s.ridx]...)
			if err != nil {
				return nil, err
			}
			s.ridx++
			return r, nil
		}
		s.pidx++
		s.ridx = 0
	}
	return nil, errors.NoMoreRowsError{}
}

// NumPartitions returns the number of Partitions backing this Source
func (s *Source) NumPartitions() int {
	return len(s.partitions)
}

// GetPartition returns the Partition at the given index
func (s *Source) GetPartition(idx int) *Partition {
	return s.partitions[idx]
}

func createPartition(schema reshape.Schema, tuples [][]reshape.Value) (*Partition, error) {
	for _, tuple := range tuples {
		if len(tuple) != schema.NumColumns() {
			return nil, errors.IncompatibleRowError{Expected: schema.NumColumns(), Actual: len(tuple)}
		}
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Partition{id: id.String(), schema: schema, tuples: tuples}, nil
}
