package columntype

import (
	"fmt"

	"github.com/go-reshape/reshape"
)

// IntegerColumnType is a column type which stores a 64-bit integer value
type IntegerColumnType struct{}

// Kind returns reshape.KindInteger
func (b *IntegerColumnType) Kind() reshape.Kind {
	return reshape.KindInteger
}

// Check verifies this IntegerColumnType's configuration, which cannot be inconsistent
func (b *IntegerColumnType) Check() error {
	return nil
}

// AcceptsKind returns nil iff v is an integer value
func (b *IntegerColumnType) AcceptsKind(v reshape.Value) error {
	if _, ok := v.(reshape.IntValue); !ok {
		return fmt.Errorf("%s value is not admissible for an %s column", v.Kind(), b.Kind())
	}
	return nil
}

// Accepts returns nil iff v is an integer value
func (b *IntegerColumnType) Accepts(v reshape.Value) error {
	return b.AcceptsKind(v)
}

// ToString produces a string representation of an IntegerColumnType value
func (b *IntegerColumnType) ToString(v reshape.Value) string {
	return v.Render()
}

// Clone returns a copy of this IntegerColumnType
func (b *IntegerColumnType) Clone() reshape.ColumnType {
	return &IntegerColumnType{}
}
