package columntype

import (
	"fmt"

	"github.com/go-reshape/reshape"
)

// TimeColumnType is a column type which stores an epoch-millisecond timestamp
type TimeColumnType struct{}

// Kind returns reshape.KindTime
func (b *TimeColumnType) Kind() reshape.Kind {
	return reshape.KindTime
}

// Check verifies this TimeColumnType's configuration, which cannot be inconsistent
func (b *TimeColumnType) Check() error {
	return nil
}

// AcceptsKind returns nil iff v is a time value
func (b *TimeColumnType) AcceptsKind(v reshape.Value) error {
	if _, ok := v.(reshape.TimeValue); !ok {
		return fmt.Errorf("%s value is not admissible for a %s column", v.Kind(), b.Kind())
	}
	return nil
}

// Accepts returns nil iff v is a time value
func (b *TimeColumnType) Accepts(v reshape.Value) error {
	return b.AcceptsKind(v)
}

// ToString produces a string representation of a TimeColumnType value
func (b *TimeColumnType) ToString(v reshape.Value) string {
	return v.Render()
}

// Clone returns a copy of this TimeColumnType
func (b *TimeColumnType) Clone() reshape.ColumnType {
	return &TimeColumnType{}
}
