package columntype

import (
	"fmt"

	"github.com/go-reshape/reshape"
)

// StringColumnType is a column type which stores a free-form string value
type StringColumnType struct{}

// Kind returns reshape.KindString
func (b *StringColumnType) Kind() reshape.Kind {
	return reshape.KindString
}

// Check verifies this StringColumnType's configuration, which cannot be inconsistent
func (b *StringColumnType) Check() error {
	return nil
}

// AcceptsKind returns nil iff v is a string value
func (b *StringColumnType) AcceptsKind(v reshape.Value) error {
	if _, ok := v.(reshape.StringValue); !ok {
		return fmt.Errorf("%s value is not admissible for a %s column", v.Kind(), b.Kind())
	}
	return nil
}

// Accepts returns nil iff v is a string value
func (b *StringColumnType) Accepts(v reshape.Value) error {
	return b.AcceptsKind(v)
}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v reshape.Value) string {
	return fmt.Sprintf("%q", v.Render())
}

// Clone returns a copy of this StringColumnType
func (b *StringColumnType) Clone() reshape.ColumnType {
	return &StringColumnType{}
}
