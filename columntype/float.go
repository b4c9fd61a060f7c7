package columntype

import (
	"fmt"
	"math"

	"github.com/go-reshape/reshape"
)

// FloatColumnType is a column type which stores a 64-bit floating point
// value, optionally restricted to a [Min, Max] range. NaN and infinite
// values are rejected unless explicitly allowed.
type FloatColumnType struct {
	Min           *float64 // inclusive lower bound, unbounded if nil
	Max           *float64 // inclusive upper bound, unbounded if nil
	AllowNaN      bool
	AllowInfinite bool
}

// Bound is a convenience for populating FloatColumnType bounds from literals
func Bound(f float64) *float64 {
	return &f
}

// Kind returns reshape.KindFloat
func (b *FloatColumnType) Kind() reshape.Kind {
	return reshape.KindFloat
}

// Check verifies that Min does not exceed Max
func (b *FloatColumnType) Check() error {
	if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
		return fmt.Errorf("min %v exceeds max %v", *b.Min, *b.Max)
	}
	return nil
}

// AcceptsKind returns nil iff v is a float value, rejecting NaN and
// infinite values unless this column allows them
func (b *FloatColumnType) AcceptsKind(v reshape.Value) error {
	fv, ok := v.(reshape.FloatValue)
	if !ok {
		return fmt.Errorf("%s value is not admissible for a %s column", v.Kind(), b.Kind())
	}
	f := float64(fv)
	if math.IsNaN(f) && !b.AllowNaN {
		return fmt.Errorf("NaN is not allowed")
	}
	if math.IsInf(f, 0) && !b.AllowInfinite {
		return fmt.Errorf("infinite value is not allowed")
	}
	return nil
}

// Accepts returns nil iff v is a float value within this column's constraints
func (b *FloatColumnType) Accepts(v reshape.Value) error {
	if err := b.AcceptsKind(v); err != nil {
		return err
	}
	f := float64(v.(reshape.FloatValue))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if b.Min != nil && f < *b.Min {
		return fmt.Errorf("value %v is below minimum %v", f, *b.Min)
	}
	if b.Max != nil && f > *b.Max {
		return fmt.Errorf("value %v is above maximum %v", f, *b.Max)
	}
	return nil
}

// ToString produces a string representation of a FloatColumnType value
func (b *FloatColumnType) ToString(v reshape.Value) string {
	return v.Render()
}

// Clone returns a copy of this FloatColumnType
func (b *FloatColumnType) Clone() reshape.ColumnType {
	clone := &FloatColumnType{AllowNaN: b.AllowNaN, AllowInfinite: b.AllowInfinite}
	if b.Min != nil {
		clone.Min = Bound(*b.Min)
	}
	if b.Max != nil {
		clone.Max = Bound(*b.Max)
	}
	return clone
}
