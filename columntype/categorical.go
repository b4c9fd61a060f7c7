package columntype

import (
	"fmt"

	"github.com/go-reshape/reshape"
)

// CategoricalColumnType is a column type which restricts string cells to a
// fixed, ordered set of allowed values
type CategoricalColumnType struct {
	Values []string
}

// Kind returns reshape.KindCategorical
func (b *CategoricalColumnType) Kind() reshape.Kind {
	return reshape.KindCategorical
}

// Check verifies that the allowed value set is non-empty and free of duplicates
func (b *CategoricalColumnType) Check() error {
	if len(b.Values) == 0 {
		return fmt.Errorf("categorical allowed value set is empty")
	}
	seen := make(map[string]bool, len(b.Values))
	for _, val := range b.Values {
		if seen[val] {
			return fmt.Errorf("categorical allowed value %q appears more than once", val)
		}
		seen[val] = true
	}
	return nil
}

// AcceptsKind returns nil iff v is a string value; set membership is a
// constraint, not a kind
func (b *CategoricalColumnType) AcceptsKind(v reshape.Value) error {
	if _, ok := v.(reshape.StringValue); !ok {
		return fmt.Errorf("%s value is not admissible for a %s column", v.Kind(), b.Kind())
	}
	return nil
}

// Accepts returns nil iff v is a string value in the allowed set
func (b *CategoricalColumnType) Accepts(v reshape.Value) error {
	if err := b.AcceptsKind(v); err != nil {
		return err
	}
	sv := v.(reshape.StringValue)
	for _, val := range b.Values {
		if string(sv) == val {
			return nil
		}
	}
	return fmt.Errorf("value %q is not in the allowed set %v", string(sv), b.Values)
}

// ToString produces a string representation of a CategoricalColumnType value
func (b *CategoricalColumnType) ToString(v reshape.Value) string {
	return fmt.Sprintf("%q", v.Render())
}

// Clone returns a copy of this CategoricalColumnType
func (b *CategoricalColumnType) Clone() reshape.ColumnType {
	values := make([]string, len(b.Values))
	copy(values, b.Values)
	return &CategoricalColumnType{Values: values}
}
