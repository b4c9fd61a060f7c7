package reshape

import (
	"fmt"
	"strconv"
	"time"
)

// Kind enumerates the closed set of column and value kinds supported by
// Reshape. Every consumer of a Kind can switch exhaustively over this list.
type Kind int

const (
	// KindString is the kind of free-form string columns and values
	KindString Kind = iota
	// KindInteger is the kind of 64-bit integer columns and values
	KindInteger
	// KindFloat is the kind of 64-bit floating point columns and values
	KindFloat
	// KindCategorical is the kind of columns restricted to a fixed set of string values
	KindCategorical
	// KindTime is the kind of epoch-millisecond timestamp columns and values
	KindTime
	// KindNil is the kind of the missing-value marker. It is never a column kind.
	KindNil
)

// String returns a human-readable name for a Kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindCategorical:
		return "Categorical"
	case KindTime:
		return "Time"
	case KindNil:
		return "Nil"
	default:
		return "Unknown"
	}
}

// Value is a single cell value - a tagged union over the kinds in Kind.
// Values are immutable. Equality is kind-specific: numeric values equate
// numerically across IntValue and FloatValue, strings and categoricals
// equate by exact string match, times by epoch millisecond. Ordering via
// Compare is defined for numeric and time values only.
type Value interface {
	Kind() Kind
	// Equals returns true iff other holds an equal value under this
	// value's equality rules
	Equals(other Value) bool
	// Compare returns -1, 0 or 1 if this value orders before, equal to or
	// after other. It returns an error for kinds with no natural ordering,
	// or when the two kinds are not mutually comparable.
	Compare(other Value) (int, error)
	// Render produces the deterministic string representation of this
	// value used for output
	Render() string
}

// IntValue is a Value holding a 64-bit integer
type IntValue int64

// Kind returns KindInteger
func (v IntValue) Kind() Kind { return KindInteger }

// Equals returns true iff other holds the same numeric value
func (v IntValue) Equals(other Value) bool {
	switch o := other.(type) {
	case IntValue:
		return v == o
	case FloatValue:
		return float64(v) == float64(o)
	default:
		return false
	}
}

// Compare orders this integer against another numeric value
func (v IntValue) Compare(other Value) (int, error) {
	switch o := other.(type) {
	case IntValue:
		return compareInt64(int64(v), int64(o)), nil
	case FloatValue:
		return compareFloat64(float64(v), float64(o)), nil
	default:
		return 0, fmt.Errorf("cannot order %s value against %s value", v.Kind(), other.Kind())
	}
}

// Render produces a base-10 representation of this integer
func (v IntValue) Render() string {
	return strconv.FormatInt(int64(v), 10)
}

// FloatValue is a Value holding a 64-bit floating point number
type FloatValue float64

// Kind returns KindFloat
func (v FloatValue) Kind() Kind { return KindFloat }

// Equals returns true iff other holds the same numeric value
func (v FloatValue) Equals(other Value) bool {
	switch o := other.(type) {
	case FloatValue:
		return v == o
	case IntValue:
		return float64(v) == float64(o)
	default:
		return false
	}
}

// Compare orders this float against another numeric value
func (v FloatValue) Compare(other Value) (int, error) {
	switch o := other.(type) {
	case FloatValue:
		return compareFloat64(float64(v), float64(o)), nil
	case IntValue:
		return compareFloat64(float64(v), float64(o)), nil
	default:
		return 0, fmt.Errorf("cannot order %s value against %s value", v.Kind(), other.Kind())
	}
}

// Render produces a decimal representation of this float
func (v FloatValue) Render() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// StringValue is a Value holding a string. Categorical cells are
// StringValues whose admissibility is enforced by the column type.
type StringValue string

// Kind returns KindString
func (v StringValue) Kind() Kind { return KindString }

// Equals returns true iff other is a string holding exactly the same text
func (v StringValue) Equals(other Value) bool {
	o, ok := other.(StringValue)
	return ok && v == o
}

// Compare always fails - strings have no natural ordering in Reshape
func (v StringValue) Compare(other Value) (int, error) {
	return 0, fmt.Errorf("%s values have no ordering", v.Kind())
}

// Render returns the string itself
func (v StringValue) Render() string {
	return string(v)
}

// TimeValue is a Value holding a timestamp as milliseconds since the Unix epoch
type TimeValue int64

// Kind returns KindTime
func (v TimeValue) Kind() Kind { return KindTime }

// Equals returns true iff other is a time with the same epoch millisecond
func (v TimeValue) Equals(other Value) bool {
	o, ok := other.(TimeValue)
	return ok && v == o
}

// Compare orders this time against another time
func (v TimeValue) Compare(other Value) (int, error) {
	o, ok := other.(TimeValue)
	if !ok {
		return 0, fmt.Errorf("cannot order %s value against %s value", v.Kind(), other.Kind())
	}
	return compareInt64(int64(v), int64(o)), nil
}

// Render produces an RFC3339 representation of this time, in UTC with
// millisecond precision
func (v TimeValue) Render() string {
	return v.Time(time.UTC).Format("2006-01-02T15:04:05.000Z07:00")
}

// Time converts this value to a time.Time in the given location
func (v TimeValue) Time(loc *time.Location) time.Time {
	return time.Unix(int64(v)/1000, (int64(v)%1000)*int64(time.Millisecond)).In(loc)
}

// TimeOf builds a TimeValue from a time.Time, truncating to millisecond precision
func TimeOf(t time.Time) TimeValue {
	return TimeValue(t.UnixNano() / int64(time.Millisecond))
}

// NilValue is the missing-value marker. It equates only with itself and
// has no ordering. Column types reject nil cells during validation.
type NilValue struct{}

// Kind returns KindNil
func (v NilValue) Kind() Kind { return KindNil }

// Equals returns true iff other is also nil
func (v NilValue) Equals(other Value) bool {
	_, ok := other.(NilValue)
	return ok
}

// Compare always fails - nil has no ordering
func (v NilValue) Compare(other Value) (int, error) {
	return 0, fmt.Errorf("%s values have no ordering", v.Kind())
}

// Render returns the literal string "nil"
func (v NilValue) Render() string {
	return "nil"
}

func compareInt64(a, b int64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
