// Package condition provides pure boolean predicates over one column's
// value within a Row. Conditions are stateless and side-effect free: they
// need the Schema only to locate the target column and check that their
// operator is applicable to its kind.
package condition

import (
	"github.com/go-reshape/reshape"
	"github.com/go-reshape/reshape/errors"
)

// Op enumerates the closed set of condition operators
type Op int

const (
	// Eq tests for equality with the operand
	Eq Op = iota
	// Neq tests for inequality with the operand
	Neq
	// Lt tests whether the cell orders strictly before the operand
	Lt
	// Leq tests whether the cell orders before or equal to the operand
	Leq
	// Gt tests whether the cell orders strictly after the operand
	Gt
	// Geq tests whether the cell orders after or equal to the operand
	Geq
	// InSet tests membership of a string or categorical cell in a value set
	InSet
	// NotInSet tests non-membership of a string or categorical cell in a value set
	NotInSet
)

// String returns a human-readable name for an Op
func (op Op) String() string {
	switch op {
	case Eq:
		return "Eq"
	case Neq:
		return "Neq"
	case Lt:
		return "Lt"
	case Leq:
		return "Leq"
	case Gt:
		return "Gt"
	case Geq:
		return "Geq"
	case InSet:
		return "InSet"
	case NotInSet:
		return "NotInSet"
	default:
		return "Unknown"
	}
}

// Condition is a pure boolean test over one column's value within a Row.
// Scalar operators compare against Operand; set operators test the cell
// against Set by exact string match.
type Condition struct {
	Col     string
	Op      Op
	Operand reshape.Value
	Set     []string
}

// Equals builds a condition which is true when the named column equals v
func Equals(colName string, v reshape.Value) Condition {
	return Condition{Col: colName, Op: Eq, Operand: v}
}

// NotEquals builds a condition which is true when the named column does not equal v
func NotEquals(colName string, v reshape.Value) Condition {
	return Condition{Col: colName, Op: Neq, Operand: v}
}

// LessThan builds a condition which is true when the named column orders strictly before v
func LessThan(colName string, v reshape.Value) Condition {
	return Condition{Col: colName, Op: Lt, Operand: v}
}

// AtMost builds a condition which is true when the named column orders before or equal to v
func AtMost(colName string, v reshape.Value) Condition {
	return Condition{Col: colName, Op: Leq, Operand: v}
}

// GreaterThan builds a condition which is true when the named column orders strictly after v
func GreaterThan(colName string, v reshape.Value) Condition {
	return Condition{Col: colName, Op: Gt, Operand: v}
}

// AtLeast builds a condition which is true when the named column orders after or equal to v
func AtLeast(colName string, v reshape.Value) Condition {
	return Condition{Col: colName, Op: Geq, Operand: v}
}

// In builds a condition which is true when the named column's value is one of vals
func In(colName string, vals ...string) Condition {
	return Condition{Col: colName, Op: InSet, Set: vals}
}

// NotIn builds a condition which is true when the named column's value is none of vals
func NotIn(colName string, vals ...string) Condition {
	return Condition{Col: colName, Op: NotInSet, Set: vals}
}

// Evaluate tests this condition against one Row. It fails with an
// UnknownColumnError if the target column is absent from schema, and with
// a TypeMismatchError if the operator is inapplicable to the column's
// kind. It never mutates the Row.
func (c Condition) Evaluate(schema reshape.Schema, row reshape.Row) (bool, error) {
	col, err := schema.GetColumn(c.Col)
	if err != nil {
		return false, err
	}
	kind := col.Type().Kind()
	if err := c.Applicable(kind); err != nil {
		return false, err
	}
	v := row.Value(col.Index())
	switch c.Op {
	case Eq:
		return v.Equals(c.Operand), nil
	case Neq:
		return !v.Equals(c.Operand), nil
	case Lt, Leq, Gt, Geq:
		cmp, err := v.Compare(c.Operand)
		if err != nil {
			return false, errors.TypeMismatchError{Col: c.Col, Op: c.Op.String(), Kind: v.Kind().String()}
		}
		switch c.Op {
		case Lt:
			return cmp < 0, nil
		case Leq:
			return cmp <= 0, nil
		case Gt:
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	case InSet, NotInSet:
		sv, ok := v.(reshape.StringValue)
		if !ok {
			return false, errors.TypeMismatchError{Col: c.Col, Op: c.Op.String(), Kind: v.Kind().String()}
		}
		member := false
		for _, val := range c.Set {
			if string(sv) == val {
				member = true
				break
			}
		}
		if c.Op == InSet {
			return member, nil
		}
		return !member, nil
	default:
		return false, errors.TypeMismatchError{Col: c.Col, Op: c.Op.String(), Kind: kind.String()}
	}
}

// Applicable checks that this condition's operator makes sense for a
// column of the given kind, failing with a TypeMismatchError otherwise
func (c Condition) Applicable(kind reshape.Kind) error {
	switch c.Op {
	case Eq, Neq:
		return nil
	case Lt, Leq, Gt, Geq:
		if kind == reshape.KindInteger || kind == reshape.KindFloat || kind == reshape.KindTime {
			return nil
		}
	case InSet, NotInSet:
		if kind == reshape.KindString || kind == reshape.KindCategorical {
			return nil
		}
	}
	return errors.TypeMismatchError{Col: c.Col, Op: c.Op.String(), Kind: kind.String()}
}
