/*
File   : loxmix/object/value.go

Package object defines the runtime value lattice threaded through the
evaluator: Nil, Bool, Number, String, and the Value interface that
interp's user functions, classes, bound methods, and instances also
implement.
*/
package object

import (
	"strconv"
)

// Value is implemented by every runtime value in Lox.
type Value interface {
	// Type returns a short type tag, used in error messages and tests.
	Type() string
	// String returns the value's print/stringify representation.
	String() string
}

// Nil is Lox's absence-of-value. There is exactly one instance, Null.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Null is the single Nil value; compare runtime results against it
// directly rather than constructing new Nil{} values.
var Null = Nil{}

// Bool wraps a Lox boolean.
type Bool bool

func (Bool) Type() string { return "bool" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number wraps an IEEE-754 double, the only numeric type in Lox.
type Number float64

func (Number) Type() string { return "number" }

// String renders a Number the way Lox's stringify does: ordinary decimal
// notation ("3.5"), with no trailing ".0" for integral values ("3", not
// "3.0"). Unlike "%g", this never switches to scientific notation.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String wraps a Lox string value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Truthy implements Lox's truthiness rule: every value is truthy except
// Nil and Bool(false). This is the corrected rule from spec.md's Open
// Question — the reference draft's isTruthy treats nil as truthy, which
// this implementation deliberately does not reproduce.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements Lox's equality law: cross-type comparisons are always
// false, Nil equals only Nil, Number equality uses IEEE-754 "==" (so NaN
// is never equal to itself), and Bool/String compare by value.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && float64(av) == float64(bv)
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return false
	}
}
