/*
File    : loxgo/values/values.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package values defines the primitive runtime value types of Lox: Nil,
Bool, Number and String. The richer kinds —
user-defined functions, classes and instances — need a reference to the
interpreter to be called and a reference to an Environment to close
over, so they live in package interpreter instead, to avoid an import
cycle between this package and environment (environment stores
map[string]values.Value; a Value implementation that itself needed
*environment.Environment would require environment to import values
and values to import environment). This mirrors the teacher's own
layering: objects.GoMixObject has no dependency on scope.Scope, and
scope.Scope only depends on objects — function.Function is the one
that bridges both, in its own package (function/function.go).
*/
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType identifies the runtime kind of a Value, analogous to the
// teacher's GoMixType.
type ValueType string

const (
	NilType    ValueType = "nil"
	BoolType   ValueType = "bool"
	NumberType ValueType = "number"
	StringType ValueType = "string"
)

// Value is the interface every Lox runtime value implements.
type Value interface {
	Type() ValueType
	// String renders the value the way `print` stringifies it
	//: nil -> "nil", integral floats drop ".0", everything
	// else uses the host's canonical representation.
	String() string
}

// Nil is the singleton absence-of-value. NilValue is the one instance
// callers should use; the interpreter never needs to compare Nil by
// pointer identity since all Nils are interchangeable.
type Nil struct{}

func (Nil) Type() ValueType { return NilType }
func (Nil) String() string  { return "nil" }

// NilValue is the canonical Nil instance.
var NilValue = Nil{}

// Bool wraps a Go bool.
type Bool bool

func (Bool) Type() ValueType { return BoolType }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number wraps a float64; spec §6 requires every Lox number to be an
// IEEE-754 double with no separate integer representation.
type Number float64

func (Number) Type() ValueType { return NumberType }

// String formats the number, stripping a trailing ".0" so integral
// results print as integers — grounded on
// original_source/pylox's stringify(), which converts to int when the
// formatted float ends in ".0".
func (n Number) String() string {
	text := strconv.FormatFloat(float64(n), 'f', -1, 64)
	if strings.HasSuffix(text, ".0") {
		return strings.TrimSuffix(text, ".0")
	}
	return text
}

// String wraps a Go string.
type String string

func (String) Type() ValueType { return StringType }
func (s String) String() string { return string(s) }

// IsTruthy reports Lox truthiness: nil and false are falsy, everything
// else — including zero and the empty string — is truthy. Resolves the spec's flagged Open Question about is_truthy: in
// Go there is no risk of a stray `bool(obj)` no-op masking this, the
// switch below states the rule directly.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(val)
	default:
		return true
	}
}

// Equal implements Lox equality: nil == nil is true;
// distinct runtime kinds are never equal; otherwise ordinary value
// equality. Implemented as a plain function with no receiver; the
// `is_equal` in original_source/pylox is a method declared without its
// `self` parameter, a hazard Go cannot reproduce since it has no
// implicit self to omit.
func Equal(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil && bNil {
		return true
	}
	if aNil != bNil {
		return false
	}
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}

// TypeName renders a human-readable type name for error messages.
func TypeName(v Value) string {
	return fmt.Sprintf("%v", v.Type())
}
