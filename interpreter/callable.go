/*
File    : loxgo/interpreter/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Callable is the capability spec §3 calls "callable": arity() and
call(interpreter, args). Only LoxFunction, LoxClass and NativeFunction
satisfy it. It lives in this package rather than values because the
Call signature needs *Interpreter, which would otherwise create an
import cycle (values is imported by environment, which interpreter
also imports) — see values/values.go's doc comment.
*/
package interpreter

import (
	"time"

	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/values"
)

// Callable is satisfied by every Lox value that can appear as the
// callee of a Call expression.
type Callable interface {
	values.Value
	Arity() int
	Call(interp *Interpreter, args []values.Value) values.Value
}

// NativeFunction wraps a Go function as a Lox callable, the same
// Builtin{Name, Callback} registration idiom as the teacher's
// std.Builtin, generalized to Lox's single built-in, `clock`. The
// teacher's std/time.go already wraps time.Now() this way, confirming
// the grounding for reusing time from stdlib here.
type NativeFunction struct {
	Name    string
	ArityN  int
	Fn      func(interp *Interpreter, args []values.Value) values.Value
}

func (*NativeFunction) Type() values.ValueType { return "native-function" }
func (n *NativeFunction) String() string       { return "<native fn " + n.Name + ">" }
func (n *NativeFunction) Arity() int           { return n.ArityN }
func (n *NativeFunction) Call(interp *Interpreter, args []values.Value) values.Value {
	return n.Fn(interp, args)
}

// registerBuiltins installs the core's one built-in global, `clock`,
// a zero-argument native callable returning the current wall-clock
// time in seconds.
func registerBuiltins(globals *environment.Environment) {
	globals.Define("clock", &NativeFunction{
		Name:   "clock",
		ArityN: 0,
		Fn: func(_ *Interpreter, _ []values.Value) values.Value {
			return values.Number(float64(time.Now().UnixNano()) / 1e9)
		},
	})
}
