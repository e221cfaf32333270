/*
File    : loxgo/interpreter/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

LoxFunction is a user-defined function: an immutable reference to its
declaration AST plus a handle to the environment active at declaration
time (the closure).
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/values"
)

// LoxFunction represents a user-defined function or method.
// IsInitializer marks a class's `init` method, whose Call always
// yields the bound instance regardless of what the body explicitly
// returns.
type LoxFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (*LoxFunction) Type() values.ValueType { return "function" }
func (f *LoxFunction) String() string       { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme) }
func (f *LoxFunction) Arity() int           { return len(f.Declaration.Params) }

// Bind produces a copy of f whose closure is a fresh environment that
// defines `this` as instance, parented at f's original closure — used
// when a method is looked up on an instance.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &LoxFunction{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call creates a fresh environment parented at the closure, binds each
// parameter, executes the body, and catches the returnSignal to yield
// its value.
func (f *LoxFunction) Call(interp *Interpreter, args []values.Value) (result values.Value) {
	env := environment.New(f.Closure)
	for idx, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				if f.IsInitializer {
					result = f.Closure.GetAt(0, "this")
					return
				}
				result = ret.value
				return
			}
			panic(r)
		}
	}()

	interp.executeBlock(f.Declaration.Body, env)

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	return values.NilValue
}
