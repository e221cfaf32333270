/*
File    : loxgo/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package interpreter is the tree-walking evaluator: a statement
executor and expression evaluator consulting the resolver's
Resolution table and the Environment chain. It keeps the current
environment, a global environment seeded with the builtins, and an injected io.Writer for
`print` output, constructed through New and reporting errors through a
line-annotated Reporter helper.
*/
package interpreter

import (
	"bytes"
	"io"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/reporter"
	"github.com/akashmaji946/loxgo/resolver"
	"github.com/akashmaji946/loxgo/values"
)

// Interpreter holds all state needed to execute a resolved Lox
// program: the global environment, the environment currently in
// scope, the resolver's depth table, the error reporter, and the
// writer `print` sends output to.
type Interpreter struct {
	Globals    *environment.Environment
	env        *environment.Environment
	resolution resolver.Resolution
	rep        *reporter.Reporter
	Out        io.Writer
}

// New creates an Interpreter with a fresh global environment seeded
// with the single built-in `clock`. Resolution is the table
// produced by resolver.Resolve for the program about to be run.
func New(rep *reporter.Reporter, resolution resolver.Resolution, out io.Writer) *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{
		Globals:    globals,
		env:        globals,
		resolution: resolution,
		rep:        rep,
		Out:        out,
	}
	registerBuiltins(globals)
	return interp
}

// Interpret runs statements to completion. A runtime error aborts the
// current run but is reported rather than propagated, so a REPL host
// can keep going after one.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rte, ok := r.(*RuntimeError); ok {
				i.rep.RuntimeError(rte.Token.Line, rte.Message)
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range statements {
		i.execute(stmt)
	}
}

// InterpretExpressionResult runs statements like Interpret but, if the
// program is exactly a single expression statement, also returns its
// value — used by the REPL to echo bare-expression results.
func (i *Interpreter) InterpretExpressionResult(statements []ast.Stmt) (values.Value, bool) {
	if len(statements) == 1 {
		if es, ok := statements[0].(*ast.ExpressionStmt); ok {
			var result values.Value
			var hadPanic bool
			func() {
				defer func() {
					if r := recover(); r != nil {
						if rte, ok := r.(*RuntimeError); ok {
							i.rep.RuntimeError(rte.Token.Line, rte.Message)
							hadPanic = true
							return
						}
						panic(r)
					}
				}()
				result = i.evaluate(es.Expression)
			}()
			if hadPanic {
				return nil, false
			}
			return result, true
		}
	}
	i.Interpret(statements)
	return nil, false
}

// SetResolution records a single node's scope depth, merging it into
// the interpreter's resolution table. The REPL calls this for every
// entry of each line's resolution table so that the same Interpreter (and its resolution
// table) can grow across an interactive session instead of being
// rebuilt from scratch each time.
func (i *Interpreter) SetResolution(id ast.NodeID, depth int) {
	if i.resolution == nil {
		i.resolution = make(resolver.Resolution)
	}
	i.resolution[id] = depth
}

// executeBlock runs statements with env (which the caller creates) as
// the current environment, always restoring the previous environment afterward — even if
// a return signal or runtime error unwinds through it, matching the
// teacher's defer-based cleanup discipline.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) {
	previous := i.env
	defer func() { i.env = previous }()
	i.env = env
	for _, stmt := range statements {
		i.execute(stmt)
	}
}

// Stringify renders a value the way `print` does.
func (i *Interpreter) Stringify(v values.Value) string {
	return v.String()
}

// CaptureOutput runs statements with Out redirected into a buffer and
// returns what was printed — used by tests to assert on `print`
// output without touching the real stdout, the same pattern as the
// teacher's Evaluator.SetWriter(&buf) idiom.
func (i *Interpreter) CaptureOutput(statements []ast.Stmt) string {
	var buf bytes.Buffer
	original := i.Out
	i.Out = &buf
	defer func() { i.Out = original }()
	i.Interpret(statements)
	return buf.String()
}
