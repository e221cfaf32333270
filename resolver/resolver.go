/*
File    : loxgo/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package resolver implements the static pre-pass described in spec §4.3:
a walk over the AST that maintains a stack of lexical scopes and
produces a Resolution table mapping each variable-use expression to
the number of environments the interpreter must walk outward to find
its binding. Absence from the table means "global".

No dedicated resolver exists in the teacher repo or in
original_source/pylox (confirmed empty: pylox's filtered source has a
scanner/parser/interpreter but no resolve pass) — this component
follows spec §4.3 directly. Its scope stack is a plain
[]map[string]bool, a compile-time analogue of the teacher's
scope.Scope push/pop/shadow pattern (scope/scope.go), generalized from
a runtime value store to a compile-time "declared but not yet
defined" flag store.
*/
package resolver

import (
	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/reporter"
	"github.com/akashmaji946/loxgo/token"
)

// Resolution maps an expression's NodeID to the number of enclosing
// environments to walk outward to reach its binding. A NodeID with no
// entry refers to a global.
type Resolution map[ast.NodeID]int

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Resolver walks a statement list once, producing a Resolution table
// and reporting any resolve-time errors to rep.
type Resolver struct {
	rep         *reporter.Reporter
	scopes      []map[string]bool
	resolution  Resolution
	currentFn   functionKind
	currentCls  classKind
}

// New creates a Resolver that reports errors to rep.
func New(rep *reporter.Reporter) *Resolver {
	return &Resolver{rep: rep, resolution: make(Resolution)}
}

// Resolve runs the pass over statements and returns the resolution
// table. Callers should check rep.HadError() before using it, since a
// table produced alongside a reported error may be incomplete.
func (r *Resolver) Resolve(statements []ast.Stmt) Resolution {
	r.resolveStatements(statements)
	return r.resolution
}

// ---- scope stack ----

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope with a "not yet defined"
// flag. Declaring the same name twice in one non-global scope is a
// resolve error.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.Lexeme]; ok {
		r.rep.ResolveError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define flips name's flag to true, meaning its initializer (if any)
// has finished resolving and reads of it are now legal.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.Lexeme] = true
}

// resolveLocal walks scopes from innermost to outermost; on the first
// hit it records depth = (topIndex - hitIndex) for id. No hit means
// the name is global, and nothing is recorded.
func (r *Resolver) resolveLocal(id ast.NodeID, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.resolution[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

// ---- statements ----

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFn == fnNone {
			r.rep.ResolveError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFn == fnInitializer {
				r.rep.ResolveError(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ClassStmt:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

func (r *Resolver) resolveClass(c *ast.ClassStmt) {
	enclosingCls := r.currentCls
	r.currentCls = classClass

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.rep.ResolveError(c.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentCls = classSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range c.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentCls = enclosingCls
}

// ---- expressions ----

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.peekScope()[e.Name.Lexeme]; ok && !defined {
				r.rep.ResolveError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID(), e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// no sub-expressions, no identifier to resolve

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentCls == classNone {
			r.rep.ResolveError(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID(), e.Keyword)

	case *ast.Super:
		if r.currentCls == classNone {
			r.rep.ResolveError(e.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentCls != classSubclass {
			r.rep.ResolveError(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.ID(), e.Keyword)
	}
}
