/*
File    : loxgo/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/reporter"
)

func resolveSrc(t *testing.T, src string) (Resolution, *reporter.Reporter, []ast.Stmt) {
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	tokens := lexer.New(src, rep).ScanTokens()
	statements := parser.New(tokens, rep).Parse()
	table := New(rep).Resolve(statements)
	return table, rep, statements
}

func TestResolve_GlobalHasNoEntry(t *testing.T) {
	table, rep, statements := resolveSrc(t, "var a = 1; print a;")
	assert.False(t, rep.HadError())

	printStmt := statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)
	_, ok := table[variable.ID()]
	assert.False(t, ok, "global reference should have no resolution entry")
}

func TestResolve_LocalReferenceGetsDepth(t *testing.T) {
	table, rep, statements := resolveSrc(t, "{ var a = 1; print a; }")
	assert.False(t, rep.HadError())

	block := statements[0].(*ast.BlockStmt)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := table[variable.ID()]
	assert.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolve_ReadInOwnInitializerIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "{ var a = a; }")
	assert.True(t, rep.HadError())
}

func TestResolve_RedeclarationInSameScopeIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "{ var a = 1; var a = 2; }")
	assert.True(t, rep.HadError())
}

func TestResolve_ReturnAtTopLevelIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "return 1;")
	assert.True(t, rep.HadError())
}

func TestResolve_ReturnValueFromInitializerIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "class A { init() { return 1; } }")
	assert.True(t, rep.HadError())
}

func TestResolve_ThisOutsideClassIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "print this;")
	assert.True(t, rep.HadError())
}

func TestResolve_SuperOutsideClassIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "print super.x;")
	assert.True(t, rep.HadError())
}

func TestResolve_ClassInheritingFromItselfIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "class Oops < Oops {}")
	assert.True(t, rep.HadError())
}

func TestResolve_SuperWithNoSuperclassIsAnError(t *testing.T) {
	_, rep, _ := resolveSrc(t, "class A { m() { return super.m(); } }")
	assert.True(t, rep.HadError())
}

func TestResolve_NestedFunctionClosureDepth(t *testing.T) {
	src := `
	fun outer() {
		var x = 1;
		fun inner() {
			print x;
		}
	}
	`
	table, rep, statements := resolveSrc(t, src)
	assert.False(t, rep.HadError())

	outer := statements[0].(*ast.FunctionStmt)
	inner := outer.Body[1].(*ast.FunctionStmt)
	printStmt := inner.Body[0].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := table[variable.ID()]
	assert.True(t, ok)
	assert.Equal(t, 1, depth)
}
