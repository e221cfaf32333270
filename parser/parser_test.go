/*
File    : loxgo/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/reporter"
)

func parseSrc(t *testing.T, src string) ([]ast.Stmt, *reporter.Reporter) {
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	tokens := lexer.New(src, rep).ScanTokens()
	statements := New(tokens, rep).Parse()
	return statements, rep
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	statements, rep := parseSrc(t, "1 + 2 * 3;")
	assert.False(t, rep.HadError())
	assert.Len(t, statements, 1)

	exprStmt, ok := statements[0].(*ast.ExpressionStmt)
	assert.True(t, ok)

	binary, ok := exprStmt.Expression.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", string(binary.Op.Kind))

	right, ok := binary.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", string(right.Op.Kind))
}

func TestParse_VarDeclaration(t *testing.T) {
	statements, rep := parseSrc(t, `var a = "hi";`)
	assert.False(t, rep.HadError())
	assert.Len(t, statements, 1)

	varStmt, ok := statements[0].(*ast.VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)
	assert.NotNil(t, varStmt.Initializer)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	statements, rep := parseSrc(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.False(t, rep.HadError())
	assert.Len(t, statements, 1)

	block, ok := statements[0].(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)

	_, isVar := block.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, isWhile := block.Statements[1].(*ast.WhileStmt)
	assert.True(t, isWhile)
	assert.NotNil(t, whileStmt.Condition)

	bodyBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, bodyBlock.Statements, 2)
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	statements, rep := parseSrc(t, "class Cake < Pastry { taste() { return 1; } }")
	assert.False(t, rep.HadError())
	assert.Len(t, statements, 1)

	classStmt, ok := statements[0].(*ast.ClassStmt)
	assert.True(t, ok)
	assert.Equal(t, "Cake", classStmt.Name.Lexeme)
	assert.NotNil(t, classStmt.Superclass)
	assert.Equal(t, "Pastry", classStmt.Superclass.Name.Lexeme)
	assert.Len(t, classStmt.Methods, 1)
	assert.Equal(t, "taste", classStmt.Methods[0].Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetRecoversAndReports(t *testing.T) {
	_, rep := parseSrc(t, "1 + 2 = 3;")
	assert.True(t, rep.HadError())
}

func TestParse_MissingSemicolonSynchronizesToNextStatement(t *testing.T) {
	statements, rep := parseSrc(t, "var a = 1\nvar b = 2;")
	assert.True(t, rep.HadError())
	// synchronize() discards up to the next statement boundary; the
	// second, well-formed declaration should still be parsed.
	assert.GreaterOrEqual(t, len(statements), 1)
}

func TestParse_EachNodeGetsAUniqueNodeID(t *testing.T) {
	statements, rep := parseSrc(t, "1; 2;")
	assert.False(t, rep.HadError())
	first := statements[0].(*ast.ExpressionStmt).Expression.(*ast.Literal)
	second := statements[1].(*ast.ExpressionStmt).Expression.(*ast.Literal)
	assert.NotEqual(t, first.ID(), second.ID())
}
