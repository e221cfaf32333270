/*
File    : loxgo/interpreter/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/reporter"
	"github.com/akashmaji946/loxgo/resolver"
)

// run lexes, parses, resolves and interprets src, capturing print
// output and returning the Reporter used throughout, so a test can
// assert on error flags as well as on printed text.
func run(t *testing.T, src string) (string, *reporter.Reporter) {
	var errBuf bytes.Buffer
	rep := reporter.New(&errBuf)

	tokens := lexer.New(src, rep).ScanTokens()
	if rep.HadError() {
		return "", rep
	}

	statements := parser.New(tokens, rep).Parse()
	if rep.HadError() {
		return "", rep
	}

	table := resolver.New(rep).Resolve(statements)
	if rep.HadError() {
		return "", rep
	}

	var outBuf bytes.Buffer
	interp := New(rep, table, &outBuf)
	interp.Interpret(statements)
	return outBuf.String(), rep
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, rep := run(t, "print 1 + 2 * 3;")
	assert.False(t, rep.HadError())
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_TypeErrorOnMixedPlus(t *testing.T) {
	_, rep := run(t, `print "foo" + 1;`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_ShortCircuitOr(t *testing.T) {
	out, _ := run(t, `
		fun sideEffect() { print "evaluated"; return true; }
		print true or sideEffect();
	`)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_ShortCircuitAnd(t *testing.T) {
	out, _ := run(t, `
		fun sideEffect() { print "evaluated"; return true; }
		print false and sideEffect();
	`)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_Closures(t *testing.T) {
	src := `
	fun makeCounter() {
		var count = 0;
		fun counter() {
			count = count + 1;
			return count;
		}
		return counter;
	}
	var c = makeCounter();
	print c();
	print c();
	print c();
	`
	out, rep := run(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_ClassInstanceFieldsAndMethods(t *testing.T) {
	src := `
	class Greeter {
		init(name) {
			this.name = name;
		}
		greet() {
			return "hi " + this.name;
		}
	}
	var g = Greeter("ada");
	print g.greet();
	`
	out, rep := run(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "hi ada\n", out)
}

func TestInterpret_InheritanceAndSuper(t *testing.T) {
	src := `
	class Pastry {
		describe() {
			return "a pastry";
		}
	}
	class Cake < Pastry {
		describe() {
			return super.describe() + ", specifically cake";
		}
	}
	print Cake().describe();
	`
	out, rep := run(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "a pastry, specifically cake\n", out)
}

func TestInterpret_InitAlwaysReturnsInstance(t *testing.T) {
	src := `
	class Box {
		init() {
			return;
		}
	}
	print Box();
	`
	out, rep := run(t, src)
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "Box instance\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	src := `
	var i = 0;
	var sum = 0;
	while (i < 5) {
		sum = sum + i;
		i = i + 1;
	}
	print sum;
	`
	out, _ := run(t, src)
	assert.Equal(t, "10\n", out)
}

func TestInterpret_ForLoop(t *testing.T) {
	out, _ := run(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := run(t, "print undefined_var;")
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, rep := run(t, `var x = 1; x();`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, rep := run(t, `fun f(a) { return a; } f(1, 2);`)
	assert.True(t, rep.HadRuntimeError())
}

func TestInterpretExpressionResult_EchoesBareExpression(t *testing.T) {
	var errBuf bytes.Buffer
	rep := reporter.New(&errBuf)
	src := "1 + 1;"
	tokens := lexer.New(src, rep).ScanTokens()
	statements := parser.New(tokens, rep).Parse()
	table := resolver.New(rep).Resolve(statements)

	var outBuf bytes.Buffer
	interp := New(rep, table, &outBuf)
	result, ok := interp.InterpretExpressionResult(statements)
	assert.True(t, ok)
	assert.Equal(t, "2", result.String())
}

func TestInterpretExpressionResult_StatementsStillRunNormally(t *testing.T) {
	var errBuf bytes.Buffer
	rep := reporter.New(&errBuf)
	src := `var a = 1; print a;`
	tokens := lexer.New(src, rep).ScanTokens()
	statements := parser.New(tokens, rep).Parse()
	table := resolver.New(rep).Resolve(statements)

	var outBuf bytes.Buffer
	interp := New(rep, table, &outBuf)
	_, ok := interp.InterpretExpressionResult(statements)
	assert.False(t, ok)
	assert.Equal(t, "1\n", outBuf.String())
}

func TestSetResolution_MergesIntoExistingTable(t *testing.T) {
	var errBuf bytes.Buffer
	rep := reporter.New(&errBuf)
	interp := New(rep, make(resolver.Resolution), &bytes.Buffer{})

	var id ast.NodeID = 42
	interp.SetResolution(id, 2)
	assert.Equal(t, 2, interp.resolution[id])
}

func TestClockIsRegisteredAsZeroArityBuiltin(t *testing.T) {
	out, rep := run(t, "print clock() > 0;")
	assert.False(t, rep.HadRuntimeError())
	assert.Equal(t, "true\n", out)
}
