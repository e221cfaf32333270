/*
File    : loxgo/interpreter/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression evaluation, kept in its own file apart from statement
execution.
*/
package interpreter

import (
	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/values"
)

func (i *Interpreter) evaluate(expr ast.Expr) values.Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value)

	case *ast.Grouping:
		return i.evaluate(e.Inner)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Variable:
		return i.lookUpVariable(e.Name, e.ID())

	case *ast.Assign:
		value := i.evaluate(e.Value)
		if depth, ok := i.resolution[e.ID()]; ok {
			i.env.AssignAt(depth, e.Name.Lexeme, value)
		} else if err := i.Globals.Assign(e.Name.Lexeme, value); err != nil {
			panic(newRuntimeError(e.Name, "%s", err.Error()))
		}
		return value

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		return i.evalGet(e)

	case *ast.Set:
		return i.evalSet(e)

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e.ID())

	case *ast.Super:
		return i.evalSuper(e)
	}
	panic("interpreter: unreachable expression kind")
}

func literalValue(v interface{}) values.Value {
	switch val := v.(type) {
	case nil:
		return values.NilValue
	case bool:
		return values.Bool(val)
	case float64:
		return values.Number(val)
	case string:
		return values.String(val)
	default:
		return values.NilValue
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, id ast.NodeID) values.Value {
	if depth, ok := i.resolution[id]; ok {
		return i.env.GetAt(depth, name.Lexeme)
	}
	value, err := i.Globals.Get(name.Lexeme)
	if err != nil {
		panic(newRuntimeError(name, "%s", err.Error()))
	}
	return value
}

func (i *Interpreter) evalUnary(e *ast.Unary) values.Value {
	right := i.evaluate(e.Right)
	switch e.Op.Kind {
	case token.BANG:
		return values.Bool(!values.IsTruthy(right))
	case token.MINUS:
		n := checkNumberOperand(e.Op, right)
		return -n
	}
	panic("interpreter: unreachable unary operator")
}

// evalLogical short-circuits: `or` returns the left operand if truthy,
// otherwise evaluates and returns the right; `and` returns the left
// operand if falsy, otherwise evaluates and returns the right.
func (i *Interpreter) evalLogical(e *ast.Logical) values.Value {
	left := i.evaluate(e.Left)
	if e.Op.Kind == token.OR {
		if values.IsTruthy(left) {
			return left
		}
	} else {
		if !values.IsTruthy(left) {
			return left
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) values.Value {
	left := i.evaluate(e.Left)
	right := i.evaluate(e.Right)

	switch e.Op.Kind {
	case token.MINUS:
		l, r := checkNumberOperands(e.Op, left, right)
		return l - r
	case token.SLASH:
		l, r := checkNumberOperands(e.Op, left, right)
		return l / r
	case token.STAR:
		l, r := checkNumberOperands(e.Op, left, right)
		return l * r
	case token.PLUS:
		return i.evalPlus(e.Op, left, right)
	case token.GREATER:
		l, r := checkNumberOperands(e.Op, left, right)
		return values.Bool(l > r)
	case token.GREATER_EQUAL:
		l, r := checkNumberOperands(e.Op, left, right)
		return values.Bool(l >= r)
	case token.LESS:
		l, r := checkNumberOperands(e.Op, left, right)
		return values.Bool(l < r)
	case token.LESS_EQUAL:
		l, r := checkNumberOperands(e.Op, left, right)
		return values.Bool(l <= r)
	case token.BANG_EQUAL:
		return values.Bool(!values.Equal(left, right))
	case token.EQUAL_EQUAL:
		return values.Bool(values.Equal(left, right))
	}
	panic("interpreter: unreachable binary operator")
}

// evalPlus permits number+number addition and string+string
// concatenation; any other combination is a TypeError.
func (i *Interpreter) evalPlus(op token.Token, left, right values.Value) values.Value {
	if ln, ok := left.(values.Number); ok {
		if rn, ok := right.(values.Number); ok {
			return ln + rn
		}
	}
	if ls, ok := left.(values.String); ok {
		if rs, ok := right.(values.String); ok {
			return ls + rs
		}
	}
	panic(newRuntimeError(op, "Operands must be two numbers or two strings."))
}

func checkNumberOperand(op token.Token, operand values.Value) values.Number {
	if n, ok := operand.(values.Number); ok {
		return n
	}
	panic(newRuntimeError(op, "Operand must be a number."))
}

func checkNumberOperands(op token.Token, left, right values.Value) (values.Number, values.Number) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		panic(newRuntimeError(op, "Operands must be numbers."))
	}
	return ln, rn
}

func (i *Interpreter) evalCall(e *ast.Call) values.Value {
	callee := i.evaluate(e.Callee)

	args := make([]values.Value, len(e.Args))
	for idx, argExpr := range e.Args {
		args[idx] = i.evaluate(argExpr)
	}

	callable, ok := callee.(Callable)
	if !ok {
		panic(newRuntimeError(e.Paren, "Can only call functions and classes."))
	}
	if len(args) != callable.Arity() {
		panic(newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) values.Value {
	object := i.evaluate(e.Object)
	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(newRuntimeError(e.Name, "Only instances have properties."))
	}
	value, err := instance.Get(e.Name)
	if err != nil {
		panic(newRuntimeError(e.Name, "%s", err.Error()))
	}
	return value
}

func (i *Interpreter) evalSet(e *ast.Set) values.Value {
	object := i.evaluate(e.Object)
	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(newRuntimeError(e.Name, "Only instances have fields."))
	}
	value := i.evaluate(e.Value)
	instance.Set(e.Name.Lexeme, value)
	return value
}

// evalSuper resolves a `super.method` expression: looks up the
// superclass bound in the scope exactly one level above `this`'s
// scope, then binds the found method to the current `this`.
func (i *Interpreter) evalSuper(e *ast.Super) values.Value {
	depth, ok := i.resolution[e.ID()]
	if !ok {
		panic(newRuntimeError(e.Keyword, "Can't use 'super' outside of a class."))
	}
	superclass := i.env.GetAt(depth, "super").(*LoxClass)
	instance := i.env.GetAt(depth-1, "this").(*LoxInstance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		panic(newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme))
	}
	return method.Bind(instance)
}
