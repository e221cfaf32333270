/*
File    : loxgo/interpreter/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement execution, kept in its own file apart from expression
evaluation.
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/values"
)

func (i *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		i.evaluate(s.Expression)

	case *ast.PrintStmt:
		value := i.evaluate(s.Expression)
		fmt.Fprintln(i.Out, i.Stringify(value))

	case *ast.VarStmt:
		var value values.Value = values.NilValue
		if s.Initializer != nil {
			value = i.evaluate(s.Initializer)
		}
		i.env.Define(s.Name.Lexeme, value)

	case *ast.BlockStmt:
		i.executeBlock(s.Statements, environment.New(i.env))

	case *ast.IfStmt:
		if values.IsTruthy(i.evaluate(s.Condition)) {
			i.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			i.execute(s.ElseBranch)
		}

	case *ast.WhileStmt:
		for values.IsTruthy(i.evaluate(s.Condition)) {
			i.execute(s.Body)
		}

	case *ast.FunctionStmt:
		fn := &LoxFunction{Declaration: s, Closure: i.env, IsInitializer: false}
		i.env.Define(s.Name.Lexeme, fn)

	case *ast.ReturnStmt:
		var value values.Value = values.NilValue
		if s.Value != nil {
			value = i.evaluate(s.Value)
		}
		panic(returnSignal{value: value})

	case *ast.ClassStmt:
		i.executeClass(s)
	}
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) {
	var superclass *LoxClass
	if s.Superclass != nil {
		value := i.evaluate(s.Superclass)
		sc, ok := value.(*LoxClass)
		if !ok {
			panic(newRuntimeError(s.Superclass.Name, "Superclass must be a class."))
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, values.NilValue)

	classEnv := i.env
	if superclass != nil {
		classEnv = environment.New(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction)
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &LoxFunction{
			Declaration:   method,
			Closure:       classEnv,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &LoxClass{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	i.env.Assign(s.Name.Lexeme, class)
}
