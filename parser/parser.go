/*
File    : loxgo/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a predictive recursive-descent parser for
Lox, following the grammar in spec §4.2 exactly:

	program    → declaration* EOF
	declaration→ classDecl | funDecl | varDecl | statement
	classDecl  → "class" IDENT ( "<" IDENT )? "{" function* "}"
	funDecl    → "fun" function
	function   → IDENT "(" params? ")" block
	varDecl    → "var" IDENT ( "=" expression )? ";"
	statement  → exprStmt | printStmt | block | ifStmt
	             | whileStmt | forStmt | returnStmt
	forStmt    → "for" "(" (varDecl|exprStmt|";") expression? ";" expression? ")" statement
	expression → assignment
	assignment → ( call "." )? IDENT "=" assignment | logic_or
	logic_or   → logic_and ( "or" logic_and )*
	logic_and  → equality  ( "and" equality )*
	equality   → comparison ( ( "!="|"==" ) comparison )*
	comparison → term ( ( ">"|">="|"<"|"<=" ) term )*
	term       → factor ( ( "-"|"+" ) factor )*
	factor     → unary  ( ( "/"|"*" ) unary )*
	unary      → ( "!"|"-" ) unary | call
	call       → primary ( "(" args? ")" | "." IDENT )*
	primary    → "true"|"false"|"nil"|"this"|NUMBER|STRING|IDENT
	             | "(" expression ")" | "super" "." IDENT

The teacher's parser (parser/parser.go) is a Pratt parser with a
peek/current token pair and an Errors []string collection field; this
parser keeps that error-collecting discipline and struct shape but
uses the strategy the spec calls for — a fixed recursive-descent
precedence cascade plus a synchronize()-based panic-mode recovery — instead of Pratt precedence tables, since the two are
not the same algorithm and the spec is explicit about which one Lox
uses.
*/
package parser

import (
	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/reporter"
	"github.com/akashmaji946/loxgo/token"
)

const maxArgs = 255

// parseError is thrown internally (via panic/recover) to unwind to the
// nearest declaration() call, which then invokes synchronize(). This
// mirrors the teacher's style of collecting errors into a slice rather
// than aborting on the first one, while using Go's panic/recover as the
// non-local jump the original implementation gets from exceptions.
type parseError struct{}

// Parser converts a token stream into a statement list. Errors are
// reported through rep rather than returned, so a single parse can
// surface every syntax error it finds.
type Parser struct {
	tokens  []token.Token
	current int
	rep     *reporter.Reporter
}

// New creates a Parser over tokens, reporting syntax errors to rep.
func New(tokens []token.Token, rep *reporter.Reporter) *Parser {
	return &Parser{tokens: tokens, rep: rep}
}

// Parse runs the parser to completion and returns the statement list.
// If any ParseError was reported, the returned list may be partial;
// callers must check rep.HadError() before executing it.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ---- token stream helpers ----

func (p *Parser) peek() token.Token      { return p.tokens[p.current] }
func (p *Parser) previous() token.Token  { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool          { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind or reports a ParseError
// and unwinds to the nearest recovery point.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) error(tok token.Token, message string) parseError {
	p.rep.ParseError(tok, "%s", message)
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';' or just before a statement-starting
// keyword. This confines the damage of one syntax error.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
		if p.previous().Kind == token.SEMICOLON {
			return
		}
	}
}

// ---- declarations ----

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function parses the shared `function` production: IDENT "(" params? ")" block.
// kind is "function" or "method", used only for error messages.
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// ---- statements ----

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for` into a `while` wrapped in a block
// containing the initializer, with the increment appended to the body.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.check(token.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// ---- expressions ----

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses an r-value expression first, then — if '=' follows
// — validates the left side is a legal assignment target (Variable →
// Assign, Get → Set); an illegal target reports a non-fatal error and
// returns the r-value unchanged.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.error(equals, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false)
	case p.match(token.TRUE):
		return ast.NewLiteral(true)
	case p.match(token.NIL):
		return ast.NewLiteral(nil)
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(token.THIS):
		return ast.NewThis(p.previous())
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	default:
		panic(p.error(p.peek(), "Expect expression."))
	}
}
