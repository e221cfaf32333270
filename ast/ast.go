/*
File    : loxgo/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the Lox abstract syntax tree: one struct per
expression and statement variant, each carrying enough token
context to produce line-annotated errors. Dispatch over these nodes is
done with Go type switches in the resolver and interpreter packages, so nodes
here are plain data, not Visitor/Accept participants — a deliberate
generalization away from the teacher's Accept(visitor)-style AST
(parser/node.go) toward the mechanism the spec calls for.

Every expression node has a unique NodeID, assigned at construction
time by the parser. The resolver's scope-depth table is keyed by
NodeID rather than by Go pointer identity or structural equality, per
spec §3's invariant that two distinct occurrences of the same textual
variable must map to distinct table entries.
*/
package ast

import "github.com/akashmaji946/loxgo/token"

// NodeID is a stable per-node identifier assigned at parse time.
type NodeID int

var nextID NodeID

// NewID returns a fresh, never-reused node identifier. Called by the
// parser when constructing any Expr that the resolver may need to
// annotate (Variable, Assign, This, Super, and for symmetry all other
// expression kinds too).
func NewID() NodeID {
	nextID++
	return nextID
}

// Expr is the sum type of all Lox expression nodes.
type Expr interface {
	ID() NodeID
}

// Stmt is the sum type of all Lox statement nodes. Statements do not
// need resolver-table identity, so they carry no NodeID.
type Stmt interface {
	exprStmtTag()
}

// ---- Expressions ----

type Literal struct {
	NID   NodeID
	Value interface{} // nil, float64, string, or bool
}

func (e *Literal) ID() NodeID { return e.NID }

func NewLiteral(value interface{}) *Literal {
	return &Literal{NID: NewID(), Value: value}
}

type Grouping struct {
	NID   NodeID
	Inner Expr
}

func (e *Grouping) ID() NodeID { return e.NID }

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{NID: NewID(), Inner: inner}
}

type Unary struct {
	NID   NodeID
	Op    token.Token
	Right Expr
}

func (e *Unary) ID() NodeID { return e.NID }

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{NID: NewID(), Op: op, Right: right}
}

type Binary struct {
	NID   NodeID
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) ID() NodeID { return e.NID }

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{NID: NewID(), Left: left, Op: op, Right: right}
}

// Logical is "and"/"or"; kept distinct from Binary because it
// short-circuits.
type Logical struct {
	NID   NodeID
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) ID() NodeID { return e.NID }

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{NID: NewID(), Left: left, Op: op, Right: right}
}

type Variable struct {
	NID  NodeID
	Name token.Token
}

func (e *Variable) ID() NodeID { return e.NID }

func NewVariable(name token.Token) *Variable {
	return &Variable{NID: NewID(), Name: name}
}

type Assign struct {
	NID   NodeID
	Name  token.Token
	Value Expr
}

func (e *Assign) ID() NodeID { return e.NID }

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{NID: NewID(), Name: name, Value: value}
}

type Call struct {
	NID    NodeID
	Callee Expr
	Paren  token.Token // closing ')' token, used for call-site error lines
	Args   []Expr
}

func (e *Call) ID() NodeID { return e.NID }

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{NID: NewID(), Callee: callee, Paren: paren, Args: args}
}

type Get struct {
	NID    NodeID
	Object Expr
	Name   token.Token
}

func (e *Get) ID() NodeID { return e.NID }

func NewGet(object Expr, name token.Token) *Get {
	return &Get{NID: NewID(), Object: object, Name: name}
}

type Set struct {
	NID    NodeID
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) ID() NodeID { return e.NID }

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{NID: NewID(), Object: object, Name: name, Value: value}
}

type This struct {
	NID     NodeID
	Keyword token.Token
}

func (e *This) ID() NodeID { return e.NID }

func NewThis(keyword token.Token) *This {
	return &This{NID: NewID(), Keyword: keyword}
}

type Super struct {
	NID     NodeID
	Keyword token.Token
	Method  token.Token
}

func (e *Super) ID() NodeID { return e.NID }

func NewSuper(keyword, method token.Token) *Super {
	return &Super{NID: NewID(), Keyword: keyword, Method: method}
}

// ---- Statements ----

type ExpressionStmt struct{ Expression Expr }

func (*ExpressionStmt) exprStmtTag() {}

type PrintStmt struct{ Expression Expr }

func (*PrintStmt) exprStmtTag() {}

type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if there is no initializer
}

func (*VarStmt) exprStmtTag() {}

type BlockStmt struct{ Statements []Stmt }

func (*BlockStmt) exprStmtTag() {}

type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (*IfStmt) exprStmtTag() {}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) exprStmtTag() {}

// FunctionStmt represents both a `fun` declaration and a class method
// body.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionStmt) exprStmtTag() {}

type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if bare `return;`
}

func (*ReturnStmt) exprStmtTag() {}

type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if no superclass
	Methods    []*FunctionStmt
}

func (*ClassStmt) exprStmtTag() {}
