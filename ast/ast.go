/*
File    : ember/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the Abstract Syntax Tree node types produced by the
parser and walked by the evaluator: the two tagged unions described in
spec.md section 3, Expression and Statement. Nodes are built once by the
parser and are immutable thereafter; nothing in this package mutates a
node after construction.
*/
package ast

import (
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

// Expr is implemented by every expression node. The visitor-style
// Accept/Visitor pair is the teacher's own dispatch idiom (see the
// teacher's parser.Visitor in test_visitor.go); it lets a walker such as
// the evaluator visit the tree without a type switch at every call site.
type Expr interface {
	AcceptExpr(v ExprVisitor) (value.Value, error)
}

// ExprVisitor is implemented by anything that walks an expression tree.
// In this repository the Evaluator is its only implementation; there is
// no AST printer.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (value.Value, error)
	VisitVariable(e *Variable) (value.Value, error)
	VisitAssign(e *Assign) (value.Value, error)
	VisitUnary(e *Unary) (value.Value, error)
	VisitBinary(e *Binary) (value.Value, error)
	VisitLogical(e *Logical) (value.Value, error)
	VisitGrouping(e *Grouping) (value.Value, error)
	VisitCall(e *Call) (value.Value, error)
}

// Stmt is implemented by every statement node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) (value.Value, error)
}

// StmtVisitor is implemented by anything that executes a statement tree.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) (value.Value, error)
	VisitPrintStmt(s *PrintStmt) (value.Value, error)
	VisitVarStmt(s *VarStmt) (value.Value, error)
	VisitBlockStmt(s *BlockStmt) (value.Value, error)
	VisitIfStmt(s *IfStmt) (value.Value, error)
	VisitWhileStmt(s *WhileStmt) (value.Value, error)
	VisitFunctionStmt(s *FunctionStmt) (value.Value, error)
	VisitReturnStmt(s *ReturnStmt) (value.Value, error)
}

// ---- Expressions ----

// Literal wraps a constant Value parsed directly from a token.
type Literal struct {
	Value value.Value
}

func (e *Literal) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitLiteral(e) }

// Variable references a name bound in the active environment chain.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitVariable(e) }

// Assign evaluates Value and stores it into the existing binding named
// by Name. Assignment is an expression: it yields the assigned value.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitAssign(e) }

// Unary applies a prefix operator (! or -) to Right.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitUnary(e) }

// Binary applies an infix arithmetic/comparison operator to Left and
// Right, evaluated strictly left-to-right.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitBinary(e) }

// Logical applies `and`/`or`, short-circuiting per spec.md section 4.5.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitLogical(e) }

// Grouping is a parenthesized sub-expression, kept as its own node so the
// parentheses remain visible in the tree.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitGrouping(e) }

// Call applies Callee to Arguments. Paren is the closing-paren token,
// kept only so runtime errors (wrong arity, non-callable) can name a
// source location.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitCall(e) }

// ---- Statements ----

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) (value.Value, error) {
	return v.VisitExpressionStmt(s)
}

// PrintStmt evaluates Expression and writes its rendering followed by a
// newline.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) (value.Value, error) { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current environment. Initializer is nil
// when the declaration had no `= expr` part, in which case the bound
// value is nil and Initialized is false (diagnostic only, per spec.md
// section 3 — lookup does not consult Initialized).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
	Initialized bool
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) (value.Value, error) { return v.VisitVarStmt(s) }

// BlockStmt is an ordered sequence of statements executed in a freshly
// pushed child environment.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) (value.Value, error) { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Condition is true, Else otherwise. Else is
// nil when the source had no else-branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) (value.Value, error) { return v.VisitIfStmt(s) }

// WhileStmt executes Body repeatedly while Condition is true. `for` loops
// desugar into this node at parse time, per spec.md section 4.2.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) (value.Value, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function, capturing the defining
// environment as its closure when evaluated.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) (value.Value, error) {
	return v.VisitFunctionStmt(s)
}

// ReturnStmt evaluates Value (or uses nil) and propagates a non-local
// exit that unwinds to the nearest enclosing function call.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) (value.Value, error) { return v.VisitReturnStmt(s) }
