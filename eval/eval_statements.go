/*
File    : ember/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements ast.StmtVisitor. Every Visit method here returns
(value.Value, error) to satisfy the shared Expr/Stmt visitor shape, but
for statements the value half is never meaningful to a caller; a
`return` travels in the error half as a returnSignal — see evaluator.go.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/environment"
	"github.com/akashmaji946/ember/function"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

func (e *Evaluator) VisitExpressionStmt(stmt *ast.ExpressionStmt) (value.Value, error) {
	_, err := e.evaluate(stmt.Expression)
	return value.NilValue, err
}

func (e *Evaluator) VisitPrintStmt(stmt *ast.PrintStmt) (value.Value, error) {
	v, err := e.evaluate(stmt.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Writer, v.String())
	return value.NilValue, nil
}

func (e *Evaluator) VisitVarStmt(stmt *ast.VarStmt) (value.Value, error) {
	var v value.Value = value.NilValue
	if stmt.Initializer != nil {
		var err error
		v, err = e.evaluate(stmt.Initializer)
		if err != nil {
			return nil, err
		}
	}
	e.env.Define(stmt.Name.Lexeme, v)
	return value.NilValue, nil
}

func (e *Evaluator) VisitBlockStmt(stmt *ast.BlockStmt) (value.Value, error) {
	err := e.executeStatementsInEnv(stmt.Statements, environment.New(e.env))
	return value.NilValue, err
}

func (e *Evaluator) VisitIfStmt(stmt *ast.IfStmt) (value.Value, error) {
	cond, err := e.evaluate(stmt.Condition)
	if err != nil {
		return nil, err
	}
	ok, err := requireBoolean(conditionToken(stmt.Condition), cond, "If condition")
	if err != nil {
		return nil, err
	}
	if ok {
		return e.Execute(stmt.Then)
	}
	if stmt.Else != nil {
		return e.Execute(stmt.Else)
	}
	return value.NilValue, nil
}

func (e *Evaluator) VisitWhileStmt(stmt *ast.WhileStmt) (value.Value, error) {
	for {
		cond, err := e.evaluate(stmt.Condition)
		if err != nil {
			return nil, err
		}
		ok, err := requireBoolean(conditionToken(stmt.Condition), cond, "While condition")
		if err != nil {
			return nil, err
		}
		if !ok {
			return value.NilValue, nil
		}
		if _, err := e.Execute(stmt.Body); err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) VisitFunctionStmt(stmt *ast.FunctionStmt) (value.Value, error) {
	fn := &function.UserFunction{Declaration: stmt, Closure: e.env}
	e.env.Define(stmt.Name.Lexeme, fn)
	return value.NilValue, nil
}

func (e *Evaluator) VisitReturnStmt(stmt *ast.ReturnStmt) (value.Value, error) {
	var v value.Value = value.NilValue
	if stmt.Value != nil {
		var err error
		v, err = e.evaluate(stmt.Value)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{Value: v}
}

// conditionToken recovers a token to anchor a diagnostic at, since
// IfStmt/WhileStmt carry only an Expr for their condition, not a Token.
// Binary/Logical/Unary expose their operator and Variable its name;
// anything else (a literal, grouping, call or assignment) falls back to a
// zero-valued token, so the diagnostic reports line 0 rather than
// panicking.
func conditionToken(expr ast.Expr) lexer.Token {
	switch v := expr.(type) {
	case *ast.Binary:
		return v.Operator
	case *ast.Logical:
		return v.Operator
	case *ast.Unary:
		return v.Operator
	case *ast.Variable:
		return v.Name
	default:
		return lexer.Token{}
	}
}
