/*
File    : ember/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Implements ast.ExprVisitor. Every operator is typed at runtime per
spec.md section 4.5: no implicit int/float coercion anywhere, a
deliberate departure from a C-like "numeric promotion" rule that the
source language's author called out explicitly (see section 9's
REDESIGN FLAGS discussion and the Open Question on integer semantics).
*/
package eval

import (
	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/ember"
	"github.com/akashmaji946/ember/function"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

func (e *Evaluator) VisitLiteral(expr *ast.Literal) (value.Value, error) {
	return expr.Value, nil
}

func (e *Evaluator) VisitGrouping(expr *ast.Grouping) (value.Value, error) {
	return e.evaluate(expr.Inner)
}

func (e *Evaluator) VisitVariable(expr *ast.Variable) (value.Value, error) {
	v, ok := e.env.Get(expr.Name.Lexeme)
	if !ok {
		return nil, ember.NewRuntimeError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme)
	}
	return v, nil
}

func (e *Evaluator) VisitAssign(expr *ast.Assign) (value.Value, error) {
	v, err := e.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	if !e.env.Assign(expr.Name.Lexeme, v) {
		return nil, ember.NewRuntimeError(expr.Name, "Undefined variable '%s'.", expr.Name.Lexeme)
	}
	return v, nil
}

func (e *Evaluator) VisitUnary(expr *ast.Unary) (value.Value, error) {
	right, err := e.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.BANG:
		// Boolean is the only accepted operand; nil is the one documented
		// exception (`!nil` yields `true`) — everything else is a runtime
		// error, not a silent `false`.
		switch rv := right.(type) {
		case *value.Boolean:
			return value.Bool(!rv.Value), nil
		case *value.Nil:
			return value.True, nil
		default:
			return nil, ember.NewRuntimeError(expr.Operator, "Operand must be a boolean.")
		}
	case lexer.MINUS:
		switch v := right.(type) {
		case *value.Integer:
			return &value.Integer{Value: -v.Value}, nil
		case *value.Float:
			return &value.Float{Value: -v.Value}, nil
		default:
			return nil, ember.NewRuntimeError(expr.Operator, "Operand must be a number.")
		}
	}
	return nil, ember.NewRuntimeError(expr.Operator, "Unknown unary operator '%s'.", expr.Operator.Lexeme)
}

func (e *Evaluator) VisitLogical(expr *ast.Logical) (value.Value, error) {
	left, err := e.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	leftBool, err := requireBoolean(expr.Operator, left, "Left operand of '"+expr.Operator.Lexeme+"'")
	if err != nil {
		return nil, err
	}

	if expr.Operator.Type == lexer.OR {
		if leftBool {
			return left, nil
		}
	} else {
		if !leftBool {
			return left, nil
		}
	}

	right, err := e.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	if _, err := requireBoolean(expr.Operator, right, "Right operand of '"+expr.Operator.Lexeme+"'"); err != nil {
		return nil, err
	}
	return right, nil
}

func (e *Evaluator) VisitBinary(expr *ast.Binary) (value.Value, error) {
	left, err := e.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.PLUS:
		return evalAdd(expr.Operator, left, right)
	case lexer.MINUS:
		return evalArith(expr.Operator, left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case lexer.STAR:
		return evalArith(expr.Operator, left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case lexer.SLASH:
		return evalDivide(expr.Operator, left, right)
	case lexer.GREATER:
		return evalCompare(expr.Operator, left, right, func(c int) bool { return c > 0 })
	case lexer.GREATER_EQUAL:
		return evalCompare(expr.Operator, left, right, func(c int) bool { return c >= 0 })
	case lexer.LESS:
		return evalCompare(expr.Operator, left, right, func(c int) bool { return c < 0 })
	case lexer.LESS_EQUAL:
		return evalCompare(expr.Operator, left, right, func(c int) bool { return c <= 0 })
	case lexer.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right)), nil
	case lexer.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right)), nil
	}
	return nil, ember.NewRuntimeError(expr.Operator, "Unknown binary operator '%s'.", expr.Operator.Lexeme)
}

// evalAdd implements the one overloaded operator: numeric add on two
// matching numeric operands, string concatenation on two strings. Any
// other pairing, including a mismatched int/float pair, is a runtime
// error — spec.md section 4.3 calls for "two matching numeric operands",
// not automatic promotion.
func evalAdd(op lexer.Token, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Integer:
		if r, ok := right.(*value.Integer); ok {
			return &value.Integer{Value: l.Value + r.Value}, nil
		}
	case *value.Float:
		if r, ok := right.(*value.Float); ok {
			return &value.Float{Value: l.Value + r.Value}, nil
		}
	case *value.String:
		if r, ok := right.(*value.String); ok {
			return &value.String{Value: l.Value + r.Value}, nil
		}
	}
	return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type or two strings.")
}

func evalArith(op lexer.Token, left, right value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	switch l := left.(type) {
	case *value.Integer:
		if r, ok := right.(*value.Integer); ok {
			return &value.Integer{Value: intOp(l.Value, r.Value)}, nil
		}
	case *value.Float:
		if r, ok := right.(*value.Float); ok {
			return &value.Float{Value: floatOp(l.Value, r.Value)}, nil
		}
	}
	return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type.")
}

// evalDivide handles `/` specially because integer division truncates
// (spec.md section 8's worked example: `7 / 5` on integers is `1`, not
// `1.4`) while float division does not, and because division by zero is
// always a runtime error regardless of operand kind.
func evalDivide(op lexer.Token, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.Integer:
		r, ok := right.(*value.Integer)
		if !ok {
			return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type.")
		}
		if r.Value == 0 {
			return nil, ember.NewRuntimeError(op, "Division by zero.")
		}
		return &value.Integer{Value: l.Value / r.Value}, nil
	case *value.Float:
		r, ok := right.(*value.Float)
		if !ok {
			return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type.")
		}
		if r.Value == 0 {
			return nil, ember.NewRuntimeError(op, "Division by zero.")
		}
		return &value.Float{Value: l.Value / r.Value}, nil
	}
	return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type.")
}

func evalCompare(op lexer.Token, left, right value.Value, test func(cmp int) bool) (value.Value, error) {
	switch l := left.(type) {
	case *value.Integer:
		r, ok := right.(*value.Integer)
		if !ok {
			return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type.")
		}
		return value.Bool(test(compareInt64(l.Value, r.Value))), nil
	case *value.Float:
		r, ok := right.(*value.Float)
		if !ok {
			return nil, ember.NewRuntimeError(op, "Operands must be two numbers of the same type.")
		}
		return value.Bool(test(compareFloat64(l.Value, r.Value))), nil
	}
	return nil, ember.NewRuntimeError(op, "Operands must be numbers.")
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (e *Evaluator) VisitCall(expr *ast.Call) (value.Value, error) {
	callee, err := e.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(expr.Arguments))
	for i, argExpr := range expr.Arguments {
		v, err := e.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(function.Callable)
	if !ok {
		return nil, ember.NewRuntimeError(expr.Paren, "Can only call functions.")
	}
	if len(args) != callable.Arity() {
		return nil, ember.NewRuntimeError(expr.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(e, args)
}
