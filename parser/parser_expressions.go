/*
File    : ember/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression grammar, one precedence level per function, lowest binding
first. Each binary level is left-associative: it loops, folding a new
Binary/Logical node onto the left operand for every matching operator it
sees, per spec.md section 4.2.
*/
package parser

import (
	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> IDENTIFIER "=" assignment | logic_or
//
// Assignment is parsed right-associatively by recursing into itself for
// the right-hand side, but it is not itself a binary-operator level: the
// left-hand side must already have parsed down to a single Variable, or
// the target is not assignable and an error is recorded.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary -> ( "!" | "-" ) unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= MaxFunctionArguments {
				p.errorAt(p.peek(), "can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, _ := p.consume(lexer.RIGHT_PAREN, "expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

// primary -> INTEGER | FLOAT | STRING | "true" | "false" | "nil"
//          | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.INTEGER, lexer.FLOAT, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NIL):
		return &ast.Literal{Value: literalFromToken(p.previous())}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		p.errorAt(p.peek(), "expect expression.")
		p.advance()
		return &ast.Literal{Value: literalFromToken(p.previous())}
	}
}
