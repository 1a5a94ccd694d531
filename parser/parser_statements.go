/*
File    : ember/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement-level grammar: declarations, blocks, and the control-flow
forms. `for` is parsed here and desugared directly into a WhileStmt
wrapped in a block, per spec.md section 4.2 — there is no ast.ForStmt
node at all.
*/
package parser

import (
	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

// declaration -> funDecl | varDecl | statement
//
// When a production gives up on a syntax error and returns nil, the
// parser synchronizes to the next statement boundary and returns nil;
// Parse skips nil statements. Errors a production records without giving
// up (an invalid assignment target, too many arguments, a missing
// expression) do not by themselves trigger synchronization.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	switch {
	case p.match(lexer.FUN):
		stmt = p.function("function")
	case p.match(lexer.VAR):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}
	if p.HasErrors() && stmt == nil {
		p.synchronize()
	}
	return stmt
}

// function -> IDENTIFIER "(" parameters? ")" block
func (p *Parser) function(kind string) ast.Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "expect "+kind+" name.")
	if !ok {
		return nil
	}
	if _, ok := p.consume(lexer.LEFT_PAREN, "expect '(' after "+kind+" name."); !ok {
		return nil
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= MaxFunctionArguments {
				p.errorAt(p.peek(), "can't have more than 255 parameters.")
			}
			param, ok := p.consume(lexer.IDENTIFIER, "expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(lexer.RIGHT_PAREN, "expect ')' after parameters."); !ok {
		return nil
	}
	if _, ok := p.consume(lexer.LEFT_BRACE, "expect '{' before "+kind+" body."); !ok {
		return nil
	}
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl -> IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name, ok := p.consume(lexer.IDENTIFIER, "expect variable name.")
	if !ok {
		return nil
	}

	var initializer ast.Expr
	initialized := false
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
		initialized = true
	}
	if _, ok := p.consume(lexer.SEMICOLON, "expect ';' after variable declaration."); !ok {
		return nil
	}
	return &ast.VarStmt{Name: name, Initializer: initializer, Initialized: initialized}
}

// statement -> exprStmt | printStmt | block | ifStmt | whileStmt
//            | forStmt | returnStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	if _, ok := p.consume(lexer.SEMICOLON, "expect ';' after value."); !ok {
		return nil
	}
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.consume(lexer.SEMICOLON, "expect ';' after return value."); !ok {
		return nil
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// block -> "{" declaration* "}"
// The leading "{" has already been consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "expect '}' after block.")
	return stmts
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	if _, ok := p.consume(lexer.LEFT_PAREN, "expect '(' after 'if'."); !ok {
		return nil
	}
	condition := p.expression()
	if _, ok := p.consume(lexer.RIGHT_PAREN, "expect ')' after if condition."); !ok {
		return nil
	}

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	if _, ok := p.consume(lexer.LEFT_PAREN, "expect '(' after 'while'."); !ok {
		return nil
	}
	condition := p.expression()
	if _, ok := p.consume(lexer.RIGHT_PAREN, "expect ')' after condition."); !ok {
		return nil
	}
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStmt -> "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
//
// There is no dedicated for-loop AST node. The loop is desugared here,
// at parse time, into the equivalent initializer + WhileStmt(+increment
// appended to the body) + enclosing block, exactly as spec.md section
// 4.2 specifies. The evaluator never knows `for` existed.
func (p *Parser) forStatement() ast.Stmt {
	if _, ok := p.consume(lexer.LEFT_PAREN, "expect '(' after 'for'."); !ok {
		return nil
	}

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	if _, ok := p.consume(lexer.SEMICOLON, "expect ';' after loop condition."); !ok {
		return nil
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	if _, ok := p.consume(lexer.RIGHT_PAREN, "expect ')' after for clauses."); !ok {
		return nil
	}

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: value.True}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	if _, ok := p.consume(lexer.SEMICOLON, "expect ';' after expression."); !ok {
		return nil
	}
	return &ast.ExpressionStmt{Expression: expr}
}
