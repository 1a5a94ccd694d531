/*
File    : ember/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a recursive-descent parser for Ember source
code. The grammar is the one in spec.md section 4.2, a small C-like
expression/statement language: declarations, blocks, if/while/for, and
functions with lexically-scoped closures.

Unlike the teacher's Pratt parser, which threads a two-token lookahead
directly against a streaming lexer.NextToken(), this parser consumes a
fully materialized []lexer.Token slice produced once up front by
Lexer.ScanTokens(). Recursive descent with one token of lookahead is the
simpler fit for a grammar this size and is how the language's original
Rust implementation (see original_source) structures its parser too; the
teacher's own error-collection discipline (never panic, always append
and keep going) carries over unchanged.
*/
package parser

import (
	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/ember"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

// MaxFunctionArguments is the hard ceiling on the number of arguments a
// call expression (and, symmetrically, the number of parameters a
// function declaration) may have, per spec.md section 4.2.
const MaxFunctionArguments = 255

// Parser holds the token stream and cursor for one parse.
type Parser struct {
	tokens  []lexer.Token
	current int

	// Errors accumulates one ember.ParseError per recovered syntax error.
	// Parsing never stops at the first error: it synchronizes to the next
	// statement boundary and keeps going, so a single source file can
	// report every syntax problem it has in one pass.
	Errors []error
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any syntax error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// Parse parses the entire token stream as a program: zero or more
// declarations followed by EOF.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// ---- token cursor primitives ----

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == kind
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected type,
// otherwise records a parse error naming msg and leaves the cursor where
// it is.
func (p *Parser) consume(kind lexer.TokenType, msg string) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), msg)
	return lexer.Token{}, false
}

func (p *Parser) errorAt(tok lexer.Token, msg string) {
	p.Errors = append(p.Errors, &ember.ParseError{Token: tok, Message: msg})
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error does not cascade into a wall of bogus
// follow-on errors. It stops right after a semicolon, or right before a
// token that starts a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

// literalFromToken builds the value.Value a literal token denotes.
func literalFromToken(tok lexer.Token) value.Value {
	switch tok.Type {
	case lexer.INTEGER:
		return &value.Integer{Value: tok.Literal.Int}
	case lexer.FLOAT:
		return &value.Float{Value: tok.Literal.Float64}
	case lexer.STRING:
		return &value.String{Value: tok.Literal.Str}
	case lexer.TRUE:
		return value.True
	case lexer.FALSE:
		return value.False
	default:
		return value.NilValue
	}
}
