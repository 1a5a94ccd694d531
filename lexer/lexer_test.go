/*
File    : ember/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []TokenType
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `(){},.-+;*`,
			Expected: []TokenType{LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR, EOF},
		},
		{
			Input:    `!= == <= >= ! = < >`,
			Expected: []TokenType{BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL, BANG, EQUAL, LESS, GREATER, EOF},
		},
	}

	for _, tc := range tests {
		lex := New(tc.Input)
		tokens := lex.ScanTokens()
		assert.False(t, lex.HasErrors())
		assert.Len(t, tokens, len(tc.Expected))
		for i, kind := range tc.Expected {
			assert.Equal(t, kind, tokens[i].Type)
		}
	}
}

func TestScanTokens_Comment(t *testing.T) {
	lex := New("var a = 1; // trailing comment\nvar b = 2;")
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors())
	// 5 tokens for each var statement plus EOF: var IDENT = NUMBER ;
	assert.Equal(t, VAR, tokens[0].Type)
	assert.Equal(t, 2, tokens[len(tokens)-2].Line)
}

func TestScanTokens_NumberLiterals(t *testing.T) {
	lex := New("123 3.14 0.5")
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors())
	assert.Equal(t, INTEGER, tokens[0].Type)
	assert.Equal(t, int64(123), tokens[0].Literal.Int)
	assert.Equal(t, FLOAT, tokens[1].Type)
	assert.InDelta(t, 3.14, tokens[1].Literal.Float64, 1e-9)
	assert.Equal(t, FLOAT, tokens[2].Type)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	lex := New(`"hello world"`)
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors())
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal.Str)
}

func TestScanTokens_StringSpansLines(t *testing.T) {
	lex := New("\"a\nb\"\nvar x;")
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors())
	assert.Equal(t, "a\nb", tokens[0].Literal.Str)
	assert.Equal(t, VAR, tokens[1].Type)
	assert.Equal(t, 3, tokens[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	lex := New(`"unterminated`)
	lex.ScanTokens()
	assert.True(t, lex.HasErrors())
}

func TestScanTokens_Keywords(t *testing.T) {
	lex := New("and class else false fun for if nil or print return super this true var while")
	tokens := lex.ScanTokens()
	expected := []TokenType{AND, CLASS, ELSE, FALSE, FUN, FOR, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, EOF}
	assert.Len(t, tokens, len(expected))
	for i, kind := range expected {
		assert.Equal(t, kind, tokens[i].Type)
	}
}

func TestScanTokens_IdentifierNotKeyword(t *testing.T) {
	lex := New("forest")
	tokens := lex.ScanTokens()
	assert.Equal(t, IDENTIFIER, tokens[0].Type)
}

func TestScanTokens_UnknownCharacterContinuesScanning(t *testing.T) {
	lex := New("var a = 1; @ var b = 2;")
	tokens := lex.ScanTokens()
	assert.True(t, lex.HasErrors())
	// the '@' produced no token but scanning continued past it
	var kinds []TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	assert.Contains(t, kinds, VAR)
	assert.GreaterOrEqual(t, len(tokens), 10)
}
