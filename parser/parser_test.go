/*
File    : ember/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	lex := lexer.New(src)
	tokens := lex.ScanTokens()
	assert.False(t, lex.HasErrors(), "lexer errors: %v", lex.Errors)
	p := New(tokens)
	stmts := p.Parse()
	assert.False(t, p.HasErrors(), "parser errors: %v", p.Errors)
	return stmts
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, `var a = 1;`)
	assert.Len(t, stmts, 1)
	varStmt, ok := stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)
	assert.True(t, varStmt.Initialized)
}

func TestParseVarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parse(t, `var a;`)
	varStmt := stmts[0].(*ast.VarStmt)
	assert.False(t, varStmt.Initialized)
	assert.Nil(t, varStmt.Initializer)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts := parse(t, `1 + 2 * 3;`)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	binary := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, lexer.PLUS, binary.Operator.Type)
	// right side must be the higher-precedence multiplication
	_, ok := binary.Right.(*ast.Binary)
	assert.True(t, ok)
	_, ok = binary.Left.(*ast.Literal)
	assert.True(t, ok)
}

func TestParseLeftAssociativity(t *testing.T) {
	stmts := parse(t, `1 - 2 - 3;`)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	outer := exprStmt.Expression.(*ast.Binary)
	// (1 - 2) - 3: the left child is itself a Binary, the right is a literal
	_, leftIsBinary := outer.Left.(*ast.Binary)
	_, rightIsLiteral := outer.Right.(*ast.Literal)
	assert.True(t, leftIsBinary)
	assert.True(t, rightIsLiteral)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmts := parse(t, `a = b = 3;`)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	outer := exprStmt.Expression.(*ast.Assign)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetRecordsError(t *testing.T) {
	lex := lexer.New(`1 = 2;`)
	p := New(lex.ScanTokens())
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParseIfElse(t *testing.T) {
	stmts := parse(t, `if (true) print 1; else print 2;`)
	ifStmt := stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseWhile(t *testing.T) {
	stmts := parse(t, `while (a) { a = a - 1; }`)
	whileStmt := stmts[0].(*ast.WhileStmt)
	block, ok := whileStmt.Body.(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 1)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	// desugared: { var i = 0; while (i < 3) { print i; i = i + 1; } }
	outer := stmts[0].(*ast.BlockStmt)
	assert.Len(t, outer.Statements, 2)
	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	assert.True(t, ok)
	body := whileStmt.Body.(*ast.BlockStmt)
	assert.Len(t, body.Statements, 2)
}

func TestParseForAllClausesOmitted(t *testing.T) {
	stmts := parse(t, `for (;;) print 1;`)
	whileStmt := stmts[0].(*ast.WhileStmt)
	literal, ok := whileStmt.Condition.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "true", literal.Value.String())
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parse(t, `fun add(a, b) { return a + b; }`)
	fn := stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParseCallWithArguments(t *testing.T) {
	stmts := parse(t, `add(1, 2, 3);`)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	call := exprStmt.Expression.(*ast.Call)
	assert.Len(t, call.Arguments, 3)
}

func TestParseTooManyArgumentsRecordsError(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	lex := lexer.New(src)
	p := New(lex.ScanTokens())
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParseBlockScoping(t *testing.T) {
	stmts := parse(t, `{ var a = 1; { var a = 2; } }`)
	block := stmts[0].(*ast.BlockStmt)
	assert.Len(t, block.Statements, 2)
}

func TestParseSynchronizeRecoversAfterError(t *testing.T) {
	lex := lexer.New(`var ; var b = 1;`)
	p := New(lex.ScanTokens())
	stmts := p.Parse()
	assert.True(t, p.HasErrors())
	// the parser should have recovered and parsed "var b = 1;"
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	assert.True(t, found)
}
