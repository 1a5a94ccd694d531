/*
File    : ember/ember/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ember collects the small, shared error taxonomy used across the
lexer, parser, and evaluator. It exists so that every stage reports
diagnostics in exactly the three shapes spec.md section 6 specifies,
instead of each stage inventing its own format.
*/
package ember

import (
	"fmt"

	"github.com/akashmaji946/ember/lexer"
)

// SyntaxError describes a lexer diagnostic: a bad character span or an
// unterminated string. It carries only a line number, never a token,
// because the lexer may not have managed to form a token at all. The
// lexer itself does not construct this type (this package imports lexer);
// it records the same "[line N]: \"message\"" shape as a plain string in
// Lexer.Errors.
type SyntaxError struct {
	Line    int
	Message string
}

// Error renders a SyntaxError as "[line N]: \"message\"", the format
// spec.md section 6 assigns to lexer diagnostics.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d]: %q", e.Line, e.Message)
}

// ParseError is produced by the parser when it cannot continue a
// production. It carries the offending token so the message can point at
// either "end of input" or a specific lexeme.
type ParseError struct {
	Token   lexer.Token
	Message string
}

// Error renders a ParseError in one of the two forms spec.md section 6
// names: "... Error at end: ..." when the offending token is EOF, or
// "... Error at: '<lexeme>', ..." otherwise.
func (e *ParseError) Error() string {
	if e.Token.Type == lexer.EOF {
		return fmt.Sprintf("[line %d] Error at end: %q", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at: '%q', %q", e.Token.Line, e.Token.Lexeme, e.Message)
}

// RuntimeError is produced by the evaluator: wrong operand types, division
// by zero, undefined variable, arity mismatch, calling a non-callable, a
// non-boolean condition. It carries the token nearest the failure so the
// message can name it, as spec.md section 6 requires.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

// Error renders a RuntimeError as a single line naming the offending
// token's line and lexeme plus the failure message, matching the "one
// line each" diagnostic rule in spec.md section 6.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s (near '%s')", e.Token.Line, e.Message, e.Token.Lexeme)
}

// NewRuntimeError is a small convenience constructor mirroring the
// teacher's CreateError helper, used throughout the evaluator.
func NewRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
