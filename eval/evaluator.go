/*
File    : ember/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval implements the tree-walking Evaluator: it drives execution
statement by statement over a current environment, exactly as spec.md
section 4.5 describes. The Evaluator implements both ast.ExprVisitor and
ast.StmtVisitor — the same double-dispatch idiom the teacher's own
evaluator uses against parser.Visitor — plus function.Interpreter, the
narrow capability UserFunction needs to run its body without the
function package importing this one back.
*/
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/ember"
	"github.com/akashmaji946/ember/environment"
	"github.com/akashmaji946/ember/function"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

// Evaluator holds the execution state for one Ember program: the global
// environment (which pre-defines the clock native), the environment
// currently in scope, and the writer `print` statements render to.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Evaluator with a fresh global environment, clock()
// registered, and output directed to os.Stdout.
func New() *Evaluator {
	globals := environment.New(nil)
	e := &Evaluator{Globals: globals, env: globals, Writer: os.Stdout}
	registerNatives(globals)
	return e
}

// SetWriter redirects `print` output, e.g. to a buffer under test or to
// the REPL's colored writer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Interpret executes a parsed program's statements in order. It stops
// and returns the first error (a *ember.RuntimeError, ordinarily) that
// escapes a top-level statement; statements already executed have
// already taken effect.
func (e *Evaluator) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if _, err := e.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs a single statement against the current environment.
func (e *Evaluator) Execute(stmt ast.Stmt) (value.Value, error) {
	return stmt.AcceptStmt(e)
}

func (e *Evaluator) evaluate(expr ast.Expr) (value.Value, error) {
	return expr.AcceptExpr(e)
}

// returnSignal is how a `return` statement unwinds the call stack. It is
// carried through the ordinary (value.Value, error) return channel every
// Visit method already uses, rather than through panic/recover: a type
// assertion at the one place that is allowed to catch it (ExecuteBlock)
// tells it apart from a genuine runtime error. It never escapes this
// package — function.Interpreter's signature already resolves it to a
// plain bool before the function package ever sees it.
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return" }

// executeStatementsInEnv runs stmts against env (temporarily making it
// the current environment) and restores the previous environment on
// every exit path — normal completion, a runtime error, or a return
// signal — matching spec.md section 4.5's "pop on exit including on
// failure".
func (e *Evaluator) executeStatementsInEnv(stmts []ast.Stmt, env *environment.Environment) error {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range stmts {
		if _, err := e.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock implements function.Interpreter: it runs a function body
// against callEnv and translates an internal returnSignal into the
// (value, true, nil) shape UserFunction.Call expects. Falling off the
// end of the body without a return yields (nil value, false, nil).
func (e *Evaluator) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) (value.Value, bool, error) {
	err := e.executeStatementsInEnv(stmts, env)
	if err == nil {
		return value.NilValue, false, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.Value, true, nil
	}
	return nil, false, err
}

func registerNatives(globals *environment.Environment) {
	globals.Define("clock", &function.NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []value.Value) (value.Value, error) {
			return &value.Integer{Value: nowMillis()}, nil
		},
	})
}

func requireNumber(tok lexer.Token, operand value.Value, context string) error {
	switch operand.(type) {
	case *value.Integer, *value.Float:
		return nil
	default:
		return ember.NewRuntimeError(tok, "%s must be a number.", context)
	}
}

func requireBoolean(tok lexer.Token, operand value.Value, context string) (bool, error) {
	b, ok := operand.(*value.Boolean)
	if !ok {
		return false, ember.NewRuntimeError(tok, "%s must be a boolean.", context)
	}
	return b.Value, nil
}
