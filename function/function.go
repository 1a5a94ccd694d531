/*
File    : ember/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package function defines the two flavors of callable value in Ember:
UserFunction, produced by a `fun` declaration, and NativeFunction, for
host-provided builtins like clock(). Both implement Callable.

UserFunction.Call needs to execute a block of statements against a fresh
environment — that is the evaluator's job, not this package's. To avoid
an import cycle (eval would need function.Callable, function would need
eval.Evaluator), UserFunction depends only on the narrow Interpreter
capability it actually uses. This is the same shape as the teacher's own
split between Function (pure data: name, params, body, captured scope)
and the evaluator that interprets it — the teacher keeps them in
separate packages too, just without the interface indirection, because
its function package does not import the evaluator back.
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/environment"
	"github.com/akashmaji946/ember/value"
)

// Interpreter is the slice of evaluator behavior a UserFunction needs to
// run its body: execute a list of statements against a given environment
// and report either a returned value or an error. A `return` statement
// inside Body surfaces here as (v, true, nil); falling off the end of
// Body surfaces as (nil, false, nil).
type Interpreter interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) (result value.Value, returned bool, err error)
}

// Callable is implemented by every value that can appear on the left of
// a call expression: user-defined functions and native builtins.
type Callable interface {
	value.Value
	Arity() int
	Call(interp Interpreter, args []value.Value) (value.Value, error)
}

// UserFunction is a function declared with `fun` in Ember source. It
// closes over the environment active at the point of declaration, by
// reference — see the environment package doc comment for why this is a
// pointer, not a copy.
type UserFunction struct {
	Declaration *ast.FunctionStmt
	Closure     *environment.Environment
}

func (f *UserFunction) Kind() value.Kind { return value.FunctionKind }

// String renders exactly as spec.md section 6 prescribes for `print`:
// "<fn NAME>", with no parameter list.
func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *UserFunction) Arity() int { return len(f.Declaration.Params) }

// Call binds args to the declared parameter names in a fresh environment
// scoped by the closure (not by the caller's environment — that is what
// makes Ember's functions lexically, not dynamically, scoped) and runs
// the body. A `return` inside the body yields its value; falling off the
// end yields nil, per spec.md section 4.6.
func (f *UserFunction) Call(interp Interpreter, args []value.Value) (value.Value, error) {
	callEnv := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, returned, err := interp.ExecuteBlock(f.Declaration.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if returned {
		return result, nil
	}
	return value.NilValue, nil
}

// NativeFunction wraps a host-implemented builtin such as clock(). It is
// the Ember analogue of the original Rust implementation's NativeCallable
// registration pattern: a name, a fixed arity, and a plain Go function.
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(args []value.Value) (value.Value, error)
}

func (f *NativeFunction) Kind() value.Kind { return value.NativeKind }

// String renders exactly as spec.md section 6 prescribes: "<native fn>",
// with no name, indistinguishable between different natives by design.
func (f *NativeFunction) String() string { return "<native fn>" }
func (f *NativeFunction) Arity() int     { return f.ArityN }

func (f *NativeFunction) Call(_ Interpreter, args []value.Value) (value.Value, error) {
	return f.Fn(args)
}
