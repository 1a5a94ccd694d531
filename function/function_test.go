/*
File    : ember/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/ember/ast"
	"github.com/akashmaji946/ember/environment"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/value"
)

// fakeInterpreter stubs ExecuteBlock so UserFunction.Call can be tested
// without pulling in the real evaluator.
type fakeInterpreter struct {
	result   value.Value
	returned bool
	err      error
}

func (f *fakeInterpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) (value.Value, bool, error) {
	return f.result, f.returned, f.err
}

func TestUserFunctionArity(t *testing.T) {
	decl := &ast.FunctionStmt{
		Name:   lexer.NewToken(lexer.IDENTIFIER, "add", 1),
		Params: []lexer.Token{lexer.NewToken(lexer.IDENTIFIER, "a", 1), lexer.NewToken(lexer.IDENTIFIER, "b", 1)},
	}
	fn := &UserFunction{Declaration: decl, Closure: environment.New(nil)}
	assert.Equal(t, 2, fn.Arity())
}

func TestUserFunctionCallReturnsValue(t *testing.T) {
	decl := &ast.FunctionStmt{
		Name:   lexer.NewToken(lexer.IDENTIFIER, "f", 1),
		Params: nil,
	}
	fn := &UserFunction{Declaration: decl, Closure: environment.New(nil)}
	interp := &fakeInterpreter{result: &value.Integer{Value: 42}, returned: true}

	result, err := fn.Call(interp, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.(*value.Integer).Value)
}

func TestUserFunctionCallFallsOffEndYieldsNil(t *testing.T) {
	decl := &ast.FunctionStmt{Name: lexer.NewToken(lexer.IDENTIFIER, "f", 1)}
	fn := &UserFunction{Declaration: decl, Closure: environment.New(nil)}
	interp := &fakeInterpreter{returned: false}

	result, err := fn.Call(interp, nil)
	assert.NoError(t, err)
	assert.Equal(t, value.NilValue, result)
}

func TestUserFunctionClosureSharesEnvironment(t *testing.T) {
	closure := environment.New(nil)
	closure.Define("count", &value.Integer{Value: 0})

	decl := &ast.FunctionStmt{Name: lexer.NewToken(lexer.IDENTIFIER, "bump", 1)}
	fn := &UserFunction{Declaration: decl, Closure: closure}

	// Mutate the captured environment after the function is built; the
	// function must see the update since it holds a pointer, not a copy.
	closure.Assign("count", &value.Integer{Value: 1})

	v, _ := fn.Closure.Get("count")
	assert.Equal(t, int64(1), v.(*value.Integer).Value)
}

func TestNativeFunctionCall(t *testing.T) {
	nf := &NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []value.Value) (value.Value, error) {
			return &value.Integer{Value: 1000}, nil
		},
	}
	result, err := nf.Call(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), result.(*value.Integer).Value)
	assert.Equal(t, 0, nf.Arity())
}
