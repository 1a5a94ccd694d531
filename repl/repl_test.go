/*
File    : ember/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/ember/eval"
)

func TestRunLinePrintsResult(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New("ember> ")
	evaluator := eval.New()
	evaluator.SetWriter(&out)

	r.runLine(&out, &errOut, evaluator, `print 1 + 1;`)
	assert.Contains(t, out.String(), "2")
	assert.Empty(t, errOut.String())
}

func TestRunLineRetainsStateAcrossLines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New("ember> ")
	evaluator := eval.New()
	evaluator.SetWriter(&out)

	r.runLine(&out, &errOut, evaluator, `var a = 1;`)
	r.runLine(&out, &errOut, evaluator, `print a;`)
	assert.Contains(t, out.String(), "1")
	assert.Empty(t, errOut.String())
}

func TestRunLineReportsRuntimeErrorAndContinues(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New("ember> ")
	evaluator := eval.New()
	evaluator.SetWriter(&out)

	r.runLine(&out, &errOut, evaluator, `print undefined_name;`)
	r.runLine(&out, &errOut, evaluator, `print 1;`)
	assert.Contains(t, errOut.String(), "Undefined variable")
	assert.Contains(t, out.String(), "1")
}
