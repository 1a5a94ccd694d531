/*
File    : ember/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Ember interpreter. Ember has the
exact three-mode command-line surface spec.md section 6 specifies — no
flags, no subcommands, no server mode — unlike the teacher's own main,
which layers --help/--version/server onto the same pipeline.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/ember/eval"
	"github.com/akashmaji946/ember/lexer"
	"github.com/akashmaji946/ember/parser"
	"github.com/akashmaji946/ember/repl"
)

var errorColor = color.New(color.FgRed)

const prompt = "ember> "

func main() {
	switch len(os.Args) {
	case 1:
		runRepl()
	case 2:
		runFile(os.Args[1])
	default:
		// spec.md section 6: print the usage line verbatim and exit
		// non-zero; 64 is the conventional EX_USAGE code the source
		// language's original implementation uses.
		fmt.Fprintln(os.Stderr, "Usage: rlox [script]")
		os.Exit(64)
	}
}

func runRepl() {
	session := repl.New(prompt)
	if err := session.Run(os.Stdout, os.Stderr); err != nil {
		errorColor.Fprintf(os.Stderr, "repl error: %v\n", err)
		os.Exit(1)
	}
}

// runFile reads path as Ember source and runs it once, exiting non-zero
// if scanning, parsing, or evaluation failed, per spec.md section 6's
// "failure propagates" rule for the file path.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}
	if err := runSource(string(source), os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// runSource drives the lex/parse/interpret pipeline once over source,
// writing print output to out and any diagnostic to errOut. It returns a
// non-nil error the moment any stage fails, leaving the exit-code
// decision to the caller — factored out of runFile so the pipeline can
// be exercised directly in tests without forking a process or asserting
// on os.Exit.
func runSource(source string, out, errOut io.Writer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			errorColor.Fprintf(errOut, "internal error: %v\n", rec)
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	if lex.HasErrors() {
		for _, msg := range lex.Errors {
			errorColor.Fprintln(errOut, msg)
		}
		return fmt.Errorf("lex error")
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, perr := range p.Errors {
			errorColor.Fprintln(errOut, perr.Error())
		}
		return fmt.Errorf("parse error")
	}

	evaluator := eval.New()
	evaluator.SetWriter(out)
	if err := evaluator.Interpret(stmts); err != nil {
		errorColor.Fprintln(errOut, err.Error())
		return err
	}
	return nil
}
