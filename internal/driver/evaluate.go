// Package driver composes the expression pipeline: tokenize, reorder to
// postfix, evaluate. Commands and the REPL call into it with a string and get
// back a value or a bag of diagnostics; no stage is invoked directly from the
// outside.
package driver

import (
	"strings"

	"reckon/internal/diag"
	"reckon/internal/eval"
	"reckon/internal/lexer"
	"reckon/internal/rpn"
	"reckon/internal/source"
	"reckon/internal/token"
)

// DefaultMaxDiagnostics bounds the bag for a single expression. One error is
// terminal per the pipeline contract, so the bound only guards degenerate
// inputs.
const DefaultMaxDiagnostics = 16

// Result carries everything one evaluation produced. Value is meaningful only
// when OK is true; on failure the Bag holds at least one error and the first
// one is what the user sees.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Postfix []token.Token
	Value   float64
	OK      bool
	Bag     *diag.Bag
}

// UserMessage returns the fixed interactive-loop message for the first error,
// or "" when the evaluation succeeded.
func (r *Result) UserMessage() string {
	if r.OK {
		return ""
	}
	if d, ok := r.Bag.FirstError(); ok {
		return d.Code.UserMessage()
	}
	return diag.UnknownCode.UserMessage()
}

// EvaluateExpression runs the whole pipeline over one expression string,
// short-circuiting at the first stage whose bag has errors. The expression is
// registered as a virtual source so diagnostics can point into it.
func EvaluateExpression(expr string, maxDiagnostics int) *Result {
	res := TokenizeExpression(expr, maxDiagnostics)
	if res.Bag.HasErrors() {
		res.Tokens = nil // на ошибке частичная последовательность не отдаётся
		return res
	}

	reporter := diag.BagReporter{Bag: res.Bag}

	res.Postfix = rpn.Reorder(res.Tokens, reporter)
	if res.Bag.HasErrors() {
		res.Postfix = nil
		return res
	}

	value, ok := eval.Run(res.Postfix, reporter)
	res.Value = value
	res.OK = ok
	return res
}

// TokenizeExpression lexes one expression string to completion or to the
// first invalid token, whichever comes first. The EOF token is not included.
func TokenizeExpression(expr string, maxDiagnostics int) *Result {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("expr", []byte(expr))
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.Invalid {
			// лексическая ошибка терминальна для всего вызова
			break
		}
	}

	return &Result{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

// ReorderExpression tokenizes and reorders without evaluating; used by the
// postfix inspection command.
func ReorderExpression(expr string, maxDiagnostics int) *Result {
	res := TokenizeExpression(expr, maxDiagnostics)
	if res.Bag.HasErrors() {
		res.Tokens = nil
		return res
	}
	res.Postfix = rpn.Reorder(res.Tokens, diag.BagReporter{Bag: res.Bag})
	if res.Bag.HasErrors() {
		res.Postfix = nil
	}
	return res
}

// NormalizeInput trims the surrounding whitespace of a REPL line.
func NormalizeInput(line string) string {
	return strings.TrimSpace(line)
}

// IsQuit reports whether a trimmed REPL line asks to end the session.
// The comparison is case-insensitive.
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "quit")
}
