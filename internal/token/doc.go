// Package token defines the lexical token kinds of the reckon expression
// language.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Token.Value is meaningful only when Kind == Number, and then always
//     holds a finite, successfully parsed decimal value. A literal that fails
//     to parse never becomes a Number token; the lexer reports a diagnostic
//     and emits Invalid instead.
package token
