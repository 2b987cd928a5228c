package token

import (
	"reckon/internal/source"
)

// Token represents a single expression token with its location.
// Value is the parsed payload of a Number token and zero otherwise.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value float64
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of the four binary operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsParen reports whether the token is a grouping parenthesis.
func (t Token) IsParen() bool {
	return t.Kind == LParen || t.Kind == RParen
}
