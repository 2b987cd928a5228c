package token_test

import (
	"testing"

	"reckon/internal/source"
	"reckon/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsNumber(t *testing.T) {
	if !tok(token.Number).IsNumber() {
		t.Fatalf("Number should be a number")
	}
	non := []token.Kind{token.Invalid, token.EOF, token.Plus, token.LParen, token.RParen}
	for _, k := range non {
		if tok(k).IsNumber() {
			t.Fatalf("%v must NOT be a number", k)
		}
	}
}

func TestIsOperator(t *testing.T) {
	ops := []token.Kind{token.Plus, token.Minus, token.Star, token.Slash}
	for _, k := range ops {
		if !tok(k).IsOperator() {
			t.Fatalf("%v should be an operator", k)
		}
	}
	non := []token.Kind{token.Invalid, token.EOF, token.Number, token.LParen, token.RParen}
	for _, k := range non {
		if tok(k).IsOperator() {
			t.Fatalf("%v must NOT be an operator", k)
		}
	}
}

func TestIsParen(t *testing.T) {
	if !tok(token.LParen).IsParen() || !tok(token.RParen).IsParen() {
		t.Fatalf("parens should be parens")
	}
	if tok(token.Plus).IsParen() || tok(token.Number).IsParen() {
		t.Fatalf("non-paren kinds must NOT be parens")
	}
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want int
	}{
		{token.Plus, 1},
		{token.Minus, 1},
		{token.Star, 2},
		{token.Slash, 2},
		{token.Number, 0},
		{token.LParen, 0},
		{token.RParen, 0},
		{token.EOF, 0},
		{token.Invalid, 0},
	}
	for _, c := range cases {
		if got := c.kind.Precedence(); got != c.want {
			t.Errorf("%v.Precedence() = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid: "Invalid",
		token.EOF:     "EOF",
		token.Number:  "Number",
		token.Plus:    "Plus",
		token.Minus:   "Minus",
		token.Star:    "Star",
		token.Slash:   "Slash",
		token.LParen:  "LParen",
		token.RParen:  "RParen",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if got := token.Kind(200).String(); got != "Unknown" {
		t.Errorf("out-of-range kind String() = %q, want Unknown", got)
	}
}
