package eval

import (
	"testing"

	"reckon/internal/diag"
	"reckon/internal/source"
	"reckon/internal/token"
)

func num(v float64) token.Token {
	return token.Token{Kind: token.Number, Value: v}
}

func op(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Text: text}
}

func runTokens(tokens []token.Token) (float64, bool, *diag.Bag) {
	bag := diag.NewBag(16)
	v, ok := Run(tokens, diag.BagReporter{Bag: bag})
	return v, ok, bag
}

func TestRunArithmetic(t *testing.T) {
	cases := []struct {
		name   string
		tokens []token.Token
		want   float64
	}{
		{"single number", []token.Token{num(7)}, 7},
		{"addition", []token.Token{num(2), num(3), op(token.Plus, "+")}, 5},
		{"subtraction order", []token.Token{num(8), num(3), op(token.Minus, "-")}, 5},
		{"multiplication", []token.Token{num(4), num(2.5), op(token.Star, "*")}, 10},
		{"division order", []token.Token{num(8), num(4), op(token.Slash, "/")}, 2},
		// 2 3 4 * + == 2 + 3*4
		{"precedence shape", []token.Token{num(2), num(3), num(4), op(token.Star, "*"), op(token.Plus, "+")}, 14},
	}
	for _, c := range cases {
		v, ok, bag := runTokens(c.tokens)
		if !ok {
			t.Fatalf("%s: unexpected failure: %v", c.name, bag.Items())
		}
		if v != c.want {
			t.Errorf("%s: got %v, want %v", c.name, v, c.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	_, ok, bag := runTokens([]token.Token{num(5), num(0), op(token.Slash, "/")})
	if ok {
		t.Fatal("expected failure")
	}
	d, _ := bag.FirstError()
	if d.Code != diag.EvalDivisionByZero {
		t.Errorf("code = %v, want EvalDivisionByZero", d.Code)
	}
	if d.Code.UserMessage() != "Division by zero" {
		t.Errorf("user message = %q", d.Code.UserMessage())
	}
}

func TestMissingOperand(t *testing.T) {
	// "2 + + 3" после переупорядочивания дегенерирует в нехватку операндов
	_, ok, bag := runTokens([]token.Token{num(2), op(token.Plus, "+")})
	if ok {
		t.Fatal("expected failure")
	}
	d, _ := bag.FirstError()
	if d.Code != diag.EvalMissingOperand {
		t.Errorf("code = %v, want EvalMissingOperand", d.Code)
	}
	if d.Code.UserMessage() != "Invalid expression format" {
		t.Errorf("user message = %q", d.Code.UserMessage())
	}
}

func TestLeftoverOperands(t *testing.T) {
	_, ok, bag := runTokens([]token.Token{num(1), num(2)})
	if ok {
		t.Fatal("expected failure")
	}
	d, _ := bag.FirstError()
	if d.Code != diag.EvalLeftoverOperand {
		t.Errorf("code = %v, want EvalLeftoverOperand", d.Code)
	}
}

func TestEmptyInput(t *testing.T) {
	_, ok, bag := runTokens(nil)
	if ok {
		t.Fatal("empty postfix must fail")
	}
	d, _ := bag.FirstError()
	if d.Code != diag.EvalLeftoverOperand {
		t.Errorf("code = %v, want EvalLeftoverOperand", d.Code)
	}
}

func TestParenIsInvalidToken(t *testing.T) {
	_, ok, bag := runTokens([]token.Token{
		num(1),
		{Kind: token.LParen, Text: "(", Span: source.Span{Start: 1, End: 2}},
	})
	if ok {
		t.Fatal("expected failure")
	}
	d, _ := bag.FirstError()
	if d.Code != diag.EvalInvalidToken {
		t.Errorf("code = %v, want EvalInvalidToken", d.Code)
	}
	if d.Code.UserMessage() != "Invalid token in expression" {
		t.Errorf("user message = %q", d.Code.UserMessage())
	}
}

// apply с неизвестным видом оператора — определённый исход, не паника,
// пусть лексер такого и не выдаёт.
func TestApplyUnknownOperator(t *testing.T) {
	_, code := apply(token.Invalid, 1, 2)
	if code != diag.EvalInvalidOperator {
		t.Errorf("code = %v, want EvalInvalidOperator", code)
	}
	if code.UserMessage() != "Invalid operator" {
		t.Errorf("user message = %q", code.UserMessage())
	}
}

func TestApplyOperations(t *testing.T) {
	cases := []struct {
		op       token.Kind
		a, b     float64
		want     float64
		wantCode diag.Code
	}{
		{token.Plus, 2, 3, 5, 0},
		{token.Minus, 2, 3, -1, 0},
		{token.Star, 2, 3, 6, 0},
		{token.Slash, 3, 2, 1.5, 0},
		{token.Slash, 3, 0, 0, diag.EvalDivisionByZero},
	}
	for _, c := range cases {
		got, code := apply(c.op, c.a, c.b)
		if code != c.wantCode {
			t.Errorf("apply(%v, %v, %v) code = %v, want %v", c.op, c.a, c.b, code, c.wantCode)
			continue
		}
		if code == 0 && got != c.want {
			t.Errorf("apply(%v, %v, %v) = %v, want %v", c.op, c.a, c.b, got, c.want)
		}
	}
}
