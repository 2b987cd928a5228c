// Package eval consumes a postfix token sequence left to right against an
// operand stack and produces a single float64 result.
package eval

import (
	"reckon/internal/diag"
	"reckon/internal/source"
	"reckon/internal/token"
)

// Run evaluates a postfix token sequence. On failure it reports exactly one
// diagnostic and returns ok=false; the returned value is meaningful only when
// ok is true.
func Run(tokens []token.Token, reporter diag.Reporter) (float64, bool) {
	stack := make([]float64, 0, 8)

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Number:
			stack = append(stack, tok.Value)

		case token.Plus, token.Minus, token.Star, token.Slash:
			if len(stack) < 2 {
				diag.ReportError(reporter, diag.EvalMissingOperand, tok.Span,
					"operator "+tok.Text+" needs two operands").Emit()
				return 0, false
			}
			// pop-порядок: последний — правый операнд
			operand2 := stack[len(stack)-1]
			operand1 := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			result, code := apply(tok.Kind, operand1, operand2)
			if code != 0 {
				diag.ReportError(reporter, code, tok.Span, applyFailure(code, tok)).Emit()
				return 0, false
			}
			stack = append(stack, result)

		default:
			// Скобки (и любой другой вид) не должны пережить переупорядочивание.
			diag.ReportError(reporter, diag.EvalInvalidToken, tok.Span,
				"token "+tok.Kind.String()+" is not evaluable").Emit()
			return 0, false
		}
	}

	if len(stack) != 1 {
		sp := source.Span{}
		if len(tokens) > 0 {
			sp = tokens[0].Span
			for _, tok := range tokens[1:] {
				sp = sp.Cover(tok.Span)
			}
		}
		diag.ReportError(reporter, diag.EvalLeftoverOperand, sp,
			"expression does not reduce to a single value").Emit()
		return 0, false
	}

	return stack[0], true
}

// apply computes one binary operation. A zero code means success; a non-zero
// code names the failure. Every operator kind outside the enumerated four is
// a defined EvalInvalidOperator outcome rather than a crash, even though the
// lexer cannot currently produce one.
func apply(op token.Kind, operand1, operand2 float64) (float64, diag.Code) {
	switch op {
	case token.Plus:
		return operand1 + operand2, 0
	case token.Minus:
		return operand1 - operand2, 0
	case token.Star:
		return operand1 * operand2, 0
	case token.Slash:
		if operand2 == 0.0 {
			return 0, diag.EvalDivisionByZero
		}
		return operand1 / operand2, 0
	default:
		return 0, diag.EvalInvalidOperator
	}
}

func applyFailure(code diag.Code, tok token.Token) string {
	if code == diag.EvalDivisionByZero {
		return "right operand of / is zero"
	}
	return "unrecognized operator " + tok.Text
}
