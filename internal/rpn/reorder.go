// Package rpn reorders an infix token sequence into postfix (reverse Polish)
// order with the shunting-yard algorithm. Operator precedence and parenthesis
// grouping are resolved here; the output is ready for a left-to-right stack
// evaluation.
package rpn

import (
	"reckon/internal/diag"
	"reckon/internal/token"
)

// Reorder converts an infix token sequence into postfix order. Structural
// problems (unmatched or unclosed parentheses) go to the reporter; the caller
// must discard the output when the reporter collected errors.
//
// The operator stack holds only operator and LParen tokens transiently; the
// output slice is append-only and becomes the return value.
func Reorder(tokens []token.Token, reporter diag.Reporter) []token.Token {
	output := make([]token.Token, 0, len(tokens))
	operators := make([]token.Token, 0, 8)

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Number:
			output = append(output, tok)

		case token.Plus, token.Minus, token.Star, token.Slash:
			// Равный приоритет выталкивается до нового оператора —
			// так получается левая ассоциативность.
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if !top.IsOperator() || top.Kind.Precedence() < tok.Kind.Precedence() {
					break
				}
				output = append(output, top)
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, tok)

		case token.LParen:
			operators = append(operators, tok)

		case token.RParen:
			matched := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.Kind == token.LParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				diag.ReportError(reporter, diag.SynUnmatchedParen, tok.Span,
					"')' without a matching '('").Emit()
			}

		default:
			// Invalid и EOF сюда не доходят: драйвер останавливается раньше.
			output = append(output, tok)
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Kind == token.LParen {
			diag.ReportError(reporter, diag.SynUnclosedParen, top.Span,
				"'(' is never closed").Emit()
			continue
		}
		output = append(output, top)
	}

	return output
}
