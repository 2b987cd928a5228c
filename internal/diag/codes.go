package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	// LexBadNumber covers literals that accumulate as digits and dots but do
	// not parse as a float, e.g. "1.2.3".
	LexBadNumber Code = 1002
	// LexNumberBeforeParen rejects a literal directly followed by '(' with no
	// operator between them, e.g. "2(3)".
	LexNumberBeforeParen Code = 1003

	// Структурные (скобки)
	SynInfo Code = 2000
	// SynUnmatchedParen reports a ')' with no '(' open.
	SynUnmatchedParen Code = 2001
	// SynUnclosedParen reports a '(' still open at end of input.
	SynUnclosedParen Code = 2002

	// Вычислительные
	EvalInfo Code = 3000
	// EvalMissingOperand reports an operator with fewer than two operands on
	// the stack.
	EvalMissingOperand Code = 3001
	// EvalLeftoverOperand reports a final operand stack whose size is not
	// exactly one (also the empty-input case).
	EvalLeftoverOperand Code = 3002
	EvalDivisionByZero  Code = 3003
	// EvalInvalidOperator is a defined outcome for an operator kind the
	// evaluator does not recognize; unreachable through the lexer.
	EvalInvalidOperator Code = 3004
	// EvalInvalidToken reports a grouping token that survived into the
	// evaluation stage.
	EvalInvalidToken Code = 3005

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	LexInfo:              "Lexical information",
	LexUnknownChar:       "Unknown character",
	LexBadNumber:         "Malformed numeric literal",
	LexNumberBeforeParen: "Literal directly before '('",
	SynInfo:              "Structural information",
	SynUnmatchedParen:    "Unmatched ')'",
	SynUnclosedParen:     "Unclosed '('",
	EvalInfo:             "Evaluation information",
	EvalMissingOperand:   "Operator is missing an operand",
	EvalLeftoverOperand:  "Leftover operands after evaluation",
	EvalDivisionByZero:   "Division by zero",
	EvalInvalidOperator:  "Unrecognized operator",
	EvalInvalidToken:     "Grouping token reached evaluation",
	IOLoadFileError:      "Failed to load expression file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// UserMessage maps a code onto the fixed message shown by the interactive
// loop. Every error code collapses into one of five stable strings so the
// loop's output stays uniform no matter which phase failed.
func (c Code) UserMessage() string {
	switch c {
	case LexUnknownChar:
		return "Invalid character in expression"
	case EvalDivisionByZero:
		return "Division by zero"
	case EvalInvalidOperator:
		return "Invalid operator"
	case EvalInvalidToken:
		return "Invalid token in expression"
	default:
		return "Invalid expression format"
	}
}
