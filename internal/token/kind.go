package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the expression input.
	EOF

	// Number represents a decimal numeric literal token.
	Number

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	}
	return "Unknown"
}

// Precedence returns the binding strength of a binary operator kind.
// Additive operators bind at 1, multiplicative at 2; non-operator kinds
// return 0 so they never win a precedence comparison.
func (k Kind) Precedence() int {
	switch k {
	case Plus, Minus:
		return 1
	case Star, Slash:
		return 2
	default:
		return 0
	}
}
