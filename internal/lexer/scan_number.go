package lexer

import (
	"strconv"

	"reckon/internal/diag"
	"reckon/internal/token"
)

// Числовой литерал накапливается так же, как буфер цифр в классическом
// однопроходном токенизаторе: подряд идущие цифры и точки образуют один
// кандидат, а разбирает его strconv.ParseFloat. Неверные формы ("1.2.3",
// "..", ".") — репорт в opts.Reporter и токен Invalid; лексер не падает.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.report(diag.LexBadNumber, sp, "malformed numeric literal "+strconv.Quote(text))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: value}
}
