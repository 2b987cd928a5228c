package lexer

import (
	"reckon/internal/diag"
	"reckon/internal/source"
	"reckon/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	prev   token.Kind   // последний выданный значимый токен
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		prev:   token.Invalid,
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.prev = tok.Kind
		return tok
	}

	// 2) Пробелы пропускаем, токен не создаём
	for lx.cursor.Peek() == ' ' {
		lx.cursor.Bump()
	}

	// 3) Если EOF → вернуть EOF
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isDec(ch) || ch == '.':
		// цифра или точка → числовой литерал
		tok = lx.scanNumber()

	default:
		// иначе → оператор или скобка
		tok = lx.scanOperatorOrPunct()
	}

	// 5) Литерал вплотную перед '(' — структурная ошибка: между числом и
	// скобкой обязан стоять оператор.
	if tok.Kind == token.LParen && lx.prev == token.Number {
		lx.report(diag.LexNumberBeforeParen, tok.Span, "expected an operator between a number and '('")
		tok.Kind = token.Invalid
	}

	lx.prev = tok.Kind
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	prev := lx.prev
	t := lx.Next()
	lx.look = &t
	lx.prev = prev
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
