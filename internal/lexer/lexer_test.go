package lexer_test

import (
	"fmt"
	"testing"

	"reckon/internal/diag"
	"reckon/internal/lexer"
	"reckon/internal/source"
	"reckon/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// ErrorMessages возвращает список сообщений об ошибках
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("expr", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nErrors: %v",
			len(expected), len(tokens), input, reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (input %q)", i, expected[i], tok.Kind, input)
		}
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input string
		value float64
	}{
		{"2", 2},
		{"42", 42},
		{"3.5", 3.5},
		{".5", 0.5},
		{"2.", 2},
		{"0", 0},
		{"1234567.25", 1234567.25},
	}
	for _, c := range cases {
		lx, reporter := makeTestLexer(c.input)
		tok := lx.Next()
		if reporter.HasErrors() {
			t.Fatalf("input %q: unexpected errors %v", c.input, reporter.ErrorMessages())
		}
		if tok.Kind != token.Number {
			t.Fatalf("input %q: expected Number, got %v", c.input, tok.Kind)
		}
		if tok.Value != c.value {
			t.Errorf("input %q: value = %v, want %v", c.input, tok.Value, c.value)
		}
		if tok.Text != c.input {
			t.Errorf("input %q: text = %q", c.input, tok.Text)
		}
	}
}

func TestOperatorsAndParens(t *testing.T) {
	expectTokens(t, "2+3", []token.Kind{token.Number, token.Plus, token.Number})
	expectTokens(t, "2 - 3", []token.Kind{token.Number, token.Minus, token.Number})
	expectTokens(t, "2*3/4", []token.Kind{token.Number, token.Star, token.Number, token.Slash, token.Number})
	expectTokens(t, "(2+3)*4", []token.Kind{
		token.LParen, token.Number, token.Plus, token.Number, token.RParen,
		token.Star, token.Number,
	})
}

func TestWhitespaceSkipped(t *testing.T) {
	expectTokens(t, "2   +   2", []token.Kind{token.Number, token.Plus, token.Number})
	expectTokens(t, "   ", []token.Kind{})
	expectTokens(t, "", []token.Kind{})
}

func TestUnknownCharacter(t *testing.T) {
	lx, reporter := makeTestLexer("2 & 3")
	tokens := collectAllTokens(lx)

	if !reporter.HasErrors() {
		t.Fatal("expected an error for '&'")
	}
	if reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("code = %v, want LexUnknownChar", reporter.diagnostics[0].Code)
	}
	// токен Invalid присутствует в потоке
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.Invalid {
			found = true
		}
	}
	if !found {
		t.Error("expected an Invalid token in the stream")
	}
}

func TestMalformedNumberIsRecoverable(t *testing.T) {
	lx, reporter := makeTestLexer("1.2.3")
	tok := lx.Next()

	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("expected LexBadNumber to be reported")
	}
	if reporter.diagnostics[0].Code != diag.LexBadNumber {
		t.Errorf("code = %v, want LexBadNumber", reporter.diagnostics[0].Code)
	}
	// лексер жив: дальше идёт EOF, а не паника
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("expected EOF after malformed number, got %v", next.Kind)
	}
}

func TestNumberDirectlyBeforeParen(t *testing.T) {
	lx, reporter := makeTestLexer("2(3+4)")
	tokens := collectAllTokens(lx)

	if !reporter.HasErrors() {
		t.Fatal("expected an error for '2('")
	}
	if reporter.diagnostics[0].Code != diag.LexNumberBeforeParen {
		t.Errorf("code = %v, want LexNumberBeforeParen", reporter.diagnostics[0].Code)
	}
	if len(tokens) < 2 || tokens[1].Kind != token.Invalid {
		t.Errorf("expected the '(' to become Invalid, got %v", tokens)
	}
}

func TestNumberBeforeParenWithSpace(t *testing.T) {
	// пробел не спасает: оператор всё равно обязателен
	lx, reporter := makeTestLexer("2 (3)")
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatal("expected an error for '2 (3)'")
	}
}

func TestParenAfterOperatorIsFine(t *testing.T) {
	expectTokens(t, "2*(3+4)", []token.Kind{
		token.Number, token.Star, token.LParen, token.Number,
		token.Plus, token.Number, token.RParen,
	})
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("7+8")

	peeked := lx.Peek()
	next := lx.Next()
	if peeked.Kind != next.Kind || peeked.Text != next.Text {
		t.Errorf("Peek %v != Next %v", peeked, next)
	}
	if lx.Next().Kind != token.Plus {
		t.Error("stream out of sync after Peek")
	}
}

func TestSpans(t *testing.T) {
	lx, _ := makeTestLexer("12 + 3")
	first := lx.Next()
	if first.Span.Start != 0 || first.Span.End != 2 {
		t.Errorf("span of '12' = %v, want 0-2", first.Span)
	}
	op := lx.Next()
	if op.Span.Start != 3 || op.Span.End != 4 {
		t.Errorf("span of '+' = %v, want 3-4", op.Span)
	}
}
