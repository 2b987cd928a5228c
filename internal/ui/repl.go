// Package ui implements the fancy interactive mode: a Bubble Tea model with a
// single input line and a scrollback transcript of evaluated expressions.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// EvalFunc evaluates one trimmed expression and returns the rendered output
// ("Result: ..." payload or a fixed error message) plus a success flag.
type EvalFunc func(expr string) (string, bool)

// QuitFunc reports whether the trimmed line ends the session.
type QuitFunc func(line string) bool

type transcriptLine struct {
	input  string
	output string
	ok     bool
}

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	goodbyeStyle = lipgloss.NewStyle().Faint(true)
)

// ReplModel is the Bubble Tea model for the interactive loop.
type ReplModel struct {
	input    textinput.Model
	lines    []transcriptLine
	recall   []string // введённые строки для стрелок вверх/вниз
	recallAt int
	draft    string // незавершённый ввод, вытесненный recall-ом

	evalFn  EvalFunc
	quitFn  QuitFunc
	banner  string
	goodbye string
	width   int
	done    bool
}

// NewReplModel constructs the model. Recall seeds the up-arrow history with
// expressions from previous sessions, oldest first.
func NewReplModel(banner, goodbye, prompt string, recall []string, evalFn EvalFunc, quitFn QuitFunc) *ReplModel {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "2 + 2"
	input.Focus()

	return &ReplModel{
		input:    input,
		recall:   append([]string(nil), recall...),
		recallAt: len(recall),
		evalFn:   evalFn,
		quitFn:   quitFn,
		banner:   banner,
		goodbye:  goodbye,
		width:    80,
	}
}

// Done reports whether the session has ended.
func (m *ReplModel) Done() bool { return m.done }

func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recallPrev()
			return m, nil
		case tea.KeyDown:
			m.recallNext()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.draft = ""

	if line == "" {
		// пустая строка вычисляется как любая другая
		output, ok := m.evalFn(line)
		m.lines = append(m.lines, transcriptLine{input: line, output: output, ok: ok})
		return m, nil
	}

	if m.quitFn(line) {
		m.done = true
		return m, tea.Quit
	}

	m.recall = append(m.recall, line)
	m.recallAt = len(m.recall)

	output, ok := m.evalFn(line)
	m.lines = append(m.lines, transcriptLine{input: line, output: output, ok: ok})
	return m, nil
}

func (m *ReplModel) recallPrev() {
	if m.recallAt == 0 {
		return
	}
	if m.recallAt == len(m.recall) {
		m.draft = m.input.Value()
	}
	m.recallAt--
	m.input.SetValue(m.recall[m.recallAt])
	m.input.CursorEnd()
}

func (m *ReplModel) recallNext() {
	if m.recallAt >= len(m.recall) {
		return
	}
	m.recallAt++
	if m.recallAt == len(m.recall) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.recall[m.recallAt])
	}
	m.input.CursorEnd()
}

func (m *ReplModel) View() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render(m.banner))
	b.WriteString("\n\n")

	for _, l := range m.lines {
		b.WriteString(promptStyle.Render(m.input.Prompt))
		b.WriteString(l.input)
		b.WriteString("\n")
		style := resultStyle
		if !l.ok {
			style = errorStyle
		}
		b.WriteString(style.Render(truncate(l.output, m.width)))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(goodbyeStyle.Render(m.goodbye))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}
