package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reckon/internal/config"
	"reckon/internal/driver"
	"reckon/internal/history"
	"reckon/internal/ui"
)

// runFancyREPL drives the Bubble Tea interactive mode. Evaluated lines are
// collected into history entries as they happen, so a crashed UI still keeps
// what was entered before it.
func runFancyREPL(cfg config.Config, past []history.Entry, session *replSession) ([]history.Entry, error) {
	recall := make([]string, 0, len(past))
	for _, e := range past {
		recall = append(recall, e.Expr)
	}

	var entries []history.Entry
	evalFn := func(expr string) (string, bool) {
		output, ok, entry := session.Eval(expr)
		entries = append(entries, entry)
		return output, ok
	}

	model := ui.NewReplModel(replBanner, replGoodbye, cfg.Repl.Prompt, recall, evalFn, driver.IsQuit)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return entries, err
	}
	return entries, nil
}
