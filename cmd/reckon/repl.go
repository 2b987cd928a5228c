package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reckon/internal/config"
	"reckon/internal/driver"
	"reckon/internal/history"
	"reckon/internal/numfmt"
)

const (
	replBanner  = "Welcome to the reckon calculator. BODMAS rules apply."
	replHint    = "Enter an expression (e.g. 2 + 2) or type 'quit' to exit."
	replGoodbye = "Goodbye!"
)

type uiMode string

const (
	uiModeAuto  uiMode = "auto"
	uiModePlain uiMode = "plain"
	uiModeFancy uiMode = "fancy"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "plain":
		return uiModePlain, nil
	case "fancy":
		return uiModeFancy, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|plain|fancy)", value)
	}
}

func shouldUseFancy(mode uiMode) bool {
	switch mode {
	case uiModeFancy:
		return true
	case uiModePlain:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := config.Load(".")
	if err != nil {
		return err
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	if uiFlag == "" {
		uiFlag = cfg.Repl.UI
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		if cfgPath != "" {
			return fmt.Errorf("%s: %w", cfgPath, err)
		}
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	store, err := history.Open("reckon", cfg.Repl.HistorySize)
	if err != nil {
		// история — удобство, не обязательство
		store = nil
	}
	past, _ := store.Load()

	outOpts := numfmt.Options{
		Precision: cfg.Output.Precision,
		Grouping:  cfg.Output.Grouping,
		Locale:    cfg.Output.Locale,
	}
	session := &replSession{
		maxDiagnostics: maxDiagnostics(cmd),
		outOpts:        outOpts,
	}

	var entries []history.Entry
	if shouldUseFancy(mode) {
		entries, err = runFancyREPL(cfg, past, session)
	} else {
		entries, err = runPlainREPL(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, session, quiet)
	}
	if err != nil {
		return err
	}

	if store != nil && len(entries) > 0 {
		if saveErr := store.Save(append(past, entries...)); saveErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to save history: %v\n", saveErr)
		}
	}
	return nil
}

// replSession вычисляет одну строку и форматирует вывод для любого из двух
// режимов интерфейса.
type replSession struct {
	maxDiagnostics int
	outOpts        numfmt.Options
}

// Eval evaluates a trimmed line and returns the full output line
// ("Result: ..." or "Error: ..."), the success flag, and a history entry.
func (s *replSession) Eval(line string) (string, bool, history.Entry) {
	res := driver.EvaluateExpression(line, s.maxDiagnostics)
	entry := history.Entry{Expr: line, When: time.Now()}
	if res.OK {
		entry.OK = true
		entry.Value = res.Value
		return "Result: " + numfmt.Format(res.Value, s.outOpts), true, entry
	}
	entry.Message = res.UserMessage()
	return "Error: " + entry.Message, false, entry
}
