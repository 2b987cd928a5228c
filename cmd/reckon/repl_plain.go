package main

import (
	"bufio"
	"fmt"
	"io"

	"reckon/internal/config"
	"reckon/internal/driver"
	"reckon/internal/history"
)

// runPlainREPL is the line-oriented loop: banner, prompt, read, evaluate,
// print, repeat until 'quit' or end of input. It survives every evaluation
// error and only stops on a read failure or an explicit quit.
func runPlainREPL(in io.Reader, out io.Writer, cfg config.Config, session *replSession, quiet bool) ([]history.Entry, error) {
	if !quiet {
		fmt.Fprintln(out, replBanner)
		fmt.Fprintln(out, replHint)
	}

	var entries []history.Entry
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, cfg.Repl.Prompt)
		if !scanner.Scan() {
			break
		}
		line := driver.NormalizeInput(scanner.Text())

		if driver.IsQuit(line) {
			fmt.Fprintln(out, replGoodbye)
			return entries, nil
		}

		output, _, entry := session.Eval(line)
		fmt.Fprintln(out, output)
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read input: %w", err)
	}
	// конец ввода (Ctrl-D) завершает сессию так же, как quit
	fmt.Fprintln(out, replGoodbye)
	return entries, nil
}
