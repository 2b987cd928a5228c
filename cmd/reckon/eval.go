package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reckon/internal/config"
	"reckon/internal/diagfmt"
	"reckon/internal/driver"
	"reckon/internal/numfmt"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] EXPR...",
	Short: "Evaluate expressions without starting a session",
	Long: `Eval computes each expression argument and prints one result per line.
With --file, every non-blank line of the file is evaluated instead; lines are
independent and run in parallel, but output keeps file order.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("file", "", "evaluate each non-blank line of a file")
	evalCmd.Flags().Int("jobs", 0, "parallel evaluations for --file (0 = number of CPUs)")
	evalCmd.Flags().Bool("verbose", false, "show diagnostics with source carets on stderr")
}

func runEval(cmd *cobra.Command, args []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	if filePath == "" && len(args) == 0 {
		return fmt.Errorf("nothing to evaluate: pass expressions or --file")
	}

	cfg, _, err := config.Load(".")
	if err != nil {
		return err
	}
	outOpts := numfmt.Options{
		Precision: cfg.Output.Precision,
		Grouping:  cfg.Output.Grouping,
		Locale:    cfg.Output.Locale,
	}

	maxDiag := maxDiagnostics(cmd)

	var pending []driver.LineResult
	for i, arg := range args {
		pending = append(pending, driver.LineResult{Line: i + 1, Expr: driver.NormalizeInput(arg)})
	}
	if filePath != "" {
		fromFile, err := driver.EvalFile(cmd.Context(), filePath, jobs, maxDiag)
		if err != nil {
			return err
		}
		pending = append(pending, fromFile...)
	}
	if err := driver.EvalAll(cmd.Context(), pending, jobs, maxDiag); err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, lr := range pending {
		res := lr.Result
		if res.OK {
			fmt.Fprintln(out, numfmt.Format(res.Value, outOpts))
			continue
		}
		failed++
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", lr.Expr, res.UserMessage())
		if verbose {
			res.Bag.Sort()
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), ShowNotes: true}
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, opts)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(pending))
	}
	return nil
}
