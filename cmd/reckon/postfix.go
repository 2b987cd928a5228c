package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reckon/internal/diagfmt"
	"reckon/internal/driver"
)

var postfixCmd = &cobra.Command{
	Use:   "postfix [flags] EXPR",
	Short: "Show an expression in postfix (RPN) order",
	Long: `Postfix tokenizes an expression and prints it reordered into reverse
Polish notation, the exact sequence the evaluator consumes.`,
	Args: cobra.ExactArgs(1),
	RunE: runPostfix,
}

func runPostfix(cmd *cobra.Command, args []string) error {
	result := driver.ReorderExpression(driver.NormalizeInput(args[0]), maxDiagnostics(cmd))

	if result.Bag.HasErrors() {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		return fmt.Errorf("expression has errors")
	}

	return diagfmt.FormatPostfix(cmd.OutOrStdout(), result.Postfix)
}
