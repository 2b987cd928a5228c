package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reckon/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "reckon",
	Short: "Interactive arithmetic evaluator",
	Long: `Reckon evaluates infix arithmetic expressions (+ - * / and parentheses).
Run it without arguments for an interactive session, or use the subcommands
to evaluate, tokenize, and inspect expressions from the command line.`,
	RunE: runRepl,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(postfixCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 16, "maximum number of diagnostics per expression")
	rootCmd.Flags().String("ui", "", "interactive mode (auto|plain|fancy); overrides reckon.toml")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the given stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 16
	}
	return n
}
