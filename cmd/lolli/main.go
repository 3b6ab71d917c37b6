// Command lolli is the CLI driver for the linear logic workbench in
// pkg/logic: parse, prove, extract, and codegen, per spec.md §6's
// external-interfaces table.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/lolli/internal/config"
)

var (
	verbose bool
	cfg     config.Config

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

// rootCmd is the base command. Running it with no subcommand prints
// usage and exits 0; an unknown subcommand is an input error (exit 1).
var rootCmd = &cobra.Command{
	Use:   "lolli",
	Short: "A propositional linear logic workbench",
	Long: `lolli parses linear logic formulas and sequents, searches for
cut-free proofs in a focused sequent calculus, extracts linear
lambda-terms via Curry-Howard, and emits Rust surface code from them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lolli: warning: failed to load ~/.lolli.yaml: %v\n", err)
		cfg = config.Default()
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log proof-search trace to stderr")

	rootCmd.AddCommand(parseCmd, proveCmd, extractCmd, codegenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lolli: "+err.Error())
		os.Exit(1)
	}
}
