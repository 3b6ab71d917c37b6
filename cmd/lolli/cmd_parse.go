package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/lolli/internal/parse"
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

var (
	parseASCII bool
	parseLatex bool
)

// parseCmd implements the `parse` subcommand: parses a single formula
// and prints its parsed, desugared, negated, and polarity forms.
var parseCmd = &cobra.Command{
	Use:   "parse FORMULA",
	Short: "Parse a linear logic formula and show its normal forms",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseASCII, "ascii", false, "render using the ASCII connective set")
	parseCmd.Flags().BoolVar(&parseLatex, "latex", false, "render using LaTeX math commands")
}

func dialectFor(ascii, latex bool, fallback string) logic.Dialect {
	switch {
	case latex:
		return logic.LaTeX
	case ascii:
		return logic.ASCII
	case fallback == "ascii":
		return logic.ASCII
	case fallback == "latex":
		return logic.LaTeX
	default:
		return logic.Unicode
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	f, parseErr := parse.ParseFormula(args[0])
	if parseErr != nil {
		return parseErr
	}

	dialect := dialectFor(parseASCII, parseLatex, cfg.Dialect)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, header("Parsed:")+" "+logic.Pretty(f, dialect))
	fmt.Fprintln(out, header("Desugared:")+" "+logic.Pretty(f.Desugar(), dialect))
	fmt.Fprintln(out, header("Negation:")+" "+logic.Pretty(f.Negate(), dialect))

	polarity := "negative"
	if f.IsPositive() {
		polarity = "positive"
	}
	fmt.Fprintln(out, header("Polarity:")+" "+polarity)

	return nil
}

// header styles a section label when color output is enabled
// (internal/config's Color default), falling back to plain text.
func header(label string) string {
	if cfg.Color {
		return headerStyle.Render(label)
	}
	return label
}
