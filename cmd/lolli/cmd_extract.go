package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/lolli/internal/parse"
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

var extractNormalize bool

// extractCmd implements the `extract` subcommand: proves a sequent and
// prints the Curry-Howard term witnessing it.
var extractCmd = &cobra.Command{
	Use:   "extract SEQUENT",
	Short: "Extract the linear lambda-term witnessing a sequent's proof",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVarP(&extractNormalize, "normalize", "n", false, "beta-reduce the extracted term")
}

func runExtract(cmd *cobra.Command, args []string) error {
	seq, parseErr := parse.ParseSequent(args[0])
	if parseErr != nil {
		return parseErr
	}

	prover := logic.NewProver(cfg.Depth)
	proof, provable := prover.ProveTwoSided(seq)

	out := cmd.OutOrStdout()
	if !provable {
		fmt.Fprintln(out, header("Not provable")+": "+seq.String())
		return nil
	}

	term := logic.Extract(proof)
	if extractNormalize {
		term = logic.Normalize(term)
	}

	fmt.Fprintln(out, header("Term:")+" "+term.String())
	return nil
}
