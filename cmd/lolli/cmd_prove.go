package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/lolli/internal/parse"
	"github.com/ibrahimcesar/lolli/internal/render"
	"github.com/ibrahimcesar/lolli/internal/trace"
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

var (
	proveDepth  int
	proveFormat string
)

// proveCmd implements the `prove` subcommand. Per spec.md §6, a
// sequent that fails to prove within the depth budget is a successful
// "not provable" outcome (exit 0), not an error; only a malformed
// sequent is an input error (exit 1).
var proveCmd = &cobra.Command{
	Use:   "prove SEQUENT",
	Short: "Search for a cut-free proof of a sequent",
	Args:  cobra.ExactArgs(1),
	RunE:  runProve,
}

func init() {
	proveCmd.Flags().IntVarP(&proveDepth, "depth", "d", 0, "search depth budget (default: config, else 100)")
	proveCmd.Flags().StringVarP(&proveFormat, "format", "f", "tree", "proof tree format: tree, latex, or dot")
}

func runProve(cmd *cobra.Command, args []string) error {
	seq, parseErr := parse.ParseSequent(args[0])
	if parseErr != nil {
		return parseErr
	}

	format, ok := render.ParseFormat(proveFormat)
	if !ok {
		return fmt.Errorf("unknown proof format %q (want tree, latex, or dot)", proveFormat)
	}

	depth := proveDepth
	if depth <= 0 {
		depth = cfg.Depth
	}

	var tr *trace.Tracer
	if verbose {
		var err error
		tr, err = trace.New(true)
		if err != nil {
			return err
		}
		defer tr.Sync()
	}

	prover := logic.NewProver(depth)
	proof, provable := prover.ProveTwoSided(seq)

	if tr != nil {
		tr.SearchResult(provable, prover.Stats())
	}

	out := cmd.OutOrStdout()
	if !provable {
		fmt.Fprintln(out, header("Not provable")+" within depth "+fmt.Sprint(depth)+": "+seq.String())
		return nil
	}

	fmt.Fprintln(out, header("Provable:")+" "+seq.String())
	fmt.Fprintln(out, render.Render(proof, format))
	return nil
}
