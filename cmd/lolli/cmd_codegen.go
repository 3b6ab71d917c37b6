package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibrahimcesar/lolli/internal/parse"
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

var codegenOut string

// codegenCmd implements the `codegen` subcommand: proves a sequent,
// extracts and normalizes its term, and emits a standalone Rust module
// realizing it.
var codegenCmd = &cobra.Command{
	Use:   "codegen SEQUENT",
	Short: "Emit Rust source implementing a sequent's proof",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodegen,
}

func init() {
	codegenCmd.Flags().StringVarP(&codegenOut, "output", "o", "", "write to PATH instead of stdout")
}

func runCodegen(cmd *cobra.Command, args []string) error {
	seq, parseErr := parse.ParseSequent(args[0])
	if parseErr != nil {
		return parseErr
	}

	prover := logic.NewProver(cfg.Depth)
	proof, provable := prover.ProveTwoSided(seq)
	if !provable {
		fmt.Fprintln(cmd.OutOrStdout(), header("Not provable")+": "+seq.String())
		return nil
	}

	term := logic.Normalize(logic.Extract(proof))
	code := logic.NewCodegen().GenerateModule("generated", seq, term)

	if codegenOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	}
	return os.WriteFile(codegenOut, []byte(code+"\n"), 0o644)
}
