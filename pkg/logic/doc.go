// Package logic is a workbench for propositional linear logic.
//
// It represents linear logic formulas and sequents, searches for cut-free
// proofs in a focused one-sided sequent calculus (MALL extended with the
// MELL exponentials ! and ?), extracts linear λ-terms from proofs via the
// Curry-Howard correspondence, and synthesizes surface types and Rust
// function text from those terms.
//
// The package is organized one file per concern:
//
//   - formula.go, formula_pretty.go: the formula algebra (negation,
//     desugaring, polarity, pretty-printing)
//   - sequent.go: one-sided and two-sided sequents
//   - proof.go: the proof tree and its inference rules
//   - term.go, term_pretty.go: the linear λ-calculus term language
//   - normalize.go: β-reduction of extracted terms
//   - prover.go, prover_async.go, prover_sync.go, prover_cache.go: the
//     focused proof-search engine
//   - extractor.go: proof-to-term extraction
//   - types.go, codegen.go: surface type synthesis and Rust code emission
//   - errors.go: the ParseError surface consumed by internal/parse
//
// Formulas, sequents, proofs, and terms are immutable value trees; nothing
// in this package holds state across calls except a Prover's own failure
// cache, which is not safe to share across concurrent callers (create one
// Prover per caller).
package logic
