package logic

import "fmt"

// PrettyUnicode renders f fully parenthesized using the Unicode connective
// set (⊗ ⅋ ⊸ & ⊕ ! ? ⊥ ⊤), per spec.md §4.1.
func PrettyUnicode(f Formula) string {
	switch v := f.(type) {
	case Atom:
		return v.Name
	case NegAtom:
		return v.Name + "⊥"
	case Tensor:
		return fmt.Sprintf("(%s ⊗ %s)", PrettyUnicode(v.A), PrettyUnicode(v.B))
	case Par:
		return fmt.Sprintf("(%s ⅋ %s)", PrettyUnicode(v.A), PrettyUnicode(v.B))
	case Lolli:
		return fmt.Sprintf("(%s ⊸ %s)", PrettyUnicode(v.A), PrettyUnicode(v.B))
	case With:
		return fmt.Sprintf("(%s & %s)", PrettyUnicode(v.A), PrettyUnicode(v.B))
	case Plus:
		return fmt.Sprintf("(%s ⊕ %s)", PrettyUnicode(v.A), PrettyUnicode(v.B))
	case OfCourse:
		return "!" + PrettyUnicode(v.A)
	case WhyNot:
		return "?" + PrettyUnicode(v.A)
	case One:
		return "1"
	case Bottom:
		return "⊥"
	case Top:
		return "⊤"
	case Zero:
		return "0"
	default:
		panic(fmt.Sprintf("logic: unknown formula constructor %T", f))
	}
}

// PrettyASCII renders f fully parenthesized using the ASCII connective set
// (* | -o & + ! ? bot top), per spec.md §4.1.
func PrettyASCII(f Formula) string {
	switch v := f.(type) {
	case Atom:
		return v.Name
	case NegAtom:
		return v.Name + "^"
	case Tensor:
		return fmt.Sprintf("(%s * %s)", PrettyASCII(v.A), PrettyASCII(v.B))
	case Par:
		return fmt.Sprintf("(%s | %s)", PrettyASCII(v.A), PrettyASCII(v.B))
	case Lolli:
		return fmt.Sprintf("(%s -o %s)", PrettyASCII(v.A), PrettyASCII(v.B))
	case With:
		return fmt.Sprintf("(%s & %s)", PrettyASCII(v.A), PrettyASCII(v.B))
	case Plus:
		return fmt.Sprintf("(%s + %s)", PrettyASCII(v.A), PrettyASCII(v.B))
	case OfCourse:
		return "!" + PrettyASCII(v.A)
	case WhyNot:
		return "?" + PrettyASCII(v.A)
	case One:
		return "1"
	case Bottom:
		return "bot"
	case Top:
		return "top"
	case Zero:
		return "0"
	default:
		panic(fmt.Sprintf("logic: unknown formula constructor %T", f))
	}
}

// PrettyLaTeX renders f fully parenthesized using LaTeX math commands
// (\otimes \parr \multimap \with \oplus \bang \whynot \bot \top), per
// spec.md §4.1. \parr, \bang, and \whynot are not standard LaTeX macros;
// generated code assumes they are defined by the caller's preamble (e.g.
// via the `linearlogic` or `bussproofs` packages), matching how the
// original Rust workbench left LaTeX macro definitions to the consumer.
func PrettyLaTeX(f Formula) string {
	switch v := f.(type) {
	case Atom:
		return v.Name
	case NegAtom:
		return v.Name + "^\\bot"
	case Tensor:
		return fmt.Sprintf("(%s \\otimes %s)", PrettyLaTeX(v.A), PrettyLaTeX(v.B))
	case Par:
		return fmt.Sprintf("(%s \\parr %s)", PrettyLaTeX(v.A), PrettyLaTeX(v.B))
	case Lolli:
		return fmt.Sprintf("(%s \\multimap %s)", PrettyLaTeX(v.A), PrettyLaTeX(v.B))
	case With:
		return fmt.Sprintf("(%s \\with %s)", PrettyLaTeX(v.A), PrettyLaTeX(v.B))
	case Plus:
		return fmt.Sprintf("(%s \\oplus %s)", PrettyLaTeX(v.A), PrettyLaTeX(v.B))
	case OfCourse:
		return "\\bang " + PrettyLaTeX(v.A)
	case WhyNot:
		return "\\whynot " + PrettyLaTeX(v.A)
	case One:
		return "1"
	case Bottom:
		return "\\bot"
	case Top:
		return "\\top"
	case Zero:
		return "0"
	default:
		panic(fmt.Sprintf("logic: unknown formula constructor %T", f))
	}
}

// Dialect names one of the three formula pretty-printers. cmd/lolli
// selects a dialect (from its --ascii or --latex flag, or the config
// file's dialect) rather than calling a printer function directly.
type Dialect int

const (
	// Unicode selects PrettyUnicode.
	Unicode Dialect = iota
	// ASCII selects PrettyASCII.
	ASCII
	// LaTeX selects PrettyLaTeX.
	LaTeX
)

// Pretty renders f in the given dialect.
func Pretty(f Formula, d Dialect) string {
	switch d {
	case ASCII:
		return PrettyASCII(f)
	case LaTeX:
		return PrettyLaTeX(f)
	default:
		return PrettyUnicode(f)
	}
}
