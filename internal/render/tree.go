package render

import (
	"fmt"
	"strings"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// TreeRenderer renders a Proof as an indented text tree, ported from the
// original workbench's lolli-viz ascii.rs renderer: premises are printed
// above their conclusion, an inference line separates them, and the rule
// name is appended to that line (or inlined on a leaf).
type TreeRenderer struct {
	// Unicode selects the Unicode connective set and box-drawing
	// character; false selects the ASCII fallback.
	Unicode bool
	// ShowRules appends the rule name to each inference line.
	ShowRules bool
	// IndentWidth is the number of spaces added per nesting level.
	IndentWidth int
}

// NewTreeRenderer returns a TreeRenderer with the original's defaults:
// Unicode on, rule names shown, two-space indent.
func NewTreeRenderer() *TreeRenderer {
	return &TreeRenderer{Unicode: true, ShowRules: true, IndentWidth: 2}
}

// Render renders proof as a multi-line text tree.
func (r *TreeRenderer) Render(proof logic.Proof) string {
	var lines []string
	r.renderProof(proof, 0, &lines)
	return strings.Join(lines, "\n")
}

func (r *TreeRenderer) renderProof(proof logic.Proof, indent int, lines *[]string) {
	prefix := strings.Repeat(" ", indent*r.IndentWidth)

	for _, premise := range proof.Premises {
		r.renderProof(premise, indent+1, lines)
	}

	conclusion := r.formatSequent(proof.Conclusion)
	ruleName := proof.RuleTag.String()

	if len(proof.Premises) > 0 {
		lineChar := "-"
		if r.Unicode {
			lineChar = "─"
		}
		width := len(conclusion)
		if width < 20 {
			width = 20
		}
		line := strings.Repeat(lineChar, width)
		if r.ShowRules {
			*lines = append(*lines, fmt.Sprintf("%s%s  %s", prefix, line, ruleName))
		} else {
			*lines = append(*lines, prefix+line)
		}
	} else if r.ShowRules {
		*lines = append(*lines, fmt.Sprintf("%s⊢ %s  (%s)", prefix, conclusion, ruleName))
		return
	}

	*lines = append(*lines, fmt.Sprintf("%s⊢ %s", prefix, conclusion))
}

func (r *TreeRenderer) formatSequent(seq logic.Sequent) string {
	parts := make([]string, len(seq.Linear))
	for i, f := range seq.Linear {
		if r.Unicode {
			parts[i] = logic.PrettyUnicode(f)
		} else {
			parts[i] = logic.PrettyASCII(f)
		}
	}
	return strings.Join(parts, ", ")
}

// LaTeXRenderer renders a Proof as a bussproofs-style LaTeX derivation,
// the format spec.md §6's `-f latex` flag selects.
type LaTeXRenderer struct{}

// NewLaTeXRenderer returns a LaTeXRenderer.
func NewLaTeXRenderer() *LaTeXRenderer { return &LaTeXRenderer{} }

// Render renders proof as a bussproofs \*Inference tree, wrapped in a
// prooftree environment.
func (r *LaTeXRenderer) Render(proof logic.Proof) string {
	var b strings.Builder
	b.WriteString("\\begin{prooftree}\n")
	b.WriteString(r.renderNode(proof))
	b.WriteString("\n\\end{prooftree}")
	return b.String()
}

func (r *LaTeXRenderer) renderNode(proof logic.Proof) string {
	conclusion := r.formatSequent(proof.Conclusion)
	label := "\\RightLabel{\\scriptsize " + proof.RuleTag.String() + "}"

	switch len(proof.Premises) {
	case 0:
		return fmt.Sprintf("%s\n\\AxiomC{$%s$}", label, conclusion)
	case 1:
		premise := r.renderNode(proof.Premises[0])
		return fmt.Sprintf("%s\n%s\n\\UnaryInfC{$%s$}", premise, label, conclusion)
	case 2:
		left := r.renderNode(proof.Premises[0])
		right := r.renderNode(proof.Premises[1])
		return fmt.Sprintf("%s\n%s\n%s\n\\BinaryInfC{$%s$}", left, right, label, conclusion)
	default:
		panic("lolli: a rule with more than two premises has no bussproofs macro")
	}
}

func (r *LaTeXRenderer) formatSequent(seq logic.Sequent) string {
	parts := make([]string, len(seq.Linear))
	for i, f := range seq.Linear {
		parts[i] = logic.PrettyLaTeX(f)
	}
	return strings.Join(parts, ", ")
}

// DotRenderer emits a minimal Graphviz DOT representation of a proof
// tree, one node per rule application labeled with its conclusion.
type DotRenderer struct{}

// NewDotRenderer returns a DotRenderer.
func NewDotRenderer() *DotRenderer { return &DotRenderer{} }

// Render renders proof as a `digraph proof { ... }` block.
func (r *DotRenderer) Render(proof logic.Proof) string {
	var b strings.Builder
	b.WriteString("digraph proof {\n")
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")
	counter := 0
	r.emitNode(proof, &b, &counter)
	b.WriteString("}")
	return b.String()
}

func (r *DotRenderer) emitNode(proof logic.Proof, b *strings.Builder, counter *int) int {
	id := *counter
	*counter++

	label := strings.ReplaceAll(proof.RuleTag.String()+"\\n"+r.formatSequent(proof.Conclusion), `"`, `\"`)
	fmt.Fprintf(b, "  n%d [label=\"%s\"];\n", id, label)

	for _, premise := range proof.Premises {
		childID := r.emitNode(premise, b, counter)
		fmt.Fprintf(b, "  n%d -> n%d;\n", id, childID)
	}

	return id
}

func (r *DotRenderer) formatSequent(seq logic.Sequent) string {
	parts := make([]string, len(seq.Linear))
	for i, f := range seq.Linear {
		parts[i] = logic.PrettyASCII(f)
	}
	return strings.Join(parts, ", ")
}

// Format names one of the three proof renderers spec.md §6's `-f` flag
// selects.
type Format int

const (
	// FormatTree selects TreeRenderer.
	FormatTree Format = iota
	// FormatLaTeX selects LaTeXRenderer.
	FormatLaTeX
	// FormatDot selects DotRenderer.
	FormatDot
)

// ParseFormat maps a CLI flag value ("tree", "latex", "dot") to a
// Format. An unrecognized value returns FormatTree and false.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "tree", "":
		return FormatTree, true
	case "latex":
		return FormatLaTeX, true
	case "dot":
		return FormatDot, true
	default:
		return FormatTree, false
	}
}

// Render renders proof in the given format.
func Render(proof logic.Proof, format Format) string {
	switch format {
	case FormatLaTeX:
		return NewLaTeXRenderer().Render(proof)
	case FormatDot:
		return NewDotRenderer().Render(proof)
	default:
		return NewTreeRenderer().Render(proof)
	}
}
