package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

func axiomProof(name string) logic.Proof {
	return logic.Proof{
		Conclusion: logic.NewSequent([]logic.Formula{
			logic.NewAtom(name).Negate(),
			logic.NewAtom(name),
		}),
		RuleTag: logic.Axiom,
	}
}

func TestTreeRendererShowsAxiomAndRule(t *testing.T) {
	out := NewTreeRenderer().Render(axiomProof("A"))
	require.Contains(t, out, "A⊥")
	require.Contains(t, out, "Axiom")
}

func TestTreeRendererASCIIMode(t *testing.T) {
	r := NewTreeRenderer()
	r.Unicode = false
	out := r.Render(axiomProof("A"))
	require.Contains(t, out, "A^")
}

func TestTreeRendererHidesRules(t *testing.T) {
	r := NewTreeRenderer()
	r.ShowRules = false
	out := r.Render(axiomProof("A"))
	require.NotContains(t, out, "Axiom")
}

func TestTreeRendererTensorHasInferenceLine(t *testing.T) {
	proof := logic.Proof{
		Conclusion: logic.NewSequent([]logic.Formula{
			logic.NewAtom("A").Negate(),
			logic.NewAtom("B").Negate(),
			logic.Tensor{A: logic.NewAtom("A"), B: logic.NewAtom("B")},
		}),
		RuleTag:  logic.TensorIntro,
		Premises: []logic.Proof{axiomProof("A"), axiomProof("B")},
	}
	out := NewTreeRenderer().Render(proof)
	require.Contains(t, out, "TensorIntro")
	require.Contains(t, out, "─")
}

func TestLaTeXRendererWrapsProoftree(t *testing.T) {
	out := NewLaTeXRenderer().Render(axiomProof("A"))
	require.True(t, strings.HasPrefix(out, "\\begin{prooftree}"), "expected a prooftree environment:\n%s", out)
	require.Contains(t, out, "\\AxiomC")
}

func TestDotRendererEmitsDigraph(t *testing.T) {
	proof := logic.Proof{
		Conclusion: logic.NewSequent([]logic.Formula{logic.NewAtom("A")}),
		RuleTag:    logic.OneIntro,
	}
	out := NewDotRenderer().Render(proof)
	require.True(t, strings.HasPrefix(out, "digraph proof {"), "expected a digraph header:\n%s", out)
	require.Contains(t, out, "n0")
}

func TestParseFormatRecognizesNames(t *testing.T) {
	cases := map[string]Format{
		"":      FormatTree,
		"tree":  FormatTree,
		"latex": FormatLaTeX,
		"dot":   FormatDot,
	}
	got := map[string]Format{}
	for name := range cases {
		f, ok := ParseFormat(name)
		require.True(t, ok, "ParseFormat(%q) should be recognized", name)
		got[name] = f
	}
	if diff := cmp.Diff(cases, got); diff != "" {
		t.Errorf("ParseFormat results mismatch (-want +got):\n%s", diff)
	}

	_, ok := ParseFormat("svg")
	require.False(t, ok, "ParseFormat should reject an unknown format name")
}
