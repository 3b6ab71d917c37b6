package logic

// Rule names the inference rule that produced a Proof node. The focused
// prover never emits Cut (its derivations are cut-free by construction);
// Cut is defined so a Proof can represent one if supplied from elsewhere,
// per spec.md §9's note on future cut-elimination experiments.
type Rule int

const (
	// Axiom closes ⊢ A⊥, A.
	Axiom Rule = iota
	// Cut derives ⊢ Γ, Δ from ⊢ Γ, A and ⊢ Δ, A⊥. CutFormula holds A.
	Cut
	// OneIntro closes ⊢ 1.
	OneIntro
	// BottomIntro derives ⊢ Γ, ⊥ from ⊢ Γ.
	BottomIntro
	// TensorIntro derives ⊢ Γ, Δ, A ⊗ B from ⊢ Γ, A and ⊢ Δ, B.
	TensorIntro
	// ParIntro derives ⊢ Γ, A ⅋ B from ⊢ Γ, A, B.
	ParIntro
	// TopIntro closes ⊢ Γ, ⊤ with no premises.
	TopIntro
	// WithIntro derives ⊢ Γ, A & B from ⊢ Γ, A and ⊢ Γ, B.
	WithIntro
	// PlusIntroLeft derives ⊢ Γ, A ⊕ B from ⊢ Γ, A.
	PlusIntroLeft
	// PlusIntroRight derives ⊢ Γ, A ⊕ B from ⊢ Γ, B.
	PlusIntroRight
	// OfCourseIntro derives ⊢ ?Γ, !A from ⊢ ?Γ, A.
	OfCourseIntro
	// WhyNotIntro derives ⊢ Γ, ?A from ⊢ Γ, A.
	WhyNotIntro
	// Weakening derives ⊢ Γ, ?A from ⊢ Γ.
	Weakening
	// Contraction derives ⊢ Γ, ?A from ⊢ Γ, A, A: the prover moves A out
	// of the unrestricted zone and appends two linear copies of it.
	Contraction
	// Dereliction is the use of ?A as A.
	Dereliction
)

// String names the rule, matching the identifiers used in spec.md §3.
func (r Rule) String() string {
	switch r {
	case Axiom:
		return "Axiom"
	case Cut:
		return "Cut"
	case OneIntro:
		return "OneIntro"
	case BottomIntro:
		return "BottomIntro"
	case TensorIntro:
		return "TensorIntro"
	case ParIntro:
		return "ParIntro"
	case TopIntro:
		return "TopIntro"
	case WithIntro:
		return "WithIntro"
	case PlusIntroLeft:
		return "PlusIntroLeft"
	case PlusIntroRight:
		return "PlusIntroRight"
	case OfCourseIntro:
		return "OfCourseIntro"
	case WhyNotIntro:
		return "WhyNotIntro"
	case Weakening:
		return "Weakening"
	case Contraction:
		return "Contraction"
	case Dereliction:
		return "Dereliction"
	default:
		return "Unknown"
	}
}

// Proof is an immutable inference-rule-tagged tree: a conclusion sequent,
// the rule that derives it, and zero or more premises (sub-proofs). Proof
// trees normally come from the prover (pkg/logic's Prover.Prove), but may
// also be built by hand; consumers read Conclusion, RuleTag, and Premises.
type Proof struct {
	Conclusion Sequent
	RuleTag    Rule
	Premises   []Proof

	// CutFormula holds the cut formula when RuleTag == Cut; nil otherwise.
	CutFormula Formula
}

// Depth returns 1 + the maximum depth of the proof's premises; a leaf
// (no premises) has depth 1.
func (p Proof) Depth() int {
	if len(p.Premises) == 0 {
		return 1
	}
	max := 0
	for _, premise := range p.Premises {
		if d := premise.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// CutCount returns the number of Cut rules anywhere in the proof tree.
// The focused prover only ever produces cut-free proofs, so this is 0 for
// every Proof returned by Prover.Prove.
func (p Proof) CutCount() int {
	count := 0
	if p.RuleTag == Cut {
		count = 1
	}
	for _, premise := range p.Premises {
		count += premise.CutCount()
	}
	return count
}

// IsCutFree reports whether CutCount() == 0.
func (p Proof) IsCutFree() bool {
	return p.CutCount() == 0
}
