package logic

import "strconv"

// Extractor turns a cut-free Proof into a linear λ-term via the
// Curry-Howard correspondence (spec.md §4.5). Unlike the original
// workbench's extractor — an unimplemented stub that only ever returned
// a constant Unit — this one actually walks the proof tree.
//
// Variable names are monotonically fresh (x0, x1, …), assigned in the
// order the recursion visits the rules that need one: Axiom, and the
// exponential rules that introduce a handle to an unrestricted
// resource (Dereliction, Contraction, Weakening). Every premise visited
// during one Extract call draws from the same counter, so nested
// extractions (e.g. the two branches of a Cut) never collide on names;
// each Extract call starts a new Extractor, counting from x0.
type Extractor struct {
	counter int
}

// NewExtractor creates an Extractor with a fresh variable counter.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) fresh() string {
	n := e.counter
	e.counter++
	return "x" + strconv.Itoa(n)
}

// Extract produces the term witnessing proof. The proof need not be
// cut-free — a supplied Cut is honored by substitution — but the
// prover in this package never emits one (spec.md §4.4's search is
// cut-free by construction).
func Extract(proof Proof) Term {
	e := NewExtractor()
	overrides := make([]Term, len(proof.Conclusion.Linear))
	return e.extract(proof, overrides)
}

// extract is the recursive worker. overrides runs parallel to
// proof.Conclusion.Linear: overrides[i] is non-nil when position i's
// value is already known (bound by an enclosing Dereliction,
// Contraction, or Cut) rather than needing a fresh variable generated
// at the Axiom that eventually closes it.
//
// When a rule decomposes a linear formula that itself carries a
// non-nil override — i.e. extraction is asked to destructure an
// already-bound value further — the override is dropped in favor of
// ordinary fresh variables for the pieces it produces. This only
// affects proofs that dereliction- or contraction-introduce a compound
// formula and then decompose it again before consuming it, a case
// spec.md leaves to implementer discretion ("With and Par introductions
// have subtle freedom in how auxiliary variables are generated").
func (e *Extractor) extract(proof Proof, overrides []Term) Term {
	linear := proof.Conclusion.Linear

	switch proof.RuleTag {
	case Axiom:
		for _, ov := range overrides {
			if ov != nil {
				return ov
			}
		}
		return Var{Name: e.fresh()}

	case OneIntro:
		return UnitTerm{}

	case TopIntro:
		return Trivial{}

	case Cut:
		leftPremise := proof.Premises[0]
		rightPremise := proof.Premises[1]
		leftOv := matchOverrides(linear, overrides, leftPremise.Conclusion.Linear)
		leftTerm := e.extract(leftPremise, leftOv)

		rightOv := matchOverrides(linear, overrides, rightPremise.Conclusion.Linear)
		if proof.CutFormula != nil {
			dual := proof.CutFormula.Negate()
			for i, f := range rightPremise.Conclusion.Linear {
				if rightOv[i] == nil && f.Equal(dual) {
					rightOv[i] = leftTerm
					break
				}
			}
		}
		return e.extract(rightPremise, rightOv)

	case BottomIntro, ParIntro, WhyNotIntro:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		return e.extract(premise, ov)

	case WithIntro:
		left := proof.Premises[0]
		right := proof.Premises[1]
		leftOv := matchOverrides(linear, overrides, left.Conclusion.Linear)
		rightOv := matchOverrides(linear, overrides, right.Conclusion.Linear)
		return Pair{Fst: e.extract(left, leftOv), Snd: e.extract(right, rightOv)}

	case TensorIntro:
		left := proof.Premises[0]
		right := proof.Premises[1]
		leftOv := matchOverrides(linear, overrides, left.Conclusion.Linear)
		rightOv := matchOverrides(linear, overrides, right.Conclusion.Linear)
		return Pair{Fst: e.extract(left, leftOv), Snd: e.extract(right, rightOv)}

	case PlusIntroLeft:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		return Inl{Inner: e.extract(premise, ov)}

	case PlusIntroRight:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		return Inr{Inner: e.extract(premise, ov)}

	case OfCourseIntro:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		return Promote{Inner: e.extract(premise, ov)}

	case Dereliction:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		u := e.fresh()
		ov[len(ov)-1] = Derelict{Inner: Var{Name: u}}
		return e.extract(premise, ov)

	case Contraction:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		x, y, src := e.fresh(), e.fresh(), e.fresh()
		ov[len(ov)-2] = Var{Name: x}
		ov[len(ov)-1] = Var{Name: y}
		body := e.extract(premise, ov)
		return Copy{Src: Var{Name: src}, X: x, Y: y, Body: body}

	case Weakening:
		premise := proof.Premises[0]
		ov := matchOverrides(linear, overrides, premise.Conclusion.Linear)
		src := e.fresh()
		body := e.extract(premise, ov)
		return Discard{Discarded: Var{Name: src}, Body: body}

	default:
		return UnitTerm{}
	}
}

// matchOverrides computes the override slice for a premise by
// structurally matching the premise's linear formulas back to the
// parent's, greedily consuming the first unused structural match for
// each. Formulas the rule newly introduced (appended, not present in
// the parent) have no match and come back nil — exactly the slots the
// rule-specific code above then fills in by known position.
func matchOverrides(parentLinear []Formula, parentOv []Term, childLinear []Formula) []Term {
	used := make([]bool, len(parentLinear))
	childOv := make([]Term, len(childLinear))

	for ci, cf := range childLinear {
		for pi, pf := range parentLinear {
			if used[pi] {
				continue
			}
			if cf.Equal(pf) {
				used[pi] = true
				childOv[ci] = parentOv[pi]
				break
			}
		}
	}

	return childOv
}
