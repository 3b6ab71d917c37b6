package logic

// proveAsync runs the asynchronous phase of focused search (spec.md
// §4.4): it scans the linear zone in context order for the first
// invertible formula — a Par, Bottom, Top, With, WhyNot, or Lolli — and
// decomposes it. Invertible rules never need to backtrack, so once one
// is found its result (success or failure) is the result of the whole
// sequent; there is no trying a second invertible formula after the
// first one fails.
//
// An empty sequent with no focus is not provable: linear logic has no
// rule that closes ⊢ (nothing).
func (p *Prover) proveAsync(seq Sequent, depth int) (Proof, bool) {
	if len(seq.Linear) == 0 && seq.Focus == nil {
		return Proof{}, false
	}

	for i, formula := range seq.Linear {
		switch f := formula.(type) {
		case Par:
			rest := removeAt(seq.Linear, i)
			rest = append(rest, f.A, f.B)
			next := Sequent{Linear: rest, Unrestricted: seq.Unrestricted}
			premise, ok := p.proveWithDepth(next, depth+1)
			if !ok {
				return Proof{}, false
			}
			return Proof{Conclusion: seq, RuleTag: ParIntro, Premises: []Proof{premise}}, true

		case Bottom:
			rest := removeAt(seq.Linear, i)
			next := Sequent{Linear: rest, Unrestricted: seq.Unrestricted}
			premise, ok := p.proveWithDepth(next, depth+1)
			if !ok {
				return Proof{}, false
			}
			return Proof{Conclusion: seq, RuleTag: BottomIntro, Premises: []Proof{premise}}, true

		case Top:
			return Proof{Conclusion: seq, RuleTag: TopIntro}, true

		case With:
			leftLinear := append(removeAt(seq.Linear, i), f.A)
			leftSeq := Sequent{Linear: leftLinear, Unrestricted: seq.Unrestricted}
			leftProof, ok := p.proveWithDepth(leftSeq, depth+1)
			if !ok {
				return Proof{}, false
			}

			rightLinear := append(removeAt(seq.Linear, i), f.B)
			rightSeq := Sequent{Linear: rightLinear, Unrestricted: seq.Unrestricted}
			rightProof, ok := p.proveWithDepth(rightSeq, depth+1)
			if !ok {
				return Proof{}, false
			}

			return Proof{Conclusion: seq, RuleTag: WithIntro, Premises: []Proof{leftProof, rightProof}}, true

		case WhyNot:
			rest := removeAt(seq.Linear, i)
			unrestricted := append(copyFormulas(seq.Unrestricted), f.A)
			next := Sequent{Linear: rest, Unrestricted: unrestricted}
			premise, ok := p.proveWithDepth(next, depth+1)
			if !ok {
				return Proof{}, false
			}
			return Proof{Conclusion: seq, RuleTag: WhyNotIntro, Premises: []Proof{premise}}, true

		case Lolli:
			desugared := Par{A: f.A.Negate(), B: f.B}
			linear := copyFormulas(seq.Linear)
			linear[i] = desugared
			next := Sequent{Linear: linear, Unrestricted: seq.Unrestricted}
			return p.proveWithDepth(next, depth)
		}
	}

	return p.proveSync(seq, depth)
}

func removeAt(formulas []Formula, i int) []Formula {
	out := make([]Formula, 0, len(formulas)-1)
	out = append(out, formulas[:i]...)
	out = append(out, formulas[i+1:]...)
	return out
}

func copyFormulas(formulas []Formula) []Formula {
	out := make([]Formula, len(formulas))
	copy(out, formulas)
	return out
}
