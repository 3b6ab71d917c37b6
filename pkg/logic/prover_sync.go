package logic

// proveSync runs the synchronous (focused) phase: it picks a formula to
// decompose and, when that attempt fails, backtracks to the next
// candidate (spec.md §4.4). The search order
// is fixed: positive linear formulas first (in context order), then
// negated atoms tried as the other half of an axiom, then — only if the
// unrestricted zone is non-empty — dereliction, contraction, and
// weakening, in that order.
func (p *Prover) proveSync(seq Sequent, depth int) (Proof, bool) {
	for i := range seq.Linear {
		if seq.Linear[i].IsPositive() {
			if proof, ok := p.proveFocused(seq, i, depth); ok {
				return proof, true
			}
		}
	}

	for i := range seq.Linear {
		if _, isNegAtom := seq.Linear[i].(NegAtom); isNegAtom {
			if proof, ok := p.tryAxiom(seq, i); ok {
				return proof, true
			}
		}
	}

	if len(seq.Unrestricted) > 0 {
		if proof, ok := p.tryDereliction(seq, depth); ok {
			return proof, true
		}
		if proof, ok := p.tryContraction(seq, depth); ok {
			return proof, true
		}
		if proof, ok := p.tryWeakening(seq, depth); ok {
			return proof, true
		}
	}

	return Proof{}, false
}

// tryAxiom checks whether seq.Linear[negIdx], a NegAtom, closes the
// sequent against a matching Atom — which requires the two of them to
// be the entire linear context (spec.md's Axiom rule: ⊢ A⊥, A).
func (p *Prover) tryAxiom(seq Sequent, negIdx int) (Proof, bool) {
	neg, ok := seq.Linear[negIdx].(NegAtom)
	if !ok {
		return Proof{}, false
	}
	for j, other := range seq.Linear {
		if j == negIdx {
			continue
		}
		if atom, isAtom := other.(Atom); isAtom && atom.Name == neg.Name && len(seq.Linear) == 2 {
			return Proof{Conclusion: seq, RuleTag: Axiom}, true
		}
	}
	return Proof{}, false
}

// tryDereliction moves each unrestricted formula, one at a time, into
// the linear zone (removing it from the unrestricted zone), and retries.
func (p *Prover) tryDereliction(seq Sequent, depth int) (Proof, bool) {
	for i := range seq.Unrestricted {
		formula := seq.Unrestricted[i]

		linear := append(copyFormulas(seq.Linear), formula)
		unrestricted := removeAt(seq.Unrestricted, i)

		next := Sequent{Linear: linear, Unrestricted: unrestricted}
		if premise, ok := p.proveWithDepth(next, depth+1); ok {
			return Proof{Conclusion: seq, RuleTag: Dereliction, Premises: []Proof{premise}}, true
		}
	}
	return Proof{}, false
}

// tryContraction duplicates each unrestricted formula into two linear
// copies and retries.
func (p *Prover) tryContraction(seq Sequent, depth int) (Proof, bool) {
	for i := range seq.Unrestricted {
		formula := seq.Unrestricted[i]

		linear := append(copyFormulas(seq.Linear), formula, formula)
		unrestricted := removeAt(seq.Unrestricted, i)

		next := Sequent{Linear: linear, Unrestricted: unrestricted}
		if premise, ok := p.proveWithDepth(next, depth+1); ok {
			return Proof{Conclusion: seq, RuleTag: Contraction, Premises: []Proof{premise}}, true
		}
	}
	return Proof{}, false
}

// tryWeakening discards each unrestricted formula, one at a time, and
// retries.
func (p *Prover) tryWeakening(seq Sequent, depth int) (Proof, bool) {
	for i := range seq.Unrestricted {
		unrestricted := removeAt(seq.Unrestricted, i)
		next := Sequent{Linear: copyFormulas(seq.Linear), Unrestricted: unrestricted}
		if premise, ok := p.proveWithDepth(next, depth+1); ok {
			return Proof{Conclusion: seq, RuleTag: Weakening, Premises: []Proof{premise}}, true
		}
	}
	return Proof{}, false
}

// proveFocused commits to decomposing seq.Linear[idx], the formula under
// focus, per its top-level connective. This is the only place the
// prover considers the shape of a positive formula.
func (p *Prover) proveFocused(seq Sequent, idx int, depth int) (Proof, bool) {
	switch f := seq.Linear[idx].(type) {
	case Atom:
		for j, other := range seq.Linear {
			if j == idx {
				continue
			}
			if neg, isNeg := other.(NegAtom); isNeg && neg.Name == f.Name && len(seq.Linear) == 2 {
				return Proof{Conclusion: seq, RuleTag: Axiom}, true
			}
		}
		return Proof{}, false

	case One:
		if len(seq.Linear) == 1 {
			return Proof{Conclusion: seq, RuleTag: OneIntro}, true
		}
		return Proof{}, false

	case Zero:
		return Proof{}, false

	case Tensor:
		rest := removeAt(seq.Linear, idx)
		for _, split := range allSplits(rest) {
			leftLinear := append(copyFormulas(split.left), f.A)
			leftSeq := Sequent{Linear: leftLinear, Unrestricted: seq.Unrestricted}
			leftProof, ok := p.proveWithDepth(leftSeq, depth+1)
			if !ok {
				continue
			}

			rightLinear := append(copyFormulas(split.right), f.B)
			rightSeq := Sequent{Linear: rightLinear, Unrestricted: seq.Unrestricted}
			rightProof, ok := p.proveWithDepth(rightSeq, depth+1)
			if !ok {
				continue
			}

			return Proof{Conclusion: seq, RuleTag: TensorIntro, Premises: []Proof{leftProof, rightProof}}, true
		}
		return Proof{}, false

	case Plus:
		leftLinear := copyFormulas(seq.Linear)
		leftLinear[idx] = f.A
		leftSeq := Sequent{Linear: leftLinear, Unrestricted: seq.Unrestricted}
		if premise, ok := p.proveWithDepth(leftSeq, depth+1); ok {
			return Proof{Conclusion: seq, RuleTag: PlusIntroLeft, Premises: []Proof{premise}}, true
		}

		rightLinear := copyFormulas(seq.Linear)
		rightLinear[idx] = f.B
		rightSeq := Sequent{Linear: rightLinear, Unrestricted: seq.Unrestricted}
		if premise, ok := p.proveWithDepth(rightSeq, depth+1); ok {
			return Proof{Conclusion: seq, RuleTag: PlusIntroRight, Premises: []Proof{premise}}, true
		}

		return Proof{}, false

	case OfCourse:
		if len(seq.Linear) == 1 {
			next := Sequent{Linear: []Formula{f.A}, Unrestricted: seq.Unrestricted}
			if premise, ok := p.proveWithDepth(next, depth+1); ok {
				return Proof{Conclusion: seq, RuleTag: OfCourseIntro, Premises: []Proof{premise}}, true
			}
		}
		return Proof{}, false

	default:
		return Proof{}, false
	}
}

type contextSplit struct {
	left, right []Formula
}

// allSplits enumerates every way to partition formulas into two ordered
// sublists, preserving relative order within each: for n formulas there
// are 2^n splits, one per assignment of each formula to the left or
// right side, enumerated in bitmask order with bit i selecting formula
// i's side (0 = left, 1 = right). Tensor's premise search tries these in
// this exact order and returns the first that succeeds, so the order
// itself is part of the prover's determinism guarantee (spec.md §4.4).
func allSplits(formulas []Formula) []contextSplit {
	n := len(formulas)
	if n == 0 {
		return []contextSplit{{}}
	}

	splits := make([]contextSplit, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var left, right []Formula
		for i, formula := range formulas {
			if (mask>>uint(i))&1 == 0 {
				left = append(left, formula)
			} else {
				right = append(right, formula)
			}
		}
		splits = append(splits, contextSplit{left: left, right: right})
	}
	return splits
}
