package logic

import (
	"fmt"
	"strings"
)

// Sequent is a one-sided sequent ⊢ Γ, per spec.md §3. It carries three
// zones: Linear formulas, which must each be used exactly once, an
// Unrestricted zone of formulas implicitly under ?, and an optional
// Focus formula currently singled out by the focused prover.
//
// Sequent is an immutable value; every operation returns a new Sequent
// rather than mutating the receiver, mirroring the teacher's
// Substitution.Bind (core.go), which clones rather than mutates.
type Sequent struct {
	Linear       []Formula
	Unrestricted []Formula
	Focus        Formula // nil when no formula is focused
}

// NewSequent builds a one-sided sequent from a flat list of formulas, with
// an empty unrestricted zone and no focus.
func NewSequent(formulas []Formula) Sequent {
	linear := make([]Formula, len(formulas))
	copy(linear, formulas)
	return Sequent{Linear: linear}
}

// IsEmpty reports whether the sequent is empty: no linear formulas and no
// focus. Per spec.md §3, an empty sequent is, by design, not provable —
// the axiom rule requires exactly two dual atoms.
func (s Sequent) IsEmpty() bool {
	return len(s.Linear) == 0 && s.Focus == nil
}

// FocusOn returns a new sequent with the i-th linear formula moved into
// Focus. ok is false if i is out of range, in which case the returned
// sequent is the zero value.
func (s Sequent) FocusOn(i int) (Sequent, bool) {
	if i < 0 || i >= len(s.Linear) {
		return Sequent{}, false
	}
	linear := make([]Formula, 0, len(s.Linear)-1)
	linear = append(linear, s.Linear[:i]...)
	linear = append(linear, s.Linear[i+1:]...)
	return Sequent{
		Linear:       linear,
		Unrestricted: s.Unrestricted,
		Focus:        s.Linear[i],
	}, true
}

// Unfocus returns a new sequent with Focus pushed back onto the tail of
// Linear, and Focus cleared. Unfocus on a sequent with no focus returns an
// equal sequent.
func (s Sequent) Unfocus() Sequent {
	if s.Focus == nil {
		return s
	}
	linear := make([]Formula, len(s.Linear), len(s.Linear)+1)
	copy(linear, s.Linear)
	linear = append(linear, s.Focus)
	return Sequent{Linear: linear, Unrestricted: s.Unrestricted}
}

// String renders the sequent as "⊢ F1, F2, ...".
func (s Sequent) String() string {
	parts := make([]string, len(s.Linear))
	for i, f := range s.Linear {
		parts[i] = PrettyUnicode(f)
	}
	return "⊢ " + strings.Join(parts, ", ")
}

// TwoSidedSequent is a two-sided sequent Γ ⊢ Δ: the public, user-facing
// sequent surface. The prover works one-sided internally (ToOneSided).
type TwoSidedSequent struct {
	Antecedent []Formula
	Succedent  []Formula
}

// NewTwoSidedSequent builds a two-sided sequent from an antecedent and
// succedent.
func NewTwoSidedSequent(antecedent, succedent []Formula) TwoSidedSequent {
	return TwoSidedSequent{Antecedent: antecedent, Succedent: succedent}
}

// ToOneSided converts Γ ⊢ Δ to the one-sided form ⊢ Γ⊥, Δ: each antecedent
// formula is negated, and the succedent is appended, preserving relative
// order.
func (s TwoSidedSequent) ToOneSided() Sequent {
	formulas := make([]Formula, 0, len(s.Antecedent)+len(s.Succedent))
	for _, f := range s.Antecedent {
		formulas = append(formulas, f.Negate())
	}
	formulas = append(formulas, s.Succedent...)
	return NewSequent(formulas)
}

// String renders the sequent as "F1, F2 ⊢ G1, G2".
func (s TwoSidedSequent) String() string {
	left := make([]string, len(s.Antecedent))
	for i, f := range s.Antecedent {
		left[i] = PrettyUnicode(f)
	}
	right := make([]string, len(s.Succedent))
	for i, f := range s.Succedent {
		right[i] = PrettyUnicode(f)
	}
	return fmt.Sprintf("%s ⊢ %s", strings.Join(left, ", "), strings.Join(right, ", "))
}
