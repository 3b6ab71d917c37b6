package logic

import "fmt"

// Formula is any propositional linear logic formula. All implementations
// are immutable values: atoms, multiplicatives, additives, exponentials,
// and the Lolli sugar.
//
// Formula mirrors the shape of the teacher's Term interface (core.go):
// a small method set implemented by a family of concrete value types
// rather than a single tagged struct. Call sites dispatch with type
// switches; the compiler does not check them for exhaustiveness.
type Formula interface {
	// Negate computes the linear (De Morgan) negation of the formula.
	// Negate is involutive: f.Negate().Negate().Equal(f) for every f
	// that contains no Lolli. A Lolli negates to a Tensor, so negating
	// twice yields its desugared Par form rather than the Lolli itself.
	Negate() Formula

	// Desugar recursively eliminates every Lolli by rewriting it to
	// Par(Negate(A), B). Identity on every other constructor other than
	// recursing into children.
	Desugar() Formula

	// IsPositive reports whether this formula belongs to the positive
	// family {Atom, Tensor, One, Plus, Zero, OfCourse}.
	IsPositive() bool

	// Equal is structural equality, not unification: two formulas are
	// equal only if built from the same constructor with equal children.
	Equal(other Formula) bool

	// String renders the formula using Unicode connectives.
	String() string
}

// Atom is an atomic proposition.
type Atom struct{ Name string }

// NegAtom is a negated atomic proposition, A⊥.
type NegAtom struct{ Name string }

// Tensor is the multiplicative conjunction A ⊗ B.
type Tensor struct{ A, B Formula }

// Par is the multiplicative disjunction A ⅋ B.
type Par struct{ A, B Formula }

// One is the multiplicative unit, 1.
type One struct{}

// Bottom is the multiplicative unit for Par, ⊥.
type Bottom struct{}

// With is the additive conjunction A & B.
type With struct{ A, B Formula }

// Plus is the additive disjunction A ⊕ B.
type Plus struct{ A, B Formula }

// Top is the additive unit, ⊤ — always provable.
type Top struct{}

// Zero is the additive unit for Plus, 0 — never provable.
type Zero struct{}

// OfCourse is the exponential !A, "unlimited supply of A".
type OfCourse struct{ A Formula }

// WhyNot is the exponential ?A, "demand for A".
type WhyNot struct{ A Formula }

// Lolli is linear implication A ⊸ B, sugar for Par(Negate(A), B).
type Lolli struct{ A, B Formula }

// NewAtom constructs an atomic proposition. name must be non-empty.
func NewAtom(name string) Formula { return Atom{Name: name} }

// Negate implementations. Each realizes one row of the De Morgan table in
// spec.md §3: atoms swap with their negation, ⊗ duals to ⅋, & duals to ⊕,
// 1 duals to ⊥, ⊤ duals to 0, and ! duals to ?. Lolli negates via its
// desugared form, per spec.md §4.1.

func (f Atom) Negate() Formula    { return NegAtom{Name: f.Name} }
func (f NegAtom) Negate() Formula { return Atom{Name: f.Name} }

func (f Tensor) Negate() Formula { return Par{A: f.A.Negate(), B: f.B.Negate()} }
func (f Par) Negate() Formula    { return Tensor{A: f.A.Negate(), B: f.B.Negate()} }
func (f One) Negate() Formula    { return Bottom{} }
func (f Bottom) Negate() Formula { return One{} }

func (f With) Negate() Formula { return Plus{A: f.A.Negate(), B: f.B.Negate()} }
func (f Plus) Negate() Formula { return With{A: f.A.Negate(), B: f.B.Negate()} }
func (f Top) Negate() Formula  { return Zero{} }
func (f Zero) Negate() Formula { return Top{} }

func (f OfCourse) Negate() Formula { return WhyNot{A: f.A.Negate()} }
func (f WhyNot) Negate() Formula   { return OfCourse{A: f.A.Negate()} }

// Negate on Lolli(A,B) gives Tensor(A, Negate(B)): (A ⊸ B)⊥ = (A⊥ ⅋ B)⊥ = A ⊗ B⊥.
func (f Lolli) Negate() Formula { return Tensor{A: f.A, B: f.B.Negate()} }

// Desugar implementations. Only Lolli rewrites; every other constructor
// recurses structurally and units are returned as-is.

func (f Atom) Desugar() Formula    { return f }
func (f NegAtom) Desugar() Formula { return f }

func (f Tensor) Desugar() Formula { return Tensor{A: f.A.Desugar(), B: f.B.Desugar()} }
func (f Par) Desugar() Formula    { return Par{A: f.A.Desugar(), B: f.B.Desugar()} }
func (f One) Desugar() Formula    { return f }
func (f Bottom) Desugar() Formula { return f }

func (f With) Desugar() Formula { return With{A: f.A.Desugar(), B: f.B.Desugar()} }
func (f Plus) Desugar() Formula { return Plus{A: f.A.Desugar(), B: f.B.Desugar()} }
func (f Top) Desugar() Formula  { return f }
func (f Zero) Desugar() Formula { return f }

func (f OfCourse) Desugar() Formula { return OfCourse{A: f.A.Desugar()} }
func (f WhyNot) Desugar() Formula   { return WhyNot{A: f.A.Desugar()} }

// Desugar on Lolli(A,B) rewrites to Par(Negate(A).Desugar(), B.Desugar()),
// eliminating every Lolli in the result.
func (f Lolli) Desugar() Formula {
	return Par{A: f.A.Negate().Desugar(), B: f.B.Desugar()}
}

// IsPositive implementations. The positive family is exactly
// {Atom, Tensor, One, Plus, Zero, OfCourse}; everything else is negative.

func (f Atom) IsPositive() bool    { return true }
func (f NegAtom) IsPositive() bool { return false }

func (f Tensor) IsPositive() bool { return true }
func (f Par) IsPositive() bool    { return false }
func (f One) IsPositive() bool    { return true }
func (f Bottom) IsPositive() bool { return false }

func (f With) IsPositive() bool { return false }
func (f Plus) IsPositive() bool { return true }
func (f Top) IsPositive() bool  { return false }
func (f Zero) IsPositive() bool { return true }

func (f OfCourse) IsPositive() bool { return true }
func (f WhyNot) IsPositive() bool   { return false }
func (f Lolli) IsPositive() bool    { return false }

// Equal implementations perform structural comparison, recursing into
// children via their own Equal method rather than relying on reflection.

func (f Atom) Equal(other Formula) bool {
	o, ok := other.(Atom)
	return ok && o.Name == f.Name
}

func (f NegAtom) Equal(other Formula) bool {
	o, ok := other.(NegAtom)
	return ok && o.Name == f.Name
}

func (f Tensor) Equal(other Formula) bool {
	o, ok := other.(Tensor)
	return ok && f.A.Equal(o.A) && f.B.Equal(o.B)
}

func (f Par) Equal(other Formula) bool {
	o, ok := other.(Par)
	return ok && f.A.Equal(o.A) && f.B.Equal(o.B)
}

func (f One) Equal(other Formula) bool {
	_, ok := other.(One)
	return ok
}

func (f Bottom) Equal(other Formula) bool {
	_, ok := other.(Bottom)
	return ok
}

func (f With) Equal(other Formula) bool {
	o, ok := other.(With)
	return ok && f.A.Equal(o.A) && f.B.Equal(o.B)
}

func (f Plus) Equal(other Formula) bool {
	o, ok := other.(Plus)
	return ok && f.A.Equal(o.A) && f.B.Equal(o.B)
}

func (f Top) Equal(other Formula) bool {
	_, ok := other.(Top)
	return ok
}

func (f Zero) Equal(other Formula) bool {
	_, ok := other.(Zero)
	return ok
}

func (f OfCourse) Equal(other Formula) bool {
	o, ok := other.(OfCourse)
	return ok && f.A.Equal(o.A)
}

func (f WhyNot) Equal(other Formula) bool {
	o, ok := other.(WhyNot)
	return ok && f.A.Equal(o.A)
}

func (f Lolli) Equal(other Formula) bool {
	o, ok := other.(Lolli)
	return ok && f.A.Equal(o.A) && f.B.Equal(o.B)
}

// String renders f using the Unicode connective set. It is equivalent to
// PrettyUnicode(f) and exists so that Formula satisfies fmt.Stringer.
func (f Atom) String() string    { return PrettyUnicode(f) }
func (f NegAtom) String() string { return PrettyUnicode(f) }
func (f Tensor) String() string  { return PrettyUnicode(f) }
func (f Par) String() string     { return PrettyUnicode(f) }
func (f One) String() string     { return PrettyUnicode(f) }
func (f Bottom) String() string  { return PrettyUnicode(f) }
func (f With) String() string    { return PrettyUnicode(f) }
func (f Plus) String() string    { return PrettyUnicode(f) }
func (f Top) String() string     { return PrettyUnicode(f) }
func (f Zero) String() string    { return PrettyUnicode(f) }
func (f OfCourse) String() string { return PrettyUnicode(f) }
func (f WhyNot) String() string   { return PrettyUnicode(f) }
func (f Lolli) String() string    { return PrettyUnicode(f) }

var _ fmt.Stringer = Atom{}
