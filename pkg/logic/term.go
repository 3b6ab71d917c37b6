package logic

// Term is a linear λ-term extracted from a proof via the Curry-Howard
// correspondence (spec.md §3, §4.5). Like Formula, Term is a family of
// concrete value types rather than one tagged struct, mirroring the
// teacher's Term interface in core.go.
type Term interface {
	// FreeVars returns the set of variable names occurring free in the
	// term.
	FreeVars() map[string]struct{}

	// Substitute returns a copy of the term with every free occurrence of
	// v replaced by replacement, skipping any binder that shadows v
	// (capture-avoiding by construction: fresh names are chosen by the
	// extractor, never reused across a scope, so no renaming is needed
	// here).
	Substitute(v string, replacement Term) Term

	// String pretty-prints the term.
	String() string
}

// Var is a variable reference.
type Var struct{ Name string }

// UnitTerm is the multiplicative unit value (), the content of One.
type UnitTerm struct{}

// Trivial is the introduction form for Top; it carries no data.
type Trivial struct{}

// Pair is the content of a Tensor: (a, b).
type Pair struct{ Fst, Snd Term }

// LetPairTerm destructures a tensor-typed value: let (X, Y) = Pair in Body.
type LetPairTerm struct {
	X, Y string
	Pair Term
	Body Term
}

// Abs is a linear abstraction λx. Body.
type Abs struct {
	X    string
	Body Term
}

// App is application: F A.
type App struct{ Fn, Arg Term }

// Inl is the left injection of a Plus value.
type Inl struct{ Inner Term }

// Inr is the right injection of a Plus value.
type Inr struct{ Inner Term }

// Case is additive case analysis over a Plus-typed scrutinee.
type Case struct {
	Scrutinee   Term
	LeftVar     string
	Left        Term
	RightVar    string
	Right       Term
}

// Fst projects the left component of a With value.
type Fst struct{ Inner Term }

// Snd projects the right component of a With value.
type Snd struct{ Inner Term }

// Abort is the eliminator for Zero: absurd e.
type Abort struct{ Inner Term }

// Promote marks a term as copyable — the introduction form for !A.
type Promote struct{ Inner Term }

// Derelict uses a !-value linearly, as its underlying A.
type Derelict struct{ Inner Term }

// Discard drops a !-bound variable explicitly (the computational content
// of the Weakening rule).
type Discard struct {
	Discarded Term
	Body      Term
}

// Copy splits a !-bound variable into two fresh variables usable
// independently in Body (the computational content of the Contraction
// rule).
type Copy struct {
	Src  Term
	X, Y string
	Body Term
}

func emptyVarSet() map[string]struct{} { return map[string]struct{}{} }

func unionVarSets(sets ...map[string]struct{}) map[string]struct{} {
	out := emptyVarSet()
	for _, s := range sets {
		for v := range s {
			out[v] = struct{}{}
		}
	}
	return out
}

func withoutVars(set map[string]struct{}, names ...string) map[string]struct{} {
	out := emptyVarSet()
	for v := range set {
		out[v] = struct{}{}
	}
	for _, n := range names {
		delete(out, n)
	}
	return out
}

// FreeVars implementations, one per constructor, matching term.rs's
// free_vars recursion exactly: binders (Abs, LetPairTerm, Case, Copy)
// remove their bound names from the union of their children's free
// variables.

func (t Var) FreeVars() map[string]struct{} {
	return map[string]struct{}{t.Name: {}}
}

func (t UnitTerm) FreeVars() map[string]struct{} { return emptyVarSet() }
func (t Trivial) FreeVars() map[string]struct{}  { return emptyVarSet() }

func (t Pair) FreeVars() map[string]struct{} {
	return unionVarSets(t.Fst.FreeVars(), t.Snd.FreeVars())
}

func (t LetPairTerm) FreeVars() map[string]struct{} {
	body := withoutVars(t.Body.FreeVars(), t.X, t.Y)
	return unionVarSets(t.Pair.FreeVars(), body)
}

func (t Abs) FreeVars() map[string]struct{} {
	return withoutVars(t.Body.FreeVars(), t.X)
}

func (t App) FreeVars() map[string]struct{} {
	return unionVarSets(t.Fn.FreeVars(), t.Arg.FreeVars())
}

func (t Inl) FreeVars() map[string]struct{} { return t.Inner.FreeVars() }
func (t Inr) FreeVars() map[string]struct{} { return t.Inner.FreeVars() }
func (t Fst) FreeVars() map[string]struct{} { return t.Inner.FreeVars() }
func (t Snd) FreeVars() map[string]struct{} { return t.Inner.FreeVars() }
func (t Abort) FreeVars() map[string]struct{} { return t.Inner.FreeVars() }

func (t Case) FreeVars() map[string]struct{} {
	left := withoutVars(t.Left.FreeVars(), t.LeftVar)
	right := withoutVars(t.Right.FreeVars(), t.RightVar)
	return unionVarSets(t.Scrutinee.FreeVars(), left, right)
}

func (t Promote) FreeVars() map[string]struct{}  { return t.Inner.FreeVars() }
func (t Derelict) FreeVars() map[string]struct{} { return t.Inner.FreeVars() }

func (t Discard) FreeVars() map[string]struct{} {
	return unionVarSets(t.Discarded.FreeVars(), t.Body.FreeVars())
}

func (t Copy) FreeVars() map[string]struct{} {
	body := withoutVars(t.Body.FreeVars(), t.X, t.Y)
	return unionVarSets(t.Src.FreeVars(), body)
}

// Substitute implementations. A binder that shadows v (x == v) leaves its
// body untouched, matching term.rs's substitute.

func (t Var) Substitute(v string, r Term) Term {
	if t.Name == v {
		return r
	}
	return t
}

func (t UnitTerm) Substitute(string, Term) Term { return t }
func (t Trivial) Substitute(string, Term) Term  { return t }

func (t Pair) Substitute(v string, r Term) Term {
	return Pair{Fst: t.Fst.Substitute(v, r), Snd: t.Snd.Substitute(v, r)}
}

func (t LetPairTerm) Substitute(v string, r Term) Term {
	newPair := t.Pair.Substitute(v, r)
	body := t.Body
	if t.X != v && t.Y != v {
		body = t.Body.Substitute(v, r)
	}
	return LetPairTerm{X: t.X, Y: t.Y, Pair: newPair, Body: body}
}

func (t Abs) Substitute(v string, r Term) Term {
	if t.X == v {
		return t
	}
	return Abs{X: t.X, Body: t.Body.Substitute(v, r)}
}

func (t App) Substitute(v string, r Term) Term {
	return App{Fn: t.Fn.Substitute(v, r), Arg: t.Arg.Substitute(v, r)}
}

func (t Inl) Substitute(v string, r Term) Term { return Inl{Inner: t.Inner.Substitute(v, r)} }
func (t Inr) Substitute(v string, r Term) Term { return Inr{Inner: t.Inner.Substitute(v, r)} }
func (t Fst) Substitute(v string, r Term) Term { return Fst{Inner: t.Inner.Substitute(v, r)} }
func (t Snd) Substitute(v string, r Term) Term { return Snd{Inner: t.Inner.Substitute(v, r)} }
func (t Abort) Substitute(v string, r Term) Term {
	return Abort{Inner: t.Inner.Substitute(v, r)}
}

func (t Case) Substitute(v string, r Term) Term {
	left, right := t.Left, t.Right
	if t.LeftVar != v {
		left = t.Left.Substitute(v, r)
	}
	if t.RightVar != v {
		right = t.Right.Substitute(v, r)
	}
	return Case{
		Scrutinee: t.Scrutinee.Substitute(v, r),
		LeftVar:   t.LeftVar, Left: left,
		RightVar: t.RightVar, Right: right,
	}
}

func (t Promote) Substitute(v string, r Term) Term {
	return Promote{Inner: t.Inner.Substitute(v, r)}
}

func (t Derelict) Substitute(v string, r Term) Term {
	return Derelict{Inner: t.Inner.Substitute(v, r)}
}

func (t Discard) Substitute(v string, r Term) Term {
	return Discard{Discarded: t.Discarded.Substitute(v, r), Body: t.Body.Substitute(v, r)}
}

func (t Copy) Substitute(v string, r Term) Term {
	body := t.Body
	if t.X != v && t.Y != v {
		body = t.Body.Substitute(v, r)
	}
	return Copy{Src: t.Src.Substitute(v, r), X: t.X, Y: t.Y, Body: body}
}
