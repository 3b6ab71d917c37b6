package logic

import "fmt"

// String implementations for Term. The rendering matches the original
// Rust workbench's Term::pretty (lolli-core/src/term.rs), translated to
// Go string formatting.

func (t Var) String() string     { return t.Name }
func (t UnitTerm) String() string { return "()" }
func (t Trivial) String() string  { return "⟨⟩" }

func (t Pair) String() string {
	return fmt.Sprintf("(%s, %s)", t.Fst.String(), t.Snd.String())
}

func (t LetPairTerm) String() string {
	return fmt.Sprintf("let (%s, %s) = %s in %s", t.X, t.Y, t.Pair.String(), t.Body.String())
}

func (t Abs) String() string {
	return fmt.Sprintf("λ%s. %s", t.X, t.Body.String())
}

func (t App) String() string {
	return fmt.Sprintf("(%s %s)", t.Fn.String(), t.Arg.String())
}

func (t Inl) String() string { return "inl " + t.Inner.String() }
func (t Inr) String() string { return "inr " + t.Inner.String() }

func (t Case) String() string {
	return fmt.Sprintf("case %s of { inl %s => %s | inr %s => %s }",
		t.Scrutinee.String(), t.LeftVar, t.Left.String(), t.RightVar, t.Right.String())
}

func (t Fst) String() string   { return "fst " + t.Inner.String() }
func (t Snd) String() string   { return "snd " + t.Inner.String() }
func (t Abort) String() string { return "absurd " + t.Inner.String() }

func (t Promote) String() string  { return "!" + t.Inner.String() }
func (t Derelict) String() string { return "derelict " + t.Inner.String() }

func (t Discard) String() string {
	return fmt.Sprintf("discard in %s", t.Body.String())
}

func (t Copy) String() string {
	return fmt.Sprintf("copy %s as (%s, %s) in %s", t.Src.String(), t.X, t.Y, t.Body.String())
}
