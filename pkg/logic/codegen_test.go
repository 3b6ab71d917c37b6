package logic

import (
	"strings"
	"testing"
)

func TestTypeGeneratorTable(t *testing.T) {
	g := NewTypeGenerator()
	cases := []struct {
		f    Formula
		want string
	}{
		{atom("A"), "A"},
		{negAtom("A"), "ADual"},
		{Tensor{A: atom("A"), B: atom("B")}, "(A, B)"},
		{Par{A: atom("A"), B: atom("B")}, "Par<A, B>"},
		{Lolli{A: atom("A"), B: atom("B")}, "impl FnOnce(A) -> B"},
		{With{A: atom("A"), B: atom("B")}, "With<A, B>"},
		{Plus{A: atom("A"), B: atom("B")}, "Either<A, B>"},
		{OfCourse{A: atom("A")}, "Rc<A>"},
		{WhyNot{A: atom("A")}, "Demand<A>"},
		{One{}, "()"},
		{Bottom{}, "!"},
		{Top{}, "Top"},
		{Zero{}, "Void"},
	}
	for _, c := range cases {
		if got := g.Generate(c.f); got != c.want {
			t.Errorf("Generate(%s) = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestTypeGeneratorReturn(t *testing.T) {
	g := NewTypeGenerator()
	if got := g.GenerateReturn(nil); got != "()" {
		t.Errorf("GenerateReturn(nil) = %q, want ()", got)
	}
	if got := g.GenerateReturn([]Formula{atom("A")}); got != "A" {
		t.Errorf("GenerateReturn([A]) = %q, want A", got)
	}
	if got := g.GenerateReturn([]Formula{atom("A"), atom("B")}); got != "(A, B)" {
		t.Errorf("GenerateReturn([A,B]) = %q, want (A, B)", got)
	}
}

func TestTermToCodePair(t *testing.T) {
	c := NewCodegen()
	term := Pair{Fst: Var{Name: "arg0"}, Snd: Var{Name: "arg1"}}
	if got := c.TermToCode(term); got != "(arg0, arg1)" {
		t.Errorf("TermToCode(pair) = %q", got)
	}
}

func TestTermToCodeAbsApp(t *testing.T) {
	c := NewCodegen()
	term := App{Fn: Abs{X: "x", Body: Var{Name: "x"}}, Arg: Var{Name: "arg0"}}
	got := c.TermToCode(term)
	if got != "(|x| x)(arg0)" {
		t.Errorf("TermToCode(app) = %q", got)
	}
}

func TestTermToCodeCopyAndDerelict(t *testing.T) {
	c := NewCodegen()
	term := Copy{
		X: "x0", Y: "x1", Src: Var{Name: "arg0"},
		Body: Pair{Fst: Derelict{Inner: Var{Name: "x0"}}, Snd: Derelict{Inner: Var{Name: "x1"}}},
	}
	got := c.TermToCode(term)
	if !strings.Contains(got, "Rc::clone(&arg0)") {
		t.Errorf("TermToCode(copy) missing Rc::clone: %q", got)
	}
	if !strings.Contains(got, "Rc::try_unwrap") {
		t.Errorf("TermToCode(copy) missing Rc::try_unwrap: %q", got)
	}
}

func TestTermToCodeCaseEither(t *testing.T) {
	c := NewCodegen()
	term := Case{
		Scrutinee: Var{Name: "arg0"},
		LeftVar:   "x", Left: Inl{Inner: Var{Name: "x"}},
		RightVar: "y", Right: Inr{Inner: Var{Name: "y"}},
	}
	got := c.TermToCode(term)
	want := "match arg0 { Either::Left(x) => Either::Left(x), Either::Right(y) => Either::Right(y) }"
	if got != want {
		t.Errorf("TermToCode(case) = %q, want %q", got, want)
	}
}

func TestGenerateFunctionSignature(t *testing.T) {
	c := NewCodegen()
	seq := NewTwoSidedSequent(
		[]Formula{atom("A"), atom("B")},
		[]Formula{Tensor{A: atom("A"), B: atom("B")}},
	)
	term := Pair{Fst: Var{Name: "arg0"}, Snd: Var{Name: "arg1"}}
	got := c.GenerateFunction("identity_pair", seq, term)
	if !strings.HasPrefix(got, "fn identity_pair(arg0: A, arg1: B) -> (A, B) {") {
		t.Errorf("GenerateFunction signature wrong:\n%s", got)
	}
	if !strings.Contains(got, "(arg0, arg1)") {
		t.Errorf("GenerateFunction body wrong:\n%s", got)
	}
}

func TestGenerateModuleIncludesPrelude(t *testing.T) {
	c := NewCodegen()
	seq := NewTwoSidedSequent([]Formula{atom("A")}, []Formula{atom("A")})
	got := c.GenerateModule("identity", seq, Var{Name: "arg0"})
	if !strings.Contains(got, "pub enum Either") {
		t.Errorf("GenerateModule should embed the prelude")
	}
	if !strings.Contains(got, "fn identity(arg0: A) -> A {") {
		t.Errorf("GenerateModule should embed the function:\n%s", got)
	}
}
