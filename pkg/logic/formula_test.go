package logic

import (
	"fmt"
	"testing"
)

func TestNegationInvolution(t *testing.T) {
	formulas := []Formula{
		atom("A"),
		negAtom("A"),
		Tensor{A: atom("A"), B: atom("B")},
		Par{A: atom("A"), B: atom("B")},
		One{}, Bottom{},
		With{A: atom("A"), B: atom("B")},
		Plus{A: atom("A"), B: atom("B")},
		Top{}, Zero{},
		OfCourse{A: atom("A")},
		WhyNot{A: atom("A")},
	}
	for _, f := range formulas {
		if got := f.Negate().Negate(); !got.Equal(f) {
			t.Errorf("negate(negate(%s)) = %s, want %s", f, got, f)
		}
	}
}

func TestDeMorganTable(t *testing.T) {
	cases := []struct {
		f    Formula
		want Formula
	}{
		{atom("A"), negAtom("A")},
		{One{}, Bottom{}},
		{Bottom{}, One{}},
		{Top{}, Zero{}},
		{Zero{}, Top{}},
		{Tensor{A: atom("A"), B: atom("B")}, Par{A: negAtom("A"), B: negAtom("B")}},
		{Par{A: atom("A"), B: atom("B")}, Tensor{A: negAtom("A"), B: negAtom("B")}},
		{With{A: atom("A"), B: atom("B")}, Plus{A: negAtom("A"), B: negAtom("B")}},
		{Plus{A: atom("A"), B: atom("B")}, With{A: negAtom("A"), B: negAtom("B")}},
		{OfCourse{A: atom("A")}, WhyNot{A: negAtom("A")}},
		{WhyNot{A: atom("A")}, OfCourse{A: negAtom("A")}},
	}
	for _, c := range cases {
		if got := c.f.Negate(); !got.Equal(c.want) {
			t.Errorf("negate(%s) = %s, want %s", c.f, got, c.want)
		}
	}
}

func TestPolarity(t *testing.T) {
	positive := []Formula{atom("A"), Tensor{A: atom("A"), B: atom("B")}, One{}, Plus{A: atom("A"), B: atom("B")}, Zero{}, OfCourse{A: atom("A")}}
	negative := []Formula{negAtom("A"), Par{A: atom("A"), B: atom("B")}, Bottom{}, With{A: atom("A"), B: atom("B")}, Top{}, WhyNot{A: atom("A")}}

	for _, f := range positive {
		if !f.IsPositive() {
			t.Errorf("%s should be positive", f)
		}
	}
	for _, f := range negative {
		if f.IsPositive() {
			t.Errorf("%s should be negative", f)
		}
	}
}

func TestDesugarEliminatesLolli(t *testing.T) {
	f := Lolli{A: atom("A"), B: Lolli{A: atom("B"), B: atom("C")}}
	d := f.Desugar()
	var containsLolli func(Formula) bool
	containsLolli = func(f Formula) bool {
		switch v := f.(type) {
		case Lolli:
			return true
		case Tensor:
			return containsLolli(v.A) || containsLolli(v.B)
		case Par:
			return containsLolli(v.A) || containsLolli(v.B)
		case With:
			return containsLolli(v.A) || containsLolli(v.B)
		case Plus:
			return containsLolli(v.A) || containsLolli(v.B)
		case OfCourse:
			return containsLolli(v.A)
		case WhyNot:
			return containsLolli(v.A)
		default:
			return false
		}
	}
	if containsLolli(d) {
		t.Errorf("desugar(%s) = %s still contains a Lolli", f, d)
	}
}

func ExamplePrettyUnicode() {
	f := Tensor{A: atom("A"), B: OfCourse{A: atom("B")}}
	fmt.Println(PrettyUnicode(f))
	// Output: (A ⊗ !B)
}
