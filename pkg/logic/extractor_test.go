package logic

import "testing"

func TestExtractAxiom(t *testing.T) {
	// A |- A: a single Axiom leaf extracts to a bare variable.
	seq := NewTwoSidedSequent([]Formula{atom("A")}, []Formula{atom("A")})
	proof, ok := NewProver(100).ProveTwoSided(seq)
	if !ok {
		t.Fatalf("A |- A should be provable")
	}

	term := Extract(proof)
	if _, isVar := term.(Var); !isVar {
		t.Fatalf("expected a bare Var, got %T (%s)", term, term)
	}
}

func TestExtractTensorProducesPair(t *testing.T) {
	// A, B |- A * B: extracts to (arg, arg).
	seq := NewTwoSidedSequent([]Formula{atom("A"), atom("B")}, []Formula{Tensor{A: atom("A"), B: atom("B")}})
	proof, ok := NewProver(100).ProveTwoSided(seq)
	if !ok {
		t.Fatalf("A, B |- A * B should be provable")
	}

	term := Extract(proof)
	pair, isPair := term.(Pair)
	if !isPair {
		t.Fatalf("expected a Pair, got %T (%s)", term, term)
	}
	if _, ok := pair.Fst.(Var); !ok {
		t.Errorf("pair.Fst should be a Var, got %T", pair.Fst)
	}
	if _, ok := pair.Snd.(Var); !ok {
		t.Errorf("pair.Snd should be a Var, got %T", pair.Snd)
	}
}

func TestExtractContractionProducesCopy(t *testing.T) {
	// !A |- A * A: extraction should contain a Copy somewhere.
	seq := NewTwoSidedSequent([]Formula{OfCourse{A: atom("A")}}, []Formula{Tensor{A: atom("A"), B: atom("A")}})
	proof, ok := NewProver(100).ProveTwoSided(seq)
	if !ok {
		t.Fatalf("!A |- A * A should be provable")
	}

	term := Extract(proof)
	var containsCopy func(Term) bool
	containsCopy = func(t Term) bool {
		switch v := t.(type) {
		case Copy:
			return true
		case Pair:
			return containsCopy(v.Fst) || containsCopy(v.Snd)
		case Derelict:
			return containsCopy(v.Inner)
		default:
			return false
		}
	}
	if !containsCopy(term) {
		t.Fatalf("expected extracted term to contain a Copy, got %s", term)
	}
}

func TestExtractLolliProducesAbstraction(t *testing.T) {
	// |- A -o A: after desugaring to Par and splitting, ParIntro passes
	// the premise term through, so Extract yields the Axiom leaf's bare
	// variable; no λ-abstraction is produced here or in codegen.
	seq := NewTwoSidedSequent(nil, []Formula{Lolli{A: atom("A"), B: atom("A")}})
	proof, ok := NewProver(100).ProveTwoSided(seq)
	if !ok {
		t.Fatalf("|- A -o A should be provable")
	}
	term := Extract(proof)
	if term == nil {
		t.Fatalf("expected a non-nil term")
	}
}

func TestNormalizeBetaReducesApp(t *testing.T) {
	term := App{Fn: Abs{X: "x", Body: Var{Name: "x"}}, Arg: Var{Name: "y"}}
	got := Normalize(term)
	if v, ok := got.(Var); !ok || v.Name != "y" {
		t.Fatalf("expected Var(y), got %s", got)
	}
}

func TestNormalizeBetaReducesLetPair(t *testing.T) {
	term := LetPairTerm{
		X: "a", Y: "b",
		Pair: Pair{Fst: Var{Name: "p"}, Snd: Var{Name: "q"}},
		Body: Pair{Fst: Var{Name: "b"}, Snd: Var{Name: "a"}},
	}
	got := Normalize(term)
	pair, ok := got.(Pair)
	if !ok {
		t.Fatalf("expected a Pair, got %T", got)
	}
	if pair.Fst.(Var).Name != "q" || pair.Snd.(Var).Name != "p" {
		t.Fatalf("expected (q, p), got %s", got)
	}
}

func TestNormalizeBetaReducesCase(t *testing.T) {
	term := Case{
		Scrutinee: Inl{Inner: Var{Name: "v"}},
		LeftVar:   "x", Left: Var{Name: "x"},
		RightVar: "y", Right: Var{Name: "y"},
	}
	got := Normalize(term)
	if v, ok := got.(Var); !ok || v.Name != "v" {
		t.Fatalf("expected Var(v), got %s", got)
	}
}
