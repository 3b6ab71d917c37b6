package logic

import "testing"

func atom(name string) Formula    { return NewAtom(name) }
func negAtom(name string) Formula { return NewAtom(name).Negate() }

func TestProveIdentity(t *testing.T) {
	// A ⊢ A
	p := NewProver(100)
	seq := NewTwoSidedSequent([]Formula{atom("A")}, []Formula{atom("A")})
	proof, ok := p.ProveTwoSided(seq)
	if !ok {
		t.Fatalf("A |- A should be provable")
	}
	if proof.RuleTag != Axiom {
		t.Fatalf("expected Axiom, got %s", proof.RuleTag)
	}
	if proof.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", proof.Depth())
	}
}

func TestProveTensorIntro(t *testing.T) {
	// A, B ⊢ A ⊗ B
	p := NewProver(100)
	seq := NewTwoSidedSequent(
		[]Formula{atom("A"), atom("B")},
		[]Formula{Tensor{A: atom("A"), B: atom("B")}},
	)
	proof, ok := p.ProveTwoSided(seq)
	if !ok {
		t.Fatalf("A, B |- A * B should be provable")
	}
	if proof.RuleTag != TensorIntro {
		t.Fatalf("expected TensorIntro, got %s", proof.RuleTag)
	}
}

func TestProveTensorCommutativity(t *testing.T) {
	// A ⊗ B ⊢ B ⊗ A
	p := NewProver(100)
	seq := NewTwoSidedSequent(
		[]Formula{Tensor{A: atom("A"), B: atom("B")}},
		[]Formula{Tensor{A: atom("B"), B: atom("A")}},
	)
	if _, ok := p.ProveTwoSided(seq); !ok {
		t.Fatalf("A * B |- B * A should be provable")
	}
}

func TestProveNoContractionWithoutBang(t *testing.T) {
	// A ⊢ A ⊗ A should NOT be provable
	p := NewProver(100)
	seq := NewTwoSidedSequent(
		[]Formula{atom("A")},
		[]Formula{Tensor{A: atom("A"), B: atom("A")}},
	)
	if _, ok := p.ProveTwoSided(seq); ok {
		t.Fatalf("A |- A * A should NOT be provable without !")
	}
}

func TestProveNoWeakeningWithoutQuestionMark(t *testing.T) {
	// A, B ⊢ A should NOT be provable
	p := NewProver(100)
	seq := NewTwoSidedSequent([]Formula{atom("A"), atom("B")}, []Formula{atom("A")})
	if _, ok := p.ProveTwoSided(seq); ok {
		t.Fatalf("A, B |- A should NOT be provable")
	}
}

func TestProveContractionViaBang(t *testing.T) {
	// !A ⊢ A ⊗ A (contraction then two derelictions)
	p := NewProver(100)
	seq := NewTwoSidedSequent(
		[]Formula{OfCourse{A: atom("A")}},
		[]Formula{Tensor{A: atom("A"), B: atom("A")}},
	)
	proof, ok := p.ProveTwoSided(seq)
	if !ok {
		t.Fatalf("!A |- A * A should be provable via contraction")
	}
	if !proof.IsCutFree() {
		t.Fatalf("search-produced proofs must be cut-free")
	}
}

func TestProveLolli(t *testing.T) {
	// ⊢ A ⊸ A
	p := NewProver(100)
	seq := NewTwoSidedSequent(nil, []Formula{Lolli{A: atom("A"), B: atom("A")}})
	if _, ok := p.ProveTwoSided(seq); !ok {
		t.Fatalf("|- A -o A should be provable")
	}
}

func TestProveOne(t *testing.T) {
	p := NewProver(100)
	seq := NewSequent([]Formula{One{}})
	proof, ok := p.Prove(seq)
	if !ok || proof.RuleTag != OneIntro {
		t.Fatalf("|- 1 should close with OneIntro")
	}
}

func TestProveTop(t *testing.T) {
	p := NewProver(100)
	seq := NewSequent([]Formula{atom("A"), atom("B"), Top{}})
	proof, ok := p.Prove(seq)
	if !ok || proof.RuleTag != TopIntro {
		t.Fatalf("a sequent containing Top should always close")
	}
}

func TestProveEmptySequentFails(t *testing.T) {
	p := NewProver(100)
	if _, ok := p.Prove(Sequent{}); ok {
		t.Fatalf("the empty sequent must not be provable")
	}
}

func TestProverIsDeterministic(t *testing.T) {
	seq := NewTwoSidedSequent(
		[]Formula{OfCourse{A: atom("A")}},
		[]Formula{Tensor{A: atom("A"), B: Tensor{A: atom("A"), B: atom("A")}}},
	)

	p1 := NewProver(100)
	proof1, ok1 := p1.ProveTwoSided(seq)
	p2 := NewProver(100)
	proof2, ok2 := p2.ProveTwoSided(seq)

	if ok1 != ok2 {
		t.Fatalf("determinism: provability disagreed across fresh provers")
	}
	if ok1 && proof1.Depth() != proof2.Depth() {
		t.Fatalf("determinism: proof depth differed across fresh provers (%d vs %d)", proof1.Depth(), proof2.Depth())
	}
}

func TestAllSplitsCount(t *testing.T) {
	splits := allSplits([]Formula{atom("A"), atom("B")})
	if len(splits) != 4 {
		t.Fatalf("expected 2^2 = 4 splits, got %d", len(splits))
	}
}

func TestProverStatsAccumulate(t *testing.T) {
	p := NewProver(100)
	seq := NewTwoSidedSequent([]Formula{atom("A")}, []Formula{atom("A")})
	if _, ok := p.ProveTwoSided(seq); !ok {
		t.Fatalf("A |- A should be provable")
	}
	stats := p.Stats()
	if stats.SequentsExplored == 0 {
		t.Fatalf("expected at least one sequent explored")
	}
}
