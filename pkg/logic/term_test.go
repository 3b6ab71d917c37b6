package logic

import "testing"

func hasVar(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}

func TestFreeVarsAbsBindsParameter(t *testing.T) {
	term := Abs{X: "x", Body: App{Fn: Var{Name: "x"}, Arg: Var{Name: "y"}}}
	free := term.FreeVars()
	if hasVar(free, "x") {
		t.Errorf("x should be bound, not free: %v", free)
	}
	if !hasVar(free, "y") {
		t.Errorf("y should be free: %v", free)
	}
}

func TestFreeVarsLetPairBindsBoth(t *testing.T) {
	term := LetPairTerm{
		X: "a", Y: "b",
		Pair: Var{Name: "p"},
		Body: App{Fn: Var{Name: "a"}, Arg: Var{Name: "b"}},
	}
	free := term.FreeVars()
	if hasVar(free, "a") || hasVar(free, "b") {
		t.Errorf("a and b should be bound by the let-pair: %v", free)
	}
	if !hasVar(free, "p") {
		t.Errorf("p should be free: %v", free)
	}
}

func TestFreeVarsCaseBindsEachArmSeparately(t *testing.T) {
	term := Case{
		Scrutinee: Var{Name: "s"},
		LeftVar:   "x", Left: Var{Name: "x"},
		RightVar: "y", Right: App{Fn: Var{Name: "y"}, Arg: Var{Name: "z"}},
	}
	free := term.FreeVars()
	if hasVar(free, "x") || hasVar(free, "y") {
		t.Errorf("arm variables must not leak: %v", free)
	}
	if !hasVar(free, "s") || !hasVar(free, "z") {
		t.Errorf("expected s and z free: %v", free)
	}
}

func TestFreeVarsCopyBindsBothFreshNames(t *testing.T) {
	term := Copy{
		Src: Var{Name: "src"}, X: "x0", Y: "x1",
		Body: App{Fn: Var{Name: "x0"}, Arg: Var{Name: "x1"}},
	}
	free := term.FreeVars()
	if hasVar(free, "x0") || hasVar(free, "x1") {
		t.Errorf("x0 and x1 should be bound by Copy: %v", free)
	}
	if !hasVar(free, "src") {
		t.Errorf("src should be free: %v", free)
	}
}

func TestSubstituteReplacesFreeOccurrence(t *testing.T) {
	term := App{Fn: Var{Name: "f"}, Arg: Var{Name: "x"}}
	got := term.Substitute("x", Var{Name: "y"})
	app := got.(App)
	if app.Arg.(Var).Name != "y" {
		t.Errorf("expected x replaced by y, got %s", got)
	}
	if app.Fn.(Var).Name != "f" {
		t.Errorf("f should be untouched, got %s", got)
	}
}

func TestSubstituteSkipsShadowedBinder(t *testing.T) {
	// \x. x [x := y] should leave the body untouched: x is bound.
	term := Abs{X: "x", Body: Var{Name: "x"}}
	got := term.Substitute("x", Var{Name: "y"}).(Abs)
	if got.Body.(Var).Name != "x" {
		t.Errorf("shadowed binder must not be substituted, got %s", got.Body)
	}
}

func TestSubstituteIntoCasePreservesUnshadowedArm(t *testing.T) {
	term := Case{
		Scrutinee: Var{Name: "v"},
		LeftVar:   "x", Left: Var{Name: "z"},
		RightVar: "y", Right: Var{Name: "z"},
	}
	got := term.Substitute("z", Var{Name: "w"}).(Case)
	if got.Left.(Var).Name != "w" || got.Right.(Var).Name != "w" {
		t.Errorf("z should be substituted in both arms, got %s / %s", got.Left, got.Right)
	}
}
