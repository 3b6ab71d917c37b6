package logic

// Normalize β-reduces t to normal form (spec.md §4.5's optional
// extraction post-pass): App(Abs(x,body), arg) reduces to
// body[x:=arg]; LetPairTerm(x,y,Pair(a,b),body) reduces to
// body[x:=a][y:=b]; Case(Inl(a),x,left,_,_) reduces to left[x:=a] (and
// symmetrically for Inr). The linear fragment is strongly normalizing,
// so repeatedly reducing children before checking the root terminates.
func Normalize(t Term) Term {
	switch n := t.(type) {
	case Var, UnitTerm, Trivial:
		return t

	case Pair:
		return Pair{Fst: Normalize(n.Fst), Snd: Normalize(n.Snd)}

	case LetPairTerm:
		pair := Normalize(n.Pair)
		body := Normalize(n.Body)
		if p, ok := pair.(Pair); ok {
			return Normalize(body.Substitute(n.X, p.Fst).Substitute(n.Y, p.Snd))
		}
		return LetPairTerm{X: n.X, Y: n.Y, Pair: pair, Body: body}

	case Abs:
		return Abs{X: n.X, Body: Normalize(n.Body)}

	case App:
		fn := Normalize(n.Fn)
		arg := Normalize(n.Arg)
		if abs, ok := fn.(Abs); ok {
			return Normalize(abs.Body.Substitute(abs.X, arg))
		}
		return App{Fn: fn, Arg: arg}

	case Inl:
		return Inl{Inner: Normalize(n.Inner)}

	case Inr:
		return Inr{Inner: Normalize(n.Inner)}

	case Case:
		scrutinee := Normalize(n.Scrutinee)
		left := Normalize(n.Left)
		right := Normalize(n.Right)
		if inl, ok := scrutinee.(Inl); ok {
			return Normalize(left.Substitute(n.LeftVar, inl.Inner))
		}
		if inr, ok := scrutinee.(Inr); ok {
			return Normalize(right.Substitute(n.RightVar, inr.Inner))
		}
		return Case{Scrutinee: scrutinee, LeftVar: n.LeftVar, Left: left, RightVar: n.RightVar, Right: right}

	case Fst:
		inner := Normalize(n.Inner)
		if p, ok := inner.(Pair); ok {
			return p.Fst
		}
		return Fst{Inner: inner}

	case Snd:
		inner := Normalize(n.Inner)
		if p, ok := inner.(Pair); ok {
			return p.Snd
		}
		return Snd{Inner: inner}

	case Abort:
		return Abort{Inner: Normalize(n.Inner)}

	case Promote:
		return Promote{Inner: Normalize(n.Inner)}

	case Derelict:
		inner := Normalize(n.Inner)
		if p, ok := inner.(Promote); ok {
			return p.Inner
		}
		return Derelict{Inner: inner}

	case Discard:
		return Discard{Discarded: Normalize(n.Discarded), Body: Normalize(n.Body)}

	case Copy:
		return Copy{Src: Normalize(n.Src), X: n.X, Y: n.Y, Body: Normalize(n.Body)}

	default:
		return t
	}
}
