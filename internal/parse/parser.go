package parse

import (
	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// parser is a recursive-descent parser over the token stream lexer
// produces, one token of lookahead, following the teacher's
// scanner/parser split (parse.go's parser{in, tok, tokval}) even though
// this grammar is small enough to need only a handful of productions.
type parser struct {
	lex *lexer
	tok token
	src string
}

func newParser(src string) (*parser, *ParseError) {
	p := &parser{lex: newLexer(src), src: src}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() *ParseError {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) (token, *ParseError) {
	if p.tok.kind != kind {
		return token{}, NewParseErrorAt(p.src, p.tok.pos, UnexpectedToken,
			"expected "+kind.String()+", found "+p.tok.kind.String())
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

// ParseFormula parses a single formula from src (spec.md §6's
// parse_formula). All binary connectives associate to the right;
// precedence, tightest to loosest, is unary (!, ?), ⊗, ⊕, &, ⅋, ⊸.
func ParseFormula(src string) (logic.Formula, *ParseError) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	f, err := p.parseLolli()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, NewParseErrorAt(p.src, p.tok.pos, UnexpectedToken,
			"unexpected trailing input after formula")
	}
	return f, nil
}

func (p *parser) parseLolli() (logic.Formula, *ParseError) {
	left, err := p.parsePar()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokLolli {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseLolli()
	if err != nil {
		return nil, err
	}
	return logic.Lolli{A: left, B: right}, nil
}

func (p *parser) parsePar() (logic.Formula, *ParseError) {
	left, err := p.parseWith()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokPar {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parsePar()
	if err != nil {
		return nil, err
	}
	return logic.Par{A: left, B: right}, nil
}

func (p *parser) parseWith() (logic.Formula, *ParseError) {
	left, err := p.parsePlus()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokWith {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseWith()
	if err != nil {
		return nil, err
	}
	return logic.With{A: left, B: right}, nil
}

func (p *parser) parsePlus() (logic.Formula, *ParseError) {
	left, err := p.parseTensor()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokPlus {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parsePlus()
	if err != nil {
		return nil, err
	}
	return logic.Plus{A: left, B: right}, nil
}

func (p *parser) parseTensor() (logic.Formula, *ParseError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokTensor {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseTensor()
	if err != nil {
		return nil, err
	}
	return logic.Tensor{A: left, B: right}, nil
}

func (p *parser) parseUnary() (logic.Formula, *ParseError) {
	switch p.tok.kind {
	case tokBang:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.OfCourse{A: inner}, nil
	case tokQuestion:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.WhyNot{A: inner}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (logic.Formula, *ParseError) {
	switch p.tok.kind {
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := p.parseLolli()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return f, nil

	case tokNumber:
		text := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if text == "1" {
			return logic.One{}, nil
		}
		return logic.Zero{}, nil

	case tokBot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return logic.Bottom{}, nil

	case tokTop:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return logic.Top{}, nil

	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		var f logic.Formula = logic.NewAtom(name)
		for p.tok.kind == tokNeg || p.tok.kind == tokBot {
			if err := p.advance(); err != nil {
				return nil, err
			}
			f = f.Negate()
		}
		return f, nil

	default:
		return nil, NewParseErrorAt(p.src, p.tok.pos, UnexpectedToken,
			"expected a formula, found "+p.tok.kind.String())
	}
}

// ParseSequent parses a two-sided sequent "Γ |- Δ" (spec.md §6's
// parse_sequent). Either side may be empty.
func ParseSequent(src string) (logic.TwoSidedSequent, *ParseError) {
	p, err := newParser(src)
	if err != nil {
		return logic.TwoSidedSequent{}, err
	}

	antecedent, err := p.parseFormulaList(tokTurnstile)
	if err != nil {
		return logic.TwoSidedSequent{}, err
	}

	if _, err := p.expect(tokTurnstile); err != nil {
		return logic.TwoSidedSequent{}, err
	}

	succedent, err := p.parseFormulaList(tokEOF)
	if err != nil {
		return logic.TwoSidedSequent{}, err
	}
	if p.tok.kind != tokEOF {
		return logic.TwoSidedSequent{}, NewParseErrorAt(p.src, p.tok.pos, UnexpectedToken,
			"unexpected trailing input after sequent")
	}

	return logic.NewTwoSidedSequent(antecedent, succedent), nil
}

// parseFormulaList parses a (possibly empty) comma-separated list of
// formulas, stopping when stop is seen.
func (p *parser) parseFormulaList(stop tokenKind) ([]logic.Formula, *ParseError) {
	if p.tok.kind == stop {
		return nil, nil
	}
	var formulas []logic.Formula
	for {
		f, err := p.parseLolli()
		if err != nil {
			return nil, err
		}
		formulas = append(formulas, f)
		if p.tok.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return formulas, nil
}
