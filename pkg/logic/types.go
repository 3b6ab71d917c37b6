package logic

import "strings"

// TypeGenerator synthesizes a surface type string for a Formula
// (spec.md §4.6, C7). The mapping is pure and language-neutral in
// shape; TypeGenerator targets the Rust-flavored rendering the original
// workbench used, since spec.md §4.6's table is that exact mapping.
type TypeGenerator struct{}

// NewTypeGenerator creates a TypeGenerator. It carries no state — the
// mapping from Formula to surface type depends only on its argument.
func NewTypeGenerator() *TypeGenerator { return &TypeGenerator{} }

// Generate renders formula's surface type per spec.md §4.6's table.
func (g *TypeGenerator) Generate(formula Formula) string {
	switch f := formula.(type) {
	case Atom:
		return f.Name
	case NegAtom:
		return f.Name + "Dual"
	case Tensor:
		return "(" + g.Generate(f.A) + ", " + g.Generate(f.B) + ")"
	case Par:
		return "Par<" + g.Generate(f.A) + ", " + g.Generate(f.B) + ">"
	case Lolli:
		return "impl FnOnce(" + g.Generate(f.A) + ") -> " + g.Generate(f.B)
	case With:
		return "With<" + g.Generate(f.A) + ", " + g.Generate(f.B) + ">"
	case Plus:
		return "Either<" + g.Generate(f.A) + ", " + g.Generate(f.B) + ">"
	case OfCourse:
		return "Rc<" + g.Generate(f.A) + ">"
	case WhyNot:
		return "Demand<" + g.Generate(f.A) + ">"
	case One:
		return "()"
	case Bottom:
		return "!"
	case Top:
		return "Top"
	case Zero:
		return "Void"
	default:
		return "?"
	}
}

// GenerateArg renders a named function argument: "name: Type".
func (g *TypeGenerator) GenerateArg(formula Formula, name string) string {
	return name + ": " + g.Generate(formula)
}

// GenerateReturn renders the return type for a list of succedent
// formulas: unit for none, the bare type for one, a tuple for several.
func (g *TypeGenerator) GenerateReturn(formulas []Formula) string {
	switch len(formulas) {
	case 0:
		return "()"
	case 1:
		return g.Generate(formulas[0])
	default:
		types := make([]string, len(formulas))
		for i, f := range formulas {
			types[i] = g.Generate(f)
		}
		return "(" + strings.Join(types, ", ") + ")"
	}
}
