package parse

import "github.com/ibrahimcesar/lolli/pkg/logic"

// Re-export logic's ParseError kinds so callers of this package never
// need to import pkg/logic just to classify an error.
const (
	UnexpectedToken = logic.UnexpectedToken
	UnknownOperator = logic.UnknownOperator
	General         = logic.General
)

// ParseError is the error type parse_formula and parse_sequent return,
// per spec.md §7: it never silently recovers, and it always carries the
// offending fragment.
type ParseError = logic.ParseError

// NewParseErrorAt builds a ParseError whose Fragment is the source text
// starting at pos, truncated to a short preview so long inputs don't
// produce unreadable error messages.
func NewParseErrorAt(src string, pos int, kind logic.ParseErrorKind, message string) *ParseError {
	fragment := src[pos:]
	const maxFragment = 20
	if len(fragment) > maxFragment {
		fragment = fragment[:maxFragment] + "…"
	}
	return logic.NewParseError(kind, fragment, message)
}
