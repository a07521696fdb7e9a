package parser

import (
	"fmt"
	"strings"

	"github.com/journalhq/journal/ast"
)

// ParseError represents a syntax error with a byte span into the source.
// One parse may produce many of these; the parser records an error and
// resumes at the next newline instead of stopping at the first failure.
type ParseError struct {
	Pos     ast.Position
	Span    ast.Span
	Message string
}

func (e *ParseError) Error() string {
	location := fmt.Sprintf("%s:%d:%d", e.Pos.Filename, e.Pos.Line, e.Pos.Column)
	if e.Pos.Filename == "" {
		location = fmt.Sprintf("%d:%d", e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s: %s", location, e.Message)
}

// GetPosition implements the positioned-error interface used by the
// diagnostics formatter.
func (e *ParseError) GetPosition() ast.Position { return e.Pos }

// ErrorList aggregates every error produced by one parse.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d parse errors:", len(l))
	for _, e := range l {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// expectedOneOf builds an "expected one of [...], found X" message in the
// style of combinator errors.
func expectedOneOf(found string, wanted ...string) string {
	return fmt.Sprintf("expected one of [%s], found %s", strings.Join(wanted, ", "), found)
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
