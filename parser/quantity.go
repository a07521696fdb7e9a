package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/journalhq/journal/ast"
)

// Quantity grammar.
//
// A quantity is a run of digit groups separated by "." or ",". Which
// character is the decimal separator is ambiguous across locales, so the
// groups are disambiguated scanning from the end:
//
//   - The last separator seen is assumed to be the decimal separator.
//   - If an earlier separator equals it, the interpretation flips: every
//     occurrence is a thousands separator and the quantity has no fractional
//     digits ("1.234.567" == 1234567).
//   - An earlier separator that differs establishes the thousands separator
//     ("12,345.67"); any further separator inconsistent with it is a fatal
//     parse error.
//   - A trailing separator with nothing after it is legal and denotes zero
//     fractional digits ("123." == 123).
//   - A single separator followed by exactly three digits reads as digit
//     grouping, not a decimal mark ("1.234" == 1234, but "1.2345" == 1.2345).
//
// The same scan accumulates the mantissa by digit concatenation.

// parseQuantity parses an unsigned quantity at the cursor. The sign, if any,
// belongs to the amount grammar.
func (p *Parser) parseQuantity() (ast.Quantity, *ParseError) {
	m := p.mark()

	if !isDigit(p.peek()) {
		return ast.Quantity{}, p.errorAt(m, "expected a quantity, found %s", quote(string(p.peek())))
	}

	var digits strings.Builder
	var groups []int  // Digit count per group; a trailing separator adds a zero-length group.
	var seps []byte

	g := p.scanDigits()
	digits.WriteString(g)
	groups = append(groups, len(g))

	for p.peek() == '.' || p.peek() == ',' {
		seps = append(seps, p.advance())
		g = p.scanDigits()
		digits.WriteString(g)
		groups = append(groups, len(g))
		if g == "" {
			break
		}
	}

	scale, perr := p.disambiguate(m, groups, seps)
	if perr != nil {
		return ast.Quantity{}, perr
	}

	d, err := decimal.NewFromString(digits.String())
	if err != nil {
		return ast.Quantity{}, p.errorAt(m, "invalid quantity: %v", err)
	}
	return ast.Quantity{Decimal: d.Shift(-int32(scale))}, nil
}

// disambiguate applies the right-to-left separator rules and returns the
// number of fractional digits.
func (p *Parser) disambiguate(m mark, groups []int, seps []byte) (int, *ParseError) {
	if len(seps) == 0 {
		return 0, nil
	}

	last := len(seps) - 1
	decimalSep := seps[last]
	scale := groups[len(groups)-1]

	var thousands byte
	flipped := false
	for i := last - 1; i >= 0; i-- {
		s := seps[i]
		switch {
		case thousands == 0 && s == decimalSep:
			// Same separator again: everything was grouping after all.
			flipped = true
			scale = 0
			thousands = s
		case thousands == 0:
			thousands = s
		case s != thousands:
			return 0, p.errorAt(m, "inconsistent digit group separator %q", s)
		}
	}

	// Lone separator with a three-digit group reads as grouping: "1.234".
	if !flipped && thousands == 0 && scale == 3 {
		scale = 0
	}
	return scale, nil
}
