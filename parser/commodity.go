package parser

import "unicode/utf8"

// Commodity grammar. A commodity is one of:
//
//   - a single currency symbol from a fixed allow-list ("$", "€"),
//   - a run of alphabetic characters ("USD", "hours"),
//   - a double-quoted arbitrary string ("\"AAPL 2024\"").

// currencySymbols is the allow-list of single-rune, non-alphanumeric
// currency symbols.
var currencySymbols = map[rune]bool{
	'$': true,
	'¢': true,
	'£': true,
	'¤': true,
	'¥': true,
	'€': true,
	'₩': true,
	'₪': true,
	'₹': true,
	'₽': true,
	'₿': true,
}

// parseCommodity parses a commodity at the cursor. It returns ok=false
// without consuming input when no commodity starts here.
func (p *Parser) parseCommodity() (string, bool) {
	if p.peek() == '"' {
		return p.parseQuotedCommodity()
	}

	if isLetter(p.peek()) {
		return p.interner.Intern(p.scanWord()), true
	}

	r, size := utf8.DecodeRune(p.source[p.pos:])
	if currencySymbols[r] {
		for i := 0; i < size; i++ {
			p.advance()
		}
		return p.interner.Intern(string(r)), true
	}

	return "", false
}

// parseQuotedCommodity parses a double-quoted commodity. The quotes admit
// arbitrary characters except newlines.
func (p *Parser) parseQuotedCommodity() (string, bool) {
	m := p.mark()
	p.matchByte('"')
	start := p.pos
	for !p.atEOL() && p.peek() != '"' {
		p.advance()
	}
	if p.peek() != '"' {
		p.reset(m)
		return "", false
	}
	symbol := string(p.source[start:p.pos])
	p.advance()
	return p.interner.Intern(symbol), true
}
