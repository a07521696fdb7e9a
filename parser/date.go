package parser

import (
	"time"

	"github.com/journalhq/journal/ast"
)

// parseSimpleDate parses [YYYY]sep MM sep DD, where sep is one of "-", "/"
// or ".". A missing year falls back to the current year carried in parser
// state. Month and day are range-checked but not calendar-checked.
func (p *Parser) parseSimpleDate() (ast.Date, *ParseError) {
	m := p.mark()

	first := p.scanDigits()
	if first == "" {
		return ast.Date{}, p.errorAt(m, "expected a date")
	}
	sep := p.peek()
	if sep != '-' && sep != '/' && sep != '.' {
		return ast.Date{}, p.errorAt(p.mark(), "expected a date separator")
	}
	p.advance()

	second := p.scanDigits()
	if second == "" {
		return ast.Date{}, p.errorAt(p.mark(), "expected a date component")
	}

	var year, month, day int
	if p.peek() == sep {
		p.advance()
		third := p.scanDigits()
		if third == "" {
			return ast.Date{}, p.errorAt(p.mark(), "expected a day")
		}
		year, month, day = atoi(first), atoi(second), atoi(third)
	} else {
		year, month, day = p.year, atoi(first), atoi(second)
	}

	if month < 1 || month > 12 {
		return ast.Date{}, p.errorAt(m, "month out of range")
	}
	if day < 1 || day > 31 {
		return ast.Date{}, p.errorAt(m, "day out of range")
	}
	return ast.Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// atoi converts a digit run already validated by scanDigits.
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
