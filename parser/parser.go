// Package parser implements the hledger journal grammar: a byte-oriented
// recursive descent parser with ordered alternation, position-based
// backtracking, and per-line error recovery.
package parser

import (
	"fmt"
	"time"

	"github.com/journalhq/journal/ast"
)

// Parser parses one journal file into a directive sequence.
//
// The parser carries two pieces of state the grammar needs: the "current
// year" used by partial dates (mutated by the Y/year directive, defaulted
// from the clock) and "today" used by smart dates. One Parser instance serves
// one parse call; it is never shared across goroutines.
type Parser struct {
	source    []byte
	filename  string
	pos       int
	line      int // 1-indexed
	lineStart int // Offset of the current line's first byte.

	year  int      // Current year for partial dates.
	today ast.Date // Smart date anchor.

	errs     ErrorList
	interner *Interner
}

// Option configures a Parser.
type Option func(*Parser)

// WithFilename sets the filename reported in positions and errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithToday anchors smart dates and the default current year to a fixed
// date instead of the wall clock. Used by tests.
func WithToday(today ast.Date) Option {
	return func(p *Parser) {
		p.today = today
		p.year = today.Year
	}
}

// New creates a parser for the given source.
func New(source []byte, opts ...Option) *Parser {
	today := ast.DateOf(time.Now())

	// Scale interner capacity with source size.
	internerCap := len(source) / 40
	if internerCap < 256 {
		internerCap = 256
	}

	p := &Parser{
		source:   source,
		line:     1,
		today:    today,
		year:     today.Year,
		interner: NewInterner(internerCap),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a journal file into its directive sequence. Errors are
// accumulated: an unparsable line produces an error and parsing resumes at
// the next newline, so one call may report many errors at once. On any error
// the returned error is an ErrorList.
func Parse(source []byte, opts ...Option) (ast.Directives, error) {
	p := New(source, opts...)
	directives := p.parseFile()
	if len(p.errs) > 0 {
		return directives, p.errs
	}
	return directives, nil
}

// parseFile runs the top-level line-oriented loop.
func (p *Parser) parseFile() ast.Directives {
	var directives ast.Directives

	for !p.eof() {
		lineMark := p.mark()
		indent := p.skipInlineSpace()

		// Blank line.
		if p.matchNewline() {
			continue
		}
		if p.eof() {
			break
		}

		ch := p.peek()
		switch {
		case ch == '#' || ch == ';':
			p.skipToNextLine()

		case indent > 0:
			p.errorHere(lineMark, "unexpected indented line outside a transaction")
			p.skipToNextLine()

		case p.matchWord("comment"):
			p.skipBlockComment()

		case isDigit(ch):
			if txn := p.parseTransaction(); txn != nil {
				directives = append(directives, txn)
			}

		case ch == '~':
			if txn := p.parsePeriodicTransaction(); txn != nil {
				directives = append(directives, txn)
			}

		case ch == '=':
			if rule := p.parseAutoPostingRule(); rule != nil {
				directives = append(directives, rule)
			}

		default:
			if d := p.parseKeywordDirective(); d != nil {
				directives = append(directives, d)
			}
		}
	}

	return directives
}

// parseKeywordDirective dispatches on the directive keyword. Unknown
// keywords produce one error for the whole line.
func (p *Parser) parseKeywordDirective() ast.Directive {
	m := p.mark()

	switch {
	case p.matchWord("account"):
		return p.parseAccountDirective(m)
	case p.matchWord("commodity"):
		return p.parseCommodityDirective(m)
	case p.matchWord("decimal-mark"):
		return p.parseDecimalMarkDirective(m)
	case p.matchWord("include"):
		return p.parseIncludeDirective(m)
	case p.matchWord("payee"):
		return p.parsePayeeDirective(m)
	case p.matchWord("P"):
		return p.parsePriceDirective(m)
	case p.matchWord("tag"):
		return p.parseTagDirective(m)
	case p.matchWord("Y"), p.matchWord("year"):
		return p.parseYearDirective(m)
	}

	word := p.scanWord()
	if word == "" {
		word = string(p.peek())
	}
	p.errorHere(m, "%s", expectedOneOf(quote(word),
		"account", "commodity", "decimal-mark", "include", "payee",
		"P", "tag", "Y", "year", "a transaction"))
	p.skipToNextLine()
	return nil
}

// recordError appends a parse error.
func (p *Parser) recordError(err *ParseError) {
	p.errs = append(p.errs, err)
}

// errorHere records an error spanning from the mark to the cursor.
func (p *Parser) errorHere(m mark, format string, args ...interface{}) {
	p.recordError(p.errorAt(m, format, args...))
}

// errorAt builds an error spanning from the mark to the cursor without
// recording it. Used where a branch may still backtrack.
func (p *Parser) errorAt(m mark, format string, args ...interface{}) *ParseError {
	span := p.spanFrom(m)
	if span.End == span.Start {
		span.End = span.Start + 1
	}
	return &ParseError{
		Pos:     p.positionAt(m),
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}
