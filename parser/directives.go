package parser

import (
	"strings"

	"github.com/journalhq/journal/ast"
)

// Keyword directives. Each is one line: the keyword, at least one space,
// a typed payload, then the end of line with an optional inline comment.

// parseAccountDirective parses "account <name>". Because ";" is legal inside
// account-name text, a trailing comment must be separated by at least two
// spaces; the hard-separator rule in the name scanner takes care of that.
func (p *Parser) parseAccountDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected an account name")
	}
	name, ok := p.scanAccountName()
	if !ok {
		return p.directiveError(m, "expected an account name")
	}
	p.endDirectiveLine()
	return &ast.Account{Pos: p.positionAt(m), Name: name}
}

// parseCommodityDirective parses "commodity <symbol>".
func (p *Parser) parseCommodityDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a commodity")
	}
	symbol, ok := p.parseCommodity()
	if !ok {
		return p.directiveError(m, "expected a commodity")
	}
	p.endDirectiveLine()
	return &ast.Commodity{Pos: p.positionAt(m), Symbol: symbol}
}

// parseDecimalMarkDirective parses "decimal-mark <. or ,>".
func (p *Parser) parseDecimalMarkDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a decimal mark")
	}
	ch := p.peek()
	if ch != '.' && ch != ',' {
		return p.directiveError(m, "expected %q or %q as the decimal mark", ".", ",")
	}
	p.advance()
	p.endDirectiveLine()
	return &ast.DecimalMark{Pos: p.positionAt(m), Mark: ch}
}

// includeFormats are the formats an include directive may name.
var includeFormats = map[string]ast.IncludeFormat{
	"journal":   ast.FormatJournal,
	"timeclock": ast.FormatTimeclock,
	"timedot":   ast.FormatTimedot,
	"csv":       ast.FormatCSV,
	"ssv":       ast.FormatSSV,
	"tsv":       ast.FormatTSV,
	"rules":     ast.FormatRules,
}

// parseIncludeDirective parses "include [format:]<glob>". The path runs to
// the end of line or a hard separator, so it may contain single spaces.
func (p *Parser) parseIncludeDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a file path")
	}

	format := ast.FormatUnspecified
	fm := p.mark()
	if word := p.scanWord(); word != "" && p.matchByte(':') {
		if f, ok := includeFormats[word]; ok {
			format = f
		} else {
			p.reset(fm)
		}
	} else {
		p.reset(fm)
	}

	path := p.scanUntilHardSeparator()
	if path == "" {
		return p.directiveError(m, "expected a file path")
	}
	p.endDirectiveLine()
	return &ast.Include{Pos: p.positionAt(m), Format: format, Path: path}
}

// parsePayeeDirective parses "payee <name>"; the name may contain single
// spaces.
func (p *Parser) parsePayeeDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a payee name")
	}
	name := p.scanUntilHardSeparator()
	if name == "" {
		return p.directiveError(m, "expected a payee name")
	}
	p.endDirectiveLine()
	return &ast.Payee{Pos: p.positionAt(m), Name: p.interner.Intern(name)}
}

// parsePriceDirective parses "P <date> <commodity> <amount>".
func (p *Parser) parsePriceDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a date")
	}
	date, perr := p.parseSimpleDate()
	if perr != nil {
		p.recordError(perr)
		p.skipToNextLine()
		return nil
	}
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a commodity")
	}
	commodity, ok := p.parseCommodity()
	if !ok {
		return p.directiveError(m, "expected a commodity")
	}
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected an amount")
	}
	amount, perr := p.parseAmount()
	if perr != nil {
		p.recordError(perr)
		p.skipToNextLine()
		return nil
	}
	p.endDirectiveLine()
	return &ast.Price{Pos: p.positionAt(m), Date: date, Commodity: commodity, Amount: *amount}
}

// parseTagDirective parses "tag <name>".
func (p *Parser) parseTagDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a tag name")
	}
	start := p.pos
	for !p.atEOL() && !p.atInlineSpace() {
		p.advance()
	}
	if p.pos == start {
		return p.directiveError(m, "expected a tag name")
	}
	name := string(p.source[start:p.pos])
	p.endDirectiveLine()
	return &ast.Tag{Pos: p.positionAt(m), Name: p.interner.Intern(name)}
}

// parseYearDirective parses "Y <year>" or "year <year>" and switches the
// parser's current year for the partial dates that follow.
func (p *Parser) parseYearDirective(m mark) ast.Directive {
	if p.skipInlineSpace() == 0 {
		return p.directiveError(m, "expected a year")
	}
	digits := p.scanDigits()
	if digits == "" {
		return p.directiveError(m, "expected a year")
	}
	year := atoi(digits)
	p.year = year
	p.endDirectiveLine()
	return &ast.Year{Pos: p.positionAt(m), Year: year}
}

// scanUntilHardSeparator consumes text up to the end of line or a hard
// separator and returns it with trailing single spaces trimmed.
func (p *Parser) scanUntilHardSeparator() string {
	start := p.pos
	for !p.atEOL() && !p.atHardSeparator() {
		p.advance()
	}
	end := p.pos
	for end > start && (p.source[end-1] == ' ' || p.source[end-1] == '\t') {
		end--
	}
	p.pos = end
	return strings.TrimSpace(string(p.source[start:end]))
}

// directiveError records an error for the directive line and resynchronizes.
func (p *Parser) directiveError(m mark, format string, args ...interface{}) ast.Directive {
	p.errorHere(m, format, args...)
	p.skipToNextLine()
	return nil
}
