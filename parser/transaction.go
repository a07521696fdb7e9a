package parser

import (
	"strings"

	"github.com/journalhq/journal/ast"
)

// Transaction grammar. A simple transaction is a header line
//
//	date [status] [(code)] payee [| description] [; comment]
//
// followed by zero or more indented posting lines. A periodic transaction
// replaces the date with "~ <period>". An auto-posting rule replaces the
// header with "= <query>" and requires at least two postings.
//
// Error recovery is per line: a bad header skips the whole entry including
// its indented lines, a bad posting skips just that posting's line.

// parseTransaction parses a simple transaction. Returns nil on error.
func (p *Parser) parseTransaction() ast.Directive {
	m := p.mark()

	date, perr := p.parseSimpleDate()
	if perr != nil {
		p.recordError(perr)
		p.skipEntry()
		return nil
	}

	txn := &ast.Transaction{Pos: p.positionAt(m), Date: date}
	if !p.parseTransactionHeader(&txn.Status, &txn.Code, &txn.Payee, &txn.Description, &txn.Comment) {
		p.skipEntry()
		return nil
	}
	txn.Postings = p.parsePostings(&txn.Comment)
	return txn
}

// parsePeriodicTransaction parses "~ <period> [header]" plus postings.
func (p *Parser) parsePeriodicTransaction() ast.Directive {
	m := p.mark()
	p.matchByte('~')
	p.skipInlineSpace()

	period, perr := p.parsePeriod()
	if perr != nil {
		p.recordError(perr)
		p.skipEntry()
		return nil
	}

	txn := &ast.PeriodicTransaction{Pos: p.positionAt(m), Period: period}
	if !p.parseTransactionHeader(&txn.Status, &txn.Code, &txn.Payee, &txn.Description, &txn.Comment) {
		p.skipEntry()
		return nil
	}
	txn.Postings = p.parsePostings(&txn.Comment)
	return txn
}

// parseTransactionHeader parses the status, code, payee, description and
// trailing comment of a header line, then its line ending. The payee is
// trimmed on both sides; the description keeps trailing whitespace.
func (p *Parser) parseTransactionHeader(status *ast.Status, code, payee *string, description **string, comment *string) bool {
	p.skipInlineSpace()

	if s, ok := p.parseStatus(); ok {
		*status = s
		p.skipInlineSpace()
	}

	if p.matchByte('(') {
		start := p.pos
		for !p.atEOL() && p.peek() != ')' {
			p.advance()
		}
		if !p.matchByte(')') {
			p.errorHere(p.mark(), "expected %q to close the transaction code", ")")
			return false
		}
		*code = string(p.source[start : p.pos-1])
		p.skipInlineSpace()
	}

	start := p.pos
	for !p.atEOL() && p.peek() != ';' {
		p.advance()
	}
	text := string(p.source[start:p.pos])

	if payeeText, descText, found := strings.Cut(text, "|"); found {
		*payee = p.interner.Intern(strings.TrimSpace(payeeText))
		descText = strings.TrimLeft(descText, " \t")
		*description = &descText
	} else {
		*payee = p.interner.Intern(strings.TrimSpace(text))
	}

	if p.peek() == ';' {
		*comment = p.parseInlineComment()
	}
	if !p.atEOL() {
		p.errorHere(p.mark(), "unexpected trailing text %s", quote(p.restOfLine()))
		return false
	}
	p.matchNewline()
	return true
}

// parsePostings parses the indented posting block after a header. Comment
// lines inside the block attach to the preceding posting, or to the
// transaction when no posting precedes them, joined with newlines.
func (p *Parser) parsePostings(comment *string) []*ast.Posting {
	var postings []*ast.Posting

	for !p.eof() {
		m := p.mark()
		indent := p.skipInlineSpace()
		if indent == 0 || p.atEOL() {
			p.reset(m)
			return postings
		}

		if p.peek() == ';' {
			text := p.parseInlineComment()
			p.matchNewline()
			if len(postings) > 0 {
				appendCommentLine(&postings[len(postings)-1].Comment, text)
			} else {
				appendCommentLine(comment, text)
			}
			continue
		}

		if posting := p.parsePosting(); posting != nil {
			postings = append(postings, posting)
		}
	}
	return postings
}

// parsePosting parses one posting line. The cursor sits after the line's
// indentation. Returns nil after recording an error.
func (p *Parser) parsePosting() *ast.Posting {
	return p.parsePostingLine(nil)
}

// parsePostingLine is the shared posting-line parser. When multiplier is
// non-nil the amount may carry a "*" prefix, which sets *multiplier instead
// of being part of the amount. That form only appears in auto-posting rules.
func (p *Parser) parsePostingLine(multiplier *bool) *ast.Posting {
	m := p.mark()
	posting := &ast.Posting{}

	if s, ok := p.parseStatus(); ok {
		posting.Status = s
		p.skipInlineSpace()
	}

	if p.matchByte('(') {
		posting.Virtual = true
	}
	name, ok := p.scanAccountName()
	if !ok {
		p.errorHere(m, "expected an account name")
		p.skipToNextLine()
		return nil
	}
	posting.Account = name
	if posting.Virtual && !p.matchByte(')') {
		p.errorHere(m, "expected %q to close the virtual account name", ")")
		p.skipToNextLine()
		return nil
	}

	if p.atHardSeparator() {
		p.skipInlineSpace()

		if multiplier != nil && p.matchByte('*') {
			*multiplier = true
			p.skipInlineSpace()
		}

		if !p.atEOL() && p.peek() != ';' && p.peek() != '=' {
			amount, perr := p.parseAmountWithPrice()
			if perr != nil {
				p.recordError(perr)
				p.skipToNextLine()
				return nil
			}
			posting.Amount = amount
			p.skipInlineSpace()
		}

		if p.peek() == '=' {
			assertion, perr := p.parseAssertion()
			if perr != nil {
				p.recordError(perr)
				p.skipToNextLine()
				return nil
			}
			posting.Assertion = assertion
			p.skipInlineSpace()
		}

		if p.peek() == ';' {
			posting.Comment = p.parseInlineComment()
		}
	}

	if !p.atEOL() {
		p.errorHere(p.mark(), "unexpected trailing text %s", quote(p.restOfLine()))
		p.skipToNextLine()
		return nil
	}
	p.matchNewline()
	return posting
}

// parseAssertion parses "={1,2}[*] <amount>".
func (p *Parser) parseAssertion() (*ast.Assertion, *ParseError) {
	assertion := &ast.Assertion{}
	p.matchByte('=')
	assertion.Strict = p.matchByte('=')
	assertion.Inclusive = p.matchByte('*')
	p.skipInlineSpace()

	amount, perr := p.parseAmountWithPrice()
	if perr != nil {
		return nil, perr
	}
	assertion.Amount = *amount
	return assertion, nil
}

// parseAutoPostingRule parses "= <query>" plus at least two postings.
func (p *Parser) parseAutoPostingRule() ast.Directive {
	m := p.mark()
	p.matchByte('=')
	p.skipInlineSpace()

	query, perr := p.parseQueryTerms()
	if perr != nil {
		p.recordError(perr)
		p.skipEntry()
		return nil
	}
	if len(query) == 0 {
		p.errorHere(m, "expected a query")
		p.skipEntry()
		return nil
	}
	p.skipInlineSpace()
	if p.peek() == ';' {
		_ = p.parseInlineComment()
	}
	if !p.atEOL() {
		p.errorHere(p.mark(), "unexpected trailing text %s", quote(p.restOfLine()))
		p.skipEntry()
		return nil
	}
	p.matchNewline()

	rule := &ast.AutoPostingRule{Pos: p.positionAt(m), Query: query}
	for _, posting := range p.parseAutoPostings() {
		rule.Postings = append(rule.Postings, posting)
	}
	if len(rule.Postings) < 2 {
		p.errorHere(m, "an auto posting rule requires at least two postings")
		return nil
	}
	return rule
}

// parseAutoPostings parses the posting block of an auto-posting rule. A "*"
// prefix on the amount marks it as a multiplier of the matched posting's
// amount.
func (p *Parser) parseAutoPostings() []*ast.AutoPosting {
	var postings []*ast.AutoPosting

	for !p.eof() {
		m := p.mark()
		indent := p.skipInlineSpace()
		if indent == 0 || p.atEOL() {
			p.reset(m)
			return postings
		}

		if p.peek() == ';' {
			p.skipToNextLine()
			continue
		}

		auto := &ast.AutoPosting{}
		if posting := p.parsePostingLine(&auto.Multiplier); posting != nil {
			auto.Posting = posting
			postings = append(postings, auto)
		}
	}
	return postings
}

// parseStatus matches a "!" or "*" clearing status.
func (p *Parser) parseStatus() (ast.Status, bool) {
	switch p.peek() {
	case '!':
		p.advance()
		return ast.StatusPending, true
	case '*':
		p.advance()
		return ast.StatusCleared, true
	}
	return ast.StatusNone, false
}

// skipEntry resynchronizes after a failed header: the rest of the line and
// every following indented line are discarded.
func (p *Parser) skipEntry() {
	p.skipToNextLine()
	for !p.eof() {
		m := p.mark()
		if p.skipInlineSpace() == 0 {
			p.reset(m)
			return
		}
		p.skipToNextLine()
	}
}

func appendCommentLine(comment *string, line string) {
	if *comment == "" {
		*comment = line
		return
	}
	*comment += "\n" + line
}
