package parser

import (
	"github.com/journalhq/journal/ast"
)

// Query grammar. A query is whitespace-separated terms; each term is
//
//	[not:]condition
//
// where a condition is a typed prefix (acct:, code:, cur:, desc:, payee:,
// status:, date:, amt:) or a bare value defaulting to an account condition.
// Values may be single-quoted to admit embedded spaces, which the amt:
// comparator forms require because of their special characters.

// ParseQuery parses a standalone query string into its terms.
func ParseQuery(source []byte, opts ...Option) ([]*ast.Term, error) {
	p := New(source, opts...)
	terms, perr := p.parseQueryTerms()
	if perr != nil {
		return nil, ErrorList{perr}
	}
	p.skipInlineSpace()
	if !p.atEOL() {
		return nil, ErrorList{p.errorAt(p.mark(), "unexpected trailing text %s", quote(p.restOfLine()))}
	}
	return terms, nil
}

// parseQueryTerms parses terms until the end of line.
func (p *Parser) parseQueryTerms() ([]*ast.Term, *ParseError) {
	var terms []*ast.Term
	for {
		p.skipInlineSpace()
		if p.atEOL() || p.peek() == ';' {
			return terms, nil
		}
		term, perr := p.parseQueryTerm()
		if perr != nil {
			return nil, perr
		}
		terms = append(terms, term)
	}
}

// parseQueryTerm parses one [not:]condition term.
func (p *Parser) parseQueryTerm() (*ast.Term, *ParseError) {
	term := &ast.Term{}
	if p.matchQueryPrefix("not") {
		term.Not = true
	}

	cond, perr := p.parseQueryCondition()
	if perr != nil {
		return nil, perr
	}
	term.Condition = cond
	return term, nil
}

// parseQueryCondition parses a typed or bare condition.
func (p *Parser) parseQueryCondition() (ast.Condition, *ParseError) {
	m := p.mark()

	switch {
	case p.matchQueryPrefix("acct"):
		return p.stringCondition(ast.CondAccount, m)
	case p.matchQueryPrefix("code"):
		return p.stringCondition(ast.CondCode, m)
	case p.matchQueryPrefix("cur"):
		return p.stringCondition(ast.CondCurrency, m)
	case p.matchQueryPrefix("desc"):
		return p.stringCondition(ast.CondDescription, m)
	case p.matchQueryPrefix("payee"):
		return p.stringCondition(ast.CondPayee, m)
	case p.matchQueryPrefix("status"):
		return p.statusCondition(m)
	case p.matchQueryPrefix("date"):
		return p.dateCondition(m)
	case p.matchQueryPrefix("amt"):
		return p.amountCondition(m)
	}

	// Bare or quoted value, an account pattern.
	value := p.scanQueryValue()
	if value == "" {
		return ast.Condition{}, p.errorAt(m, "expected a query term")
	}
	return ast.Condition{Kind: ast.CondAccount, Value: value}, nil
}

// matchQueryPrefix consumes "<word>:".
func (p *Parser) matchQueryPrefix(word string) bool {
	m := p.mark()
	if p.matchWord(word) && p.matchByte(':') {
		return true
	}
	p.reset(m)
	return false
}

func (p *Parser) stringCondition(kind ast.ConditionKind, m mark) (ast.Condition, *ParseError) {
	value := p.scanQueryValue()
	if value == "" {
		return ast.Condition{}, p.errorAt(m, "expected a value for the %s condition", kind)
	}
	return ast.Condition{Kind: kind, Value: value}, nil
}

// statusCondition parses status:[!|*]. An empty value matches transactions
// with no status, which is different from omitting the condition.
func (p *Parser) statusCondition(m mark) (ast.Condition, *ParseError) {
	cond := ast.Condition{Kind: ast.CondStatus}
	switch p.peek() {
	case '!':
		p.advance()
		s := ast.StatusPending
		cond.Status = &s
	case '*':
		p.advance()
		s := ast.StatusCleared
		cond.Status = &s
	}
	if !p.atEOL() && !p.atInlineSpace() {
		return ast.Condition{}, p.errorAt(m, "expected %q, %q or nothing as the status value", "!", "*")
	}
	return cond, nil
}

// dateCondition parses date:<period>, embedding the full period grammar.
func (p *Parser) dateCondition(m mark) (ast.Condition, *ParseError) {
	value := p.scanQueryValue()
	if value == "" {
		return ast.Condition{}, p.errorAt(m, "expected a period for the date condition")
	}

	sub := p.subParser(value)
	period, perr := sub.parsePeriod()
	if perr != nil {
		return ast.Condition{}, p.errorAt(m, "invalid date condition: %s", perr.Message)
	}
	sub.skipInlineSpace()
	if !sub.atEOL() {
		return ast.Condition{}, p.errorAt(m, "invalid date condition: unexpected trailing text %s", quote(sub.restOfLine()))
	}
	return ast.Condition{Kind: ast.CondDate, Period: period}, nil
}

// amountCondition parses amt:<op><quantity> where op is =, <, <=, > or >=
// and the quantity may carry a sign.
func (p *Parser) amountCondition(m mark) (ast.Condition, *ParseError) {
	value := p.scanQueryValue()
	if value == "" {
		return ast.Condition{}, p.errorAt(m, "expected a comparison for the amt condition")
	}

	sub := p.subParser(value)
	cond := ast.Condition{Kind: ast.CondAmount}
	switch {
	case sub.matchByte('<'):
		cond.Op = ast.CmpLt
		if sub.matchByte('=') {
			cond.Op = ast.CmpLtEq
		}
	case sub.matchByte('>'):
		cond.Op = ast.CmpGt
		if sub.matchByte('=') {
			cond.Op = ast.CmpGtEq
		}
	case sub.matchByte('='):
		cond.Op = ast.CmpEq
	default:
		cond.Op = ast.CmpEq
	}

	neg, _ := sub.parseSign()
	qty, perr := sub.parseQuantity()
	if perr != nil {
		return ast.Condition{}, p.errorAt(m, "invalid amt condition: %s", perr.Message)
	}
	if !sub.atEOL() {
		return ast.Condition{}, p.errorAt(m, "invalid amt condition: unexpected trailing text %s", quote(sub.restOfLine()))
	}
	if neg {
		qty = qty.Neg()
	}
	cond.Quantity = qty
	return cond, nil
}

// scanQueryValue scans a term value: single-quoted with embedded spaces, or
// bare up to the next whitespace.
func (p *Parser) scanQueryValue() string {
	if p.peek() == '\'' {
		m := p.mark()
		p.advance()
		start := p.pos
		for !p.atEOL() && p.peek() != '\'' {
			p.advance()
		}
		if p.peek() != '\'' {
			p.reset(m)
			return ""
		}
		value := string(p.source[start:p.pos])
		p.advance()
		return value
	}

	start := p.pos
	for !p.atEOL() && !p.atInlineSpace() {
		p.advance()
	}
	return string(p.source[start:p.pos])
}

// subParser builds a parser over a term's unquoted value, inheriting the
// date state.
func (p *Parser) subParser(value string) *Parser {
	sub := New([]byte(value), WithToday(p.today))
	sub.year = p.year
	return sub
}
