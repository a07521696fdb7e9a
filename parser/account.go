package parser

import "github.com/journalhq/journal/ast"

// Account name grammar. Segments are colon-separated and may contain single
// spaces and parentheses. Two consecutive spaces (or a tab) terminate the
// name early; that separator is reserved for amounts and inline comments.
// A closing paren is rejected as the final character so the virtual-posting
// delimiter is left for the posting grammar to consume.
//
// The early-termination rule has a known consequence: anything separated
// from the name by a single space folds into the name, so "checking $1"
// parses as the account "checking $1" with no amount.

// scanAccountName scans an account name at the cursor and returns it split
// into segments. Returns ok=false when the name would be empty.
func (p *Parser) scanAccountName() (ast.AccountName, bool) {
	start := p.pos
	for !p.atEOL() && !p.atHardSeparator() {
		p.advance()
	}

	end := p.pos
	for end > start && (p.source[end-1] == ' ' || p.source[end-1] == '\t') {
		end--
	}
	if end > start && p.source[end-1] == ')' {
		end--
	}

	// Rewind past anything trimmed; no newline is ever crossed here.
	p.pos = end

	if end == start {
		return nil, false
	}
	name := p.interner.Intern(string(p.source[start:end]))
	segments := ast.NewAccountName(name)
	for _, seg := range segments {
		if seg == "" {
			return nil, false
		}
	}
	return segments, true
}
