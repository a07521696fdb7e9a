package ast

import "strings"

// Status is the clearing status of a transaction or posting.
type Status uint8

const (
	StatusNone Status = iota
	StatusPending        // !
	StatusCleared        // *
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "!"
	case StatusCleared:
		return "*"
	default:
		return ""
	}
}

// Assertion is an inline balance assertion attached to a posting.
// One "=" is a subset (weak) assertion, "==" is strict; a "*" suffix makes
// the assertion include subaccounts.
type Assertion struct {
	Strict    bool
	Inclusive bool
	Amount    Amount
}

func (a Assertion) String() string {
	var b strings.Builder
	b.WriteByte('=')
	if a.Strict {
		b.WriteByte('=')
	}
	if a.Inclusive {
		b.WriteByte('*')
	}
	b.WriteByte(' ')
	b.WriteString(a.Amount.String())
	return b.String()
}

// Posting is one account/amount line within a transaction. Virtual is true
// iff the account name was parenthesized. A nil Amount is an elided posting
// whose value is inferred by the consumer.
type Posting struct {
	Status    Status
	Account   AccountName
	Virtual   bool
	Amount    *Amount
	Assertion *Assertion
	Comment   string // Inline comment, without the leading ";".
}

func (p *Posting) String() string {
	var b strings.Builder
	b.WriteString("    ")
	if p.Status != StatusNone {
		b.WriteString(p.Status.String())
		b.WriteByte(' ')
	}
	if p.Virtual {
		b.WriteByte('(')
	}
	b.WriteString(p.Account.String())
	if p.Virtual {
		b.WriteByte(')')
	}
	if p.Amount != nil {
		b.WriteString("  ")
		b.WriteString(p.Amount.String())
	}
	if p.Assertion != nil {
		b.WriteByte(' ')
		b.WriteString(p.Assertion.String())
	}
	return b.String()
}
