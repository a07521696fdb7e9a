package ast

import "strings"

// Transaction is a dated simple transaction:
//
//	2008/01/01 * (123) salary | january
//	    assets:bank:checking   $1
//	    income:salary         $-1
type Transaction struct {
	Pos         Position
	Date        Date
	Status      Status
	Code        string // Without the surrounding parentheses.
	Payee       string
	Description *string // Text after "|", nil when absent.
	Comment     string  // Inline comment on the header line.
	Postings    []*Posting
}

var _ Directive = &Transaction{}

func (t *Transaction) Directive() string { return "transaction" }

// DescriptionText joins payee and description the way filters match them.
func (t *Transaction) DescriptionText() string {
	if t.Description == nil {
		return t.Payee
	}
	return t.Payee + " | " + *t.Description
}

func (t *Transaction) String() string {
	var b strings.Builder
	b.WriteString(t.Date.String())
	if t.Status != StatusNone {
		b.WriteByte(' ')
		b.WriteString(t.Status.String())
	}
	if t.Code != "" {
		b.WriteString(" (")
		b.WriteString(t.Code)
		b.WriteByte(')')
	}
	b.WriteByte(' ')
	b.WriteString(t.Payee)
	if t.Description != nil {
		b.WriteString(" | ")
		b.WriteString(strings.TrimSpace(*t.Description))
	}
	for _, p := range t.Postings {
		b.WriteByte('\n')
		b.WriteString(p.String())
	}
	return b.String()
}

// PeriodicTransaction is a transaction template with a recurrence period
// instead of a date:
//
//	~ monthly  rent
//	    expenses:rent     $1000
//	    assets:checking
type PeriodicTransaction struct {
	Pos         Position
	Period      Period
	Status      Status
	Code        string
	Payee       string
	Description *string
	Comment     string
	Postings    []*Posting
}

var _ Directive = &PeriodicTransaction{}

func (t *PeriodicTransaction) Directive() string { return "periodic transaction" }
