// Package ast declares the types used to represent parsed journal files.
//
// These types model the hledger plain-text journal format: directives,
// transactions, postings, amounts, periods and queries. Values are created by
// the parser package, or constructed programmatically for tests and tooling.
package ast

// Directive is the interface implemented by all journal directive types.
// One journal file parses to an ordered sequence of directives; comments and
// blank lines are consumed by the parser and never represented here.
type Directive interface {
	// Directive returns the directive's keyword, e.g. "account" or "transaction".
	Directive() string
}

// Directives is an ordered sequence of directives as they appear in one file.
type Directives []Directive

// Transactions returns the simple transactions in d, in file order.
func (d Directives) Transactions() []*Transaction {
	var txns []*Transaction
	for _, dir := range d {
		if t, ok := dir.(*Transaction); ok {
			txns = append(txns, t)
		}
	}
	return txns
}

// Includes returns the include directives in d, in file order.
func (d Directives) Includes() []*Include {
	var incs []*Include
	for _, dir := range d {
		if i, ok := dir.(*Include); ok {
			incs = append(incs, i)
		}
	}
	return incs
}
