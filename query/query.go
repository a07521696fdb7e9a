// Package query compiles parsed query terms into a transaction filter.
//
// String conditions are case-insensitive regular expressions matched as
// substrings, except cur: which must match the whole commodity symbol.
// Terms combine with AND; a not: term inverts its condition. Account,
// currency and amount conditions apply per posting: they narrow a
// transaction to its matching postings and drop the transaction when none
// survive. The remaining conditions apply to the transaction itself.
package query

import (
	"fmt"
	"regexp"

	"github.com/journalhq/journal/ast"
	"github.com/journalhq/journal/parser"
)

// Query is a compiled, reusable transaction filter.
type Query struct {
	terms []*term
}

// term is one compiled condition with its negation flag.
type term struct {
	not  bool
	kind ast.ConditionKind

	pattern  *regexp.Regexp // String conditions.
	op       ast.CmpOp      // Amount conditions.
	quantity ast.Quantity
	period   ast.Period    // Date conditions.
	status   *ast.Status   // Status conditions; nil matches "no status".
}

// Parse parses and compiles a query string.
func Parse(text string, opts ...parser.Option) (*Query, error) {
	terms, err := parser.ParseQuery([]byte(text), opts...)
	if err != nil {
		return nil, err
	}
	return Compile(terms)
}

// Compile builds a Query from parsed terms.
func Compile(terms []*ast.Term) (*Query, error) {
	q := &Query{}
	for _, t := range terms {
		ct, err := compileTerm(t)
		if err != nil {
			return nil, err
		}
		q.terms = append(q.terms, ct)
	}
	return q, nil
}

func compileTerm(t *ast.Term) (*term, error) {
	cond := t.Condition
	ct := &term{
		not:      t.Not,
		kind:     cond.Kind,
		op:       cond.Op,
		quantity: cond.Quantity,
		period:   cond.Period,
		status:   cond.Status,
	}

	switch cond.Kind {
	case ast.CondAccount, ast.CondCode, ast.CondDescription, ast.CondPayee:
		pattern, err := regexp.Compile("(?i)" + cond.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", cond.Kind, cond.Value, err)
		}
		ct.pattern = pattern

	case ast.CondCurrency:
		// The commodity must match in full, not as a substring.
		pattern, err := regexp.Compile("(?i)^(?:" + cond.Value + ")$")
		if err != nil {
			return nil, fmt.Errorf("invalid cur pattern %q: %w", cond.Value, err)
		}
		ct.pattern = pattern
	}
	return ct, nil
}

// postingLevel reports whether the term narrows individual postings.
func (t *term) postingLevel() bool {
	switch t.kind {
	case ast.CondAccount, ast.CondCurrency, ast.CondAmount:
		return true
	}
	return false
}

// matchTransaction evaluates a transaction-level term.
func (t *term) matchTransaction(txn *ast.Transaction) bool {
	var matched bool
	switch t.kind {
	case ast.CondCode:
		matched = t.pattern.MatchString(txn.Code)
	case ast.CondDescription:
		matched = t.pattern.MatchString(txn.DescriptionText())
	case ast.CondPayee:
		matched = t.pattern.MatchString(txn.Payee)
	case ast.CondDate:
		matched = t.period.Contains(txn.Date)
	case ast.CondStatus:
		if t.status == nil {
			matched = txn.Status == ast.StatusNone
		} else {
			matched = txn.Status == *t.status
		}
	}
	return matched != t.not
}

// matchPosting evaluates a posting-level term.
func (t *term) matchPosting(p *ast.Posting) bool {
	var matched bool
	switch t.kind {
	case ast.CondAccount:
		matched = t.pattern.MatchString(p.Account.String())
	case ast.CondCurrency:
		matched = p.Amount != nil && t.pattern.MatchString(p.Amount.Commodity)
	case ast.CondAmount:
		matched = p.Amount != nil && compareQuantity(p.Amount.Quantity, t.op, t.quantity)
	}
	return matched != t.not
}

func compareQuantity(q ast.Quantity, op ast.CmpOp, want ast.Quantity) bool {
	c := q.Cmp(want.Decimal)
	switch op {
	case ast.CmpLt:
		return c < 0
	case ast.CmpLtEq:
		return c <= 0
	case ast.CmpGt:
		return c > 0
	case ast.CmpGtEq:
		return c >= 0
	default:
		return c == 0
	}
}
