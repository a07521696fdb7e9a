package query

import "github.com/journalhq/journal/ast"

// Match reports whether the transaction satisfies every term. Posting-level
// terms are satisfied when at least one posting survives them.
func (q *Query) Match(txn *ast.Transaction) bool {
	_, ok := q.Filter(txn)
	return ok
}

// Filter applies the query to one transaction. Transaction-level terms must
// all hold; posting-level terms narrow the posting list. The returned
// transaction shares everything but the posting slice with the input. The
// second result is false when the transaction is filtered out entirely.
func (q *Query) Filter(txn *ast.Transaction) (*ast.Transaction, bool) {
	postingTerms := false
	for _, t := range q.terms {
		if t.postingLevel() {
			postingTerms = true
			continue
		}
		if !t.matchTransaction(txn) {
			return nil, false
		}
	}
	if !postingTerms {
		return txn, true
	}

	var postings []*ast.Posting
	for _, p := range txn.Postings {
		if q.matchPosting(p) {
			postings = append(postings, p)
		}
	}
	if len(postings) == 0 {
		return nil, false
	}
	if len(postings) == len(txn.Postings) {
		return txn, true
	}

	filtered := *txn
	filtered.Postings = postings
	return &filtered, true
}

// FilterAll applies the query to every transaction in a directive sequence.
func (q *Query) FilterAll(directives ast.Directives) []*ast.Transaction {
	var out []*ast.Transaction
	for _, txn := range directives.Transactions() {
		if filtered, ok := q.Filter(txn); ok {
			out = append(out, filtered)
		}
	}
	return out
}

// matchPosting evaluates every posting-level term against one posting.
func (q *Query) matchPosting(p *ast.Posting) bool {
	for _, t := range q.terms {
		if t.postingLevel() && !t.matchPosting(p) {
			return false
		}
	}
	return true
}
