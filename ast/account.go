package ast

import "strings"

// AccountName is a hierarchical account name made of colon-separated,
// non-empty segments. "assets:bank" is a strict ancestor of
// "assets:bank:checking". Equality is structural over the segments.
//
// Example accounts:
//
//	assets:bank:checking
//	expenses:food
//	liabilities:credit card
type AccountName []string

// NewAccountName splits a colon-separated name into its segments.
func NewAccountName(name string) AccountName {
	if name == "" {
		return nil
	}
	return AccountName(strings.Split(name, ":"))
}

// String joins the segments back into the colon-separated form.
func (a AccountName) String() string {
	return strings.Join(a, ":")
}

// Equal reports whether a and b have identical segments.
func (a AccountName) Equal(b AccountName) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsParentOf reports whether a is a strict ancestor of b.
// A name is never its own parent.
func (a AccountName) IsParentOf(b AccountName) bool {
	if len(a) >= len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
