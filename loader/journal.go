package loader

import (
	"iter"

	"github.com/journalhq/journal/ast"
)

// Journal is one loaded file and the journals its include directives pulled
// in, in include order.
type Journal struct {
	Path       string
	Directives ast.Directives
	Includes   []*Journal
}

// Merge replaces the subtree whose path matches other's path with other,
// wholesale. The search is depth-first and stops at the first matching
// path. Returns false when no node matched.
//
// This is the incremental-update primitive: on a file-change notification
// the changed file is reloaded alone and merged into the standing tree
// instead of reloading everything.
func (j *Journal) Merge(other *Journal) bool {
	if j.Path == other.Path {
		j.Directives = other.Directives
		j.Includes = other.Includes
		return true
	}
	for _, inc := range j.Includes {
		if inc.Merge(other) {
			return true
		}
	}
	return false
}

// Paths returns the file paths of the journal and every included journal,
// depth-first.
func (j *Journal) Paths() []string {
	paths := []string{j.Path}
	for _, inc := range j.Includes {
		paths = append(paths, inc.Paths()...)
	}
	return paths
}

// Walk visits the journal and every included journal, depth-first.
func (j *Journal) Walk() iter.Seq[*Journal] {
	return func(yield func(*Journal) bool) {
		j.walk(yield)
	}
}

func (j *Journal) walk(yield func(*Journal) bool) bool {
	if !yield(j) {
		return false
	}
	for _, inc := range j.Includes {
		if !inc.walk(yield) {
			return false
		}
	}
	return true
}

// Transactions iterates the simple transactions of the whole tree,
// depth-first in file order, lazily.
func (j *Journal) Transactions() iter.Seq[*ast.Transaction] {
	return func(yield func(*ast.Transaction) bool) {
		for journal := range j.Walk() {
			for _, txn := range journal.Directives.Transactions() {
				if !yield(txn) {
					return
				}
			}
		}
	}
}

// Directive count over the whole tree.
func (j *Journal) DirectiveCount() int {
	n := 0
	for journal := range j.Walk() {
		n += len(journal.Directives)
	}
	return n
}
