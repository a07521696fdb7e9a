// Package loader composes journal files into a journal tree.
//
// Loading a file parses it, expands each journal-format include directive's
// path as a glob pattern relative to the including file's directory, and
// recursively loads every match. File reads and parses run concurrently with
// a bounded fan-out; the include order in the resulting tree follows glob
// match order, never completion order.
//
// Example usage:
//
//	journal, err := loader.Load(ctx, "main.journal")
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/journalhq/journal/ast"
	"github.com/journalhq/journal/parser"
	"github.com/journalhq/journal/telemetry"
)

// DefaultMaxInFlight bounds how many file loads may run concurrently for
// one Load call.
const DefaultMaxInFlight = 1024

// Loader loads journal files with recursive include resolution.
type Loader struct {
	maxInFlight int
	parserOpts  []parser.Option
}

// Option configures a Loader.
type Option func(*Loader)

// WithMaxInFlight bounds the number of concurrent file loads.
func WithMaxInFlight(n int) Option {
	return func(l *Loader) {
		l.maxInFlight = n
	}
}

// WithParserOptions passes options through to every file's parse.
func WithParserOptions(opts ...parser.Option) Option {
	return func(l *Loader) {
		l.parserOpts = append(l.parserOpts, opts...)
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{maxInFlight: DefaultMaxInFlight}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads the journal tree rooted at path using a default Loader.
func Load(ctx context.Context, path string, opts ...Option) (*Journal, error) {
	return New(opts...).Load(ctx, path)
}

// Load loads path and, recursively, every journal-format include it names.
// A failure anywhere in the tree fails the whole load; when siblings fail
// concurrently the error of the first failing include, in include order,
// is reported.
func (l *Loader) Load(ctx context.Context, path string) (*Journal, error) {
	sem := make(chan struct{}, l.maxInFlight)
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("load %s", filepath.Base(path)))
	defer timer.End()
	return l.load(ctx, path, sem, timer)
}

func (l *Loader) load(ctx context.Context, path string, sem chan struct{}, timer telemetry.Timer) (*Journal, error) {
	directives, err := l.parseFile(ctx, path, sem)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	journal := &Journal{Path: path, Directives: directives}

	paths, err := expandIncludes(path, directives)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if len(paths) == 0 {
		return journal, nil
	}

	// Load siblings concurrently, collect by index so the tree order is
	// deterministic and the reported error is the first by include order.
	children := make([]*Journal, len(paths))
	errs := make([]error, len(paths))
	var group errgroup.Group
	for i, includePath := range paths {
		// Child timers are created here, not in the goroutine, so the
		// reported tree follows include order rather than completion order.
		child := timer.Child(filepath.Base(includePath))
		group.Go(func() error {
			children[i], errs[i] = l.load(ctx, includePath, sem, child)
			child.End()
			return nil
		})
	}
	_ = group.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	journal.Includes = children
	return journal, nil
}

// parseFile reads and parses one file under the concurrency bound.
func (l *Loader) parseFile(ctx context.Context, path string, sem chan struct{}) (ast.Directives, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-sem }()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := append([]parser.Option{parser.WithFilename(path)}, l.parserOpts...)
	return parser.Parse(data, opts...)
}

// expandIncludes resolves the journal-format include directives of one file
// to the list of paths to load, in directive order with glob matches in
// lexical order.
func expandIncludes(path string, directives ast.Directives) ([]string, error) {
	dir := filepath.Dir(path)

	var paths []string
	for _, inc := range directives.Includes() {
		if !inc.IsJournal() {
			continue
		}
		pattern := inc.Path
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(dir, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, &GlobError{Pattern: inc.Path, Err: err}
		}
		// Overlapping patterns may match the same file; load it once.
		for _, match := range matches {
			if !slices.Contains(paths, match) {
				paths = append(paths, match)
			}
		}
	}
	return paths, nil
}

// Error wraps the failure of one file in the journal tree. The wrapped error
// is an I/O error, a GlobError, or a parser.ErrorList.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// GlobError is a malformed include glob pattern.
type GlobError struct {
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("invalid include pattern %q: %v", e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }
