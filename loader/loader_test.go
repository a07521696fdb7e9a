package loader

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/journalhq/journal/ast"
	"github.com/journalhq/journal/parser"
	"github.com/journalhq/journal/telemetry"
)

// write creates a file under dir, creating intermediate directories.
func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	main := write(t, dir, "main.journal", "account assets:cash\n2024-01-01 coffee\n    expenses:food  $4.50\n    assets:cash\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)
	assert.Equal(t, main, journal.Path)
	assert.Equal(t, 2, len(journal.Directives))
	assert.Equal(t, 0, len(journal.Includes))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.journal"))

	var loadErr *Error
	assert.True(t, errors.As(err, &loadErr), "expected a loader.Error, got %T", err)
	assert.True(t, os.IsNotExist(loadErr.Err), "expected a not-exist error, got %v", loadErr.Err)
}

func TestLoadIncludeGlob(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "2024/02-feb.journal", "2024-02-01 b\n")
	write(t, dir, "2024/01-jan.journal", "2024-01-01 a\n")
	main := write(t, dir, "main.journal", "include 2024/*.journal\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)

	// Glob matches come back in lexical order regardless of creation order.
	assert.Equal(t, []string{
		main,
		filepath.Join(dir, "2024", "01-jan.journal"),
		filepath.Join(dir, "2024", "02-feb.journal"),
	}, journal.Paths())
}

func TestLoadNestedIncludes(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "sub/deep.journal", "2024-01-02 deep\n")
	write(t, dir, "sub/mid.journal", "include deep.journal\n2024-01-01 mid\n")
	main := write(t, dir, "main.journal", "include sub/mid.journal\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(journal.Includes))
	assert.Equal(t, 1, len(journal.Includes[0].Includes))
	assert.Equal(t, 3, len(journal.Paths()))
	assert.Equal(t, 4, journal.DirectiveCount())

	var payees []string
	for txn := range journal.Transactions() {
		payees = append(payees, txn.Payee)
	}
	assert.Equal(t, []string{"mid", "deep"}, payees)
}

func TestLoadOverlappingIncludePatterns(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "sub/a.journal", "2024-01-01 a\n")
	main := write(t, dir, "main.journal", "include sub/*.journal\ninclude sub/a.journal\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(journal.Includes))
}

func TestLoadNonJournalIncludesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	main := write(t, dir, "main.journal", "include timedot:notes.timedot\n2024-01-01 a\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(journal.Includes))
}

func TestLoadParseErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	bad := write(t, dir, "bad.journal", "frobnicate\n")
	main := write(t, dir, "main.journal", "include bad.journal\n")

	_, err := Load(context.Background(), main)

	var loadErr *Error
	assert.True(t, errors.As(err, &loadErr), "expected a loader.Error, got %T", err)
	assert.Equal(t, bad, loadErr.Path)

	var list parser.ErrorList
	assert.True(t, errors.As(err, &list), "expected a parser.ErrorList, got %v", err)
	assert.Equal(t, 1, len(list))
}

func TestLoadFirstIncludeErrorWins(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.journal", "frobnicate\n")
	write(t, dir, "b.journal", "also bad\n")
	main := write(t, dir, "main.journal", "include a.journal\ninclude b.journal\n")

	_, err := Load(context.Background(), main)

	var loadErr *Error
	assert.True(t, errors.As(err, &loadErr), "expected a loader.Error, got %T", err)
	assert.Equal(t, filepath.Join(dir, "a.journal"), loadErr.Path)
}

func TestLoadCancelledContext(t *testing.T) {
	dir := t.TempDir()
	main := write(t, dir, "main.journal", "2024-01-01 a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, main)
	assert.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got %v", err)
}

func TestLoadWithParserOptions(t *testing.T) {
	dir := t.TempDir()
	main := write(t, dir, "main.journal", "01/31 payday\n")

	journal, err := Load(context.Background(), main,
		WithParserOptions(parser.WithToday(ast.NewDate(2011, time.June, 1))))
	assert.NoError(t, err)

	txns := journal.Directives.Transactions()
	assert.Equal(t, 1, len(txns))
	assert.Equal(t, 2011, txns[0].Date.Year)
}

func TestLoadRecordsTimings(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "sub/deep.journal", "2024-01-02 deep\n")
	write(t, dir, "a.journal", "include sub/deep.journal\n")
	write(t, dir, "b.journal", "2024-01-01 b\n")
	main := write(t, dir, "main.journal", "include a.journal\ninclude b.journal\n")

	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)
	_, err := Load(ctx, main)
	assert.NoError(t, err)

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	report := buf.String()

	// One node per file, nested by include structure.
	assert.True(t, strings.HasPrefix(report, "load main.journal:"), "unexpected report root: %q", report)
	assert.True(t, strings.Contains(report, "├─ a.journal:"), "missing a.journal in %q", report)
	assert.True(t, strings.Contains(report, "│  └─ deep.journal:"), "deep.journal not nested under a.journal in %q", report)
	assert.True(t, strings.Contains(report, "└─ b.journal:"), "missing b.journal in %q", report)
}

func TestMergeReplacesSubtree(t *testing.T) {
	dir := t.TempDir()
	inc := write(t, dir, "inc.journal", "2024-01-01 before\n")
	main := write(t, dir, "main.journal", "include inc.journal\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(inc, []byte("2024-01-01 after\n2024-01-02 second\n"), 0o644))
	subtree, err := Load(context.Background(), inc)
	assert.NoError(t, err)

	assert.True(t, journal.Merge(subtree))

	var payees []string
	for txn := range journal.Transactions() {
		payees = append(payees, txn.Payee)
	}
	assert.Equal(t, []string{"after", "second"}, payees)
}

func TestMergeUnknownPath(t *testing.T) {
	dir := t.TempDir()
	main := write(t, dir, "main.journal", "2024-01-01 a\n")

	journal, err := Load(context.Background(), main)
	assert.NoError(t, err)

	assert.False(t, journal.Merge(&Journal{Path: filepath.Join(dir, "other.journal")}))
}

func TestLoadBoundedConcurrency(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		write(t, dir, name+".journal", "2024-01-01 "+name+"\n")
	}
	main := write(t, dir, "main.journal", "include a.journal\ninclude b.journal\ninclude c.journal\ninclude d.journal\n")

	// A single permit forces the loads to run one at a time; the tree order
	// must still follow include order.
	journal, err := New(WithMaxInFlight(1)).Load(context.Background(), main)
	assert.NoError(t, err)

	var payees []string
	for txn := range journal.Transactions() {
		payees = append(payees, txn.Payee)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, payees)
}
