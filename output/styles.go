// Package output provides styling helpers for terminal output.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles provides styled output helpers for the CLI. Styling is disabled
// automatically when the writer is not a terminal.
type Styles struct {
	enabled bool

	success  lipgloss.Style
	error    lipgloss.Style
	filePath lipgloss.Style
	account  lipgloss.Style
	amount   lipgloss.Style
	keyword  lipgloss.Style
	dim      lipgloss.Style
	warning  lipgloss.Style
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return &Styles{
		enabled:  enabled,
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		filePath: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		account:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		amount:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		keyword:  lipgloss.NewStyle().Bold(true),
		dim:      lipgloss.NewStyle().Faint(true),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string { return s.render(s.success, text) }

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string { return s.render(s.error, text) }

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string { return s.render(s.filePath, text) }

// Account returns a styled account name (yellow).
func (s *Styles) Account(text string) string { return s.render(s.account, text) }

// Amount returns a styled amount/commodity (magenta).
func (s *Styles) Amount(text string) string { return s.render(s.amount, text) }

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string { return s.render(s.keyword, text) }

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string { return s.render(s.dim, text) }

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string { return s.render(s.warning, text) }

// Timing returns a styled timing string. Slow operations show in red,
// everything else dimmed.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color("1")), text)
	}
	return s.Dim(text)
}
