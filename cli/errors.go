package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/journalhq/journal/errors"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
// The plain rendering comes from the errors package; this only colors it.
type ErrorRenderer struct {
	formatter *errors.TextFormatter
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{
		formatter: errors.NewTextFormatter(errors.WithSource(source)),
	}
}

// Render formats a single error with styling and context. Aggregated errors
// expand into one block per diagnostic.
func (r *ErrorRenderer) Render(err error) string {
	return r.RenderAll(errors.Expand(err))
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(r.stylize(r.formatter.Format(err)))
		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

// stylize colors a formatted diagnostic: the message line red, source
// context dimmed, caret markers red.
func (r *ErrorRenderer) stylize(formatted string) string {
	lines := strings.Split(formatted, "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = errorStyle.Render(line)
		case strings.Contains(line, "^") && strings.TrimLeft(line, " ^") == "":
			lines[i] = errCaretStyle.Render(line)
		case line != "":
			lines[i] = errContextStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
