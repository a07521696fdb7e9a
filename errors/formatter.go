// Package errors provides error formatting for journal diagnostics. It
// separates presentation from the parser and loader: the same errors render
// as annotated source context for the CLI or as structured JSON for
// machine consumers.
package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/journalhq/journal/ast"
	"github.com/journalhq/journal/loader"
	"github.com/journalhq/journal/parser"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// Expand flattens aggregated errors into their individual diagnostics: a
// parser.ErrorList becomes one error per parse failure and a loader.Error
// unwraps to its cause. Other errors pass through untouched.
func Expand(err error) []error {
	var loadErr *loader.Error
	if errors.As(err, &loadErr) {
		return Expand(loadErr.Err)
	}
	var list parser.ErrorList
	if errors.As(err, &list) {
		out := make([]error, len(list))
		for i, e := range list {
			out[i] = e
		}
		return out
	}
	return []error{err}
}

// TextFormatter renders errors with annotated source context when the
// source is available.
type TextFormatter struct {
	source []byte
}

// TextFormatterOption configures a TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the source content used to render error context.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.source = source
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error. Parse errors with available source render
// as the message followed by the offending line and a caret marker.
func (tf *TextFormatter) Format(err error) string {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) && tf.source != nil {
		return tf.formatWithSourceContext(parseErr)
	}

	if e, ok := err.(interface {
		GetPosition() ast.Position
		Error() string
	}); ok && tf.source != nil {
		return tf.formatWithSourceContext(&parser.ParseError{
			Pos:     e.GetPosition(),
			Message: e.Error(),
		})
	}

	return err.Error()
}

// FormatAll formats multiple errors, separated by blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))
		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

// formatWithSourceContext renders the error message, the source lines
// around the error, and caret markers under the error's span.
func (tf *TextFormatter) formatWithSourceContext(e *parser.ParseError) string {
	var buf bytes.Buffer
	buf.WriteString(e.Error())
	buf.WriteString("\n\n")

	lines := strings.Split(string(tf.source), "\n")
	pos := e.Pos

	start := pos.Line - 3
	if start < 0 {
		start = 0
	}
	end := pos.Line + 1
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		line := strings.TrimRight(lines[i], "\r")
		buf.WriteString("   ")
		buf.WriteString(line)
		buf.WriteByte('\n')

		if i != pos.Line-1 || pos.Column <= 0 {
			continue
		}

		// Align the marker with display width, not byte count, so tabs
		// and wide runes keep the caret under the right character.
		prefix := line
		if pos.Column-1 < len(line) {
			prefix = line[:pos.Column-1]
		}
		buf.WriteString("   ")
		buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(prefix)))
		buf.WriteString(strings.Repeat("^", tf.markerWidth(e, line, pos.Column)))
		buf.WriteByte('\n')
	}

	return buf.String()
}

// markerWidth is the display width of the error span within its line, at
// least one column.
func (tf *TextFormatter) markerWidth(e *parser.ParseError, line string, column int) int {
	width := e.Span.End - e.Span.Start
	if width < 1 {
		return 1
	}
	if rest := len(line) - (column - 1); width > rest && rest > 0 {
		width = rest
	}
	if column-1 < len(line) {
		text := line[column-1:]
		if width < len(text) {
			text = text[:width]
		}
		if w := runewidth.StringWidth(text); w > 0 {
			return w
		}
	}
	return width
}

// JSONFormatter formats errors as structured JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents one error in JSON form.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
}

// PositionJSON represents a file position in JSON form.
type PositionJSON struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}
	if e, ok := err.(interface{ GetPosition() ast.Position }); ok {
		pos := e.GetPosition()
		errJSON.Position = &PositionJSON{
			Filename: pos.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
		}
	}
	return errJSON
}
