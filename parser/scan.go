package parser

// Low-level scanning primitives.
//
// The grammar is whitespace- and indentation-sensitive, so instead of a token
// buffer the parser works directly on the source bytes with a movable cursor.
// Alternatives are tried in a fixed order with position-based backtracking:
// save a mark, attempt a branch, restore on failure.

import "github.com/journalhq/journal/ast"

// Inline whitespace is space, tab and a literal non-breaking space.
// Newlines are never whitespace; the grammar is line-oriented.
const (
	nbsp0 = 0xC2 // First byte of UTF-8 U+00A0.
	nbsp1 = 0xA0
)

// mark is a saved cursor position for backtracking.
type mark struct {
	pos       int
	line      int
	lineStart int
}

func (p *Parser) mark() mark {
	return mark{pos: p.pos, line: p.line, lineStart: p.lineStart}
}

func (p *Parser) reset(m mark) {
	p.pos = m.pos
	p.line = m.line
	p.lineStart = m.lineStart
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.source)
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.source) {
		return 0
	}
	return p.source[p.pos]
}

func (p *Parser) peekAt(n int) byte {
	if p.pos+n >= len(p.source) {
		return 0
	}
	return p.source[p.pos+n]
}

func (p *Parser) advance() byte {
	if p.pos >= len(p.source) {
		return 0
	}
	ch := p.source[p.pos]
	p.pos++
	if ch == '\n' {
		p.line++
		p.lineStart = p.pos
	}
	return ch
}

// matchByte consumes ch if it is next.
func (p *Parser) matchByte(ch byte) bool {
	if p.peek() != ch {
		return false
	}
	p.advance()
	return true
}

// atNBSP reports whether the cursor is on a UTF-8 non-breaking space.
func (p *Parser) atNBSP() bool {
	return p.peek() == nbsp0 && p.peekAt(1) == nbsp1
}

// atInlineSpace reports whether the cursor is on inline whitespace.
func (p *Parser) atInlineSpace() bool {
	ch := p.peek()
	return ch == ' ' || ch == '\t' || p.atNBSP()
}

// skipInlineSpace consumes inline whitespace and returns the number of
// columns skipped; a tab counts as two so it satisfies the grammar's
// "at least two spaces" separators.
func (p *Parser) skipInlineSpace() int {
	n := 0
	for {
		switch {
		case p.peek() == ' ':
			p.advance()
			n++
		case p.peek() == '\t':
			p.advance()
			n += 2
		case p.atNBSP():
			p.advance()
			p.advance()
			n++
		default:
			return n
		}
	}
}

// atHardSeparator reports whether the cursor is on the "two or more spaces"
// separator that ends account names and introduces posting amounts.
func (p *Parser) atHardSeparator() bool {
	if p.peek() == '\t' {
		return true
	}
	if p.peek() != ' ' {
		return false
	}
	next := p.peekAt(1)
	return next == ' ' || next == '\t'
}

// atEOL reports whether the cursor is at a line end (newline or EOF).
func (p *Parser) atEOL() bool {
	return p.eof() || p.peek() == '\n' || (p.peek() == '\r' && p.peekAt(1) == '\n')
}

// restOfLine consumes the remainder of the line up to, but not including,
// the newline.
func (p *Parser) restOfLine() string {
	start := p.pos
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}
	end := p.pos
	if end > start && p.source[end-1] == '\r' {
		end--
	}
	return string(p.source[start:end])
}

// skipToNextLine consumes through the next newline. This is the error
// recovery resynchronization point.
func (p *Parser) skipToNextLine() {
	for !p.eof() {
		if p.advance() == '\n' {
			return
		}
	}
}

// matchNewline consumes a line ending.
func (p *Parser) matchNewline() bool {
	if p.peek() == '\r' && p.peekAt(1) == '\n' {
		p.advance()
		p.advance()
		return true
	}
	return p.matchByte('\n')
}

// scanWord consumes a run of ASCII letters.
func (p *Parser) scanWord() string {
	start := p.pos
	for isLetter(p.peek()) {
		p.advance()
	}
	return string(p.source[start:p.pos])
}

// scanDigits consumes a run of ASCII digits.
func (p *Parser) scanDigits() string {
	start := p.pos
	for isDigit(p.peek()) {
		p.advance()
	}
	return string(p.source[start:p.pos])
}

// matchWord consumes the exact word followed by a word boundary.
func (p *Parser) matchWord(word string) bool {
	m := p.mark()
	for i := 0; i < len(word); i++ {
		if !p.matchByte(word[i]) {
			p.reset(m)
			return false
		}
	}
	if isLetter(p.peek()) || isDigit(p.peek()) {
		p.reset(m)
		return false
	}
	return true
}

func (p *Parser) position() ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   p.pos,
		Line:     p.line,
		Column:   p.pos - p.lineStart + 1,
	}
}

func (p *Parser) positionAt(m mark) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   m.pos,
		Line:     m.line,
		Column:   m.pos - m.lineStart + 1,
	}
}

// spanFrom builds a span from a saved mark to the current cursor.
func (p *Parser) spanFrom(m mark) ast.Span {
	return ast.Span{Start: m.pos, End: p.pos}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
