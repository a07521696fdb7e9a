package parser

import "strings"

// Comment handling. Line comments ("# ..." and top-level "; ...") and block
// comments ("comment" ... "end comment") are parsed and discarded; inline
// comments ("; ..." after a directive payload) are captured where the node
// keeps them and discarded elsewhere.

// skipBlockComment consumes the lines of a "comment" block up to and
// including the "end comment" line. An unterminated block runs to EOF.
func (p *Parser) skipBlockComment() {
	// The "comment" keyword itself was already consumed.
	p.skipToNextLine()

	for !p.eof() {
		m := p.mark()
		p.skipInlineSpace()
		if p.matchWord("end") {
			p.skipInlineSpace()
			if p.matchWord("comment") {
				p.skipToNextLine()
				return
			}
		}
		p.reset(m)
		p.skipToNextLine()
	}
}

// parseInlineComment consumes a ";" comment to end of line and returns its
// text without the marker. Continuation lines (indented, prefixed with ";")
// are consumed by the transaction parser, which joins them with "\n".
func (p *Parser) parseInlineComment() string {
	p.matchByte(';')
	text := p.restOfLine()
	return strings.TrimPrefix(text, " ")
}

// endDirectiveLine consumes optional trailing whitespace and an optional
// inline comment, then the line ending. Directive-level trailing comments
// are captured here and discarded.
func (p *Parser) endDirectiveLine() {
	p.skipInlineSpace()
	if p.peek() == ';' {
		_ = p.parseInlineComment()
	}
	if !p.atEOL() {
		m := p.mark()
		text := p.restOfLine()
		p.errorHere(m, "unexpected trailing text %s", quote(text))
	}
	p.matchNewline()
}
