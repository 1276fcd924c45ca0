package parser

import (
	"strings"

	"math-equation/internal/span"
)

// ---- navigation helpers ----

// mark is a saved cursor state, used for lookahead that must rewind.
type mark struct {
	pos  int
	line int
	col  int
}

// save captures the current cursor state.
func (p *Parser) save() mark {
	return mark{pos: p.pos, line: p.line, col: p.col}
}

// restore rewinds the cursor to a previously saved state.
func (p *Parser) restore(m mark) {
	p.pos = m.pos
	p.line = m.line
	p.col = m.col
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.source)
}

// peek returns the current character without advancing, or 0 if at end.
func (p *Parser) peek() byte {
	if p.pos >= len(p.source) {
		return 0
	}
	return p.source[p.pos]
}

// peekNext returns the character after current, or 0 if at end.
func (p *Parser) peekNext() byte {
	if p.pos+1 >= len(p.source) {
		return 0
	}
	return p.source[p.pos+1]
}

// consume advances one character, tracking line and column. At end of
// input it is a no-op; callers guard with predicates first.
func (p *Parser) consume() {
	if p.pos >= len(p.source) {
		return
	}
	if p.source[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

// startsWith reports whether the remaining input begins with lit.
func (p *Parser) startsWith(lit string) bool {
	return strings.HasPrefix(p.source[p.pos:], lit)
}

// matchLit consumes lit if the input starts with it and reports whether
// it did. The check is all-or-nothing: on a miss the cursor does not move.
func (p *Parser) matchLit(lit string) bool {
	if !p.startsWith(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		p.consume()
	}
	return true
}

// skipWhitespace consumes a maximal run of spaces, tabs, newlines, and
// carriage returns.
func (p *Parser) skipWhitespace() {
	for !p.atEnd() {
		switch p.source[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.consume()
		default:
			return
		}
	}
}

// curPos returns the current position as a span.Position.
func (p *Parser) curPos() span.Position {
	return span.Position{Offset: p.pos, Line: p.line, Column: p.col}
}

// makeSpan returns a span from start to the current position.
func (p *Parser) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: p.curPos()}
}

// hereSpan returns a span covering the current character, or an empty
// span at end of input.
func (p *Parser) hereSpan() span.Span {
	start := p.curPos()
	end := start
	if !p.atEnd() {
		end.Offset++
		end.Column++
	}
	return span.Span{Start: start, End: end}
}

// ---- character classes ----

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_'
}
