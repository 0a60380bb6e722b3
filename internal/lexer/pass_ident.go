package lexer

import (
	"strings"

	"github.com/cursorgroup/sqlbind/internal/token"
)

// passIdent extracts keywords and identifiers from the remaining working
// buffer. It must run after passStringLike and passBind, which have
// already blanked out quoted spans, comments and binds, and before
// passNumber, which relies on the scientific-notation guard here having
// left exponent-marker 'e'/'E' characters unclaimed.
func (lx *lexer) passIdent() {
	buf := lx.buf
	i := 0
	for i < len(buf) {
		c := buf[i]
		if !isAlpha(c) {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && lx.isExponentMarker(i) {
			i++ // leave it for passNumber
			continue
		}
		start := i
		j := i + 1
		for j < len(buf) && isIdentChar(buf[j]) {
			j++
		}
		text := string(buf[start:j])
		kind := token.Ident
		if lx.kw.Has(strings.ToLower(text)) {
			kind = token.Keyword
		}
		lx.emit(start, text, kind)
		lx.blank(start, j-start)
		i = j
	}
}

// isExponentMarker implements the four-character lookahead/lookbehind
// window [c-2][c-1] e [c+1][c+2]: e/E is the exponent marker of a numeric
// literal, not the start of an identifier, when it is preceded by a digit
// (or a '.' itself preceded by a digit) and followed by a digit, or by a
// sign followed by a digit. Out-of-range positions default to a non-digit
// sentinel so edge-of-buffer lookups never panic.
func (lx *lexer) isExponentMarker(i int) bool {
	buf := lx.buf
	at := func(p int) byte {
		if p < 0 || p >= len(buf) {
			return 0
		}
		return buf[p]
	}

	prev1, prev2 := at(i-1), at(i-2)
	prevOK := isDigit(prev1) || (prev1 == '.' && isDigit(prev2))
	if !prevOK {
		return false
	}

	next1, next2 := at(i+1), at(i+2)
	nextOK := isDigit(next1) || ((next1 == '+' || next1 == '-') && isDigit(next2))
	return nextOK
}
