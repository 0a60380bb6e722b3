// Package lexer implements the SQL tokenizer: five ordered extraction
// passes over a mutable working buffer plus a final connector-filling pass,
// per the dialect's context-sensitive lexing rules (signed numeric
// literals, scientific notation, doubled-quote string escapes,
// whitespace-separated bind names).
//
// The tokenizer is total: every input produces a token stream, and
// unterminated sections (a missing closing */, ", ' or end-of-line after
// --) are closed implicitly at end-of-input.
package lexer

import (
	"sort"
	"strings"

	"github.com/cursorgroup/sqlbind/internal/keyword"
	"github.com/cursorgroup/sqlbind/internal/token"
)

// sentinel is the number of trailing spaces the tokenizer appends to its
// working buffer so lookahead code never runs off the end of the slice.
// They are stripped back out of the observable token stream.
const sentinel = 2

// lexer holds the per-invocation mutable state for one Tokenize call. Not
// safe for concurrent use — callers get a fresh lexer per statement.
type lexer struct {
	buf  []byte // working buffer; extracted regions are blanked to ' '
	orig []byte // untouched snapshot of buf, read by the number pass (its
	// sign-eligibility lookback and the number payload, which can span a
	// sign already passed over) and by bind reconciliation (the whitespace
	// gap between ':' and the name), none of which the partially-blanked
	// working buffer still holds reliably.
	kw     *keyword.Set
	tokens []token.Token // in pass-insertion order, not offset order
}

// Tokenize converts stmt into a gap-free, offset-ordered token stream. It
// never fails and has no error return: every input, including a truncated
// one, yields a stream.
func Tokenize(kw *keyword.Set, stmt string) *token.Stream {
	if stmt == "" {
		return token.New(nil)
	}

	srcLen := len(stmt)
	buf := []byte(strings.ReplaceAll(stmt, "\r", " "))
	for i := 0; i < sentinel; i++ {
		buf = append(buf, ' ')
	}
	orig := append([]byte(nil), buf...)

	lx := &lexer{buf: buf, orig: orig, kw: kw}
	lx.passStringLike()
	lx.passBind()
	lx.passIdent()
	lx.passNumber()
	lx.passBindReconcile()
	lx.passConnector(srcLen)

	lx.clip(srcLen)
	sort.Slice(lx.tokens, func(i, j int) bool {
		return lx.tokens[i].Start < lx.tokens[j].Start
	})
	return token.New(lx.tokens)
}

// clip drops tokens that fall entirely within the trailing sentinel and
// truncates any token that bled into it — an unterminated
// string/comment/quote that ran off the end of input, or a trailing
// connector run that passConnector extended over the sentinel.
func (lx *lexer) clip(srcLen int) {
	out := lx.tokens[:0]
	for _, t := range lx.tokens {
		if t.Start >= srcLen {
			continue
		}
		if end := t.Start + len(t.Text); end > srcLen {
			t.Text = t.Text[:srcLen-t.Start]
		}
		out = append(out, t)
	}
	lx.tokens = out
}

func (lx *lexer) emit(start int, text string, kind token.Kind) {
	lx.tokens = append(lx.tokens, token.Token{Start: start, Text: text, Kind: kind})
}

// blank overwrites buf[start:start+n] with spaces, removing it from
// consideration by later passes while leaving orig untouched.
func (lx *lexer) blank(start, n int) {
	for i := start; i < start+n; i++ {
		lx.buf[i] = ' '
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_' || b == '$' || b == '#'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f'
}

// isOperatorByte reports whether b is one of the operator characters that
// make a following sign eligible for absorption into a number literal.
func isOperatorByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '(', '=', '<', '>', '|', ',', '[':
		return true
	}
	return false
}
