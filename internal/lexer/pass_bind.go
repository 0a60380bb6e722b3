package lexer

import (
	"sort"

	"github.com/cursorgroup/sqlbind/internal/token"
)

// passBind extracts bind-variable placeholders: a ':' plus the following
// run of identifier characters, with an optional ':indicator' suffix
// immediately following (no intervening whitespace — that form is left to
// passBindReconcile). The SQL ':=' assignment operator is excluded so it
// remains available to the connector pass.
func (lx *lexer) passBind() {
	buf := lx.buf
	for i := 0; i < len(buf); i++ {
		if buf[i] != ':' {
			continue
		}
		if i+1 < len(buf) && buf[i+1] == '=' {
			continue // assignment operator, not a bind
		}
		start := i
		j := i + 1
		for j < len(buf) && isIdentChar(buf[j]) {
			j++
		}
		// optional ':indicator' suffix, no whitespace allowed
		if j < len(buf) && buf[j] == ':' {
			k := j + 1
			for k < len(buf) && isIdentChar(buf[k]) {
				k++
			}
			if k > j+1 {
				j = k
			}
		}
		text := string(buf[start:j])
		lx.emit(start, text, token.Bind)
		lx.blank(start, j-start)
		i = j - 1
	}
}

// passBindReconcile merges a bare ':' bind token with the ident token that
// immediately follows it — the whitespace- or quote-separated bind-name
// form the spec defers to reconciliation, e.g. ":  ph1" or `:  "Name"`.
// Adjacency is decided by nearest-following offset with a whitespace-only
// gap, rather than by pass-insertion order, so that a statement with
// several reconciled binds associates each with its own name rather than
// the one next emitted by an unrelated pass.
func (lx *lexer) passBindReconcile() {
	byStart := append([]token.Token(nil), lx.tokens...)
	sort.Slice(byStart, func(i, j int) bool { return byStart[i].Start < byStart[j].Start })

	consumed := make(map[int]bool) // index into byStart of idents absorbed into a bind
	merges := make(map[int]token.Token)

	for i, t := range byStart {
		if t.Kind != token.Bind || t.Text != ":" {
			continue
		}
		for j := i + 1; j < len(byStart); j++ {
			next := byStart[j]
			gapStart := t.Start + len(t.Text)
			if next.Start < gapStart {
				continue
			}
			gap := lx.orig[gapStart:next.Start]
			if !allSpace(gap) {
				break // non-whitespace before anything identifier-shaped: no reconciliation
			}
			if next.Kind != token.Ident {
				break
			}
			merges[i] = token.Token{Start: t.Start, Text: t.Text + string(gap) + next.Text, Kind: token.Bind}
			consumed[j] = true
			break
		}
	}

	out := make([]token.Token, 0, len(byStart))
	for i, t := range byStart {
		if consumed[i] {
			continue
		}
		if m, ok := merges[i]; ok {
			out = append(out, m)
			continue
		}
		out = append(out, t)
	}
	lx.tokens = out
}

func allSpace(b []byte) bool {
	for _, c := range b {
		if !isSpace(c) {
			return false
		}
	}
	return true
}
