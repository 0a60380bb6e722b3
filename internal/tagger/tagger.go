// Package tagger implements the semantic pass that identifies
// partition-name identifiers by their local structural context. It never
// mutates a token's Kind — the result is a side table keyed by token start
// offset, preserving the invariant that tokenization is independent of
// later semantic passes.
package tagger

import (
	"strings"

	"github.com/cursorgroup/sqlbind/internal/token"
)

// PartitionNames walks stream looking for `PARTITION <ident>` and
// `PARTITION ( <ident> )`, in either case allowing the connectors around
// the name to carry incidental whitespace. It returns the set of token
// start offsets that name a partition.
func PartitionNames(stream *token.Stream) map[int]bool {
	tagged := map[int]bool{}
	n := stream.Len()
	for i := 0; i < n; i++ {
		t := stream.At(i)
		if t.Kind != token.Keyword || strings.ToLower(t.Text) != "partition" {
			continue
		}
		if ident, ok := matchBare(stream, i); ok {
			tagged[ident.Start] = true
			continue
		}
		if ident, ok := matchParenthesized(stream, i); ok {
			tagged[ident.Start] = true
		}
	}
	return tagged
}

// matchBare matches `PARTITION <whitespace-conn> <ident>` starting at the
// PARTITION keyword index i.
func matchBare(stream *token.Stream, i int) (token.Token, bool) {
	if i+2 >= stream.Len() {
		return token.Token{}, false
	}
	conn := stream.At(i + 1)
	ident := stream.At(i + 2)
	if conn.Kind != token.Conn || strings.TrimSpace(conn.Text) != "" {
		return token.Token{}, false
	}
	if ident.Kind != token.Ident {
		return token.Token{}, false
	}
	return ident, true
}

// matchParenthesized matches `PARTITION ( <ident> )`, tolerating whitespace
// inside either connector.
func matchParenthesized(stream *token.Stream, i int) (token.Token, bool) {
	if i+3 >= stream.Len() {
		return token.Token{}, false
	}
	open := stream.At(i + 1)
	ident := stream.At(i + 2)
	close_ := stream.At(i + 3)
	if open.Kind != token.Conn || strings.TrimSpace(open.Text) != "(" {
		return token.Token{}, false
	}
	if ident.Kind != token.Ident {
		return token.Token{}, false
	}
	if close_.Kind != token.Conn || strings.TrimSpace(close_.Text) != ")" {
		return token.Token{}, false
	}
	return ident, true
}
