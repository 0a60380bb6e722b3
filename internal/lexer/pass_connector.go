package lexer

import "github.com/cursorgroup/sqlbind/internal/token"

// passConnector fills every byte range of the working buffer (the source
// plus the trailing sentinel) not already claimed by an earlier pass with a
// Conn token, so the final stream has no gaps; clip later drops or trims
// the part that lies in the sentinel. It must run last.
func (lx *lexer) passConnector(srcLen int) {
	claimed := make([]bool, srcLen+sentinel)
	for _, t := range lx.tokens {
		for i := t.Start; i < t.Start+len(t.Text) && i < len(claimed); i++ {
			claimed[i] = true
		}
	}

	i := 0
	for i < len(claimed) {
		if claimed[i] {
			i++
			continue
		}
		start := i
		for i < len(claimed) && !claimed[i] {
			i++
		}
		lx.emit(start, string(lx.buf[start:i]), token.Conn)
	}
}
