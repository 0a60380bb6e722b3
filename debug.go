package sqlbind

import (
	"encoding/json"
	"sync/atomic"
)

func storeFlag(addr *int32, v int32) { atomic.StoreInt32(addr, v) }
func loadFlag(addr *int32) int32     { return atomic.LoadInt32(addr) }

// jsonify renders v as a compact JSON string for log lines; marshal errors
// are swallowed since every caller here passes a trivially marshalable
// value.
func jsonify(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// kindColumnWidth is the fixed column width DebugPrintTokens right-aligns
// kind names into: the length of the longest kind name ("keyword" and
// "comment" both tie at 7).
var kindColumnWidth = func() int {
	width := 0
	for _, k := range []Kind{Keyword, Ident, Bind, Number, String, Hint, Comment, Conn} {
		if n := len(k.String()); n > width {
			width = n
		}
	}
	return width
}()

// DebugPrintTokens logs the token stream produced for stmt, one line per
// token, when c's log flag is enabled: the kind right-aligned to
// kindColumnWidth followed by the token's quoted payload. It is a no-op
// otherwise and never participates in Tokenize/BoundStmt's return values.
func (c *Context) DebugPrintTokens(stmt string) {
	if loadFlag(c.logging) == 0 {
		return
	}
	stream := tokenizeStream(c, stmt)
	n := stream.Len()
	for i := 0; i < n; i++ {
		t := stream.At(i)
		c.logger.Printf("%*s %q", kindColumnWidth, t.Kind.String(), t.Text)
	}
}

// DebugPrintTokens logs against the default Context.
func DebugPrintTokens(stmt string) { Default().DebugPrintTokens(stmt) }
