package cursorcache

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// LegacyDump reads a one-shot SQL text dump from a SQLite database file
// written by the cgo-backed mattn/go-sqlite3 driver — the reference
// implementation's own driver of choice — rather than the pure-Go
// modernc.org/sqlite driver Store uses. The two coexist deliberately: a
// cache being actively written by this process uses the pure-Go driver,
// while a one-shot import of a dump handed over from another system (which
// may have been produced by a cgo-linked tool) goes through this path.
type LegacyDump struct {
	path  string
	table string
	col   string
}

// NewLegacyDump reads the column named col (the full SQL text of each
// statement) from table in the SQLite file at path.
func NewLegacyDump(path, table, col string) *LegacyDump {
	return &LegacyDump{path: path, table: table, col: col}
}

// Statements streams every statement text in the dump to the returned
// channel, closing it when the read completes or fails. It mirrors the
// lazy-goroutine-over-a-channel shape of the reference SQLiteSource, scanning
// one bare column instead of a dynamic row shape.
func (d *LegacyDump) Statements(ctx context.Context) (<-chan string, error) {
	db, err := sql.Open("sqlite3", d.path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite does not support concurrent writers

	ch := make(chan string, 64)
	go func() {
		defer db.Close()
		defer close(ch)

		q := fmt.Sprintf(`SELECT %s FROM %s`, quoteIdent(d.col), quoteIdent(d.table))
		rows, err := db.QueryContext(ctx, q)
		if err != nil {
			return
		}
		defer rows.Close()

		for rows.Next() {
			var text string
			if err := rows.Scan(&text); err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case ch <- text:
			}
		}
	}()
	return ch, nil
}

func quoteIdent(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			out = append(out, '"', '"')
			continue
		}
		out = append(out, s[i])
	}
	out = append(out, '"')
	return string(out)
}

// Broker fans out GroupEvents as the cache discovers or updates canonical
// shapes, so a live "\watch" REPL session can tail the workload instead of
// re-querying the store. Subscribers match on a glob pattern against the
// canonical string, the same filepath.Match-based routing the reference
// pub/sub broker uses for its stream names.
type Broker struct {
	mu          sync.Mutex
	subscribers []*subscriber
}

// GroupEvent is published whenever Record observes a statement whose
// canonical form is new or whose seen_count just changed.
type GroupEvent struct {
	ID        string `json:"id"`
	Canonical string `json:"canonical"`
	RawText   string `json:"raw_text"`
	SeenCount int    `json:"seen_count"`
	TS        int64  `json:"ts"`
}

type subscriber struct {
	pattern string
	buf     chan GroupEvent
	closed  chan struct{}
}

// Publish delivers event to every subscriber whose pattern matches
// event.Canonical, dropping (rather than blocking on) any subscriber whose
// buffer is full or already closed.
func (b *Broker) Publish(ctx context.Context, event GroupEvent) int {
	b.mu.Lock()
	subs := b.subscribers
	b.mu.Unlock()

	var sent int
	for _, sub := range subs {
		matches, _ := filepath.Match(sub.pattern, event.Canonical)
		if !matches {
			continue
		}
		select {
		case <-ctx.Done():
			return sent
		case sub.buf <- event:
			sent++
		case <-sub.closed:
		default:
		}
	}
	return sent
}

// Subscribe returns a channel of GroupEvents whose canonical form matches
// pattern, and unsubscribes automatically when ctx is done.
func (b *Broker) Subscribe(ctx context.Context, pattern string) <-chan GroupEvent {
	newSub := &subscriber{
		pattern: pattern,
		buf:     make(chan GroupEvent, 4096),
		closed:  make(chan struct{}),
	}
	b.mu.Lock()
	b.subscribers = append(b.subscribers, newSub)
	b.mu.Unlock()

	out := make(chan GroupEvent)
	go func() {
		defer func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			close(newSub.closed)
			close(out)
			for i, sub := range b.subscribers {
				if sub == newSub {
					b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
					break
				}
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-newSub.buf:
				select {
				case <-ctx.Done():
					return
				case out <- ev:
				}
			}
		}
	}()
	return out
}

// NewGroupEvent stamps a GroupEvent with a fresh google/uuid identifier and
// the current time, so events remain distinguishable across process
// restarts and across concurrently-fed Brokers.
func (b *Broker) NewGroupEvent(canonical, rawText string, seenCount int) GroupEvent {
	return GroupEvent{
		ID:        uuid.NewString(),
		Canonical: canonical,
		RawText:   rawText,
		SeenCount: seenCount,
		TS:        time.Now().UnixNano(),
	}
}
