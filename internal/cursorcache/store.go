// Package cursorcache is a demonstration driver on top of the root sqlbind
// package: it ingests a workload of raw SQL statements, canonicalizes each
// one, and groups them by bound-statement shape. It is not part of the core
// tokenizer/binder contract — grouping and reporting across a workload are
// explicitly out of scope for that core.
package cursorcache

import (
	"context"
	"database/sql"
	"sync"

	_ "modernc.org/sqlite"
)

// Store is the cache's primary backing table: one row per canonical form
// recorded, holding the first raw statement seen for it and a running
// count, kept in a SQLite database written with
// the pure-Go modernc.org/sqlite driver. Lazily opening the connection on
// first use (rather than in the constructor) mirrors the reference
// source's SQLiteSource, which defers its goroutine until Records() is
// first called.
type Store struct {
	path   string
	once   sync.Once
	db     *sql.DB
	err    error
	broker *Broker // optional; set via WithBroker
}

// OpenStore returns a Store backed by the SQLite database at path. path may
// be ":memory:" or any file path understood by the modernc.org/sqlite
// driver; the file and schema are created lazily on first use.
func OpenStore(path string) *Store {
	return &Store{path: path}
}

// WithBroker attaches a Broker that Record publishes a GroupEvent to after
// every successful upsert, so a "\watch" REPL session can tail new or
// updated shapes live instead of polling All.
func (s *Store) WithBroker(b *Broker) *Store {
	s.broker = b
	return s
}

// Broker returns the Broker attached via WithBroker, or nil if none was
// ever attached.
func (s *Store) Broker() *Broker {
	return s.broker
}

func (s *Store) open() (*sql.DB, error) {
	s.once.Do(func() {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.err = err
			return
		}
		db.SetMaxOpenConns(1) // sqlite does not support concurrent writers
		db.SetMaxIdleConns(1)
		const schema = `CREATE TABLE IF NOT EXISTS statements (
			canonical   TEXT PRIMARY KEY,
			sample_text TEXT NOT NULL,
			seen_count  INTEGER NOT NULL DEFAULT 0
		)`
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			s.err = err
			return
		}
		s.db = db
	})
	return s.db, s.err
}

// Record upserts one occurrence of a statement under its canonical bound
// form, incrementing seen_count and keeping the first-seen raw text as the
// stored sample.
func (s *Store) Record(ctx context.Context, canonical, rawText string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	const upsert = `
		INSERT INTO statements (canonical, sample_text, seen_count)
		VALUES (?, ?, 1)
		ON CONFLICT(canonical) DO UPDATE SET seen_count = seen_count + 1`
	if _, err := db.ExecContext(ctx, upsert, canonical, rawText); err != nil {
		return err
	}

	if s.broker != nil {
		var seenCount int
		if err := db.QueryRowContext(ctx, `SELECT seen_count FROM statements WHERE canonical = ?`, canonical).Scan(&seenCount); err == nil {
			s.broker.Publish(ctx, s.broker.NewGroupEvent(canonical, rawText, seenCount))
		}
	}
	return nil
}

// Shape is one row of the canonical-form cache: a bound statement, a
// representative raw example, and how many times it was recorded.
type Shape struct {
	Canonical  string
	SampleText string
	SeenCount  int
}

// All returns every recorded shape, most-frequent first.
func (s *Store) All(ctx context.Context) ([]Shape, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT canonical, sample_text, seen_count FROM statements ORDER BY seen_count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shapes []Shape
	for rows.Next() {
		var sh Shape
		if err := rows.Scan(&sh.Canonical, &sh.SampleText, &sh.SeenCount); err != nil {
			return nil, err
		}
		shapes = append(shapes, sh)
	}
	return shapes, rows.Err()
}

// Close releases the underlying database handle, if one was ever opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
