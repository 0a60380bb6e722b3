package sqlbind

import (
	"log"
	"os"
	"sync"

	"github.com/cursorgroup/sqlbind/internal/keyword"
)

// Context is the immutable value the core operates against: the
// initialized keyword set, plus the advisory log flag. Re-architecting the
// reference implementation's two module-level globals (the keyword set and
// a debug flag) into an explicit value that callers construct once and pass
// around — rather than true package-level mutable state — means a caller
// can run multiple independently-configured Contexts in the same process,
// though in practice nearly everyone just uses the package-level default
// built by init().
//
// A Context is safe for concurrent use once constructed: the keyword set is
// read-only after Init, and the log flag is stored atomically.
type Context struct {
	keywords *keyword.Set
	logger   *log.Logger
	logging  *int32 // 0 or 1, read/written atomically
}

// NewContext builds a Context with a freshly initialized keyword set.
func NewContext() *Context {
	var flag int32
	return &Context{
		keywords: keyword.Init(),
		logger:   log.New(os.Stderr, "sqlbind: ", 0),
		logging:  &flag,
	}
}

var defaultContext = NewContext()

// Default returns the process-wide default Context used by the
// package-level convenience functions (Tokenize, BoundStmt, ...).
func Default() *Context { return defaultContext }

// SetLog toggles this Context's advisory debug-logging flag. It gates
// diagnostic output only — it never affects tokenizer or binder results.
func (c *Context) SetLog(on bool) {
	v := int32(0)
	if on {
		v = 1
	}
	storeFlag(c.logging, v)
}

func (c *Context) logf(format string, args ...interface{}) {
	if loadFlag(c.logging) == 0 {
		return
	}
	c.logger.Printf(format, args...)
}

var initOnce sync.Once

// InitializeKeywords is the idempotent startup entry point from spec §6.1.
// The default Context's keyword set is already built by package init; the
// first call replaces the default Context with a freshly built one (which
// also resets its log flag to off), and every later call is a no-op.
func InitializeKeywords() {
	initOnce.Do(func() {
		defaultContext = NewContext()
	})
}
