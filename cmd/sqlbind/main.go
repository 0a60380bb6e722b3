package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/cursorgroup/sqlbind"
	"github.com/cursorgroup/sqlbind/internal/cursorcache"
)

var (
	cachePath = flag.String("cache", ":memory:", "Path to the SQLite cursor-cache database (':memory:' for an ephemeral cache).")
	verbose   = flag.Bool("verbose", false, "Enable advisory debug logging on the default Context.")
)

func main() {
	flag.Parse()

	sqlbind.InitializeKeywords()
	sqlbind.SetLog(*verbose)

	store := cursorcache.OpenStore(*cachePath).WithBroker(&cursorcache.Broker{})
	defer store.Close()

	prompt := "sqlbind# "
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		prompt = ""
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/sqlbind.tmp",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	fmt.Println("Welcome to sqlbind. Statements are bound and cached; \\help lists commands.")
repl:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue repl
		} else if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("error reading line:", err)
			continue repl
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue repl
		case trimmed == "quit" || trimmed == "exit" || trimmed == "\\q":
			break repl
		case trimmed == "\\help":
			printHelp()
		case strings.HasPrefix(trimmed, "\\tokens "):
			doTokens(strings.TrimSpace(trimmed[len("\\tokens "):]))
		case strings.HasPrefix(trimmed, "\\bind "):
			doBind(strings.TrimSpace(trimmed[len("\\bind "):]))
		case strings.HasPrefix(trimmed, "\\verbose "):
			doVerbose(strings.TrimSpace(trimmed[len("\\verbose "):]))
		case trimmed == "\\report":
			doReport(store)
		case strings.HasPrefix(trimmed, "\\load "):
			doLoad(store, strings.TrimSpace(trimmed[len("\\load "):]))
		case strings.HasPrefix(trimmed, "\\watch "):
			doWatch(store, strings.TrimSpace(trimmed[len("\\watch "):]))
		default:
			if err := doIngest(store, trimmed); err != nil {
				fmt.Println("error:", err)
				continue repl
			}
			fmt.Println("ok")
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  <statement>              bind the statement and record it in the cursor cache
  \tokens <stmt>           print the token stream for a statement
  \bind <stmt>             print the bound (canonical) form of a statement
  \verbose <stmt>          print the bound form plus replaced literals
  \report                  print the cursor cache, ranked by occurrence count
  \load <path> <tbl> <col> ingest every statement in a legacy SQLite dump's column
  \watch <pattern>         tail recorded shapes whose canonical form matches pattern (Ctrl-C to stop)
  \q, quit, exit           leave the REPL`)
}

func doTokens(stmt string) {
	texts, kinds := sqlbind.Tokenize(stmt)
	for i, text := range texts {
		fmt.Printf("%2d  %-8s %q\n", i, kinds[i], text)
	}
}

func doBind(stmt string) {
	bound, err := sqlbind.BoundStmt(stmt)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bound)
}

func doVerbose(stmt string) {
	res, err := sqlbind.BoundStmtVerbose(stmt)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Canonical)
	for i, val := range res.ReplacedValues {
		fmt.Printf("  %s: %q\n", res.ReplacedKinds[i], val)
	}
}

func doIngest(store *cursorcache.Store, stmt string) error {
	ctx := context.Background()
	bind := func(s string) (string, error) { return sqlbind.BoundStmt(s) }
	_, err := cursorcache.Ingest(ctx, store, bind, stmt)
	return err
}

// doLoad ingests every statement found in the col column of table in the
// legacy SQLite dump at path, via the same mattn/go-sqlite3-backed reader
// used for one-shot imports handed over from another system.
func doLoad(store *cursorcache.Store, args string) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		fmt.Println("usage: \\load <path> <table> <column>")
		return
	}
	path, table, col := fields[0], fields[1], fields[2]

	ctx := context.Background()
	dump := cursorcache.NewLegacyDump(path, table, col)
	stmts, err := dump.Statements(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var n int
	for stmt := range stmts {
		if err := doIngest(store, stmt); err != nil {
			fmt.Println("error:", err)
			continue
		}
		n++
	}
	fmt.Printf("loaded %d statement(s)\n", n)
}

// doWatch tails GroupEvents published by the store's Broker whose canonical
// form matches pattern, printing each until interrupted.
func doWatch(store *cursorcache.Store, pattern string) {
	broker := store.Broker()
	if broker == nil {
		fmt.Println("error: no broker attached to this cache")
		return
	}
	if pattern == "" {
		pattern = "*"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Printf("watching %q, press Ctrl-C to stop\n", pattern)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	events := broker.Subscribe(ctx, pattern)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			fmt.Printf("  [%s] %s (seen %d): %q\n", ev.ID, ev.Canonical, ev.SeenCount, ev.RawText)
		case <-sig:
			return
		}
	}
}

func doReport(store *cursorcache.Store) {
	ctx := context.Background()
	shapes, err := store.All(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := cursorcache.Render(cursorcache.NewTextReporter(os.Stdout), shapes); err != nil {
		fmt.Println("error:", err)
	}
}
