package binder

import (
	"testing"

	"github.com/cursorgroup/sqlbind/internal/keyword"
)

func mustBind(t *testing.T, stmt string, opts Options) string {
	t.Helper()
	s, err := Bind(keyword.Init(), stmt, opts)
	if err != nil {
		t.Fatalf("Bind(%q) error: %v", stmt, err)
	}
	return s
}

func TestBindSimpleSelect(t *testing.T) {
	got := mustBind(t, "select * from t where x = 2", DefaultOptions())
	want := "select*from t where x=:n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindEmptyStatement(t *testing.T) {
	got := mustBind(t, "", DefaultOptions())
	if got != "" {
		t.Fatalf("expected empty canonical form, got %q", got)
	}
}

func TestBindTwoStatementsDifferingOnlyInLiteralsAreIdentical(t *testing.T) {
	a := mustBind(t, "select * from t where x = 2", DefaultOptions())
	b := mustBind(t, "select   *   from   t where x=999", DefaultOptions())
	if a != b {
		t.Fatalf("expected same canonical form, got %q and %q", a, b)
	}
}

func TestBindStringLiteralAndBindVariable(t *testing.T) {
	got := mustBind(t, "select name from t where name = 'bob' and id = :id", DefaultOptions())
	want := "select name from t where name=:s and id=:b"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindNormalizesDigitRunsInIdentifiers(t *testing.T) {
	got := mustBind(t, "select t103, t205 from t103", DefaultOptions())
	want := "select t{0},t{1} from t{0}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindNumberNormalizationCanBeDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.NormalizeNumbersInIdent = false
	got := mustBind(t, "select t103 from t103", opts)
	want := "select t103 from t103"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindPartitionNamesAreNormalizedSeparatelyFromDigitRuns(t *testing.T) {
	got := mustBind(t, "select * from t partition (q1_2024) where x = partition", DefaultOptions())
	want := "select*from t partition(#0)where x=partition"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindStripHints(t *testing.T) {
	opts := DefaultOptions()
	opts.StripHints = true
	got := mustBind(t, "select /*+ INDEX(t i) */ * from t", opts)
	want := "select*from t"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindKeepsHintButNormalizesItsDigitRuns(t *testing.T) {
	got := mustBind(t, "select /*+ INDEX(t103 i) */ * from t103", DefaultOptions())
	want := "select/*+INDEX(t{0} i)*/*from t{0}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindQuotedIdentifierPreservesCase(t *testing.T) {
	got := mustBind(t, `select "Name" from "Table"`, DefaultOptions())
	want := `select "Name" from "Table"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindVerboseRecordsReplacedLiterals(t *testing.T) {
	res, err := BindVerbose(keyword.Init(), "select * from t where x = 2 and y = 'z'", DefaultOptions())
	if err != nil {
		t.Fatalf("BindVerbose error: %v", err)
	}
	if res.NumReplacedLits != 2 {
		t.Fatalf("expected 2 replaced literals, got %d", res.NumReplacedLits)
	}
	if len(res.ReplacedValues) != 2 || res.ReplacedValues[0] != "2" || res.ReplacedValues[1] != "'z'" {
		t.Fatalf("unexpected replaced values: %v", res.ReplacedValues)
	}
	if len(res.ReplacedKinds) != 2 || res.ReplacedKinds[0] != "number" || res.ReplacedKinds[1] != "string" {
		t.Fatalf("unexpected replaced kinds: %v", res.ReplacedKinds)
	}
}

func TestBindVerboseExcludesBindVariablesFromReplacedLits(t *testing.T) {
	res, err := BindVerbose(keyword.Init(), "select * from t where x = :id", DefaultOptions())
	if err != nil {
		t.Fatalf("BindVerbose error: %v", err)
	}
	if res.NumReplacedLits != 0 {
		t.Fatalf("expected bind variables to be excluded from the literal count, got %d", res.NumReplacedLits)
	}
	if len(res.ReplacedValues) != 0 {
		t.Fatalf("expected no replaced values for a bind-only statement, got %v", res.ReplacedValues)
	}
	if len(res.ReplacedKinds) != 0 {
		t.Fatalf("expected no replaced kinds for a bind-only statement, got %v", res.ReplacedKinds)
	}
}

func TestBindVerboseExcludesBindsEvenAlongsideOtherLiterals(t *testing.T) {
	res, err := BindVerbose(keyword.Init(), "select * from t where x = :id and y = 2", DefaultOptions())
	if err != nil {
		t.Fatalf("BindVerbose error: %v", err)
	}
	for _, kind := range res.ReplacedKinds {
		if kind == "bind" {
			t.Fatalf("expected no \"bind\" entries in ReplacedKinds, got %v", res.ReplacedKinds)
		}
	}
	for _, v := range res.ReplacedValues {
		if v == ":id" {
			t.Fatalf("expected the bind variable :id to be excluded from ReplacedValues, got %v", res.ReplacedValues)
		}
	}
}

func TestBindTooLongProducesSentinel(t *testing.T) {
	huge := make([]byte, MaxOutputBytes+100)
	for i := range huge {
		huge[i] = 'a'
	}
	stmt := "select " + string(huge) + " from t"
	got := mustBind(t, stmt, DefaultOptions())
	if got != TooLongSentinel {
		t.Fatalf("expected the too-long sentinel, got a string of length %d", len(got))
	}
}
