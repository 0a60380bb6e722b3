// Package binder implements the canonicalizer: it walks a tokenized,
// partition-tagged statement and emits a normalized "bound statement"
// string, replacing literals with placeholders and collapsing cosmetic
// variation.
package binder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cursorgroup/sqlbind/internal/keyword"
	"github.com/cursorgroup/sqlbind/internal/lexer"
	"github.com/cursorgroup/sqlbind/internal/tagger"
	"github.com/cursorgroup/sqlbind/internal/token"
)

// Result carries the verbose binder's output: the canonical string plus
// the replaced literals needed to reconstruct bind-value candidates.
type Result struct {
	Canonical       string
	NumReplacedLits int // numbers + strings; binds excluded, per spec
	ReplacedValues  []string
	ReplacedKinds   []string
}

// Bind produces the canonical string for stmt. A nil/empty stmt returns
// "", never an error.
func Bind(kw *keyword.Set, stmt string, opts Options) (string, error) {
	res, err := BindVerbose(kw, stmt, opts)
	if err != nil {
		return "", err
	}
	return res.Canonical, nil
}

// BindVerbose is Bind plus the literal-replacement bookkeeping described in
// spec §4.4.
func BindVerbose(kw *keyword.Set, stmt string, opts Options) (Result, error) {
	if stmt == "" {
		return Result{}, nil
	}

	stream := lexer.Tokenize(kw, stmt)
	partitions := tagger.PartitionNames(stream)

	b := &binding{
		opts:       opts,
		partitions: partitions,
		runs:       newDigitRuns(),
		partNames:  newPartitionNames(),
	}

	n := stream.Len()
	for i := 0; i < n; i++ {
		t := stream.At(i)
		piece, err := b.emit(t)
		if err != nil {
			return Result{}, err
		}
		if b.out.Len()+len(piece) > MaxOutputBytes {
			return Result{Canonical: TooLongSentinel}, nil
		}
		b.out.WriteString(piece)
	}

	return Result{
		Canonical:       squeeze(b.out.String()),
		NumReplacedLits: b.numReplacedLits,
		ReplacedValues:  b.replacedValues,
		ReplacedKinds:   b.replacedKinds,
	}, nil
}

type binding struct {
	opts       Options
	partitions map[int]bool
	runs       *digitRuns
	partNames  *partitionNames

	out             strings.Builder
	numReplacedLits int
	replacedValues  []string
	replacedKinds   []string
}

// emit returns the raw (pre-whitespace-squeeze) text a single token
// contributes to the canonical output, per the table in spec §4.3.
func (b *binding) emit(t token.Token) (string, error) {
	switch t.Kind {
	case token.Conn:
		return strings.ToLower(t.Text), nil
	case token.Keyword:
		return strings.ToLower(t.Text), nil
	case token.Comment:
		return " ", nil
	case token.Hint:
		if b.opts.StripHints {
			return " ", nil
		}
		return b.runs.substitute(t.Text), nil
	case token.Bind:
		// Bind variables are already parameterized input, not literals to
		// flag as parameterization candidates, so they are excluded from
		// NumReplacedLits/ReplacedValues/ReplacedKinds per spec §4.4.
		return ":b", nil
	case token.Number:
		b.record(t.Text, "number")
		b.numReplacedLits++
		return ":n", nil
	case token.String:
		b.record(t.Text, "string")
		b.numReplacedLits++
		return ":s", nil
	case token.Ident:
		return b.emitIdent(t), nil
	default:
		return "", errors.Errorf("unknown token kind %v for token %q", t.Kind, t.Text)
	}
}

func (b *binding) emitIdent(t token.Token) string {
	if b.opts.NormalizePartitionNames && b.partitions[t.Start] {
		return "#" + strconv.Itoa(b.partNames.indexOf(t.Text))
	}
	return normalizeIdent(t.Text, b.opts.NormalizeNumbersInIdent, b.runs)
}

func (b *binding) record(value, kind string) {
	b.replacedValues = append(b.replacedValues, value)
	b.replacedKinds = append(b.replacedKinds, kind)
}
