// Package sqlbind identifies near-duplicate SQL statements — statements
// that differ only in literal values or cosmetic formatting — by tokenizing
// each statement with a context-sensitive lexer and canonicalizing it into
// a "bound statement" string. Two statements with the same bound-statement
// output are considered the same statement shape.
//
// Grouping bound statements across a workload to find the hottest shapes
// is a separate concern; see internal/cursorcache for a demonstration
// driver built on top of this package.
package sqlbind

import (
	"github.com/cursorgroup/sqlbind/internal/binder"
	"github.com/cursorgroup/sqlbind/internal/lexer"
	"github.com/cursorgroup/sqlbind/internal/token"
)

// Kind mirrors internal/token.Kind so callers never need to import an
// internal package to interpret Tokenize's results.
type Kind = token.Kind

const (
	Keyword = token.Keyword
	Ident   = token.Ident
	Bind    = token.Bind
	Number  = token.Number
	String  = token.String
	Hint    = token.Hint
	Comment = token.Comment
	Conn    = token.Conn
)

// Option configures BoundStmt / BoundStmtVerbose. The zero value of Options
// is not the default; use the With* functions below, which compose over
// binder.DefaultOptions().
type Option func(*binder.Options)

// WithNormalizeNumbersInIdent controls whether digit runs embedded in
// identifiers (t103, q1_2024) are substituted with positional placeholders.
// Default: true.
func WithNormalizeNumbersInIdent(on bool) Option {
	return func(o *binder.Options) { o.NormalizeNumbersInIdent = on }
}

// WithNormalizePartitionNames controls whether identifiers the semantic
// tagger recognizes as partition names are replaced with positional
// placeholders instead of being lowercased like ordinary identifiers.
// Default: true.
func WithNormalizePartitionNames(on bool) Option {
	return func(o *binder.Options) { o.NormalizePartitionNames = on }
}

// WithStripHints controls whether optimizer hints (/*+ ... */) are dropped
// entirely (replaced by a single space) rather than kept with their digit
// runs normalized. Default: false.
func WithStripHints(on bool) Option {
	return func(o *binder.Options) { o.StripHints = on }
}

func buildOptions(opts []Option) binder.Options {
	o := binder.DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func tokenizeStream(c *Context, stmt string) *token.Stream {
	return lexer.Tokenize(c.keywords, stmt)
}

// Tokenize splits stmt into its token stream using c's keyword set. It
// returns the token text and kind for each token, in source order; a bare
// ':' separated from its name by whitespace (": x") is reconciled into a
// single Bind token, as is an indicator-suffixed bind (":x:ind").
func (c *Context) Tokenize(stmt string) (texts []string, kinds []Kind) {
	c.logf("tokenize %s", jsonify(stmt))
	stream := tokenizeStream(c, stmt)
	n := stream.Len()
	texts = make([]string, n)
	kinds = make([]Kind, n)
	for i := 0; i < n; i++ {
		t := stream.At(i)
		texts[i] = t.Text
		kinds[i] = t.Kind
	}
	return texts, kinds
}

// Tokenize tokenizes stmt using the default Context.
func Tokenize(stmt string) (texts []string, kinds []Kind) { return Default().Tokenize(stmt) }

// BoundStmt returns the canonical bound-statement string for stmt.
func (c *Context) BoundStmt(stmt string, opts ...Option) (string, error) {
	c.logf("bound_stmt %s", jsonify(stmt))
	s, err := binder.Bind(c.keywords, stmt, buildOptions(opts))
	if err != nil {
		return "", errorsWrap(err, "bound_stmt")
	}
	return s, nil
}

// BoundStmt canonicalizes stmt using the default Context.
func BoundStmt(stmt string, opts ...Option) (string, error) { return Default().BoundStmt(stmt, opts...) }

// VerboseResult is the canonical string plus the literal-replacement
// bookkeeping described in spec §4.4: every Number and String token that
// was replaced, in emission order, alongside its kind ("number" or
// "string"). Bind variables are deliberately excluded from the count and
// from ReplacedValues/ReplacedKinds — they were already parameters, not
// literals the binder is flagging as candidates for parameterization.
type VerboseResult struct {
	Canonical       string
	NumReplacedLits int
	ReplacedValues  []string
	ReplacedKinds   []string
}

// BoundStmtVerbose is BoundStmt plus VerboseResult's bookkeeping.
func (c *Context) BoundStmtVerbose(stmt string, opts ...Option) (VerboseResult, error) {
	c.logf("bound_stmt_verbose %s", jsonify(stmt))
	res, err := binder.BindVerbose(c.keywords, stmt, buildOptions(opts))
	if err != nil {
		return VerboseResult{}, errorsWrap(err, "bound_stmt_verbose")
	}
	return VerboseResult{
		Canonical:       res.Canonical,
		NumReplacedLits: res.NumReplacedLits,
		ReplacedValues:  res.ReplacedValues,
		ReplacedKinds:   res.ReplacedKinds,
	}, nil
}

// BoundStmtVerbose canonicalizes stmt using the default Context.
func BoundStmtVerbose(stmt string, opts ...Option) (VerboseResult, error) {
	return Default().BoundStmtVerbose(stmt, opts...)
}

// SetLog toggles advisory debug logging on the default Context.
func SetLog(on bool) { Default().SetLog(on) }
