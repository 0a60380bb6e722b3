package sqlbind

import "github.com/pkg/errors"

// Sentinel errors for callers that want to treat the conditions below as
// failures. No function in this package returns either of them; the only
// errors it returns are the binder's internal-guard errors, wrapped by
// errorsWrap with the name of the failing operation.
var (
	// ErrTooLong is never returned directly: exceeding the output cap is
	// reported in-band via binder.TooLongSentinel, not as an error. It is
	// kept here for callers who prefer to treat it as a failure.
	ErrTooLong = errors.New("bound statement exceeds the output cap")

	// ErrEmptyStatement would be returned by a stricter caller that treats
	// an empty/whitespace-only statement as invalid input; Tokenize and
	// BoundStmt themselves just return empty results for it, per spec.
	ErrEmptyStatement = errors.New("statement is empty")
)

func errorsWrap(err error, op string) error {
	return errors.Wrap(err, op)
}
