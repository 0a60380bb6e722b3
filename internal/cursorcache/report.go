package cursorcache

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Reporter writes a ranked cache report. It mirrors the reference output
// package's Writer/Flush shape — one method per row, a Flush that's a no-op
// for formats with nothing to buffer — generalized from raw query rows to
// cache shapes.
type Reporter interface {
	WriteShape(rank int, total int, sh Shape) error
	Flush() error
}

// TextReporter renders a human-readable ranked report, formatting counts
// with dustin/go-humanize and relative shares as one-decimal percentages.
type TextReporter struct {
	w io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) WriteShape(rank, total int, sh Shape) error {
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(sh.SeenCount) / float64(total)
	}
	_, err := fmt.Fprintf(r.w, "%2d. %s occurrences (%.1f%%)  %s\n    e.g. %s\n",
		rank, humanize.Comma(int64(sh.SeenCount)), pct, sh.Canonical, sh.SampleText)
	return err
}

func (r *TextReporter) Flush() error { return nil }

// Render writes every shape in shapes to r in the order given (Store.All
// already returns them most-frequent first), labeling each row with its
// position as its rank and with its share of the total occurrence count.
// It does not sort shapes itself.
func Render(r Reporter, shapes []Shape) error {
	total := 0
	for _, sh := range shapes {
		total += sh.SeenCount
	}
	for i, sh := range shapes {
		if err := r.WriteShape(i+1, total, sh); err != nil {
			return err
		}
	}
	return r.Flush()
}
