package binder

// Options configures canonicalization. The zero value is NOT the documented
// default — use DefaultOptions() (or the sqlbind package's functional
// options, which build on it) to get normalize_numbers_in_ident=true,
// normalize_partition_names=true, strip_hints=false.
type Options struct {
	NormalizeNumbersInIdent bool
	NormalizePartitionNames bool
	StripHints              bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NormalizeNumbersInIdent: true,
		NormalizePartitionNames: true,
		StripHints:              false,
	}
}

// MaxOutputBytes is the hard cap on canonical output size. Exceeding it
// yields TooLongSentinel rather than a truncated canonical form.
const MaxOutputBytes = 32767

// TooLongSentinel is returned in place of a canonical string whose
// construction would exceed MaxOutputBytes.
const TooLongSentinel = "**bound statement too long**"
