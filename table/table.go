// Package table defines the dataset type, options and sentinel errors
// for contingency-table I/O.
package table

import (
	"errors"

	"corresp/ca"
)

// Sentinel errors returned by the reader. Contextual detail (record and
// field positions, labels) is wrapped via fmt.Errorf("%w: ...").
var (
	// ErrNoHeader indicates empty input: not even a header row.
	ErrNoHeader = errors.New("table: missing header row")

	// ErrNoRows indicates a header without any data records.
	ErrNoRows = errors.New("table: no data rows")

	// ErrRagged indicates a record whose field count deviates from the header.
	ErrRagged = errors.New("table: ragged record")

	// ErrBadNumber indicates a cell that does not parse as a number.
	ErrBadNumber = errors.New("table: entry is not numeric")
)

// Dataset is a parsed contingency table plus the optional presentation
// weights that rode along in the file.
//
// Sizes is nil when the input had no size column; otherwise it holds one
// weight per row of Table, in row order. Sizes never participates in the
// decomposition — it exists for downstream point scaling only.
type Dataset struct {
	Table *ca.Table
	Sizes []float64
}

// DefaultSizeColumn is the column name split off as point-size weights
// unless overridden by WithSizeColumn. Matching is case-insensitive.
const DefaultSizeColumn = "size"

// Options configures parsing.
//
// Delimiter  – field separator, ',' by default.
// SizeColumn – name of the weight column to split off; "" disables the
// split entirely (a literal "size" column then stays in the matrix).
type Options struct {
	Delimiter  rune
	SizeColumn string
}

// Option is a functional option for configuring Read and Load.
type Option func(*Options)

// DefaultOptions returns the canonical parsing configuration:
// comma-separated, size column named "size".
func DefaultOptions() Options {
	return Options{
		Delimiter:  ',',
		SizeColumn: DefaultSizeColumn,
	}
}

// WithDelimiter sets the field separator (e.g. ';' or '\t').
func WithDelimiter(d rune) Option {
	return func(o *Options) {
		o.Delimiter = d
	}
}

// WithSizeColumn renames the weight column to split off.
// Pass the empty string to disable the split.
func WithSizeColumn(name string) Option {
	return func(o *Options) {
		o.SizeColumn = name
	}
}
