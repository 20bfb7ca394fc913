// Package ca: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the ca
// package. All stages return these sentinels and tests check them via
// errors.Is. Where context is essential (the offending label or index) the
// sentinel is wrapped with fmt.Errorf("%w: ...") so matching still works.

package ca

import "errors"

var (
	// ErrShapeMismatch indicates that the label counts disagree with the
	// matrix dimensions, or that the matrix rows have unequal lengths.
	ErrShapeMismatch = errors.New("ca: labels do not match matrix shape")

	// ErrEmptyTable indicates a table with zero rows, zero columns, or a
	// grand total of zero — nothing to decompose.
	ErrEmptyTable = errors.New("ca: table is empty")

	// ErrEmptyLabel indicates that a row or column label is the empty string.
	ErrEmptyLabel = errors.New("ca: empty category label")

	// ErrDuplicateLabel indicates that a row or column label occurs twice.
	// Labels identify categories; duplicates would make the output ambiguous.
	ErrDuplicateLabel = errors.New("ca: duplicate category label")

	// ErrNegativeEntry indicates a negative or non-finite cell value.
	// Contingency tables hold counts; negative mass is undefined.
	ErrNegativeEntry = errors.New("ca: negative table entry")

	// ErrDegenerateRow indicates a row whose marginal sum is exactly zero.
	// Such a row carries zero mass and breaks the residual normalization;
	// it is rejected rather than silently dropped, since the caller may not
	// intend the exclusion.
	ErrDegenerateRow = errors.New("ca: row sums to zero")

	// ErrDegenerateColumn indicates a column whose marginal sum is exactly zero.
	ErrDegenerateColumn = errors.New("ca: column sums to zero")

	// ErrDecomposition indicates that the singular value decomposition of
	// the standardized residual matrix did not converge. The computation is
	// deterministic, so retrying on identical input cannot succeed.
	ErrDecomposition = errors.New("ca: singular value decomposition failed")

	// ErrBadDimensions indicates that WithDimensions was configured with a
	// value below one.
	ErrBadDimensions = errors.New("ca: dimensions must be at least 1")
)
