// Package ca implements Correspondence Analysis (CA) of two-way
// contingency tables: a generalized singular value decomposition that
// maps row and column categories into a shared low-dimensional space in
// which Euclidean distance approximates chi-square distance between the
// original category profiles.
//
// Overview:
//
//   - A validated table of non-negative counts is reduced to row and
//     column masses (marginal proportions), expected frequencies under
//     independence, and a matrix of standardized residuals
//     (observed − expected) / √expected.
//   - An ordinary SVD of the standardized residual matrix yields singular
//     values and vectors; the trivial dimension induced by the zero
//     row/column sums of the residual is discarded, retaining exactly
//     min(rows, cols) − 1 dimensions.
//   - Singular vectors are rescaled by the inverse square roots of the
//     masses and stretched by their singular values, producing principal
//     coordinates. Squared singular values are the eigenvalues (inertia
//     per dimension); their normalized shares are the variance-explained
//     ratios.
//
// The pipeline is a stateless pure function: one call transforms one
// table into one immutable Result, allocating all working storage per
// call. Independent analyses may run concurrently without coordination.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrShapeMismatch     – label counts disagree with matrix dimensions,
//     or the matrix is ragged.
//   - ErrEmptyTable        – zero rows, zero columns, or zero grand total.
//   - ErrEmptyLabel        – a row or column label is the empty string.
//   - ErrDuplicateLabel    – a row or column label appears twice.
//   - ErrNegativeEntry     – a cell holds a negative (or non-finite) value.
//   - ErrDegenerateRow     – a row sums to exactly zero (undefined mass).
//   - ErrDegenerateColumn  – a column sums to exactly zero.
//   - ErrDecomposition     – the SVD failed to converge.
//   - ErrBadDimensions     – WithDimensions was given a value < 1.
//
// Every precondition is checked before any floating-point work, so a
// caller can assert the exact failure kind without inspecting partial
// output. The package never retries, never logs, and never substitutes
// NaN or zero for an undefined quantity.
//
// Sign convention: CA coordinates are sign-ambiguous per dimension.
// Negating dimension k for rows and columns simultaneously yields an
// equally valid decomposition; only sign-invariant properties (distances,
// eigenvalues, ratios, contributions) are stable across SVD backends.
// When two singular values coincide exactly their relative order follows
// the decomposition backend's natural output order; this residual
// non-determinism is inherent to CA and intentionally not papered over.
//
// Complexity:
//
//   - Time:  O(r·c·min(r,c)) for the SVD, which dominates.
//   - Space: O(r·c) working storage.
//
// Very large tables are therefore cubic in the smaller dimension; the
// package documents this rather than enforcing a size cap.
//
// Example usage:
//
//	t, err := ca.NewTable(rows, cols, counts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := ca.Analyze(t, ca.WithDimensions(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Eigenvalues, res.RowCoords)
package ca
