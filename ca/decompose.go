// Package ca: the spectral stage — ordinary SVD of the standardized
// residual matrix, with the trivial dimension removed.
//
// The residual matrix of a valid table is always rank-deficient: its
// mass-weighted row and column sums are identically zero, so one singular
// value is zero up to rounding. Dropping the trailing (smallest) singular
// triple therefore retains exactly min(rows, cols) − 1 informative
// dimensions without re-deriving the constant vector explicitly.

package ca

import "gonum.org/v1/gonum/mat"

// Decompose factorizes the standardized residual matrix and returns its
// singular values (descending) with left and right singular vectors,
// trivial dimension already discarded.
//
// Returns ErrDecomposition if the underlying SVD fails to converge
// (pathological input, e.g. extreme aspect ratios with near-duplicate
// rows). No partial or NaN-bearing spectrum is ever returned.
//
// Tie handling: when singular values coincide exactly, their order (and
// the orientation of the associated vectors) follows the backend's
// natural output order; CA defines no tie-break of its own.
//
// Complexity: O(r·c·min(r,c)) time, O(r·c) space.
func Decompose(resid [][]float64) (*Spectrum, error) {
	rows := len(resid)
	if rows == 0 || len(resid[0]) == 0 {
		return nil, ErrEmptyTable
	}
	cols := len(resid[0])

	// Flatten into a Dense for the factorization.
	flat := make([]float64, 0, rows*cols)
	for _, row := range resid {
		flat = append(flat, row...)
	}
	a := mat.NewDense(rows, cols, flat)

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrDecomposition
	}

	// Thin factorization: U is rows×m, V is cols×m, m = min(rows, cols).
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	// Discard the trivial dimension: the smallest singular value of the
	// residual matrix, zero up to rounding by construction.
	retained := len(values) - 1

	sp := &Spectrum{
		Values: append([]float64(nil), values[:retained]...),
		Left:   make([][]float64, rows),
		Right:  make([][]float64, cols),
	}
	for i := 0; i < rows; i++ {
		sp.Left[i] = make([]float64, retained)
		for k := 0; k < retained; k++ {
			sp.Left[i][k] = u.At(i, k)
		}
	}
	for j := 0; j < cols; j++ {
		sp.Right[j] = make([]float64, retained)
		for k := 0; k < retained; k++ {
			sp.Right[j][k] = v.At(j, k)
		}
	}

	return sp, nil
}
