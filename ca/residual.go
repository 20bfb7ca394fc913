// Package ca: the residual transform — masses, expected frequencies and
// standardized residuals of a validated table.
//
// Numerical policy: the division by √expected is safe because Validate
// excludes zero-mass rows and columns, so every expected frequency is
// strictly positive.

package ca

import "math"

// Residuals computes the row/column masses and the standardized residual
// matrix of t, validating first.
//
// Entry (i,j) of the residual matrix is
//
//	(observed − expected) / √expected,  expected = rowMass_i · colMass_j · N,
//
// where N is the grand total. The residual matrix has rank at most
// min(rows, cols) − 1: its mass-weighted row and column sums vanish
// identically, which is exactly the trivial dimension the spectral stage
// discards.
//
// These are classic chi-square standardized residuals in count units:
// their squares sum to the chi-square statistic of the table. Analyze
// divides the matrix by √N before the SVD so that eigenvalues come out
// in inertia units (chi²/N); see inertiaScale.
//
// Complexity: O(r·c) time and space.
func Residuals(t *Table) (Masses, [][]float64, error) {
	if err := Validate(t); err != nil {
		return Masses{}, nil, err
	}
	m := masses(t)

	return m, residuals(t, m), nil
}

// masses derives marginal proportions from a validated table.
// Each returned vector sums to 1 and every entry is strictly positive.
func masses(t *Table) Masses {
	rows, cols := t.Rows(), t.Cols()
	m := Masses{
		Row: make([]float64, rows),
		Col: make([]float64, cols),
	}

	// Accumulate marginal sums, then normalize by the grand total.
	var total float64
	for i, row := range t.Data {
		for j, v := range row {
			m.Row[i] += v
			m.Col[j] += v
			total += v
		}
	}
	for i := range m.Row {
		m.Row[i] /= total
	}
	for j := range m.Col {
		m.Col[j] /= total
	}

	return m
}

// inertiaScale divides the count-based standardized residuals by √N in
// place, yielding the proportion-based matrix whose squared singular
// values sum to the total inertia (chi² / N). This is the "properly
// rescaled" matrix the spectral stage consumes: without the rescale,
// principal coordinates would inflate by √N and the chi-square distance
// law would not hold.
func inertiaScale(resid [][]float64, total float64) {
	inv := 1 / math.Sqrt(total)
	for _, row := range resid {
		for j := range row {
			row[j] *= inv
		}
	}
}

// residuals builds the standardized residual matrix of a validated table
// from its masses. Assumes m == masses(t).
func residuals(t *Table, m Masses) [][]float64 {
	rows, cols := t.Rows(), t.Cols()
	total := t.GrandTotal()

	resid := make([][]float64, rows)
	var expected float64
	for i := range resid {
		resid[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			// Expected frequency under independence: outer product of the
			// masses, scaled back to count units.
			expected = m.Row[i] * m.Col[j] * total
			resid[i][j] = (t.Data[i][j] - expected) / math.Sqrt(expected)
		}
	}

	return resid
}
