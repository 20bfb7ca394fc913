// Package ca: the coordinate projector — principal coordinates, inertia
// accounting and per-category contributions.
//
// Principal ("symmetric") normalization:
//
//	rowCoord[i][k] = left[i][k]  / √rowMass_i · σ_k
//	colCoord[j][k] = right[j][k] / √colMass_j · σ_k
//
// This is the scaling under which Euclidean distance between mapped row
// points approximates chi-square distance between the original row
// profiles — the defining correctness property of CA.

package ca

import "math"

// project turns a spectrum and the masses it was derived under into the
// final Result. dims caps the number of reported dimensions (0 = all
// retained); contributions toggles the optional contribution block.
//
// Variance ratios are always normalized by the total inertia over ALL
// retained dimensions, so capping dims truncates the ratio vector rather
// than re-normalizing it.
func project(t *Table, m Masses, sp *Spectrum, dims int, contributions bool) *Result {
	retained := sp.Dims()
	reported := retained
	if dims > 0 && dims < retained {
		reported = dims
	}

	// 1) Eigenvalues (principal inertias) and their shares of the total.
	//    A table with no residual association has total inertia zero; its
	//    ratios are reported as zero rather than 0/0.
	eigen := make([]float64, reported)
	var totalInertia float64
	for k := 0; k < retained; k++ {
		if k < reported {
			eigen[k] = sp.Values[k] * sp.Values[k]
		}
		totalInertia += sp.Values[k] * sp.Values[k]
	}
	ratios := make([]float64, reported)
	if totalInertia > 0 {
		for k := range ratios {
			ratios[k] = eigen[k] / totalInertia
		}
	}

	// 2) Principal coordinates: unweight the singular vectors by √mass,
	//    stretch by the singular value.
	rowCoords := coordinates(sp.Left, m.Row, sp.Values, reported)
	colCoords := coordinates(sp.Right, m.Col, sp.Values, reported)

	res := &Result{
		RowLabels:      append([]string(nil), t.RowLabels...),
		ColLabels:      append([]string(nil), t.ColLabels...),
		Eigenvalues:    eigen,
		VarianceRatios: ratios,
		RowCoords:      rowCoords,
		ColCoords:      colCoords,
		Masses:         m,
	}

	// 3) Optional contributions: mass_i · coord_ik² / λ_k, summing to 1
	//    over the categories of each dimension with nonzero inertia.
	if contributions {
		res.RowContributions = contrib(rowCoords, m.Row, eigen)
		res.ColContributions = contrib(colCoords, m.Col, eigen)
	}

	return res
}

// coordinates rescales singular vectors into principal coordinates for
// the first `reported` dimensions.
func coordinates(vectors [][]float64, mass []float64, values []float64, reported int) [][]float64 {
	coords := make([][]float64, len(vectors))
	for i, vec := range vectors {
		coords[i] = make([]float64, reported)
		inv := 1 / math.Sqrt(mass[i])
		for k := 0; k < reported; k++ {
			coords[i][k] = vec[k] * inv * values[k]
		}
	}

	return coords
}

// contrib computes per-category contribution shares to each dimension's
// inertia. Dimensions with zero eigenvalue carry no inertia; every
// contribution there is zero by convention.
func contrib(coords [][]float64, mass []float64, eigen []float64) [][]float64 {
	out := make([][]float64, len(coords))
	for i, row := range coords {
		out[i] = make([]float64, len(eigen))
		for k, lambda := range eigen {
			if lambda == 0 {
				continue
			}
			out[i][k] = mass[i] * row[k] * row[k] / lambda
		}
	}

	return out
}
