// Package ca defines the data model and configuration options for
// Correspondence Analysis.
package ca

// Table is a two-way contingency table: an ordered set of uniquely
// labelled rows, an ordered set of uniquely labelled columns, and a
// rectangular matrix of non-negative co-occurrence counts.
//
// Invariants (enforced by Validate, assumed by every later stage):
//   - len(Data) == len(RowLabels); len(Data[i]) == len(ColLabels) for all i.
//   - Labels are non-empty and unique within their axis.
//   - Every entry is finite and ≥ 0; the grand total is > 0.
//   - No row or column sums to exactly zero.
//
// A Table is plain data; nothing in this package mutates it.
type Table struct {
	RowLabels []string    // ordered, unique row category labels
	ColLabels []string    // ordered, unique column category labels
	Data      [][]float64 // Data[i][j] = count for (RowLabels[i], ColLabels[j])
}

// NewTable bundles labels and counts into a Table and validates it.
// Returns the first sentinel violation encountered (see Validate for the
// check order), or the ready-to-analyze table.
func NewTable(rowLabels, colLabels []string, data [][]float64) (*Table, error) {
	t := &Table{RowLabels: rowLabels, ColLabels: colLabels, Data: data}
	if err := Validate(t); err != nil {
		return nil, err
	}

	return t, nil
}

// Rows returns the number of row categories.
func (t *Table) Rows() int { return len(t.RowLabels) }

// Cols returns the number of column categories.
func (t *Table) Cols() int { return len(t.ColLabels) }

// GrandTotal returns the sum of all entries. It does not validate.
func (t *Table) GrandTotal() float64 {
	var total float64
	for _, row := range t.Data {
		for _, v := range row {
			total += v
		}
	}

	return total
}

// Masses holds the marginal proportions of a validated table: each row
// (column) mass is the row (column) sum divided by the grand total.
// Under the Table invariants every mass is strictly positive and each
// vector sums to 1.
type Masses struct {
	Row []float64 // Row[i] = mass of row category i
	Col []float64 // Col[j] = mass of column category j
}

// Spectrum is the output of the spectral stage: singular values of the
// standardized residual matrix in descending order, paired with the left
// (row-space) and right (column-space) singular vectors, after the
// trivial dimension has been discarded. len(Values) == min(rows,cols)−1.
type Spectrum struct {
	Values []float64   // σ_k, non-negative, descending
	Left   [][]float64 // Left[i][k]  = i-th component of left vector k
	Right  [][]float64 // Right[j][k] = j-th component of right vector k
}

// Dims returns the number of retained dimensions.
func (s *Spectrum) Dims() int { return len(s.Values) }

// Result is the final, immutable artifact of one analysis call.
//
// Coordinates use the principal ("symmetric") normalization: Euclidean
// distance between row points approximates chi-square distance between
// the corresponding row profiles of the input table, and likewise for
// columns. Signs are ambiguous per dimension (see package doc).
type Result struct {
	RowLabels []string // copied from the input table, same order
	ColLabels []string

	// Eigenvalues are squared singular values (principal inertias),
	// one per reported dimension, descending.
	Eigenvalues []float64

	// VarianceRatios[k] = eigenvalue k divided by the total inertia over
	// ALL retained dimensions. When fewer dimensions are reported than
	// retained (WithDimensions), the reported ratios sum to less than 1.
	VarianceRatios []float64

	// RowCoords[i][k] and ColCoords[j][k] are principal coordinates of
	// category i (j) on dimension k.
	RowCoords [][]float64
	ColCoords [][]float64

	// RowContributions[i][k] = share of dimension k's inertia contributed
	// by row category i; sums to 1 over i for each k with nonzero
	// eigenvalue. Nil when contributions are disabled. ColContributions
	// is the column-side analogue.
	RowContributions [][]float64
	ColContributions [][]float64

	// Masses records the row and column masses the coordinates were
	// derived with, for downstream weighting.
	Masses Masses
}

// Dims returns the number of reported dimensions.
func (r *Result) Dims() int { return len(r.Eigenvalues) }

// Options configures Analyze.
//
// Dimensions    – number of leading dimensions to report. Zero (the
// default) reports every retained dimension. Values above the retained
// count are clamped.
// Contributions – whether per-category contribution shares are computed.
type Options struct {
	Dimensions    int
	Contributions bool
}

// Option is a functional option for configuring Analyze.
type Option func(*Options)

// DefaultOptions returns the canonical starting configuration:
// all retained dimensions, contributions included.
func DefaultOptions() Options {
	return Options{
		Dimensions:    0,
		Contributions: true,
	}
}

// WithDimensions limits the result to the k leading dimensions.
// Must pass k ≥ 1; smaller values panic with ErrBadDimensions, signalling
// an invalid configuration at the call site.
func WithDimensions(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadDimensions.Error())
		}
		o.Dimensions = k
	}
}

// WithoutContributions skips the per-category contribution block,
// leaving RowContributions and ColContributions nil.
func WithoutContributions() Option {
	return func(o *Options) {
		o.Contributions = false
	}
}
