package ca_test

import (
	"testing"

	"corresp/ca"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTable returns a small well-formed contingency table used as the
// baseline across validation tests.
func validTable() *ca.Table {
	return &ca.Table{
		RowLabels: []string{"espresso", "filter", "decaf"},
		ColLabels: []string{"morning", "afternoon"},
		Data: [][]float64{
			{30, 10},
			{5, 25},
			{8, 12},
		},
	}
}

// TestValidate_Accepts verifies that a well-formed table passes.
func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, ca.Validate(validTable()), "well-formed table must validate")
}

// TestValidate_ShapeMismatch covers label/matrix disagreement and ragged rows.
func TestValidate_ShapeMismatch(t *testing.T) {
	tbl := validTable()
	tbl.RowLabels = tbl.RowLabels[:2] // three matrix rows, two labels
	assert.ErrorIs(t, ca.Validate(tbl), ca.ErrShapeMismatch, "label count mismatch must error")

	tbl = validTable()
	tbl.Data[1] = []float64{5} // ragged row
	assert.ErrorIs(t, ca.Validate(tbl), ca.ErrShapeMismatch, "ragged matrix must error")
}

// TestValidate_EmptyTable covers zero rows, zero columns and zero grand total.
func TestValidate_EmptyTable(t *testing.T) {
	empty := &ca.Table{}
	assert.ErrorIs(t, ca.Validate(empty), ca.ErrEmptyTable, "zero-dimension table must error")

	noCols := &ca.Table{RowLabels: []string{"a"}, Data: [][]float64{{}}}
	assert.ErrorIs(t, ca.Validate(noCols), ca.ErrEmptyTable, "zero columns must error")

	// All-zero: reported as empty, not as a degenerate row.
	zeros := validTable()
	for i := range zeros.Data {
		for j := range zeros.Data[i] {
			zeros.Data[i][j] = 0
		}
	}
	assert.ErrorIs(t, ca.Validate(zeros), ca.ErrEmptyTable, "zero grand total must error ErrEmptyTable")
}

// TestValidate_Labels covers empty and duplicate labels on both axes.
func TestValidate_Labels(t *testing.T) {
	tbl := validTable()
	tbl.RowLabels[1] = ""
	assert.ErrorIs(t, ca.Validate(tbl), ca.ErrEmptyLabel, "empty row label must error")

	tbl = validTable()
	tbl.ColLabels[1] = tbl.ColLabels[0]
	assert.ErrorIs(t, ca.Validate(tbl), ca.ErrDuplicateLabel, "duplicate column label must error")
}

// TestValidate_NegativeEntry verifies rejection of negative and non-finite cells.
func TestValidate_NegativeEntry(t *testing.T) {
	tbl := validTable()
	tbl.Data[2][0] = -1
	err := ca.Validate(tbl)
	assert.ErrorIs(t, err, ca.ErrNegativeEntry, "negative entry must error")
	assert.Contains(t, err.Error(), "decaf", "error must carry the offending row label")
}

// TestValidate_DegenerateRow verifies that a zero-sum row is rejected with
// its label in the error context.
func TestValidate_DegenerateRow(t *testing.T) {
	tbl := validTable()
	tbl.Data[1] = []float64{0, 0}
	err := ca.Validate(tbl)
	require.ErrorIs(t, err, ca.ErrDegenerateRow, "zero-sum row must error")
	assert.Contains(t, err.Error(), "filter", "error must name the degenerate row")
}

// TestValidate_DegenerateColumn verifies that a zero-sum column is rejected.
func TestValidate_DegenerateColumn(t *testing.T) {
	tbl := validTable()
	for i := range tbl.Data {
		tbl.Data[i][1] = 0
	}
	err := ca.Validate(tbl)
	require.ErrorIs(t, err, ca.ErrDegenerateColumn, "zero-sum column must error")
	assert.Contains(t, err.Error(), "afternoon", "error must name the degenerate column")
}

// TestNewTable wires validation into construction.
func TestNewTable(t *testing.T) {
	got, err := ca.NewTable(
		[]string{"a", "b"},
		[]string{"x", "y"},
		[][]float64{{1, 2}, {3, 4}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 2, got.Cols())
	assert.InDelta(t, 10, got.GrandTotal(), 0, "grand total must sum all entries")

	_, err = ca.NewTable([]string{"a"}, []string{"x"}, [][]float64{{-1}})
	assert.ErrorIs(t, err, ca.ErrNegativeEntry, "NewTable must reject invalid data")
}
