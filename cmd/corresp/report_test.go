package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corresp/ca"
)

// TestWriteReport renders a deterministic 2×2 analysis and checks the
// report skeleton without pinning exact float formatting of noise digits.
func TestWriteReport(t *testing.T) {
	color.NoColor = true // keep assertions independent of the terminal

	tbl, err := ca.NewTable(
		[]string{"r1", "r2"},
		[]string{"c1", "c2"},
		[][]float64{{10, 0}, {0, 10}},
	)
	require.NoError(t, err)
	res, err := ca.Analyze(tbl)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, writeReport(&buf, "demo.csv", res))
	out := buf.String()

	assert.Contains(t, out, "Correspondence Analysis: demo.csv")
	assert.Contains(t, out, "100.0%", "single dimension must report full variance")
	assert.Contains(t, out, "r1")
	assert.Contains(t, out, "r2")
}

// TestWriteReport_NoDimensions degrades gracefully for 1×n tables.
func TestWriteReport_NoDimensions(t *testing.T) {
	color.NoColor = true

	tbl, err := ca.NewTable([]string{"only"}, []string{"a", "b"}, [][]float64{{1, 2}})
	require.NoError(t, err)
	res, err := ca.Analyze(tbl)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, writeReport(&buf, "flat.csv", res))
	assert.Contains(t, buf.String(), "no informative dimensions")
}
