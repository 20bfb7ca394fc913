package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"

	"corresp/ca"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold).SprintfFunc()
	labelStyle  = color.New(color.Faint).SprintFunc()
)

// writeReport prints the textual analysis report for one dataset: the
// eigenvalue/variance table and the leading-dimension row statistics,
// sorted by coordinate as in classic CA summaries.
func writeReport(w io.Writer, name string, res *ca.Result) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", headerStyle("Correspondence Analysis: %s", name)); err != nil {
		return err
	}
	if res.Dims() == 0 {
		_, err := fmt.Fprintln(w, "no informative dimensions (table has a single row or column)")

		return err
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	// Eigenvalues, variance shares, cumulative shares.
	fmt.Fprintln(tw, labelStyle("dim\teigenvalue\tvariance\tcumulative"))
	var cum float64
	for k := 0; k < res.Dims(); k++ {
		cum += res.VarianceRatios[k]
		fmt.Fprintf(tw, "%d\t%.4f\t%.1f%%\t%.1f%%\n",
			k+1, res.Eigenvalues[k], 100*res.VarianceRatios[k], 100*cum)
	}
	fmt.Fprintln(tw)

	// Leading-dimension row statistics, strongest coordinate first.
	order := make([]int, len(res.RowLabels))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return res.RowCoords[order[a]][0] > res.RowCoords[order[b]][0]
	})

	fmt.Fprintln(tw, labelStyle("row\tdim1 coordinate\tcontribution"))
	for _, i := range order {
		contrib := "-"
		if res.RowContributions != nil {
			contrib = fmt.Sprintf("%.3f", res.RowContributions[i][0])
		}
		fmt.Fprintf(tw, "%s\t%+.3f\t%s\n", res.RowLabels[i], res.RowCoords[i][0], contrib)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}
