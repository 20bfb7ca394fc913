package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"corresp/ca"
	"corresp/table"
)

// defaultFiles is the dataset set analyzed when no files are named,
// mirroring the conventional filenames of the bundled demos. Missing
// defaults are skipped with a warning; explicitly named files are not.
var defaultFiles = []string{"data.csv", "co_occurrence_cat.csv"}

var analyzeDimensions int

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [files...]",
	Short: "Run correspondence analysis on contingency-table CSV files",
	Long: `Analyze loads each CSV as a contingency table (first column = row labels,
header = column labels, optional "size" column split off as point weights),
runs the CA decomposition, and prints eigenvalues, variance shares and
per-category statistics for the leading dimension.`,
	RunE: analyzeExecution,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeDimensions, "dimensions", 0,
		"limit the report to the k leading dimensions (0 = all retained)")
}

func analyzeExecution(cmd *cobra.Command, args []string) error {
	files := args
	defaulted := len(files) == 0
	if defaulted {
		files = defaultFiles
	}

	var opts []ca.Option
	if analyzeDimensions > 0 {
		opts = append(opts, ca.WithDimensions(analyzeDimensions))
	}

	analyzed := 0
	for _, file := range files {
		ds, err := table.Load(file)
		if err != nil {
			if defaulted && errors.Is(err, fs.ErrNotExist) {
				slog.Warn("skipping missing default dataset", "file", file)

				continue
			}

			return err
		}
		slog.Debug("loaded table", "file", file,
			"rows", ds.Table.Rows(), "cols", ds.Table.Cols(), "sized", ds.Sizes != nil)

		res, err := ca.Analyze(ds.Table, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := writeReport(cmd.OutOrStdout(), file, res); err != nil {
			return err
		}
		analyzed++
	}
	if analyzed == 0 {
		return fmt.Errorf("no datasets found (looked for %v)", defaultFiles)
	}

	return nil
}
