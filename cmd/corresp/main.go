// Package main implements the corresp CLI: correspondence analysis of
// contingency tables, synthetic dataset generation, and cross-tabulation.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "corresp",
	Short: "Correspondence analysis toolkit",
	Long: `corresp maps categorical association: it decomposes contingency tables
of co-occurrence counts into chi-square preserving coordinates, reports
eigenvalues and variance shares, and generates synthetic datasets to
experiment with.`,
	SilenceUsage: true,
}

var verbose bool

func main() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(crosstabCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(setupLogging)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging routes structured logs to stderr, coloured via tint,
// keeping stdout clean for report output and shell pipelines.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
