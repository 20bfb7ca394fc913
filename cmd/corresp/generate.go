package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"corresp/ca"
	"corresp/synth"
	"corresp/table"
)

var (
	generateSessions int
	generateSeed     int64
	generateOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic airline cross-visitation dataset",
	Long: `Generate produces a deterministic synthetic dataset of airline comparison
sessions, then writes the long-form session file and three contingency
tables (carriers × profiles, × visit patterns, × regions) as CSV.`,
	RunE: generateExecution,
}

func init() {
	generateCmd.Flags().IntVar(&generateSessions, "sessions", 100000, "number of visitor sessions")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "random stream seed")
	generateCmd.Flags().StringVar(&generateOut, "out", ".", "output directory")
}

func generateExecution(_ *cobra.Command, _ []string) error {
	sessions, err := synth.Generate(generateSessions,
		synth.WithSeed(generateSeed),
		synth.WithProgress(func(done, total int) {
			slog.Debug("generating sessions", "done", done, "total", total)
		}),
	)
	if err != nil {
		return err
	}
	slog.Info("sessions generated", "count", len(sessions), "seed", generateSeed)

	sessionsPath := filepath.Join(generateOut, "synthetic_airline_visits.csv")
	if err := synth.SaveSessions(sessionsPath, sessions); err != nil {
		return err
	}
	slog.Info("session file written", "path", sessionsPath)

	return writeCrossTabs(sessions, generateOut)
}

// writeCrossTabs builds and saves the three contingency tables derived
// from a session set. Shared by generate and crosstab.
func writeCrossTabs(sessions []synth.Session, dir string) error {
	tabs := []struct {
		name  string
		build func([]synth.Session) (*ca.Table, error)
	}{
		{"airline_usertype_contingency.csv", synth.CrossTabProfiles},
		{"airline_visit_pattern_contingency.csv", synth.CrossTabVisitPatterns},
		{"airline_geographic_contingency.csv", synth.CrossTabRegions},
	}

	for _, tab := range tabs {
		tbl, err := tab.build(sessions)
		if err != nil {
			return fmt.Errorf("%s: %w", tab.name, err)
		}
		path := filepath.Join(dir, tab.name)
		if err := table.Save(path, tbl); err != nil {
			return err
		}
		slog.Info("contingency table written", "path", path,
			"rows", tbl.Rows(), "cols", tbl.Cols(), "total", tbl.GrandTotal())
	}

	return nil
}
