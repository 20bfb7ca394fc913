package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"corresp/synth"
)

var crosstabOut string

var crosstabCmd = &cobra.Command{
	Use:   "crosstab <sessions.csv>",
	Short: "Rebuild contingency tables from a session file",
	Long: `Crosstab reads a long-form session file (as written by generate) and
rebuilds the three contingency tables from it. Use it to re-tabulate a
dataset without regenerating the sessions.`,
	Args: cobra.ExactArgs(1),
	RunE: crosstabExecution,
}

func init() {
	crosstabCmd.Flags().StringVar(&crosstabOut, "out", ".", "output directory")
}

func crosstabExecution(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("crosstab: %w", err)
	}
	defer f.Close()

	sessions, err := synth.ReadSessions(f)
	if err != nil {
		return err
	}
	slog.Info("sessions loaded", "path", args[0], "count", len(sessions))

	return writeCrossTabs(sessions, crosstabOut)
}
