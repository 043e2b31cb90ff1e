package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/ant-mania/internal/persistence"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived runs",
		Long: `History lists recently archived runs, or the full fight log of one run.

Examples:
  antmania history
  antmania history --limit 25
  antmania history --run 5c2f8a1e-...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			runID, _ := cmd.Flags().GetString("run")

			db, err := persistence.Open(cfg.Archive.Path)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer db.Close()

			if runID != "" {
				return showRun(cmd, db, runID)
			}

			runs, err := db.RecentRuns(limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no archived runs")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s  %s  %s ants=%d seed=%d steps=%s reason=%q fights=%d survivors=%d (%dms)\n",
					r.ID, humanize.Time(r.CreatedAt), r.MapPath, r.Ants, r.Seed,
					humanize.Comma(int64(r.Steps)), r.Reason, r.Fights, r.Survivors,
					r.DurationMS)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 10, "Number of runs to list")
	cmd.Flags().String("run", "", "Show one run's fight log by ID")

	return cmd
}

func showRun(cmd *cobra.Command, db *persistence.DB, runID string) error {
	run, err := db.GetRun(runID)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}
	fights, err := db.FightsForRun(runID)
	if err != nil {
		return fmt.Errorf("fights for run %s: %w", runID, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s ants=%d seed=%d steps=%s reason=%q\n",
		run.ID, humanize.Time(run.CreatedAt), run.MapPath, run.Ants, run.Seed,
		humanize.Comma(int64(run.Steps)), run.Reason)
	if len(fights) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no fights")
		return nil
	}
	for _, f := range fights {
		fmt.Fprintf(cmd.OutOrStdout(), "step %d: %s\n", f.Step, f)
	}
	return nil
}
