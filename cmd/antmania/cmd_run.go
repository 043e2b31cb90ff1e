package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/ant-mania/internal/engine"
	"github.com/talgya/ant-mania/internal/entropy"
	"github.com/talgya/ant-mania/internal/mapfile"
	"github.com/talgya/ant-mania/internal/persistence"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print the surviving map",
		Long: `Run parses a map file, places the requested number of ants at random
colonies, and simulates until no ant can move again or the step cap is
reached. The surviving topology is printed to stdout in map format.

Examples:
  antmania run --map world.map --ants 50
  antmania run --map world.map --ants 10 --seed 7 --verbose
  antmania run --map world.map --ants 100 --archive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapPath, _ := cmd.Flags().GetString("map")
			ants, _ := cmd.Flags().GetInt("ants")
			seed, _ := cmd.Flags().GetInt64("seed")
			maxMoves, _ := cmd.Flags().GetInt("max-moves")
			maxSteps, _ := cmd.Flags().GetInt("max-steps")
			verbose, _ := cmd.Flags().GetBool("verbose")
			archive, _ := cmd.Flags().GetBool("archive")

			colonies, err := mapfile.ParseFile(mapPath)
			if err != nil {
				return err
			}

			// Seed 0 means derive one; the effective seed is always logged
			// so any run can be replayed.
			if seed == 0 {
				seed = entropy.Seed()
			}
			if maxMoves == 0 {
				maxMoves = cfg.MaxMoves
			}
			if maxSteps == 0 {
				maxSteps = cfg.MaxSteps
			}

			sim, err := engine.New(colonies, ants, engine.Config{
				MaxMoves: maxMoves,
				MaxSteps: maxSteps,
				Verbose:  verbose,
				Rand:     rand.New(rand.NewSource(seed)),
			})
			if err != nil {
				return err
			}

			slog.Info("simulation starting",
				"map", mapPath,
				"colonies", len(colonies),
				"ants", ants,
				"seed", seed,
			)

			start := time.Now()
			out, err := sim.Run()
			if err != nil {
				return fmt.Errorf("simulation aborted: %w", err)
			}
			elapsed := time.Since(start)

			survivors := sim.Survivors()
			for _, v := range survivors {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}

			slog.Info("simulation complete",
				"steps", humanize.Comma(int64(out.Steps)),
				"reason", out.Reason.String(),
				"fights", len(sim.Fights()),
				"survivors", len(survivors),
				"active_ants", sim.ActiveAnts(),
				"duration", elapsed.Round(time.Microsecond),
			)

			if archive || cfg.Archive.Enabled {
				if err := archiveRun(mapPath, ants, seed, out, sim, len(survivors), elapsed); err != nil {
					return fmt.Errorf("archive run: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("map", "", "Path to the colony map file")
	cmd.Flags().Int("ants", 0, "Number of ants to place")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = derive from entropy)")
	cmd.Flags().Int("max-moves", 0, "Per-ant move cap (0 = configured default)")
	cmd.Flags().Int("max-steps", 0, "Global step cap (0 = configured default)")
	cmd.Flags().Bool("verbose", false, "Log each fight as it happens")
	cmd.Flags().Bool("archive", false, "Record the outcome in the run archive")
	cmd.MarkFlagRequired("map")
	cmd.MarkFlagRequired("ants")

	return cmd
}

func archiveRun(mapPath string, ants int, seed int64, out engine.Outcome, sim *engine.Simulation, survivors int, elapsed time.Duration) error {
	db, err := persistence.Open(cfg.Archive.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	run := persistence.Run{
		ID:         persistence.NewRunID(),
		MapPath:    mapPath,
		Ants:       ants,
		Seed:       seed,
		Steps:      out.Steps,
		Reason:     out.Reason.String(),
		Survivors:  survivors,
		Fights:     len(sim.Fights()),
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.SaveRun(run, sim.Fights()); err != nil {
		return err
	}
	slog.Info("run archived", "id", run.ID, "path", cfg.Archive.Path)
	return nil
}
