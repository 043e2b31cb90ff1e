// Command antmania simulates giant space ants rampaging through a colony
// map: ants wander random tunnels, colliding ants destroy the colony they
// collide in, and whatever topology survives is printed when the dust
// settles.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/ant-mania/internal/config"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

// cfg is the effective configuration, loaded by the root PersistentPreRunE
// before any subcommand runs.
var cfg = config.Default()

func main() {
	rootCmd := &cobra.Command{
		Use:   "antmania",
		Short: "Giant space ant invasion simulator",
		Long: `antmania drops a population of giant space ants onto a colony map and
lets them wander. When ants collide in a colony, the colony and its
tunnels are destroyed and the ants are removed. The run ends when no ant
can move again or the step cap is hit, and the surviving map is printed
in the same format it was read from.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
			setupLogging(cfg.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (optional)")

	rootCmd.AddCommand(
		newRunCmd(),
		newGenerateCmd(),
		newValidateCmd(),
		newHistoryCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
}
