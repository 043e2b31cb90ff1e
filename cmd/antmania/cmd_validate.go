package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/ant-mania/internal/mapfile"
)

// validateResult is the machine-readable shape of a validate run.
type validateResult struct {
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Colonies int    `json:"colonies,omitempty"`
	Tunnels  int    `json:"tunnels,omitempty"`
	Isolated int    `json:"isolated,omitempty"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a map file and report its statistics",
		Long: `Validate parses a map file and reports colony, tunnel, and isolated
colony counts, or the parse error when the file is malformed.

Examples:
  antmania validate --map world.map
  antmania validate --map world.map --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapPath, _ := cmd.Flags().GetString("map")
			jsonOut, _ := cmd.Flags().GetBool("json")

			colonies, err := mapfile.ParseFile(mapPath)
			if err != nil {
				if jsonOut {
					json.NewEncoder(cmd.OutOrStdout()).Encode(validateResult{
						Valid: false,
						Error: err.Error(),
					})
					return fmt.Errorf("map invalid")
				}
				return fmt.Errorf("map invalid: %w", err)
			}

			tunnels, isolated := 0, 0
			for i := range colonies {
				n := colonies[i].TunnelCount()
				tunnels += n
				if n == 0 {
					isolated++
				}
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(validateResult{
					Valid:    true,
					Colonies: len(colonies),
					Tunnels:  tunnels,
					Isolated: isolated,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "map OK: %d colonies, %d tunnels, %d isolated\n",
				len(colonies), tunnels, isolated)
			return nil
		},
	}

	cmd.Flags().String("map", "", "Path to the colony map file")
	cmd.Flags().Bool("json", false, "Emit a machine-readable result")
	cmd.MarkFlagRequired("map")

	return cmd
}
