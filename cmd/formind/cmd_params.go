package main

import (
	"encoding/json"
	"fmt"

	"formind/internal/sims/growth"

	"github.com/spf13/cobra"
)

func newParamsCmd() *cobra.Command {
	var seed int64
	var moisture float64

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show the model state and growth constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := growth.New(seed)
			m.SetSoilMoisture(moisture)
			snap := m.Parameters()

			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			for _, g := range snap.Groups {
				fmt.Fprintf(out, "%s\n", g.Name)
				for _, p := range g.Params {
					fmt.Fprintf(out, "  %-18s %s\n", p.Key, p.Value)
				}
			}
			return nil
		},
	}

	def := growth.DefaultConfig()
	cmd.Flags().Int64Var(&seed, "seed", def.Seed, "Seed for the random stream")
	cmd.Flags().Float64Var(&moisture, "moisture", def.SoilMoisture, "Soil moisture")
	return cmd
}
