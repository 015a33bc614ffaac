package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formind",
		Short: "Stochastic leaf area index growth driven by soil moisture",
		Long: `formind advances a single vegetation stand whose leaf area index grows
with soil moisture and decays by a fixed turnover every step.

Runs are reproducible: the same seed and moisture inputs always give the
same LAI series.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, debug or trace")

	rootCmd.AddCommand(
		newRunCmd(),
		newParamsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
