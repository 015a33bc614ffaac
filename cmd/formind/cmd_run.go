package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"formind/internal/adapters"
	"formind/internal/core"
	"formind/internal/logging"
	"formind/internal/sims/growth"

	"github.com/spf13/cobra"
)

type runOptions struct {
	cfg    growth.Config
	series []float64
	reduce bool
	pwp    float64
	fc     float64

	// substeps is the number of soil water readings averaged into one
	// stress factor per update.
	substeps int
	tps      int
}

type runResult struct {
	Seed  int64     `json:"seed"`
	Steps int       `json:"steps"`
	Input []float64 `json:"soil_moisture"`
	LAI   []float64 `json:"lai"`
}

func newRunCmd() *cobra.Command {
	var (
		sets   []string
		series string
		opts   runOptions
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance one model and print its LAI series",
		Long: `Advance one model for --steps updates and print the LAI after each update.

Soil moisture is constant (--moisture) unless --series gives a comma-separated
list of values that is cycled step by step. With --pwp and --fc the series is
read as soil water and converted into a stress factor that scales --moisture,
which must then be non-zero. --substeps readings of the series are averaged
into the factor of each update.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]string{}
			for _, kv := range sets {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q: want key=value", kv)
				}
				params[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
			cfg := growth.FromMap(params)
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = opts.cfg.Seed
			}
			if flags.Changed("moisture") {
				cfg.SoilMoisture = opts.cfg.SoilMoisture
			}
			if flags.Changed("steps") {
				if opts.cfg.Steps < 0 {
					return fmt.Errorf("--steps must be non-negative, got %d", opts.cfg.Steps)
				}
				cfg.Steps = opts.cfg.Steps
			}
			opts.cfg = cfg
			opts.reduce = flags.Changed("pwp") || flags.Changed("fc")
			if opts.substeps < 1 {
				return fmt.Errorf("--substeps must be at least 1, got %d", opts.substeps)
			}
			if opts.substeps > 1 && !opts.reduce {
				return errors.New("--substeps averages soil water and needs --pwp/--fc")
			}

			var err error
			if opts.series, err = parseSeries(series); err != nil {
				return err
			}

			level, _ := cmd.Flags().GetString("log-level")
			logger := logging.NewLogger(level, cmd.ErrOrStderr())

			res, err := runModel(cmd.Context(), opts, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return writeRun(cmd, res, jsonOut)
		},
	}

	def := growth.DefaultConfig()
	cmd.Flags().Int64Var(&opts.cfg.Seed, "seed", def.Seed, "Seed for the random stream")
	cmd.Flags().Float64Var(&opts.cfg.SoilMoisture, "moisture", def.SoilMoisture, "Constant soil moisture")
	cmd.Flags().IntVar(&opts.cfg.Steps, "steps", def.Steps, "Number of updates")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Config override in key=value form (repeatable)")
	cmd.Flags().StringVar(&series, "series", "", "Comma-separated soil moisture values cycled per step")
	cmd.Flags().Float64Var(&opts.pwp, "pwp", 0, "Permanent wilting point for soil water stress")
	cmd.Flags().Float64Var(&opts.fc, "fc", 0, "Field capacity for soil water stress")
	cmd.Flags().IntVar(&opts.substeps, "substeps", 1, "Soil water readings averaged per update with --pwp/--fc")
	cmd.Flags().IntVar(&opts.tps, "tps", 0, "Pace updates at this many per second (0 runs flat out)")
	return cmd
}

func runModel(ctx context.Context, opts runOptions, logger *slog.Logger) (runResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var reduction *adapters.SoilWaterReduction
	if opts.reduce {
		if len(opts.series) == 0 {
			return runResult{}, errors.New("--pwp/--fc need a soil water --series")
		}
		if opts.cfg.SoilMoisture == 0 {
			return runResult{}, errors.New("--pwp/--fc scale --moisture; set a non-zero --moisture")
		}
		var err error
		if reduction, err = adapters.NewSoilWaterReduction(opts.pwp, opts.fc); err != nil {
			return runResult{}, err
		}
	}

	var pacer *core.FixedStep
	if opts.tps > 0 {
		pacer = core.NewFixedStep(opts.tps)
	}

	substeps := max(opts.substeps, 1)
	next := 0

	m := growth.New(opts.cfg.Seed, growth.WithLogger(logger))
	res := runResult{
		Seed:  opts.cfg.Seed,
		Input: make([]float64, 0, opts.cfg.Steps),
		LAI:   make([]float64, 0, opts.cfg.Steps),
	}

	for i := 0; i < opts.cfg.Steps; i++ {
		if err := waitTick(ctx, pacer); err != nil {
			return res, err
		}

		moisture := opts.cfg.SoilMoisture
		switch {
		case reduction != nil:
			for k := 0; k < substeps; k++ {
				reduction.Push(opts.series[next%len(opts.series)])
				next++
			}
			moisture = opts.cfg.SoilMoisture * reduction.Pull()
		case len(opts.series) > 0:
			moisture = opts.series[i%len(opts.series)]
		}

		m.SetSoilMoisture(moisture)
		m.Update()
		res.Input = append(res.Input, moisture)
		res.LAI = append(res.LAI, m.LAI())
	}
	res.Steps = m.Steps()
	logger.Info("run finished", "seed", res.Seed, "steps", res.Steps, "lai", m.LAI())
	return res, nil
}

func waitTick(ctx context.Context, pacer *core.FixedStep) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run interrupted: %w", err)
		}
		if pacer == nil || pacer.ShouldStep() {
			return nil
		}
		time.Sleep(pacer.Interval() / 4)
	}
}

func parseSeries(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse series value %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func writeRun(cmd *cobra.Command, res runResult, jsonOut bool) error {
	out := cmd.OutOrStdout()
	if jsonOut {
		return json.NewEncoder(out).Encode(res)
	}
	for i, lai := range res.LAI {
		if _, err := fmt.Fprintf(out, "%d\t%.6f\t%.6f\n", i+1, res.Input[i], lai); err != nil {
			return err
		}
	}
	return nil
}

