package main

import (
	"context"
	"flag"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"formind/internal/logging"
	"formind/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 200, "updates per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 16, "seeds per moisture level, starting at -seed")
	firstSeed := flag.Int64("seed", 1, "first seed")
	levels := flag.String("moisture", "0,1,2,5,10,20,40,80", "comma-separated soil moisture levels")
	level := flag.String("log-level", "info", "log level: info, debug or trace")
	flag.Parse()

	logger := logging.NewLogger(*level, os.Stderr)

	moistures, err := parseLevels(*levels)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	plan := sweep.Plan{Moistures: moistures, Steps: *steps}
	for i := 0; i < *seeds; i++ {
		plan.Seeds = append(plan.Seeds, *firstSeed+int64(i))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweeping", "levels", len(moistures), "seeds", len(plan.Seeds), "workers", *workers, "steps", *steps)
	start := time.Now()
	runs, err := sweep.Execute(ctx, plan, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Debug("sweep finished", "runs", len(runs), "elapsed", time.Since(start).Round(time.Millisecond))

	for _, s := range sweep.Summarise(runs) {
		fmt.Println(s)
	}
}

var errNonFinite = errors.New("not a finite number")

func parseLevels(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse moisture level %q: %w", part, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("parse moisture level %q: %w", part, errNonFinite)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no moisture levels given")
	}
	return out, nil
}
