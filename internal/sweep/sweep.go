// Package sweep runs many independent growth models across a grid of soil
// moisture levels and seeds and summarises their final leaf area index.
package sweep

import (
	"context"
	"fmt"
	"math"
	"sort"

	"formind/internal/sims/growth"

	"golang.org/x/sync/errgroup"
)

// Plan describes the scenarios to evaluate.
type Plan struct {
	Moistures []float64
	Seeds     []int64
	Steps     int
}

// Run is the outcome of one model driven at constant moisture.
type Run struct {
	Moisture float64
	Seed     int64
	LAI      float64
}

// Summary aggregates all runs sharing a moisture level.
type Summary struct {
	Moisture float64
	Runs     int
	Mean     float64
	Min      float64
	Max      float64
	// Equilibrium is the expected long-run LAI, 9 * potential * 0.75.
	Equilibrium float64
}

func (s Summary) String() string {
	return fmt.Sprintf("moisture=%.2f runs=%d mean=%.4f min=%.4f max=%.4f equilibrium=%.4f",
		s.Moisture, s.Runs, s.Mean, s.Min, s.Max, s.Equilibrium)
}

// Execute evaluates every moisture/seed pair on at most workers goroutines.
// Results come back in plan order.
func Execute(ctx context.Context, plan Plan, workers int) ([]Run, error) {
	if plan.Steps < 0 {
		return nil, fmt.Errorf("sweep steps must be non-negative, got %d", plan.Steps)
	}
	if workers <= 0 {
		workers = 1
	}

	runs := make([]Run, len(plan.Moistures)*len(plan.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for mi, moisture := range plan.Moistures {
		for si, seed := range plan.Seeds {
			idx := mi*len(plan.Seeds) + si
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				runs[idx] = simulate(moisture, seed, plan.Steps)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return runs, nil
}

func simulate(moisture float64, seed int64, steps int) Run {
	m := growth.New(seed)
	m.SetSoilMoisture(moisture)
	for i := 0; i < steps; i++ {
		m.Update()
	}
	return Run{Moisture: moisture, Seed: seed, LAI: m.LAI()}
}

// Summarise groups runs by moisture, ordered by ascending moisture. NaN
// levels never compare equal, so they share one group sorted last.
func Summarise(runs []Run) []Summary {
	byMoisture := map[float64]*Summary{}
	var groups []*Summary
	var nan *Summary
	for _, r := range runs {
		var s *Summary
		if math.IsNaN(r.Moisture) {
			s = nan
		} else {
			s = byMoisture[r.Moisture]
		}
		if s == nil {
			s = &Summary{
				Moisture:    r.Moisture,
				Min:         math.Inf(1),
				Max:         math.Inf(-1),
				Equilibrium: Equilibrium(r.Moisture),
			}
			if math.IsNaN(r.Moisture) {
				nan = s
			} else {
				byMoisture[r.Moisture] = s
			}
			groups = append(groups, s)
		}
		s.Runs++
		s.Mean += r.LAI
		s.Min = math.Min(s.Min, r.LAI)
		s.Max = math.Max(s.Max, r.LAI)
	}
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].Moisture, groups[j].Moisture
		if math.IsNaN(a) || math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a < b
	})

	out := make([]Summary, 0, len(groups))
	for _, s := range groups {
		s.Mean /= float64(s.Runs)
		out = append(out, *s)
	}
	return out
}

// Equilibrium returns the fixed point of the expected update at constant
// moisture: L = 0.9 * (L + potential * E[r]) with E[r] = 0.75.
func Equilibrium(moisture float64) float64 {
	meanDraw := (growth.DrawMin + growth.DrawMax) / 2
	return growth.Turnover * growth.GrowthPotential(moisture) * meanDraw / (1 - growth.Turnover)
}
