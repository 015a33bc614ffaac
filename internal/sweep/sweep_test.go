package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"formind/internal/sims/growth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMatchesSequentialRuns(t *testing.T) {
	plan := Plan{
		Moistures: []float64{0, 5, 20},
		Seeds:     []int64{1, 2, 3, 4},
		Steps:     25,
	}
	runs, err := Execute(context.Background(), plan, 3)
	require.NoError(t, err)
	require.Len(t, runs, 12)

	for i, r := range runs {
		assert.Equal(t, plan.Moistures[i/4], r.Moisture)
		assert.Equal(t, plan.Seeds[i%4], r.Seed)

		m := growth.New(r.Seed)
		m.SetSoilMoisture(r.Moisture)
		for s := 0; s < plan.Steps; s++ {
			m.Update()
		}
		assert.Equal(t, m.LAI(), r.LAI, "run %d", i)
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Execute(ctx, Plan{Moistures: []float64{1}, Seeds: []int64{1}, Steps: 1}, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecuteRejectsNegativeSteps(t *testing.T) {
	_, err := Execute(context.Background(), Plan{Steps: -1}, 1)
	assert.Error(t, err)
}

func TestSummarise(t *testing.T) {
	runs := []Run{
		{Moisture: 10, Seed: 1, LAI: 2},
		{Moisture: 0, Seed: 1, LAI: 0},
		{Moisture: 10, Seed: 2, LAI: 4},
	}
	got := Summarise(runs)
	require.Len(t, got, 2)

	assert.Equal(t, 0.0, got[0].Moisture)
	assert.Equal(t, 1, got[0].Runs)
	assert.Equal(t, 0.0, got[0].Equilibrium)

	assert.Equal(t, 10.0, got[1].Moisture)
	assert.Equal(t, 2, got[1].Runs)
	assert.Equal(t, 3.0, got[1].Mean)
	assert.Equal(t, 2.0, got[1].Min)
	assert.Equal(t, 4.0, got[1].Max)
	assert.Contains(t, got[1].String(), "runs=2")
}

func TestLongRunsApproachEquilibrium(t *testing.T) {
	plan := Plan{Moistures: []float64{30}, Steps: 400}
	for s := int64(1); s <= 64; s++ {
		plan.Seeds = append(plan.Seeds, s)
	}
	runs, err := Execute(context.Background(), plan, 8)
	require.NoError(t, err)

	summary := Summarise(runs)
	require.Len(t, summary, 1)
	assert.InDelta(t, Equilibrium(30), summary[0].Mean, 0.25)
	assert.Less(t, summary[0].Max, 9.0)
}

func TestSummariseGroupsNaNLast(t *testing.T) {
	runs := []Run{
		{Moisture: math.NaN(), Seed: 1, LAI: 1},
		{Moisture: 1, Seed: 1, LAI: 0.5},
		{Moisture: math.NaN(), Seed: 2, LAI: 3},
	}
	got := Summarise(runs)
	require.Len(t, got, 2)

	assert.Equal(t, 1.0, got[0].Moisture)
	assert.Equal(t, 1, got[0].Runs)

	assert.True(t, math.IsNaN(got[1].Moisture))
	assert.Equal(t, 2, got[1].Runs)
	assert.Equal(t, 2.0, got[1].Mean)
	assert.Equal(t, 1.0, got[1].Min)
	assert.Equal(t, 3.0, got[1].Max)
}

func TestExecuteThenSummariseWithNaNLevel(t *testing.T) {
	runs, err := Execute(context.Background(), Plan{Moistures: []float64{math.NaN(), 1}, Seeds: []int64{1}, Steps: 2}, 1)
	require.NoError(t, err)

	got := Summarise(runs)
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Moisture)
	assert.True(t, math.IsNaN(got[1].Moisture))
}
