package growth

import (
	"context"
	"log/slog"
	"math"

	icore "formind/internal/core"
	"formind/internal/logging"
	"formind/pkg/core"
)

const (
	// MoistureResponse scales soil moisture in the saturating growth response.
	MoistureResponse = 0.1
	// Turnover is the fraction of LAI retained after each step.
	Turnover = 0.9
	// DrawMin and DrawMax bound the stochastic growth multiplier.
	DrawMin = 0.5
	DrawMax = 1.0
)

// Model tracks a single stand's leaf area index driven by soil moisture.
type Model struct {
	seed         int64
	step         int
	soilMoisture float64
	lai          float64

	rng *core.RNG
	log *slog.Logger
}

// Option customises a Model at construction.
type Option func(*Model)

// WithLogger routes lifecycle narration to the provided logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a model with zero state and a random stream seeded from seed.
func New(seed int64, opts ...Option) *Model {
	m := &Model{
		seed: seed,
		rng:  core.NewRNG(seed),
		log:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log.Info("creating model", "seed", seed)
	return m
}

// GrowthPotential is the saturating response to soil moisture. It is zero at
// zero moisture and negative for negative moisture.
func GrowthPotential(moisture float64) float64 {
	return 1 - math.Exp(-MoistureResponse*moisture)
}

// SetSoilMoisture overwrites the moisture used by the next Update.
func (m *Model) SetSoilMoisture(v float64) { m.soilMoisture = v }

// SoilMoisture returns the current moisture input.
func (m *Model) SoilMoisture() float64 { return m.soilMoisture }

// LAI returns the current leaf area index.
func (m *Model) LAI() float64 { return m.lai }

// Steps returns the number of completed updates.
func (m *Model) Steps() int { return m.step }

// Seed returns the seed the random stream was built from.
func (m *Model) Seed() int64 { return m.seed }

// Update advances the model by one step.
func (m *Model) Update() {
	r := m.rng.Uniform(DrawMin, DrawMax)
	growth := GrowthPotential(m.soilMoisture) * r
	m.lai = (m.lai + growth) * Turnover
	m.step++
	m.log.Log(context.Background(), logging.LevelTrace, "updating model",
		"step", m.step, "soil_moisture", m.soilMoisture, "draw", r, "lai", m.lai)
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "formind" }

// Step advances the model by one step.
func (m *Model) Step() { m.Update() }

// Reset discards all state and reseeds the random stream. A zero seed keeps
// the seed the model was created with. Soil moisture is retained.
func (m *Model) Reset(seed int64) {
	if seed == 0 {
		seed = m.seed
	}
	m.seed = seed
	m.rng = core.NewRNG(seed)
	m.step = 0
	m.lai = 0
	m.log.Debug("resetting model", "seed", seed)
}

func init() {
	icore.Register("formind", func(cfg map[string]string) icore.Sim {
		c := FromMap(cfg)
		m := New(c.Seed)
		m.SetSoilMoisture(c.SoilMoisture)
		return m
	})
}
