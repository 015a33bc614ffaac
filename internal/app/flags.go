package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Moisture float64
	Width    int
	Height   int
	HUDWidth int
	Floor    float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "formind",
		Scale:    3,
		TPS:      10,
		Seed:     42,
		Moisture: 10,
		Width:    200,
		Height:   120,
		HUDWidth: 240,
		Floor:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random stream")
	fs.Float64Var(&c.Moisture, "moisture", c.Moisture, "initial soil moisture")
	fs.IntVar(&c.Width, "history", c.Width, "number of steps shown in the plot")
	fs.IntVar(&c.Height, "height", c.Height, "plot height in logical pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width, 0 hides it")
	fs.Float64Var(&c.Floor, "floor", c.Floor, "minimum LAI extent of the plot")
}

// Params converts the config into the flag-style map understood by sim factories.
func (c *Config) Params() map[string]string {
	return map[string]string{
		"seed":          strconv.FormatInt(c.Seed, 10),
		"soil_moisture": strconv.FormatFloat(c.Moisture, 'f', -1, 64),
	}
}
