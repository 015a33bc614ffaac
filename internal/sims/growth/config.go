package growth

import "strconv"

// Config controls a single growth run.
type Config struct {
	Seed         int64
	SoilMoisture float64
	Steps        int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:         42,
		SoilMoisture: 0,
		Steps:        30,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["soil_moisture"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SoilMoisture = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	return c
}
