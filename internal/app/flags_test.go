package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "7", "-moisture", "2.5", "-history", "50"}))

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 2.5, cfg.Moisture)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, "formind", cfg.Sim)
	assert.Equal(t, map[string]string{"seed": "7", "soil_moisture": "2.5"}, cfg.Params())
}
