package ui

import (
	"testing"

	"formind/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestClampControl(t *testing.T) {
	ctrl := core.ParameterControl{Min: 0, Max: 100, HasMin: true, HasMax: true}
	assert.Equal(t, 0.0, clampControl(ctrl, -3))
	assert.Equal(t, 100.0, clampControl(ctrl, 140))
	assert.Equal(t, 42.0, clampControl(ctrl, 42))

	open := core.ParameterControl{}
	assert.Equal(t, -3.0, clampControl(open, -3))
}

func TestControlStepDefault(t *testing.T) {
	assert.Equal(t, defaultFloatStep, controlStep(core.ParameterControl{}))
	assert.Equal(t, 2.0, controlStep(core.ParameterControl{Step: 2}))
}

func TestFormatFloatPrecision(t *testing.T) {
	assert.Equal(t, "12.0", formatFloat(core.ParameterControl{Step: 1}, 12))
	assert.Equal(t, "0.25", formatFloat(core.ParameterControl{Step: 0.05}, 0.25))
	assert.Equal(t, "0.125", formatFloat(core.ParameterControl{Step: 0.005}, 0.125))
	assert.Equal(t, "0.0001", formatFloat(core.ParameterControl{Step: 0.0001}, 0.0001))
}
