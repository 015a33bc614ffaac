package ui

import (
	"strconv"

	"formind/internal/core"
)

const defaultFloatStep = 0.05

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return defaultFloatStep
	}
	return ctrl.Step
}

func clampControl(ctrl core.ParameterControl, v float64) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

// formatFloat picks a precision that resolves one step of the control.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := controlStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
