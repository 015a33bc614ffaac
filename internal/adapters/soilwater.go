// Package adapters converts upstream hydrology signals into growth inputs.
package adapters

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when field capacity does not exceed the wilting point.
var ErrInvalidRange = errors.New("field capacity must exceed permanent wilting point")

// SoilWaterReduction turns soil water readings into a water stress reduction
// factor in [0, 1], averaged over all readings pushed since the last pull.
type SoilWaterReduction struct {
	pwp float64
	msw float64

	sum   float64
	count int
}

// NewSoilWaterReduction builds an adapter for the given permanent wilting
// point and field capacity.
func NewSoilWaterReduction(pwp, fc float64) (*SoilWaterReduction, error) {
	if !(fc > pwp) {
		return nil, fmt.Errorf("soil water reduction pwp=%g fc=%g: %w", pwp, fc, ErrInvalidRange)
	}
	return &SoilWaterReduction{
		pwp: pwp,
		msw: pwp + 0.4*(fc-pwp),
	}, nil
}

// Factor maps one soil water value onto the reduction factor. Water at or
// below the wilting point gives 0, water at or above the stress threshold
// gives 1.
func (a *SoilWaterReduction) Factor(sw float64) float64 {
	v := sw
	if v < a.pwp {
		v = a.pwp
	}
	if v > a.msw {
		v = a.msw
	}
	return (v - a.pwp) / (a.msw - a.pwp)
}

// Threshold returns the soil water level above which there is no stress.
func (a *SoilWaterReduction) Threshold() float64 { return a.msw }

// Push records a soil water reading.
func (a *SoilWaterReduction) Push(sw float64) {
	a.sum += a.Factor(sw)
	a.count++
}

// Pull returns the mean factor of the pending readings and clears them.
// With no pending readings it returns 0.
func (a *SoilWaterReduction) Pull() float64 {
	if a.count == 0 {
		return 0
	}
	mean := a.sum / float64(a.count)
	a.sum = 0
	a.count = 0
	return mean
}
