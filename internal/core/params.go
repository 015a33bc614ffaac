package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single value reported by a simulation.
type Parameter struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        ParamType `json:"type"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `json:"name"`
	Params []Parameter `json:"params"`
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups"`
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider is implemented by sims that report their parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int64) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

// FloatParam builds a floating-point parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
