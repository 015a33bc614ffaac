package growth

import "formind/internal/core"

// Parameters reports the live state and the fixed growth constants.
func (m *Model) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("seed", "Seed", m.seed),
				core.IntParam("step", "Step", int64(m.step)),
				core.FloatParam("soil_moisture", "Soil moisture", m.soilMoisture),
				core.FloatParam("lai", "LAI", m.lai),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				core.FloatParam("moisture_response", "Moisture response", MoistureResponse),
				core.FloatParam("turnover", "Turnover", Turnover),
				core.FloatParam("draw_min", "Draw min", DrawMin),
				core.FloatParam("draw_max", "Draw max", DrawMax),
			},
		},
	}}
}

// ParameterControls exposes soil moisture for interactive adjustment.
func (m *Model) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "soil_moisture",
		Label:  "Soil moisture",
		Type:   core.ParamTypeFloat,
		Step:   1,
		Min:    0,
		Max:    100,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter applies a HUD adjustment. Only soil_moisture is writable.
func (m *Model) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "soil_moisture":
		m.SetSoilMoisture(value)
		return true
	default:
		return false
	}
}
