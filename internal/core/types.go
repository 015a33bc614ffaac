package core

// Sim defines the minimal contract a steppable model must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
}

// LAIProvider is implemented by sims that report a leaf area index.
type LAIProvider interface {
	LAI() float64
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
