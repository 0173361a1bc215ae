package sim

import (
	"fmt"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// Metric accumulates a scalar over a run. Observed once per completed
// iteration with the full body set.
type Metric interface {
	Name() string
	Observe(bodies []orbit.Body, t float64)
	Value() float64
	Reset()
}

// Observer receives the body set after every completed iteration. Used
// for live rendering; must not mutate the bodies.
type Observer interface {
	OnStep(bodies []orbit.Body, t float64)
}

// Config controls a single run. The run length is fixed and known ahead
// of time: Steps() = Tmax/Dt.
type Config struct {
	Dt            float64
	Tmax          float64
	Workers       int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.001,
		Tmax:          2.0,
		Workers:       1,
		ValidateState: true,
	}
}

// Steps is the number of integration steps for the run.
func (c Config) Steps() int {
	return int(c.Tmax / c.Dt)
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Tmax < 0 {
		return fmt.Errorf("tmax must be non-negative, got %f", c.Tmax)
	}
	return nil
}

// Result of a completed (or aborted) run. Trajectories[i] belongs to the
// i-th input body; every trajectory has StepsTaken+1 samples, the first
// being the initial condition.
type Result struct {
	Trajectories []*orbit.Trajectory
	Times        []float64
	Metrics      map[string]float64
	EnergyDrift  float64
	StepsTaken   int
}

// Final returns the body states after the last completed step.
func (r *Result) Final() []orbit.Sample {
	out := make([]orbit.Sample, len(r.Trajectories))
	for i, tr := range r.Trajectories {
		out[i] = tr.At(tr.Len() - 1)
	}
	return out
}
