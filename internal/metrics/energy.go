package metrics

import (
	"math"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// Energy tracks the mean total mechanical energy of the body set.
type Energy struct {
	name    string
	field   orbit.Field
	samples int
	total   float64
}

func NewEnergy(field orbit.Field) *Energy {
	return &Energy{
		name:  "energy",
		field: field,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(bodies []orbit.Body, t float64) {
	for i := range bodies {
		e.total += bodies[i].Energy(e.field)
	}
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative drift of total energy from its
// first observed value. Velocity-Verlet bounds this at O(dt^2), so the
// metric doubles as an integration accuracy diagnostic.
type EnergyDrift struct {
	name     string
	field    orbit.Field
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(field orbit.Field) *EnergyDrift {
	return &EnergyDrift{
		name:  "energy_drift",
		field: field,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(bodies []orbit.Body, t float64) {
	energy := 0.0
	for i := range bodies {
		energy += bodies[i].Energy(e.field)
	}

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
