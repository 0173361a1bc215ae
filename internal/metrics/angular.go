package metrics

import (
	"math"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// AngularMomentum tracks the maximum absolute drift of the body set's
// total angular momentum. Central forces exert no torque, so any drift
// here is purely numerical.
type AngularMomentum struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentum() *AngularMomentum {
	return &AngularMomentum{name: "angular_momentum_drift"}
}

func (a *AngularMomentum) Name() string { return a.name }

func (a *AngularMomentum) Observe(bodies []orbit.Body, t float64) {
	total := 0.0
	for i := range bodies {
		total += bodies[i].AngularMomentum()
	}

	if a.samples == 0 {
		a.initial = total
	}
	a.samples++

	a.maxDrift = math.Max(a.maxDrift, math.Abs(total-a.initial))
}

func (a *AngularMomentum) Value() float64 {
	return a.maxDrift
}

func (a *AngularMomentum) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
