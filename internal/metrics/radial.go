package metrics

import (
	"math"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// RadialRange tracks the worst relative deviation of any body's distance
// from the force center against its first observed radius. Near zero for
// stable circular orbits.
type RadialRange struct {
	name    string
	initial []float64
	maxDev  float64
	samples int
}

func NewRadialRange() *RadialRange {
	return &RadialRange{name: "radial_range"}
}

func (r *RadialRange) Name() string { return r.name }

func (r *RadialRange) Observe(bodies []orbit.Body, t float64) {
	if r.samples == 0 {
		r.initial = make([]float64, len(bodies))
		for i := range bodies {
			r.initial[i] = bodies[i].Pos.Norm()
		}
	}
	r.samples++

	for i := range bodies {
		if i >= len(r.initial) || r.initial[i] == 0 {
			continue
		}
		dev := math.Abs(bodies[i].Pos.Norm()-r.initial[i]) / r.initial[i]
		r.maxDev = math.Max(r.maxDev, dev)
	}
}

func (r *RadialRange) Value() float64 {
	return r.maxDev
}

func (r *RadialRange) Reset() {
	r.initial = nil
	r.maxDev = 0
	r.samples = 0
}
