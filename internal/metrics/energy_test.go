package metrics

import (
	"math"
	"testing"

	"github.com/smahesh/orbitlab/internal/orbit"
)

func circularBody(t *testing.T, field orbit.Central, r float64) orbit.Body {
	t.Helper()
	b, err := orbit.NewCircular(0.1, r, 0, field)
	if err != nil {
		t.Fatalf("NewCircular failed: %v", err)
	}
	return b
}

func TestEnergyMetric(t *testing.T) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
	bodies := []orbit.Body{circularBody(t, field, 1.0)}

	m := NewEnergy(field)
	m.Observe(bodies, 0)
	m.Observe(bodies, 0.001)

	want := bodies[0].Energy(field)
	if got := m.Value(); math.Abs(got-want) > 1e-12 {
		t.Errorf("mean energy: got %v, want %v", got, want)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("value after reset: got %v", m.Value())
	}
}

func TestEnergyDriftZeroForUnchangedBodies(t *testing.T) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
	bodies := []orbit.Body{circularBody(t, field, 1.0)}

	m := NewEnergyDrift(field)
	for i := 0; i < 5; i++ {
		m.Observe(bodies, float64(i))
	}

	if m.Value() != 0 {
		t.Errorf("expected zero drift for static bodies, got %v", m.Value())
	}
}

func TestEnergyDriftDetectsChange(t *testing.T) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
	bodies := []orbit.Body{circularBody(t, field, 1.0)}

	m := NewEnergyDrift(field)
	m.Observe(bodies, 0)

	// Boost the velocity: energy changes, drift must register.
	bodies[0].Vel = bodies[0].Vel.Scale(1.1)
	m.Observe(bodies, 1)

	if m.Value() <= 0 {
		t.Errorf("expected positive drift, got %v", m.Value())
	}
}

func TestRadialRange(t *testing.T) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
	bodies := []orbit.Body{circularBody(t, field, 2.0)}

	m := NewRadialRange()
	m.Observe(bodies, 0)

	bodies[0].Pos = orbit.Vec2{X: 2.2, Y: 0}
	m.Observe(bodies, 1)

	// |2.2 - 2| / 2 = 0.1
	if got := m.Value(); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("radial range: got %v, want 0.1", got)
	}
}

func TestAngularMomentumDrift(t *testing.T) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
	bodies := []orbit.Body{circularBody(t, field, 1.0)}

	m := NewAngularMomentum()
	m.Observe(bodies, 0)
	m.Observe(bodies, 1)

	if m.Value() != 0 {
		t.Errorf("expected zero drift for static bodies, got %v", m.Value())
	}

	bodies[0].Vel = bodies[0].Vel.Scale(2)
	m.Observe(bodies, 2)
	if m.Value() <= 0 {
		t.Errorf("expected positive drift after velocity change, got %v", m.Value())
	}
}
