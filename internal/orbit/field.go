package orbit

import "math"

// Field is a force law evaluated at a position for a given mass.
// Implementations must be pure: identical inputs give identical forces.
type Field interface {
	// Force returns the force on a body of mass m at position pos.
	Force(pos Vec2, m float64) (Vec2, error)

	// Potential returns the potential energy per unit mass at pos.
	Potential(pos Vec2) float64
}

// Central is Newtonian gravity toward a dominant mass fixed at the
// origin, parameterized by GM (the gravitational parameter, G times the
// central mass). GM is threaded explicitly so the integrator carries no
// process-wide state.
type Central struct {
	GM float64
}

// Force computes F = -GM * m * pos / |pos|^3. A body exactly at the
// origin is a defined failure, not a NaN.
func (c Central) Force(pos Vec2, m float64) (Vec2, error) {
	r2 := pos.Norm2()
	if r2 == 0 {
		return Vec2{}, ErrSingularity
	}
	r := math.Sqrt(r2)
	f := pos.Scale(-c.GM * m / (r2 * r))
	if !f.IsFinite() {
		return Vec2{}, ErrNonFinite
	}
	return f, nil
}

func (c Central) Potential(pos Vec2) float64 {
	r := pos.Norm()
	if r == 0 {
		return math.Inf(-1)
	}
	return -c.GM / r
}

// CircularSpeed is the speed of an exact circular orbit at radius r,
// v = sqrt(GM/r).
func (c Central) CircularSpeed(r float64) float64 {
	return math.Sqrt(c.GM / r)
}

// Period is the Keplerian orbital period at semi-major axis a,
// T = 2*pi*sqrt(a^3/GM).
func (c Central) Period(a float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/c.GM)
}

// SpecificEnergy is the orbital energy per unit mass,
// E = |v|^2/2 - GM/r. Conserved by the exact dynamics; velocity-Verlet
// holds it to O(dt^2).
func (c Central) SpecificEnergy(pos, vel Vec2) float64 {
	return 0.5*vel.Norm2() + c.Potential(pos)
}

// Spring is a linear restoring force toward the origin, F = -k*m*pos.
// It has no singularity and an exactly solvable oscillation, which makes
// it the field of choice for integrator accuracy tests.
type Spring struct {
	K float64
}

func (s Spring) Force(pos Vec2, m float64) (Vec2, error) {
	f := pos.Scale(-s.K * m)
	if !f.IsFinite() {
		return Vec2{}, ErrNonFinite
	}
	return f, nil
}

func (s Spring) Potential(pos Vec2) float64 {
	return 0.5 * s.K * pos.Norm2()
}
