package orbit

import "math"

// Body is the kinematic state of one simulated point mass. Invariant: at
// every step boundary Force holds the field evaluated at the current Pos,
// never a stale value. NewBody establishes the invariant and Step
// maintains it.
type Body struct {
	Mass  float64
	Pos   Vec2
	Vel   Vec2
	Force Vec2
}

// NewBody constructs a body with initial conditions and evaluates the
// initial force so the force invariant holds from step zero.
func NewBody(mass float64, pos, vel Vec2, f Field) (Body, error) {
	if mass <= 0 || math.IsNaN(mass) {
		return Body{}, ErrBadMass
	}
	b := Body{Mass: mass, Pos: pos, Vel: vel}
	if err := b.ComputeForce(f); err != nil {
		return Body{}, err
	}
	return b, nil
}

// NewCircular constructs a body of the given mass on an exact circular
// orbit of radius r around the origin, starting at angle phase with the
// tangential speed sqrt(GM/r).
func NewCircular(mass, r, phase float64, c Central) (Body, error) {
	if r <= 0 {
		return Body{}, ErrBadRadius
	}
	v := c.CircularSpeed(r)
	sin, cos := math.Sincos(phase)
	pos := Vec2{r * cos, r * sin}
	vel := Vec2{-v * sin, v * cos}
	return NewBody(mass, pos, vel, c)
}

// ComputeForce evaluates the field at the current position and stores the
// result. Evaluation is idempotent: calling twice without moving the body
// yields the same force.
func (b *Body) ComputeForce(f Field) error {
	force, err := f.Force(b.Pos, b.Mass)
	if err != nil {
		return err
	}
	b.Force = force
	return nil
}

// HalfKick advances velocity half a step using the currently stored
// force: v += F * (dt/2) / m.
func (b *Body) HalfKick(dt float64) {
	b.Vel = b.Vel.Add(b.Force.Scale(dt / (2 * b.Mass)))
}

// Drift advances position a full step using velocity and force both
// evaluated at the start of the step:
// x += v*dt + F*dt^2 / (2*m).
func (b *Body) Drift(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt)).Add(b.Force.Scale(dt * dt / (2 * b.Mass)))
}

// Step advances the body one velocity-Verlet cycle:
//
//	Drift        position to t+dt, using the force at t
//	HalfKick     velocity to t+dt/2, using the force at t
//	ComputeForce force at the new position
//	HalfKick     velocity to t+dt, using the force at t+dt
//
// The ordering is load-bearing: the drift must see the pre-update force,
// and the force is recomputed exactly once per step, after the position
// update and before the second half-kick. On return position, velocity
// and force are mutually consistent at t+dt.
func (b *Body) Step(f Field, dt float64) error {
	b.Drift(dt)
	b.HalfKick(dt)
	if err := b.ComputeForce(f); err != nil {
		return err
	}
	b.HalfKick(dt)
	if !b.IsValid() {
		return ErrNonFinite
	}
	return nil
}

// IsValid reports whether position, velocity and force are all finite.
func (b *Body) IsValid() bool {
	return b.Pos.IsFinite() && b.Vel.IsFinite() && b.Force.IsFinite()
}

// Energy is the total mechanical energy of the body in field f.
func (b *Body) Energy(f Field) float64 {
	return 0.5*b.Mass*b.Vel.Norm2() + b.Mass*f.Potential(b.Pos)
}

// AngularMomentum is the z-component of L = m * (r x v).
func (b *Body) AngularMomentum() float64 {
	return b.Mass * b.Pos.Cross(b.Vel)
}

// Reverse negates the velocity in place. Velocity-Verlet is
// time-symmetric, so stepping a reversed body retraces its path.
func (b *Body) Reverse() {
	b.Vel = b.Vel.Neg()
}
