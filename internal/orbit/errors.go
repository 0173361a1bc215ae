package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for force evaluation and stepping.
var (
	// ErrSingularity indicates a body sitting exactly at the force center,
	// where the central force law is undefined.
	ErrSingularity = errors.New("orbit: body at force-center singularity")

	// ErrNonFinite indicates a NaN or Inf appeared in position, velocity
	// or force.
	ErrNonFinite = errors.New("orbit: non-finite state (NaN or Inf detected)")

	// ErrBadMass indicates a non-positive body mass.
	ErrBadMass = errors.New("orbit: mass must be positive")

	// ErrBadRadius indicates a non-positive orbit radius.
	ErrBadRadius = errors.New("orbit: radius must be positive")
)

// DomainError wraps a domain error with the body and step it occurred on.
// Degenerate inputs are configuration problems, not transient faults, so
// callers surface these immediately rather than retry.
type DomainError struct {
	Body    int
	Step    int
	Time    float64
	Wrapped error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("body %d, step %d (t=%.4f): %v", e.Body, e.Step, e.Time, e.Wrapped)
}

func (e *DomainError) Unwrap() error {
	return e.Wrapped
}
