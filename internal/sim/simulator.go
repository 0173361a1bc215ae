package sim

import (
	"context"
	"math"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// Simulator advances a set of bodies through a shared force field using
// velocity-Verlet steps. Bodies are mutually independent under the
// central-force model, so within one iteration they may be stepped in
// any order or in parallel; iterations themselves are strictly ordered.
type Simulator struct {
	field     orbit.Field
	metrics   []Metric
	observers []Observer
}

func New(field orbit.Field) *Simulator {
	return &Simulator{
		field:     field,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances every body Steps() times, recording each body's position
// and velocity into its trajectory after every step. The input bodies
// are taken by value; the caller's slice is not mutated.
//
// Zero bodies is a no-op with empty trajectories. Zero steps yields
// trajectories of length 1 holding only the initial conditions. The
// first domain error aborts the run and is returned alongside the
// partial result.
func (s *Simulator) Run(ctx context.Context, bodies []orbit.Body, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	steps := cfg.Steps()
	n := len(bodies)

	result := &Result{
		Trajectories: make([]*orbit.Trajectory, n),
		Times:        make([]float64, 0, steps+1),
		Metrics:      make(map[string]float64),
	}

	// Work on an owned copy so the caller keeps its initial conditions.
	state := make([]orbit.Body, n)
	copy(state, bodies)

	for i := range state {
		result.Trajectories[i] = orbit.NewTrajectory(steps + 1)
		result.Trajectories[i].Append(state[i])
	}
	result.Times = append(result.Times, 0)

	if n == 0 {
		return result, nil
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	workers := cfg.Workers
	if workers > n {
		workers = n
	}
	var pool *stepPool
	if workers > 1 {
		pool = newStepPool(workers)
		defer pool.close()
	}

	initialEnergy := s.totalEnergy(state)
	stepErrs := make([]error, n)
	t := 0.0

	for step := 0; step < steps; step++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		advance := func(i int) {
			stepErrs[i] = state[i].Step(s.field, cfg.Dt)
		}
		if pool != nil {
			pool.run(n, advance)
		} else {
			for i := 0; i < n; i++ {
				advance(i)
			}
		}

		// Lowest body index wins so parallel runs report deterministically.
		for i, err := range stepErrs {
			if err != nil {
				return result, &orbit.DomainError{Body: i, Step: step, Time: t, Wrapped: err}
			}
		}

		t += cfg.Dt
		result.StepsTaken++
		result.Times = append(result.Times, t)
		for i := range state {
			result.Trajectories[i].Append(state[i])
		}

		for _, m := range s.metrics {
			m.Observe(state, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(state, t)
		}

		if cfg.ValidateState && !allValid(state) {
			return result, &orbit.DomainError{Step: step, Time: t, Wrapped: orbit.ErrNonFinite}
		}
	}

	finalEnergy := s.totalEnergy(state)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the bodies without recording trajectories,
// invoking callback after every iteration. Returning false from the
// callback stops the run early. Used by the live view.
func (s *Simulator) RunWithCallback(ctx context.Context, bodies []orbit.Body, cfg Config, callback func(bodies []orbit.Body, t float64) bool) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	state := make([]orbit.Body, len(bodies))
	copy(state, bodies)

	steps := cfg.Steps()
	t := 0.0

	for step := 0; step < steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for i := range state {
			if err := state[i].Step(s.field, cfg.Dt); err != nil {
				return &orbit.DomainError{Body: i, Step: step, Time: t, Wrapped: err}
			}
		}
		t += cfg.Dt

		if !callback(state, t) {
			return nil
		}
	}

	return nil
}

func (s *Simulator) totalEnergy(bodies []orbit.Body) float64 {
	e := 0.0
	for i := range bodies {
		e += bodies[i].Energy(s.field)
	}
	return e
}

func allValid(bodies []orbit.Body) bool {
	for i := range bodies {
		if !bodies[i].IsValid() {
			return false
		}
	}
	return true
}
