package orbit

// Sample is one recorded (position, velocity) pair.
type Sample struct {
	Pos Vec2
	Vel Vec2
}

// Trajectory is an append-only ordered sequence of samples for one body,
// indexed by step number. Sample 0 is always the initial condition. The
// integrator writes it and never reads it back.
type Trajectory struct {
	samples []Sample
}

func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{samples: make([]Sample, 0, capacity)}
}

func (tr *Trajectory) Append(b Body) {
	tr.samples = append(tr.samples, Sample{Pos: b.Pos, Vel: b.Vel})
}

func (tr *Trajectory) Len() int {
	return len(tr.samples)
}

func (tr *Trajectory) At(step int) Sample {
	return tr.samples[step]
}

// Positions returns the X and Y coordinate series as parallel slices,
// the shape plotting collaborators consume.
func (tr *Trajectory) Positions() (xs, ys []float64) {
	xs = make([]float64, len(tr.samples))
	ys = make([]float64, len(tr.samples))
	for i, s := range tr.samples {
		xs[i] = s.Pos.X
		ys[i] = s.Pos.Y
	}
	return xs, ys
}

// Radii returns |position| per recorded step.
func (tr *Trajectory) Radii() []float64 {
	rs := make([]float64, len(tr.samples))
	for i, s := range tr.samples {
		rs[i] = s.Pos.Norm()
	}
	return rs
}
