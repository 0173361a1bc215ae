package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// RadiusChart renders |position| over the run for one body.
func RadiusChart(tr *orbit.Trajectory, width, height int) string {
	return asciigraph.Plot(tr.Radii(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("orbital radius vs step"),
	)
}

// EnergyChart renders specific orbital energy over the run for one body.
func EnergyChart(tr *orbit.Trajectory, field orbit.Central, width, height int) string {
	energies := make([]float64, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		s := tr.At(i)
		energies[i] = field.SpecificEnergy(s.Pos, s.Vel)
	}
	return asciigraph.Plot(energies,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("specific orbital energy vs step"),
	)
}

// SpectrumChart renders a power spectrum, truncated to the lowest bins
// where orbital frequencies live.
func SpectrumChart(ps []float64, width, height int) string {
	n := len(ps)
	if n > 128 {
		n = 128
	}
	return asciigraph.Plot(ps[:n],
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("power spectrum"),
	)
}
