package viz

import (
	"github.com/smahesh/orbitlab/internal/orbit"
)

// OrbitView projects world coordinates onto a braille canvas. The view
// is square in world units; terminal cells are half as wide as tall, and
// braille sub-pixels are 2x4 per cell, so a width:height cell ratio of
// 2:1 keeps circles round.
type OrbitView struct {
	canvas *Canvas
	// World-space half-extent. The view covers [-extent, extent] on both
	// axes, centered on the force center at the origin.
	extent float64
}

func NewOrbitView(cells int, extent float64) *OrbitView {
	if extent <= 0 {
		extent = 1
	}
	return &OrbitView{
		canvas: NewCanvas(cells*2, cells),
		extent: extent,
	}
}

// FitExtent grows the view to cover every position in the trajectories,
// with a small margin.
func (v *OrbitView) FitExtent(trajectories []*orbit.Trajectory) {
	max := 0.0
	for _, tr := range trajectories {
		for step := 0; step < tr.Len(); step++ {
			p := tr.At(step).Pos
			if a := abs(p.X); a > max {
				max = a
			}
			if a := abs(p.Y); a > max {
				max = a
			}
		}
	}
	if max > 0 {
		v.extent = max * 1.1
	}
}

func (v *OrbitView) project(p orbit.Vec2) (int, int) {
	// Sub-pixel resolution: width*2 sub-pixels across, height*4 down.
	w := float64(v.canvas.Width * 2)
	h := float64(v.canvas.Height * 4)
	x := (p.X/v.extent + 1) / 2 * (w - 1)
	y := (1 - p.Y/v.extent) / 2 * (h - 1)
	return int(x), int(y)
}

// Plot draws each trajectory's path and marks the force center.
func (v *OrbitView) Plot(trajectories []*orbit.Trajectory) {
	v.canvas.Clear()
	for _, tr := range trajectories {
		for step := 0; step < tr.Len(); step++ {
			x, y := v.project(tr.At(step).Pos)
			v.canvas.Set(x, y)
		}
	}
	v.markCenter()
}

// PlotBodies draws instantaneous body positions plus trailing samples,
// for the live view.
func (v *OrbitView) PlotBodies(bodies []orbit.Body, trails [][]orbit.Vec2) {
	v.canvas.Clear()
	for _, trail := range trails {
		for _, p := range trail {
			x, y := v.project(p)
			v.canvas.Set(x, y)
		}
	}
	for i := range bodies {
		x, y := v.project(bodies[i].Pos)
		v.canvas.SetRune(x/2, y/4, '●')
	}
	v.markCenter()
}

func (v *OrbitView) markCenter() {
	x, y := v.project(orbit.Vec2{})
	v.canvas.SetRune(x/2, y/4, '☉')
}

func (v *OrbitView) String() string {
	return v.canvas.String()
}

func (v *OrbitView) Canvas() *Canvas {
	return v.canvas
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
