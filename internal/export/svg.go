// Package export renders recorded trajectories to SVG for consumption
// outside the terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/smahesh/orbitlab/internal/orbit"
)

var pathColors = []string{"#00ccff", "#ff8800", "#00ff88", "#ff44aa", "#ffee00", "#8888ff"}

// TrajectoriesToSVG draws each body's orbit path as a polyline around
// the force-center marker. Bounds are fitted over all trajectories and
// padded so paths never touch the frame; the aspect ratio is square in
// world units.
func TrajectoriesToSVG(trajectories []*orbit.Trajectory, size int) string {
	if len(trajectories) == 0 {
		return ""
	}

	extent := 0.0
	for _, tr := range trajectories {
		for step := 0; step < tr.Len(); step++ {
			p := tr.At(step).Pos
			for _, a := range []float64{p.X, p.Y} {
				if a < 0 {
					a = -a
				}
				if a > extent {
					extent = a
				}
			}
		}
	}
	if extent == 0 {
		extent = 1
	}
	extent *= 1.1

	project := func(p orbit.Vec2) (float64, float64) {
		x := (p.X/extent + 1) / 2 * float64(size)
		y := (1 - p.Y/extent) / 2 * float64(size)
		return x, y
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	for i, tr := range trajectories {
		if tr.Len() < 2 {
			continue
		}
		color := pathColors[i%len(pathColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for step := 0; step < tr.Len(); step++ {
			x, y := project(tr.At(step).Pos)
			if step == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	cx, cy := project(orbit.Vec2{})
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#ffcc00"/>
</svg>`, cx, cy))

	return sb.String()
}
