package export

import (
	"strings"
	"testing"

	"github.com/smahesh/orbitlab/internal/orbit"
)

func TestTrajectoriesToSVG(t *testing.T) {
	tr := orbit.NewTrajectory(3)
	tr.Append(orbit.Body{Pos: orbit.Vec2{X: 1, Y: 0}})
	tr.Append(orbit.Body{Pos: orbit.Vec2{X: 0, Y: 1}})
	tr.Append(orbit.Body{Pos: orbit.Vec2{X: -1, Y: 0}})

	svg := TrajectoriesToSVG([]*orbit.Trajectory{tr}, 400)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}
	if strings.Count(svg, "<path") != 1 {
		t.Errorf("expected 1 path, got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("missing force-center marker")
	}
}

func TestTrajectoriesToSVGEmpty(t *testing.T) {
	if svg := TrajectoriesToSVG(nil, 400); svg != "" {
		t.Errorf("expected empty output, got %q", svg)
	}
}

func TestTrajectoriesToSVGSkipsShortPaths(t *testing.T) {
	tr := orbit.NewTrajectory(1)
	tr.Append(orbit.Body{Pos: orbit.Vec2{X: 1, Y: 0}})

	svg := TrajectoriesToSVG([]*orbit.Trajectory{tr}, 400)
	if strings.Contains(svg, "<path") {
		t.Error("single-sample trajectory should not produce a path")
	}
}
