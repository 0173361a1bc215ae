package sim

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/smahesh/orbitlab/internal/orbit"
)

func benchBodies(n int, field orbit.Central) []orbit.Body {
	bodies := make([]orbit.Body, n)
	for i := range bodies {
		r := 0.5 + float64(i)*0.01
		b, err := orbit.NewCircular(0.1, r, float64(i), field)
		if err != nil {
			panic(err)
		}
		bodies[i] = b
	}
	return bodies
}

func BenchmarkBodyStep(b *testing.B) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
	body, _ := orbit.NewCircular(0.1, 1.0, 0, field)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := body.Step(field, 0.001); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	field := orbit.Central{GM: 4 * math.Pi * math.Pi}

	for _, n := range []int{1, 16, 256} {
		for _, workers := range []int{1, 4} {
			name := fmt.Sprintf("bodies=%d/workers=%d", n, workers)
			b.Run(name, func(b *testing.B) {
				bodies := benchBodies(n, field)
				s := New(field)
				cfg := Config{Dt: 0.001, Tmax: 0.1, Workers: workers}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := s.Run(context.Background(), bodies, cfg); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
