// Package orbit provides core primitives for central-force orbital
// simulation.
//
// The package defines the fundamental types for velocity-Verlet
// integration of point masses:
//
//   - [Vec2]: 2-vector used for position, velocity and force
//   - [Body]: one point mass with its kinematic state
//   - [Field]: force-law interface (central gravity, linear spring)
//   - [Trajectory]: append-only record of (position, velocity) samples
//
// # Example
//
//	field := orbit.Central{GM: 4 * math.Pi * math.Pi}
//	b, _ := orbit.NewCircular(0.1, 1.0, 0, field)
//	for i := 0; i < 1000; i++ {
//		if err := b.Step(field, 0.001); err != nil {
//			break
//		}
//	}
//
// # Thread Safety
//
// A Body is exclusively owned by the loop driving it. Bodies never
// reference each other, so distinct bodies may be stepped from distinct
// goroutines without coordination.
package orbit
