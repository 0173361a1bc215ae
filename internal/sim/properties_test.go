package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smahesh/orbitlab/internal/orbit"
	"github.com/smahesh/orbitlab/internal/sim"
)

// The reference scenario: mass 0.1 at 1 AU around a unit-solar-mass
// center. With GM = 4*pi^2 the circular speed is 2*pi and the orbital
// period is exactly 1.
var _ = Describe("velocity-Verlet integration", func() {
	var (
		field  orbit.Central
		body   orbit.Body
		runner *sim.Simulator
	)

	BeforeEach(func() {
		field = orbit.Central{GM: 4 * math.Pi * math.Pi}
		var err error
		body, err = orbit.NewCircular(0.1, 1.0, 0, field)
		Expect(err).NotTo(HaveOccurred())
		runner = sim.New(field)
	})

	Describe("a circular orbit", func() {
		It("keeps the orbital radius within tolerance for the whole run", func() {
			result, err := runner.Run(context.Background(), []orbit.Body{body}, sim.Config{
				Dt: 0.001, Tmax: 2.0, Workers: 1, ValidateState: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StepsTaken).To(Equal(2000))

			for _, r := range result.Trajectories[0].Radii() {
				Expect(r).To(BeNumerically("~", 1.0, 1e-3))
			}
		})

		It("conserves specific orbital energy to O(dt^2)", func() {
			result, err := runner.Run(context.Background(), []orbit.Body{body}, sim.Config{
				Dt: 0.001, Tmax: 2.0, Workers: 1, ValidateState: true,
			})
			Expect(err).NotTo(HaveOccurred())

			initial := field.SpecificEnergy(body.Pos, body.Vel)
			tr := result.Trajectories[0]
			for step := 0; step < tr.Len(); step++ {
				s := tr.At(step)
				e := field.SpecificEnergy(s.Pos, s.Vel)
				Expect(math.Abs(e-initial) / math.Abs(initial)).To(BeNumerically("<", 1e-4))
			}
		})

		It("returns to the starting point after one full period", func() {
			// Period is 1 for r=1 with GM=4*pi^2, so step 1000 of a
			// dt=0.001 run is one full revolution.
			result, err := runner.Run(context.Background(), []orbit.Body{body}, sim.Config{
				Dt: 0.001, Tmax: 2.0, Workers: 1, ValidateState: true,
			})
			Expect(err).NotTo(HaveOccurred())

			after := result.Trajectories[0].At(1000)
			Expect(after.Pos.X).To(BeNumerically("~", 1.0, 5e-3))
			Expect(after.Pos.Y).To(BeNumerically("~", 0.0, 5e-3))
		})
	})

	Describe("time-reversal symmetry", func() {
		It("retraces its path when velocity is negated", func() {
			forward := body
			for i := 0; i < 500; i++ {
				Expect(forward.Step(field, 0.001)).To(Succeed())
			}

			forward.Reverse()
			for i := 0; i < 500; i++ {
				Expect(forward.Step(field, 0.001)).To(Succeed())
			}

			Expect(forward.Pos.X).To(BeNumerically("~", body.Pos.X, 1e-9))
			Expect(forward.Pos.Y).To(BeNumerically("~", body.Pos.Y, 1e-9))
		})
	})

	Describe("force evaluation", func() {
		It("is idempotent while the body is at rest", func() {
			first := body.Force
			Expect(body.ComputeForce(field)).To(Succeed())
			Expect(body.Force).To(Equal(first))
		})
	})

	Describe("degenerate runs", func() {
		It("records exactly the initial condition for a zero-step run", func() {
			result, err := runner.Run(context.Background(), []orbit.Body{body}, sim.Config{
				Dt: 0.001, Tmax: 0, Workers: 1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Trajectories[0].Len()).To(Equal(1))
			Expect(result.Trajectories[0].At(0).Pos).To(Equal(body.Pos))
		})

		It("is a no-op for zero bodies", func() {
			result, err := runner.Run(context.Background(), nil, sim.Config{
				Dt: 0.001, Tmax: 1.0, Workers: 1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Trajectories).To(BeEmpty())
		})
	})
})
