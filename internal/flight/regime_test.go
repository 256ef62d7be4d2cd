package flight_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avens-io/floatplane/internal/flight"
	"github.com/avens-io/floatplane/internal/world"
)

var _ = Describe("Water contact regime", func() {
	const dt = 1.0 / 60.0

	var (
		state *flight.State
		body  *world.Body
		opts  flight.Options
	)

	BeforeEach(func() {
		state = flight.NewState(mgl64.Vec3{0, 0, -1})
		body = world.NewBody(mgl64.Vec3{0, 0.3, 0})
		opts = flight.DefaultOptions()
	})

	Describe("splashdown", func() {
		It("bounces on a hard arrival and stays quiet afterwards", func() {
			body.LinearVelocity = mgl64.Vec3{0, -8, 0}

			flight.UpdateWater(state, body, true, dt, opts)
			Expect(state.ImpactBounce).To(BeNumerically(">", 0))
			Expect(state.WasOnWater).To(BeTrue())

			first := state.ImpactBounce
			flight.UpdateWater(state, body, true, dt, opts)
			Expect(state.ImpactBounce).To(BeNumerically("<", first),
				"the bounce decays instead of re-triggering")
		})

		It("drains the bounce to exactly zero", func() {
			body.LinearVelocity = mgl64.Vec3{0, -8, 0}
			flight.UpdateWater(state, body, true, dt, opts)

			for i := 0; i < 60; i++ {
				flight.UpdateWater(state, body, true, dt, opts)
			}
			Expect(state.ImpactBounce).To(BeZero())
		})

		It("treats a gentle touchdown as a non-event", func() {
			body.LinearVelocity = mgl64.Vec3{0, -1, 0}

			flight.UpdateWater(state, body, true, dt, opts)
			Expect(state.ImpactBounce).To(BeZero())
			Expect(state.Speed).To(Equal(flight.MinSpeed))
		})
	})

	Describe("settling", func() {
		It("bleeds off speed and enters sailing at the fixed speed", func() {
			state.WasOnWater = true
			state.Speed = flight.WaterStopThreshold

			var sailing bool
			for i := 0; i < 600 && !sailing; i++ {
				sailing = flight.UpdateWater(state, body, true, dt, opts)
			}

			Expect(sailing).To(BeTrue())
			Expect(state.Speed).To(Equal(flight.WaterSailingSpeed))
			Expect(body.LinearVelocity).To(Equal(mgl64.Vec3{0, 0, -flight.WaterSailingSpeed}))
		})

		It("levels the hull while settling", func() {
			state.WasOnWater = true
			body = world.SpawnBody(mgl64.Vec3{0, 0.3, 0}, 0.3, 0)

			for i := 0; i < 120; i++ {
				flight.UpdateWater(state, body, true, dt, opts)
			}

			pitch, _, roll := body.EulerXYZ()
			Expect(math.Abs(pitch)).To(BeNumerically("<", 0.02))
			Expect(math.Abs(roll)).To(BeNumerically("<", 0.02))
		})
	})

	Describe("takeoff", func() {
		It("stays down with a level pitch under the pitch gate", func() {
			state.WasOnWater = true
			state.Speed = flight.MaxSpeed

			flight.UpdateWater(state, body, true, dt, opts)
			Expect(body.LinearVelocity.Y()).To(BeNumerically("<=", 0))
			Expect(flight.TakeoffReady(state, body)).To(BeFalse())
		})

		It("reports readiness with speed and the stick pulled", func() {
			state.Speed = flight.MaxSpeed
			pulled := world.SpawnBody(mgl64.Vec3{0, 0.1, 0}, -0.3, 0)

			Expect(flight.TakeoffReady(state, pulled)).To(BeTrue())
		})

		It("lifts from speed alone under the unconditional policy", func() {
			opts.Takeoff = flight.TakeoffUnconditional
			state.WasOnWater = true
			state.Speed = flight.MaxSpeed

			flight.UpdateWater(state, body, true, dt, opts)
			Expect(body.LinearVelocity.Y()).To(BeNumerically(">", 0))
		})
	})
})
