package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avens-io/floatplane/internal/world"
)

// UpdateWater runs the water-contact regime for one tick: impact detection
// and bounce, leveling, damping, the deceleration-to-stop cascade, and
// takeoff. It reports whether sailing mode wrote the linear velocity
// directly, in which case the momentum integrator must not overwrite it.
//
// WasOnWater is updated here, at the very end of the regime, after every
// rule that edge-detects against the previous tick has run.
func UpdateWater(s *State, b *world.Body, onWater bool, dt float64, opts Options) (sailing bool) {
	impact := onWater && !s.WasOnWater

	if onWater {
		// Keep the hull from sinking through the surface.
		if b.Position.Y() < hullHeight {
			b.Position[1] = hullHeight
			if b.LinearVelocity.Y() < 0 {
				b.LinearVelocity[1] = 0
			}
		}

		// A hard arrival converts vertical speed into a bounce and a
		// one-time slowdown. Only on the transition tick.
		if impact {
			impactVelocity := math.Abs(b.LinearVelocity.Y())
			if impactVelocity > WaterImpactThreshold {
				s.ImpactBounce = impactVelocity * WaterBounceFactor
				s.Speed *= WaterImpactSlowdown
				b.LinearVelocity = b.LinearVelocity.Mul(WaterImpactSlowdown)
			}
		}

		// Residual bounce feeds vertical velocity and decays; snapped
		// to zero once small so there is no infinite tail.
		if s.ImpactBounce > 0 {
			b.LinearVelocity[1] += s.ImpactBounce
			s.ImpactBounce *= 0.8
			if s.ImpactBounce < bounceFloor {
				s.ImpactBounce = 0
			}
		}

		// Level the hull toward a yaw-only attitude, silencing angular
		// velocity so the plane does not twitch against the slerp.
		pitch, yaw, roll := b.EulerXYZ()
		if math.Abs(pitch) > 0.01 || math.Abs(roll) > 0.01 {
			level := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
			amount := mgl64.Clamp(WaterLevelRotationSpeed*dt, 0, 1)
			b.Orientation = mgl64.QuatSlerp(b.Orientation, level, amount)
			b.AngularVelocity = mgl64.Vec3{}
		}

		// Water resistance, with extra horizontal stabilization.
		b.LinearVelocity = b.LinearVelocity.Mul(WaterDamping)
		b.LinearVelocity[0] *= WaterStabilizeFactor
		b.LinearVelocity[2] *= WaterStabilizeFactor

		// Bleed speed off toward a stop, then switch to sailing at a
		// fixed small forward speed. Skipped on the impact tick itself.
		if !impact {
			s.Speed *= WaterStopSpeed
			if s.Speed < WaterStopThreshold {
				s.Speed *= 0.95
				if s.Speed < 1.0 {
					s.Speed = WaterSailingSpeed
					b.LinearVelocity = b.Forward().Mul(WaterSailingSpeed)
					sailing = true
				}
			}
		}

		applyTakeoff(s, b, dt, opts)
	}

	s.WasOnWater = onWater
	return sailing
}

// applyTakeoff lifts the plane off the water once it is fast enough and,
// under the pitch-gated policy, the pitch-up stick has pulled the pitch
// angle past the gate. Past half strength the
// attitude controls are re-armed in proportion to lift-off progress,
// superseding the leveling step's zeroing for this tick.
func applyTakeoff(s *State, b *world.Body, dt float64, opts Options) {
	if s.Speed <= MaxSpeed*TakeoffSpeedThreshold {
		return
	}
	pitch, _, _ := b.EulerXYZ()

	pitchFactor := 1.0
	if opts.Takeoff == TakeoffPitchGated {
		if pitch >= -0.1 { // pitch-up input drives the angle negative
			return
		}
		pitchFactor = mgl64.Clamp(-pitch, 0, 1)
	}

	speedFactor := math.Min(s.Speed/MaxSpeed, 1)
	strength := pitchFactor * speedFactor * TakeoffForce

	b.LinearVelocity[1] += strength * 2.0 * dt

	if strength > 0.5 {
		b.AngularVelocity = angularRate(s).Mul(strength)
	}
}

// TakeoffReady reports the combined speed and pitch condition shown in
// the cockpit readout.
func TakeoffReady(s *State, b *world.Body) bool {
	pitch, _, _ := b.EulerXYZ()
	return s.Speed > MaxSpeed*TakeoffSpeedThreshold && pitch < -0.1
}
