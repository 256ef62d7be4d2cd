package flight

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avens-io/floatplane/internal/world"
)

// UpdateMomentum smooths the heading-and-speed velocity target into the
// tracked momentum vector and commits it as the airframe's linear velocity,
// unless sailing already wrote the velocity this tick. It then enforces the
// world boundary.
func UpdateMomentum(s *State, b *world.Body, sailing bool, dt float64, opts Options) {
	target := b.Forward().Mul(s.Speed)
	s.Momentum = lerpVec3(s.Momentum, target, opts.blend(Momentum, dt))

	if !sailing {
		b.LinearVelocity = s.Momentum
	}

	// Straying too far from the origin wraps the flight state back to a
	// safe one. The position is left alone; the reset velocity carries
	// the plane back in.
	if b.Position.Len() > opts.BoundsRadius {
		s.reset()
		b.LinearVelocity = s.Momentum
		b.AngularVelocity = mgl64.Vec3{}
	}
}
