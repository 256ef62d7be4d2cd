package flight

import "github.com/go-gl/mathgl/mgl64"

// State is the per-plane flight state threaded through the pipeline. It is
// created once, owned by the simulation loop, and mutated in place by the
// four pipeline stages in a fixed order each tick.
type State struct {
	// Speed is the throttle-derived forward speed, held in
	// [MinSpeed, MaxSpeed] except while sailing, where it is pinned to
	// WaterSailingSpeed.
	Speed float64

	// Momentum is the exponentially smoothed linear velocity target.
	Momentum mgl64.Vec3

	// TurnMomentum is the smoothed angular rate target
	// (pitch rate, yaw rate, unused).
	TurnMomentum mgl64.Vec3

	// BankAngle is the signed roll state in radians, clamped to
	// ±MaxBankAngle.
	BankAngle float64

	// WasOnWater is the previous tick's contact flag, used to
	// edge-detect water impacts.
	WasOnWater bool

	// ImpactBounce is the decaying upward-velocity injection left over
	// from a hard water impact. Non-negative; snaps to zero below
	// bounceFloor.
	ImpactBounce float64
}

// NewState returns the initial flight state for a plane facing the given
// direction: minimum speed with momentum already pointing along the nose.
func NewState(forward mgl64.Vec3) *State {
	return &State{
		Speed:    MinSpeed,
		Momentum: forward.Mul(MinSpeed),
	}
}

// reset returns the state to initial-like values after a bounds violation.
// Position is deliberately untouched; the reset velocity drifts the plane
// back toward the playable area.
func (s *State) reset() {
	s.Speed = MinSpeed
	s.Momentum = mgl64.Vec3{0, 0, -MinSpeed}
	s.TurnMomentum = mgl64.Vec3{}
	s.BankAngle = 0
}
