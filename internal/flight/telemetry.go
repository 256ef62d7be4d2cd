package flight

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avens-io/floatplane/internal/world"
)

// Telemetry is the read-only cockpit snapshot taken after each tick. It is
// pure data; the TUI and run store decide how to render it.
type Telemetry struct {
	Time         float64
	Speed        float64
	SpeedPct     float64
	Altitude     float64
	OnWater      bool
	PitchDeg     float64
	YawDeg       float64
	RollDeg      float64
	BankDeg      float64
	Momentum     mgl64.Vec3
	Position     mgl64.Vec3
	ImpactBounce float64
	TakeoffReady bool
}

// Status is the cockpit contact readout.
func (t Telemetry) Status() string {
	if t.OnWater {
		return "ON WATER"
	}
	return "AIRBORNE"
}

// Snapshot captures the telemetry for the tick that just completed.
func Snapshot(s *State, b *world.Body, onWater bool, t float64) Telemetry {
	pitch, yaw, roll := b.EulerXYZ()
	return Telemetry{
		Time:         t,
		Speed:        s.Speed,
		SpeedPct:     s.Speed / MaxSpeed * 100,
		Altitude:     b.Position.Y(),
		OnWater:      onWater,
		PitchDeg:     mgl64.RadToDeg(pitch),
		YawDeg:       mgl64.RadToDeg(yaw),
		RollDeg:      mgl64.RadToDeg(roll),
		BankDeg:      mgl64.RadToDeg(s.BankAngle),
		Momentum:     s.Momentum,
		Position:     b.Position,
		ImpactBounce: s.ImpactBounce,
		TakeoffReady: TakeoffReady(s, b),
	}
}
