package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpdateAttitude integrates the roll intent into the bank angle, auto-levels
// it, derives the turn rate, and returns the angular velocity to write to
// the airframe. Rotational authority is halved while the hull is in the
// water.
func UpdateAttitude(s *State, c Controls, onWater bool, dt float64, opts Options) mgl64.Vec3 {
	controlMul := 1.0
	if onWater {
		controlMul = 0.5
	}

	// Roll authority grows with airspeed.
	speedFactor := mgl64.Clamp((s.Speed-MinSpeed)/(MaxSpeed-MinSpeed), 0, 1)
	baseSensitivity := BaseRollSensitivity * (0.5 + 0.5*speedFactor)

	// Deepening an existing bank gets exponentially harder near the
	// clamp; rolling back out is fast.
	bankResistance := math.Exp(math.Abs(s.BankAngle) * 16)
	rollSensitivity := baseSensitivity * 16
	if signum(c.Roll) == signum(s.BankAngle) {
		r2 := bankResistance * bankResistance
		rollSensitivity = baseSensitivity / (r2 * r2)
	}

	s.BankAngle += c.Roll * rollSensitivity * dt * controlMul
	s.BankAngle = mgl64.Clamp(s.BankAngle, -MaxBankAngle, MaxBankAngle)

	// Auto-level whenever the stick is centered or the hull is wet.
	// Leveling speeds up the steeper the bank. The decay factor is
	// floored at zero so a large dt settles to level instead of
	// overshooting past it.
	if c.Roll == 0 || onWater {
		levelSpeed := WaterLevelSpeed
		if !onWater {
			levelFactor := math.Abs(s.BankAngle) / (math.Pi / 3)
			levelSpeed = AutoLevelSpeed * (0.8 + 0.8*levelFactor)
		}
		s.BankAngle *= math.Max(0, 1-levelSpeed*dt)
	}

	bankTurn := s.BankAngle * BankTurnRatio
	totalTurn := c.Yaw*YawSensitivity + bankTurn

	targetTurn := mgl64.Vec3{
		c.Pitch * PitchSensitivity,
		totalTurn * TurnSpeed,
		0,
	}.Mul(controlMul)

	s.TurnMomentum = lerpVec3(s.TurnMomentum, targetTurn, opts.blend(TurnMomentum, dt))

	return angularRate(s)
}

// angularRate is the pipeline's angular velocity output. The water regime
// re-derives it, scaled by lift-off progress, when takeoff re-arms the
// controls.
func angularRate(s *State) mgl64.Vec3 {
	return mgl64.Vec3{
		s.TurnMomentum.X(),
		s.TurnMomentum.Y(),
		s.BankAngle,
	}.Mul(angularRateGain)
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// signum matches the reference sign convention where zero maps to +1, so a
// neutral stick on a positive bank reads as "deepening" (and is then
// multiplied away by the zero roll intent).
func signum(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}
