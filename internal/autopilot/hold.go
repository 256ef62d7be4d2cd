package autopilot

import (
	"math"

	"github.com/avens-io/floatplane/internal/flight"
	"github.com/avens-io/floatplane/internal/world"
)

// deadband keeps the discrete stick from chattering around a PID output
// near zero.
const deadband = 0.05

// cruiseFraction of MaxSpeed below which the autopilot keeps the throttle
// open.
const cruiseFraction = 0.95

// Autopilot converts altitude and heading errors into the discrete cockpit
// controls the pipeline accepts. It reads the plane's committed pose from
// the previous tick; it never writes flight state.
type Autopilot struct {
	plane *flight.Plane

	altitude *PID
	heading  *PID

	altTarget float64
	hdgTarget float64
	holdAlt   bool
	holdHdg   bool
}

func New(p *flight.Plane) *Autopilot {
	return &Autopilot{
		plane:    p,
		altitude: NewPID(0.12, 0.0, 0.25),
		heading:  NewPID(1.5, 0.0, 0.8),
	}
}

// HoldAltitude engages the altitude hold at target meters.
func (a *Autopilot) HoldAltitude(target float64) {
	a.altTarget = target
	a.holdAlt = true
	a.altitude.Reset()
}

// HoldHeading engages the heading hold at target radians.
func (a *Autopilot) HoldHeading(target float64) {
	a.hdgTarget = target
	a.holdHdg = true
	a.heading.Reset()
}

func (a *Autopilot) Sample(t float64) flight.ControlSet {
	var held flight.ControlSet

	if a.plane.State.Speed < flight.MaxSpeed*cruiseFraction {
		held.Press(flight.ThrottleUp)
	}

	if a.holdAlt {
		if a.plane.State.WasOnWater {
			// Takeoff is gated on the pitch-up stick; hold it until the
			// hull leaves the water.
			held.Press(flight.PitchUp)
		} else {
			err := a.altTarget - a.plane.Body.Position.Y()
			// Airborne the pitch-up key pushes the extracted pitch
			// negative, which tilts the nose vector down. Climbing wants
			// the opposite stick.
			switch u := a.altitude.Update(err, t); {
			case u > deadband:
				held.Press(flight.PitchDown)
			case u < -deadband:
				held.Press(flight.PitchUp)
			}
		}
	}

	if a.holdHdg {
		err := wrapAngle(a.hdgTarget - world.Heading(a.plane.Body))
		// Positive yaw rotation swings the nose toward negative
		// heading, so a positive error banks left.
		switch u := a.heading.Update(err, t); {
		case u > deadband:
			held.Press(flight.RollLeft)
		case u < -deadband:
			held.Press(flight.RollRight)
		}
	}

	return held
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
