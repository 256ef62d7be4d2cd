package flight

import (
	"fmt"
	"math"
)

// Control identifies one logical cockpit input.
type Control uint8

const (
	ThrottleUp Control = iota
	ThrottleDown
	RollLeft
	RollRight
	PitchUp
	PitchDown
	YawLeft
	YawRight
	numControls
)

var controlNames = [numControls]string{
	ThrottleUp:   "throttle-up",
	ThrottleDown: "throttle-down",
	RollLeft:     "roll-left",
	RollRight:    "roll-right",
	PitchUp:      "pitch-up",
	PitchDown:    "pitch-down",
	YawLeft:      "yaw-left",
	YawRight:     "yaw-right",
}

func (c Control) String() string {
	if c >= numControls {
		return fmt.Sprintf("control(%d)", uint8(c))
	}
	return controlNames[c]
}

// ParseControl resolves a control name as used in flight plans and key maps.
func ParseControl(name string) (Control, error) {
	for c, n := range controlNames {
		if n == name {
			return Control(c), nil
		}
	}
	return 0, fmt.Errorf("unknown control: %s", name)
}

// ControlSet is the set of controls held during one tick.
type ControlSet uint8

func (cs ControlSet) Held(c Control) bool { return cs&(1<<c) != 0 }

func (cs *ControlSet) Press(c Control) { *cs |= 1 << c }

func (cs *ControlSet) Release(c Control) { *cs &^= 1 << c }

// Controls holds the normalized stick intents for one tick. Roll, Pitch and
// Yaw are in {-1, 0, 1}; Throttle is the sign of the commanded speed change.
// The negative direction of each axis wins when opposite keys are held
// together.
type Controls struct {
	Roll     float64
	Pitch    float64
	Yaw      float64
	Throttle float64
}

// ReadControls maps held keys to stick intents. The pitch-up, roll-left and
// yaw-left keys are the negative directions, checked first.
func ReadControls(held ControlSet) Controls {
	var c Controls
	if held.Held(RollLeft) {
		c.Roll = -1
	} else if held.Held(RollRight) {
		c.Roll = 1
	}
	if held.Held(PitchUp) {
		c.Pitch = -1
	} else if held.Held(PitchDown) {
		c.Pitch = 1
	}
	if held.Held(YawLeft) {
		c.Yaw = -1
	} else if held.Held(YawRight) {
		c.Yaw = 1
	}
	if held.Held(ThrottleUp) {
		c.Throttle = 1
	} else if held.Held(ThrottleDown) {
		c.Throttle = -1
	}
	return c
}

// ApplyThrottle integrates the throttle intent into the forward speed.
// Each direction clamps only its own bound so that sailing-mode speeds
// below MinSpeed survive ticks with no throttle input.
func ApplyThrottle(s *State, c Controls, dt float64) {
	switch {
	case c.Throttle > 0:
		s.Speed = math.Min(s.Speed+Acceleration*dt, MaxSpeed)
	case c.Throttle < 0:
		s.Speed = math.Max(s.Speed-Acceleration*dt, MinSpeed)
	}
}
