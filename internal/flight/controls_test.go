package flight

import (
	"math"
	"testing"
)

func TestReadControlsNeutral(t *testing.T) {
	c := ReadControls(0)
	if c.Roll != 0 || c.Pitch != 0 || c.Yaw != 0 || c.Throttle != 0 {
		t.Errorf("expected neutral controls, got %+v", c)
	}
}

func TestReadControlsDirections(t *testing.T) {
	tests := []struct {
		name string
		hold []Control
		want Controls
	}{
		{"roll left", []Control{RollLeft}, Controls{Roll: -1}},
		{"roll right", []Control{RollRight}, Controls{Roll: 1}},
		{"pitch up", []Control{PitchUp}, Controls{Pitch: -1}},
		{"pitch down", []Control{PitchDown}, Controls{Pitch: 1}},
		{"yaw left", []Control{YawLeft}, Controls{Yaw: -1}},
		{"yaw right", []Control{YawRight}, Controls{Yaw: 1}},
		{"throttle up", []Control{ThrottleUp}, Controls{Throttle: 1}},
		{"throttle down", []Control{ThrottleDown}, Controls{Throttle: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var held ControlSet
			for _, c := range tt.hold {
				held.Press(c)
			}
			if got := ReadControls(held); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadControlsOppositeKeysNegativeWins(t *testing.T) {
	var held ControlSet
	held.Press(RollLeft)
	held.Press(RollRight)
	held.Press(PitchUp)
	held.Press(PitchDown)
	held.Press(YawLeft)
	held.Press(YawRight)
	held.Press(ThrottleUp)
	held.Press(ThrottleDown)

	c := ReadControls(held)
	if c.Roll != -1 {
		t.Errorf("roll: negative direction should win, got %f", c.Roll)
	}
	if c.Pitch != -1 {
		t.Errorf("pitch: negative direction should win, got %f", c.Pitch)
	}
	if c.Yaw != -1 {
		t.Errorf("yaw: negative direction should win, got %f", c.Yaw)
	}
	if c.Throttle != 1 {
		t.Errorf("throttle: up is checked first, got %f", c.Throttle)
	}
}

func TestControlSetRelease(t *testing.T) {
	var held ControlSet
	held.Press(RollLeft)
	held.Press(YawRight)
	held.Release(RollLeft)

	if held.Held(RollLeft) {
		t.Error("roll-left should be released")
	}
	if !held.Held(YawRight) {
		t.Error("yaw-right should still be held")
	}
}

func TestParseControl(t *testing.T) {
	for c := Control(0); c < numControls; c++ {
		parsed, err := ParseControl(c.String())
		if err != nil {
			t.Fatalf("parse %q: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("roundtrip %q: got %v", c.String(), parsed)
		}
	}

	if _, err := ParseControl("afterburner"); err == nil {
		t.Error("expected error for unknown control")
	}
}

func TestThrottleAcceleratesAndCaps(t *testing.T) {
	s := &State{Speed: MinSpeed}
	c := Controls{Throttle: 1}
	dt := 1.0 / 60.0

	prev := s.Speed
	for i := 0; i < 60; i++ {
		ApplyThrottle(s, c, dt)
		if s.Speed < prev {
			t.Fatalf("speed decreased while accelerating: %f -> %f", prev, s.Speed)
		}
		prev = s.Speed
	}
	if math.Abs(s.Speed-(MinSpeed+Acceleration)) > 1e-9 {
		t.Errorf("after 1s expected %f, got %f", MinSpeed+Acceleration, s.Speed)
	}

	// (MaxSpeed-MinSpeed)/Acceleration seconds of holding saturates
	// the envelope exactly.
	for i := 0; i < 60*6; i++ {
		ApplyThrottle(s, c, dt)
	}
	if s.Speed != MaxSpeed {
		t.Errorf("expected exact cap at %f, got %f", MaxSpeed, s.Speed)
	}
}

func TestThrottleDecelerateClampsAtMin(t *testing.T) {
	s := &State{Speed: MinSpeed + 1}
	c := Controls{Throttle: -1}
	for i := 0; i < 600; i++ {
		ApplyThrottle(s, c, 1.0/60.0)
	}
	if s.Speed != MinSpeed {
		t.Errorf("expected clamp at %f, got %f", MinSpeed, s.Speed)
	}
}

func TestThrottleIdlePreservesSailingSpeed(t *testing.T) {
	s := &State{Speed: WaterSailingSpeed}
	ApplyThrottle(s, Controls{}, 1.0/60.0)
	if s.Speed != WaterSailingSpeed {
		t.Errorf("idle throttle must not disturb sailing speed, got %f", s.Speed)
	}
}
