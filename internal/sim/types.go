package sim

import (
	"fmt"
	"math"

	"github.com/avens-io/floatplane/internal/flight"
)

// Source produces the controls held for the tick starting at t. Scripted
// flight plans, the PID autopilot, and the interactive cockpit all
// implement it.
type Source interface {
	Sample(t float64) flight.ControlSet
}

// Observer is notified with the telemetry of every completed tick.
type Observer interface {
	OnStep(tele flight.Telemetry)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(tele flight.Telemetry)
	Value() float64
	Reset()
}

// Config shapes one headless run.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

// Result is the record of a completed run.
type Result struct {
	Telemetry  []flight.Telemetry
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// SimError marks a tick that produced a non-finite pose.
type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("sim error at t=%.4f (step %d): %s", e.Time, e.Step, e.Message)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
