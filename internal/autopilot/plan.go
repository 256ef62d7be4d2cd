// Package autopilot provides control sources for headless flight: scripted
// flight plans, PID-based altitude and heading holds, and a neutral stick.
package autopilot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avens-io/floatplane/internal/flight"
)

// Step holds a set of controls for a window of the timeline. Steps may
// overlap; their controls are unioned.
type Step struct {
	At       float64  `yaml:"at"`
	Duration float64  `yaml:"for"`
	Hold     []string `yaml:"hold"`
}

type planStep struct {
	from, until float64
	held        flight.ControlSet
}

// Plan replays a timed control script.
type Plan struct {
	steps []planStep
}

// NewPlan resolves control names up front so a bad plan fails before the
// run starts.
func NewPlan(steps []Step) (*Plan, error) {
	p := &Plan{steps: make([]planStep, 0, len(steps))}
	for i, s := range steps {
		if s.Duration <= 0 {
			return nil, fmt.Errorf("plan step %d: duration must be positive", i)
		}
		var held flight.ControlSet
		for _, name := range s.Hold {
			c, err := flight.ParseControl(name)
			if err != nil {
				return nil, fmt.Errorf("plan step %d: %w", i, err)
			}
			held.Press(c)
		}
		p.steps = append(p.steps, planStep{
			from:  s.At,
			until: s.At + s.Duration,
			held:  held,
		})
	}
	return p, nil
}

type planFile struct {
	Steps []Step `yaml:"steps"`
}

// LoadPlan reads a yaml flight plan.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f planFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return NewPlan(f.Steps)
}

// Sample returns the union of all controls active at t.
func (p *Plan) Sample(t float64) flight.ControlSet {
	var held flight.ControlSet
	for _, s := range p.steps {
		if t >= s.from && t < s.until {
			held |= s.held
		}
	}
	return held
}

// None is the neutral control source.
type None struct{}

func (None) Sample(float64) flight.ControlSet { return 0 }
