// Package sim drives the flight pipeline with a fixed-step tick loop. Each
// tick samples controls, steps the plane's four pipeline stages to
// completion, steps the world, and only then publishes telemetry, so every
// observer sees a fully committed pose.
package sim

import (
	"context"
	"fmt"

	"github.com/avens-io/floatplane/internal/flight"
	"github.com/avens-io/floatplane/internal/world"
)

type Runner struct {
	plane     *flight.Plane
	world     *world.World
	source    Source
	metrics   []Metric
	observers []Observer
}

func New(p *flight.Plane, w *world.World, src Source) *Runner {
	return &Runner{
		plane:  p,
		world:  w,
		source: src,
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run executes the simulation until the configured duration elapses, the
// context is cancelled, or (with ValidateState) the pose goes non-finite.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Telemetry: make([]flight.Telemetry, 0, steps),
		Metrics:   make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		held := r.source.Sample(t)
		onWater := r.world.OnWater()

		r.plane.Step(held, onWater, cfg.Dt)
		r.world.Step(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		tele := flight.Snapshot(r.plane.State, r.plane.Body, r.world.OnWater(), t)
		result.Telemetry = append(result.Telemetry, tele)

		for _, m := range r.metrics {
			m.Observe(tele)
		}
		for _, o := range r.observers {
			o.OnStep(tele)
		}

		if cfg.ValidateState && !finite(tele.Altitude, tele.Speed, tele.BankDeg, tele.PitchDeg) {
			err := SimError{Time: t, Step: i, Message: "non-finite pose"}
			result.Errors = append(result.Errors, err)
			break
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
