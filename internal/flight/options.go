package flight

import "math"

// TakeoffPolicy selects between the two attested takeoff behaviours.
type TakeoffPolicy int

const (
	// TakeoffPitchGated requires both takeoff speed and a nose-up attitude
	// before lift builds. This is the intended design.
	TakeoffPitchGated TakeoffPolicy = iota
	// TakeoffUnconditional applies lift from speed alone. Superseded by
	// the pitch-gated policy but kept selectable for comparison runs.
	TakeoffUnconditional
)

// Options tunes pipeline behaviour that is not part of the hand-tuned
// constant set.
type Options struct {
	Takeoff TakeoffPolicy

	// CompensatedSmoothing replaces the fixed per-tick EMA blend factors
	// with 1-c^(dt/ReferenceDt), making the smoothing frame-rate
	// independent. Off by default: the historical behaviour assumes a
	// roughly constant tick rate.
	CompensatedSmoothing bool
	ReferenceDt          float64

	// BoundsRadius is the distance from the origin past which the flight
	// state is reset to keep the plane over the water.
	BoundsRadius float64
}

func DefaultOptions() Options {
	return Options{
		Takeoff:      TakeoffPitchGated,
		ReferenceDt:  1.0 / 60.0,
		BoundsRadius: WaterSize * 0.8,
	}
}

// blend returns the EMA blend amount for a smoothing constant c.
func (o Options) blend(c, dt float64) float64 {
	if !o.CompensatedSmoothing {
		return 1 - c
	}
	ref := o.ReferenceDt
	if ref <= 0 {
		ref = 1.0 / 60.0
	}
	return 1 - math.Pow(c, dt/ref)
}
