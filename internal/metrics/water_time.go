// Package metrics provides per-run telemetry accumulators reported in run
// metadata.
package metrics

import "github.com/avens-io/floatplane/internal/flight"

// WaterTime measures the fraction of the run spent in water contact.
type WaterTime struct {
	samples int
	wet     int
}

func NewWaterTime() *WaterTime { return &WaterTime{} }

func (w *WaterTime) Name() string { return "water_time" }

func (w *WaterTime) Observe(tele flight.Telemetry) {
	w.samples++
	if tele.OnWater {
		w.wet++
	}
}

func (w *WaterTime) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return float64(w.wet) / float64(w.samples)
}

func (w *WaterTime) Reset() {
	w.samples = 0
	w.wet = 0
}
