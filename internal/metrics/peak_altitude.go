package metrics

import "github.com/avens-io/floatplane/internal/flight"

// PeakAltitude records the highest altitude reached during the run.
type PeakAltitude struct {
	peak float64
}

func NewPeakAltitude() *PeakAltitude { return &PeakAltitude{} }

func (p *PeakAltitude) Name() string { return "peak_altitude" }

func (p *PeakAltitude) Observe(tele flight.Telemetry) {
	if tele.Altitude > p.peak {
		p.peak = tele.Altitude
	}
}

func (p *PeakAltitude) Value() float64 { return p.peak }

func (p *PeakAltitude) Reset() { p.peak = 0 }
