package metrics

import "github.com/avens-io/floatplane/internal/flight"

// HardLandings counts water impacts severe enough to start a bounce.
type HardLandings struct {
	count    int
	bouncing bool
}

func NewHardLandings() *HardLandings { return &HardLandings{} }

func (h *HardLandings) Name() string { return "hard_landings" }

func (h *HardLandings) Observe(tele flight.Telemetry) {
	active := tele.ImpactBounce > 0
	if active && !h.bouncing {
		h.count++
	}
	h.bouncing = active
}

func (h *HardLandings) Value() float64 { return float64(h.count) }

func (h *HardLandings) Reset() {
	h.count = 0
	h.bouncing = false
}
