package metrics

import "github.com/avens-io/floatplane/internal/flight"

// ControlEffort integrates squared bank angle over the run, a rough measure
// of how hard the plane was maneuvered.
type ControlEffort struct {
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort { return &ControlEffort{} }

func (c *ControlEffort) Name() string { return "control_effort" }

func (c *ControlEffort) Observe(tele flight.Telemetry) {
	c.samples++
	c.sum += tele.BankDeg * tele.BankDeg
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}
