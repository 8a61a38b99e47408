package metrics

import (
	"math"

	"github.com/san-kum/lander/internal/lander"
)

// PeakDescentRate records the fastest descent seen during a run, m/s.
type PeakDescentRate struct {
	name string
	peak float64
}

func NewPeakDescentRate() *PeakDescentRate {
	return &PeakDescentRate{name: "peak_descent_rate"}
}

func (p *PeakDescentRate) Name() string { return p.name }

func (p *PeakDescentRate) Observe(s *lander.State, t float64) {
	// Descent rate is negative while falling; track its magnitude.
	if rate := -s.DescentRate(); rate > p.peak {
		p.peak = rate
	}
}

func (p *PeakDescentRate) Value() float64 { return p.peak }

func (p *PeakDescentRate) Reset() { p.peak = 0 }

// FuelUsed reports the fraction of the fuel load consumed between the first
// and last observation.
type FuelUsed struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewFuelUsed() *FuelUsed {
	return &FuelUsed{name: "fuel_used"}
}

func (f *FuelUsed) Name() string { return f.name }

func (f *FuelUsed) Observe(s *lander.State, t float64) {
	if f.samples == 0 {
		f.initial = s.Fuel
	}
	f.current = s.Fuel
	f.samples++
}

func (f *FuelUsed) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.initial - f.current
}

func (f *FuelUsed) Reset() {
	f.initial = 0
	f.current = 0
	f.samples = 0
}

// ControlEffort is the mean absolute throttle command over a run.
type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{name: "control_effort"}
}

func (c *ControlEffort) Name() string { return c.name }

func (c *ControlEffort) Observe(s *lander.State, t float64) {
	c.sum += math.Abs(s.Throttle)
	c.samples++
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
