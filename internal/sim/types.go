package sim

import (
	"github.com/san-kum/lander/internal/lander"
)

// Touchdown limits: impacts faster than these in either axis destroy the
// lander.
const (
	MaxImpactDescentRate = 1.0 // m/s
	MaxImpactGroundSpeed = 1.0 // m/s
)

// Outcome classifies how a run ended.
type Outcome int

const (
	// Flying means the run ended with the lander still above the surface
	// (duration elapsed or the run was canceled).
	Flying Outcome = iota
	Landed
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	Observe(s *lander.State, t float64)
	Value() float64
	Reset()
}

// Observer is notified of every tick before it executes.
type Observer interface {
	OnStep(s *lander.State, t float64)
}

// Config controls one run.
type Config struct {
	// Duration is the simulated time to run for, s.
	Duration float64
	// ValidateState aborts the run when position or velocity go non-finite.
	ValidateState bool
	// BurnFuel enables fuel consumption proportional to throttle.
	BurnFuel bool
}

func DefaultConfig() Config {
	return Config{
		Duration:      300.0,
		ValidateState: true,
		BurnFuel:      true,
	}
}

// Sample is one recorded trajectory point.
type Sample struct {
	Time        float64                `json:"time"`
	Altitude    float64                `json:"altitude"`
	DescentRate float64                `json:"descent_rate"`
	Speed       float64                `json:"speed"`
	Throttle    float64                `json:"throttle"`
	Fuel        float64                `json:"fuel"`
	Parachute   lander.ParachuteStatus `json:"parachute"`
}

// Result holds the recorded trajectory and summary of one run.
type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	Outcome    Outcome
	StepsTaken int
	Final      lander.State
}
