// Package sim drives the lander dynamics tick by tick over a configured
// duration, recording the trajectory and feeding pluggable metrics and
// observers.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/lander/internal/lander"
)

type Simulator struct {
	env       lander.Environment
	metrics   []Metric
	observers []Observer
}

func New(env lander.Environment) *Simulator {
	return &Simulator{
		env:       env,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances the state until the duration elapses, the lander touches down,
// or the context is canceled. The state is mutated in place; Result carries
// the recorded trajectory and a copy of the final state.
func (s *Simulator) Run(ctx context.Context, st *lander.State, cfg Config) (*Result, error) {
	if err := validate(st, cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / st.Dt)
	result := &Result{
		Samples: make([]Sample, 0, steps+1),
		Metrics: make(map[string]float64),
		Outcome: Flying,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	result.Samples = append(result.Samples, sampleOf(st, t))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Final = *st
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(st, t)
		}
		for _, o := range s.observers {
			o.OnStep(st, t)
		}

		outcome, down := s.Tick(st, cfg)
		t += st.Dt
		result.StepsTaken++

		if cfg.ValidateState && !st.IsValid() {
			result.Final = *st
			return result, fmt.Errorf("%w at t=%.2f", ErrInvalidState, t)
		}

		result.Samples = append(result.Samples, sampleOf(st, t))

		if down {
			result.Outcome = outcome
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = *st
	return result, nil
}

// Tick advances one integration step plus the supplemental fuel bookkeeping,
// and reports touchdown. It is the unit of work Run repeats; interactive
// drivers call it directly.
func (s *Simulator) Tick(st *lander.State, cfg Config) (Outcome, bool) {
	lander.Step(st, s.env)
	if cfg.BurnFuel {
		burnFuel(st)
	}
	if st.Altitude() <= 0 {
		return touchdown(st), true
	}
	return Flying, false
}

func validate(st *lander.State, cfg Config) error {
	if st.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrBadConfig, st.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrBadConfig, cfg.Duration)
	}
	return nil
}

// burnFuel consumes fuel in proportion to throttle, clamped at empty. This
// runs outside the dynamics step so the core integration stays a pure
// kinematic update.
func burnFuel(st *lander.State) {
	st.Fuel -= st.Dt * lander.FuelRateAtMaxThrust * st.Throttle / lander.FuelCapacity
	if st.Fuel < 0 {
		st.Fuel = 0
	}
}

// touchdown classifies the impact: soft on both the radial and tangential
// axes is a landing, anything else a crash.
func touchdown(st *lander.State) Outcome {
	if math.Abs(st.DescentRate()) <= MaxImpactDescentRate && st.GroundSpeed() <= MaxImpactGroundSpeed {
		return Landed
	}
	return Crashed
}

func sampleOf(st *lander.State, t float64) Sample {
	return Sample{
		Time:        t,
		Altitude:    st.Altitude(),
		DescentRate: st.DescentRate(),
		Speed:       st.Velocity.Abs(),
		Throttle:    st.Throttle,
		Fuel:        st.Fuel,
		Parachute:   st.Parachute,
	}
}
