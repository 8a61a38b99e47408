package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/lander/internal/lander"
	"github.com/san-kum/lander/internal/vecmath"
)

func restingState(altitude float64) *lander.State {
	return &lander.State{
		Position: vecmath.New(lander.MarsRadius+altitude, 0, 0),
		Fuel:     1.0,
		Dt:       0.1,
	}
}

func TestSpecificOrbitalEnergy(t *testing.T) {
	s := restingState(0)
	want := -lander.Gravity * lander.MarsMass / lander.MarsRadius
	if got := SpecificOrbitalEnergy(s); math.Abs(got-want) > math.Abs(want)*1e-12 {
		t.Errorf("energy = %e, want %e", got, want)
	}
}

func TestOrbitalEnergyDrift(t *testing.T) {
	m := NewOrbitalEnergyDrift()

	s := restingState(10000)
	m.Observe(s, 0)
	if m.Value() != 0 {
		t.Errorf("single observation should have zero drift, got %e", m.Value())
	}

	s.Velocity = vecmath.New(100, 0, 0)
	m.Observe(s, 0.1)
	if m.Value() <= 0 {
		t.Error("expected non-zero drift after energy change")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestPeakDescentRate(t *testing.T) {
	m := NewPeakDescentRate()

	s := restingState(10000)
	s.Velocity = vecmath.New(-30, 0, 0) // descending at 30 m/s
	m.Observe(s, 0)

	s.Velocity = vecmath.New(-10, 0, 0)
	m.Observe(s, 0.1)

	if m.Value() != 30 {
		t.Errorf("peak descent = %f, want 30", m.Value())
	}

	// Climbing must not register as descent.
	m.Reset()
	s.Velocity = vecmath.New(50, 0, 0)
	m.Observe(s, 0)
	if m.Value() != 0 {
		t.Errorf("climb recorded as descent: %f", m.Value())
	}
}

func TestFuelUsed(t *testing.T) {
	m := NewFuelUsed()

	s := restingState(10000)
	m.Observe(s, 0)
	s.Fuel = 0.7
	m.Observe(s, 1)

	if math.Abs(m.Value()-0.3) > 1e-12 {
		t.Errorf("fuel used = %f, want 0.3", m.Value())
	}
}

func TestControlEffort(t *testing.T) {
	m := NewControlEffort()
	if m.Value() != 0 {
		t.Error("expected zero effort with no samples")
	}

	s := restingState(10000)
	s.Throttle = 1.0
	m.Observe(s, 0)
	s.Throttle = 0.0
	m.Observe(s, 0.1)

	if m.Value() != 0.5 {
		t.Errorf("mean effort = %f, want 0.5", m.Value())
	}
}
