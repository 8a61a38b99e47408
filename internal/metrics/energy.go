// Package metrics provides per-run flight metrics fed by the simulation loop.
package metrics

import (
	"math"

	"github.com/san-kum/lander/internal/lander"
)

// OrbitalEnergyDrift tracks the maximum relative drift of the specific
// orbital energy v^2/2 - GM/r over a run. For a drag- and thrust-free
// trajectory this measures pure integration error.
type OrbitalEnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewOrbitalEnergyDrift() *OrbitalEnergyDrift {
	return &OrbitalEnergyDrift{
		name: "energy_drift",
	}
}

func (e *OrbitalEnergyDrift) Name() string { return e.name }

func (e *OrbitalEnergyDrift) Observe(s *lander.State, t float64) {
	energy := SpecificOrbitalEnergy(s)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *OrbitalEnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *OrbitalEnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// SpecificOrbitalEnergy is the two-body energy per unit mass of the current
// state: kinetic plus gravitational potential.
func SpecificOrbitalEnergy(s *lander.State) float64 {
	r := s.Position.Abs()
	if r == 0 {
		return 0
	}
	return 0.5*s.Velocity.Abs2() - lander.Gravity*lander.MarsMass/r
}
