// Package lander implements the lander flight dynamics: one-step explicit
// Euler integration of the equations of motion under gravity, aerodynamic
// drag and thrust, and the proportional descent autopilot.
package lander

import (
	"github.com/san-kum/lander/internal/vecmath"
)

// ParachuteStatus is the deployment state of the drag chute. Deployment is
// monotonic: once deployed the dynamics never fold it back up.
type ParachuteStatus int

const (
	ParachuteNotDeployed ParachuteStatus = iota
	ParachuteDeployed
	// ParachuteLost is reserved for structural failure handling.
	ParachuteLost
)

func (p ParachuteStatus) String() string {
	switch p {
	case ParachuteNotDeployed:
		return "not deployed"
	case ParachuteDeployed:
		return "deployed"
	case ParachuteLost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is the full kinematic and configuration state of one lander. It is an
// explicit value owned by whoever drives the simulation, so several
// independent landers can be stepped side by side.
type State struct {
	Position    vecmath.Vec3 // planet-centered Cartesian, m
	Velocity    vecmath.Vec3 // m/s
	Orientation vecmath.Vec3 // xyz Euler angles, degrees

	Fuel     float64 // fraction of full load remaining, in [0,1]
	Throttle float64 // fraction of MaxThrust commanded, in [0,1]

	Parachute          ParachuteStatus
	StabilizedAttitude bool
	AutopilotEnabled   bool

	Dt         float64 // fixed integration step, s
	ScenarioID int
}

// Altitude is the height above the Mars datum surface.
func (s *State) Altitude() float64 {
	return s.Position.Abs() - MarsRadius
}

// DescentRate is the radial component of velocity: positive moving away from
// the planet center, negative while descending.
func (s *State) DescentRate() float64 {
	return s.Velocity.Dot(s.Position.Norm())
}

// GroundSpeed is the speed component tangent to the local surface.
func (s *State) GroundSpeed() float64 {
	radial := s.Position.Norm().Scale(s.DescentRate())
	return s.Velocity.Sub(radial).Abs()
}

// Mass is the current total mass; fuel contributes linearly.
func (s *State) Mass() float64 {
	return UnloadedLanderMass + FuelCapacity*FuelDensity*s.Fuel
}

// IsValid reports whether position and velocity are finite. A NaN or Inf
// means a degenerate force made it through a normalization.
func (s *State) IsValid() bool {
	return s.Position.IsFinite() && s.Velocity.IsFinite()
}
