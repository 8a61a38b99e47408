package lander

import (
	"math"

	"github.com/san-kum/lander/internal/vecmath"
)

// Environment supplies the physics-model collaborators the dynamics depend
// on. Injecting it keeps the integrator testable against deterministic stubs.
type Environment interface {
	// AtmosphericDensity returns the local air density (kg/m^3) at a position.
	AtmosphericDensity(pos vecmath.Vec3) float64
	// ThrustWrtWorld returns the current thrust force vector in world
	// coordinates, derived from throttle and orientation.
	ThrustWrtWorld(s *State) vecmath.Vec3
	// SafeToDeployParachute reports whether dynamic pressure and speed permit
	// chute deployment without structural failure.
	SafeToDeployParachute(s *State) bool
	// StabilizeAttitude snaps the orientation so the thrust axis points along
	// the outward radial direction.
	StabilizeAttitude(s *State)
}

// MarsEnvironment is the production Environment: exponential atmosphere,
// throttle-proportional thrust along the body z axis, and the parachute
// structural limits.
type MarsEnvironment struct{}

func NewMarsEnvironment() *MarsEnvironment {
	return &MarsEnvironment{}
}

// AtmosphericDensity models an exponential atmosphere that cuts off at the
// exosphere.
func (e MarsEnvironment) AtmosphericDensity(pos vecmath.Vec3) float64 {
	altitude := pos.Abs() - MarsRadius
	if altitude > Exosphere {
		return 0
	}
	return surfaceDensity * math.Exp(-altitude/atmosScaleHeight)
}

// ThrustWrtWorld rotates the body thrust axis into the world frame and scales
// it by the commanded throttle. An empty tank produces no thrust.
func (e MarsEnvironment) ThrustWrtWorld(s *State) vecmath.Vec3 {
	if s.Fuel <= 0 || s.Throttle <= 0 {
		return vecmath.Vec3{}
	}
	return thrustAxis(s.Orientation).Scale(s.Throttle * MaxThrust)
}

// SafeToDeployParachute checks the chute drag force against its structural
// limit and, within the atmosphere, the speed against the canopy limit.
func (e MarsEnvironment) SafeToDeployParachute(s *State) bool {
	density := e.AtmosphericDensity(s.Position)
	drag := 0.5 * DragCoefChute * density * chuteAreaMultiple * LanderSize * LanderSize * s.Velocity.Abs2()
	if drag > MaxParachuteDrag {
		return false
	}
	if s.Velocity.Abs() > MaxParachuteSpeed && s.Altitude() < Exosphere {
		return false
	}
	return true
}

// StabilizeAttitude forces the orientation so the body z axis (the thrust
// axis) points along the outward radial, i.e. the engine fires straight down.
func (e MarsEnvironment) StabilizeAttitude(s *State) {
	up := s.Position.Norm()
	if up == (vecmath.Vec3{}) {
		return
	}
	s.Orientation = attitudeFor(up)
}

// thrustAxis is the body z axis expressed in world coordinates for xyz Euler
// angles (degrees) applied as Rz * Ry * Rx.
func thrustAxis(orientation vecmath.Vec3) vecmath.Vec3 {
	ax := orientation.X * math.Pi / 180
	ay := orientation.Y * math.Pi / 180
	az := orientation.Z * math.Pi / 180

	sx, cx := math.Sincos(ax)
	sy, cy := math.Sincos(ay)
	sz, cz := math.Sincos(az)

	// Third column of Rz(az)*Ry(ay)*Rx(ax).
	return vecmath.Vec3{
		X: cz*sy*cx + sz*sx,
		Y: sz*sy*cx - cz*sx,
		Z: cy * cx,
	}
}

// attitudeFor inverts thrustAxis for a unit direction, holding the z Euler
// angle at zero.
func attitudeFor(dir vecmath.Vec3) vecmath.Vec3 {
	ax := math.Asin(-dir.Y)
	ay := math.Atan2(dir.X, dir.Z)
	return vecmath.Vec3{
		X: ax * 180 / math.Pi,
		Y: ay * 180 / math.Pi,
		Z: 0,
	}
}
