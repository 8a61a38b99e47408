package lander

import "math"

// Step advances the state by exactly one Dt using explicit Euler integration.
// Forces are evaluated on the pre-update state; position is updated from the
// old velocity before velocity picks up the new acceleration. That ordering
// is part of the contract and must not be swapped for semi-implicit Euler.
func Step(s *State, env Environment) {
	r := s.Position.Abs()
	speed := s.Velocity.Abs()
	rhat := s.Position.Norm()
	vhat := s.Velocity.Norm() // zero vector at zero speed, so drag vanishes
	mass := s.Mass()

	gravity := rhat.Scale(-Gravity * MarsMass / (r * r))

	density := env.AtmosphericDensity(s.Position)
	dragLander := vhat.Scale(0.5 * density * DragCoefLander * math.Pi * LanderSize * LanderSize * speed * speed / mass)
	thrust := env.ThrustWrtWorld(s).Scale(1 / mass)

	accel := gravity.Sub(dragLander).Add(thrust)
	if s.Parachute == ParachuteDeployed {
		dragChute := vhat.Scale(0.5 * density * DragCoefChute * chuteAreaMultiple * LanderSize * LanderSize * speed * speed / mass)
		accel = accel.Sub(dragChute)
	}

	s.Position = s.Position.Add(s.Velocity.Scale(s.Dt))
	s.Velocity = s.Velocity.Add(accel.Scale(s.Dt))

	// Post-update hooks, in fixed order. Both act on the already-updated
	// state and take effect on next tick's force computation.
	if s.AutopilotEnabled {
		Autopilot(s, env)
	}
	if s.StabilizedAttitude {
		env.StabilizeAttitude(s)
	}
}
