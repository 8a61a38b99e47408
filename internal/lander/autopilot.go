package lander

// Autopilot gains and limits. The controller is a pure proportional law on a
// composite altitude/descent-rate error; it keeps no memory between ticks.
const (
	autopilotKh    = 0.02
	autopilotKp    = 0.5
	throttleOffset = 0.5

	// ChuteDeployAltitude is the ceiling below which the autopilot attempts
	// parachute deployment, m.
	ChuteDeployAltitude = 150000.0
)

// Autopilot adjusts throttle, parachute and attitude hold from the current
// altitude and descent rate. It mutates only Throttle, Parachute and
// StabilizedAttitude.
func Autopilot(s *State, env Environment) {
	altitude := s.Altitude()
	descentRate := s.DescentRate()
	pout := autopilotKp * (-(0.5 + autopilotKh*altitude + descentRate))

	// Engaging the autopilot implies the lander is attitude-held.
	s.StabilizedAttitude = true

	// Piecewise-linear throttle map: clamped to [0,1] with a unity-slope
	// region around the midpoint. The closed lower boundary routes
	// pout == -throttleOffset to zero throttle.
	switch {
	case pout <= -throttleOffset:
		s.Throttle = 0
	case pout < 1-throttleOffset:
		s.Throttle = throttleOffset + pout
	default:
		s.Throttle = 1
	}

	if altitude <= ChuteDeployAltitude && env.SafeToDeployParachute(s) {
		s.Parachute = ParachuteDeployed
	}
}
