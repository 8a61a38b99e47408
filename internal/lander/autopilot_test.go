package lander

import (
	"testing"

	"github.com/san-kum/lander/internal/vecmath"
)

// stubEnv is a deterministic Environment for exercising the controller and
// integrator without the Mars physics model.
type stubEnv struct {
	density   float64
	thrust    vecmath.Vec3
	safeChute bool
	stabCalls int
}

func (e *stubEnv) AtmosphericDensity(pos vecmath.Vec3) float64 { return e.density }
func (e *stubEnv) ThrustWrtWorld(s *State) vecmath.Vec3        { return e.thrust }
func (e *stubEnv) SafeToDeployParachute(s *State) bool         { return e.safeChute }
func (e *stubEnv) StabilizeAttitude(s *State)                  { e.stabCalls++ }

// stateAt builds a state with a given altitude and descent rate on the +x
// axis, so the autopilot's derived quantities are exact.
func stateAt(altitude, descentRate float64) *State {
	return &State{
		Position: vecmath.New(MarsRadius+altitude, 0, 0),
		Velocity: vecmath.New(descentRate, 0, 0),
		Fuel:     1.0,
		Dt:       0.1,
	}
}

func TestAutopilotThrottleClamped(t *testing.T) {
	env := &stubEnv{}

	altitudes := []float64{0, 100, 10000, 150000, 200000, 1e7}
	rates := []float64{-5000, -500, -1, 0, 1, 500, 5000}

	for _, alt := range altitudes {
		for _, rate := range rates {
			s := stateAt(alt, rate)
			Autopilot(s, env)
			if s.Throttle < 0 || s.Throttle > 1 {
				t.Errorf("altitude=%g rate=%g: throttle %f out of [0,1]", alt, rate, s.Throttle)
			}
		}
	}
}

func TestAutopilotZeroThrottleBoundary(t *testing.T) {
	// altitude 0 and descent rate +0.5 gives Pout = -0.5 exactly; the closed
	// boundary must command zero throttle, not the linear branch.
	s := stateAt(0, 0.5)
	Autopilot(s, &stubEnv{})
	if s.Throttle != 0 {
		t.Errorf("expected throttle 0 at Pout=-0.5, got %f", s.Throttle)
	}
}

func TestAutopilotLinearRegion(t *testing.T) {
	// altitude 0 and descent rate -0.5 gives Pout = 0, the middle of the
	// linear region, so throttle equals the offset.
	s := stateAt(0, -0.5)
	Autopilot(s, &stubEnv{})
	if s.Throttle != 0.5 {
		t.Errorf("expected throttle 0.5 at Pout=0, got %f", s.Throttle)
	}
}

func TestAutopilotFullThrottle(t *testing.T) {
	// A fast low descent drives Pout past the upper breakpoint.
	s := stateAt(0, -100)
	Autopilot(s, &stubEnv{})
	if s.Throttle != 1 {
		t.Errorf("expected throttle 1 for fast descent, got %f", s.Throttle)
	}
}

func TestAutopilotSetsAttitudeHold(t *testing.T) {
	s := stateAt(50000, -100)
	s.StabilizedAttitude = false
	Autopilot(s, &stubEnv{})
	if !s.StabilizedAttitude {
		t.Error("autopilot should force attitude hold")
	}
}

func TestAutopilotParachuteDeployment(t *testing.T) {
	tests := []struct {
		name     string
		altitude float64
		safe     bool
		want     ParachuteStatus
	}{
		{"at ceiling, safe", ChuteDeployAltitude, true, ParachuteDeployed},
		{"below ceiling, safe", 10000, true, ParachuteDeployed},
		{"below ceiling, unsafe", 10000, false, ParachuteNotDeployed},
		{"above ceiling, safe", ChuteDeployAltitude + 1, true, ParachuteNotDeployed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateAt(tt.altitude, -50)
			Autopilot(s, &stubEnv{safeChute: tt.safe})
			if s.Parachute != tt.want {
				t.Errorf("parachute = %v, want %v", s.Parachute, tt.want)
			}
		})
	}
}

func TestAutopilotNeverRepacksParachute(t *testing.T) {
	s := stateAt(ChuteDeployAltitude+50000, 0)
	s.Parachute = ParachuteDeployed
	Autopilot(s, &stubEnv{safeChute: false})
	if s.Parachute != ParachuteDeployed {
		t.Error("deployment must be monotonic")
	}
}
