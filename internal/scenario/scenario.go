// Package scenario holds the canned initial-condition presets that exercise
// the lander dynamics in different regimes (orbit, descent, escape, decay).
package scenario

import (
	"errors"
	"fmt"

	"github.com/san-kum/lander/internal/lander"
	"github.com/san-kum/lander/internal/vecmath"
)

var (
	// ErrUnknownScenario indicates an id outside the preset table.
	ErrUnknownScenario = errors.New("scenario: unknown scenario id")

	// ErrEmptyScenario indicates a reserved slot with no initial conditions.
	ErrEmptyScenario = errors.New("scenario: reserved empty slot")
)

// NumSlots is the fixed size of the preset table, reserved slots included.
const NumSlots = 10

// Scenario is one preset of initial kinematic state and control flags.
type Scenario struct {
	ID          int
	Description string

	Position    vecmath.Vec3
	Velocity    vecmath.Vec3
	Orientation vecmath.Vec3

	StabilizedAttitude bool
	AutopilotEnabled   bool
}

// DefaultDt is the integration step shared by every preset, s.
const DefaultDt = 0.1

// Slots 7-9 are reserved; they stay nil in the table so a request for them is
// a typed error instead of silently-unset state.
var presets = [NumSlots]*Scenario{
	0: {
		ID:          0,
		Description: "circular orbit",
		Position:    vecmath.New(1.2*lander.MarsRadius, 0.0, 0.0),
		Velocity:    vecmath.New(0.0, -3247.087385863725, 0.0),
		Orientation: vecmath.New(0.0, 90.0, 0.0),
	},
	1: {
		ID:                 1,
		Description:        "descent from 10km",
		Position:           vecmath.New(0.0, -(lander.MarsRadius + 10000.0), 0.0),
		Orientation:        vecmath.New(0.0, 0.0, 90.0),
		StabilizedAttitude: true,
	},
	2: {
		ID:          2,
		Description: "elliptical orbit, thrust changes orbital plane",
		Position:    vecmath.New(0.0, 0.0, 1.2*lander.MarsRadius),
		Velocity:    vecmath.New(3500.0, 0.0, 0.0),
		Orientation: vecmath.New(0.0, 0.0, 90.0),
	},
	3: {
		ID:          3,
		Description: "polar launch at escape velocity (but drag prevents escape)",
		Position:    vecmath.New(0.0, 0.0, lander.MarsRadius+lander.LanderSize/2.0),
		Velocity:    vecmath.New(0.0, 0.0, 5027.0),
	},
	4: {
		ID:          4,
		Description: "elliptical orbit that clips the atmosphere and decays",
		Position:    vecmath.New(0.0, 0.0, lander.MarsRadius+100000.0),
		Velocity:    vecmath.New(4000.0, 0.0, 0.0),
		Orientation: vecmath.New(0.0, 90.0, 0.0),
	},
	5: {
		ID:                 5,
		Description:        "descent from 200km",
		Position:           vecmath.New(0.0, -(lander.MarsRadius + lander.Exosphere), 0.0),
		Orientation:        vecmath.New(0.0, 0.0, 90.0),
		StabilizedAttitude: true,
	},
	6: {
		ID:          6,
		Description: "geostationary orbit",
		// The radius literal stands in for (G*M/(2*pi/MARS_DAY)^2)^(1/3);
		// the velocity literal is the matching contractual initial condition.
		Position:    vecmath.New(20429635.87, 0.0, 0.0),
		Velocity:    vecmath.New(0.0, 1448.025, 0.0),
		Orientation: vecmath.New(0.0, 90.0, 0.0),
	},
}

// Get returns the preset for an id. Reserved slots 7-9 yield ErrEmptyScenario
// and ids outside the table yield ErrUnknownScenario.
func Get(id int) (*Scenario, error) {
	if id < 0 || id >= NumSlots {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScenario, id)
	}
	sc := presets[id]
	if sc == nil {
		return nil, fmt.Errorf("%w: %d", ErrEmptyScenario, id)
	}
	return sc, nil
}

// List returns the populated presets in id order.
func List() []*Scenario {
	out := make([]*Scenario, 0, NumSlots)
	for _, sc := range presets {
		if sc != nil {
			out = append(out, sc)
		}
	}
	return out
}

// InitState builds a fresh lander state from the preset.
func (sc *Scenario) InitState() *lander.State {
	return &lander.State{
		Position:           sc.Position,
		Velocity:           sc.Velocity,
		Orientation:        sc.Orientation,
		Fuel:               1.0,
		Parachute:          lander.ParachuteNotDeployed,
		StabilizedAttitude: sc.StabilizedAttitude,
		AutopilotEnabled:   sc.AutopilotEnabled,
		Dt:                 DefaultDt,
		ScenarioID:         sc.ID,
	}
}
