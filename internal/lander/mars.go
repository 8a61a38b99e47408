package lander

// Physical constants for the Mars descent problem. Positions are in a
// planet-centered Cartesian frame (m), velocities in m/s, masses in kg.
const (
	Gravity    = 6.673e-11 // universal gravitational constant
	MarsMass   = 6.42e23
	MarsRadius = 3386000.0
	MarsDay    = 88642.65
	Exosphere  = 200000.0 // atmosphere treated as vacuum above this altitude

	LanderSize          = 1.0 // characteristic radius of the lander body
	DragCoefLander      = 1.0
	DragCoefChute       = 2.0
	UnloadedLanderMass  = 100.0
	FuelCapacity        = 100.0 // litres
	FuelRateAtMaxThrust = 0.5   // litres/s
	FuelDensity         = 1.0   // kg/litre

	MaxParachuteDrag  = 20000.0 // chute tears away above this drag force (N)
	MaxParachuteSpeed = 500.0   // m/s, within the atmosphere

	// Surface atmospheric density and exponential scale height.
	surfaceDensity    = 0.017
	atmosScaleHeight  = 11000.0
	chuteAreaMultiple = 20.0 // chute area relative to LanderSize squared
)

// MaxThrust is sized to hover a fully fuelled lander with a 50% margin
// against Mars surface gravity.
const MaxThrust = 1.5 * Gravity * MarsMass * (FuelDensity*FuelCapacity + UnloadedLanderMass) / (MarsRadius * MarsRadius)
