// Package vecmath provides the 3D vector arithmetic used by the lander
// dynamics in planet-centered Cartesian coordinates.
package vecmath

import "math"

// Vec3 is a 3D vector value. All operations return new values.
type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Abs returns the Euclidean magnitude.
func (v Vec3) Abs() float64 { return math.Sqrt(v.Dot(v)) }

// Abs2 returns the squared magnitude.
func (v Vec3) Abs2() float64 { return v.Dot(v) }

// Norm returns the unit vector in the direction of v. The zero vector
// normalizes to the zero vector, so drag on a lander at rest vanishes
// instead of producing NaN.
func (v Vec3) Norm() Vec3 {
	m := v.Abs()
	if m == 0 {
		return Vec3{}
	}
	return v.Scale(1 / m)
}

// IsFinite reports whether all components are finite.
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
