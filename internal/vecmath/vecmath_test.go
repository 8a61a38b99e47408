package vecmath

import (
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	v := New(3, 4, 0)
	if v.Abs() != 5 {
		t.Errorf("expected magnitude 5, got %f", v.Abs())
	}
	if v.Abs2() != 25 {
		t.Errorf("expected squared magnitude 25, got %f", v.Abs2())
	}
}

func TestNorm(t *testing.T) {
	v := New(0, -7, 0).Norm()
	if v.X != 0 || v.Y != -1 || v.Z != 0 {
		t.Errorf("expected (0,-1,0), got %+v", v)
	}

	u := New(1, 2, 3).Norm()
	if math.Abs(u.Abs()-1) > 1e-12 {
		t.Errorf("unit vector magnitude should be 1, got %f", u.Abs())
	}
}

func TestNormZeroVector(t *testing.T) {
	z := Vec3{}.Norm()
	if z != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %+v", z)
	}
	if !z.IsFinite() {
		t.Error("normalized zero vector should be finite")
	}
}

func TestDotCross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)

	if x.Dot(y) != 0 {
		t.Errorf("orthogonal dot should be 0, got %f", x.Dot(y))
	}

	z := x.Cross(y)
	if z != New(0, 0, 1) {
		t.Errorf("x cross y should be z, got %+v", z)
	}
}

func TestIsFinite(t *testing.T) {
	if !New(1, 2, 3).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{X: math.NaN()}).IsFinite() {
		t.Error("NaN component should be non-finite")
	}
	if (Vec3{Z: math.Inf(1)}).IsFinite() {
		t.Error("Inf component should be non-finite")
	}
}
