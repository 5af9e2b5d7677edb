package types

import "testing"

func TestVec3Dot(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, -5, 6)
	got := a.Dot(b)
	want := float32(4 - 10 + 18)
	if got != want {
		t.Fatalf("expected dot %v; got %v", want, got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := XYZ(1, 0, 0)
	y := XYZ(0, 1, 0)
	got := x.Cross(y)
	want := XYZ(0, 0, 1)
	if got != want {
		t.Fatalf("expected cross %v; got %v", want, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4)
	n := v.Normalize()
	if l := n.Len(); l < 0.999 || l > 1.001 {
		t.Fatalf("expected unit length; got %v", l)
	}

	zero := XYZ(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to zero; got %v", zero)
	}
}

func TestVec3Reflect(t *testing.T) {
	// v points away from the surface at 45deg, n is straight up.
	v := XYZ(1, 1, 0).Normalize()
	n := XYZ(0, 1, 0)
	r := v.Reflect(n)
	want := XYZ(-1, 1, 0).Normalize()
	if !closeVec3(r, want, 1e-5) {
		t.Fatalf("expected reflection %v; got %v", want, r)
	}
}

func TestVec3RefractTotalInternalReflection(t *testing.T) {
	// A steep incidence going from a dense into a much less dense medium
	// should produce total internal reflection (zero vector).
	v := XYZ(0.99, -0.14, 0).Normalize()
	n := XYZ(0, 1, 0)
	r := v.Refract(n, 1.5)
	if r != (Vec3{}) {
		t.Fatalf("expected total internal reflection to yield the zero vector; got %v", r)
	}
}

func TestVec3RefractStraightThrough(t *testing.T) {
	v := XYZ(0, -1, 0)
	n := XYZ(0, 1, 0)
	r := v.Refract(n, 1.0)
	if !closeVec3(r, v, 1e-5) {
		t.Fatalf("expected unit eta, normal incidence to pass straight through; got %v", r)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := XYZ(-1, 2, 10)
	got := v.Clamp(5)
	want := XYZ(0, 2, 5)
	if got != want {
		t.Fatalf("expected clamped %v; got %v", want, got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !XYZ(1, 2, 3).IsFinite() {
		t.Fatal("expected finite vector to report finite")
	}
	nan := XYZ(0, 0, 0)
	nan[0] = nan[0] / nan[1]
	if nan.IsFinite() {
		t.Fatal("expected NaN-containing vector to report non-finite")
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := XYZ(1, 5, -2)
	b := XYZ(3, 2, -1)
	if got := MinVec3(a, b); got != XYZ(1, 2, -2) {
		t.Fatalf("expected min %v; got %v", XYZ(1, 2, -2), got)
	}
	if got := MaxVec3(a, b); got != XYZ(3, 5, -1) {
		t.Fatalf("expected max %v; got %v", XYZ(3, 5, -1), got)
	}
}

func closeVec3(a, b Vec3, eps float32) bool {
	d := a.Sub(b)
	return d.Dot(d) < eps*eps
}
