package camera

import (
	"testing"

	"github.com/kael-vance/kdtrace/types"
)

func TestNewCameraLooksAtTarget(t *testing.T) {
	pos := types.XYZ(0, 0, -5)
	lookAt := types.XYZ(0, 0, 0)
	up := types.XYZ(0, 1, 0)
	c := New(pos, lookAt, up, 60, 1.0)

	centerRay := c.Ray(0.5, 0.5, 1, 1)
	want := lookAt.Sub(pos).Normalize()
	if d := centerRay.Dir.Sub(want).Dot(centerRay.Dir.Sub(want)); d > 1e-3 {
		t.Fatalf("expected the center subpixel ray to point at the forward axis %v; got %v", want, centerRay.Dir)
	}
}

func TestIsThinLensTogglesOnAperture(t *testing.T) {
	c := New(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), types.XYZ(0, 1, 0), 60, 1.0)
	if c.IsThinLens() {
		t.Fatal("expected a zero aperture camera to not be thin-lens")
	}
	if !c.IsSimple() {
		t.Fatal("expected a zero aperture camera to be simple")
	}

	c.ApertureRadius = 0.1
	if !c.IsThinLens() {
		t.Fatal("expected a positive aperture camera to be thin-lens")
	}
	if c.IsSimple() {
		t.Fatal("expected a positive aperture camera to no longer be simple")
	}
}

func TestRayIsUnitLength(t *testing.T) {
	c := New(types.XYZ(1, 2, 3), types.XYZ(4, 2, 3), types.XYZ(0, 1, 0), 90, 1.77)
	r := c.Ray(0.2, 0.8, 256, 144)
	if l := r.Dir.Len(); l < 0.999 || l > 1.001 {
		t.Fatalf("expected a unit length direction; got %v", l)
	}
}

func TestRayLensPassesThroughFocusPlane(t *testing.T) {
	pos := types.XYZ(0, 0, -5)
	c := New(pos, types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1.0)
	c.ApertureRadius = 0.2
	c.FocusDistance = 5

	primary := c.Ray(0.5, 0.5, 1, 1)
	focusPoint := primary.Origin.Add(primary.Dir.Mul(c.FocusDistance))

	lensRay := c.RayLens(0.5, 0.5, 1, 1, 0.9, 0.1)
	if lensRay.Origin == primary.Origin {
		t.Fatal("expected the lens-jittered ray to originate off the pinhole")
	}

	toFocus := focusPoint.Sub(lensRay.Origin).Normalize()
	if d := lensRay.Dir.Sub(toFocus).Dot(lensRay.Dir.Sub(toFocus)); d > 1e-3 {
		t.Fatalf("expected the jittered ray to re-aim through the focus point; dir=%v want=%v", lensRay.Dir, toFocus)
	}
}

func TestConcentricDiskStaysWithinUnitDisk(t *testing.T) {
	samples := [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}, {0.25, 0.75}}
	for _, s := range samples {
		x, y := concentricDisk(s[0], s[1])
		if r := x*x + y*y; r > 1.0001 {
			t.Fatalf("expected sample (%v,%v) to map inside the unit disk; got radius^2=%v", s[0], s[1], r)
		}
	}
}
