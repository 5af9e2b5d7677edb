package integrator

import (
	"testing"

	"github.com/kael-vance/kdtrace/types"
)

func TestFresnelNormalIncidenceMatchesSchlickR0(t *testing.T) {
	n := types.XYZ(0, 0, 1)
	i := types.XYZ(0, 0, 1) // incident straight on, same side as n
	ior := float32(1.5)

	got := Fresnel(i, n, ior)
	r0 := (1 - ior) / (1 + ior)
	want := r0 * r0
	if d := got - want; d < -1e-4 || d > 1e-4 {
		t.Fatalf("expected normal-incidence reflectance %v; got %v", want, got)
	}
}

func TestFresnelTotalInternalReflection(t *testing.T) {
	n := types.XYZ(0, 0, 1)
	// A ray inside glass hitting the boundary at a steep grazing angle.
	i := types.XYZ(0.99, 0, -0.14).Normalize()
	got := Fresnel(i, n, 1.0/1.5)
	if got != 1 {
		t.Fatalf("expected total internal reflection to report full reflectance 1; got %v", got)
	}
}

func TestFresnelIsSymmetricAboutTheSurface(t *testing.T) {
	n := types.XYZ(0, 0, 1)
	ior := float32(1.5)

	outside := Fresnel(types.XYZ(0.3, 0, 0.95).Normalize(), n, ior)
	inside := Fresnel(types.XYZ(0.3, 0, -0.95).Normalize(), n, ior)
	if d := outside - inside; d < -1e-3 || d > 1e-3 {
		t.Fatalf("expected matching reflectance from either side of the surface; outside=%v inside=%v", outside, inside)
	}
}
