package integrator

import (
	"math/rand"
	"testing"

	"github.com/kael-vance/kdtrace/brdf"
	"github.com/kael-vance/kdtrace/camera"
	"github.com/kael-vance/kdtrace/kdtree"
	"github.com/kael-vance/kdtrace/render"
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

func TestRenderPixelAccumulatesRayCount(t *testing.T) {
	sc, err := scene.BuildFloorAndLight()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, _ := brdf.Lookup("lambert")
	opts := render.DefaultOptions()
	opts.Multisample = 4
	opts.Depth = 1
	pt := New(sc, tree, fn, opts)

	cam := camera.New(types.XYZ(0, 3, 6), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1.0)
	rng := rand.New(rand.NewSource(7))

	radiance, rayCount := pt.RenderPixel(cam, 4, 4, 8, 8, rng)
	if rayCount < int(opts.Multisample) {
		t.Fatalf("expected at least one ray per sample (%d samples); got %d rays", opts.Multisample, rayCount)
	}
	if !radiance.IsFinite() {
		t.Fatalf("expected finite accumulated radiance; got %v", radiance)
	}
}

func TestRenderPixelUsesLensRaysForThinLensCamera(t *testing.T) {
	sc, err := scene.BuildFloorAndLight()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, _ := brdf.Lookup("lambert")
	opts := render.DefaultOptions()
	opts.Multisample = 2
	opts.Depth = 1
	pt := New(sc, tree, fn, opts)

	cam := camera.New(types.XYZ(0, 3, 6), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1.0)
	cam.ApertureRadius = 0.3
	cam.FocusDistance = 5

	rng := rand.New(rand.NewSource(8))
	_, rayCount := pt.RenderPixel(cam, 4, 4, 8, 8, rng)
	if rayCount == 0 {
		t.Fatal("expected a thin-lens camera to still cast rays through RenderPixel")
	}
}
