package renderer

import (
	"context"
	"testing"

	"github.com/kael-vance/kdtrace/camera"
	"github.com/kael-vance/kdtrace/kdtree"
	"github.com/kael-vance/kdtrace/render"
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

func TestNewRejectsMissingScene(t *testing.T) {
	cam := camera.New(types.XYZ(0, 0, -1), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1)
	tree := &kdtree.Tree{}
	if _, err := New(nil, tree, cam, render.DefaultOptions()); err != render.ErrNoScene {
		t.Fatalf("expected ErrNoScene; got %v", err)
	}
}

func TestNewRejectsMissingCamera(t *testing.T) {
	sc, err := scene.BuildEmptyScene()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New(sc, tree, nil, render.DefaultOptions()); err != render.ErrNoCamera {
		t.Fatalf("expected ErrNoCamera; got %v", err)
	}
}

func TestNewRejectsMissingTree(t *testing.T) {
	sc, err := scene.BuildEmptyScene()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cam := camera.New(types.XYZ(0, 0, -1), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1)
	if _, err := New(sc, nil, cam, render.DefaultOptions()); err != render.ErrTreeNotBuilt {
		t.Fatalf("expected ErrTreeNotBuilt; got %v", err)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	sc, err := scene.BuildEmptyScene()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cam := camera.New(types.XYZ(0, 0, -1), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1)
	opts := render.DefaultOptions()
	opts.FrameW = 0
	if _, err := New(sc, tree, cam, opts); err != render.ErrInvalidOptions {
		t.Fatalf("expected ErrInvalidOptions; got %v", err)
	}
}

func TestRenderProducesFullFramebuffer(t *testing.T) {
	sc, err := scene.BuildFloorAndLight()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cam := camera.New(types.XYZ(0, 3, 6), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1)

	opts := render.DefaultOptions()
	opts.FrameW, opts.FrameH = 8, 8
	opts.Multisample = 2
	opts.Depth = 1
	opts.TileHeight = 3
	opts.Workers = 2

	r, err := New(sc, tree, cam, opts)
	if err != nil {
		t.Fatalf("unexpected error constructing the renderer: %v", err)
	}

	fb, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if len(fb.Pix) != 64 {
		t.Fatalf("expected a full 8x8 framebuffer; got %d pixels", len(fb.Pix))
	}
	if len(stats.Tiles) == 0 {
		t.Fatal("expected at least one tile stat to be recorded")
	}
	if stats.RayCount == 0 {
		t.Fatal("expected a non-zero ray count for a frame with visible geometry")
	}
}

func TestRenderHonorsCancellation(t *testing.T) {
	sc, err := scene.BuildFloorAndLight()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cam := camera.New(types.XYZ(0, 3, 6), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), 60, 1)

	opts := render.DefaultOptions()
	opts.FrameW, opts.FrameH = 32, 32
	opts.Multisample = 64
	opts.Depth = 4
	opts.TileHeight = 2
	opts.Workers = 1

	r, err := New(sc, tree, cam, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = r.Render(ctx)
	if err != render.ErrInterrupted {
		t.Fatalf("expected a pre-cancelled context to yield ErrInterrupted; got %v", err)
	}
}
