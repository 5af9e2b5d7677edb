package renderer

import (
	"testing"

	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

func TestProceduralConfigInstallAndScene(t *testing.T) {
	cfg := &ProceduralConfig{
		Build:         scene.BuildFloorAndLight,
		CameraPos:     types.XYZ(0, 2, 5),
		CameraLookAt:  types.XYZ(0, 0, 0),
		FOV:           60,
		SkyColor:      types.XYZ(0.5, 0.6, 0.9),
		SkyBrightness: 1.2,
	}

	if cfg.Scene() != nil {
		t.Fatal("expected Scene() to be nil before Install runs")
	}

	if err := cfg.Install(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scene() == nil {
		t.Fatal("expected Scene() to be populated after Install")
	}

	color, brightness := cfg.Sky()
	if color != cfg.SkyColor || brightness != cfg.SkyBrightness {
		t.Fatalf("expected Sky() to return the configured color/brightness; got %v %v", color, brightness)
	}
}

func TestProceduralConfigCameraDefaultsUp(t *testing.T) {
	cfg := &ProceduralConfig{
		Build:        scene.BuildEmptyScene,
		CameraPos:    types.XYZ(0, 0, -5),
		CameraLookAt: types.XYZ(0, 0, 0),
		FOV:          45,
	}
	cam := cfg.Camera(1.5)
	if cam == nil {
		t.Fatal("expected a non-nil camera")
	}
}
