package scene

import "testing"

func TestBuildEmptyScene(t *testing.T) {
	s, err := BuildEmptyScene()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Triangles) != 0 || len(s.Lights) != 0 {
		t.Fatal("expected the empty scene to have no geometry and no lights")
	}
}

func TestBuildFloorAndLight(t *testing.T) {
	s, err := BuildFloorAndLight()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Triangles) != 2 {
		t.Fatalf("expected a single quad (2 triangles); got %d", len(s.Triangles))
	}
	if len(s.Lights) != 1 {
		t.Fatalf("expected exactly one light; got %d", len(s.Lights))
	}
}

func TestBuildMirrorBoxHasReflectiveMaterial(t *testing.T) {
	s, err := BuildMirrorBox()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sawReflective bool
	for _, m := range s.Materials {
		if m.Reflective && m.ReflectionStrength == 1 {
			sawReflective = true
		}
	}
	if !sawReflective {
		t.Fatal("expected the mirror box fixture to include a fully reflective material")
	}
}

func TestBuildGlassSlabIsTranslucent(t *testing.T) {
	s, err := BuildGlassSlab()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Materials) != 1 {
		t.Fatalf("expected a single glass material; got %d", len(s.Materials))
	}
	if !s.Materials[0].IsTranslucent() {
		t.Fatal("expected the glass slab material to be translucent")
	}
	if s.Materials[0].RefractionIndex != 1.5 {
		t.Fatalf("expected refraction index 1.5; got %v", s.Materials[0].RefractionIndex)
	}
}
