package kdtree

import (
	"testing"

	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

func buildFloorTree(t *testing.T) *Tree {
	t.Helper()
	sc, err := scene.BuildFloorAndLight()
	if err != nil {
		t.Fatalf("unexpected error building the fixture scene: %v", err)
	}
	tree, err := Build(sc, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error building the tree: %v", err)
	}
	return tree
}

func TestBuildProducesNonEmptyTree(t *testing.T) {
	tree := buildFloorTree(t)
	if tree.NodeCount() == 0 {
		t.Fatal("expected at least one node in a tree built over real geometry")
	}
	if tree.TriangleRefCount() != 2 {
		t.Fatalf("expected 2 triangle refs (neither floor triangle is duplicated across a split); got %d", tree.TriangleRefCount())
	}
}

func TestTreeTriangleLookup(t *testing.T) {
	tree := buildFloorTree(t)
	tri := tree.Triangle(0)
	if tri.PlaneN.LenSq() < 0.99 || tri.PlaneN.LenSq() > 1.01 {
		t.Fatalf("expected a unit plane normal on the stored triangle; got %v", tri.PlaneN)
	}
}

func TestNearestHitOnFloor(t *testing.T) {
	tree := buildFloorTree(t)
	ray := types.Ray{Origin: types.XYZ(0, 5, 0), Dir: types.XYZ(0, -1, 0)}
	hit, ok := tree.NearestHit(ray)
	if !ok {
		t.Fatal("expected a straight-down ray to hit the floor quad")
	}
	if hit.T < 4.9 || hit.T > 5.1 {
		t.Fatalf("expected hit parameter near 5; got %v", hit.T)
	}
}

func TestNearestHitMissesAboveBounds(t *testing.T) {
	tree := buildFloorTree(t)
	ray := types.Ray{Origin: types.XYZ(100, 5, 100), Dir: types.XYZ(0, -1, 0)}
	if _, ok := tree.NearestHit(ray); ok {
		t.Fatal("expected a ray far outside the floor's extent to miss")
	}
}

func TestAnyHitMatchesNearestHit(t *testing.T) {
	tree := buildFloorTree(t)
	ray := types.Ray{Origin: types.XYZ(0, 5, 0), Dir: types.XYZ(0, -1, 0)}
	if _, ok := tree.NearestHit(ray); !ok {
		t.Fatal("expected NearestHit to report a hit for the straight-down ray")
	}
	if !tree.AnyHit(ray) {
		t.Fatal("expected AnyHit to agree with NearestHit on a hitting ray")
	}
}

func TestNearestExcludingSkipsGivenTriangle(t *testing.T) {
	tree := buildFloorTree(t)
	ray := types.Ray{Origin: types.XYZ(0, 5, 0), Dir: types.XYZ(0, -1, 0)}
	hit, ok := tree.NearestHit(ray)
	if !ok {
		t.Fatal("expected the ray to hit the floor before excluding anything")
	}

	// Excluding the hit triangle should fall through to the quad's other
	// triangle if the point still lies on it, or miss otherwise; either
	// way the excluded triangle itself must never be returned.
	excluded, ok := tree.NearestExcluding(ray, hit.Tri)
	if ok && excluded.Tri == hit.Tri {
		t.Fatal("expected NearestExcluding to never return the excluded triangle")
	}
}

func TestVisibleBetweenPoints(t *testing.T) {
	tree := buildFloorTree(t)
	if !tree.Visible(types.XYZ(0, 1, 0), types.XYZ(0, 2, 0)) {
		t.Fatal("expected two points above the floor with nothing between them to be mutually visible")
	}
	if tree.Visible(types.XYZ(0, 1, 0), types.XYZ(0, -1, 0)) {
		t.Fatal("expected the floor quad to occlude visibility between a point above and below it")
	}
}
