package kdtree

import (
	"time"

	"github.com/kael-vance/kdtrace/log"
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

// Tree is the compressed, persistent kd-tree used for traversal: a
// flat Node array plus a triangle-index array, neither of which holds
// a pointer. It keeps a reference to the owning scene's
// vertex/triangle data and bounding box; it never mutates the scene.
type Tree struct {
	nodes         []Node
	triangleIndex []uint32

	vertices  []types.Vec3
	triangles []scene.Triangle
	bounds    types.AABB
	epsilon   float32

	Stats BuildStats
}

// Build constructs the SAH kd-tree over sc's committed geometry and
// immediately compresses it, discarding the uncompressed builder
// nodes.
func Build(sc *scene.Scene, cfg Config) (*Tree, error) {
	logger := log.New("kdtree")
	start := time.Now()

	triIdx := make([]uint32, len(sc.Triangles))
	for i := range triIdx {
		triIdx[i] = uint32(i)
	}
	ext := extentTables{x: sc.XEvents, y: sc.YEvents, z: sc.ZEvents}
	maxDepth := MaxDepth(len(sc.Triangles))

	root, stats := build(triIdx, sc.Bounds, ext, cfg, maxDepth)
	nodes, compressedTriIdx := compress(root)

	logger.Noticef("built kd-tree: %d triangles, %d nodes (%d leaves), max depth %d, %s",
		len(sc.Triangles), stats.NodeCount, stats.LeafCount, stats.MaxDepthUsed, time.Since(start))

	return &Tree{
		nodes:         nodes,
		triangleIndex: compressedTriIdx,
		vertices:      sc.Vertices,
		triangles:     sc.Triangles,
		bounds:        sc.Bounds,
		epsilon:       sc.Epsilon,
		Stats:         stats,
	}, nil
}

// NodeCount reports the number of slots in the compressed node array.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// TriangleRefCount reports the number of entries in the triangle-index
// array (with duplication under splits counted once per reference).
func (t *Tree) TriangleRefCount() int { return len(t.triangleIndex) }

// Triangle returns the scene triangle at index i, for callers that
// resolve a Hit.Tri back to material/geometry data.
func (t *Tree) Triangle(i uint32) scene.Triangle { return t.triangles[i] }
