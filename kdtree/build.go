package kdtree

import (
	"math"
	"sort"

	"github.com/kael-vance/kdtrace/types"
)

// eventKind tags a BB-event as the beginning or end of a triangle's
// extent along the axis being swept.
type eventKind uint8

const (
	eventBegin eventKind = 0
	eventEnd   eventKind = 1
)

type event struct {
	pos  float32
	tri  uint32
	kind eventKind
}

// extentTables is the per-axis (min, max) triangle extent data computed
// once at scene commit (scene.Scene.XEvents/YEvents/ZEvents), reused by
// every recursive call instead of being recomputed per node.
type extentTables struct {
	x, y, z []float32
}

func (e extentTables) minmax(axis int, tri uint32) (float32, float32) {
	var t []float32
	switch axis {
	case 0:
		t = e.x
	case 1:
		t = e.y
	default:
		t = e.z
	}
	return t[2*tri], t[2*tri+1]
}

// uncompressedNode is the transient, pointer-based tree built by
// build() and discarded once compress() has flattened it.
type uncompressedNode struct {
	leaf  bool
	axis  int
	split float32

	left, right *uncompressedNode
	triangles   []uint32
}

// BuildStats accumulates counters that Build logs at Notice level and
// keeps on Tree.Stats.
type BuildStats struct {
	NodeCount    int
	LeafCount    int
	TriangleRefs int
	MaxDepthUsed int
}

// build recurses over the SAH split search, returning the root of the
// uncompressed tree plus build statistics.
func build(triangles []uint32, bounds types.AABB, ext extentTables, cfg Config, maxDepth int) (*uncompressedNode, BuildStats) {
	stats := BuildStats{}
	root := buildRec(triangles, bounds, 0, maxDepth, ext, cfg, &stats)
	return root, stats
}

func buildRec(triangles []uint32, bounds types.AABB, depth, maxDepth int, ext extentTables, cfg Config, stats *BuildStats) *uncompressedNode {
	stats.NodeCount++
	if depth > stats.MaxDepthUsed {
		stats.MaxDepthUsed = depth
	}

	if depth >= maxDepth || len(triangles) < 2 {
		stats.LeafCount++
		stats.TriangleRefs += len(triangles)
		return &uncompressedNode{leaf: true, triangles: triangles}
	}

	nosplitCost := cfg.IsectCost * float32(len(triangles))
	axis := bounds.MaxExtentAxis()

	for attempt := 0; attempt < 3; attempt++ {
		ok, pos, left, right, cost := trySplit(axis, triangles, bounds, ext, cfg)
		if ok && cost <= nosplitCost {
			loBounds, hiBounds := bounds.SplitAt(axis, pos)
			n := &uncompressedNode{axis: axis, split: pos}
			n.left = buildRec(left, loBounds, depth+1, maxDepth, ext, cfg, stats)
			n.right = buildRec(right, hiBounds, depth+1, maxDepth, ext, cfg, stats)
			return n
		}
		axis = (axis + 1) % 3
	}

	stats.LeafCount++
	stats.TriangleRefs += len(triangles)
	return &uncompressedNode{leaf: true, triangles: triangles}
}

// trySplit performs a BB-event sweep for a single candidate axis,
// returning the best split found (if any) along with the left/right
// triangle partitions.
func trySplit(axis int, triangles []uint32, bounds types.AABB, ext extentTables, cfg Config) (ok bool, pos float32, left, right []uint32, cost float32) {
	n := len(triangles)
	events := make([]event, 0, 2*n)
	for _, t := range triangles {
		lo, hi := ext.minmax(axis, t)
		events = append(events, event{pos: lo, tri: t, kind: eventBegin})
		events = append(events, event{pos: hi, tri: t, kind: eventEnd})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		return events[i].kind < events[j].kind
	})

	saTotal := bounds.SurfaceArea()
	axisMin, axisMax := bounds.Min[axis], bounds.Max[axis]

	nBefore, nAfter := 0, n
	bestCost := float32(math.MaxFloat32)
	bestIdx := -1
	found := false

	for i, ev := range events {
		if ev.kind == eventEnd {
			nAfter--
		}
		if ev.pos > axisMin && ev.pos < axisMax {
			loBox, hiBox := bounds.SplitAt(axis, ev.pos)
			pBelow := loBox.SurfaceArea() / saTotal
			pAbove := hiBox.SurfaceArea() / saTotal
			bonus := float32(0)
			if nBefore == 0 || nAfter == 0 {
				bonus = cfg.EmptyBonus
			}
			c := cfg.TravCost + cfg.IsectCost*(1-bonus)*(pBelow*float32(nBefore)+pAbove*float32(nAfter))
			if c < bestCost {
				bestCost = c
				bestIdx = i
				found = true
			}
		}
		if ev.kind == eventBegin {
			nBefore++
		}
	}

	if !found {
		return false, 0, nil, nil, 0
	}

	bestPos := events[bestIdx].pos
	left = make([]uint32, 0, n)
	right = make([]uint32, 0, n)
	for i, ev := range events {
		if i < bestIdx && ev.kind == eventBegin {
			left = append(left, ev.tri)
		}
		if i > bestIdx && ev.kind == eventEnd {
			right = append(right, ev.tri)
		}
	}

	return true, bestPos, left, right, bestCost
}

// MaxDepth computes ⌊log₂(N_t)⌋ + 8, the recursion ceiling for the
// tree builder, guarding N_t == 0 against a -Inf log.
func MaxDepth(numTriangles int) int {
	if numTriangles < 1 {
		return 8
	}
	return int(math.Floor(math.Log2(float64(numTriangles)))) + 8
}
