package kdtree

import "github.com/kael-vance/kdtrace/types"

type stackEntry struct {
	node uint32
	tMin float32
	tMax float32
}

// NearestHit returns the closest intersection along ray, or ok=false
// if the ray misses every triangle.
func (t *Tree) NearestHit(ray types.Ray) (hit Hit, ok bool) {
	return t.traverseNearest(ray, noExclusion)
}

// NearestExcluding is NearestHit but never returns an intersection on
// triangle excludeTri, used to avoid self-intersection of the surface
// a new ray was spawned from.
func (t *Tree) NearestExcluding(ray types.Ray, excludeTri uint32) (hit Hit, ok bool) {
	return t.traverseNearest(ray, excludeTri)
}

// AnyHit returns as soon as any intersection is found, without
// necessarily being the closest one.
func (t *Tree) AnyHit(ray types.Ray) bool {
	_, ok := t.traverseAny(ray, noExclusion, float32(1e30))
	return ok
}

// Visible queries any-hit along the segment from a towards b, treating
// a hit as an occluder only if it lies strictly before the endpoint
// (within epsilon slack). Used by direct lighting's shadow-ray test.
func (t *Tree) Visible(a, b types.Vec3) bool {
	dir := b.Sub(a)
	dist := dir.Len()
	if dist < t.epsilon {
		return true
	}
	dir = dir.Mul(1 / dist)
	ray := types.Ray{Origin: a.Add(dir.Mul(t.epsilon)), Dir: dir}
	return !t.occludedBefore(ray, dist-2*t.epsilon)
}

const noExclusion = ^uint32(0)

func (t *Tree) rootInterval(ray types.Ray) (tMin, tMax float32, ok bool) {
	invDir := types.XYZ(safeInv(ray.Dir[0]), safeInv(ray.Dir[1]), safeInv(ray.Dir[2]))
	return t.bounds.HitSlab(ray.Origin, invDir, 0, float32(1e30))
}

func safeInv(x float32) float32 {
	if x == 0 {
		return float32(1e30)
	}
	return 1 / x
}

func (t *Tree) traverseNearest(ray types.Ray, exclude uint32) (best Hit, found bool) {
	tMin, tMax, ok := t.rootInterval(ray)
	if !ok || len(t.nodes) == 0 {
		return Hit{}, false
	}

	stack := []stackEntry{{node: 0, tMin: tMin, tMax: tMax}}
	window := tMax + t.epsilon

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[e.node]
		if n.IsLeaf() {
			count := n.TriangleCount()
			first := n.FirstTriangle()
			for i := uint32(0); i < count; i++ {
				triIdx := t.triangleIndex[first+i]
				if triIdx == exclude {
					continue
				}
				tri := t.triangles[triIdx]
				hit, ok := intersectTriangle(ray, tri, triIdx, t.vertices)
				if !ok {
					continue
				}
				if hit.T < e.tMin || hit.T > window {
					continue
				}
				if !found || hit.T < best.T {
					best, found = hit, true
				}
			}
			continue
		}

		axis := n.SplitAxis()
		splitPos := n.SplitPlane()
		leftIdx := e.node + 1
		rightIdx := n.RightChild()

		near, far := t.nearFar(ray, e.tMin, axis, splitPos, leftIdx, rightIdx)

		d := ray.Dir[axis]
		if d == 0 {
			stack = append(stack, stackEntry{node: near, tMin: e.tMin, tMax: e.tMax})
			continue
		}
		tSplit := (splitPos - ray.Origin[axis]) / d

		switch {
		case tSplit >= e.tMax || tSplit < 0:
			stack = append(stack, stackEntry{node: near, tMin: e.tMin, tMax: e.tMax})
		case tSplit <= e.tMin:
			stack = append(stack, stackEntry{node: far, tMin: e.tMin, tMax: e.tMax})
		default:
			stack = append(stack, stackEntry{node: far, tMin: tSplit, tMax: e.tMax})
			stack = append(stack, stackEntry{node: near, tMin: e.tMin, tMax: tSplit})
		}
	}

	return best, found
}

// traverseAny is traverseNearest's any-hit sibling: it returns as soon
// as a confirmed hit is found instead of draining the whole stack.
// Hits at or beyond maxT are ignored.
func (t *Tree) traverseAny(ray types.Ray, exclude uint32, maxT float32) (Hit, bool) {
	tMin, tMax, ok := t.rootInterval(ray)
	if !ok || len(t.nodes) == 0 {
		return Hit{}, false
	}

	stack := []stackEntry{{node: 0, tMin: tMin, tMax: tMax}}
	window := tMax + t.epsilon

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[e.node]
		if n.IsLeaf() {
			count := n.TriangleCount()
			first := n.FirstTriangle()
			for i := uint32(0); i < count; i++ {
				triIdx := t.triangleIndex[first+i]
				if triIdx == exclude {
					continue
				}
				tri := t.triangles[triIdx]
				hit, ok := intersectTriangle(ray, tri, triIdx, t.vertices)
				if !ok {
					continue
				}
				if hit.T < e.tMin || hit.T > window || hit.T >= maxT {
					continue
				}
				return hit, true
			}
			continue
		}

		axis := n.SplitAxis()
		splitPos := n.SplitPlane()
		leftIdx := e.node + 1
		rightIdx := n.RightChild()
		near, far := t.nearFar(ray, e.tMin, axis, splitPos, leftIdx, rightIdx)

		d := ray.Dir[axis]
		if d == 0 {
			stack = append(stack, stackEntry{node: near, tMin: e.tMin, tMax: e.tMax})
			continue
		}
		tSplit := (splitPos - ray.Origin[axis]) / d

		switch {
		case tSplit >= e.tMax || tSplit < 0:
			stack = append(stack, stackEntry{node: near, tMin: e.tMin, tMax: e.tMax})
		case tSplit <= e.tMin:
			stack = append(stack, stackEntry{node: far, tMin: e.tMin, tMax: e.tMax})
		default:
			stack = append(stack, stackEntry{node: far, tMin: tSplit, tMax: e.tMax})
			stack = append(stack, stackEntry{node: near, tMin: e.tMin, tMax: tSplit})
		}
	}

	return Hit{}, false
}

// occludedBefore reports whether any surface blocks ray strictly
// before parameter maxT.
func (t *Tree) occludedBefore(ray types.Ray, maxT float32) bool {
	_, ok := t.traverseAny(ray, noExclusion, maxT)
	return ok
}

// nearFar determines which child is "near" (the one containing the
// ray's entry point on the split axis).
func (t *Tree) nearFar(ray types.Ray, tMin float32, axis int, splitPos float32, leftIdx, rightIdx uint32) (near, far uint32) {
	entry := ray.Origin[axis] + tMin*ray.Dir[axis]
	if entry < splitPos {
		return leftIdx, rightIdx
	}
	return rightIdx, leftIdx
}
