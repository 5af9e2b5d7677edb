package scene

import "github.com/kael-vance/kdtrace/types"

// Triangle is a flat-array scene primitive: three vertex indices, a
// material index, and a precomputed intersection plane. Triangles are
// the only supported primitive; there is no plane/sphere/box variant.
type Triangle struct {
	VA, VB, VC uint32
	Mat        uint32

	// Precomputed plane (n, d) satisfying dot(n, p) == d for p on the
	// triangle's plane; n is NOT normalized length-preserving for area
	// purposes, it is the raw cross product normal, normalized.
	PlaneN types.Vec3
	PlaneD float32
}

// NewTriangle builds a triangle from vertex/material indices, deriving
// its intersection plane from the supplied vertex positions.
func NewTriangle(va, vb, vc, mat uint32, pa, pb, pc types.Vec3) Triangle {
	t := Triangle{VA: va, VB: vb, VC: vc, Mat: mat}
	t.calculatePlane(pa, pb, pc)
	return t
}

func (t *Triangle) calculatePlane(a, b, c types.Vec3) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	n := e1.Cross(e2).Normalize()
	t.PlaneN = n
	t.PlaneD = n.Dot(a)
}

// Degenerate reports whether the three vertices are colinear (or
// coincident), in which case the triangle carries no well-defined
// plane and should be skipped at ingestion time.
func Degenerate(a, b, c types.Vec3) bool {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	return e1.Cross(e2).LenSq() < 1e-14
}

// Bounds returns the triangle's world-space AABB given the owning
// scene's vertex positions.
func (t Triangle) Bounds(vertices []types.Vec3) types.AABB {
	b := types.EmptyAABB()
	b = b.UnionPoint(vertices[t.VA])
	b = b.UnionPoint(vertices[t.VB])
	b = b.UnionPoint(vertices[t.VC])
	return b
}

// InterpolateVec3 barycentrically blends three per-vertex attributes
// (normals, tangents, texcoords, ...) using barycentric weights
// (u, v) for vb/vc.
func InterpolateVec3(a, b, c types.Vec3, u, v float32) types.Vec3 {
	w := 1 - u - v
	return a.Mul(w).Add(b.Mul(u)).Add(c.Mul(v))
}

// InterpolateVec2 is InterpolateVec3 for 2-component attributes
// (texture coordinates).
func InterpolateVec2(a, b, c types.Vec2, u, v float32) types.Vec2 {
	w := 1 - u - v
	return a.Mul(w).Add(b.Mul(u)).Add(c.Mul(v))
}
