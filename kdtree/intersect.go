package kdtree

import (
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

// Hit is a ray/triangle intersection record: the hit parameter, the
// barycentric weights for vb/vc (va's weight is 1-u-v), and the index
// of the triangle that was hit (into the owning scene.Scene.Triangles
// slice).
type Hit struct {
	T   float32
	U   float32
	V   float32
	Tri uint32
}

// intersectTriangle tests ray against triangle tri (at index triIdx in
// the owning scene) using the precomputed plane (n, d) plus a 2D
// barycentric projection. Returns ok=false if the ray is parallel to
// the plane, the hit parameter is non-positive, or the barycentric
// weights fall outside the triangle.
func intersectTriangle(ray types.Ray, tri scene.Triangle, triIdx uint32, verts []types.Vec3) (hit Hit, ok bool) {
	denom := tri.PlaneN.Dot(ray.Dir)
	if denom > -1e-12 && denom < 1e-12 {
		return Hit{}, false
	}
	t := (tri.PlaneD - tri.PlaneN.Dot(ray.Origin)) / denom
	if t <= 0 {
		return Hit{}, false
	}

	p := ray.At(t)
	a, b, c := verts[tri.VA], verts[tri.VB], verts[tri.VC]

	// Drop the axis the plane normal is most aligned with, then solve
	// the 2D barycentric system in the remaining two axes.
	ax, ay := dropAxis(tri.PlaneN)
	u, v, inTri := barycentric2D(a, b, c, p, ax, ay)
	if !inTri {
		return Hit{}, false
	}
	return Hit{T: t, U: u, V: v, Tri: triIdx}, true
}

func dropAxis(n types.Vec3) (ax, ay int) {
	absX, absY, absZ := abs32(n[0]), abs32(n[1]), abs32(n[2])
	switch {
	case absX >= absY && absX >= absZ:
		return 1, 2
	case absY >= absX && absY >= absZ:
		return 0, 2
	default:
		return 0, 1
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// barycentric2D solves p = a + u*(b-a) + v*(c-a) projected onto axes
// (ax, ay), returning whether p lies within the triangle (u,v >= 0,
// u+v <= 1, with a small outward tolerance for edge-adjacent hits).
func barycentric2D(a, b, c, p types.Vec3, ax, ay int) (u, v float32, ok bool) {
	const eps = 1e-6

	x1, y1 := b[ax]-a[ax], b[ay]-a[ay]
	x2, y2 := c[ax]-a[ax], c[ay]-a[ay]
	px, py := p[ax]-a[ax], p[ay]-a[ay]

	det := x1*y2 - x2*y1
	if det > -1e-20 && det < 1e-20 {
		return 0, 0, false
	}
	invDet := 1 / det
	u = (px*y2 - x2*py) * invDet
	v = (x1*py - px*y1) * invDet

	if u < -eps || v < -eps || u+v > 1+eps {
		return u, v, false
	}
	return u, v, true
}
