package types

import "math"

// AABB is an axis-aligned bounding box. The zero value is a degenerate
// box at the origin, not an empty one; start from EmptyAABB and grow it
// via Union/UnionPoint.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns an AABB that contains nothing; unioning any point
// or box with it yields that point/box.
func EmptyAABB() AABB {
	return AABB{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// UnionPoint grows the box to contain p.
func (b AABB) UnionPoint(p Vec3) AABB {
	return AABB{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// Union returns the box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

// Expand grows the box on every side by d.
func (b AABB) Expand(d float32) AABB {
	off := Vec3{d, d, d}
	return AABB{Min: b.Min.Sub(off), Max: b.Max.Add(off)}
}

// Extent returns Max - Min.
func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxExtentAxis returns the axis (0=x, 1=y, 2=z) along which the box is
// largest.
func (b AABB) MaxExtentAxis() int {
	e := b.Extent()
	axis := 0
	if e[1] > e[axis] {
		axis = 1
	}
	if e[2] > e[axis] {
		axis = 2
	}
	return axis
}

// SurfaceArea returns the total surface area of the box.
func (b AABB) SurfaceArea() float32 {
	e := b.Extent()
	return 2 * (e[0]*e[1] + e[1]*e[2] + e[0]*e[2])
}

// Diagonal returns the length of the box's diagonal.
func (b AABB) Diagonal() float32 {
	return b.Extent().Len()
}

// SplitAt returns the two sub-boxes obtained by cutting b at pos along
// axis.
func (b AABB) SplitAt(axis int, pos float32) (lo, hi AABB) {
	lo, hi = b, b
	lo.Max[axis] = pos
	hi.Min[axis] = pos
	return
}

// HitSlab intersects a ray with the box using the standard slab test,
// returning the entry/exit parameters clipped to [tMin, tMax]. ok is
// false if the ray misses the box entirely.
func (b AABB) HitSlab(origin, invDir Vec3, tMin, tMax float32) (float32, float32, bool) {
	for axis := 0; axis < 3; axis++ {
		t1 := (b.Min[axis] - origin[axis]) * invDir[axis]
		t2 := (b.Max[axis] - origin[axis]) * invDir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}
