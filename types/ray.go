package types

// Ray is a half-line Origin + t*Dir, t >= 0. Dir is expected to be unit
// length; callers normalize before constructing a Ray.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Offset returns a copy of the ray with its origin pushed along n by
// dist. Used to push a new ray's origin off the surface it was spawned
// from, avoiding immediate self-intersection.
func (r Ray) Offset(n Vec3, dist float32) Ray {
	return Ray{Origin: r.Origin.Add(n.Mul(dist)), Dir: r.Dir}
}
