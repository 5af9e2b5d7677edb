package scene

import "github.com/kael-vance/kdtrace/types"

// Light is a point-like area light: a position jittered within a ball
// of Size radius when sampled, colored by Color*Intensity.
type Light struct {
	Position  types.Vec3
	Color     types.Vec3
	Intensity float32
	Size      float32
}

// SampleSphere returns a uniformly distributed point inside a ball of
// radius r, using rejection sampling against the unit cube.
func SampleSphere(r float32, next func() float32) types.Vec3 {
	for {
		p := types.XYZ(2*next()-1, 2*next()-1, 2*next()-1)
		if p.LenSq() <= 1 {
			return p.Mul(r)
		}
	}
}

// JitteredPosition samples a point on the light's emitting volume.
func (l Light) JitteredPosition(next func() float32) types.Vec3 {
	if l.Size <= 0 {
		return l.Position
	}
	return l.Position.Add(SampleSphere(l.Size, next))
}
