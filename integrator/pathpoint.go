package integrator

import "github.com/kael-vance/kdtrace/types"

// PointType classifies a single bounce in a traced path.
type PointType int

const (
	Scattered PointType = iota
	Reflected
	Entered
	Left
	Infinity
)

func (t PointType) String() string {
	switch t {
	case Scattered:
		return "scattered"
	case Reflected:
		return "reflected"
	case Entered:
		return "entered"
	case Left:
		return "left"
	case Infinity:
		return "infinity"
	default:
		return "unknown"
	}
}

// PathPoint is one bounce of a traced path: the hit, its classification,
// and the radiance propagated back from the rest of the path once Phase
// B has run. HasHit is false only for an Infinity point.
type PathPoint struct {
	Type   PointType
	HasHit bool

	Pos    types.Vec3
	FaceN  types.Vec3
	LightN types.Vec3
	Vr     types.Vec3 // towards the previous path point
	Vi     types.Vec3 // towards the next path point
	TexUV  types.Vec2

	TriIdx uint32

	ToPrev types.Vec3
}
