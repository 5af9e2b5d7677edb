// Package camera generates primary rays from a frustum-corner pinhole
// (or thin-lens) model; there are no interactive orbit controls.
package camera

import (
	"math"

	"github.com/kael-vance/kdtrace/types"
)

// Camera is a pinhole (or, with ApertureRadius > 0, thin-lens) camera.
// Its four frustum corner rays are precomputed once at construction and
// bilinearly interpolated per pixel to generate each primary ray.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3
	FOV      float32

	// ApertureRadius > 0 switches the camera into thin-lens mode
	// (IsThinLens). FocusDistance is the distance, along the primary
	// ray, to the point that stays in sharp focus.
	ApertureRadius float32
	FocusDistance  float32

	forward, right, up types.Vec3
	tl, tr, bl, br      types.Vec3
}

// New builds a camera and precomputes its frustum corners for the
// given aspect ratio (frameW / frameH).
func New(position, lookAt, up types.Vec3, fovDeg, aspect float32) *Camera {
	c := &Camera{Position: position, LookAt: lookAt, Up: up, FOV: fovDeg}
	c.updateFrustum(aspect)
	return c
}

func (c *Camera) updateFrustum(aspect float32) {
	c.forward = c.LookAt.Sub(c.Position).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()

	halfH := tanf(c.FOV * 0.5 * (math.Pi / 180))
	halfW := halfH * aspect

	right := c.right.Mul(halfW)
	up := c.up.Mul(halfH)

	c.tl = c.forward.Sub(right).Add(up)
	c.tr = c.forward.Add(right).Add(up)
	c.bl = c.forward.Sub(right).Sub(up)
	c.br = c.forward.Add(right).Sub(up)
}

// IsThinLens reports whether the camera should jitter rays across a
// finite aperture.
func (c *Camera) IsThinLens() bool { return c.ApertureRadius > 0 }

// IsSimple is the pinhole counterpart of IsThinLens.
func (c *Camera) IsSimple() bool { return !c.IsThinLens() }

// Ray returns the primary ray through subpixel coordinates (x, y) in
// [0, frameW) x [0, frameH), bilinearly interpolating the frustum
// corners (the "simple" camera branch).
func (c *Camera) Ray(x, y float32, frameW, frameH uint32) types.Ray {
	u := x / float32(frameW)
	v := y / float32(frameH)
	dir := lerp3(lerp3(c.tl, c.tr, u), lerp3(c.bl, c.br, u), v)
	return types.Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// RayLens is Ray with additional thin-lens jitter: the ray origin is
// displaced on a disk of radius ApertureRadius in the camera's
// right/up plane, then re-aimed through the point FocusDistance along
// the un-jittered ray. lensU, lensV are in [0,1).
func (c *Camera) RayLens(x, y float32, frameW, frameH uint32, lensU, lensV float32) types.Ray {
	primary := c.Ray(x, y, frameW, frameH)
	focus := primary.Origin.Add(primary.Dir.Mul(c.FocusDistance))

	du, dv := concentricDisk(lensU, lensV)
	offset := c.right.Mul(du * c.ApertureRadius).Add(c.up.Mul(dv * c.ApertureRadius))
	origin := c.Position.Add(offset)

	return types.Ray{Origin: origin, Dir: focus.Sub(origin).Normalize()}
}

func lerp3(a, b types.Vec3, t float32) types.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// concentricDisk maps a uniform unit-square sample to a uniform sample
// on the unit disk (Shirley's concentric mapping), avoiding the
// distortion of naive polar mapping.
func concentricDisk(u, v float32) (x, y float32) {
	su := 2*u - 1
	sv := 2*v - 1
	if su == 0 && sv == 0 {
		return 0, 0
	}
	var r, theta float32
	if abs(su) > abs(sv) {
		r = su
		theta = (math.Pi / 4) * (sv / su)
	} else {
		r = sv
		theta = (math.Pi / 2) - (math.Pi/4)*(su/sv)
	}
	return r * cosf(theta), r * sinf(theta)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func tanf(x float32) float32 { return float32(math.Tan(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
