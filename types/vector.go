// Package types provides the single-precision vector math shared by the
// scene store, kd-tree and path integrator.
package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

type Vec2 f32.Vec2
type Vec3 f32.Vec3
type Vec4 f32.Vec4

const floatCmpEpsilon = 1e-7

// XY builds a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// XYZ builds a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// XYZW builds a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec3 expands a 2 component vector with a z coordinate.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v[0], v[1], z}
}

// Vec4 expands a 3 component vector with a w coordinate.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Vec3 truncates a 4 component vector, dropping w.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec2) Add(v2 Vec2) Vec2   { return Vec2{v[0] + v2[0], v[1] + v2[1]} }
func (v Vec2) Sub(v2 Vec2) Vec2   { return Vec2{v[0] - v2[0], v[1] - v2[1]} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) Dot(v2 Vec2) float32 {
	return v[0]*v2[0] + v[1]*v2[1]
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Negate() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Mul3 performs component-wise (Hadamard) multiplication, used to tint
// radiance by a material's albedo.
func (v Vec3) Mul3(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

func (v Vec3) LenSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSq())))
}

// Normalize 3 component vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Reflect mirrors v (pointing away from the surface) about the unit
// normal n: 2*dot(v,n)*n - v.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return n.Mul(2.0 * v.Dot(n)).Sub(v)
}

// Refract bends v through a surface with unit normal n using relative
// index of refraction eta = n_from/n_to, following the same sign
// convention as GLSL/GLM's refract(I, N, eta): v plays the role of the
// incident direction I exactly as passed by the caller. Returns the
// zero vector on total internal reflection.
func (v Vec3) Refract(n Vec3, eta float32) Vec3 {
	cosi := v.Dot(n)
	k := 1.0 - eta*eta*(1.0-cosi*cosi)
	if k < 0 {
		return Vec3{}
	}
	return v.Mul(eta).Sub(n.Mul(eta*cosi + sqrt32(k)))
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// Calc maxcomponent from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}

// Clamp returns v with every channel clamped to [0, max]; NaN or
// negative channels are replaced with 0.
func (v Vec3) Clamp(max float32) Vec3 {
	out := v
	for i := 0; i < 3; i++ {
		if out[i] != out[i] || out[i] < 0 {
			out[i] = 0
		} else if out[i] > max {
			out[i] = max
		}
	}
	return out
}

// IsFinite reports whether every channel is finite (not NaN or +-Inf).
func (v Vec3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(float64(v[i])) || math.IsInf(float64(v[i]), 0) {
			return false
		}
	}
	return true
}

// Subtract a vector.
func (v Vec4) Sub(v2 Vec4) Vec4 {
	return Vec4{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2], v[3] - v2[3]}
}

// Add a vector.
func (v Vec4) Add(v2 Vec4) Vec4 {
	return Vec4{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2], v[3] + v2[3]}
}

// Multiply 4 component vector with scalar.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}
