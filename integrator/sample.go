package integrator

import (
	"math"
	"math/rand"

	"github.com/kael-vance/kdtrace/types"
)

// cosineHemisphereDir samples a cosine-weighted direction on the
// hemisphere around n, using a concentric-disk mapping (Shirley) to
// avoid the polar-mapping distortion of the naive approach.
func cosineHemisphereDir(rng *rand.Rand, n types.Vec3) types.Vec3 {
	dx, dy := concentricDisk(rng.Float32(), rng.Float32())
	dz := sqrtf(maxf(0, 1-dx*dx-dy*dy))

	t, b := orthonormalBasis(n)
	return t.Mul(dx).Add(b.Mul(dy)).Add(n.Mul(dz))
}

func concentricDisk(u, v float32) (x, y float32) {
	su := 2*u - 1
	sv := 2*v - 1
	if su == 0 && sv == 0 {
		return 0, 0
	}
	var r, theta float32
	if absf(su) > absf(sv) {
		r = su
		theta = (math.Pi / 4) * (sv / su)
	} else {
		r = sv
		theta = (math.Pi / 2) - (math.Pi/4)*(su/sv)
	}
	return r * cosf(theta), r * sinf(theta)
}

// orthonormalBasis builds an arbitrary tangent/bitangent pair
// orthogonal to n, following Duff et al.'s branchless construction.
func orthonormalBasis(n types.Vec3) (t, b types.Vec3) {
	sign := float32(1)
	if n[2] < 0 {
		sign = -1
	}
	a := -1 / (sign + n[2])
	c := n[0] * n[1] * a
	t = types.XYZ(1+sign*n[0]*n[0]*a, sign*c, -sign*n[0])
	b = types.XYZ(c, sign+n[1]*n[1]*a, -n[1])
	return t, b
}

func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }
func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
