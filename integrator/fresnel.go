package integrator

import "github.com/kael-vance/kdtrace/types"

// Fresnel computes dielectric reflectance for incident direction i,
// surface normal n and relative refractive index ior, following the
// standard Fresnel-equations derivation (sin/cos of refraction angle
// via Snell's law, averaged s/p polarization terms).
func Fresnel(i, n types.Vec3, ior float32) float32 {
	cosi := clamp(i.Dot(n), -1, 1)
	etai, etat := float32(1), ior
	if cosi > 0 {
		etai, etat = etat, etai
	}

	sint := (etai / etat) * sqrtf(maxf(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := sqrtf(maxf(0, 1-sint*sint))
	cosi = absf(cosi)

	rs := (etat*cosi - etai*cost) / (etat*cosi + etai*cost)
	rp := (etai*cosi - etat*cost) / (etai*cosi + etat*cost)
	return (rs*rs + rp*rp) / 2
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
