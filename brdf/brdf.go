// Package brdf supplies the pure BRDF functions the path integrator
// calls as an external collaborator: a callable
// (lightN, diffuse, specular, Vi, Vr, exponent, etaFrom, etaTo) ->
// Radiance, selected by name.
package brdf

import (
	"fmt"
	"math"

	"github.com/kael-vance/kdtrace/types"
)

// Fn evaluates a BRDF at a shading point: lightN is the shading
// normal, diffuse/specular are the (possibly texture-sampled) surface
// colors, Vi is the direction towards the light or next path point, Vr
// is the direction towards the previous path point, exponent is the
// Phong/roughness control, and etaFrom/etaTo are the surrounding and
// material refractive indices.
type Fn func(lightN, diffuse, specular, Vi, Vr types.Vec3, exponent, etaFrom, etaTo float32) types.Vec3

const invPi = float32(1 / math.Pi)

// Lambert is a pure diffuse BRDF: diffuse / π.
func Lambert(lightN, diffuse, specular, Vi, Vr types.Vec3, exponent, etaFrom, etaTo float32) types.Vec3 {
	return diffuse.Mul(invPi)
}

// Phong adds a specular lobe to the Lambert diffuse term, weighted by
// exponent: diffuse/π + specular·(exponent+2)/(2π)·cosᵉ(α), where α is
// the angle between Vi and the mirror reflection of Vr about lightN.
func Phong(lightN, diffuse, specular, Vi, Vr types.Vec3, exponent, etaFrom, etaTo float32) types.Vec3 {
	diff := diffuse.Mul(invPi)

	r := Vr.Reflect(lightN)
	cosAlpha := r.Dot(Vi)
	if cosAlpha <= 0 {
		return diff
	}
	lobe := float32(math.Pow(float64(cosAlpha), float64(exponent)))
	specCoeff := (exponent + 2) * invPi / 2
	return diff.Add(specular.Mul(specCoeff * lobe))
}

// CookTorrance is a microfacet specular term layered over the Lambert
// diffuse base, using exponent as an inverse-roughness control
// (roughness = 1/sqrt(exponent+2)) and a Schlick Fresnel approximation
// parameterized by etaFrom/etaTo. This is the default BRDF.
func CookTorrance(lightN, diffuse, specular, Vi, Vr types.Vec3, exponent, etaFrom, etaTo float32) types.Vec3 {
	diff := diffuse.Mul(invPi)

	nDotV := lightN.Dot(Vr)
	nDotL := lightN.Dot(Vi)
	if nDotV <= 0 || nDotL <= 0 {
		return diff
	}

	h := Vr.Add(Vi).Normalize()
	nDotH := clampPos(lightN.Dot(h))

	roughness := float32(1)
	if exponent > 0 {
		roughness = 1 / sqrtf(exponent+2)
	}
	m2 := roughness * roughness

	d := ggxDistribution(nDotH, m2)
	g := geometrySmith(nDotV, nDotL, m2)
	f := schlickFresnel(clampPos(h.Dot(Vr)), etaFrom, etaTo)

	spec := specular.Mul(d * g * f / (4 * nDotV * nDotL))
	return diff.Add(spec)
}

func ggxDistribution(nDotH, m2 float32) float32 {
	denom := nDotH*nDotH*(m2-1) + 1
	if denom <= 0 {
		return 0
	}
	return m2 / (float32(math.Pi) * denom * denom)
}

func geometrySmith(nDotV, nDotL, m2 float32) float32 {
	gv := 2 * nDotV / (nDotV + sqrtf(m2+(1-m2)*nDotV*nDotV))
	gl := 2 * nDotL / (nDotL + sqrtf(m2+(1-m2)*nDotL*nDotL))
	return gv * gl
}

// schlickFresnel approximates reflectance at normal incidence from the
// etaFrom/etaTo index ratio, then raises it to grazing angles via
// Schlick's power-5 approximation.
func schlickFresnel(cosTheta, etaFrom, etaTo float32) float32 {
	r0 := (etaFrom - etaTo) / (etaFrom + etaTo)
	r0 *= r0
	return r0 + (1-r0)*powf(1-cosTheta, 5)
}

func clampPos(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}

func sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }
func powf(x float32, e float64) float32 { return float32(math.Pow(float64(x), e)) }

// Lookup resolves a BRDF by name.
func Lookup(name string) (Fn, error) {
	switch name {
	case "lambert", "diffuse":
		return Lambert, nil
	case "phong":
		return Phong, nil
	case "cooktorr", "cooktorrance":
		return CookTorrance, nil
	default:
		return nil, fmt.Errorf("brdf: unknown brdf %q", name)
	}
}
