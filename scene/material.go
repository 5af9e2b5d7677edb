package scene

import "github.com/kael-vance/kdtrace/types"

// noTexture marks an absent texture reference in a Material's texture
// index fields.
const noTexture = -1

// Material holds a fixed-field surface description: no
// material-expression DSL, texture references are indices into the
// owning Scene's texture table rather than pointers.
type Material struct {
	Name string

	Diffuse  types.Vec3
	Specular types.Vec3
	Ambient  types.Vec3

	// Phong-style exponent used by brdf.Phong/brdf.CookTorrance.
	Exponent float32

	// Index of refraction, used for ENTERED/LEFT transmission and the
	// Fresnel term.
	RefractionIndex float32

	// Fraction of light that passes through the surface rather than
	// scattering off it, in [0,1]. > 0.001 marks a translucent
	// material.
	Translucency float32

	// Mirror-reflection flag and strength, in [0,1], for
	// non-translucent reflective materials.
	Reflective         bool
	ReflectionStrength float32

	// Texture table indices, or noTexture if absent.
	DiffuseTex  int
	SpecularTex int
	AmbientTex  int
	BumpTex     int

	// Name of a BRDF function (brdf.Lookup) stored with the material.
	// The path tracer does not read it: every material is shaded with
	// the single BRDF named by render.Options.BRDF.
	BRDF string
}

// NewMaterial returns a Material with no textures and a diffuse-white
// default, ready for field overrides.
func NewMaterial(name string) Material {
	return Material{
		Name:            name,
		Diffuse:         types.XYZ(1, 1, 1),
		RefractionIndex: 1.0,
		DiffuseTex:      noTexture,
		SpecularTex:     noTexture,
		AmbientTex:      noTexture,
		BumpTex:         noTexture,
		BRDF:            "cooktorr",
	}
}

// HasBump reports whether the material has a bump texture assigned.
func (m Material) HasBump() bool { return m.BumpTex != noTexture }

// IsTranslucent reports whether the material should be classified via
// the translucent branch of point-type classification.
func (m Material) IsTranslucent() bool { return m.Translucency > 0.001 }
