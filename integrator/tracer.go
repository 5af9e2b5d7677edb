// Package integrator implements the Monte-Carlo path-tracing core:
// Phase A forward path construction through reflection, refraction and
// scattering events, and Phase B backward radiance accumulation.
package integrator

import (
	"math"
	"math/rand"

	"github.com/kael-vance/kdtrace/brdf"
	"github.com/kael-vance/kdtrace/kdtree"
	"github.com/kael-vance/kdtrace/log"
	"github.com/kael-vance/kdtrace/render"
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

const (
	hardIterationCap  = 20
	selfOffsetFactor  = 10.0
	minRefractLenSq   = 0.001 * 0.001
)

// PathTracer walks a committed scene's compressed kd-tree to estimate
// the radiance arriving along a ray.
type PathTracer struct {
	scene  *scene.Scene
	tree   *kdtree.Tree
	brdf   brdf.Fn
	opts   render.Options
	logger log.Logger

	skyRadiance types.Vec3
}

// New builds a path tracer bound to a committed scene, its compressed
// kd-tree, a BRDF function (brdf.Lookup) and render options.
func New(sc *scene.Scene, tree *kdtree.Tree, brdfFn brdf.Fn, opts render.Options) *PathTracer {
	sky := types.XYZ(opts.SkyColor[0], opts.SkyColor[1], opts.SkyColor[2]).Mul(opts.SkyBrightness)
	return &PathTracer{
		scene:       sc,
		tree:        tree,
		brdf:        brdfFn,
		opts:        opts,
		logger:      log.New("integrator"),
		skyRadiance: sky,
	}
}

// TracePath produces a radiance estimate for a single ray, returning
// the number of path rays cast while doing so (one per path point;
// direct-lighting shadow rays are not counted), for profiling.
func (pt *PathTracer) TracePath(r types.Ray, rng *rand.Rand) (types.Vec3, int) {
	path := pt.buildPath(r, rng)
	pt.accumulate(path, rng)

	if len(path) == 0 {
		return types.Vec3{}, 0
	}
	pt.logger.Debugf("traced path of %d points, radiance %v", len(path), path[0].ToPrev)
	return path[0].ToPrev, len(path)
}

// buildPath is Phase A: iteratively advance the ray through the scene,
// classifying and sampling a next direction at every hit.
func (pt *PathTracer) buildPath(r types.Ray, rng *rand.Rand) []PathPoint {
	var path []PathPoint

	currentRay := r
	n, n2 := 0, 0
	skipRussian := false
	hasLastTri := false
	var lastTri uint32

	for {
		n++
		n2++
		if n2 >= hardIterationCap {
			break
		}

		if pt.opts.Policy() == render.RussianRoulette {
			if n > 1 && !skipRussian && rng.Float32() > pt.opts.Russian {
				break
			}
			skipRussian = false
		} else if uint32(n) > pt.opts.Depth {
			break
		}

		var hit kdtree.Hit
		var ok bool
		if hasLastTri {
			hit, ok = pt.tree.NearestExcluding(currentRay, lastTri)
		} else {
			hit, ok = pt.tree.NearestHit(currentRay)
		}

		if !ok {
			path = append(path, PathPoint{Type: Infinity, Vr: currentRay.Dir.Negate()})
			break
		}

		p := pt.classifyHit(currentRay, hit, rng, &n, &skipRussian)
		path = append(path, p)

		offsetSign := float32(1)
		if p.Type == Entered {
			offsetSign = -1
		}
		newOrigin := p.Pos.Add(p.FaceN.Mul(offsetSign * pt.scene.Epsilon * selfOffsetFactor))
		currentRay = types.Ray{Origin: newOrigin, Dir: p.Vi}

		lastTri = hit.Tri
		hasLastTri = true
	}

	return path
}

// classifyHit builds the PathPoint for a single intersection: geometry
// and shading normal setup, point-type classification, and sampling of
// the next direction.
func (pt *PathTracer) classifyHit(ray types.Ray, hit kdtree.Hit, rng *rand.Rand, n *int, skipRussian *bool) PathPoint {
	tri := pt.tree.Triangle(hit.Tri)
	mat := pt.scene.Materials[tri.Mat]

	p := PathPoint{HasHit: true, TriIdx: hit.Tri}
	p.Pos = ray.At(hit.T)
	p.FaceN = scene.InterpolateVec3(
		pt.scene.Normals[tri.VA], pt.scene.Normals[tri.VB], pt.scene.Normals[tri.VC],
		hit.U, hit.V,
	).Normalize()
	p.Vr = ray.Dir.Negate()

	fromInside := p.FaceN.Dot(p.Vr) < 0

	if len(pt.scene.Texcoords) > 0 {
		p.TexUV = scene.InterpolateVec2(
			pt.scene.Texcoords[tri.VA], pt.scene.Texcoords[tri.VB], pt.scene.Texcoords[tri.VC],
			hit.U, hit.V,
		)
	}

	if mat.HasBump() {
		bumpTex := pt.scene.Textures[mat.BumpTex]
		right := bumpTex.SlopeRight(p.TexUV)
		bottom := bumpTex.SlopeBottom(p.TexUV)
		tangent := scene.InterpolateVec3(
			pt.scene.Tangents[tri.VA], pt.scene.Tangents[tri.VB], pt.scene.Tangents[tri.VC],
			hit.U, hit.V,
		)
		bitangent := p.FaceN.Cross(tangent).Normalize()
		perturb := tangent.Mul(right).Add(bitangent.Mul(bottom)).Mul(pt.opts.BumpmapScale)
		p.LightN = p.FaceN.Add(perturb).Normalize()
	} else {
		p.LightN = p.FaceN
	}

	p.Type = pt.classifyType(mat, fromInside, p, rng, n, skipRussian)
	p.Vi = pt.sampleDirection(mat, &p, rng).Normalize()

	return p
}

// classifyType assigns the point type a hit should be treated as, given
// the material it landed on and whether the ray arrived from inside
// the surface.
func (pt *PathTracer) classifyType(mat scene.Material, fromInside bool, p PathPoint, rng *rand.Rand, n *int, skipRussian *bool) PointType {
	switch {
	case mat.IsTranslucent():
		if fromInside {
			*n--
			*skipRussian = true
			return Left
		}
		if rng.Float32() < mat.Translucency {
			f := Fresnel(p.Vr, p.LightN, 1.0/mat.RefractionIndex)
			*n--
			*skipRussian = true
			if rng.Float32() < f {
				return Reflected
			}
			return Entered
		}
		return Scattered
	case mat.Reflective:
		if rng.Float32() < mat.ReflectionStrength {
			*n--
			*skipRussian = true
			return Reflected
		}
		return Scattered
	default:
		return Scattered
	}
}

// sampleDirection picks the outgoing direction for a classified point.
// The Left branch deliberately keeps a quirk: the refracted direction
// is computed (and can still downgrade the point to Reflected on total
// internal reflection) but is then unconditionally discarded in favor
// of -Vr. See DESIGN.md for why this stayed rather than being "fixed".
func (pt *PathTracer) sampleDirection(mat scene.Material, p *PathPoint, rng *rand.Rand) types.Vec3 {
	switch p.Type {
	case Scattered:
		dir := cosineHemisphereDir(rng, p.FaceN)
		for dir.Dot(p.LightN) < 0 {
			dir = cosineHemisphereDir(rng, p.FaceN)
		}
		return dir

	case Reflected:
		return p.Vr.Reflect(p.LightN)

	case Entered:
		eta := float32(1) / mat.RefractionIndex
		dir := p.Vr.Refract(p.LightN, eta)
		if dir.LenSq() < minRefractLenSq || !dir.IsFinite() {
			p.Type = Reflected
			dir = p.Vr.Reflect(p.LightN)
		}
		return dir

	case Left:
		eta := mat.RefractionIndex
		dir := p.Vr.Refract(p.LightN, eta)
		if dir.LenSq() < minRefractLenSq {
			p.Type = Reflected
			dir = p.Vr.Reflect(p.LightN)
		}
		// The refracted (or internally-reflected) direction computed
		// above is intentionally discarded here; see DESIGN.md.
		return p.Vr.Negate()

	default:
		return p.Vr.Negate()
	}
}

// accumulate is Phase B: walk the path back to front, assigning each
// point a to_prev radiance.
func (pt *PathTracer) accumulate(path []PathPoint, rng *rand.Rand) {
	for i := len(path) - 1; i >= 0; i-- {
		pp := &path[i]

		if pp.Type == Infinity {
			pp.ToPrev = pt.skyRadiance
			continue
		}

		tri := pt.tree.Triangle(pp.TriIdx)
		mat := pt.scene.Materials[tri.Mat]

		diffuse, specular := pt.surfaceColors(mat, pp.TexUV)

		var total types.Vec3
		switch pp.Type {
		case Scattered:
			total = pt.directLighting(pp, rng, mat, diffuse, specular)
			if i+1 < len(path) {
				total = total.Add(pt.indirectLighting(pp, &path[i+1], mat, diffuse, specular))
			}
		case Reflected, Left:
			if i+1 < len(path) {
				total = path[i+1].ToPrev
			}
		case Entered:
			if i+1 < len(path) {
				total = path[i+1].ToPrev.Mul3(diffuse)
			}
		}

		pp.ToPrev = total.Clamp(pt.opts.Clamp)
	}
}

func (pt *PathTracer) surfaceColors(mat scene.Material, uv types.Vec2) (diffuse, specular types.Vec3) {
	diffuse, specular = mat.Diffuse, mat.Specular
	if mat.DiffuseTex >= 0 {
		diffuse = pt.scene.Textures[mat.DiffuseTex].Sample(uv).Vec3()
	}
	if mat.SpecularTex >= 0 {
		specular = pt.scene.Textures[mat.SpecularTex].Sample(uv).Vec3()
	}
	return diffuse, specular
}

// directLighting samples one random light with a shadow-ray visibility
// test and returns its contribution.
func (pt *PathTracer) directLighting(pp *PathPoint, rng *rand.Rand, mat scene.Material, diffuse, specular types.Vec3) types.Vec3 {
	if len(pt.scene.Lights) == 0 {
		return types.Vec3{}
	}

	light := pt.scene.Lights[rng.Intn(len(pt.scene.Lights))]
	lightPos := light.JitteredPosition(rng.Float32)

	if !pt.tree.Visible(lightPos, pp.Pos) {
		return types.Vec3{}
	}

	toLight := lightPos.Sub(pp.Pos)
	distSq := toLight.LenSq()
	vi := toLight.Normalize()

	f := pt.brdf(pp.LightN, diffuse, specular, vi, pp.Vr, mat.Exponent, 1.0, mat.RefractionIndex)
	cosTheta := maxf(0, pp.LightN.Dot(vi))
	g := cosTheta / distSq

	return light.Color.Mul(light.Intensity).Mul3(f).Mul(g)
}

// indirectLighting folds the next path point's accumulated radiance
// back through this point's BRDF.
func (pt *PathTracer) indirectLighting(pp, next *PathPoint, mat scene.Material, diffuse, specular types.Vec3) types.Vec3 {
	incoming := next.ToPrev
	if pt.opts.Policy() == render.RussianRoulette {
		incoming = incoming.Mul(1 / pt.opts.Russian)
	}
	f := pt.brdf(pp.LightN, diffuse, specular, pp.Vi, pp.Vr, mat.Exponent, 1.0, mat.RefractionIndex)
	return incoming.Mul3(f).Mul(float32(math.Pi))
}
