package scene

import "github.com/kael-vance/kdtrace/types"

// Quad appends two triangles forming a rectangle (a, b, c, d in
// counter-clockwise winding) sharing a single per-face normal, bound to
// materialIdx. It is the one procedural primitive the demo scenes
// below are assembled from; there is no mesh-file importer.
func (b *Builder) Quad(p0, p1, p2, p3 types.Vec3, materialIdx uint32) error {
	n := p1.Sub(p0).Cross(p3.Sub(p0)).Normalize()
	normals := []types.Vec3{n, n, n, n}
	verts := []types.Vec3{p0, p1, p2, p3}
	faces := [][3]uint32{{0, 1, 2}, {0, 2, 3}}
	return b.AddMesh(verts, normals, nil, nil, faces, materialIdx)
}

// BuildEmptyScene builds an end-to-end "empty scene" test fixture: no
// geometry, just a camera and sky.
func BuildEmptyScene() (*Scene, error) {
	b := NewBuilder()
	return b.Commit()
}

// BuildFloorAndLight builds a "single floor plane" test fixture: a
// diffuse white floor quad at y=0 and one point light above it.
func BuildFloorAndLight() (*Scene, error) {
	b := NewBuilder()

	mat := NewMaterial("floor")
	mat.Diffuse = types.XYZ(1, 1, 1)
	matIdx, err := b.LoadMaterial(mat)
	if err != nil {
		return nil, err
	}

	if err := b.Quad(
		types.XYZ(-5, 0, -5), types.XYZ(-5, 0, 5),
		types.XYZ(5, 0, 5), types.XYZ(5, 0, -5),
		matIdx,
	); err != nil {
		return nil, err
	}

	if err := b.AddPointLights([]Light{
		{Position: types.XYZ(0, 1, 0), Color: types.XYZ(1, 1, 1), Intensity: 10},
	}); err != nil {
		return nil, err
	}

	return b.Commit()
}

// BuildMirrorBox builds a "mirror box interior" test fixture: an open box
// with one fully-reflective wall facing a light, used to exercise
// REFLECTED transport at depth >= 2.
func BuildMirrorBox() (*Scene, error) {
	b := NewBuilder()

	floor := NewMaterial("floor")
	floorIdx, err := b.LoadMaterial(floor)
	if err != nil {
		return nil, err
	}

	mirror := NewMaterial("mirror")
	mirror.Reflective = true
	mirror.ReflectionStrength = 1
	mirrorIdx, err := b.LoadMaterial(mirror)
	if err != nil {
		return nil, err
	}

	if err := b.Quad(
		types.XYZ(-2, 0, -2), types.XYZ(-2, 0, 2),
		types.XYZ(2, 0, 2), types.XYZ(2, 0, -2),
		floorIdx,
	); err != nil {
		return nil, err
	}
	if err := b.Quad(
		types.XYZ(-2, 0, -2), types.XYZ(-2, 4, -2),
		types.XYZ(-2, 4, 2), types.XYZ(-2, 0, 2),
		mirrorIdx,
	); err != nil {
		return nil, err
	}

	if err := b.AddPointLights([]Light{
		{Position: types.XYZ(2, 2, 0), Color: types.XYZ(1, 1, 1), Intensity: 8},
	}); err != nil {
		return nil, err
	}

	return b.Commit()
}

// BuildGlassSlab builds a "glass slab" test fixture: a translucent slab
// (refraction_index=1.5) facing the camera head-on, used to exercise
// Fresnel and ENTERED transmission.
func BuildGlassSlab() (*Scene, error) {
	b := NewBuilder()

	glass := NewMaterial("glass")
	glass.Translucency = 1
	glass.RefractionIndex = 1.5
	glassIdx, err := b.LoadMaterial(glass)
	if err != nil {
		return nil, err
	}

	if err := b.Quad(
		types.XYZ(-1, -1, 0), types.XYZ(1, -1, 0),
		types.XYZ(1, 1, 0), types.XYZ(-1, 1, 0),
		glassIdx,
	); err != nil {
		return nil, err
	}

	if err := b.AddPointLights([]Light{
		{Position: types.XYZ(0, 0, -5), Color: types.XYZ(1, 1, 1), Intensity: 12},
	}); err != nil {
		return nil, err
	}

	return b.Commit()
}
