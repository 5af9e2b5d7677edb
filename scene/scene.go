// Package scene implements a flat-array scene store: a buffered
// Builder that accumulates geometry and materials, and a frozen Scene
// produced by Commit that is read-only for the rest of the renderer's
// lifetime.
package scene

import (
	"errors"
	"fmt"

	"github.com/kael-vance/kdtrace/log"
	"github.com/kael-vance/kdtrace/texture"
	"github.com/kael-vance/kdtrace/types"
)

var (
	// ErrAlreadyCommitted is returned by any Builder mutator called
	// after Commit: once frozen, a Scene's buffers never change again.
	ErrAlreadyCommitted = errors.New("scene: builder already committed")
	// ErrBadMaterialIndex is returned when a mesh references a material
	// index that was never registered via LoadMaterial.
	ErrBadMaterialIndex = errors.New("scene: material index out of range")
)

// Builder accumulates vertices, triangles, materials, textures and
// lights before a single, one-shot Commit call freezes them into a
// Scene, following a load -> buffer -> commit lifecycle.
type Builder struct {
	logger log.Logger

	vertices  []types.Vec3
	normals   []types.Vec3
	tangents  []types.Vec3
	texcoords []types.Vec2
	triangles []Triangle
	materials []Material
	textures  []*texture.Texture
	lights    []Light

	committed bool
}

// NewBuilder returns an empty scene builder.
func NewBuilder() *Builder {
	return &Builder{logger: log.New("scene")}
}

// LoadMaterial appends a material and returns its index for use by
// AddMesh.
func (b *Builder) LoadMaterial(m Material) (uint32, error) {
	if b.committed {
		return 0, ErrAlreadyCommitted
	}
	idx := uint32(len(b.materials))
	b.materials = append(b.materials, m)
	return idx, nil
}

// AddTexture appends a texture and returns its index for use in a
// Material's texture fields.
func (b *Builder) AddTexture(t *texture.Texture) (int, error) {
	if b.committed {
		return 0, ErrAlreadyCommitted
	}
	idx := len(b.textures)
	b.textures = append(b.textures, t)
	return idx, nil
}

// AddMesh appends a batch of vertices/normals (and optional
// tangents/texcoords) plus triangle faces referencing them by local
// index, all bound to materialIdx. Degenerate or out-of-range faces
// are skipped with a warning rather than failing the whole mesh.
func (b *Builder) AddMesh(vertices, normals, tangents []types.Vec3, texcoords []types.Vec2, faces [][3]uint32, materialIdx uint32) error {
	if b.committed {
		return ErrAlreadyCommitted
	}
	if materialIdx >= uint32(len(b.materials)) {
		return ErrBadMaterialIndex
	}
	if len(normals) != len(vertices) {
		return fmt.Errorf("scene: mesh has %d vertices but %d normals", len(vertices), len(normals))
	}
	if tangents != nil && len(tangents) != len(vertices) {
		return fmt.Errorf("scene: mesh has %d vertices but %d tangents", len(vertices), len(tangents))
	}
	if texcoords != nil && len(texcoords) != len(vertices) {
		return fmt.Errorf("scene: mesh has %d vertices but %d texcoords", len(vertices), len(texcoords))
	}

	offset := uint32(len(b.vertices))
	b.vertices = append(b.vertices, vertices...)
	b.normals = append(b.normals, normals...)

	// Tangents/texcoords are optional; keep the buffers aligned with
	// vertices by padding with zero values when a mesh without them
	// follows one that had them.
	if tangents != nil || len(b.tangents) > 0 {
		padded := tangents
		if padded == nil {
			padded = make([]types.Vec3, len(vertices))
		}
		b.tangents = append(b.tangents, padded...)
	}
	if texcoords != nil || len(b.texcoords) > 0 {
		padded := texcoords
		if padded == nil {
			padded = make([]types.Vec2, len(vertices))
		}
		b.texcoords = append(b.texcoords, padded...)
	}

	for _, f := range faces {
		va, vb, vc := f[0]+offset, f[1]+offset, f[2]+offset
		if va >= uint32(len(b.vertices)) || vb >= uint32(len(b.vertices)) || vc >= uint32(len(b.vertices)) {
			b.logger.Warningf("skipping face with out-of-range vertex index")
			continue
		}
		pa, pb, pc := b.vertices[va], b.vertices[vb], b.vertices[vc]
		if Degenerate(pa, pb, pc) {
			b.logger.Warning("skipping degenerate (zero-area) face")
			continue
		}
		b.triangles = append(b.triangles, NewTriangle(va, vb, vc, materialIdx, pa, pb, pc))
	}
	return nil
}

// AddPointLights appends a batch of lights to the scene.
func (b *Builder) AddPointLights(lights []Light) error {
	if b.committed {
		return ErrAlreadyCommitted
	}
	b.lights = append(b.lights, lights...)
	return nil
}

// Scene is the frozen, read-only geometry/material/light store
// produced by Builder.Commit. No exported method mutates it; every
// geometric index remains stable for the scene's lifetime.
type Scene struct {
	Vertices  []types.Vec3
	Normals   []types.Vec3
	Tangents  []types.Vec3 // empty if the source meshes had none
	Texcoords []types.Vec2 // empty if the source meshes had none
	Triangles []Triangle
	Materials []Material
	Textures  []*texture.Texture
	Lights    []Light

	// Bounds is the scene AABB enlarged by Epsilon on every side.
	Bounds  types.AABB
	Epsilon float32

	// Per-axis (min, max) extent pairs, one pair per triangle; built
	// once at commit time and consumed only by the kd-tree builder.
	XEvents []float32
	YEvents []float32
	ZEvents []float32
}

// Commit freezes the builder's buffers into a Scene, computing the
// scene-scaled epsilon and bounding box. Calling Commit twice, or
// mutating the builder afterwards, returns ErrAlreadyCommitted.
func (b *Builder) Commit() (*Scene, error) {
	if b.committed {
		return nil, ErrAlreadyCommitted
	}
	b.committed = true

	s := &Scene{
		Vertices:  b.vertices,
		Normals:   b.normals,
		Tangents:  b.tangents,
		Texcoords: b.texcoords,
		Triangles: b.triangles,
		Materials: b.materials,
		Textures:  b.textures,
		Lights:    b.lights,
	}

	bounds := types.EmptyAABB()
	for _, v := range s.Vertices {
		bounds = bounds.UnionPoint(v)
	}
	if len(s.Vertices) == 0 {
		// An empty scene still needs a finite box to avoid degenerate
		// epsilon/traversal math downstream.
		bounds = types.AABB{Min: types.XYZ(-1, -1, -1), Max: types.XYZ(1, 1, 1)}
	}

	s.Epsilon = 1e-5 * bounds.Diagonal()
	s.Bounds = bounds.Expand(s.Epsilon)

	s.XEvents = axisExtents(0, s.Triangles, s.Vertices)
	s.YEvents = axisExtents(1, s.Triangles, s.Vertices)
	s.ZEvents = axisExtents(2, s.Triangles, s.Vertices)

	b.logger.Noticef("committed %d vertices, %d triangles, %d materials, %d lights; epsilon=%g",
		len(s.Vertices), len(s.Triangles), len(s.Materials), len(s.Lights), s.Epsilon)

	return s, nil
}
