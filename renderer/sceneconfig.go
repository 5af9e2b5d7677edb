// Package renderer ties the scene store, kd-tree, path integrator and
// camera together into a tile-scheduled worker pool. Named distinctly
// from the render package (which only carries configuration, errors
// and stats) to avoid an import cycle with integrator, which itself
// depends on render.Options.
package renderer

import (
	"github.com/kael-vance/kdtrace/camera"
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
)

// SceneConfig decouples scene assembly from the render pipeline: a
// variant implementing this interface installs its geometry,
// materials and lights into a scene.Builder and supplies a camera and
// sky, without this module needing a concrete scene-file parser.
type SceneConfig interface {
	// Camera returns the camera to render with, for a frame of the
	// given aspect ratio (frameW / frameH).
	Camera(aspect float32) *camera.Camera

	// Install populates b with this configuration's geometry,
	// materials and lights.
	Install(b *scene.Builder) error

	// Sky returns the sky color and brightness used for INFINITY path
	// points.
	Sky() (types.Vec3, float32)
}

// ProceduralConfig is the minimal SceneConfig implementation used by
// the CLI: a camera plus one of the procedural scene builders in
// scene/demo.go.
type ProceduralConfig struct {
	Build         func() (*scene.Scene, error)
	CameraPos     types.Vec3
	CameraLookAt  types.Vec3
	CameraUp      types.Vec3
	FOV           float32
	SkyColor      types.Vec3
	SkyBrightness float32

	built *scene.Scene
}

func (c *ProceduralConfig) Camera(aspect float32) *camera.Camera {
	up := c.CameraUp
	if up == (types.Vec3{}) {
		up = types.XYZ(0, 1, 0)
	}
	return camera.New(c.CameraPos, c.CameraLookAt, up, c.FOV, aspect)
}

// Install ignores b: the procedural builders in scene/demo.go own their
// own scene.Builder internally and return an already-committed Scene,
// so there is nothing left for a caller-supplied builder to populate.
func (c *ProceduralConfig) Install(_ *scene.Builder) error {
	sc, err := c.Build()
	if err != nil {
		return err
	}
	c.built = sc
	return nil
}

func (c *ProceduralConfig) Sky() (types.Vec3, float32) {
	return c.SkyColor, c.SkyBrightness
}

// Scene returns the scene built by the last call to Install, or nil if
// Install has not run yet.
func (c *ProceduralConfig) Scene() *scene.Scene { return c.built }
