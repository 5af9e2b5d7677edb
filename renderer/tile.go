package renderer

import (
	"math/rand"
	"time"

	"github.com/kael-vance/kdtrace/camera"
	"github.com/kael-vance/kdtrace/integrator"
	"github.com/kael-vance/kdtrace/render"
	"github.com/kael-vance/kdtrace/types"
)

// Framebuffer holds one float32 RGB triple per pixel, row-major, owned
// by the caller for the lifetime of a render.
type Framebuffer struct {
	W, H uint32
	Pix  []types.Vec3
}

// NewFramebuffer allocates a zeroed w*h framebuffer.
func NewFramebuffer(w, h uint32) *Framebuffer {
	return &Framebuffer{W: w, H: h, Pix: make([]types.Vec3, int(w)*int(h))}
}

func (f *Framebuffer) set(x, y int, c types.Vec3) {
	f.Pix[y*int(f.W)+x] = c
}

// tileJob is one horizontal strip of the frame, the unit of work
// handed to the worker pool.
type tileJob struct {
	index int
	y, h  uint32
}

// renderTile traces every pixel in job against tracer/cam into fb,
// using a deterministic per-tile RNG stream, and returns timing plus
// the rays cast.
func renderTile(job tileJob, seed uint64, tracer *integrator.PathTracer, cam *camera.Camera, fb *Framebuffer) (render.TileStat, uint64) {
	start := time.Now()
	rng := rand.New(rand.NewSource(int64(seed) + int64(job.index)))

	var rays uint64
	for y := job.y; y < job.y+job.h; y++ {
		for x := uint32(0); x < fb.W; x++ {
			color, n := tracer.RenderPixel(cam, int(x), int(y), fb.W, fb.H, rng)
			fb.set(int(x), int(y), color)
			rays += uint64(n)
		}
	}

	return render.TileStat{Y: job.y, H: job.h, RenderTime: time.Since(start)}, rays
}
