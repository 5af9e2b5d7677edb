package integrator

import (
	"math/rand"

	"github.com/kael-vance/kdtrace/camera"
	"github.com/kael-vance/kdtrace/types"
)

// RenderPixel estimates the radiance at pixel (x, y) of a (frameW,
// frameH) image using jittered N-rooks multisampling over
// opts.Multisample samples. rayCount accumulates the number of
// primary+secondary rays cast across all samples.
func (pt *PathTracer) RenderPixel(cam *camera.Camera, x, y int, frameW, frameH uint32, rng *rand.Rand) (radiance types.Vec3, rayCount int) {
	m := int(pt.opts.Multisample)
	if m < 1 {
		m = 1
	}

	perm := rng.Perm(m)

	var total types.Vec3
	for i := 0; i < m; i++ {
		subX := float32(x) + (float32(i)+rng.Float32())/float32(m)
		subY := float32(y) + (float32(perm[i])+rng.Float32())/float32(m)

		var ray types.Ray
		if cam.IsSimple() {
			ray = cam.Ray(subX, subY, frameW, frameH)
		} else {
			ray = cam.RayLens(subX, subY, frameW, frameH, rng.Float32(), rng.Float32())
		}

		sample, n := pt.TracePath(ray, rng)
		total = total.Add(sample)
		rayCount += n
	}

	return total.Mul(1 / float32(m)), rayCount
}
