package scene

import "github.com/kael-vance/kdtrace/types"

// axisExtents fills a 2*len(triangles) table of (min, max) pairs along
// axis for every triangle. The kd-tree builder turns each pair into a
// BEGIN/END event pair when sweeping candidate splits.
func axisExtents(axis int, triangles []Triangle, vertices []types.Vec3) []float32 {
	out := make([]float32, 2*len(triangles))
	for i, t := range triangles {
		a := vertices[t.VA][axis]
		b := vertices[t.VB][axis]
		c := vertices[t.VC][axis]
		lo, hi := a, a
		if b < lo {
			lo = b
		}
		if b > hi {
			hi = b
		}
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
		out[2*i+0] = lo
		out[2*i+1] = hi
	}
	return out
}
