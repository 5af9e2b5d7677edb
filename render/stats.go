package render

import "time"

// TileStat records timing for a single rendered tile.
type TileStat struct {
	// Row the tile starts at and its height.
	Y uint32
	H uint32

	RenderTime time.Duration
}

// FrameStats aggregates per-tile timings and the total ray counter for
// a single rendered frame, for profiling.
type FrameStats struct {
	Tiles      []TileStat
	RenderTime time.Duration
	RayCount   uint64
}
