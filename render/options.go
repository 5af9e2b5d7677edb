package render

import "runtime"

// DepthPolicy selects how a path is terminated during forward
// construction.
type DepthPolicy int

const (
	// FixedDepth stops a path once Depth counted bounces have been
	// recorded.
	FixedDepth DepthPolicy = iota
	// RussianRoulette terminates probabilistically after the first
	// bounce, weighted by Russian.
	RussianRoulette
)

// Options configures a render: multisampling, path termination,
// radiance clamping, bump strength, BRDF selection and tile
// scheduling.
type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Samples per pixel, dispatched via jittered N-rooks multisampling.
	Multisample uint32

	// Fixed bounce count, used when Russian <= 0.
	Depth uint32

	// Russian roulette continuation probability in (0,1); any value
	// <= 0 disables roulette and falls back to Depth.
	Russian float32

	// Per-channel radiance ceiling applied after Phase B accumulation.
	Clamp float32

	// Multiplier applied to bump-map-derived normal perturbation.
	BumpmapScale float32

	// Name of the BRDF function to evaluate (brdf.Lookup).
	BRDF string

	// Fresnel-weighting switch for reflective surfaces. The path tracer
	// does not read it: reflective materials always choose reflection
	// with probability ReflectionStrength, with no Fresnel weighting.
	ForceFresnel bool

	// Sky color and brightness returned for INFINITY path points.
	SkyColor      [3]float32
	SkyBrightness float32

	// Tile scheduling.
	TileHeight uint32
	Workers    int

	// Base RNG seed; each tile is rendered with its own stream seeded
	// from this plus the tile index, so renders are deterministic.
	Seed uint64
}

// DefaultOptions returns sane defaults: bumpmap_scale=10, clamp=1e5,
// russian=-1 (disabled), brdf="cooktorr".
func DefaultOptions() Options {
	return Options{
		FrameW:       512,
		FrameH:       512,
		Multisample:  16,
		Depth:        4,
		Russian:      -1,
		Clamp:        1e5,
		BumpmapScale: 10.0,
		BRDF:         "cooktorr",
		TileHeight:   16,
		Workers:      runtime.GOMAXPROCS(0),
		Seed:         1,
	}
}

// Policy reports which path-termination policy is active.
func (o Options) Policy() DepthPolicy {
	if o.Russian > 0 {
		return RussianRoulette
	}
	return FixedDepth
}

// Validate checks that Options describes a renderable configuration,
// returning a configuration error on failure.
func (o Options) Validate() error {
	if o.FrameW == 0 || o.FrameH == 0 {
		return ErrInvalidOptions
	}
	if o.Multisample == 0 {
		return ErrInvalidOptions
	}
	if o.Policy() == FixedDepth && o.Depth == 0 {
		return ErrInvalidOptions
	}
	if o.Russian >= 1 {
		return ErrInvalidOptions
	}
	if o.Clamp <= 0 {
		return ErrInvalidOptions
	}
	if o.TileHeight == 0 {
		return ErrInvalidOptions
	}
	return nil
}
