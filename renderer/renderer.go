package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/kael-vance/kdtrace/brdf"
	"github.com/kael-vance/kdtrace/camera"
	"github.com/kael-vance/kdtrace/integrator"
	"github.com/kael-vance/kdtrace/kdtree"
	"github.com/kael-vance/kdtrace/log"
	"github.com/kael-vance/kdtrace/render"
	"github.com/kael-vance/kdtrace/scene"
)

// Renderer drives a single frame to completion: split the frame into
// row tiles, trace each tile on a worker pool, and report aggregate
// statistics.
type Renderer struct {
	opts   render.Options
	logger log.Logger

	scene *scene.Scene
	tree  *kdtree.Tree
	cam   *camera.Camera
}

// New validates opts and wires up a Renderer over a committed scene,
// its kd-tree, and a camera. Returns a configuration error on invalid
// options or a missing scene/camera/tree.
func New(sc *scene.Scene, tree *kdtree.Tree, cam *camera.Camera, opts render.Options) (*Renderer, error) {
	if sc == nil {
		return nil, render.ErrNoScene
	}
	if cam == nil {
		return nil, render.ErrNoCamera
	}
	if tree == nil {
		return nil, render.ErrTreeNotBuilt
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		opts:   opts,
		logger: log.New("renderer"),
		scene:  sc,
		tree:   tree,
		cam:    cam,
	}, nil
}

// Render traces the whole frame into a freshly allocated Framebuffer,
// distributing row tiles of opts.TileHeight across opts.Workers
// goroutines. It returns render.ErrInterrupted, leaving fb partially
// filled, if ctx is cancelled before every tile completes.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, render.FrameStats, error) {
	start := time.Now()

	brdfFn, err := brdf.Lookup(r.opts.BRDF)
	if err != nil {
		return nil, render.FrameStats{}, err
	}
	tracer := integrator.New(r.scene, r.tree, brdfFn, r.opts)

	fb := NewFramebuffer(r.opts.FrameW, r.opts.FrameH)
	jobs := tileJobs(r.opts.FrameW, r.opts.FrameH, r.opts.TileHeight)

	workers := r.opts.Workers
	if workers < 1 {
		workers = 1
	}

	jobChan := make(chan tileJob)
	statChan := make(chan tileResult, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go r.worker(ctx, &wg, jobChan, statChan, tracer, fb)
	}

	go func() {
		defer close(jobChan)
		for _, j := range jobs {
			select {
			case jobChan <- j:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(statChan)

	stats := render.FrameStats{}
	for res := range statChan {
		stats.Tiles = append(stats.Tiles, res.stat)
		stats.RayCount += res.rays
	}
	stats.RenderTime = time.Since(start)

	if ctx.Err() != nil && len(stats.Tiles) < len(jobs) {
		r.logger.Noticef("render interrupted after %d/%d tiles", len(stats.Tiles), len(jobs))
		return fb, stats, render.ErrInterrupted
	}

	r.logger.Noticef("rendered %dx%d frame in %s, %d rays", r.opts.FrameW, r.opts.FrameH, stats.RenderTime, stats.RayCount)
	return fb, stats, nil
}

type tileResult struct {
	stat render.TileStat
	rays uint64
}

func (r *Renderer) worker(ctx context.Context, wg *sync.WaitGroup, jobChan <-chan tileJob, statChan chan<- tileResult, tracer *integrator.PathTracer, fb *Framebuffer) {
	defer wg.Done()
	for job := range jobChan {
		select {
		case <-ctx.Done():
			return
		default:
		}
		stat, rays := renderTile(job, r.opts.Seed, tracer, r.cam, fb)
		statChan <- tileResult{stat: stat, rays: rays}
	}
}

// tileJobs partitions a frameH-row frame into row strips of tileH rows
// each (the last strip may be shorter).
func tileJobs(frameW, frameH, tileH uint32) []tileJob {
	var jobs []tileJob
	idx := 0
	for y := uint32(0); y < frameH; y += tileH {
		h := tileH
		if y+h > frameH {
			h = frameH - y
		}
		jobs = append(jobs, tileJob{index: idx, y: y, h: h})
		idx++
	}
	return jobs
}
