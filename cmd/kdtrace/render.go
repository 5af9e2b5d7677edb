package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"time"

	"github.com/kael-vance/kdtrace/kdtree"
	"github.com/kael-vance/kdtrace/render"
	"github.com/kael-vance/kdtrace/renderer"
	"github.com/kael-vance/kdtrace/scene"
	"github.com/kael-vance/kdtrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var demoScenes = map[string]*renderer.ProceduralConfig{
	"empty": {
		Build:         scene.BuildEmptyScene,
		CameraPos:     types.XYZ(0, 1, 4),
		CameraLookAt:  types.XYZ(0, 0, 0),
		FOV:           60,
		SkyColor:      types.XYZ(0.5, 0.7, 1.0),
		SkyBrightness: 1,
	},
	"floor": {
		Build:         scene.BuildFloorAndLight,
		CameraPos:     types.XYZ(0, 2, 6),
		CameraLookAt:  types.XYZ(0, 0, 0),
		FOV:           60,
		SkyBrightness: 0.1,
	},
	"mirror-box": {
		Build:         scene.BuildMirrorBox,
		CameraPos:     types.XYZ(1, 1.5, 3),
		CameraLookAt:  types.XYZ(0, 0.5, 0),
		FOV:           55,
		SkyBrightness: 0.05,
	},
	"glass-slab": {
		Build:         scene.BuildGlassSlab,
		CameraPos:     types.XYZ(0, 0, 4),
		CameraLookAt:  types.XYZ(0, 0, 0),
		FOV:           50,
		SkyBrightness: 0.05,
	},
}

// RenderFrame builds one of the procedural demo scenes, compiles its
// kd-tree and renders a single frame to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	cfg, ok := demoScenes[name]
	if !ok {
		return fmt.Errorf("unknown scene %q, see --help for the available names", name)
	}

	if ctx.NArg() > 0 {
		return errors.New("render takes no positional arguments, use --scene")
	}

	b := scene.NewBuilder()
	if err := cfg.Install(b); err != nil {
		return err
	}
	sc := cfg.Scene()

	start := time.Now()
	tree, err := kdtree.Build(sc, kdtree.DefaultConfig())
	if err != nil {
		return err
	}
	logger.Noticef("built kd-tree (%d nodes, %d triangle refs) in %s", tree.NodeCount(), tree.TriangleRefCount(), time.Since(start))

	opts := render.DefaultOptions()
	opts.FrameW = uint32(ctx.Int("width"))
	opts.FrameH = uint32(ctx.Int("height"))
	opts.Multisample = uint32(ctx.Int("spp"))
	opts.Depth = uint32(ctx.Int("depth"))
	opts.BRDF = ctx.String("brdf")
	opts.SkyColor = [3]float32{cfg.SkyColor[0], cfg.SkyColor[1], cfg.SkyColor[2]}
	opts.SkyBrightness = cfg.SkyBrightness

	aspect := float32(opts.FrameW) / float32(opts.FrameH)
	cam := cfg.Camera(aspect)

	r, err := renderer.New(sc, tree, cam, opts)
	if err != nil {
		return err
	}

	fb, stats, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	if err := writePNG(fb, ctx.String("out")); err != nil {
		return err
	}

	displayFrameStats(stats)
	return nil
}

func writePNG(fb *renderer.Framebuffer, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.W), int(fb.H)))
	for y := 0; y < int(fb.H); y++ {
		for x := 0; x < int(fb.W); x++ {
			c := fb.Pix[y*int(fb.W)+x]
			img.SetRGBA(x, y, color.RGBA{
				R: toSRGB8(c[0]),
				G: toSRGB8(c[1]),
				B: toSRGB8(c[2]),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func toSRGB8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	s := float32(math.Pow(float64(v), 1/2.2))
	if s >= 1 {
		return 255
	}
	return uint8(s * 255)
}

func displayFrameStats(stats render.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tile Y", "Tile H", "Render time"})
	for _, t := range stats.Tiles {
		table.Append([]string{
			fmt.Sprintf("%d", t.Y),
			fmt.Sprintf("%d", t.H),
			fmt.Sprintf("%s", t.RenderTime),
		})
	}
	table.SetFooter([]string{"", "rays: " + fmt.Sprintf("%d", stats.RayCount), fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
