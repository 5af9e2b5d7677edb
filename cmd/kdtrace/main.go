package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "kdtrace"
	app.Usage = "render scenes with a kd-tree accelerated path tracer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:        "render",
			Usage:       "render one of the built-in demo scenes to a PNG file",
			Description: "Build a procedural demo scene, compile its kd-tree and trace a single frame.",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "floor",
					Usage: "demo scene name: empty, floor, mirror-box, glass-slab",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 4,
					Usage: "fixed bounce depth (ignored when russian roulette is enabled)",
				},
				cli.StringFlag{
					Name:  "brdf",
					Value: "cooktorr",
					Usage: "BRDF function: lambert, phong, cooktorr",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderFrame,
		},
	}

	app.Run(os.Args)
}
