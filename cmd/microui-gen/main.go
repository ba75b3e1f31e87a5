package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/faxe1008/microui-gen"
	"github.com/faxe1008/microui-gen/pixel"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func formatList() string {
	formats := pixel.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "microui-gen"
	app.Usage = "MicroUI asset generation utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "image",
			Usage: "Convert an image to C image data",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Usage:    "input image file (PNG, JPEG, GIF)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "output C file",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "format",
					Aliases:  []string{"f"},
					Usage:    "pixel format (" + formatList() + ")",
					Required: true,
				},
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"w"},
					Usage:   "target width (optional, resizes image)",
				},
				&cli.IntFlag{
					Name:    "height",
					Aliases: []string{"H"},
					Usage:   "target height (optional, resizes image)",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "C identifier (default: derived from output filename)",
				},
			},
			Action: func(c *cli.Context) error {
				format, err := pixel.ParseFormat(c.String("format"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				g := microuigen.New(newLogger(c))

				if err := g.ConvertImage(c.String("input"), c.String("output"), microuigen.ImageOptions{
					Format: format,
					Width:  c.Int("width"),
					Height: c.Int("height"),
					Name:   c.String("name"),
				}); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "font",
			Usage:     "Generate C font data from a TrueType font",
			ArgsUsage: "FONT SIZE OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "C identifier (default: derived from output filename)",
				},
				&cli.StringFlag{
					Name:    "range",
					Aliases: []string{"r"},
					Usage:   `character ranges to generate, e.g. "32-127,224,227-229"`,
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				size, err := strconv.Atoi(c.Args().Get(1))
				if err != nil {
					return cli.Exit(fmt.Errorf("invalid font size %q", c.Args().Get(1)), 1)
				}

				g := microuigen.New(newLogger(c))

				if err := g.ConvertFont(c.Args().Get(0), size, c.Args().Get(2), microuigen.FontOptions{
					Range: c.String("range"),
					Name:  c.String("name"),
				}); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
