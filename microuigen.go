/*
Package microuigen generates C source files for the MicroUI widget
library from ordinary images and TrueType fonts.

Images are decoded with whatever codecs the caller has registered,
optionally resized, encoded into one of the MicroUI pixel formats and
written out as a mu_ImageDescriptor. Fonts are rasterized into packed
one-bit-per-pixel glyph cells and written out as a struct Font. In both
cases the output file is only created once the asset has been fully
generated, so a failed conversion never leaves a truncated file behind.
*/
package microuigen

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/faxe1008/microui-gen/cgen"
	"github.com/faxe1008/microui-gen/font"
	"github.com/faxe1008/microui-gen/pixel"
	"golang.org/x/image/draw"
)

type Generator struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Generator {
	return &Generator{
		logger: logger,
	}
}

// ImageOptions control how ConvertImage encodes its input.
type ImageOptions struct {
	// Format selects the pixel encoding of the emitted data.
	Format pixel.Format

	// Width and Height resize the image before encoding. A zero or
	// negative value keeps the corresponding source dimension.
	Width, Height int

	// Name overrides the C identifier, which otherwise derives from the
	// output filename.
	Name string
}

// FontOptions control how ConvertFont rasterizes its input.
type FontOptions struct {
	// Range selects the code points to rasterize, in the form accepted
	// by font.ParseRanges. Empty means printable ASCII.
	Range string

	// Name overrides the C identifier, which otherwise derives from the
	// output filename.
	Name string
}

// ConvertImage reads the image file at input, optionally resizes it,
// encodes it in the requested pixel format and writes a C source file to
// output.
func (g *Generator) ConvertImage(input, output string, opts ImageOptions) error {
	r, err := os.Open(input)
	if err != nil {
		return err
	}
	defer r.Close()

	m, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}

	b := m.Bounds()
	g.logger.Printf("Loaded image %s (%dx%d)\n", filepath.Base(input), b.Dx(), b.Dy())

	m = g.resize(m, opts.Width, opts.Height)

	img, err := pixel.Encode(m, opts.Format)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name = baseName(output)
	}

	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := cgen.WriteImage(w, img, name); err != nil {
		return err
	}

	g.logger.Printf("Wrote %d bytes of %s data to %s\n", len(img.Data), img.Format, output)

	return nil
}

// ConvertFont rasterizes the TrueType or OpenType font file at input at
// the given pixel size and writes a C source file to output.
func (g *Generator) ConvertFont(input string, size int, output string, opts FontOptions) error {
	codes, err := font.ParseRanges(opts.Range)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	f, err := font.Parse(b)
	if err != nil {
		return err
	}

	r, err := font.NewRasterizer(f, size, g.logger)
	if err != nil {
		return err
	}

	g.logger.Printf("Loaded font %s @ %dpx\n", filepath.Base(input), size)

	a, err := r.Rasterize(codes)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name = baseName(output)
	}

	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := cgen.WriteFont(w, a, name, filepath.Base(input), size); err != nil {
		return err
	}

	g.logger.Printf("Wrote %d glyphs to %s\n", len(a.Glyphs), output)

	return nil
}

// resize scales m to width x height with Catmull-Rom resampling. A zero
// or negative dimension keeps the source dimension; a no-op resize
// returns m untouched.
func (g *Generator) resize(m image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return m
	}

	b := m.Bounds()
	if width <= 0 {
		width = b.Dx()
	}
	if height <= 0 {
		height = b.Dy()
	}
	if width == b.Dx() && height == b.Dy() {
		return m
	}

	g.logger.Printf("Resizing to %dx%d\n", width, height)

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)

	return dst
}

func baseName(path string) string {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
