package font

import (
	"fmt"
	"image"
	"log"
	"runtime"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Coverage at or above this counts as an inked pixel when thresholding the
// anti-aliased glyph mask, mirroring the monochrome image threshold.
const coverageThreshold = 0x80

// Parse parses TrueType or OpenType font data.
func Parse(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return f, nil
}

// Rasterizer converts glyphs from a parsed font at a fixed pixel size.
// Each conversion is independent; a Rasterizer holds no state between
// calls.
type Rasterizer struct {
	font   *opentype.Font
	size   int
	logger *log.Logger
}

// NewRasterizer returns a Rasterizer for the given parsed font and pixel
// size. Diagnostics for skipped or substituted glyphs go to logger.
func NewRasterizer(f *opentype.Font, size int, logger *log.Logger) (*Rasterizer, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}

	return &Rasterizer{
		font:   f,
		size:   size,
		logger: logger,
	}, nil
}

func (r *Rasterizer) newFace() (font.Face, error) {
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(r.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return face, nil
}

// inkExtents measures the pixel-snapped ink bounding box of a single code
// point. ok is false when the face cannot measure it.
func inkExtents(face font.Face, c rune) (w, h int, ok bool) {
	bounds, _, ok := face.GlyphBounds(c)
	if !ok {
		return 0, 0, false
	}
	return bounds.Max.X.Ceil() - bounds.Min.X.Floor(), bounds.Max.Y.Ceil() - bounds.Min.Y.Floor(), true
}

// measure walks every requested code point once and fixes the shared cell
// geometry. Code points the face cannot measure are skipped from the
// statistics; they still produce fallback glyphs later.
func (r *Rasterizer) measure(face font.Face, codes []rune) (Layout, float64) {
	var maxWidth, maxHeight, totalWidth, count int

	for _, c := range codes {
		w, h, ok := inkExtents(face, c)
		if !ok {
			r.logger.Printf("Could not measure code point %d, skipping\n", c)
			continue
		}
		if w > maxWidth {
			maxWidth = w
		}
		if h > maxHeight {
			maxHeight = h
		}
		totalWidth += w
		count++
	}

	avg := 8.0
	if count > 0 {
		avg = float64(totalWidth) / float64(count)
	}

	// One pixel of margin under the tallest ink.
	maxHeight++
	if maxWidth < minGlyphWidth {
		maxWidth = minGlyphWidth
	}

	cell := nextPow2(maxWidth)
	if cell < minCellWidth {
		cell = minCellWidth
	}
	if cell > maxCellWidth {
		cell = maxCellWidth
	}

	return Layout{Height: maxHeight, CellWidth: cell, BytesPerRow: cell / 8}, avg
}

// renderGlyph draws one code point into a fresh cell. Failures never
// propagate; they produce the deterministic zero-bitmap fallback so a
// single bad glyph cannot sink the batch.
func (r *Rasterizer) renderGlyph(face font.Face, c rune, layout Layout) Glyph {
	g := Glyph{Code: c, Bitmap: make([]byte, layout.Height*layout.BytesPerRow)}

	w, _, ok := inkExtents(face, c)
	if !ok {
		g.Width = fallbackWidth
		if c == ' ' {
			g.Width = spaceMinWidth
		}
		r.logger.Printf("Could not render code point %d, using fallback width %d\n", c, g.Width)
		return g
	}

	if w < 1 {
		w = 1
	}
	if w > layout.CellWidth {
		w = layout.CellWidth
	}

	// The space character only advances, it never renders.
	if c == ' ' {
		g.Width = w / 2
		if g.Width < spaceMinWidth {
			g.Width = spaceMinWidth
		}
		return g
	}
	g.Width = w

	canvas := image.NewAlpha(image.Rect(0, 0, layout.CellWidth, layout.Height))
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		// The ascender line sits on the top edge of the cell.
		Dot: fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(string(c))

	pack(g.Bitmap, canvas, layout)

	return g
}

// pack thresholds the rendered coverage mask into dst, MSB-first with each
// row starting a fresh byte.
func pack(dst []byte, canvas *image.Alpha, layout Layout) {
	for y := 0; y < layout.Height; y++ {
		row := canvas.Pix[y*canvas.Stride : y*canvas.Stride+layout.CellWidth]
		for x, v := range row {
			if v >= coverageThreshold {
				dst[y*layout.BytesPerRow+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
}

// Rasterize measures and renders the given code points into an immutable
// font asset. Codes are expected sorted and de-duplicated, as ParseRanges
// returns them; the glyphs come back in the same order.
func (r *Rasterizer) Rasterize(codes []rune) (*Asset, error) {
	face, err := r.newFace()
	if err != nil {
		return nil, err
	}

	layout, avg := r.measure(face, codes)

	// Rendering is independent per glyph once the layout is fixed, so it
	// fans out over a small pool. Faces reuse internal buffers and must
	// not be shared, so every worker gets its own.
	workers := runtime.NumCPU()
	if workers > len(codes) {
		workers = len(codes)
	}
	if workers < 1 {
		workers = 1
	}

	faces := make([]font.Face, workers)
	faces[0] = face
	for i := 1; i < workers; i++ {
		if faces[i], err = r.newFace(); err != nil {
			return nil, err
		}
	}

	glyphs := make([]Glyph, len(codes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for _, face := range faces {
		go func(face font.Face) {
			defer wg.Done()
			for i := range jobs {
				glyphs[i] = r.renderGlyph(face, codes[i], layout)
			}
		}(face)
	}

	for i := range codes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &Asset{
		Height:       layout.Height,
		BitmapWidth:  layout.CellWidth,
		BytesPerRow:  layout.BytesPerRow,
		DefaultWidth: int(avg + 0.5),
		CharSpacing:  1,
		AvgWidth:     avg,
		Glyphs:       glyphs,
	}, nil
}

func nextPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}
