/*
Package font implements the MicroUI bitmap font generator.

A generated font is a strip of fixed-height, variable-width glyphs. Every
glyph is packed into the same bitmap cell: a power-of-two width between 8
and 32 bits, one bit per pixel MSB-first, each row padded to a whole byte
with zero bits, exactly like the monochrome image formats. The width stored
alongside each glyph is the advance the renderer uses; it is always at
most the cell width, so narrow glyphs simply leave the right-hand part of
their cell empty.

The cell geometry is derived from the requested code points themselves:
the cell is the smallest power of two that fits the widest measured glyph
and the height is the tallest measured ink plus one pixel of margin.
*/
package font

import "errors"

var (
	ErrInvalidSize      = errors.New("font: pixel size out of range")
	ErrInvalidCodePoint = errors.New("font: invalid code point")
	ErrFontLoad         = errors.New("font: cannot load font")
)

const (
	// MinSize and MaxSize bound the pixel size fonts are generated at.
	MinSize = 4
	MaxSize = 128
)

const (
	minCellWidth  = 8
	maxCellWidth  = 32
	minGlyphWidth = 4
	spaceMinWidth = 4
	fallbackWidth = 6
)

// Glyph is one rendered character cell.
type Glyph struct {
	Code   rune
	Width  int
	Bitmap []byte
}

// Layout is the shared cell geometry of a font asset. It is fixed by the
// measurement pass before any glyph is rendered and never changes
// afterwards.
type Layout struct {
	Height      int
	CellWidth   int
	BytesPerRow int
}

// Asset is one converted font.
type Asset struct {
	Height       int
	BitmapWidth  int
	BytesPerRow  int
	DefaultWidth int
	CharSpacing  int
	AvgWidth     float64
	Glyphs       []Glyph
}
