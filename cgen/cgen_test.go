package cgen

import (
	"bytes"
	"testing"

	"github.com/faxe1008/microui-gen/font"
	"github.com/faxe1008/microui-gen/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	tables := []struct {
		name, fallback, want string
	}{
		{"", "image", "image"},
		{"logo", "image", "logo"},
		{"my-icon!", "image", "my_icon_"},
		{"my logo.png", "image", "my_logo_png"},
		{"9lives", "image", "_9lives"},
		{"_", "font", "font"},
		{"--", "font", "__"},
		{"snake_case_123", "font", "snake_case_123"},
		{"héllo", "image", "héllo"},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Identifier(table.name, table.fallback))
	}
}

func TestCharName(t *testing.T) {
	tables := []struct {
		c    rune
		want string
	}{
		{' ', "Space"},
		{'A', "'A'"},
		{'~', "'~'"},
		{'!', "'!'"},
		{'"', `'"'`},
		{'\'', `"'"`},
		{'\\', `'\\'`},
		{31, `\x1F`},
		{127, `\x7F`},
		{200, `\xC8`},
		{10000, `\x2710`},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, charName(table.c))
	}
}

func TestWriteImage(t *testing.T) {
	img := &pixel.Image{
		Data: []byte{
			0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
			0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd,
		},
		Width:       7,
		Height:      2,
		Stride:      7,
		Format:      pixel.L8,
		Compression: pixel.CompressionNone,
	}

	b := new(bytes.Buffer)
	require.NoError(t, WriteImage(b, img, "logo"))

	want := `/*
 * Auto-generated image data
 * Image: logo
 * Size: 7x2
 * Format: L_8 (8-bit Grayscale/Luminance)
 * Data size: 14 bytes
 *
 * Generated by microui-gen
 */

#include <microui/image.h>
#include <zephyr/drivers/display.h>

static const uint8_t logo_data[] = {
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb,
	0xcc, 0xdd,
};

const struct mu_ImageDescriptor logo = {
	.width = 7,
	.height = 2,
	.stride = 7,
	.data_size = sizeof(logo_data),
	.data = logo_data,
	.pixel_format = PIXEL_FORMAT_L_8,
	.compression = MU_IMAGE_COMPRESSION_NONE,
};
`

	assert.Equal(t, want, b.String())
}

func TestWriteImageSanitized(t *testing.T) {
	img := &pixel.Image{
		Data:   []byte{0xff},
		Width:  1,
		Height: 1,
		Stride: 1,
		Format: pixel.L8,
	}

	b := new(bytes.Buffer)
	require.NoError(t, WriteImage(b, img, "8-ball"))

	assert.Contains(t, b.String(), "static const uint8_t _8_ball_data[] = {")
	assert.Contains(t, b.String(), "const struct mu_ImageDescriptor _8_ball = {")
}

func TestWriteImageSwapped(t *testing.T) {
	img := &pixel.Image{
		Data:   []byte{0x00, 0x1f},
		Width:  1,
		Height: 1,
		Stride: 2,
		Format: pixel.BGR565,
	}

	b := new(bytes.Buffer)
	require.NoError(t, WriteImage(b, img, "dot"))

	// The byte swapped variant shares the display enum with RGB_565.
	assert.Contains(t, b.String(), " * Format: BGR_565 (16-bit BGR (5-6-5) byte swapped)\n")
	assert.Contains(t, b.String(), ".pixel_format = PIXEL_FORMAT_RGB_565X,\n")
}

func TestWriteFont(t *testing.T) {
	a := &font.Asset{
		Height:       2,
		BitmapWidth:  8,
		BytesPerRow:  1,
		DefaultWidth: 3,
		CharSpacing:  1,
		AvgWidth:     2.5,
		Glyphs: []font.Glyph{
			{Code: ' ', Width: 4, Bitmap: []byte{0x00, 0x00}},
			{Code: 'A', Width: 5, Bitmap: []byte{0xaa, 0x55}},
			{Code: 200, Width: 6, Bitmap: []byte{0x01, 0x02}},
		},
	}

	b := new(bytes.Buffer)
	require.NoError(t, WriteFont(b, a, "tiny", "GoRegular.ttf", 8))

	want := `/*
 * Variable Width Bitmap Font Data
 * Generated from: GoRegular.ttf
 * Font size: 8 pixels
 * Bitmap size: 8x2 pixels
 * Average character width: 2.5 pixels
 * Character range: 32-200 (3 requested, 3 total)
 * Format: Variable width, 1 bit per pixel
 */

#include <stdint.h>
#include <microui/font.h>

const uint8_t tiny_bitmaps[] = {
    0x00, 0x00,
    0xAA, 0x55,
    0x01, 0x02,
};

const struct FontGlyph tiny_glyphs[] = {
    {32u,  4,  2, &tiny_bitmaps[0]}, // Space (width: 4)
    {65u,  5,  2, &tiny_bitmaps[2]}, // 'A' (width: 5)
    {200u,  6,  2, &tiny_bitmaps[4]} // \xC8 (width: 6)
};

const struct Font tiny = {
    .height = 2,
    .bitmap_width = 8,
    .bytes_per_row = 1,
    .default_width = 3,
    .char_spacing = 1,
    .glyph_count = 3,
    .glyphs = tiny_glyphs
};
`

	assert.Equal(t, want, b.String())
}

func TestWriteFontEmpty(t *testing.T) {
	a := &font.Asset{
		Height:       1,
		BitmapWidth:  8,
		BytesPerRow:  1,
		DefaultWidth: 8,
		CharSpacing:  1,
		AvgWidth:     8,
	}

	b := new(bytes.Buffer)
	require.NoError(t, WriteFont(b, a, "", "empty.ttf", 12))

	assert.Contains(t, b.String(), " * Character range: 32-127 (0 requested, 0 total)\n")
	assert.Contains(t, b.String(), "const uint8_t font_bitmaps[] = {\n};\n")
	assert.Contains(t, b.String(), "const struct FontGlyph font_glyphs[] = {\n};\n")
	assert.Contains(t, b.String(), ".glyph_count = 0,\n")
}
