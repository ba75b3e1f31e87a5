/*
Package cgen writes generated assets out as C source files ready to be
compiled into a MicroUI application.

An image becomes a static byte array plus a mu_ImageDescriptor describing
its dimensions, stride and pixel format. A font becomes one byte array
holding every glyph bitmap back to back, a FontGlyph table pointing into
it by offset and a struct Font tying the pieces together. The emitted
data is byte-identical to what the encoders produce; this package only
formats.
*/
package cgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/faxe1008/microui-gen/font"
	"github.com/faxe1008/microui-gen/pixel"
)

const bytesPerLine = 12

// Identifier turns name into a legal C identifier: anything that is not a
// letter, digit or underscore becomes an underscore and a leading digit
// gets one prefixed. When nothing usable survives, fallback is returned
// instead.
func Identifier(name, fallback string) string {
	if name == "" {
		return fallback
	}

	var b strings.Builder
	b.Grow(len(name) + 1)
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	s := b.String()
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(r) {
		s = "_" + s
	}
	if s == "_" {
		return fallback
	}

	return s
}

// WriteImage writes img to w as a C source file declaring the raw pixel
// data and its mu_ImageDescriptor. The identifier is run through
// Identifier with "image" as the fallback.
func WriteImage(w io.Writer, img *pixel.Image, name string) error {
	name = Identifier(name, "image")

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/*\n")
	fmt.Fprintf(bw, " * Auto-generated image data\n")
	fmt.Fprintf(bw, " * Image: %s\n", name)
	fmt.Fprintf(bw, " * Size: %dx%d\n", img.Width, img.Height)
	fmt.Fprintf(bw, " * Format: %s (%s)\n", img.Format, img.Format.Description())
	fmt.Fprintf(bw, " * Data size: %d bytes\n", len(img.Data))
	fmt.Fprintf(bw, " *\n")
	fmt.Fprintf(bw, " * Generated by microui-gen\n")
	fmt.Fprintf(bw, " */\n\n")

	fmt.Fprintf(bw, "#include <microui/image.h>\n")
	fmt.Fprintf(bw, "#include <zephyr/drivers/display.h>\n\n")

	fmt.Fprintf(bw, "static const uint8_t %s_data[] = {\n", name)
	for i := 0; i < len(img.Data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(img.Data) {
			end = len(img.Data)
		}
		bw.WriteByte('\t')
		for j, b := range img.Data[i:end] {
			if j > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "0x%02x", b)
		}
		bw.WriteString(",\n")
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "const struct mu_ImageDescriptor %s = {\n", name)
	fmt.Fprintf(bw, "\t.width = %d,\n", img.Width)
	fmt.Fprintf(bw, "\t.height = %d,\n", img.Height)
	fmt.Fprintf(bw, "\t.stride = %d,\n", img.Stride)
	fmt.Fprintf(bw, "\t.data_size = sizeof(%s_data),\n", name)
	fmt.Fprintf(bw, "\t.data = %s_data,\n", name)
	fmt.Fprintf(bw, "\t.pixel_format = %s,\n", img.Format.DisplayFormat())
	fmt.Fprintf(bw, "\t.compression = %s,\n", img.Compression)
	fmt.Fprintf(bw, "};\n")

	return bw.Flush()
}

// WriteFont writes a to w as a C source file declaring the packed glyph
// bitmaps, the glyph table and the struct Font tying them together.
// source and sizePx only annotate the header comment. The identifier is
// run through Identifier with "font" as the fallback.
func WriteFont(w io.Writer, a *font.Asset, name, source string, sizePx int) error {
	name = Identifier(name, "font")

	firstChar, lastChar := 32, 127
	if len(a.Glyphs) > 0 {
		firstChar = int(a.Glyphs[0].Code)
		lastChar = int(a.Glyphs[len(a.Glyphs)-1].Code)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/*\n")
	fmt.Fprintf(bw, " * Variable Width Bitmap Font Data\n")
	fmt.Fprintf(bw, " * Generated from: %s\n", source)
	fmt.Fprintf(bw, " * Font size: %d pixels\n", sizePx)
	fmt.Fprintf(bw, " * Bitmap size: %dx%d pixels\n", a.BitmapWidth, a.Height)
	fmt.Fprintf(bw, " * Average character width: %.1f pixels\n", a.AvgWidth)
	fmt.Fprintf(bw, " * Character range: %d-%d (%d requested, %d total)\n", firstChar, lastChar, len(a.Glyphs), len(a.Glyphs))
	fmt.Fprintf(bw, " * Format: Variable width, 1 bit per pixel\n")
	fmt.Fprintf(bw, " */\n\n")

	fmt.Fprintf(bw, "#include <stdint.h>\n")
	fmt.Fprintf(bw, "#include <microui/font.h>\n\n")

	// One line per glyph, however long its bitmap is.
	fmt.Fprintf(bw, "const uint8_t %s_bitmaps[] = {\n", name)
	offsets := make([]int, len(a.Glyphs))
	offset := 0
	for i, g := range a.Glyphs {
		offsets[i] = offset
		bw.WriteString("    ")
		for j, b := range g.Bitmap {
			if j > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "0x%02X", b)
		}
		bw.WriteString(",\n")
		offset += len(g.Bitmap)
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "const struct FontGlyph %s_glyphs[] = {\n", name)
	for i, g := range a.Glyphs {
		fmt.Fprintf(bw, "    {%du, %2d, %2d, &%s_bitmaps[%d]}", g.Code, g.Width, a.Height, name, offsets[i])
		if i < len(a.Glyphs)-1 {
			bw.WriteByte(',')
		}
		fmt.Fprintf(bw, " // %s (width: %d)\n", charName(g.Code), g.Width)
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "const struct Font %s = {\n", name)
	fmt.Fprintf(bw, "    .height = %d,\n", a.Height)
	fmt.Fprintf(bw, "    .bitmap_width = %d,\n", a.BitmapWidth)
	fmt.Fprintf(bw, "    .bytes_per_row = %d,\n", a.BytesPerRow)
	fmt.Fprintf(bw, "    .default_width = %d,\n", a.DefaultWidth)
	fmt.Fprintf(bw, "    .char_spacing = %d,\n", a.CharSpacing)
	fmt.Fprintf(bw, "    .glyph_count = %d,\n", len(a.Glyphs))
	fmt.Fprintf(bw, "    .glyphs = %s_glyphs\n", name)
	fmt.Fprintf(bw, "};\n")

	return bw.Flush()
}

// charName names a code point for the glyph table comments.
func charName(c rune) string {
	switch {
	case c == ' ':
		return "Space"
	case c == '"':
		return `'"'`
	case c == '\'':
		return `"'"`
	case c == '\\':
		return `'\\'`
	case c >= '!' && c <= '~':
		return fmt.Sprintf("'%c'", c)
	default:
		return fmt.Sprintf("\\x%02X", c)
	}
}
