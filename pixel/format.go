package pixel

import "fmt"

// Format identifies one of the pixel formats understood by the MicroUI
// renderer. The set is fixed; the zero value is RGB888.
type Format int

const (
	RGB888 Format = iota
	ARGB8888
	RGB565
	BGR565
	Mono01
	Mono10
	L8
	AL88
)

var formatInfo = [...]struct {
	tag           string
	description   string
	bitsPerPixel  int
	displayFormat string
}{
	RGB888:   {"RGB_888", "24-bit RGB", 24, "PIXEL_FORMAT_RGB_888"},
	ARGB8888: {"ARGB_8888", "32-bit ARGB", 32, "PIXEL_FORMAT_ARGB_8888"},
	RGB565:   {"RGB_565", "16-bit RGB (5-6-5)", 16, "PIXEL_FORMAT_RGB_565"},
	BGR565:   {"BGR_565", "16-bit BGR (5-6-5) byte swapped", 16, "PIXEL_FORMAT_RGB_565X"},
	Mono01:   {"MONO01", "Monochrome (0=Black 1=White)", 1, "PIXEL_FORMAT_MONO01"},
	Mono10:   {"MONO10", "Monochrome (1=Black 0=White)", 1, "PIXEL_FORMAT_MONO10"},
	L8:       {"L_8", "8-bit Grayscale/Luminance", 8, "PIXEL_FORMAT_L_8"},
	AL88:     {"AL_88", "8-bit Grayscale/Luminance with alpha", 16, "PIXEL_FORMAT_AL_88"},
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	f := make([]Format, len(formatInfo))
	for i := range f {
		f[i] = Format(i)
	}
	return f
}

// ParseFormat maps a format tag such as "RGB_565" to its Format.
func ParseFormat(s string) (Format, error) {
	for i := range formatInfo {
		if formatInfo[i].tag == s {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formatInfo)
}

// String returns the format tag, e.g. "RGB_565".
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatInfo[f].tag
}

// Description returns a short human readable summary of the format.
func (f Format) Description() string {
	if !f.valid() {
		return ""
	}
	return formatInfo[f].description
}

// BitsPerPixel returns the encoded size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	if !f.valid() {
		return 0
	}
	return formatInfo[f].bitsPerPixel
}

// DisplayFormat returns the name of the matching Zephyr
// display_pixel_format constant.
func (f Format) DisplayFormat() string {
	if !f.valid() {
		return ""
	}
	return formatInfo[f].displayFormat
}

// Stride returns the byte length of one encoded row of the given width.
// Rows of the 1-bit formats are padded up to a whole byte.
func (f Format) Stride(width int) int {
	switch bpp := f.BitsPerPixel(); {
	case bpp == 1:
		return (width + 7) / 8
	case bpp >= 8:
		return width * (bpp / 8)
	default:
		return 0
	}
}
