package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrInvalidDimensions = errors.New("pixel: invalid image dimensions")
	ErrUnsupportedFormat = errors.New("pixel: unsupported pixel format")
)

// Compression identifies the payload compression scheme recorded in the
// image descriptor. The runtime currently understands exactly one.
type Compression int

const (
	CompressionNone Compression = iota
)

// String returns the name of the matching mu_ImageDataCompression constant.
func (c Compression) String() string {
	if c != CompressionNone {
		return fmt.Sprintf("Compression(%d)", int(c))
	}
	return "MU_IMAGE_COMPRESSION_NONE"
}

// Image is one encoded image together with the metadata the runtime needs
// to decode it again.
type Image struct {
	Data        []byte
	Width       int
	Height      int
	Stride      int
	Format      Format
	Compression Compression
}

type encoder struct {
	m image.Image
	b image.Rectangle
}

// at reads the pixel at x, y relative to the image origin, normalized to
// straight alpha 8-bit channels.
func (e *encoder) at(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(e.m.At(e.b.Min.X+x, e.b.Min.Y+y)).(color.NRGBA)
}

func (e *encoder) rgb888() []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := e.at(x, y)
			data = append(data, c.R, c.G, c.B)
		}
	}
	return data
}

func (e *encoder) argb8888() []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Stored as a little-endian 0xAARRGGBB word.
			c := e.at(x, y)
			data = append(data, c.B, c.G, c.R, c.A)
		}
	}
	return data
}

func (e *encoder) rgb565() []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := e.at(x, y)
			v := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
			data = append(data, byte(v>>8), byte(v))
		}
	}
	return data
}

func (e *encoder) bgr565() []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := e.at(x, y)
			v := uint16(c.B>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.R>>3)
			data = append(data, byte(v), byte(v>>8))
		}
	}
	return data
}

func (e *encoder) l8() []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := e.at(x, y)
			data = append(data, luminance(c.R, c.G, c.B))
		}
	}
	return data
}

func (e *encoder) al88() []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := e.at(x, y)
			data = append(data, c.A, luminance(c.R, c.G, c.B))
		}
	}
	return data
}

// mono packs one bit per pixel MSB-first. Each row starts a fresh byte;
// trailing bits of a row stay zero.
func (e *encoder) mono(invert bool) []byte {
	w, h := e.b.Dx(), e.b.Dy()
	data := make([]byte, 0, ((w+7)/8)*h)
	for y := 0; y < h; y++ {
		var acc byte
		bit := 0
		for x := 0; x < w; x++ {
			c := e.at(x, y)
			on := luminance(c.R, c.G, c.B) >= monoThreshold
			if invert {
				on = !on
			}
			if on {
				acc |= 1 << (7 - bit)
			}
			if bit++; bit == 8 {
				data = append(data, acc)
				acc, bit = 0, 0
			}
		}
		if bit > 0 {
			data = append(data, acc)
		}
	}
	return data
}

// Encode converts m into the given pixel format. The source is read
// through the NRGBA color model so any image type will do; it is never
// modified.
func Encode(m image.Image, f Format) (*Image, error) {
	b := m.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	e := encoder{m: m, b: b}

	var data []byte
	switch f {
	case RGB888:
		data = e.rgb888()
	case ARGB8888:
		data = e.argb8888()
	case RGB565:
		data = e.rgb565()
	case BGR565:
		data = e.bgr565()
	case Mono01:
		data = e.mono(false)
	case Mono10:
		data = e.mono(true)
	case L8:
		data = e.l8()
	case AL88:
		data = e.al88()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}

	return &Image{
		Data:   data,
		Width:  b.Dx(),
		Height: b.Dy(),
		Stride: f.Stride(b.Dx()),
		Format: f,
	}, nil
}
