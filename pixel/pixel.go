/*
Package pixel implements the MicroUI image encoder.

An encoded image is a headerless byte array holding the pixel data row by
row, top to bottom, left to right, in one of eight fixed formats matching
Zephyr's display driver API. The multi-byte formats store each pixel as
consecutive bytes: RGB_888 as r,g,b; ARGB_8888 as b,g,r,a (a little-endian
0xAARRGGBB word); RGB_565 packs 5-6-5 red-green-blue into a big-endian
16-bit value while BGR_565 packs blue-green-red and stores it little-endian;
L_8 is one luminance byte and AL_88 an alpha byte followed by a luminance
byte. The two monochrome formats threshold luminance at 128 and pack one
bit per pixel MSB-first, with every row padded up to a whole byte using
zero bits.

The stride is the byte length of one encoded row including this padding,
so the data is always exactly stride times height bytes long.
*/
package pixel

// Luminance threshold shared by the monochrome formats.
const monoThreshold = 128

// luminance reduces a color to its ITU-R BT.601 weighted brightness,
// truncated to an integer.
func luminance(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}
