// Package colors parses, formats and interpolates the CSS color strings used
// by series options.
//
// Every function in this package is pure and safe for concurrent use. None of
// them panic on malformed input: parsing reports failure through its second
// return value and the higher level helpers fall back to a fixed color or to
// their input, so a bad option string can never abort a frame.
package colors

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Fixed colors returned by the fallback paths of this package.
const (
	// Fallback is returned by SanitizeHex for input that is not a valid hex color.
	Fallback = "#2196F3"

	// Dark is the text color ContrastColor picks for light backgrounds.
	Dark = "#000000"

	// Light is the text color ContrastColor picks for dark backgrounds.
	Light = "#FFFFFF"
)

// RGBA is a parsed CSS color: 8-bit red, green and blue channels plus an
// alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(clamp01(c.A) * 0xffff))
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when it is not fully opaque.
func (c RGBA) Hex() string {
	var sb strings.Builder
	sb.Grow(9)
	sb.WriteByte('#')
	writeHexByte(&sb, c.R)
	writeHexByte(&sb, c.G)
	writeHexByte(&sb, c.B)
	if c.A < 1 {
		writeHexByte(&sb, alphaByte(c.A))
	}
	return sb.String()
}

// String formats the color as rgba(r, g, b, a). The alpha keeps full float
// precision so that Parse(c.String()) reproduces it exactly.
func (c RGBA) String() string {
	return "rgba(" +
		strconv.Itoa(int(c.R)) + ", " +
		strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " +
		strconv.FormatFloat(clamp01(c.A), 'f', -1, 64) + ")"
}

// Lerp performs linear interpolation between two colors.
// Channels are rounded to the nearest 8-bit value.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: lerpByte(c.R, other.R, t),
		G: lerpByte(c.G, other.G, t),
		B: lerpByte(c.B, other.B, t),
		A: c.A + (other.A-c.A)*t,
	}
}

// Luminance returns the perceived brightness in [0, 1] using the
// 0.299/0.587/0.114 channel weights.
func (c RGBA) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Float returns the components as floats in [0, 1], straight (not
// premultiplied) alpha.
func (c RGBA) Float() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, clamp01(c.A)
}

const hexDigits = "0123456789ABCDEF"

func writeHexByte(sb *strings.Builder, v uint8) {
	sb.WriteByte(hexDigits[v>>4])
	sb.WriteByte(hexDigits[v&0x0f])
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(clamp255(math.Round(float64(a) + (float64(b)-float64(a))*t)))
}

// clamp01 restricts a value to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
