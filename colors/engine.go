package colors

import "strings"

// Interpolate blends start toward end by factor, which is clamped to [0, 1].
//
// Interpolate(c, c, f) returns c for every f, and factors 0 and 1 return
// start and end untouched. If either color cannot be parsed, start is returned
// unchanged. Otherwise the result is formatted with RGBA.Hex.
func Interpolate(start, end string, factor float64) string {
	if start == end {
		return start
	}
	a, ok := Parse(start)
	if !ok {
		return start
	}
	b, ok := Parse(end)
	if !ok {
		return start
	}

	f := clamp01(factor)
	switch f {
	case 0:
		return start
	case 1:
		return end
	}
	return a.Lerp(b, f).Hex()
}

// IsTransparent reports whether the color is fully transparent: the literal
// "transparent", rgba() with a zero alpha, or a hex color with a zero alpha
// byte or nibble. Unparseable colors are not transparent.
func IsTransparent(color string) bool {
	c, ok := Parse(color)
	return ok && c.A == 0
}

// SanitizeHex normalizes user supplied hex input to upper-case with a leading
// '#'. Input that does not form a 3- or 6-digit hex color yields Fallback.
func SanitizeHex(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return Fallback
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			return Fallback
		}
	}
	return "#" + s
}

// ContrastColor picks a readable text color for the background bg: Dark when
// the background luminance is above 0.5, Light otherwise. Unparseable
// backgrounds get Dark.
func ContrastColor(bg string) string {
	c, ok := Parse(bg)
	if !ok {
		return Dark
	}
	if c.Luminance() > 0.5 {
		return Dark
	}
	return Light
}

// HexToRGBA converts a color to an rgba() string with the given alpha, which
// is clamped to [0, 1]. An unparseable color falls back to Fallback.
func HexToRGBA(hex string, alpha float64) string {
	c, ok := Parse(hex)
	if !ok {
		c, _ = Parse(Fallback)
	}
	c.A = clamp01(alpha)
	return c.String()
}

// Resolve parses color, returning the parsed Fallback for unparseable input.
// Backends use it to turn option strings into concrete paint.
func Resolve(color string) (RGBA, bool) {
	if c, ok := Parse(color); ok {
		return c, true
	}
	c, _ := Parse(Fallback)
	return c, false
}

// WithAlpha returns color with its alpha replaced by alpha (clamped to
// [0, 1]) as an rgba() string. Unparseable colors are returned unchanged.
func WithAlpha(color string, alpha float64) string {
	c, ok := Parse(color)
	if !ok {
		return color
	}
	c.A = clamp01(alpha)
	return c.String()
}
