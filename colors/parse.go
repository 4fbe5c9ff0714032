package colors

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse parses a CSS color string.
//
// Supported forms:
//   - "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)"; channels are clamped to
//     [0, 255] and alpha to [0, 1]
//   - "transparent"
//   - CSS named colors ("red", "steelblue", ...)
//
// The second result is false for anything else.
func Parse(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, false
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	lower := strings.ToLower(s)
	switch {
	case lower == "transparent":
		return RGBA{}, true
	case strings.HasPrefix(lower, "rgba("):
		return parseFunc(lower[len("rgba("):])
	case strings.HasPrefix(lower, "rgb("):
		return parseFunc(lower[len("rgb("):])
	}

	if named, ok := colornames.Map[lower]; ok {
		return RGBA{R: named.R, G: named.G, B: named.B, A: 1}, true
	}
	return RGBA{}, false
}

// parseHexColor parses the digits of a hex color without the leading '#'.
func parseHexColor(hex string) (RGBA, bool) {
	var v [8]uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexValue(hex[i])
		if !ok {
			return RGBA{}, false
		}
		if i < len(v) {
			v[i] = d
		}
	}

	switch len(hex) {
	case 3: // RGB
		return RGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: 1}, true
	case 4: // RGBA
		return RGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: float64(v[3]*17) / 255}, true
	case 6: // RRGGBB
		return RGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: 1}, true
	case 8: // RRGGBBAA
		return RGBA{
			R: v[0]<<4 | v[1],
			G: v[2]<<4 | v[3],
			B: v[4]<<4 | v[5],
			A: float64(v[6]<<4|v[7]) / 255,
		}, true
	default:
		return RGBA{}, false
	}
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseFunc parses the argument list of rgb()/rgba(), starting right after
// the opening parenthesis. Both spellings accept three or four arguments.
func parseFunc(args string) (RGBA, bool) {
	body, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !ok {
		return RGBA{}, false
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return RGBA{}, false
		}
		ch[i] = uint8(clamp255(f + 0.5))
	}

	alpha := 1.0
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, false
		}
		alpha = clamp01(f)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}
