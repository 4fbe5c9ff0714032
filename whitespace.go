package ggseries

import "math"

// Missing is the channel value of an absent data point field.
var Missing = math.NaN()

// IsMissing reports whether a channel value is absent.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// AllMissing reports whether every value is absent. Series plugins use it to
// implement IsWhitespace over their required channels.
func AllMissing(values ...float64) bool {
	for _, v := range values {
		if !IsMissing(v) {
			return false
		}
	}
	return true
}

// Present returns the values that are not missing, in order. It never
// returns nil so callers can hand the result straight to the host.
func Present(values ...float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}
