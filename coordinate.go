package ggseries

import "math"

// Converter maps logical (media) positions into bitmap pixel space.
//
// It is a small value type built once per Draw; it holds no state beyond the
// scope ratios and the host's price converter, so copies are cheap and it is
// safe to use from any number of renderers.
type Converter struct {
	priceToCoordinate PriceConverter
	hRatio, vRatio    float64
}

// NewConverter returns a Converter for scope. A nil priceToCoordinate makes
// every price unplottable.
func NewConverter(scope RenderingScope, priceToCoordinate PriceConverter) Converter {
	return Converter{
		priceToCoordinate: priceToCoordinate,
		hRatio:            scope.HorizontalPixelRatio,
		vRatio:            scope.VerticalPixelRatio,
	}
}

// X converts a horizontal media coordinate to bitmap space.
func (c Converter) X(x float64) float64 {
	return x * c.hRatio
}

// Y converts a price to a bitmap y coordinate. It reports false for missing
// (NaN) prices and for prices the host converter rejects.
func (c Converter) Y(price float64) (float64, bool) {
	if c.priceToCoordinate == nil || IsMissing(price) {
		return 0, false
	}
	y, ok := c.priceToCoordinate(price)
	if !ok || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y * c.vRatio, true
}

// LineWidth scales a media line width to bitmap space.
func (c Converter) LineWidth(w float64) float64 {
	return w * c.vRatio
}

// Span converts a media length along x to bitmap space.
func (c Converter) Span(w float64) float64 {
	return w * c.hRatio
}
