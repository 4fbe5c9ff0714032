package series

import (
	"math"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
)

// GradientRibbonPoint is one bar of a gradient ribbon. Gradient is an
// optional per-bar factor (NaN when absent) and Fill an optional explicit
// fill color that wins over the gradient.
type GradientRibbonPoint struct {
	Time     int64
	Upper    float64
	Lower    float64
	Fill     string
	Gradient float64
	Styles   GradientRibbonStyles
}

// GradientRibbonStyles are the per-point overrides of a gradient ribbon.
type GradientRibbonStyles struct {
	Upper ggseries.StyleOverride `yaml:"upperLine"`
	Lower ggseries.StyleOverride `yaml:"lowerLine"`
}

// GradientRibbonOptions configure a gradient ribbon.
type GradientRibbonOptions struct {
	Chrome `yaml:",inline"`

	Upper ggseries.LineOptions `yaml:"upperLine"`
	Lower ggseries.LineOptions `yaml:"lowerLine"`

	FillVisible bool `yaml:"fillVisible"`
	// StartColor is the fill at factor 0, EndColor at factor 1.
	StartColor string `yaml:"startColor"`
	EndColor   string `yaml:"endColor"`
	// NormalizeGradients rescales factors over the visible window.
	NormalizeGradients bool `yaml:"normalizeGradients"`
}

// GradientRibbon is the gradient ribbon series plugin.
type GradientRibbon struct {
	renderer *GradientRibbonRenderer
}

var _ ggseries.Plugin[GradientRibbonPoint, GradientRibbonOptions] = (*GradientRibbon)(nil)

// NewGradientRibbon returns a gradient ribbon series plugin.
func NewGradientRibbon() *GradientRibbon {
	return &GradientRibbon{renderer: &GradientRibbonRenderer{}}
}

// DefaultOptions returns a ribbon fading from translucent green at factor 0
// to translucent red at factor 1, with spread normalization on.
func (*GradientRibbon) DefaultOptions() GradientRibbonOptions {
	return GradientRibbonOptions{
		Chrome:             defaultChrome(),
		Upper:              ggseries.LineOptions{Color: "#4CAF50", Width: 1, Visible: true},
		Lower:              ggseries.LineOptions{Color: "#F44336", Width: 1, Visible: true},
		FillVisible:        true,
		StartColor:         colors.WithAlpha("#4CAF50", 0.3),
		EndColor:           colors.WithAlpha("#F44336", 0.3),
		NormalizeGradients: true,
	}
}

// IsWhitespace reports whether upper and lower are both missing.
func (*GradientRibbon) IsWhitespace(p GradientRibbonPoint) bool {
	return ggseries.AllMissing(p.Upper, p.Lower)
}

// PriceValueBuilder returns [lower, upper].
func (*GradientRibbon) PriceValueBuilder(p GradientRibbonPoint) []float64 {
	return ggseries.Present(p.Lower, p.Upper)
}

// Update forwards the snapshot to the renderer.
func (s *GradientRibbon) Update(data ggseries.PaneData[GradientRibbonPoint], options GradientRibbonOptions) {
	s.renderer.Update(data, options)
}

// Renderer returns the plugin's renderer.
func (s *GradientRibbon) Renderer() ggseries.Renderer[GradientRibbonPoint, GradientRibbonOptions] {
	return s.renderer
}

// GradientRibbonRenderer draws a gradient-filled area between two lines,
// then the lines.
type GradientRibbonRenderer struct {
	snap snapshot[GradientRibbonPoint, GradientRibbonOptions]
}

// Update replaces the snapshot.
func (r *GradientRibbonRenderer) Update(data ggseries.PaneData[GradientRibbonPoint], options GradientRibbonOptions) {
	r.snap.set(data, options)
}

// Draw renders the snapshot.
func (r *GradientRibbonRenderer) Draw(target ggseries.Target, priceToCoordinate ggseries.PriceConverter, _ bool, _ any) {
	bars, ok := r.snap.window(KindGradientRibbon, r.snap.options != nil && r.snap.options.Visible)
	if !ok {
		return
	}
	opts := *r.snap.options

	drawFrame(target, priceToCoordinate, func(scope ggseries.RenderingScope, conv ggseries.Converter) {
		points := make([]GradientRibbonPoint, len(bars))
		for i, bar := range bars {
			points[i] = bar.Data
		}
		factors := gradientFactors(points, opts.NormalizeGradients)

		fill := make([]ggseries.FillPoint, len(bars))
		upper := make([]ggseries.LinePoint, len(bars))
		lower := make([]ggseries.LinePoint, len(bars))

		for i, bar := range bars {
			p := bar.Data
			x := conv.X(bar.X)
			color := p.Fill
			if color == "" {
				color = colors.Interpolate(opts.StartColor, opts.EndColor, factors[i])
			}
			fill[i] = fillPoint(conv, x, p.Upper, p.Lower, ggseries.FillOptions{Color: color, Visible: opts.FillVisible}, 0)
			upper[i] = linePoint(conv, x, p.Upper, ggseries.ResolveLine(opts.Upper, p.Styles.Upper))
			lower[i] = linePoint(conv, x, p.Lower, ggseries.ResolveLine(opts.Lower, p.Styles.Lower))
		}

		calls := ggseries.DrawGradientFill(scope.Canvas, fill)
		calls += ggseries.DrawLine(scope.Canvas, conv, upper)
		calls += ggseries.DrawLine(scope.Canvas, conv, lower)
		logDrawn(KindGradientRibbon, len(bars), calls)
	})
}

// gradientFactors returns the fill factor in [0, 1] of every point of the
// visible window, in priority order:
//
//  1. explicit gradient, normalized: (g - min) / (max - min) over the
//     window's explicit gradients, 0 when the range is empty
//  2. explicit gradient, not normalized: g clamped to [0, 1]
//  3. no explicit gradient anywhere in the window, normalized:
//     |upper - lower| / max spread in the window
//  4. 0
//
// The min, max and spread are recomputed on every call.
func gradientFactors(points []GradientRibbonPoint, normalize bool) []float64 {
	minG, maxG := math.Inf(1), math.Inf(-1)
	maxSpread := 0.0
	explicit := false
	for _, p := range points {
		if !ggseries.IsMissing(p.Gradient) {
			explicit = true
			minG = math.Min(minG, p.Gradient)
			maxG = math.Max(maxG, p.Gradient)
		}
		if s := spread(p); s > maxSpread {
			maxSpread = s
		}
	}

	factors := make([]float64, len(points))
	for i, p := range points {
		switch {
		case !ggseries.IsMissing(p.Gradient) && normalize:
			if maxG > minG {
				factors[i] = clamp01((p.Gradient - minG) / (maxG - minG))
			}
		case !ggseries.IsMissing(p.Gradient):
			factors[i] = clamp01(p.Gradient)
		case !explicit && normalize && maxSpread > 0:
			factors[i] = clamp01(spread(p) / maxSpread)
		}
	}
	return factors
}

// spread is |upper - lower|, or 0 when either is missing.
func spread(p GradientRibbonPoint) float64 {
	if ggseries.IsMissing(p.Upper) || ggseries.IsMissing(p.Lower) {
		return 0
	}
	return math.Abs(p.Upper - p.Lower)
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return math.Min(x, 1)
}
