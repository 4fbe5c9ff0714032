package series

import (
	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
)

// BandPoint is one bar of a band series (for example Bollinger or Keltner
// bands).
type BandPoint struct {
	Time   int64
	Upper  float64
	Middle float64
	Lower  float64
	Styles BandStyles
}

// BandStyles are the per-point overrides of a band series.
type BandStyles struct {
	Upper  ggseries.StyleOverride `yaml:"upperLine"`
	Middle ggseries.StyleOverride `yaml:"middleLine"`
	Lower  ggseries.StyleOverride `yaml:"lowerLine"`
	Fill   ggseries.StyleOverride `yaml:"fill"`
}

// BandOptions configure a band series.
type BandOptions struct {
	Chrome `yaml:",inline"`

	Upper  ggseries.LineOptions `yaml:"upperLine"`
	Middle ggseries.LineOptions `yaml:"middleLine"`
	Lower  ggseries.LineOptions `yaml:"lowerLine"`
	Fill   ggseries.FillOptions `yaml:"fill"`
}

const bandColor = "#2962FF"

// Band is the band series plugin.
type Band struct {
	renderer *BandRenderer
}

var _ ggseries.Plugin[BandPoint, BandOptions] = (*Band)(nil)

// NewBand returns a band series plugin.
func NewBand() *Band {
	return &Band{renderer: &BandRenderer{}}
}

// DefaultOptions returns blue upper/lower lines, a dashed orange middle line
// and a translucent fill.
func (*Band) DefaultOptions() BandOptions {
	return BandOptions{
		Chrome: defaultChrome(),
		Upper:  ggseries.LineOptions{Color: bandColor, Width: 1, Visible: true},
		Middle: ggseries.LineOptions{Color: "#FF6D00", Width: 1, Style: ggseries.LineStyleDashed, Visible: true},
		Lower:  ggseries.LineOptions{Color: bandColor, Width: 1, Visible: true},
		Fill:   ggseries.FillOptions{Color: colors.WithAlpha(bandColor, 0.1), Visible: true},
	}
}

// IsWhitespace reports whether upper, middle and lower are all missing.
func (*Band) IsWhitespace(p BandPoint) bool {
	return ggseries.AllMissing(p.Upper, p.Middle, p.Lower)
}

// PriceValueBuilder returns [lower, upper]. The middle line never widens the
// scale.
func (*Band) PriceValueBuilder(p BandPoint) []float64 {
	return ggseries.Present(p.Lower, p.Upper)
}

// Update forwards the snapshot to the renderer.
func (b *Band) Update(data ggseries.PaneData[BandPoint], options BandOptions) {
	b.renderer.Update(data, options)
}

// Renderer returns the plugin's renderer.
func (b *Band) Renderer() ggseries.Renderer[BandPoint, BandOptions] {
	return b.renderer
}

// BandRenderer draws a band series: the fill between upper and lower, then
// the middle line, then the upper and lower lines.
type BandRenderer struct {
	snap snapshot[BandPoint, BandOptions]
}

// Update replaces the snapshot.
func (r *BandRenderer) Update(data ggseries.PaneData[BandPoint], options BandOptions) {
	r.snap.set(data, options)
}

// Draw renders the snapshot.
func (r *BandRenderer) Draw(target ggseries.Target, priceToCoordinate ggseries.PriceConverter, _ bool, _ any) {
	bars, ok := r.snap.window(KindBand, r.snap.options != nil && r.snap.options.Visible)
	if !ok {
		return
	}
	opts := *r.snap.options

	drawFrame(target, priceToCoordinate, func(scope ggseries.RenderingScope, conv ggseries.Converter) {
		fill := make([]ggseries.FillPoint, len(bars))
		upper := make([]ggseries.LinePoint, len(bars))
		middle := make([]ggseries.LinePoint, len(bars))
		lower := make([]ggseries.LinePoint, len(bars))

		for i, bar := range bars {
			p := bar.Data
			x := conv.X(bar.X)
			fill[i] = fillPoint(conv, x, p.Upper, p.Lower, ggseries.ResolveFill(opts.Fill, p.Styles.Fill), 0)
			upper[i] = linePoint(conv, x, p.Upper, ggseries.ResolveLine(opts.Upper, p.Styles.Upper))
			middle[i] = linePoint(conv, x, p.Middle, ggseries.ResolveLine(opts.Middle, p.Styles.Middle))
			lower[i] = linePoint(conv, x, p.Lower, ggseries.ResolveLine(opts.Lower, p.Styles.Lower))
		}

		calls := ggseries.DrawFill(scope.Canvas, fill)
		calls += ggseries.DrawLine(scope.Canvas, conv, middle)
		calls += ggseries.DrawLine(scope.Canvas, conv, upper)
		calls += ggseries.DrawLine(scope.Canvas, conv, lower)
		logDrawn(KindBand, len(bars), calls)
	})
}
