package series

import (
	"math"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
)

// Trend directions of a TrendFillPoint.
const (
	TrendDown    = -1
	TrendNeutral = 0
	TrendUp      = 1
)

// TrendFillPoint is one bar of a trend fill: a trend line (for example a
// supertrend) against a base line, colored by direction.
type TrendFillPoint struct {
	Time           int64
	BaseLine       float64
	TrendLine      float64
	TrendDirection int
	Styles         TrendFillStyles
}

// direction normalizes TrendDirection to -1, 0 or 1.
func (p TrendFillPoint) direction() int {
	switch {
	case p.TrendDirection > 0:
		return TrendUp
	case p.TrendDirection < 0:
		return TrendDown
	default:
		return TrendNeutral
	}
}

// TrendFillStyles are the per-point overrides of a trend fill.
type TrendFillStyles struct {
	BaseLine      ggseries.StyleOverride `yaml:"baseLine"`
	UptrendLine   ggseries.StyleOverride `yaml:"uptrendLine"`
	DowntrendLine ggseries.StyleOverride `yaml:"downtrendLine"`
	UptrendFill   ggseries.StyleOverride `yaml:"uptrendFill"`
	DowntrendFill ggseries.StyleOverride `yaml:"downtrendFill"`
}

// TrendFillOptions configure a trend fill.
type TrendFillOptions struct {
	Chrome `yaml:",inline"`

	BaseLine      ggseries.LineOptions `yaml:"baseLine"`
	UptrendLine   ggseries.LineOptions `yaml:"uptrendLine"`
	DowntrendLine ggseries.LineOptions `yaml:"downtrendLine"`
	UptrendFill   ggseries.FillOptions `yaml:"uptrendFill"`
	DowntrendFill ggseries.FillOptions `yaml:"downtrendFill"`
}

// TrendFill is the trend fill series plugin.
type TrendFill struct {
	renderer *TrendFillRenderer
}

var _ ggseries.Plugin[TrendFillPoint, TrendFillOptions] = (*TrendFill)(nil)

// NewTrendFill returns a trend fill series plugin.
func NewTrendFill() *TrendFill {
	return &TrendFill{renderer: &TrendFillRenderer{}}
}

// DefaultOptions returns green up / red down lines and fills and a dashed
// grey base line.
func (*TrendFill) DefaultOptions() TrendFillOptions {
	return TrendFillOptions{
		Chrome:        defaultChrome(),
		BaseLine:      ggseries.LineOptions{Color: "#787B86", Width: 1, Style: ggseries.LineStyleDashed, Visible: true},
		UptrendLine:   ggseries.LineOptions{Color: "#4CAF50", Width: 2, Visible: true},
		DowntrendLine: ggseries.LineOptions{Color: "#F44336", Width: 2, Visible: true},
		UptrendFill:   ggseries.FillOptions{Color: colors.WithAlpha("#4CAF50", 0.3), Visible: true},
		DowntrendFill: ggseries.FillOptions{Color: colors.WithAlpha("#F44336", 0.3), Visible: true},
	}
}

// IsWhitespace reports whether base and trend line are both missing.
func (*TrendFill) IsWhitespace(p TrendFillPoint) bool {
	return ggseries.AllMissing(p.BaseLine, p.TrendLine)
}

// PriceValueBuilder returns [min(base, trend), max(base, trend), trend].
func (*TrendFill) PriceValueBuilder(p TrendFillPoint) []float64 {
	if ggseries.IsMissing(p.BaseLine) || ggseries.IsMissing(p.TrendLine) {
		return ggseries.Present(p.BaseLine, p.TrendLine)
	}
	return []float64{math.Min(p.BaseLine, p.TrendLine), math.Max(p.BaseLine, p.TrendLine), p.TrendLine}
}

// Update forwards the snapshot to the renderer.
func (s *TrendFill) Update(data ggseries.PaneData[TrendFillPoint], options TrendFillOptions) {
	s.renderer.Update(data, options)
}

// Renderer returns the plugin's renderer.
func (s *TrendFill) Renderer() ggseries.Renderer[TrendFillPoint, TrendFillOptions] {
	return s.renderer
}

// TrendFillRenderer draws the directional fill between base and trend line,
// then the base line, then the trend line colored by direction. Neutral bars
// are gaps in both the fill and the trend line.
type TrendFillRenderer struct {
	snap snapshot[TrendFillPoint, TrendFillOptions]
}

// Update replaces the snapshot.
func (r *TrendFillRenderer) Update(data ggseries.PaneData[TrendFillPoint], options TrendFillOptions) {
	r.snap.set(data, options)
}

// Draw renders the snapshot.
func (r *TrendFillRenderer) Draw(target ggseries.Target, priceToCoordinate ggseries.PriceConverter, _ bool, _ any) {
	bars, ok := r.snap.window(KindTrendFill, r.snap.options != nil && r.snap.options.Visible)
	if !ok {
		return
	}
	opts := *r.snap.options

	drawFrame(target, priceToCoordinate, func(scope ggseries.RenderingScope, conv ggseries.Converter) {
		fill := make([]ggseries.FillPoint, len(bars))
		base := make([]ggseries.LinePoint, len(bars))
		trend := make([]ggseries.LinePoint, len(bars))

		for i, bar := range bars {
			p := bar.Data
			x := conv.X(bar.X)
			dir := p.direction()

			base[i] = linePoint(conv, x, p.BaseLine, ggseries.ResolveLine(opts.BaseLine, p.Styles.BaseLine))

			var line ggseries.LineOptions
			var area ggseries.FillOptions
			switch dir {
			case TrendUp:
				line = ggseries.ResolveLine(opts.UptrendLine, p.Styles.UptrendLine)
				area = ggseries.ResolveFill(opts.UptrendFill, p.Styles.UptrendFill)
			case TrendDown:
				line = ggseries.ResolveLine(opts.DowntrendLine, p.Styles.DowntrendLine)
				area = ggseries.ResolveFill(opts.DowntrendFill, p.Styles.DowntrendFill)
			}
			// Neutral bars keep zero options: invisible line, invisible fill.
			trend[i] = linePoint(conv, x, p.TrendLine, line)
			fill[i] = fillPoint(conv, x, p.TrendLine, p.BaseLine, area, dir)
		}

		calls := ggseries.DrawFill(scope.Canvas, fill)
		calls += ggseries.DrawLine(scope.Canvas, conv, base)
		calls += ggseries.DrawLine(scope.Canvas, conv, trend)
		logDrawn(KindTrendFill, len(bars), calls)
	})
}
