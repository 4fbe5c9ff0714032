package series

import (
	"math"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
)

// RibbonPoint is one bar of a ribbon: two lines with the area between them
// filled, such as a pair of moving averages.
type RibbonPoint struct {
	Time   int64
	Line1  float64
	Line2  float64
	Styles RibbonStyles
}

// RibbonStyles are the per-point overrides of a ribbon series.
type RibbonStyles struct {
	Line1 ggseries.StyleOverride `yaml:"line1"`
	Line2 ggseries.StyleOverride `yaml:"line2"`
	Fill  ggseries.StyleOverride `yaml:"fill"`
}

// RibbonOptions configure a ribbon series.
type RibbonOptions struct {
	Chrome `yaml:",inline"`

	Line1 ggseries.LineOptions `yaml:"line1"`
	Line2 ggseries.LineOptions `yaml:"line2"`
	Fill  ggseries.FillOptions `yaml:"fill"`
}

// Ribbon is the ribbon series plugin.
type Ribbon struct {
	renderer *RibbonRenderer
}

var _ ggseries.Plugin[RibbonPoint, RibbonOptions] = (*Ribbon)(nil)

// NewRibbon returns a ribbon series plugin.
func NewRibbon() *Ribbon {
	return &Ribbon{renderer: &RibbonRenderer{}}
}

// DefaultOptions returns a green and a red line with a translucent green
// fill.
func (*Ribbon) DefaultOptions() RibbonOptions {
	return RibbonOptions{
		Chrome: defaultChrome(),
		Line1:  ggseries.LineOptions{Color: "#26A69A", Width: 2, Visible: true},
		Line2:  ggseries.LineOptions{Color: "#EF5350", Width: 2, Visible: true},
		Fill:   ggseries.FillOptions{Color: colors.WithAlpha("#26A69A", 0.2), Visible: true},
	}
}

// IsWhitespace reports whether both lines are missing.
func (*Ribbon) IsWhitespace(p RibbonPoint) bool {
	return ggseries.AllMissing(p.Line1, p.Line2)
}

// PriceValueBuilder returns [min(line1, line2), max(line1, line2)], or the
// one present line.
func (*Ribbon) PriceValueBuilder(p RibbonPoint) []float64 {
	if ggseries.IsMissing(p.Line1) || ggseries.IsMissing(p.Line2) {
		return ggseries.Present(p.Line1, p.Line2)
	}
	return []float64{math.Min(p.Line1, p.Line2), math.Max(p.Line1, p.Line2)}
}

// Update forwards the snapshot to the renderer.
func (s *Ribbon) Update(data ggseries.PaneData[RibbonPoint], options RibbonOptions) {
	s.renderer.Update(data, options)
}

// Renderer returns the plugin's renderer.
func (s *Ribbon) Renderer() ggseries.Renderer[RibbonPoint, RibbonOptions] {
	return s.renderer
}

// RibbonRenderer draws the fill between the lines, then both lines.
type RibbonRenderer struct {
	snap snapshot[RibbonPoint, RibbonOptions]
}

// Update replaces the snapshot.
func (r *RibbonRenderer) Update(data ggseries.PaneData[RibbonPoint], options RibbonOptions) {
	r.snap.set(data, options)
}

// Draw renders the snapshot.
func (r *RibbonRenderer) Draw(target ggseries.Target, priceToCoordinate ggseries.PriceConverter, _ bool, _ any) {
	bars, ok := r.snap.window(KindRibbon, r.snap.options != nil && r.snap.options.Visible)
	if !ok {
		return
	}
	opts := *r.snap.options

	drawFrame(target, priceToCoordinate, func(scope ggseries.RenderingScope, conv ggseries.Converter) {
		fill := make([]ggseries.FillPoint, len(bars))
		line1 := make([]ggseries.LinePoint, len(bars))
		line2 := make([]ggseries.LinePoint, len(bars))

		for i, bar := range bars {
			p := bar.Data
			x := conv.X(bar.X)
			fill[i] = fillPoint(conv, x, p.Line1, p.Line2, ggseries.ResolveFill(opts.Fill, p.Styles.Fill), 0)
			line1[i] = linePoint(conv, x, p.Line1, ggseries.ResolveLine(opts.Line1, p.Styles.Line1))
			line2[i] = linePoint(conv, x, p.Line2, ggseries.ResolveLine(opts.Line2, p.Styles.Line2))
		}

		calls := ggseries.DrawFill(scope.Canvas, fill)
		calls += ggseries.DrawLine(scope.Canvas, conv, line1)
		calls += ggseries.DrawLine(scope.Canvas, conv, line2)
		logDrawn(KindRibbon, len(bars), calls)
	})
}
