package series

import (
	"math"

	"github.com/gogpu/ggseries"
)

// SignalPoint is one bar of a signal series. Value is 0 for no signal,
// positive for a signal and negative for an alert; loaders coerce booleans
// to 0 and 1.
type SignalPoint struct {
	Time   int64
	Value  float64
	Styles SignalStyles
}

// SignalStyles are the per-point overrides of a signal series. Only Color
// and Visible apply.
type SignalStyles struct {
	Band ggseries.StyleOverride `yaml:"band"`
}

// SignalOptions configure a signal series.
type SignalOptions struct {
	Chrome `yaml:",inline"`

	NeutralColor string `yaml:"neutralColor"`
	SignalColor  string `yaml:"signalColor"`
	AlertColor   string `yaml:"alertColor"`
}

// Signal is the signal series plugin.
type Signal struct {
	renderer *SignalRenderer
}

var _ ggseries.Plugin[SignalPoint, SignalOptions] = (*Signal)(nil)

// NewSignal returns a signal series plugin.
func NewSignal() *Signal {
	return &Signal{renderer: &SignalRenderer{}}
}

// DefaultOptions leaves neutral bars unpainted and paints signals green and
// alerts red.
func (*Signal) DefaultOptions() SignalOptions {
	return SignalOptions{
		Chrome:       defaultChrome(),
		NeutralColor: "transparent",
		SignalColor:  "rgba(76, 175, 80, 0.2)",
		AlertColor:   "rgba(244, 67, 54, 0.2)",
	}
}

// IsWhitespace reports whether the value is missing.
func (*Signal) IsWhitespace(p SignalPoint) bool {
	return ggseries.IsMissing(p.Value)
}

// PriceValueBuilder returns an empty slice: signal bands span the whole pane
// and never affect autoscale.
func (*Signal) PriceValueBuilder(SignalPoint) []float64 {
	return []float64{}
}

// Update forwards the snapshot to the renderer.
func (s *Signal) Update(data ggseries.PaneData[SignalPoint], options SignalOptions) {
	s.renderer.Update(data, options)
}

// Renderer returns the plugin's renderer.
func (s *Signal) Renderer() ggseries.Renderer[SignalPoint, SignalOptions] {
	return s.renderer
}

// SignalRenderer paints a full-height vertical band per bar. Consecutive
// bars of the same color share one rectangle.
type SignalRenderer struct {
	snap  snapshot[SignalPoint, SignalOptions]
	mixed bool
}

// Update replaces the snapshot and reclassifies the whole dataset.
func (r *SignalRenderer) Update(data ggseries.PaneData[SignalPoint], options SignalOptions) {
	r.snap.set(data, options)
	r.mixed = classifySignal(data.Bars)
}

// classifySignal reports whether the dataset is mixed rather than
// boolean-only. It scans every bar, not just the visible ones. Negative
// values are the ones being classified and do not take part: the dataset is
// boolean-only when every non-negative value is 0 or 1.
func classifySignal(bars []ggseries.Bar[SignalPoint]) bool {
	for _, bar := range bars {
		v := bar.Data.Value
		if math.IsNaN(v) || v < 0 {
			continue
		}
		if v != 0 && v != 1 {
			return true
		}
	}
	return false
}

// signalColor resolves the color of one value.
func signalColor(v float64, opts SignalOptions, mixed bool) string {
	switch {
	case v > 0:
		return opts.SignalColor
	case v < 0 && mixed:
		return opts.AlertColor
	case v < 0:
		return opts.SignalColor
	default:
		return opts.NeutralColor
	}
}

// Draw renders the snapshot.
func (r *SignalRenderer) Draw(target ggseries.Target, _ ggseries.PriceConverter, _ bool, _ any) {
	bars, ok := r.snap.window(KindSignal, r.snap.options != nil && r.snap.options.Visible)
	if !ok {
		return
	}
	opts := *r.snap.options
	half := r.snap.data.BarSpacing / 2

	drawFrame(target, nil, func(scope ggseries.RenderingScope, conv ggseries.Converter) {
		bands := make([]ggseries.BandRect, len(bars))
		for i, bar := range bars {
			p := bar.Data
			fill := ggseries.ResolveFill(ggseries.FillOptions{
				Color:   signalColor(p.Value, opts, r.mixed),
				Visible: true,
			}, p.Styles.Band)
			bands[i] = ggseries.BandRect{
				Left:  conv.X(bar.X - half),
				Right: conv.X(bar.X + half),
				OK:    !ggseries.IsMissing(p.Value) && fill.Visible,
				Color: fill.Color,
			}
		}

		calls := ggseries.DrawBands(scope.Canvas, float64(scope.BitmapSize.Height), bands)
		logDrawn(KindSignal, len(bars), calls)
	})
}
