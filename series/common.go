package series

import (
	"github.com/gogpu/ggseries"
)

// Kind names a series kind. Scenes and logs use these names.
type Kind string

// Series kinds.
const (
	KindBand           Kind = "band"
	KindRibbon         Kind = "ribbon"
	KindGradientRibbon Kind = "gradientRibbon"
	KindTrendFill      Kind = "trendFill"
	KindSignal         Kind = "signal"
)

// Kinds returns every series kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindBand, KindRibbon, KindGradientRibbon, KindTrendFill, KindSignal}
}

// Chrome holds the options every series carries for the host's UI. The
// renderers only honour Visible; the rest is passed through to the host.
type Chrome struct {
	Title            string `yaml:"title"`
	Visible          bool   `yaml:"visible"`
	LastValueVisible bool   `yaml:"lastValueVisible"`
	PriceLineVisible bool   `yaml:"priceLineVisible"`
}

func defaultChrome() Chrome {
	return Chrome{Visible: true, LastValueVisible: true, PriceLineVisible: false}
}

// snapshot is the single (data, options) pair a renderer owns. Update is the
// only writer, Draw the only reader.
type snapshot[T, O any] struct {
	data    *ggseries.PaneData[T]
	options *O
}

func (s *snapshot[T, O]) set(data ggseries.PaneData[T], options O) {
	s.data = &data
	s.options = &options
}

// window returns the bars to draw this frame, clamped to the data. It
// reports false, logging the reason at debug level, when the frame is a
// no-op.
func (s *snapshot[T, O]) window(kind Kind, visible bool) (bars []ggseries.Bar[T], ok bool) {
	reason := ""
	switch {
	case s.data == nil || s.options == nil:
		reason = "no data"
	case len(s.data.Bars) == 0:
		reason = "empty bars"
	case s.data.VisibleRange == nil:
		reason = "nil visible range"
	case !visible:
		reason = "series hidden"
	}
	if reason == "" {
		r := s.data.VisibleRange.Clamp(len(s.data.Bars))
		if r.Len() == 0 {
			reason = "empty visible range"
		} else {
			return s.data.Bars[r.From:r.To], true
		}
	}
	ggseries.Logger().Debug("series: draw skipped", "kind", string(kind), "reason", reason)
	return nil, false
}

// drawFrame runs fn inside the target's bitmap space with a converter for it.
func drawFrame(target ggseries.Target, ptc ggseries.PriceConverter, fn func(scope ggseries.RenderingScope, conv ggseries.Converter)) {
	if target == nil {
		return
	}
	target.UseBitmapCoordinateSpace(func(scope ggseries.RenderingScope) {
		if scope.Canvas == nil {
			return
		}
		fn(scope, ggseries.NewConverter(scope, ptc))
	})
}

// linePoint converts one channel of one bar.
func linePoint(conv ggseries.Converter, x, price float64, opts ggseries.LineOptions) ggseries.LinePoint {
	y, ok := conv.Y(price)
	return ggseries.LinePoint{X: x, Y: y, OK: ok, Options: opts}
}

// fillPoint builds the area sample between two prices. The sample is a gap
// unless both prices are plottable and the fill is visible.
func fillPoint(conv ggseries.Converter, x, top, bottom float64, fill ggseries.FillOptions, group int) ggseries.FillPoint {
	yTop, okTop := conv.Y(top)
	yBottom, okBottom := conv.Y(bottom)
	return ggseries.FillPoint{
		X:      x,
		Top:    yTop,
		Bottom: yBottom,
		OK:     okTop && okBottom && fill.Visible,
		Color:  fill.Color,
		Group:  group,
	}
}

func logDrawn(kind Kind, bars, calls int) {
	ggseries.Logger().Debug("series: drawn", "kind", string(kind), "bars", bars, "calls", calls)
}
