package host

import (
	"math"

	"github.com/gogpu/ggseries"
)

// Series is a custom series bound to its data and options, with the point
// type erased so that a Chart can hold series of different kinds.
type Series interface {
	// Title returns the series title.
	Title() string

	// Len returns the number of data points.
	Len() int

	// PriceRange returns the autoscale range of the points in [from, to),
	// skipping whitespace. ok is false when no point contributes.
	PriceRange(from, to int) (lo, hi float64, ok bool)

	// Render updates the plugin with the frame's pane data and draws it.
	Render(target ggseries.Target, priceToCoordinate ggseries.PriceConverter, window ggseries.VisibleRange, barSpacing float64)
}

// NewSeries binds a plugin to its data and options.
func NewSeries[T, O any](title string, plugin ggseries.Plugin[T, O], points []T, options O) Series {
	return &boundSeries[T, O]{title: title, plugin: plugin, points: points, options: options}
}

type boundSeries[T, O any] struct {
	title   string
	plugin  ggseries.Plugin[T, O]
	points  []T
	options O
}

func (s *boundSeries[T, O]) Title() string { return s.title }

func (s *boundSeries[T, O]) Len() int { return len(s.points) }

func (s *boundSeries[T, O]) PriceRange(from, to int) (lo, hi float64, ok bool) {
	r := ggseries.VisibleRange{From: from, To: to}.Clamp(len(s.points))
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range s.points[r.From:r.To] {
		if s.plugin.IsWhitespace(p) {
			continue
		}
		for _, v := range s.plugin.PriceValueBuilder(p) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	return lo, hi, ok
}

func (s *boundSeries[T, O]) Render(target ggseries.Target, ptc ggseries.PriceConverter, window ggseries.VisibleRange, barSpacing float64) {
	bars := make([]ggseries.Bar[T], len(s.points))
	for i, p := range s.points {
		bars[i] = ggseries.Bar[T]{
			X:    (float64(i-window.From) + 0.5) * barSpacing,
			Data: p,
		}
	}
	s.plugin.Update(ggseries.PaneData[T]{
		Bars:         bars,
		BarSpacing:   barSpacing,
		VisibleRange: &window,
	}, s.options)
	s.plugin.Renderer().Draw(target, ptc, false, nil)
}
