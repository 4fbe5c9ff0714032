// Package host is a minimal reference host for custom series.
//
// It stands in for the chart engine that normally owns the time and price
// scales: it picks the visible window, autoscales the price axis from every
// series' PriceValueBuilder, positions bars by bar spacing and runs one
// Update/Draw pass per series in insertion order.
//
// Example:
//
//	chart := host.New(800, 400, host.WithPixelRatio(2))
//	band := series.NewBand()
//	chart.Add(host.NewSeries("BB(20, 2)", band, points, band.DefaultOptions()))
//	rec := chart.Record()
//	rec.Playback(backend)
package host

import (
	"math"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
	"github.com/gogpu/ggseries/recording"
)

// Chart lays out and draws a set of series.
type Chart struct {
	width, height int
	opts          options
	series        []Series
}

// New creates a chart of width x height media pixels.
func New(width, height int, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{width: width, height: height, opts: o}
}

// Add appends series to the chart. Series draw in the order they were
// added, so later series paint over earlier ones.
func (c *Chart) Add(series ...Series) {
	c.series = append(c.series, series...)
}

// Series returns the series of the chart in draw order.
func (c *Chart) Series() []Series {
	return c.series
}

// BitmapSize returns the chart size in device pixels.
func (c *Chart) BitmapSize() ggseries.Size {
	return ggseries.Size{
		Width:  int(math.Round(float64(c.width) * c.opts.pixelRatio)),
		Height: int(math.Round(float64(c.height) * c.opts.pixelRatio)),
	}
}

// VisibleRange returns the window of bar indices the next frame draws.
func (c *Chart) VisibleRange() ggseries.VisibleRange {
	n := 0
	for _, s := range c.series {
		n = max(n, s.Len())
	}
	if w := c.opts.visible; w != nil {
		return ggseries.VisibleRange{From: w.from, To: w.to}.Clamp(n)
	}
	fit := int(float64(c.width) / c.opts.barSpacing)
	return ggseries.VisibleRange{From: max(n-fit, 0), To: n}
}

// PriceScale autoscales the price axis over the visible window of every
// series.
func (c *Chart) PriceScale() PriceScale {
	window := c.VisibleRange()
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for _, s := range c.series {
		sLo, sHi, ok := s.PriceRange(window.From, window.To)
		if !ok {
			continue
		}
		lo, hi = math.Min(lo, sLo), math.Max(hi, sHi)
		found = true
	}
	if !found {
		ggseries.Logger().Debug("host: nothing to autoscale", "from", window.From, "to", window.To)
		return PriceScale{}
	}

	if hi == lo {
		d := math.Max(math.Abs(hi)*0.01, 1)
		lo, hi = lo-d, hi+d
	}
	h := float64(c.height)
	scale := PriceScale{
		Low:    lo,
		High:   hi,
		Top:    h * c.opts.marginTop,
		Bottom: h * (1 - c.opts.marginBottom),
	}
	ggseries.Logger().Debug("host: autoscale", "low", lo, "high", hi, "from", window.From, "to", window.To)
	return scale
}

// Render draws one frame into canvas, which must cover BitmapSize.
func (c *Chart) Render(canvas ggseries.Canvas) {
	size := c.BitmapSize()
	if c.opts.background != "" && !colors.IsTransparent(c.opts.background) {
		canvas.FillRect(ggseries.Rect{Width: float64(size.Width), Height: float64(size.Height)},
			ggseries.SolidBrush{Color: c.opts.background})
	}

	window := c.VisibleRange()
	scale := c.PriceScale()
	target := ggseries.NewTarget(ggseries.RenderingScope{
		Canvas:               canvas,
		HorizontalPixelRatio: c.opts.pixelRatio,
		VerticalPixelRatio:   c.opts.pixelRatio,
		BitmapSize:           size,
	})

	for _, s := range c.series {
		canvas.Save()
		s.Render(target, scale.Coordinate, window, c.opts.barSpacing)
		canvas.Restore()
	}
}

// Record renders one frame into a new recording.
func (c *Chart) Record() *recording.Recording {
	size := c.BitmapSize()
	rec := recording.NewRecorder(size.Width, size.Height)
	c.Render(rec)
	return rec.FinishRecording()
}

// PriceScale maps prices linearly onto the vertical media axis: High maps
// to Top and Low to Bottom. The zero PriceScale maps nothing.
type PriceScale struct {
	Low, High   float64
	Top, Bottom float64
}

// Valid reports whether the scale has a usable range.
func (s PriceScale) Valid() bool {
	return s.High > s.Low
}

// Coordinate is the scale's ggseries.PriceConverter.
func (s PriceScale) Coordinate(price float64) (float64, bool) {
	if !s.Valid() || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return s.Top + (s.High-price)/(s.High-s.Low)*(s.Bottom-s.Top), true
}
