package host

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/recording"
	"github.com/gogpu/ggseries/series"
)

func ribbonPoints(pairs ...[2]float64) []series.RibbonPoint {
	points := make([]series.RibbonPoint, len(pairs))
	for i, p := range pairs {
		points[i] = series.RibbonPoint{Time: int64(i), Line1: p[0], Line2: p[1]}
	}
	return points
}

func TestOptions(t *testing.T) {
	c := New(100, 50,
		WithPixelRatio(2),
		WithBarSpacing(10),
		WithBackground("#131722"),
		WithScaleMargins(0.2, 0.3),
		WithVisibleRange(1, 4),
	)
	if c.opts.pixelRatio != 2 || c.opts.barSpacing != 10 || c.opts.background != "#131722" {
		t.Errorf("options = %+v", c.opts)
	}
	if c.opts.marginTop != 0.2 || c.opts.marginBottom != 0.3 {
		t.Errorf("margins = %v/%v, want 0.2/0.3", c.opts.marginTop, c.opts.marginBottom)
	}
	if c.opts.visible == nil || c.opts.visible.from != 1 || c.opts.visible.to != 4 {
		t.Errorf("visible = %+v", c.opts.visible)
	}

	d := New(100, 50, WithPixelRatio(-1), WithBarSpacing(0), WithScaleMargins(0.6, 0.6))
	def := defaultOptions()
	if d.opts.pixelRatio != def.pixelRatio || d.opts.barSpacing != def.barSpacing {
		t.Errorf("invalid values should be ignored: %+v", d.opts)
	}
	if d.opts.marginTop != def.marginTop {
		t.Errorf("overlapping margins should be ignored: %+v", d.opts)
	}
}

func TestBitmapSize(t *testing.T) {
	c := New(101, 50, WithPixelRatio(1.5))
	if got := c.BitmapSize(); got != (ggseries.Size{Width: 152, Height: 75}) {
		t.Errorf("BitmapSize() = %+v, want 152x75", got)
	}
}

func TestVisibleRangeFitsLatestBars(t *testing.T) {
	ribbon := series.NewRibbon()
	pts := make([][2]float64, 30)
	c := New(100, 50, WithBarSpacing(10))
	c.Add(NewSeries("r", ribbon, ribbonPoints(pts...), ribbon.DefaultOptions()))

	if got := c.VisibleRange(); got != (ggseries.VisibleRange{From: 20, To: 30}) {
		t.Errorf("VisibleRange() = %+v, want 20..30", got)
	}

	c = New(1000, 50, WithBarSpacing(10))
	c.Add(NewSeries("r", ribbon, ribbonPoints(pts...), ribbon.DefaultOptions()))
	if got := c.VisibleRange(); got != (ggseries.VisibleRange{From: 0, To: 30}) {
		t.Errorf("VisibleRange() = %+v, want 0..30", got)
	}
}

func TestAutoscaleSkipsWhitespaceAndOffscreenBars(t *testing.T) {
	nan := math.NaN()
	ribbon := series.NewRibbon()
	points := ribbonPoints(
		[2]float64{1000, 2000}, // outside the window
		[2]float64{10, 20},
		[2]float64{nan, nan},
		[2]float64{5, 15},
	)
	c := New(100, 100, WithVisibleRange(1, 4), WithScaleMargins(0, 0))
	c.Add(NewSeries("r", ribbon, points, ribbon.DefaultOptions()))

	s := c.PriceScale()
	if s.Low != 5 || s.High != 20 {
		t.Errorf("scale = %v..%v, want 5..20", s.Low, s.High)
	}
	if y, ok := s.Coordinate(20); !ok || y != 0 {
		t.Errorf("Coordinate(20) = %v, %v, want 0", y, ok)
	}
	if y, ok := s.Coordinate(5); !ok || y != 100 {
		t.Errorf("Coordinate(5) = %v, %v, want 100", y, ok)
	}
}

func TestAutoscaleIgnoresSignal(t *testing.T) {
	signal := series.NewSignal()
	c := New(100, 100)
	c.Add(NewSeries("s", signal, []series.SignalPoint{{Value: 1}, {Value: 0}}, signal.DefaultOptions()))

	s := c.PriceScale()
	if s.Valid() {
		t.Errorf("signal-only chart produced a price scale %+v", s)
	}
	if _, ok := s.Coordinate(1); ok {
		t.Error("invalid scale mapped a price")
	}
}

func TestPriceScaleFlatRange(t *testing.T) {
	ribbon := series.NewRibbon()
	c := New(100, 100)
	c.Add(NewSeries("r", ribbon, ribbonPoints([2]float64{50, 50}), ribbon.DefaultOptions()))

	s := c.PriceScale()
	if !s.Valid() || s.Low >= 50 || s.High <= 50 {
		t.Errorf("flat range not widened: %+v", s)
	}
}

func TestRecord(t *testing.T) {
	ribbon := series.NewRibbon()
	signal := series.NewSignal()
	c := New(100, 50, WithPixelRatio(2), WithBarSpacing(10), WithBackground("#131722"))
	c.Add(
		NewSeries("signal", signal, []series.SignalPoint{{Value: 1}, {Value: 1}, {Value: 0}}, signal.DefaultOptions()),
		NewSeries("ribbon", ribbon, ribbonPoints([2]float64{10, 5}, [2]float64{12, 6}, [2]float64{11, 7}), ribbon.DefaultOptions()),
	)

	rec := c.Record()
	if rec.Width() != 200 || rec.Height() != 100 {
		t.Errorf("recording size = %dx%d, want 200x100", rec.Width(), rec.Height())
	}

	ops := rec.Ops()
	if len(ops) != 5 {
		t.Fatalf("got %d ops, want 5 (background, signal band, ribbon fill, 2 lines)", len(ops))
	}
	if ops[0].Type != recording.CmdFillRect || ops[0].Color() != "#131722" {
		t.Errorf("ops[0] = %v %q, want background rect", ops[0].Type, ops[0].Color())
	}
	if ops[0].Rect != (ggseries.Rect{Width: 200, Height: 100}) {
		t.Errorf("background rect = %+v", ops[0].Rect)
	}
	// Two merged signal bars: media x 0..20, bitmap 0..40.
	if ops[1].Type != recording.CmdFillRect || ops[1].Rect != (ggseries.Rect{Width: 40, Height: 100}) {
		t.Errorf("signal rect = %v %+v", ops[1].Type, ops[1].Rect)
	}
	if ops[2].Type != recording.CmdFillPath {
		t.Errorf("ops[2] = %v, want ribbon fill", ops[2].Type)
	}

	if got := rec.Count(recording.CmdSave); got != 2 {
		t.Errorf("saves = %d, want one per series", got)
	}
	if got := rec.Count(recording.CmdRestore); got != 2 {
		t.Errorf("restores = %d, want one per series", got)
	}
}

func TestBarPlacement(t *testing.T) {
	ribbon := series.NewRibbon()
	opts := ribbon.DefaultOptions()
	opts.Fill.Visible = false
	opts.Line2.Visible = false

	c := New(100, 100, WithBarSpacing(10), WithVisibleRange(2, 4), WithScaleMargins(0, 0))
	c.Add(NewSeries("r", ribbon, ribbonPoints(
		[2]float64{1, 0}, [2]float64{1, 0}, [2]float64{10, 0}, [2]float64{20, 0},
	), opts))

	ops := c.Record().Ops()
	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(ops))
	}
	elems := ops[0].Path.Elements()
	if len(elems) != 2 {
		t.Fatalf("line has %d elements, want 2", len(elems))
	}
	// Bar 2 is the first visible bar, centered half a spacing from the left
	// edge; the scale spans 0..20 over the window.
	move, ok := elems[0].(gg.MoveTo)
	if !ok || move.Point != (gg.Point{X: 5, Y: 50}) {
		t.Errorf("first point = %v, want MoveTo (5, 50)", elems[0])
	}
	line, ok := elems[1].(gg.LineTo)
	if !ok || line.Point != (gg.Point{X: 15, Y: 0}) {
		t.Errorf("second point = %v, want LineTo (15, 0)", elems[1])
	}
}

func TestSeriesOfDifferentLengths(t *testing.T) {
	band := series.NewBand()
	bands := func(n int, base float64) []series.BandPoint {
		points := make([]series.BandPoint, n)
		for i := range points {
			v := base + float64(i)
			points[i] = series.BandPoint{Time: int64(i), Upper: v + 1, Middle: v, Lower: v - 1}
		}
		return points
	}

	tests := []struct {
		name string
		opts []Option
	}{
		{"fixed window past the short series", []Option{WithVisibleRange(5, 10)}},
		{"latest bars past the short series", []Option{WithBarSpacing(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(30, 100, append(tt.opts, WithScaleMargins(0, 0))...)
			c.Add(
				NewSeries("long", band, bands(10, 100), band.DefaultOptions()),
				NewSeries("short", band, bands(3, 0), band.DefaultOptions()),
			)

			// Only the long series has bars in the window.
			s := c.PriceScale()
			if !s.Valid() || s.Low < 100 {
				t.Errorf("scale = %v..%v, want the long series only", s.Low, s.High)
			}

			rec := c.Record()
			if got := rec.Count(recording.CmdSave); got != 2 {
				t.Errorf("saves = %d, want 2", got)
			}
			if got := len(rec.Ops()); got != 4 {
				t.Errorf("got %d ops, want 4 from the long series", got)
			}
		})
	}
}
