package ggseries

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggseries/colors"
)

// FillPoint is one bar of a fill area between two boundaries, in bitmap
// coordinates.
type FillPoint struct {
	X           float64
	Top, Bottom float64
	// OK is false when either boundary is unplottable or the fill is hidden.
	OK    bool
	Color string
	// Group is the run key passed to Batch (the trend direction for trend
	// fills, zero otherwise).
	Group int
}

// areaPath walks the upper boundary left to right, then the lower boundary
// right to left, and closes the polygon.
func areaPath(points []FillPoint, start, end int) *gg.Path {
	path := gg.NewPath()
	path.MoveTo(points[start].X, points[start].Top)
	for i := start + 1; i <= end; i++ {
		path.LineTo(points[i].X, points[i].Top)
	}
	for i := end; i >= start; i-- {
		path.LineTo(points[i].X, points[i].Bottom)
	}
	path.Close()
	return path
}

// fillItems builds batch input for fill points. Transparent colors are gaps.
func fillItems(points []FillPoint) []BatchItem {
	items := make([]BatchItem, len(points))
	for i, p := range points {
		items[i] = BatchItem{
			Style: Style{Color: p.Color},
			Group: p.Group,
			Gap:   !p.OK || colors.IsTransparent(p.Color),
		}
	}
	return items
}

// DrawFill fills the area between the boundaries with one FillPath per run of
// equal color and group. Joined runs start at the previous bar so adjacent
// runs share an edge instead of leaving a hole. It returns the number of
// fill calls issued.
func DrawFill(canvas Canvas, points []FillPoint) int {
	calls := 0
	for _, run := range Batch(fillItems(points)) {
		start := run.Start
		if run.Joined {
			start--
		}
		canvas.FillPath(areaPath(points, start, run.End), SolidBrush{Color: run.Style.Color})
		calls++
	}
	return calls
}

// DrawGradientFill fills the area between the boundaries with one linear
// gradient per contiguous run of plottable bars, one color stop per bar.
// Colors do not split runs; only gaps do. A single-bar run is filled with its
// solid color. It returns the number of fill calls issued.
func DrawGradientFill(canvas Canvas, points []FillPoint) int {
	items := make([]BatchItem, len(points))
	for i, p := range points {
		items[i] = BatchItem{Gap: !p.OK}
	}

	calls := 0
	for _, run := range Batch(items) {
		path := areaPath(points, run.Start, run.End)
		if run.Len() == 1 {
			p := points[run.Start]
			if !colors.IsTransparent(p.Color) {
				canvas.FillPath(path, SolidBrush{Color: p.Color})
				calls++
			}
			continue
		}

		x0, x1 := points[run.Start].X, points[run.End].X
		span := x1 - x0
		grad := NewLinearGradientBrush(x0, 0, x1, 0)
		for i := run.Start; i <= run.End; i++ {
			offset := 0.0
			if span > 0 {
				offset = clampUnit((points[i].X - x0) / span)
			}
			grad.AddColorStop(offset, points[i].Color)
		}
		canvas.FillPath(path, grad)
		calls++
	}
	return calls
}

// BandRect is one vertical full-height band of a signal series.
type BandRect struct {
	Left, Right float64
	OK          bool
	Color       string
}

// DrawBands fills vertical bands spanning the whole bitmap height, merging
// consecutive bands of the same color into one rectangle. Transparent bands
// issue no call. It returns the number of fill calls issued.
func DrawBands(canvas Canvas, height float64, bands []BandRect) int {
	items := make([]BatchItem, len(bands))
	for i, b := range bands {
		items[i] = BatchItem{
			Style: Style{Color: b.Color},
			Gap:   !b.OK || colors.IsTransparent(b.Color),
		}
	}

	calls := 0
	for _, run := range Batch(items) {
		left := math.Round(bands[run.Start].Left)
		right := math.Round(bands[run.End].Right)
		if right <= left {
			right = left + 1
		}
		canvas.FillRect(Rect{X: left, Y: 0, Width: right - left, Height: height}, SolidBrush{Color: run.Style.Color})
		calls++
	}
	return calls
}

func clampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
