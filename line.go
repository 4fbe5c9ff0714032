package ggseries

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggseries/colors"
)

// LinePoint is one bar of a line channel after coordinate conversion and
// style resolution.
type LinePoint struct {
	X, Y float64
	// OK is false when the channel has no plottable value for this bar.
	OK      bool
	Options LineOptions
}

// DrawLine strokes a line channel with one path per style run.
//
// Hidden, unplottable and transparent points are gaps. A run that directly
// follows another run (a style change without a gap) starts at the previous
// run's last point so the line stays continuous. The stroke width is the
// resolved width scaled by conv.
func DrawLine(canvas Canvas, conv Converter, points []LinePoint) int {
	items := make([]BatchItem, len(points))
	for i, p := range points {
		items[i] = BatchItem{
			Style: p.Options.RunStyle(),
			Gap:   !p.OK || !p.Options.Visible || colors.IsTransparent(p.Options.Color),
		}
	}

	calls := 0
	for _, run := range Batch(items) {
		start := run.Start
		if run.Joined {
			start--
		}
		path := gg.NewPath()
		path.MoveTo(points[start].X, points[start].Y)
		if start == run.End {
			// Zero-length segment so that round caps still render a dot.
			path.LineTo(points[start].X, points[start].Y)
		}
		for i := start + 1; i <= run.End; i++ {
			path.LineTo(points[i].X, points[i].Y)
		}
		canvas.StrokePath(path, SolidBrush{Color: run.Style.Color}, Stroke{
			Width: conv.LineWidth(run.Style.Width),
			Cap:   gg.LineCapRound,
			Join:  gg.LineJoinRound,
			Dash:  run.Style.Line.DashPattern(),
		})
		calls++
	}
	return calls
}
