package ggseries

import "github.com/gogpu/gg"

// Canvas is the subset of a 2D drawing context the series renderers use.
//
// Paths are in bitmap (device pixel) coordinates. Implementations must not
// retain the path after the call returns; renderers reuse nothing, but a
// recording canvas clones paths anyway.
//
// Implementations in this module:
//   - recording.Recorder captures calls as commands for inspection/playback
//   - recording/backends/raster draws with gg.Context and encodes PNG
//   - recording/backends/svg draws with go-chart's SVG renderer
type Canvas interface {
	// Save pushes the current drawing state.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// FillPath fills path with brush using the non-zero rule.
	FillPath(path *gg.Path, brush Brush)

	// StrokePath strokes path with brush and the given stroke style.
	StrokePath(path *gg.Path, brush Brush, stroke Stroke)

	// FillRect fills an axis-aligned rectangle.
	FillRect(rect Rect, brush Brush)
}

// Brush describes fill or stroke paint. Colors are always concrete CSS color
// strings; backends parse them with the colors package.
// This is a sealed interface - only types in this package implement it.
type Brush interface {
	brushMarker()
}

// SolidBrush paints with a single color.
type SolidBrush struct {
	Color string
}

func (SolidBrush) brushMarker() {}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64 // position in [0, 1]
	Color  string
}

// LinearGradientBrush is a horizontal or arbitrary linear gradient between
// two points, equivalent to CanvasRenderingContext2D.createLinearGradient.
type LinearGradientBrush struct {
	Start gg.Point
	End   gg.Point
	Stops []ColorStop
}

func (*LinearGradientBrush) brushMarker() {}

// NewLinearGradientBrush creates a gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: gg.Point{X: x0, Y: y0},
		End:   gg.Point{X: x1, Y: y1},
	}
}

// AddColorStop appends a stop and returns the gradient for chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, color string) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: color})
	return g
}

// Stroke is the line style applied by StrokePath.
type Stroke struct {
	Width float64
	Cap   gg.LineCap
	Join  gg.LineJoin
	// Dash holds alternating dash/gap lengths; empty means solid.
	Dash []float64
}

// Rect is an axis-aligned rectangle in bitmap coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Size is a bitmap size in device pixels.
type Size struct {
	Width, Height int
}
