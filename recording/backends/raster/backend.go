// Package raster provides a PNG backend for the recording system.
// It renders recordings to pixel images using gg.Context.
//
// # Supported Features
//
//   - Solid and linear gradient fills and strokes
//   - Stroke styling (width, cap, join, dash patterns)
//   - Rectangle fills
//   - State management (Save/Restore)
//   - PNG output
//
// Brush colors are CSS strings; unparseable ones are painted with
// colors.Fallback and reported at warn level.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/ggseries/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("png")
//	rec.Playback(backend)
//	backend.(recording.WriterBackend).WriteTo(w)
package raster

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
	"github.com/gogpu/ggseries/recording"
)

// Name is the registry name of this backend.
const Name = "png"

func init() {
	recording.Register(Name, func() recording.Backend {
		return NewBackend()
	})
}

// errNotStarted is returned by output methods called before Begin.
var errNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to a pixel image using gg.Context.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("raster: width and height must be positive")
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// Save saves the current graphics state onto a stack.
func (b *Backend) Save() {
	b.ctx.Push()
}

// Restore restores the graphics state from the stack.
func (b *Backend) Restore() {
	b.ctx.Pop()
}

// FillPath fills the given path with the brush.
func (b *Backend) FillPath(path *gg.Path, brush ggseries.Brush) {
	if path == nil {
		return
	}
	b.applyBrush(brush, true)
	b.ctx.SetFillRule(gg.FillRuleNonZero)
	b.setPath(path)
	_ = b.ctx.Fill()
}

// StrokePath strokes the given path with the brush and stroke style.
func (b *Backend) StrokePath(path *gg.Path, brush ggseries.Brush, stroke ggseries.Stroke) {
	if path == nil {
		return
	}
	b.applyBrush(brush, false)
	b.applyStroke(stroke)
	b.setPath(path)
	_ = b.ctx.Stroke()
}

// FillRect fills a rectangle with the brush.
func (b *Backend) FillRect(rect ggseries.Rect, brush ggseries.Brush) {
	b.applyBrush(brush, true)
	b.ctx.ClearPath()
	b.ctx.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	_ = b.ctx.Fill()
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, errNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.ctx.Image())
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return errNotStarted
	}
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// setPath replaces the context path with the elements of path.
func (b *Backend) setPath(path *gg.Path) {
	b.ctx.ClearPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.ctx.ClosePath()
		}
	}
}

// applyBrush applies the series brush to the context.
func (b *Backend) applyBrush(brush ggseries.Brush, fill bool) {
	var ggBrush gg.Brush
	switch br := brush.(type) {
	case ggseries.SolidBrush:
		ggBrush = gg.Solid(resolve(br.Color))

	case *ggseries.LinearGradientBrush:
		grad := gg.NewLinearGradientBrush(br.Start.X, br.Start.Y, br.End.X, br.End.Y)
		for _, stop := range br.Stops {
			grad.AddColorStop(stop.Offset, resolve(stop.Color))
		}
		ggBrush = grad

	default:
		ggBrush = gg.Solid(gg.Black)
	}

	if fill {
		b.ctx.SetFillBrush(ggBrush)
	} else {
		b.ctx.SetStrokeBrush(ggBrush)
	}
}

// applyStroke applies the stroke settings to the context.
func (b *Backend) applyStroke(stroke ggseries.Stroke) {
	b.ctx.SetLineWidth(stroke.Width)
	b.ctx.SetLineCap(stroke.Cap)
	b.ctx.SetLineJoin(stroke.Join)

	if len(stroke.Dash) > 0 {
		b.ctx.SetDash(stroke.Dash...)
	} else {
		b.ctx.ClearDash()
	}
}

// resolve converts a CSS color to gg.RGBA, falling back on parse failure.
func resolve(color string) gg.RGBA {
	c, ok := colors.Resolve(color)
	if !ok {
		ggseries.Logger().Warn("raster: unparseable color, using fallback",
			"color", color, "fallback", colors.Fallback)
	}
	r, g, bl, a := c.Float()
	return gg.RGBA{R: r, G: g, B: bl, A: a}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
