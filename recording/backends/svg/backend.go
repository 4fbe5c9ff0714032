// Package svg provides an SVG backend for the recording system.
// It renders recordings through the go-chart vector renderer.
//
// The go-chart renderer works on integer coordinates and has no gradient
// paint, so coordinates are rounded and linear gradients are painted with
// the average of their stops. Cubic segments are flattened to their end
// point.
//
// # Example
//
//	import _ "github.com/gogpu/ggseries/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.WriterBackend).WriteTo(w)
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/colors"
	"github.com/gogpu/ggseries/recording"
)

// Name is the registry name of this backend.
const Name = "svg"

func init() {
	recording.Register(Name, func() recording.Backend {
		return NewBackend()
	})
}

var (
	errNotStarted  = errors.New("svg: backend not started")
	errNotFinished = errors.New("svg: document not finished, call End first")
)

// Backend renders recordings to an SVG document.
type Backend struct {
	r      chart.Renderer
	out    []byte
	width  int
	height int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("svg: width and height must be positive")
	}
	r, err := chart.SVG(width, height)
	if err != nil {
		return fmt.Errorf("svg: create renderer: %w", err)
	}
	b.r = r
	b.out = nil
	b.width = width
	b.height = height
	return nil
}

// End closes the document. Drawing after End is ignored.
func (b *Backend) End() error {
	if b.r == nil {
		return errNotStarted
	}
	var buf bytes.Buffer
	if err := b.r.Save(&buf); err != nil {
		return fmt.Errorf("svg: finish document: %w", err)
	}
	b.out = buf.Bytes()
	b.r = nil
	return nil
}

// Save is a no-op; every draw call carries its full style.
func (b *Backend) Save() {}

// Restore is a no-op.
func (b *Backend) Restore() {}

// FillPath fills the given path with the brush.
func (b *Backend) FillPath(path *gg.Path, brush ggseries.Brush) {
	if b.r == nil || path == nil {
		return
	}
	b.r.ResetStyle()
	b.r.SetFillColor(brushColor(brush))
	b.tracePath(path)
	b.r.Fill()
}

// StrokePath strokes the given path with the brush and stroke style.
func (b *Backend) StrokePath(path *gg.Path, brush ggseries.Brush, stroke ggseries.Stroke) {
	if b.r == nil || path == nil {
		return
	}
	b.r.ResetStyle()
	b.r.SetStrokeColor(brushColor(brush))
	b.r.SetStrokeWidth(math.Max(1, stroke.Width))
	if len(stroke.Dash) > 0 {
		b.r.SetStrokeDashArray(stroke.Dash)
	}
	b.tracePath(path)
	b.r.Stroke()
}

// FillRect fills a rectangle with the brush.
func (b *Backend) FillRect(rect ggseries.Rect, brush ggseries.Brush) {
	if b.r == nil {
		return
	}
	x0, y0 := px(rect.X), px(rect.Y)
	x1, y1 := px(rect.X+rect.Width), px(rect.Y+rect.Height)

	b.r.ResetStyle()
	b.r.SetFillColor(brushColor(brush))
	b.r.MoveTo(x0, y0)
	b.r.LineTo(x1, y0)
	b.r.LineTo(x1, y1)
	b.r.LineTo(x0, y1)
	b.r.Close()
	b.r.Fill()
}

// WriteTo writes the finished SVG document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		if b.r == nil {
			return 0, errNotStarted
		}
		return 0, errNotFinished
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile writes the finished SVG document to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Width returns the document width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the document height.
func (b *Backend) Height() int {
	return b.height
}

func (b *Backend) tracePath(path *gg.Path) {
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.r.MoveTo(px(e.Point.X), px(e.Point.Y))
		case gg.LineTo:
			b.r.LineTo(px(e.Point.X), px(e.Point.Y))
		case gg.QuadTo:
			b.r.QuadCurveTo(px(e.Control.X), px(e.Control.Y), px(e.Point.X), px(e.Point.Y))
		case gg.CubicTo:
			b.r.LineTo(px(e.Point.X), px(e.Point.Y))
		case gg.Close:
			b.r.Close()
		}
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

// brushColor reduces a brush to the single color go-chart can paint.
func brushColor(brush ggseries.Brush) drawing.Color {
	switch br := brush.(type) {
	case ggseries.SolidBrush:
		return toDrawing(resolve(br.Color))
	case *ggseries.LinearGradientBrush:
		if len(br.Stops) == 0 {
			return drawing.ColorTransparent
		}
		var r, g, bl, a float64
		for _, stop := range br.Stops {
			c := resolve(stop.Color)
			r += float64(c.R)
			g += float64(c.G)
			bl += float64(c.B)
			a += c.A
		}
		n := float64(len(br.Stops))
		return toDrawing(colors.RGBA{
			R: uint8(math.Round(r / n)),
			G: uint8(math.Round(g / n)),
			B: uint8(math.Round(bl / n)),
			A: a / n,
		})
	default:
		return drawing.ColorBlack
	}
}

func resolve(color string) colors.RGBA {
	c, ok := colors.Resolve(color)
	if !ok {
		ggseries.Logger().Warn("svg: unparseable color, using fallback",
			"color", color, "fallback", colors.Fallback)
	}
	return c
}

// toDrawing converts to go-chart's color. A fully transparent color maps to
// the zero value, which go-chart writes as "none".
func toDrawing(c colors.RGBA) drawing.Color {
	if c.A <= 0 {
		return drawing.Color{}
	}
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}
