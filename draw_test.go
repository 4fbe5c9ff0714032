package ggseries

import (
	"testing"

	"github.com/gogpu/gg"
)

// call is one canvas call captured by fakeCanvas.
type call struct {
	op     string
	path   *gg.Path
	brush  Brush
	stroke Stroke
	rect   Rect
}

// fakeCanvas records calls. The recording package is the real recorder; it
// imports this package, so tests here use a local one.
type fakeCanvas struct {
	calls []call
}

func (c *fakeCanvas) Save()    { c.calls = append(c.calls, call{op: "save"}) }
func (c *fakeCanvas) Restore() { c.calls = append(c.calls, call{op: "restore"}) }

func (c *fakeCanvas) FillPath(path *gg.Path, brush Brush) {
	c.calls = append(c.calls, call{op: "fill", path: path, brush: brush})
}

func (c *fakeCanvas) StrokePath(path *gg.Path, brush Brush, stroke Stroke) {
	c.calls = append(c.calls, call{op: "stroke", path: path, brush: brush, stroke: stroke})
}

func (c *fakeCanvas) FillRect(rect Rect, brush Brush) {
	c.calls = append(c.calls, call{op: "rect", rect: rect, brush: brush})
}

func color(b Brush) string {
	if s, ok := b.(SolidBrush); ok {
		return s.Color
	}
	return ""
}

func points(p *gg.Path) []gg.Point {
	var out []gg.Point
	for _, e := range p.Elements() {
		switch el := e.(type) {
		case gg.MoveTo:
			out = append(out, el.Point)
		case gg.LineTo:
			out = append(out, el.Point)
		}
	}
	return out
}

func identityConverter(ratio float64) Converter {
	return NewConverter(RenderingScope{HorizontalPixelRatio: ratio, VerticalPixelRatio: ratio},
		func(p float64) (float64, bool) { return p, true })
}

func solidLine(n int, opts LineOptions) []LinePoint {
	pts := make([]LinePoint, n)
	for i := range pts {
		pts[i] = LinePoint{X: float64(i * 10), Y: float64(i), OK: true, Options: opts}
	}
	return pts
}

func TestDrawLineOneStrokePerRun(t *testing.T) {
	opts := LineOptions{Color: "#2962FF", Width: 2, Style: LineStyleDotted, Visible: true}
	canvas := &fakeCanvas{}

	if n := DrawLine(canvas, identityConverter(1.5), solidLine(50, opts)); n != 1 {
		t.Fatalf("DrawLine() = %d, want 1", n)
	}
	c := canvas.calls[0]
	if c.op != "stroke" || color(c.brush) != "#2962FF" {
		t.Errorf("call = %s %q, want stroke #2962FF", c.op, color(c.brush))
	}
	if c.stroke.Width != 3 {
		t.Errorf("stroke width = %v, want 3", c.stroke.Width)
	}
	if c.stroke.Cap != gg.LineCapRound || c.stroke.Join != gg.LineJoinRound {
		t.Errorf("cap/join = %v/%v, want round", c.stroke.Cap, c.stroke.Join)
	}
	if len(c.stroke.Dash) != 2 || c.stroke.Dash[0] != 1 || c.stroke.Dash[1] != 1 {
		t.Errorf("dash = %v, want [1 1]", c.stroke.Dash)
	}
	if got := len(points(c.path)); got != 50 {
		t.Errorf("path has %d points, want 50", got)
	}
}

func TestDrawLineGapsAndJoins(t *testing.T) {
	base := LineOptions{Color: "#FF0000", Width: 1, Visible: true}
	pts := solidLine(6, base)
	pts[2].OK = false                // unplottable
	pts[4].Options.Color = "#00FF00" // style change, no gap
	pts[5].Options.Color = "#00FF00"

	canvas := &fakeCanvas{}
	if n := DrawLine(canvas, identityConverter(1), pts); n != 3 {
		t.Fatalf("DrawLine() = %d, want 3", n)
	}

	got := [][]gg.Point{points(canvas.calls[0].path), points(canvas.calls[1].path), points(canvas.calls[2].path)}
	want := [][]gg.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 1}},
		// A single point after a gap is a zero-length segment.
		{{X: 30, Y: 3}, {X: 30, Y: 3}},
		// The green run is anchored on the last red point.
		{{X: 30, Y: 3}, {X: 40, Y: 4}, {X: 50, Y: 5}},
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Errorf("run %d points = %v, want %v", i, got[i], want[i])
			continue
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("run %d points = %v, want %v", i, got[i], want[i])
				break
			}
		}
	}
	if color(canvas.calls[2].brush) != "#00FF00" {
		t.Errorf("third run color = %q, want #00FF00", color(canvas.calls[2].brush))
	}
}

func TestDrawLineSkipsHiddenAndTransparent(t *testing.T) {
	canvas := &fakeCanvas{}
	hidden := solidLine(3, LineOptions{Color: "#FF0000", Width: 1, Visible: false})
	invisible := solidLine(3, LineOptions{Color: "rgba(0, 0, 0, 0)", Width: 1, Visible: true})

	if n := DrawLine(canvas, identityConverter(1), hidden) + DrawLine(canvas, identityConverter(1), invisible); n != 0 {
		t.Errorf("DrawLine() = %d, want 0", n)
	}
	if len(canvas.calls) != 0 {
		t.Errorf("canvas got %d calls, want 0", len(canvas.calls))
	}
}

func TestDrawFillPathShape(t *testing.T) {
	pts := []FillPoint{
		{X: 0, Top: 10, Bottom: 20, OK: true, Color: "#ABCDEF"},
		{X: 10, Top: 12, Bottom: 22, OK: true, Color: "#ABCDEF"},
		{X: 20, Top: 14, Bottom: 24, OK: true, Color: "#ABCDEF"},
	}
	canvas := &fakeCanvas{}
	if n := DrawFill(canvas, pts); n != 1 {
		t.Fatalf("DrawFill() = %d, want 1", n)
	}

	// Upper boundary left to right, then lower boundary right to left.
	want := []gg.Point{{X: 0, Y: 10}, {X: 10, Y: 12}, {X: 20, Y: 14}, {X: 20, Y: 24}, {X: 10, Y: 22}, {X: 0, Y: 20}}
	got := points(canvas.calls[0].path)
	if len(got) != len(want) {
		t.Fatalf("polygon = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("polygon = %v, want %v", got, want)
			break
		}
	}
	elems := canvas.calls[0].path.Elements()
	if _, ok := elems[len(elems)-1].(gg.Close); !ok {
		t.Error("fill path is not closed")
	}
}

func TestDrawFillRuns(t *testing.T) {
	pts := []FillPoint{
		{X: 0, OK: true, Color: "#111111", Group: 1},
		{X: 1, OK: true, Color: "#111111", Group: 1},
		{X: 2, OK: true, Color: "#111111", Group: -1},
		{X: 3, OK: false, Color: "#111111", Group: -1},
		{X: 4, OK: true, Color: "transparent", Group: -1},
		{X: 5, OK: true, Color: "#222222", Group: -1},
	}
	canvas := &fakeCanvas{}
	if n := DrawFill(canvas, pts); n != 3 {
		t.Fatalf("DrawFill() = %d, want 3", n)
	}
	// The group change run is anchored on the previous bar.
	if got := points(canvas.calls[1].path); got[0].X != 1 {
		t.Errorf("second run starts at x=%v, want 1", got[0].X)
	}
	if color(canvas.calls[2].brush) != "#222222" {
		t.Errorf("third run color = %q", color(canvas.calls[2].brush))
	}
}

func TestDrawGradientFill(t *testing.T) {
	pts := []FillPoint{
		{X: 10, OK: true, Color: "#000000"},
		{X: 20, OK: true, Color: "#808080"},
		{X: 50, OK: true, Color: "#FFFFFF"},
		{X: 60, OK: false},
		{X: 70, OK: true, Color: "#FF0000"},
		{X: 80, OK: false},
		{X: 90, OK: true, Color: "transparent"},
	}
	canvas := &fakeCanvas{}
	if n := DrawGradientFill(canvas, pts); n != 2 {
		t.Fatalf("DrawGradientFill() = %d, want 2", n)
	}

	grad, ok := canvas.calls[0].brush.(*LinearGradientBrush)
	if !ok {
		t.Fatalf("first brush = %T, want gradient", canvas.calls[0].brush)
	}
	if grad.Start.X != 10 || grad.End.X != 50 {
		t.Errorf("gradient x = %v..%v, want 10..50", grad.Start.X, grad.End.X)
	}
	wantOffsets := []float64{0, 0.25, 1}
	for i, stop := range grad.Stops {
		if stop.Offset != wantOffsets[i] || stop.Color != pts[i].Color {
			t.Errorf("stop[%d] = %+v, want {%v %s}", i, stop, wantOffsets[i], pts[i].Color)
		}
	}
	if color(canvas.calls[1].brush) != "#FF0000" {
		t.Errorf("single bar brush = %v, want solid #FF0000", canvas.calls[1].brush)
	}
}

func TestDrawBands(t *testing.T) {
	bands := []BandRect{
		{Left: 0.4, Right: 10.4, OK: true, Color: "#FF0000"},
		{Left: 10.4, Right: 20.4, OK: true, Color: "#FF0000"},
		{Left: 20.4, Right: 30.4, OK: true, Color: "#00FF00"},
		{Left: 30.4, Right: 40.4, OK: true, Color: "transparent"},
		{Left: 40.4, Right: 40.4, OK: true, Color: "#0000FF"},
		{Left: 50, Right: 60, OK: false, Color: "#0000FF"},
	}
	canvas := &fakeCanvas{}
	if n := DrawBands(canvas, 300, bands); n != 3 {
		t.Fatalf("DrawBands() = %d, want 3", n)
	}
	want := []Rect{
		{X: 0, Y: 0, Width: 20, Height: 300},
		{X: 20, Y: 0, Width: 10, Height: 300},
		{X: 40, Y: 0, Width: 1, Height: 300},
	}
	for i, w := range want {
		if canvas.calls[i].rect != w {
			t.Errorf("rect[%d] = %+v, want %+v", i, canvas.calls[i].rect, w)
		}
	}
}
