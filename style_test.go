package ggseries

import (
	"math"
	"testing"
)

func TestResolveLine(t *testing.T) {
	global := LineOptions{Color: "#2962FF", Width: 2, Style: LineStyleDashed, Visible: true}
	dotted := LineStyleDotted
	hidden := false

	tests := []struct {
		name     string
		override StyleOverride
		want     LineOptions
	}{
		{"empty override", StyleOverride{}, global},
		{"color only", StyleOverride{Color: "#FF0000"},
			LineOptions{Color: "#FF0000", Width: 2, Style: LineStyleDashed, Visible: true}},
		{"width only", StyleOverride{Width: 4},
			LineOptions{Color: "#2962FF", Width: 4, Style: LineStyleDashed, Visible: true}},
		{"non-positive width ignored", StyleOverride{Width: -1}, global},
		{"style only", StyleOverride{Style: &dotted},
			LineOptions{Color: "#2962FF", Width: 2, Style: LineStyleDotted, Visible: true}},
		{"hidden", StyleOverride{Visible: &hidden},
			LineOptions{Color: "#2962FF", Width: 2, Style: LineStyleDashed, Visible: false}},
		{"everything", StyleOverride{Color: "#000", Width: 1, Style: &dotted, Visible: &hidden},
			LineOptions{Color: "#000", Width: 1, Style: LineStyleDotted, Visible: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLine(global, tt.override); got != tt.want {
				t.Errorf("ResolveLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveFill(t *testing.T) {
	global := FillOptions{Color: "rgba(0, 0, 255, 0.2)", Visible: true}
	shown := true
	hidden := false

	if got := ResolveFill(global, StyleOverride{Width: 5}); got != global {
		t.Errorf("width override changed fill: %+v", got)
	}
	if got := ResolveFill(global, StyleOverride{Color: "#FFF"}); got.Color != "#FFF" || !got.Visible {
		t.Errorf("color override = %+v", got)
	}
	if got := ResolveFill(global, StyleOverride{Visible: &hidden}); got.Visible {
		t.Error("visible override ignored")
	}
	if got := ResolveFill(FillOptions{}, StyleOverride{Visible: &shown}); !got.Visible {
		t.Error("visible override cannot re-enable a hidden fill")
	}
}

func TestRunStyle(t *testing.T) {
	got := LineOptions{Color: "#ABC", Width: 3, Style: LineStyleSparseDotted, Visible: true}.RunStyle()
	want := Style{Color: "#ABC", Width: 3, Line: LineStyleSparseDotted}
	if got != want {
		t.Errorf("RunStyle() = %+v, want %+v", got, want)
	}
}

func TestLineStyleDashPattern(t *testing.T) {
	tests := []struct {
		style LineStyle
		want  []float64
	}{
		{LineStyleSolid, []float64{}},
		{LineStyleDotted, []float64{1, 1}},
		{LineStyleDashed, []float64{4, 2}},
		{LineStyleLargeDashed, []float64{8, 4}},
		{LineStyleSparseDotted, []float64{1, 4}},
		{LineStyle(42), []float64{}},
	}
	for _, tt := range tests {
		got := tt.style.DashPattern()
		if got == nil || len(got) != len(tt.want) {
			t.Errorf("%v.DashPattern() = %v, want %v", tt.style, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%v.DashPattern() = %v, want %v", tt.style, got, tt.want)
				break
			}
		}
	}
}

func TestLineStyleText(t *testing.T) {
	for _, s := range []LineStyle{LineStyleSolid, LineStyleDotted, LineStyleDashed, LineStyleLargeDashed, LineStyleSparseDotted} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back LineStyle
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %v -> %q -> %v", s, text, back)
		}
	}

	if s, err := ParseLineStyle("LARGEDASHED"); err != nil || s != LineStyleLargeDashed {
		t.Errorf("ParseLineStyle(LARGEDASHED) = %v, %v", s, err)
	}
	if s, err := ParseLineStyle("2"); err != nil || s != LineStyleDashed {
		t.Errorf("ParseLineStyle(2) = %v, %v", s, err)
	}
	if _, err := ParseLineStyle("7"); err == nil {
		t.Error("ParseLineStyle(7) should fail")
	}
	if _, err := ParseLineStyle("wavy"); err == nil {
		t.Error("ParseLineStyle(wavy) should fail")
	}
	if got := LineStyle(9).String(); got != "LineStyle(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestConverter(t *testing.T) {
	scope := RenderingScope{HorizontalPixelRatio: 2, VerticalPixelRatio: 3}
	conv := NewConverter(scope, func(p float64) (float64, bool) {
		switch {
		case p < 0:
			return 0, false
		case p == 99:
			return math.Inf(1), true
		}
		return 100 - p, true
	})

	if got := conv.X(10); got != 20 {
		t.Errorf("X(10) = %v, want 20", got)
	}
	if got := conv.Span(5); got != 10 {
		t.Errorf("Span(5) = %v, want 10", got)
	}
	if got := conv.LineWidth(2); got != 6 {
		t.Errorf("LineWidth(2) = %v, want 6", got)
	}
	if y, ok := conv.Y(40); !ok || y != 180 {
		t.Errorf("Y(40) = %v, %v, want 180, true", y, ok)
	}
	for _, p := range []float64{-1, 99, math.NaN()} {
		if _, ok := conv.Y(p); ok {
			t.Errorf("Y(%v) ok = true, want false", p)
		}
	}

	if _, ok := NewConverter(scope, nil).Y(1); ok {
		t.Error("nil price converter should make every price unplottable")
	}
}

func TestWhitespace(t *testing.T) {
	if !AllMissing(Missing, math.NaN()) {
		t.Error("AllMissing(NaN, NaN) = false")
	}
	if AllMissing(Missing, 0) {
		t.Error("AllMissing(NaN, 0) = true")
	}
	if !AllMissing() {
		t.Error("AllMissing() = false, want true for no channels")
	}

	got := Present(Missing, 1, Missing, 2)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Present() = %v, want [1 2]", got)
	}
	if got := Present(Missing); got == nil || len(got) != 0 {
		t.Errorf("Present(NaN) = %#v, want empty non-nil", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		in   VisibleRange
		n    int
		want VisibleRange
	}{
		{VisibleRange{0, 10}, 5, VisibleRange{0, 5}},
		{VisibleRange{-3, 2}, 5, VisibleRange{0, 2}},
		{VisibleRange{7, 9}, 5, VisibleRange{5, 5}},
		{VisibleRange{4, 1}, 5, VisibleRange{4, 4}},
		{VisibleRange{2, 4}, 0, VisibleRange{0, 0}},
	}
	for _, tt := range tests {
		got := tt.in.Clamp(tt.n)
		if got != tt.want {
			t.Errorf("%+v.Clamp(%d) = %+v, want %+v", tt.in, tt.n, got, tt.want)
		}
		if got.Len() != tt.want.To-tt.want.From {
			t.Errorf("%+v.Len() = %d", got, got.Len())
		}
	}
}

func TestNewTarget(t *testing.T) {
	canvas := &fakeCanvas{}
	scope := RenderingScope{Canvas: canvas, HorizontalPixelRatio: 2, VerticalPixelRatio: 2, BitmapSize: Size{Width: 20, Height: 10}}

	called := false
	NewTarget(scope).UseBitmapCoordinateSpace(func(got RenderingScope) {
		called = true
		if got.Canvas != canvas || got.BitmapSize != scope.BitmapSize || got.HorizontalPixelRatio != 2 {
			t.Errorf("scope = %+v, want %+v", got, scope)
		}
	})
	if !called {
		t.Error("callback not invoked")
	}
}

func TestLinearGradientBrush(t *testing.T) {
	g := NewLinearGradientBrush(0, 1, 10, 1).AddColorStop(0, "#000").AddColorStop(1, "#FFF")
	if g.Start.X != 0 || g.End.X != 10 || g.Start.Y != 1 {
		t.Errorf("gradient endpoints = %v..%v", g.Start, g.End)
	}
	if len(g.Stops) != 2 || g.Stops[1] != (ColorStop{Offset: 1, Color: "#FFF"}) {
		t.Errorf("stops = %+v", g.Stops)
	}
}
