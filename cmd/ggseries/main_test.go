package main

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markcheno/go-talib"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/host"
	"github.com/gogpu/ggseries/series"
)

const testScene = "../../scene/testdata/indicators.yaml"

func smallChart() *host.Chart {
	ribbon := series.NewRibbon()
	c := host.New(40, 20, host.WithBackground("#FFFFFF"))
	c.Add(host.NewSeries("r", ribbon, []series.RibbonPoint{
		{Time: 1, Line1: 2, Line2: 1},
		{Time: 2, Line1: 3, Line2: 1},
	}, ribbon.DefaultOptions()))
	return c
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format, out, want string
	}{
		{"", "chart.png", "png"},
		{"", "chart.SVG", "svg"},
		{"", "-", "png"},
		{"SVG", "chart.png", "svg"},
		{"png", "chart.svg", "png"},
	}
	for _, tt := range tests {
		if got := outputFormat(tt.format, tt.out); got != tt.want {
			t.Errorf("outputFormat(%q, %q) = %q, want %q", tt.format, tt.out, got, tt.want)
		}
	}
}

func TestRenderChartPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	if err := renderChart(smallChart(), out, "png", nil); err != nil {
		t.Fatalf("renderChart: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("image bounds = %v, want 40x20", b)
	}
}

func TestRenderChartSVGToStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := renderChart(smallChart(), "-", "svg", &buf); err != nil {
		t.Fatalf("renderChart: %v", err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Errorf("stdout is not an SVG document: %.60q", s)
	}
}

func TestRenderChartUnknownFormat(t *testing.T) {
	if err := renderChart(smallChart(), "chart.gif", "gif", nil); err == nil {
		t.Error("renderChart with an unknown format should fail")
	}
}

func TestBackendsRegistered(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"backends"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("backends: %v", err)
	}
	if got := buf.String(); got != "png\nsvg\n" {
		t.Errorf("backends output = %q, want png and svg", got)
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scene.svg")
	rootCmd.SetArgs([]string{"render", testScene, "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// 200x100 at pixel ratio 2.
	if !bytes.Contains(data, []byte(`viewBox="0 0 400 200"`)) {
		t.Errorf("unexpected SVG header: %.120q", data)
	}
}

func TestRenderCommandMissingScene(t *testing.T) {
	rootCmd.SetArgs([]string{"render", "testdata/none.yaml", "--out", filepath.Join(t.TempDir(), "x.png")})
	if err := rootCmd.Execute(); err == nil {
		t.Error("render of a missing scene should fail")
	}
}

func TestDemoChart(t *testing.T) {
	chart := demoChart(320, 160, 1, 80)
	if got := len(chart.Series()); got != 5 {
		t.Fatalf("demo has %d series, want 5", got)
	}
	if got := chart.VisibleRange(); got.From != 0 || got.To != 80 {
		t.Errorf("VisibleRange() = %+v, want every bar", got)
	}
	if !chart.PriceScale().Valid() {
		t.Error("demo price scale is not valid")
	}
	if got := len(chart.Record().Ops()); got == 0 {
		t.Error("demo recorded no drawing")
	}
}

func TestWarm(t *testing.T) {
	values := []float64{0, 0, 3, 4}
	tests := []struct {
		i    int
		want float64
	}{
		{0, math.NaN()},
		{1, math.NaN()},
		{2, 3},
		{3, 4},
		{4, math.NaN()},
	}
	for _, tt := range tests {
		got := warm(values, tt.i, 3)
		if math.IsNaN(tt.want) {
			if !math.IsNaN(got) {
				t.Errorf("warm(%d) = %v, want missing", tt.i, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("warm(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestDemoLookbackIsWhitespace(t *testing.T) {
	closes := syntheticCloses(40)
	upper, mid, lower := talib.BBands(closes, bbPeriod, 2, 2, talib.SMA)
	if upper[bbPeriod-2] != 0 || upper[bbPeriod-1] == 0 {
		t.Fatalf("talib lookback changed: upper[%d]=%v upper[%d]=%v", bbPeriod-2, upper[bbPeriod-2], bbPeriod-1, upper[bbPeriod-1])
	}
	if !(upper[30] > mid[30] && mid[30] > lower[30]) {
		t.Errorf("bands out of order at 30: %v %v %v", upper[30], mid[30], lower[30])
	}

	// Bars inside the lookback are whitespace, not zero prices.
	chart := demoChart(200, 100, 1, 40)
	for _, s := range chart.Series() {
		if s.Title() != "BB(20, 2)" {
			continue
		}
		if _, _, ok := s.PriceRange(0, bbPeriod-1); ok {
			t.Error("band lookback bars contribute to autoscale")
		}
		if _, _, ok := s.PriceRange(bbPeriod-1, bbPeriod); !ok {
			t.Error("first full band bar does not contribute to autoscale")
		}
	}
}

func TestVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if got, want := buf.String(), "ggseries version "+ggseries.Version+"\n"; got != want {
		t.Errorf("--version output = %q, want %q", got, want)
	}
}
