// Package scene loads chart scenes from YAML documents.
//
// A scene describes the chart geometry and a list of series, each with a
// kind, optional options and its data points:
//
//	width: 800
//	height: 400
//	pixelRatio: 2
//	background: "#131722"
//	series:
//	  - kind: band
//	    title: BB(20, 2)
//	    options:
//	      middleLine: {style: dotted}
//	    data:
//	      - {time: 1, upper: 12, middle: 11, lower: 10}
//
// Options are decoded on top of the kind's defaults, so a scene only names
// the fields it changes. Absent or null point channels are missing values.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/host"
	"github.com/gogpu/ggseries/series"
)

// Default chart size in media pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// ErrUnknownKind is returned for a series whose kind is not one of
// series.Kinds.
var ErrUnknownKind = errors.New("unknown series kind")

// Document is a decoded scene.
type Document struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	PixelRatio   float64      `yaml:"pixelRatio"`
	BarSpacing   float64      `yaml:"barSpacing"`
	Background   string       `yaml:"background"`
	VisibleRange *Range       `yaml:"visibleRange"`
	ScaleMargins *Margins     `yaml:"scaleMargins"`
	Series       []SeriesSpec `yaml:"series"`
}

// Range is a half-open window of bar indices.
type Range struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Margins are the price scale margins as fractions of the chart height.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// SeriesSpec is one series entry. Options and Data stay undecoded until
// the kind is known.
type SeriesSpec struct {
	Kind    series.Kind `yaml:"kind"`
	Title   string      `yaml:"title"`
	Options yaml.Node   `yaml:"options"`
	Data    yaml.Node   `yaml:"data"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	ggseries.Logger().Info("scene loaded", "path", path, "series", len(doc.Series))
	return doc, nil
}

// Parse decodes a scene document from r and fills in the default size.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if doc.Width == 0 {
		doc.Width = DefaultWidth
	}
	if doc.Height == 0 {
		doc.Height = DefaultHeight
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks the chart geometry and the series kinds.
func (d *Document) Validate() error {
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("scene: invalid size %dx%d", d.Width, d.Height)
	}
	if d.PixelRatio < 0 {
		return fmt.Errorf("scene: invalid pixelRatio %v", d.PixelRatio)
	}
	if d.BarSpacing < 0 {
		return fmt.Errorf("scene: invalid barSpacing %v", d.BarSpacing)
	}
	for i, s := range d.Series {
		if !knownKind(s.Kind) {
			return fmt.Errorf("scene: series %d: %w %q", i, ErrUnknownKind, s.Kind)
		}
	}
	return nil
}

// Chart builds a host chart with every series of the document.
func (d *Document) Chart() (*host.Chart, error) {
	var opts []host.Option
	if d.PixelRatio > 0 {
		opts = append(opts, host.WithPixelRatio(d.PixelRatio))
	}
	if d.BarSpacing > 0 {
		opts = append(opts, host.WithBarSpacing(d.BarSpacing))
	}
	if d.Background != "" {
		opts = append(opts, host.WithBackground(d.Background))
	}
	if r := d.VisibleRange; r != nil {
		opts = append(opts, host.WithVisibleRange(r.From, r.To))
	}
	if m := d.ScaleMargins; m != nil {
		opts = append(opts, host.WithScaleMargins(m.Top, m.Bottom))
	}

	chart := host.New(d.Width, d.Height, opts...)
	for i := range d.Series {
		s, err := d.Series[i].build()
		if err != nil {
			return nil, fmt.Errorf("scene: series %d (%s): %w", i, d.Series[i].Kind, err)
		}
		chart.Add(s)
	}
	return chart, nil
}

func knownKind(k series.Kind) bool {
	for _, known := range series.Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

func (s *SeriesSpec) build() (host.Series, error) {
	switch s.Kind {
	case series.KindBand:
		return bind[series.BandPoint, series.BandOptions](s, series.NewBand(), rawBand.point)
	case series.KindRibbon:
		return bind[series.RibbonPoint, series.RibbonOptions](s, series.NewRibbon(), rawRibbon.point)
	case series.KindGradientRibbon:
		return bind[series.GradientRibbonPoint, series.GradientRibbonOptions](s, series.NewGradientRibbon(), rawGradientRibbon.point)
	case series.KindTrendFill:
		return bind[series.TrendFillPoint, series.TrendFillOptions](s, series.NewTrendFill(), rawTrendFill.point)
	case series.KindSignal:
		return bind[series.SignalPoint, series.SignalOptions](s, series.NewSignal(), rawSignal.point)
	default:
		return nil, ErrUnknownKind
	}
}

// bind decodes the options onto the plugin defaults and the data into raw
// points, converts them and binds the result to the plugin.
func bind[T, O, R any](s *SeriesSpec, plugin ggseries.Plugin[T, O], convert func(R) T) (host.Series, error) {
	options := plugin.DefaultOptions()
	if !s.Options.IsZero() {
		if err := s.Options.Decode(&options); err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
	}

	var raw []R
	if !s.Data.IsZero() {
		if err := s.Data.Decode(&raw); err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
	}
	points := make([]T, len(raw))
	for i, r := range raw {
		points[i] = convert(r)
	}
	return host.NewSeries(s.Title, plugin, points, options), nil
}
