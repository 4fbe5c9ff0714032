package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/series"
)

// value is an optional channel value. Absent and null values are missing.
type value *float64

func channel(v value) float64 {
	if v == nil {
		return ggseries.Missing
	}
	return *v
}

type rawBand struct {
	Time   int64             `yaml:"time"`
	Upper  value             `yaml:"upper"`
	Middle value             `yaml:"middle"`
	Lower  value             `yaml:"lower"`
	Styles series.BandStyles `yaml:"styles"`
}

func (r rawBand) point() series.BandPoint {
	return series.BandPoint{
		Time:   r.Time,
		Upper:  channel(r.Upper),
		Middle: channel(r.Middle),
		Lower:  channel(r.Lower),
		Styles: r.Styles,
	}
}

type rawRibbon struct {
	Time   int64               `yaml:"time"`
	Line1  value               `yaml:"line1"`
	Line2  value               `yaml:"line2"`
	Styles series.RibbonStyles `yaml:"styles"`
}

func (r rawRibbon) point() series.RibbonPoint {
	return series.RibbonPoint{
		Time:   r.Time,
		Line1:  channel(r.Line1),
		Line2:  channel(r.Line2),
		Styles: r.Styles,
	}
}

type rawGradientRibbon struct {
	Time     int64                       `yaml:"time"`
	Upper    value                       `yaml:"upper"`
	Lower    value                       `yaml:"lower"`
	Fill     string                      `yaml:"fillColor"`
	Gradient value                       `yaml:"gradient"`
	Styles   series.GradientRibbonStyles `yaml:"styles"`
}

func (r rawGradientRibbon) point() series.GradientRibbonPoint {
	return series.GradientRibbonPoint{
		Time:     r.Time,
		Upper:    channel(r.Upper),
		Lower:    channel(r.Lower),
		Fill:     r.Fill,
		Gradient: channel(r.Gradient),
		Styles:   r.Styles,
	}
}

type rawTrendFill struct {
	Time           int64                  `yaml:"time"`
	BaseLine       value                  `yaml:"baseLine"`
	TrendLine      value                  `yaml:"trendLine"`
	TrendDirection int                    `yaml:"trendDirection"`
	Styles         series.TrendFillStyles `yaml:"styles"`
}

func (r rawTrendFill) point() series.TrendFillPoint {
	return series.TrendFillPoint{
		Time:           r.Time,
		BaseLine:       channel(r.BaseLine),
		TrendLine:      channel(r.TrendLine),
		TrendDirection: r.TrendDirection,
		Styles:         r.Styles,
	}
}

type rawSignal struct {
	Time   int64               `yaml:"time"`
	Value  signalValue         `yaml:"value"`
	Styles series.SignalStyles `yaml:"styles"`
}

func (r rawSignal) point() series.SignalPoint {
	v := ggseries.Missing
	if r.Value.set {
		v = r.Value.v
	}
	return series.SignalPoint{Time: r.Time, Value: v, Styles: r.Styles}
}

// signalValue accepts a number or a boolean; true and false become 1 and 0.
type signalValue struct {
	v   float64
	set bool
}

func (s *signalValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		*s = signalValue{}
		return nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*s = signalValue{set: true}
		if b {
			s.v = 1
		}
		return nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*s = signalValue{v: f, set: true}
		return nil
	default:
		return fmt.Errorf("line %d: signal value %q is neither a number nor a boolean", node.Line, node.Value)
	}
}
