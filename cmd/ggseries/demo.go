package main

import (
	"math"

	"github.com/markcheno/go-talib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/ggseries"
	"github.com/gogpu/ggseries/host"
	"github.com/gogpu/ggseries/series"
)

func init() {
	demoCmd.Flags().Int("width", 800, "chart width")
	demoCmd.Flags().Int("height", 400, "chart height")
	demoCmd.Flags().StringP("out", "o", "demo.png", "output file, - for stdout")
	demoCmd.Flags().Float64("scale", 1, "device pixel ratio")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "render every series kind over synthetic prices",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		// The demo binds its own flags so that render's --out default does
		// not leak into it.
		v := viper.New()
		v.SetEnvPrefix("ggseries")
		v.AutomaticEnv()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		chart := demoChart(v.GetInt("width"), v.GetInt("height"), v.GetFloat64("scale"), 160)
		out := v.GetString("out")
		return renderChart(chart, out, outputFormat(viper.GetString("format"), out), cmd.OutOrStdout())
	},
}

// demoChart builds a chart with one series of every kind, derived from n
// bars of a deterministic synthetic close price.
func demoChart(width, height int, scale float64, n int) *host.Chart {
	closes := syntheticCloses(n)
	upper, mid, lower := talib.BBands(closes, bbPeriod, 2, 2, talib.SMA)
	fast, slow := talib.Ema(closes, fastPeriod), talib.Ema(closes, slowPeriod)

	bands := make([]series.BandPoint, n)
	ribbons := make([]series.RibbonPoint, n)
	gradients := make([]series.GradientRibbonPoint, n)
	trends := make([]series.TrendFillPoint, n)
	signals := make([]series.SignalPoint, n)
	for i := range closes {
		t := int64(i)
		u, m, l := warm(upper, i, bbPeriod), warm(mid, i, bbPeriod), warm(lower, i, bbPeriod)
		f, sl := warm(fast, i, fastPeriod), warm(slow, i, slowPeriod)

		bands[i] = series.BandPoint{Time: t, Upper: u, Middle: m, Lower: l}
		ribbons[i] = series.RibbonPoint{Time: t, Line1: f, Line2: sl}

		dev := (u - m) / 2
		gradients[i] = series.GradientRibbonPoint{
			Time:     t,
			Upper:    sl + dev,
			Lower:    sl - dev,
			Gradient: ggseries.Missing,
		}

		dir := series.TrendUp
		if f < m {
			dir = series.TrendDown
		}
		trends[i] = series.TrendFillPoint{Time: t, BaseLine: m, TrendLine: f, TrendDirection: dir}

		s := ggseries.Missing
		if !ggseries.IsMissing(u) {
			s = 0
			if closes[i] > u || closes[i] < l {
				s = 1
			}
		}
		signals[i] = series.SignalPoint{Time: t, Value: s}
	}

	chart := host.New(width, height,
		host.WithPixelRatio(scale),
		host.WithBarSpacing(float64(width)/float64(max(n, 1))),
		host.WithBackground("#131722"),
	)

	signal, gradient, band, ribbon, trend := series.NewSignal(), series.NewGradientRibbon(), series.NewBand(), series.NewRibbon(), series.NewTrendFill()
	chart.Add(
		host.NewSeries("Breakout", signal, signals, signal.DefaultOptions()),
		host.NewSeries("Envelope", gradient, gradients, gradient.DefaultOptions()),
		host.NewSeries("BB(20, 2)", band, bands, band.DefaultOptions()),
		host.NewSeries("EMA(12, 26)", ribbon, ribbons, ribbon.DefaultOptions()),
		host.NewSeries("Trend", trend, trends, trend.DefaultOptions()),
	)
	return chart
}

// Indicator periods of the demo.
const (
	bbPeriod   = 20
	fastPeriod = 12
	slowPeriod = 26
)

// warm returns values[i], or Missing while the indicator is still in its
// lookback window, where talib leaves zeros.
func warm(values []float64, i, period int) float64 {
	if i < period-1 || i >= len(values) {
		return ggseries.Missing
	}
	return values[i]
}

func syntheticCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		x := float64(i)
		closes[i] = 100 + 0.05*x + 8*math.Sin(x/15) + 2*math.Sin(x/3.7)
	}
	return closes
}
