// Package series implements the five custom series kinds: Band, Ribbon,
// GradientRibbon, TrendFill and Signal.
//
// Each kind has a data point type, an options type, a plugin (the object a
// host registers) and a renderer. Plugins satisfy
// ggseries.Plugin[Point, Options]; renderers satisfy
// ggseries.Renderer[Point, Options].
//
// Channel values are float64 and NaN marks a missing value (see
// ggseries.Missing). A point whose required channels are all missing is
// whitespace.
//
// Renderers share no base type. Geometry, batching and color handling are
// free functions in the ggseries and colors packages; the per-kind code here
// only maps a data point onto those.
//
// # Example
//
//	band := series.NewBand()
//	band.Update(ggseries.PaneData[series.BandPoint]{
//	    Bars:         bars,
//	    BarSpacing:   6,
//	    VisibleRange: &ggseries.VisibleRange{From: 0, To: len(bars)},
//	}, band.DefaultOptions())
//	band.Renderer().Draw(target, priceToCoordinate, false, nil)
package series
