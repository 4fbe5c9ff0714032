// Package ggseries renders financial time-series overlays (bands, ribbons,
// gradient ribbons, trend fills and signal bands) onto a 2D canvas driven by
// a host chart.
//
// # Overview
//
// The host owns the time and price scales. Once per frame it hands every
// custom series a [PaneData] snapshot through [Plugin.Update] and then calls
// [Renderer.Draw] with a [Target] and a [PriceConverter]. Renderers convert
// only the visible bars to bitmap space, resolve per-point styles against the
// series options and emit canvas calls in a fixed z-order: fills, then the
// base/reference line, then the foreground lines.
//
// The five series kinds live in the series sub-package. This package holds
// what they share:
//   - [Canvas], [Brush] and [Stroke]: the drawing contract
//   - [Converter]: logical to bitmap coordinate conversion
//   - [Batch]: partitioning bars into style runs
//   - [DrawLine], [DrawFill], [DrawGradientFill], [DrawBands]: path construction
//   - [ResolveLine], [ResolveFill]: field-level style merge
//   - [LineStyle]: dash patterns
//
// # Draw calls
//
// Canvas state changes dominate the cost of a frame with many visible bars.
// Every path helper groups consecutive bars with identical resolved
// attributes into one run and issues exactly one stroke or fill per run.
//
// # Failure model
//
// Nothing in the draw path returns an error or panics on bad data. Missing
// (NaN) channels and prices the host cannot map are gaps, unparseable colors
// are resolved by the backends to a fallback, and a missing snapshot is a
// no-op.
//
// # Coordinate System
//
// Bitmap coordinates: origin at top-left, X increases right, Y increases
// down, one unit per device pixel.
package ggseries

// Version is the current version of the library.
const Version = "0.1.0"
