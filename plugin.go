package ggseries

// Plugin is the contract object a host chart calls for one custom series
// kind. T is the series data point type and O its options type.
type Plugin[T any, O any] interface {
	// DefaultOptions returns the options a series starts with.
	DefaultOptions() O

	// IsWhitespace reports whether every required channel of point is
	// missing, so the host renders a gap rather than interpolating.
	IsWhitespace(point T) bool

	// PriceValueBuilder returns the prices point contributes to autoscale.
	PriceValueBuilder(point T) []float64

	// Update replaces the data/options snapshot of the plugin's renderer.
	Update(data PaneData[T], options O)

	// Renderer returns the renderer that draws the snapshot.
	Renderer() Renderer[T, O]
}

// Renderer draws the most recent (data, options) snapshot.
//
// Update and Draw follow a single-writer/single-reader discipline driven by
// the host's frame loop: Update always completes before the next Draw. A
// renderer is not safe for concurrent use and is never shared between
// series.
type Renderer[T any, O any] interface {
	// Update replaces the snapshot wholesale.
	Update(data PaneData[T], options O)

	// Draw renders the snapshot into target. It never fails: a missing
	// snapshot, empty data or a nil visible range is a no-op. isHovered and
	// hitTestData are the host's hit-test hook and are currently unused.
	Draw(target Target, priceToCoordinate PriceConverter, isHovered bool, hitTestData any)
}
