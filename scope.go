package ggseries

// RenderingScope is what a renderer sees while drawing one frame: the canvas
// in bitmap space plus the device pixel ratios used to get there from the
// host's logical (media) coordinates.
type RenderingScope struct {
	Canvas               Canvas
	HorizontalPixelRatio float64
	VerticalPixelRatio   float64
	BitmapSize           Size
}

// Target is the drawing target the host passes to Renderer.Draw.
type Target interface {
	// UseBitmapCoordinateSpace calls fn synchronously with the bitmap scope.
	UseBitmapCoordinateSpace(fn func(scope RenderingScope))
}

// scopeTarget is a Target over a fixed scope.
type scopeTarget RenderingScope

func (t scopeTarget) UseBitmapCoordinateSpace(fn func(scope RenderingScope)) {
	fn(RenderingScope(t))
}

// NewTarget returns a Target that hands scope to every draw callback.
func NewTarget(scope RenderingScope) Target {
	return scopeTarget(scope)
}

// PriceConverter maps a price to a vertical media coordinate. It reports
// false when the price cannot be placed on the current price scale.
type PriceConverter func(price float64) (float64, bool)

// VisibleRange is the half-open index window [From, To) of bars to draw.
type VisibleRange struct {
	From, To int
}

// Clamp limits the range to [0, n). A range that starts at or past n
// becomes the empty range {n, n}.
func (r VisibleRange) Clamp(n int) VisibleRange {
	n = max(n, 0)
	from, to := min(max(r.From, 0), n), min(r.To, n)
	if to < from {
		to = from
	}
	return VisibleRange{From: from, To: to}
}

// Len returns the number of indices in the range.
func (r VisibleRange) Len() int {
	return max(r.To-r.From, 0)
}

// Bar is one data point bound to the series, positioned horizontally by the
// host. X is the bar center in media coordinates.
type Bar[T any] struct {
	X    float64
	Data T
}

// PaneData is the per-frame input from the host to a renderer.
type PaneData[T any] struct {
	Bars         []Bar[T]
	BarSpacing   float64
	VisibleRange *VisibleRange
}
