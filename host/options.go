package host

// Option configures a Chart during creation.
//
// Example:
//
//	chart := host.New(800, 400,
//	    host.WithPixelRatio(2),
//	    host.WithBarSpacing(8),
//	    host.WithBackground("#131722"))
type Option func(*options)

// options holds the configuration of a Chart.
type options struct {
	pixelRatio   float64
	barSpacing   float64
	visible      *visibleWindow
	background   string
	marginTop    float64
	marginBottom float64
}

type visibleWindow struct {
	from, to int
}

// defaultOptions returns the default chart options.
func defaultOptions() options {
	return options{
		pixelRatio:   1,
		barSpacing:   6,
		marginTop:    0.1,
		marginBottom: 0.1,
	}
}

// WithPixelRatio sets the device pixel ratio applied to both axes.
// Non-positive values are ignored.
func WithPixelRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 {
			o.pixelRatio = ratio
		}
	}
}

// WithBarSpacing sets the horizontal distance between bar centers in media
// pixels. Non-positive values are ignored.
func WithBarSpacing(spacing float64) Option {
	return func(o *options) {
		if spacing > 0 {
			o.barSpacing = spacing
		}
	}
}

// WithVisibleRange fixes the half-open window [from, to) of bar indices to
// draw. Without it the chart shows as many of the latest bars as fit.
func WithVisibleRange(from, to int) Option {
	return func(o *options) {
		o.visible = &visibleWindow{from: from, to: to}
	}
}

// WithBackground sets the color painted behind all series. Empty or
// transparent colors leave the canvas untouched.
func WithBackground(color string) Option {
	return func(o *options) {
		o.background = color
	}
}

// WithScaleMargins sets the empty space above and below the autoscaled
// price range as fractions of the chart height. Values are clamped so that
// the margins leave at least some room for data.
func WithScaleMargins(top, bottom float64) Option {
	return func(o *options) {
		top, bottom = clampMargin(top), clampMargin(bottom)
		if top+bottom >= 0.9 {
			return
		}
		o.marginTop, o.marginBottom = top, bottom
	}
}

func clampMargin(m float64) float64 {
	if !(m > 0) {
		return 0
	}
	if m > 0.9 {
		return 0.9
	}
	return m
}
