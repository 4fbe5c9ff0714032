package ggseries

// LineOptions are the global defaults for one line channel of a series.
type LineOptions struct {
	Color   string    `yaml:"color"`
	Width   float64   `yaml:"width"`
	Style   LineStyle `yaml:"style"`
	Visible bool      `yaml:"visible"`
}

// FillOptions are the global defaults for one fill channel of a series.
type FillOptions struct {
	Color   string `yaml:"color"`
	Visible bool   `yaml:"visible"`
}

// StyleOverride is a per-point override for one channel. Zero fields are
// absent: an empty Color, a non-positive Width, and nil Style or Visible all
// inherit the series option.
type StyleOverride struct {
	Color   string     `yaml:"color,omitempty"`
	Width   float64    `yaml:"width,omitempty"`
	Style   *LineStyle `yaml:"style,omitempty"`
	Visible *bool      `yaml:"visible,omitempty"`
}

// ResolveLine merges a point override into the global line options field by
// field: every field the override sets wins, every other field comes from
// global.
func ResolveLine(global LineOptions, override StyleOverride) LineOptions {
	resolved := global
	if override.Color != "" {
		resolved.Color = override.Color
	}
	if override.Width > 0 {
		resolved.Width = override.Width
	}
	if override.Style != nil {
		resolved.Style = *override.Style
	}
	if override.Visible != nil {
		resolved.Visible = *override.Visible
	}
	return resolved
}

// ResolveFill merges a point override into the global fill options. Width and
// Style have no meaning for fills and are ignored.
func ResolveFill(global FillOptions, override StyleOverride) FillOptions {
	resolved := global
	if override.Color != "" {
		resolved.Color = override.Color
	}
	if override.Visible != nil {
		resolved.Visible = *override.Visible
	}
	return resolved
}

// Style is the resolved stroke or fill attribute triple a style run shares.
type Style struct {
	Color string
	Width float64
	Line  LineStyle
}

// RunStyle returns the run attributes of resolved line options.
func (o LineOptions) RunStyle() Style {
	return Style{Color: o.Color, Width: o.Width, Line: o.Style}
}
