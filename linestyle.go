package ggseries

import (
	"fmt"
	"strconv"
	"strings"
)

// LineStyle selects the dash pattern of a stroked line.
type LineStyle int

// Line styles, numbered as in the host chart library.
const (
	LineStyleSolid LineStyle = iota
	LineStyleDotted
	LineStyleDashed
	LineStyleLargeDashed
	LineStyleSparseDotted
)

var lineStyleNames = [...]string{
	LineStyleSolid:        "solid",
	LineStyleDotted:       "dotted",
	LineStyleDashed:       "dashed",
	LineStyleLargeDashed:  "largeDashed",
	LineStyleSparseDotted: "sparseDotted",
}

// String returns the lower camel case name of the style.
func (s LineStyle) String() string {
	if s >= 0 && int(s) < len(lineStyleNames) {
		return lineStyleNames[s]
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// ParseLineStyle parses a style name as produced by String, case-insensitively.
// The numeric value of a known style is accepted too.
func ParseLineStyle(name string) (LineStyle, error) {
	for i, n := range lineStyleNames {
		if strings.EqualFold(n, name) {
			return LineStyle(i), nil
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(lineStyleNames) {
		return LineStyle(i), nil
	}
	return LineStyleSolid, fmt.Errorf("ggseries: unknown line style %q", name)
}

// DashPattern returns the alternating dash/gap lengths for the style.
// Solid and unknown styles return an empty pattern.
func (s LineStyle) DashPattern() []float64 {
	switch s {
	case LineStyleDotted:
		return []float64{1, 1}
	case LineStyleDashed:
		return []float64{4, 2}
	case LineStyleLargeDashed:
		return []float64{8, 4}
	case LineStyleSparseDotted:
		return []float64{1, 4}
	default:
		return []float64{}
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so styles can be
// written by name in configuration files.
func (s *LineStyle) UnmarshalText(text []byte) error {
	v, err := ParseLineStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s LineStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
