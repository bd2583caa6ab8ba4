package tools

import (
	"fmt"
	"image/color"

	"github.com/srwiley/oksvg"
)

// Palette is the default set of pen colors offered by the toolbar.
var Palette = []string{"black", "red", "green", "blue", "orange", "#6C63FF"}

// ParseColor converts an SVG color value (a name such as "orange", #rgb or
// #rrggbb) into a color.
func ParseColor(s string) (color.Color, error) {
	c, err := oksvg.ParseSVGColor(s)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	if c == nil {
		return nil, fmt.Errorf("parse color %q: not a paintable color", s)
	}
	return c, nil
}

// ColorOr is ParseColor for values already validated elsewhere; anything
// unparsable becomes fallback.
func ColorOr(s string, fallback color.Color) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
