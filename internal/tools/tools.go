package tools

import (
	"LocalBoard/internal/geometry"
)

// Tool is a toolbar selection.
type Tool string

const (
	None      Tool = ""
	Pen       Tool = "pen"
	Line      Tool = "line"
	Rectangle Tool = "rectangle"
	Square    Tool = "square"
	Circle    Tool = "circle"
)

// Tools lists the drawing tools in toolbar order.
var Tools = []Tool{Pen, Line, Rectangle, Square, Circle}

// Kind returns the geometry kind the tool draws, or "" for None.
func (t Tool) Kind() geometry.Kind {
	switch t {
	case Pen:
		return geometry.KindFreehand
	case Line:
		return geometry.KindLine
	case Rectangle:
		return geometry.KindRectangle
	case Square:
		return geometry.KindSquare
	case Circle:
		return geometry.KindCircle
	}
	return ""
}

const (
	MinPenWidth     = 1
	MaxPenWidth     = 30
	DefaultPenWidth = 3
)

// Config is the current tool and style selection. The zero value is not
// usable; call New.
type Config struct {
	tool       Tool
	color      string
	penWidth   int
	eraser     bool
	background string
}

// New returns a config with no tool selected, drawing in color at the default
// width. background is the color the eraser paints with.
func New(color, background string) *Config {
	return &Config{color: color, penWidth: DefaultPenWidth, background: background}
}

func (c *Config) Tool() Tool { return c.tool }
func (c *Config) Color() string { return c.color }
func (c *Config) PenWidth() int { return c.penWidth }
func (c *Config) Eraser() bool { return c.eraser }
func (c *Config) Background() string { return c.background }

// Drawing reports whether a press on the canvas should start a stroke.
func (c *Config) Drawing() bool { return c.tool != None }

// EffectiveColor is the color new strokes are painted with.
func (c *Config) EffectiveColor() string {
	if c.eraser {
		return c.background
	}
	return c.color
}

// Select picks a tool. Choosing the tool that is already active deselects
// it, unless the eraser is on, in which case the eraser is turned off and the
// tool stays. Any drawing tool choice ends eraser mode.
func (c *Config) Select(t Tool) {
	if t == c.tool && !c.eraser {
		c.tool = None
		return
	}
	c.tool = t
	c.eraser = false
}

// SetColor changes the pen color and leaves eraser mode.
func (c *Config) SetColor(color string) {
	c.color = color
	c.eraser = false
}

// UseEraser switches to eraser mode. The pen color is remembered for when the
// eraser is turned off. Without a tool the pen is selected so the eraser can
// draw.
func (c *Config) UseEraser() {
	c.eraser = true
	if c.tool == None {
		c.tool = Pen
	}
}

// SetPenWidth sets the width used by future strokes, clamped to
// [MinPenWidth, MaxPenWidth].
func (c *Config) SetPenWidth(w int) {
	c.penWidth = min(max(w, MinPenWidth), MaxPenWidth)
}

func (c *Config) Grow() { c.SetPenWidth(c.penWidth + 1) }
func (c *Config) Shrink() { c.SetPenWidth(c.penWidth - 1) }
