package geometry

import (
	"fmt"
	"math"
)

// Point is a position in canvas-local, untransformed coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Kind tags which tool produced a Path.
type Kind string

const (
	KindFreehand  Kind = "freehand"
	KindLine      Kind = "line"
	KindRectangle Kind = "rectangle"
	KindSquare    Kind = "square"
	KindCircle    Kind = "circle"
)

// Valid reports whether k is one of the five known path kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFreehand, KindLine, KindRectangle, KindSquare, KindCircle:
		return true
	}
	return false
}

// Path is a tool-tagged geometric description of one gesture. Only the fields
// belonging to Kind are meaningful:
//
//	freehand:  Points
//	line:      From, To
//	rectangle: Origin, Width, Height (signed)
//	square:    Origin, Size, SignX, SignY
//	circle:    Center, Radius
type Path struct {
	Kind Kind

	Points []Point

	From, To Point

	Origin        Point
	Width, Height float64

	Size         float64
	SignX, SignY float64

	Center Point
	Radius float64
}

// Freehand returns a polyline path through pts. The slice is copied.
func Freehand(pts []Point) Path {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Path{Kind: KindFreehand, Points: cp}
}

func Line(from, to Point) Path { return Path{Kind: KindLine, From: from, To: to} }

func Rectangle(origin Point, w, h float64) Path {
	return Path{Kind: KindRectangle, Origin: origin, Width: w, Height: h}
}

func Square(origin Point, size, signX, signY float64) Path {
	return Path{Kind: KindSquare, Origin: origin, Size: size, SignX: sign(signX), SignY: sign(signY)}
}

func Circle(center Point, r float64) Path {
	return Path{Kind: KindCircle, Center: center, Radius: math.Abs(r)}
}

// Validate checks the structural constraints of a path, typically after it
// has been decoded from storage.
func (p Path) Validate() error {
	switch p.Kind {
	case KindFreehand:
		if len(p.Points) == 0 {
			return fmt.Errorf("freehand path has no points")
		}
	case KindLine, KindRectangle:
	case KindSquare:
		if p.Size < 0 {
			return fmt.Errorf("square size %v is negative", p.Size)
		}
		if math.Abs(p.SignX) != 1 || math.Abs(p.SignY) != 1 {
			return fmt.Errorf("square signs (%v, %v) must be ±1", p.SignX, p.SignY)
		}
	case KindCircle:
		if p.Radius < 0 {
			return fmt.Errorf("circle radius %v is negative", p.Radius)
		}
	default:
		return fmt.Errorf("unknown path kind %q", p.Kind)
	}
	return nil
}

// Normalized returns rectangles and squares with a top-left origin and
// non-negative extents, as a Rectangle. Other kinds are returned unchanged.
// Two rectangles dragged in opposite directions normalize to the same value.
func (p Path) Normalized() Path {
	switch p.Kind {
	case KindRectangle:
		x, y, w, h := p.Origin.X, p.Origin.Y, p.Width, p.Height
		if w < 0 {
			x, w = x+w, -w
		}
		if h < 0 {
			y, h = y+h, -h
		}
		return Rectangle(Pt(x, y), w, h)
	case KindSquare:
		return Rectangle(p.Origin, p.SignX*p.Size, p.SignY*p.Size).Normalized()
	}
	return p
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
