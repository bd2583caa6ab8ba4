package geometry

import "math"

// Rect is an axis-aligned box in canvas coordinates.
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r encloses nothing, as returned for a path without
// geometry.
func (r Rect) Empty() bool { return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y }

// Union returns the smallest box containing both r and o. Empty boxes are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Min: Pt(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: Pt(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}

// Inset grows r by pad on every side; a negative pad shrinks it.
func (r Rect) Inset(pad float64) Rect {
	if r.Empty() {
		return r
	}
	return Rect{Min: Pt(r.Min.X-pad, r.Min.Y-pad), Max: Pt(r.Max.X+pad, r.Max.Y+pad)}
}

// EmptyRect is the identity for Union.
var EmptyRect = Rect{Min: Pt(1, 1), Max: Pt(0, 0)}

// Bounds returns the geometric bounding box of the path, ignoring stroke
// width.
func (p Path) Bounds() Rect {
	switch p.Kind {
	case KindFreehand:
		return boundsOf(p.Points)
	case KindLine:
		return boundsOf([]Point{p.From, p.To})
	case KindRectangle, KindSquare:
		n := p.Normalized()
		return Rect{Min: n.Origin, Max: Pt(n.Origin.X+n.Width, n.Origin.Y+n.Height)}
	case KindCircle:
		c, r := p.Center, p.Radius
		return Rect{Min: Pt(c.X-r, c.Y-r), Max: Pt(c.X+r, c.Y+r)}
	}
	return EmptyRect
}

func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return EmptyRect
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, pt := range pts[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}
