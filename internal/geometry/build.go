package geometry

import "math"

// Build turns a gesture into a path for the given tool kind. anchor is the
// press point, current the latest pointer position and points the freehand
// capture buffer in order. The second result is false when kind does not
// draw anything (no tool selected).
func Build(kind Kind, anchor, current Point, points []Point) (Path, bool) {
	switch kind {
	case KindFreehand:
		if len(points) == 0 {
			return Freehand([]Point{anchor}), true
		}
		return Freehand(points), true
	case KindLine:
		return Line(anchor, current), true
	case KindRectangle:
		return Rectangle(anchor, current.X-anchor.X, current.Y-anchor.Y), true
	case KindSquare:
		dx, dy := current.X-anchor.X, current.Y-anchor.Y
		size := math.Min(math.Abs(dx), math.Abs(dy))
		return Square(anchor, size, sign(dx), sign(dy)), true
	case KindCircle:
		return Circle(anchor, anchor.Dist(current)), true
	}
	return Path{}, false
}
