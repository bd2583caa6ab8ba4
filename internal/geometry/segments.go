package geometry

import (
	"strconv"
	"strings"
)

// Op is a vector path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	// ArcTo draws an elliptical arc with equal radii, SVG style.
	ArcTo
	Close
)

// Segment is one command of a renderable vector path. Radius, LargeArc and
// Sweep apply to ArcTo only.
type Segment struct {
	Op       Op
	To       Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

// Segments converts the path to absolute move/line/arc commands. A circle is
// emitted as two opposing half-circle arcs starting at its rightmost point.
func (p Path) Segments() []Segment {
	switch p.Kind {
	case KindFreehand:
		segs := make([]Segment, 0, len(p.Points))
		for i, pt := range p.Points {
			op := LineTo
			if i == 0 {
				op = MoveTo
			}
			segs = append(segs, Segment{Op: op, To: pt})
		}
		return segs
	case KindLine:
		return []Segment{{Op: MoveTo, To: p.From}, {Op: LineTo, To: p.To}}
	case KindRectangle:
		return boxSegments(p.Origin, p.Width, p.Height)
	case KindSquare:
		return boxSegments(p.Origin, p.SignX*p.Size, p.SignY*p.Size)
	case KindCircle:
		c, r := p.Center, p.Radius
		right, left := Pt(c.X+r, c.Y), Pt(c.X-r, c.Y)
		return []Segment{
			{Op: MoveTo, To: right},
			{Op: ArcTo, To: left, Radius: r, LargeArc: true},
			{Op: ArcTo, To: right, Radius: r, LargeArc: true},
		}
	}
	return nil
}

func boxSegments(o Point, w, h float64) []Segment {
	return []Segment{
		{Op: MoveTo, To: o},
		{Op: LineTo, To: Pt(o.X+w, o.Y)},
		{Op: LineTo, To: Pt(o.X+w, o.Y+h)},
		{Op: LineTo, To: Pt(o.X, o.Y+h)},
		{Op: Close, To: o},
	}
}

// SVG returns the path as SVG path data. Shapes use relative h/v commands
// so the string mirrors how the shape was dragged.
func (p Path) SVG() string {
	var sb strings.Builder
	switch p.Kind {
	case KindFreehand:
		for i, pt := range p.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			write(&sb, cmd, pt.X, pt.Y)
		}
	case KindLine:
		write(&sb, "M", p.From.X, p.From.Y)
		sb.WriteByte(' ')
		write(&sb, "L", p.To.X, p.To.Y)
	case KindRectangle:
		box(&sb, p.Origin, p.Width, p.Height)
	case KindSquare:
		box(&sb, p.Origin, p.SignX*p.Size, p.SignY*p.Size)
	case KindCircle:
		c, r := p.Center, p.Radius
		write(&sb, "M", c.X+r, c.Y)
		sb.WriteByte(' ')
		write(&sb, "A", r, r, 0, 1, 0, c.X-r, c.Y)
		sb.WriteByte(' ')
		write(&sb, "A", r, r, 0, 1, 0, c.X+r, c.Y)
	}
	return sb.String()
}

func box(sb *strings.Builder, o Point, w, h float64) {
	write(sb, "M", o.X, o.Y)
	sb.WriteByte(' ')
	write(sb, "h", w)
	sb.WriteByte(' ')
	write(sb, "v", h)
	sb.WriteByte(' ')
	write(sb, "h", -w)
	sb.WriteString(" Z")
}

func write(sb *strings.Builder, cmd string, vals ...float64) {
	sb.WriteString(cmd)
	for _, v := range vals {
		sb.WriteByte(' ')
		sb.WriteString(num(v))
	}
}

func num(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
