package export

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/jung-kurt/gofpdf"

	"LocalBoard/internal/geometry"
	"LocalBoard/internal/state"
	"LocalBoard/internal/tools"
)

// margin around the strokes of each exported page, in points.
const margin = 20

// ExportPDF writes every page of doc to a PDF file at path.
func ExportPDF(path string, doc state.Document, background string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(f, doc, background); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePDF renders doc as vector PDF, one PDF page per whiteboard page.
// Each page is sized to fit its strokes; empty pages come out as blank A4.
func WritePDF(w io.Writer, doc state.Document, background string) error {
	p := gofpdf.New("P", "pt", "A4", "")
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	bg := tools.ColorOr(background, color.White)

	for i, page := range doc.Pages {
		box := pageBounds(page)
		if box.Empty() {
			p.AddPage()
			wd, ht := p.GetPageSize()
			fillBackground(p, bg, wd, ht)
			continue
		}
		box = box.Inset(margin)
		p.AddPageFormat("P", gofpdf.SizeType{Wd: box.Width(), Ht: box.Height()})
		fillBackground(p, bg, box.Width(), box.Height())
		for _, st := range page {
			drawStroke(p, st, box.Min)
		}
		log.Printf("[EXPORT] Page %d: %d strokes", i, len(page))
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pageBounds(page state.Page) geometry.Rect {
	box := geometry.EmptyRect
	for _, st := range page {
		box = box.Union(st.Path.Bounds().Inset(st.Width / 2))
	}
	return box
}

func fillBackground(p *gofpdf.Fpdf, bg color.Color, wd, ht float64) {
	r, g, b := rgb(bg)
	p.SetFillColor(r, g, b)
	p.Rect(0, 0, wd, ht, "F")
}

func drawStroke(p *gofpdf.Fpdf, st state.Stroke, origin geometry.Point) {
	r, g, b := rgb(tools.ColorOr(st.Color, color.Black))
	p.SetDrawColor(r, g, b)
	p.SetFillColor(r, g, b)
	p.SetLineWidth(st.Width)

	at := func(pt geometry.Point) (float64, float64) { return pt.X - origin.X, pt.Y - origin.Y }

	switch path := st.Path; path.Kind {
	case geometry.KindCircle:
		x, y := at(path.Center)
		p.Circle(x, y, path.Radius, "D")
	case geometry.KindFreehand:
		if len(path.Points) == 1 {
			// A tap leaves a round dot the size of the pen.
			x, y := at(path.Points[0])
			p.Circle(x, y, st.Width/2, "F")
			return
		}
		drawSegments(p, path.Segments(), at)
	default:
		drawSegments(p, path.Segments(), at)
	}
}

func drawSegments(p *gofpdf.Fpdf, segs []geometry.Segment, at func(geometry.Point) (float64, float64)) {
	for _, s := range segs {
		x, y := at(s.To)
		switch s.Op {
		case geometry.MoveTo:
			p.MoveTo(x, y)
		case geometry.LineTo:
			p.LineTo(x, y)
		case geometry.Close:
			p.ClosePath()
		}
	}
	p.DrawPath("D")
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
