package board

import (
	"LocalBoard/internal/geometry"
	"LocalBoard/internal/viewport"
)

// Item is one path ready to be drawn, in canvas coordinates.
type Item struct {
	ID    string
	Path  geometry.Path
	SVG   string
	Color string
	Width float64
}

// Frame is everything the view layer needs to draw the board once.
type Frame struct {
	Page      int
	PageCount int
	Items     []Item // committed strokes in paint order
	Preview   *Item  // stroke in progress, painted last
	View      viewport.State
}

// Render returns the current page, the live preview and the view transform.
func (b *Board) Render() Frame {
	strokes := b.store.CurrentStrokes()
	f := Frame{
		Page:      b.store.Current(),
		PageCount: b.store.PageCount(),
		Items:     make([]Item, 0, len(strokes)),
		View:      b.view.State(),
	}
	for _, st := range strokes {
		f.Items = append(f.Items, Item{ID: st.ID, Path: st.Path, SVG: st.Path.SVG(), Color: st.Color, Width: st.Width})
	}
	if pv := b.machine.Preview(); pv.Active {
		f.Preview = &Item{Path: pv.Path, SVG: pv.Path.SVG(), Color: pv.Color, Width: pv.Width}
	}
	return f
}
