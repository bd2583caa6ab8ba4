package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalBoard/internal/board"
	"LocalBoard/internal/geometry"
	"LocalBoard/internal/tools"
	"LocalBoard/internal/viewport"
)

const (
	// zoomPerPixel converts scroll distance into a zoom factor.
	zoomPerPixel = 0.01
	// keyPanStep is how far one arrow key press moves the view.
	keyPanStep = 40
)

// BoardWidget draws a board and feeds it pointer input. Primary-button
// drags draw with the selected tool; with no tool selected they pan. The
// scroll wheel zooms around the pointer.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board

	background color.Color
	showGrid   bool
	gridSize   float64

	// Cumulative drag translation of the current pan, fed to the board as
	// a pan gesture.
	panning    bool
	panX, panY float64

	// OnStatus receives a one-line summary after every redraw.
	OnStatus func(string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board, background string, showGrid bool, gridSize float64) *BoardWidget {
	w := &BoardWidget{
		board:      b,
		background: tools.ColorOr(background, color.White),
		showGrid:   showGrid,
		gridSize:   gridSize,
	}
	w.ExtendBaseWidget(w)
	b.OnChange(w.Refresh)
	return w
}

func (w *BoardWidget) ToggleGrid() {
	w.showGrid = !w.showGrid
	w.Refresh()
}

func toPoint(p fyne.Position) geometry.Point {
	return geometry.Pt(float64(p.X), float64(p.Y))
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.Press(toPoint(e.Position))
	}
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.Release()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if w.board.Mode() == board.ModeDrawing {
		w.board.Move(toPoint(e.Position))
		return
	}
	if !w.panning {
		if !w.board.PanBegin(0, 0) {
			return
		}
		w.panning = true
		w.panX, w.panY = 0, 0
	}
	w.panX += float64(e.Dragged.DX)
	w.panY += float64(e.Dragged.DY)
	w.board.PanUpdate(w.panX, w.panY)
}

func (w *BoardWidget) DragEnd() {
	if w.panning {
		w.panning = false
		w.board.PanEnd()
		return
	}
	w.board.Release()
}

func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	factor := math.Exp(float64(e.Scrolled.DY) * zoomPerPixel)
	w.board.ZoomAt(factor, toPoint(e.Position))
}

// panKey pans the view with the arrow keys. It reports whether the key
// was one of them.
func (w *BoardWidget) panKey(e *fyne.KeyEvent) bool {
	var dx, dy float64
	switch e.Name {
	case fyne.KeyLeft:
		dx = keyPanStep
	case fyne.KeyRight:
		dx = -keyPanStep
	case fyne.KeyUp:
		dy = keyPanStep
	case fyne.KeyDown:
		dy = -keyPanStep
	default:
		return false
	}
	w.board.PanBy(dx, dy)
	return true
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{widget: w, background: canvas.NewRectangle(w.background)}
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	widget     *BoardWidget
	background *canvas.Rectangle
	size       fyne.Size
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.rebuild()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.widget)
}

// rebuild recreates the scene from the board's current frame.
func (r *boardWidgetRenderer) rebuild() {
	frame := r.widget.board.Render()
	objects := []fyne.CanvasObject{r.background}
	if r.widget.showGrid && r.widget.gridSize > 0 {
		objects = append(objects, r.createGrid(frame.View)...)
	}
	for _, it := range frame.Items {
		objects = append(objects, itemObjects(it, frame.View)...)
	}
	if frame.Preview != nil {
		objects = append(objects, itemObjects(*frame.Preview, frame.View)...)
	}
	r.objects = objects

	if r.widget.OnStatus != nil {
		r.widget.OnStatus(status(r.widget.board, frame))
	}
}

// createGrid draws grid lines that follow the view transform.
func (r *boardWidgetRenderer) createGrid(view viewport.State) []fyne.CanvasObject {
	var lines []fyne.CanvasObject
	gridColor := color.NRGBA{R: 220, G: 220, B: 220, A: 100}
	step := r.widget.gridSize * view.Scale
	w, h := float64(r.size.Width), float64(r.size.Height)

	// Vertical lines
	for x := math.Mod(view.TranslateX, step); x < w; x += step {
		if x < 0 {
			continue
		}
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(float32(x), 0)
		line.Position2 = fyne.NewPos(float32(x), float32(h))
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}

	// Horizontal lines
	for y := math.Mod(view.TranslateY, step); y < h; y += step {
		if y < 0 {
			continue
		}
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, float32(y))
		line.Position2 = fyne.NewPos(float32(w), float32(y))
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}

	return lines
}

// itemObjects converts one path into fyne canvas objects in screen space.
func itemObjects(it board.Item, view viewport.State) []fyne.CanvasObject {
	col := tools.ColorOr(it.Color, color.Black)
	width := float32(it.Width * view.Scale)
	pos := func(p geometry.Point) fyne.Position {
		s := view.ToScreen(p)
		return fyne.NewPos(float32(s.X), float32(s.Y))
	}

	switch p := it.Path; p.Kind {
	case geometry.KindFreehand:
		if len(p.Points) == 1 {
			return []fyne.CanvasObject{dot(pos(p.Points[0]), width, col)}
		}
		objects := make([]fyne.CanvasObject, 0, len(p.Points)-1)
		for i := 1; i < len(p.Points); i++ {
			objects = append(objects, segment(pos(p.Points[i-1]), pos(p.Points[i]), width, col))
		}
		return objects
	case geometry.KindLine:
		return []fyne.CanvasObject{segment(pos(p.From), pos(p.To), width, col)}
	case geometry.KindRectangle, geometry.KindSquare:
		box := p.Bounds()
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = col
		rect.StrokeWidth = width
		lo, hi := pos(box.Min), pos(box.Max)
		rect.Move(lo)
		rect.Resize(fyne.NewSize(hi.X-lo.X, hi.Y-lo.Y))
		return []fyne.CanvasObject{rect}
	case geometry.KindCircle:
		box := p.Bounds()
		circle := canvas.NewCircle(color.Transparent)
		circle.StrokeColor = col
		circle.StrokeWidth = width
		circle.Position1 = pos(box.Min)
		circle.Position2 = pos(box.Max)
		return []fyne.CanvasObject{circle}
	}
	return nil
}

func segment(a, b fyne.Position, width float32, col color.Color) fyne.CanvasObject {
	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = a
	line.Position2 = b
	return line
}

func dot(at fyne.Position, width float32, col color.Color) fyne.CanvasObject {
	c := canvas.NewCircle(col)
	half := width / 2
	c.Position1 = fyne.NewPos(at.X-half, at.Y-half)
	c.Position2 = fyne.NewPos(at.X+half, at.Y+half)
	return c
}
