package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"LocalBoard/internal/board"
	"LocalBoard/internal/geometry"
	"LocalBoard/internal/tools"
	"LocalBoard/internal/viewport"
)

func TestStatus(t *testing.T) {
	b := board.New(nil, board.Options{})
	if got, want := status(b, b.Render()), "Page 1/1 · pan · size 3 · zoom 100%"; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}

	b.Tools().Select(tools.Circle)
	b.Tools().Grow()
	if err := b.NewPage(); err != nil {
		t.Fatal(err)
	}
	if got, want := status(b, b.Render()), "Page 2/2 · circle · size 4 · zoom 100%"; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}

	b.Tools().UseEraser()
	if got, want := status(b, b.Render()), "Page 2/2 · eraser · size 4 · zoom 100%"; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestItemObjects(t *testing.T) {
	view := viewport.State{Scale: 2, TranslateX: 10, TranslateY: 0}

	tests := []struct {
		name  string
		path  geometry.Path
		count int
	}{
		{"dot", geometry.Freehand([]geometry.Point{geometry.Pt(1, 1)}), 1},
		{"freehand", geometry.Freehand([]geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1), geometry.Pt(2, 0)}), 2},
		{"line", geometry.Line(geometry.Pt(0, 0), geometry.Pt(5, 5)), 1},
		{"rectangle", geometry.Rectangle(geometry.Pt(0, 0), 10, 5), 1},
		{"square", geometry.Square(geometry.Pt(0, 0), 4, -1, -1), 1},
		{"circle", geometry.Circle(geometry.Pt(0, 0), 3), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objs := itemObjects(board.Item{Path: tt.path, Color: "red", Width: 2}, view)
			if len(objs) != tt.count {
				t.Errorf("got %d objects, want %d", len(objs), tt.count)
			}
		})
	}
}

func TestItemObjectsFollowView(t *testing.T) {
	view := viewport.State{Scale: 2, TranslateX: 10, TranslateY: 20}
	objs := itemObjects(board.Item{Path: geometry.Circle(geometry.Pt(5, 5), 5), Color: "blue", Width: 3}, view)
	c, ok := objs[0].(*canvas.Circle)
	if !ok {
		t.Fatalf("got %T, want *canvas.Circle", objs[0])
	}
	if c.Position1 != fyne.NewPos(10, 20) || c.Position2 != fyne.NewPos(30, 40) {
		t.Errorf("circle spans %v..%v, want (10,20)..(30,40)", c.Position1, c.Position2)
	}
	if c.StrokeWidth != 6 {
		t.Errorf("stroke width = %v, want 6", c.StrokeWidth)
	}

	objs = itemObjects(board.Item{Path: geometry.Rectangle(geometry.Pt(10, 10), -10, -10), Color: "blue", Width: 1}, viewport.Identity)
	r := objs[0].(*canvas.Rectangle)
	if r.Position() != fyne.NewPos(0, 0) || r.Size() != fyne.NewSize(10, 10) {
		t.Errorf("rectangle at %v size %v, want origin size 10x10", r.Position(), r.Size())
	}
}

func TestBoardWidgetDrawsAndPans(t *testing.T) {
	test.NewTempApp(t)

	b := board.New(nil, board.Options{})
	bw := NewBoardWidget(b, "#ffffff", true, 50)
	var lastStatus string
	bw.OnStatus = func(s string) { lastStatus = s }
	bw.Resize(fyne.NewSize(400, 300))
	test.WidgetRenderer(bw)

	// No tool: a drag pans.
	bw.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}, Button: desktop.MouseButtonPrimary})
	bw.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 10)}, Dragged: fyne.NewDelta(20, 0)})
	bw.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 15)}, Dragged: fyne.NewDelta(10, 5)})
	bw.DragEnd()
	bw.MouseUp(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 15)}, Button: desktop.MouseButtonPrimary})
	if v := b.View(); v.TranslateX != 30 || v.TranslateY != 5 {
		t.Errorf("view = %+v, want translation (30,5)", v)
	}
	if b.Mode() != board.ModeIdle {
		t.Errorf("mode = %v after pan", b.Mode())
	}

	b.Tools().Select(tools.Line)
	bw.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 5)}, Button: desktop.MouseButtonPrimary})
	bw.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(130, 105)}, Dragged: fyne.NewDelta(100, 100)})
	bw.DragEnd()
	bw.MouseUp(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(130, 105)}, Button: desktop.MouseButtonPrimary})

	strokes := b.Store().CurrentStrokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	want := geometry.Line(geometry.Pt(0, 0), geometry.Pt(100, 100))
	if got := strokes[0].Path; got.From != want.From || got.To != want.To {
		t.Errorf("line %v -> %v, want %v -> %v", got.From, got.To, want.From, want.To)
	}
	if lastStatus == "" {
		t.Error("status callback never ran")
	}
}

func TestBoardWidgetScrollZooms(t *testing.T) {
	test.NewTempApp(t)

	b := board.New(nil, board.Options{})
	bw := NewBoardWidget(b, "#ffffff", false, 50)
	bw.Scrolled(&fyne.ScrollEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}, Scrolled: fyne.NewDelta(0, 1000)})
	if got := b.View().Scale; got != viewport.MaxScale {
		t.Errorf("scale = %v, want clamp to %v", got, viewport.MaxScale)
	}
	bw.Scrolled(&fyne.ScrollEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}, Scrolled: fyne.NewDelta(0, -1000)})
	if got := b.View().Scale; got != viewport.MinScale {
		t.Errorf("scale = %v, want clamp to %v", got, viewport.MinScale)
	}
}

func TestBoardWidgetArrowKeysPan(t *testing.T) {
	test.NewTempApp(t)

	b := board.New(nil, board.Options{})
	bw := NewBoardWidget(b, "#ffffff", false, 50)
	for _, k := range []fyne.KeyName{fyne.KeyRight, fyne.KeyRight, fyne.KeyUp} {
		if !bw.panKey(&fyne.KeyEvent{Name: k}) {
			t.Errorf("%s not handled", k)
		}
	}
	if bw.panKey(&fyne.KeyEvent{Name: fyne.KeyA}) {
		t.Error("letter key should not pan")
	}
	if v := b.View(); v.TranslateX != -2*keyPanStep || v.TranslateY != keyPanStep {
		t.Errorf("view = %+v", v)
	}

	// Keys are ignored mid-stroke.
	b.Tools().Select(tools.Pen)
	b.Press(geometry.Pt(1, 1))
	bw.panKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	b.Release()
	if v := b.View(); v.TranslateX != -2*keyPanStep {
		t.Errorf("pan during stroke moved the view: %+v", v)
	}
}
