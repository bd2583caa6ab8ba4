package input

import (
	"testing"

	"LocalBoard/internal/geometry"
	"LocalBoard/internal/state"
	"LocalBoard/internal/tools"
)

func newTestMachine(tool tools.Tool) (*Machine, *tools.Config, *state.Store) {
	cfg := tools.New("black", "#ffffff")
	if tool != tools.None {
		cfg.Select(tool)
	}
	store := state.NewStore()
	return NewMachine(cfg, store), cfg, store
}

func TestPressReleaseCommitsDegenerateStroke(t *testing.T) {
	tests := []struct {
		tool  tools.Tool
		check func(p geometry.Path) bool
	}{
		{tools.Pen, func(p geometry.Path) bool { return len(p.Points) == 1 && p.Points[0] == geometry.Pt(7, 8) }},
		{tools.Line, func(p geometry.Path) bool { return p.From == p.To }},
		{tools.Rectangle, func(p geometry.Path) bool { return p.Width == 0 && p.Height == 0 }},
		{tools.Square, func(p geometry.Path) bool { return p.Size == 0 }},
		{tools.Circle, func(p geometry.Path) bool { return p.Radius == 0 && p.Center == geometry.Pt(7, 8) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.tool), func(t *testing.T) {
			m, _, store := newTestMachine(tt.tool)
			if !m.Press(geometry.Pt(7, 8)) {
				t.Fatal("press was rejected")
			}
			intents := m.Release()
			if len(intents) != 1 {
				t.Errorf("expected one intent, got %+v", intents)
			}
			strokes := store.CurrentStrokes()
			if len(strokes) != 1 {
				t.Fatalf("expected 1 stroke, got %d", len(strokes))
			}
			if strokes[0].Path.Kind != tt.tool.Kind() || !tt.check(strokes[0].Path) {
				t.Errorf("unexpected path %+v", strokes[0].Path)
			}
			if m.Phase() != Idle {
				t.Error("machine should be idle after release")
			}
		})
	}
}

func TestFreehandCapturesAllPoints(t *testing.T) {
	m, _, store := newTestMachine(tools.Pen)
	m.Press(geometry.Pt(0, 0))
	m.Move(geometry.Pt(1, 0))
	m.Move(geometry.Pt(1, 0))
	m.Move(geometry.Pt(2, 3))
	m.Release()

	got := store.CurrentStrokes()[0].Path.Points
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(1, 0), geometry.Pt(2, 3)}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShapeUsesLastMove(t *testing.T) {
	m, _, store := newTestMachine(tools.Rectangle)
	m.Press(geometry.Pt(10, 10))
	m.Move(geometry.Pt(100, 100))
	m.Move(geometry.Pt(50, 30))
	m.Release()

	p := store.CurrentStrokes()[0].Path
	if p.Width != 40 || p.Height != 20 {
		t.Errorf("got %vx%v, want 40x20", p.Width, p.Height)
	}
}

func TestPressWithoutToolIsIgnored(t *testing.T) {
	m, _, store := newTestMachine(tools.None)
	if m.Press(geometry.Pt(1, 1)) {
		t.Error("press should be rejected without a tool")
	}
	m.Move(geometry.Pt(2, 2))
	if intents := m.Release(); intents != nil {
		t.Errorf("release should be a no-op, got %+v", intents)
	}
	if len(store.CurrentStrokes()) != 0 {
		t.Error("nothing should be committed")
	}
}

func TestMoveAndReleaseWithoutPressAreNoops(t *testing.T) {
	m, _, store := newTestMachine(tools.Pen)
	m.Move(geometry.Pt(5, 5))
	m.Release()
	if len(store.CurrentStrokes()) != 0 || m.Phase() != Idle {
		t.Error("malformed sequence should be ignored")
	}
}

func TestStyleSnapshotAtPress(t *testing.T) {
	m, cfg, store := newTestMachine(tools.Line)
	cfg.SetColor("red")
	cfg.SetPenWidth(5)
	m.Press(geometry.Pt(0, 0))
	cfg.SetPenWidth(20)
	cfg.SetColor("blue")
	m.Move(geometry.Pt(3, 4))
	m.Release()

	st := store.CurrentStrokes()[0]
	if st.Width != 5 || st.Color != "red" {
		t.Errorf("got width %v color %q, want 5 red", st.Width, st.Color)
	}

	m.Press(geometry.Pt(0, 0))
	m.Release()
	if st := store.CurrentStrokes()[1]; st.Width != 20 || st.Color != "blue" {
		t.Errorf("next stroke should use the new style, got %v %q", st.Width, st.Color)
	}
}

func TestEraserStrokeUsesBackground(t *testing.T) {
	m, cfg, store := newTestMachine(tools.Pen)
	cfg.SetColor("green")
	cfg.UseEraser()
	m.Press(geometry.Pt(0, 0))
	m.Release()
	if c := store.CurrentStrokes()[0].Color; c != "#ffffff" {
		t.Errorf("eraser stroke color = %q", c)
	}
}

func TestPreviewNotifications(t *testing.T) {
	m, _, _ := newTestMachine(tools.Circle)
	var previews []Preview
	var phases []Phase
	m.OnPreview(func(p Preview) { previews = append(previews, p) })
	m.OnPhase(func(p Phase) { phases = append(phases, p) })

	m.Press(geometry.Pt(100, 100))
	m.Move(geometry.Pt(100, 150))
	if pv := m.Preview(); !pv.Active || pv.Path.Radius != 50 {
		t.Errorf("live preview = %+v", pv)
	}
	m.Release()

	if len(previews) != 3 {
		t.Fatalf("expected 3 previews, got %d", len(previews))
	}
	if !previews[1].Active || previews[1].Path.Radius != 50 {
		t.Errorf("unexpected move preview %+v", previews[1])
	}
	if previews[2].Active {
		t.Error("release should clear the preview")
	}
	if len(phases) != 2 || phases[0] != Drawing || phases[1] != Idle {
		t.Errorf("phases = %v", phases)
	}
}

func TestSecondPressWhileDrawingIsIgnored(t *testing.T) {
	m, _, store := newTestMachine(tools.Line)
	m.Press(geometry.Pt(0, 0))
	if m.Press(geometry.Pt(9, 9)) {
		t.Error("nested press should be rejected")
	}
	m.Move(geometry.Pt(1, 1))
	m.Release()
	if p := store.CurrentStrokes()[0].Path; p.From != geometry.Pt(0, 0) {
		t.Errorf("anchor moved to %v", p.From)
	}
}
