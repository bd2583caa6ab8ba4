package input

import (
	"LocalBoard/internal/geometry"
	"LocalBoard/internal/state"
	"LocalBoard/internal/tools"
)

// Phase is the gesture state of the machine.
type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	if p == Drawing {
		return "drawing"
	}
	return "idle"
}

// Style supplies the tool and stroke style at press time.
type Style interface {
	Tool() tools.Tool
	EffectiveColor() string
	PenWidth() int
}

// Committer receives finished strokes.
type Committer interface {
	Commit(st state.Stroke) []state.Intent
}

// Preview is the in-progress stroke handed to the renderer. Active is false
// once the gesture ends and the preview should be cleared.
type Preview struct {
	Active bool
	Path   geometry.Path
	Color  string
	Width  float64
}

// Machine turns press/move/release sequences into committed strokes.
type Machine struct {
	style  Style
	commit Committer

	phase   Phase
	kind    geometry.Kind
	anchor  geometry.Point
	last    geometry.Point
	buffer  []geometry.Point
	color   string
	width   float64
	preview geometry.Path

	onPreview []func(Preview)
	onPhase   []func(Phase)
}

func NewMachine(style Style, commit Committer) *Machine {
	return &Machine{style: style, commit: commit}
}

// OnPreview registers fn to receive the live path after every change.
func (m *Machine) OnPreview(fn func(Preview)) { m.onPreview = append(m.onPreview, fn) }

// OnPhase registers fn to be called on every phase transition.
func (m *Machine) OnPhase(fn func(Phase)) { m.onPhase = append(m.onPhase, fn) }

func (m *Machine) Phase() Phase { return m.phase }

// Preview returns the current live path.
func (m *Machine) Preview() Preview {
	if m.phase != Drawing {
		return Preview{}
	}
	return Preview{Active: true, Path: m.preview, Color: m.color, Width: m.width}
}

// Press starts a stroke at p. It does nothing and returns false when no
// drawing tool is selected or a stroke is already in progress. Color and
// width are fixed here for the whole stroke.
func (m *Machine) Press(p geometry.Point) bool {
	if m.phase == Drawing {
		return false
	}
	kind := m.style.Tool().Kind()
	if !kind.Valid() {
		return false
	}
	m.kind = kind
	m.anchor, m.last = p, p
	m.color = m.style.EffectiveColor()
	m.width = float64(m.style.PenWidth())
	m.buffer = m.buffer[:0]
	if kind == geometry.KindFreehand {
		m.buffer = append(m.buffer, p)
	}
	m.phase = Drawing
	m.rebuild()
	m.emitPhase()
	return true
}

// Move extends the stroke to p. Ignored outside a gesture.
func (m *Machine) Move(p geometry.Point) {
	if m.phase != Drawing {
		return
	}
	m.last = p
	if m.kind == geometry.KindFreehand {
		m.buffer = append(m.buffer, p)
	}
	m.rebuild()
}

// Release ends the gesture and commits the stroke, returning the intents of
// the commit. A release without movement still commits a degenerate stroke.
// Ignored outside a gesture.
func (m *Machine) Release() []state.Intent {
	if m.phase != Drawing {
		return nil
	}
	path, _ := geometry.Build(m.kind, m.anchor, m.last, m.buffer)
	st := state.Stroke{Path: path, Color: m.color, Width: m.width}

	m.phase = Idle
	m.kind = ""
	m.buffer = nil
	m.preview = geometry.Path{}
	m.anchor, m.last = geometry.Point{}, geometry.Point{}

	intents := m.commit.Commit(st)
	m.emitPreview()
	m.emitPhase()
	return intents
}

func (m *Machine) rebuild() {
	m.preview, _ = geometry.Build(m.kind, m.anchor, m.last, m.buffer)
	m.emitPreview()
}

func (m *Machine) emitPreview() {
	pv := m.Preview()
	for _, fn := range m.onPreview {
		fn(pv)
	}
}

func (m *Machine) emitPhase() {
	for _, fn := range m.onPhase {
		fn(m.phase)
	}
}
