// Package board ties the whiteboard components together and routes input
// events to them. Every event is checked against the current mode when it
// arrives, so drawing and viewport gestures can never overlap.
package board

import (
	"errors"
	"fmt"
	"log"

	"LocalBoard/internal/geometry"
	"LocalBoard/internal/input"
	"LocalBoard/internal/state"
	"LocalBoard/internal/tools"
	"LocalBoard/internal/viewport"
)

// ErrDrawing is returned by page navigation attempted during a stroke.
var ErrDrawing = errors.New("stroke in progress")

// Mode is what the board is currently doing with pointer input.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeViewport
)

func (m Mode) String() string {
	switch m {
	case ModeDrawing:
		return "drawing"
	case ModeViewport:
		return "viewport"
	}
	return "idle"
}

// Effects executes persistence intents. persist.Runner implements it.
type Effects interface {
	Run(intents []state.Intent)
}

// Options configures a new Board.
type Options struct {
	Color      string // initial pen color
	Background string // canvas color, painted by the eraser
	MinScale   float64
	MaxScale   float64
}

type Board struct {
	store   *state.Store
	tools   *tools.Config
	machine *input.Machine
	view    *viewport.Viewport
	effects Effects

	onChange []func()
}

// New builds a board over store. A nil store starts from an empty document.
func New(store *state.Store, opts Options) *Board {
	if store == nil {
		store = state.NewStore()
	}
	if opts.Color == "" {
		opts.Color = "black"
	}
	if opts.Background == "" {
		opts.Background = "#ffffff"
	}
	b := &Board{
		store: store,
		tools: tools.New(opts.Color, opts.Background),
		view:  viewport.New(opts.MinScale, opts.MaxScale),
	}
	b.machine = input.NewMachine(b.tools, store)

	store.Subscribe(b.changed)
	b.machine.OnPreview(func(input.Preview) { b.changed() })
	b.view.OnChange(func(viewport.State) { b.changed() })
	return b
}

// SetEffects attaches the runner that mirrors mutations to storage. Without
// one the document lives only in memory.
func (b *Board) SetEffects(e Effects) { b.effects = e }

// OnChange registers fn to be called whenever anything visible changes.
func (b *Board) OnChange(fn func()) { b.onChange = append(b.onChange, fn) }

func (b *Board) Store() *state.Store  { return b.store }
func (b *Board) Tools() *tools.Config { return b.tools }
func (b *Board) View() viewport.State { return b.view.State() }

// Mode reports the current input mode.
func (b *Board) Mode() Mode {
	if b.machine.Phase() == input.Drawing {
		return ModeDrawing
	}
	if b.view.Active() {
		return ModeViewport
	}
	return ModeIdle
}

// Press starts a stroke at a screen position. It is refused while a
// viewport gesture runs or when no drawing tool is selected.
func (b *Board) Press(screen geometry.Point) bool {
	if b.Mode() != ModeIdle {
		return false
	}
	return b.machine.Press(b.view.State().ToCanvas(screen))
}

// Move continues the stroke. Ignored when not drawing.
func (b *Board) Move(screen geometry.Point) {
	if b.Mode() != ModeDrawing {
		return
	}
	b.machine.Move(b.view.State().ToCanvas(screen))
}

// Release commits the stroke in progress.
func (b *Board) Release() {
	b.run(b.machine.Release())
}

// PinchBegin and the other viewport entry points return false when they
// were dropped because a stroke is in progress.
func (b *Board) PinchBegin() bool {
	if b.Mode() == ModeDrawing {
		return false
	}
	b.view.PinchBegin()
	return true
}

func (b *Board) PinchUpdate(factor float64) bool {
	if b.Mode() == ModeDrawing {
		return false
	}
	b.view.PinchUpdate(factor)
	return true
}

func (b *Board) PinchEnd() {
	b.view.PinchEnd()
}

func (b *Board) PanBegin(tx, ty float64) bool {
	if b.Mode() == ModeDrawing {
		return false
	}
	b.view.PanBegin(tx, ty)
	return true
}

func (b *Board) PanUpdate(tx, ty float64) bool {
	if b.Mode() == ModeDrawing {
		return false
	}
	b.view.PanUpdate(tx, ty)
	return true
}

func (b *Board) PanEnd() {
	b.view.PanEnd()
}

// PanBy pans by an incremental screen delta.
func (b *Board) PanBy(dx, dy float64) bool {
	if b.Mode() == ModeDrawing {
		return false
	}
	b.view.PanBy(dx, dy)
	return true
}

// ZoomAt zooms around a screen point.
func (b *Board) ZoomAt(factor float64, focus geometry.Point) bool {
	if b.Mode() == ModeDrawing {
		return false
	}
	b.view.ZoomAt(factor, focus)
	return true
}

// ResetView returns to the identity view.
func (b *Board) ResetView() {
	b.view.Reset()
}

// Undo removes the last stroke of the current page.
func (b *Board) Undo() {
	intents, _ := b.store.Undo()
	b.run(intents)
}

// Clear empties the current page.
func (b *Board) Clear() {
	b.run(b.store.ClearCurrentPage())
}

// NewPage adds a page and shows it. It fails with ErrDrawing mid-stroke so
// the stroke lands on the page it was started on.
func (b *Board) NewPage() error {
	if b.Mode() == ModeDrawing {
		log.Printf("[BOARD] New page refused: %v", ErrDrawing)
		return fmt.Errorf("new page: %w", ErrDrawing)
	}
	b.run(b.store.NewPage())
	return nil
}

// SwitchPage shows page index. It fails with ErrDrawing mid-stroke and with
// state.ErrOutOfRange for an unknown page.
func (b *Board) SwitchPage(index int) error {
	if b.Mode() == ModeDrawing {
		log.Printf("[BOARD] Switch to page %d refused: %v", index, ErrDrawing)
		return fmt.Errorf("switch page: %w", ErrDrawing)
	}
	intents, err := b.store.SwitchPage(index)
	if err != nil {
		return err
	}
	b.run(intents)
	return nil
}

func (b *Board) run(intents []state.Intent) {
	if b.effects != nil && len(intents) > 0 {
		b.effects.Run(intents)
	}
}

func (b *Board) changed() {
	for _, fn := range b.onChange {
		fn()
	}
}
