package viewport

import (
	"math"

	"LocalBoard/internal/geometry"
)

const (
	MinScale = 0.5
	MaxScale = 5.0
)

// State is the pan/zoom applied at render time. It never changes the
// coordinates strokes are recorded in.
type State struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity is the untransformed view.
var Identity = State{Scale: 1}

// ToScreen maps a canvas point to the screen: translate, then scale (T·S).
// Translation is in screen units and is not affected by scale.
func (s State) ToScreen(p geometry.Point) geometry.Point {
	return geometry.Pt(s.TranslateX+s.Scale*p.X, s.TranslateY+s.Scale*p.Y)
}

// ToCanvas is the inverse of ToScreen.
func (s State) ToCanvas(p geometry.Point) geometry.Point {
	return geometry.Pt((p.X-s.TranslateX)/s.Scale, (p.Y-s.TranslateY)/s.Scale)
}

// Viewport tracks the view state and the two continuous gestures that drive
// it. Pinch and pan may run at the same time.
type Viewport struct {
	state    State
	minScale float64
	maxScale float64

	pinching  bool
	baseScale float64

	panning      bool
	lastX, lastY float64

	onChange []func(State)
}

// New returns an identity viewport limited to [minScale, maxScale]. Zero
// limits fall back to MinScale and MaxScale, and limits outside that range
// are narrowed to it.
func New(minScale, maxScale float64) *Viewport {
	if !finite(minScale) || minScale < MinScale || minScale > MaxScale {
		minScale = MinScale
	}
	if !finite(maxScale) || maxScale > MaxScale || maxScale < minScale {
		maxScale = MaxScale
	}
	return &Viewport{state: Identity, minScale: minScale, maxScale: maxScale}
}

func (v *Viewport) State() State { return v.state }

// OnChange registers fn to be called whenever the view state changes.
func (v *Viewport) OnChange(fn func(State)) { v.onChange = append(v.onChange, fn) }

// Active reports whether a pinch or pan gesture is in progress.
func (v *Viewport) Active() bool { return v.pinching || v.panning }

// PinchBegin starts a pinch gesture, anchoring on the current scale.
func (v *Viewport) PinchBegin() {
	v.pinching = true
	v.baseScale = v.state.Scale
}

// PinchUpdate applies factor, the gesture's cumulative scale since it began,
// relative to the scale at PinchBegin.
func (v *Viewport) PinchUpdate(factor float64) {
	if !v.pinching || !finite(factor) || factor <= 0 {
		return
	}
	v.state.Scale = v.clamp(v.baseScale * factor)
	v.emit()
}

// PinchEnd finishes the pinch and clamps the scale into range.
func (v *Viewport) PinchEnd() {
	if !v.pinching {
		return
	}
	v.pinching = false
	v.state.Scale = v.clamp(v.state.Scale)
	v.emit()
}

// PanBegin starts a pan whose updates report cumulative translation; tx, ty
// is the translation already reported at the start.
func (v *Viewport) PanBegin(tx, ty float64) {
	v.panning = true
	v.lastX, v.lastY = tx, ty
}

// PanUpdate adds the movement since the previous update.
func (v *Viewport) PanUpdate(tx, ty float64) {
	if !v.panning {
		return
	}
	v.state.TranslateX += tx - v.lastX
	v.state.TranslateY += ty - v.lastY
	v.lastX, v.lastY = tx, ty
	v.emit()
}

func (v *Viewport) PanEnd() { v.panning = false }

// PanBy adds an incremental delta, as delivered by arrow keys and other
// stepwise input.
func (v *Viewport) PanBy(dx, dy float64) {
	v.state.TranslateX += dx
	v.state.TranslateY += dy
	v.emit()
}

// ZoomAt multiplies the scale by factor, keeping the screen point focus
// over the same canvas point.
func (v *Viewport) ZoomAt(factor float64, focus geometry.Point) {
	if !finite(factor) || factor <= 0 {
		return
	}
	anchor := v.state.ToCanvas(focus)
	v.state.Scale = v.clamp(v.state.Scale * factor)
	v.state.TranslateX = focus.X - v.state.Scale*anchor.X
	v.state.TranslateY = focus.Y - v.state.Scale*anchor.Y
	v.emit()
}

// Reset returns to the identity view. It is only ever called on request.
func (v *Viewport) Reset() {
	v.state = Identity
	v.emit()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v *Viewport) clamp(s float64) float64 {
	return min(max(s, v.minScale), v.maxScale)
}

func (v *Viewport) emit() {
	for _, fn := range v.onChange {
		fn(v.state)
	}
}
