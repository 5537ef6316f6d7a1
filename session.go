package pedal

import (
	"math"

	"go.uber.org/zap"
)

// --- Callback contexts ---

// SelectContext carries selection change data. Knob is nil on deselect.
type SelectContext struct {
	Knob     *Knob
	Previous *Knob
	Pos      Vec2
}

// KnobContext carries data for knob change and release events.
type KnobContext struct {
	Knob  *Knob
	Shape *KnobShape // nil for changes made through SetSelected*
	State State
	Pos   Vec2
	// DeltaX and DeltaY are the position change applied by this event.
	DeltaX, DeltaY float64
	// Rotation is the knob rotation after this event.
	Rotation float64
}

// --- Handler registry ---

type callbackKind uint8

const (
	callbackSelect callbackKind = iota
	callbackChange
	callbackRelease
)

type selectHandler struct {
	id uint32
	fn func(SelectContext)
}

type knobHandler struct {
	id uint32
	fn func(KnobContext)
}

type handlerRegistry struct {
	sel     []selectHandler
	change  []knobHandler
	release []knobHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered session callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackSelect:
		h.reg.sel = removeSelectHandler(h.reg.sel, h.id)
	case callbackChange:
		h.reg.change = removeKnobHandler(h.reg.change, h.id)
	case callbackRelease:
		h.reg.release = removeKnobHandler(h.reg.release, h.id)
	}
}

func removeSelectHandler(s []selectHandler, id uint32) []selectHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeKnobHandler(s []knobHandler, id uint32) []knobHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = knobHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Session ---

// grab is the target of an active drag or rotation. It only exists between a
// successful pointer-down and the next pointer-up or pointer-out.
type grab struct {
	shape  *KnobShape
	rotate bool
}

// Session is the pointer interaction state machine for one canvas. It owns
// the selected knob, the grabbed knob and the last pointer sample, and writes
// knob position or rotation as the pointer moves.
//
// Session is not safe for concurrent use; feed it events from one goroutine.
type Session struct {
	selected *Knob
	grab     *grab
	last     Vec2

	handlers handlerRegistry
	log      *zap.Logger
}

// NewSession returns an idle session with nothing selected.
func NewSession() *Session {
	return &Session{log: zap.NewNop()}
}

// SetLogger sets the logger used for debug records. nil restores the no-op
// logger.
func (s *Session) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// State returns the current interaction state.
func (s *Session) State() State {
	switch {
	case s.grab == nil:
		return StateIdle
	case s.grab.rotate:
		return StateRotating
	default:
		return StateDragging
	}
}

// Selected returns the selected knob, or nil. Selection survives pointer-up so
// a property overlay can stay visible after a drag.
func (s *Session) Selected() *Knob {
	return s.selected
}

// SelectedID returns the ID of the selected knob, or "".
func (s *Session) SelectedID() string {
	if s.selected == nil {
		return ""
	}
	return s.selected.ID
}

// Target returns the grabbed knob shape, or nil when idle.
func (s *Session) Target() *KnobShape {
	if s.grab == nil {
		return nil
	}
	return s.grab.shape
}

// Last returns the most recent pointer sample recorded by a pointer-down or
// a grabbed move.
func (s *Session) Last() Vec2 {
	return s.last
}

// OnSelect registers a callback fired when the selected knob changes.
func (s *Session) OnSelect(fn func(SelectContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.sel = append(s.handlers.sel, selectHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackSelect}
}

// OnChange registers a callback fired after every knob mutation. Hosts use it
// as the redraw request and to mirror the knob fields into other widgets.
func (s *Session) OnChange(fn func(KnobContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.change = append(s.handlers.change, knobHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackChange}
}

// OnRelease registers a callback fired when a grabbed knob is released by
// pointer-up or pointer-out.
func (s *Session) OnRelease(fn func(KnobContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.release = append(s.handlers.release, knobHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: callbackRelease}
}

// Handle dispatches ev to the matching pointer method. shapes is only used by
// pointer-down. It reports whether the host should redraw.
func (s *Session) Handle(ev PointerEvent, shapes []*KnobShape) bool {
	switch ev.Type {
	case EventPointerDown:
		return s.PointerDown(ev.Pos, shapes)
	case EventPointerMove:
		return s.PointerMove(ev.Pos)
	case EventPointerUp:
		return s.PointerUp()
	case EventPointerOut:
		return s.PointerOut()
	}
	return false
}

// PointerDown hit-tests pos against shapes. A hit grabs the knob in drag or
// rotate mode and selects it; a miss clears the selection. The Selected flag
// of every shape is updated to match. A grab still held from an earlier press
// is released first.
func (s *Session) PointerDown(pos Vec2, shapes []*KnobShape) bool {
	if s.grab != nil {
		s.release(pos)
	}

	hit := HitTest(pos, shapes)
	for _, sh := range shapes {
		if sh != nil {
			sh.Selected = sh == hit.Shape
		}
	}

	if !hit.Hit() {
		s.log.Debug("pointer down missed", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
		return s.setSelected(nil, pos)
	}

	s.grab = &grab{shape: hit.Shape, rotate: hit.Rotate}
	s.last = pos
	s.log.Debug("knob grabbed",
		zap.String("knob", hit.Shape.Knob.ID),
		zap.Stringer("state", s.State()),
		zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	s.setSelected(hit.Shape.Knob, pos)
	return true
}

// PointerMove applies the movement since the last sample to the grabbed knob.
// When idle it does nothing and returns false.
func (s *Session) PointerMove(pos Vec2) bool {
	g := s.grab
	if g == nil {
		return false
	}
	k := g.shape.Knob
	delta := pos.Sub(s.last)
	s.last = pos

	ctx := KnobContext{Knob: k, Shape: g.shape, State: s.State(), Pos: pos}
	if g.rotate {
		k.Rotation = RotationDegrees(pos, delta)
	} else {
		k.PosX += delta.X
		k.PosY += delta.Y
		ctx.DeltaX, ctx.DeltaY = delta.X, delta.Y
	}
	ctx.Rotation = k.Rotation
	s.fireChange(ctx)
	return true
}

// PointerUp releases the grabbed knob. The selection is kept. Calling it while
// idle is a no-op that returns false.
func (s *Session) PointerUp() bool {
	if s.grab == nil {
		return false
	}
	s.release(s.last)
	return true
}

// PointerOut treats the pointer leaving the canvas as a release so a drag
// cannot get stuck.
func (s *Session) PointerOut() bool {
	return s.PointerUp()
}

// Deselect clears the selection and releases any grab.
func (s *Session) Deselect() bool {
	released := false
	if s.grab != nil {
		s.grab.shape.Selected = false
		s.release(s.last)
		released = true
	}
	return s.setSelected(nil, s.last) || released
}

// SetSelectedPosition writes the selected knob's position, as a numeric
// property editor would. It returns false when nothing is selected.
func (s *Session) SetSelectedPosition(x, y float64) bool {
	k := s.selected
	if k == nil {
		return false
	}
	dx, dy := x-k.PosX, y-k.PosY
	k.PosX, k.PosY = x, y
	s.fireChange(KnobContext{Knob: k, State: s.State(), Pos: s.last, DeltaX: dx, DeltaY: dy, Rotation: k.Rotation})
	return true
}

// SetSelectedRotation writes the selected knob's rotation in degrees. NaN and
// infinite values are ignored.
func (s *Session) SetSelectedRotation(deg float64) bool {
	k := s.selected
	if k == nil || math.IsNaN(deg) || math.IsInf(deg, 0) {
		return false
	}
	k.Rotation = deg
	s.fireChange(KnobContext{Knob: k, State: s.State(), Pos: s.last, Rotation: deg})
	return true
}

func (s *Session) release(pos Vec2) {
	g := s.grab
	s.grab = nil
	k := g.shape.Knob
	s.log.Debug("knob released",
		zap.String("knob", k.ID),
		zap.Float64("posX", k.PosX), zap.Float64("posY", k.PosY),
		zap.Float64("rotation", k.Rotation))
	state := StateDragging
	if g.rotate {
		state = StateRotating
	}
	ctx := KnobContext{Knob: k, Shape: g.shape, State: state, Pos: pos, Rotation: k.Rotation}
	for _, h := range s.handlers.release {
		h.fn(ctx)
	}
}

func (s *Session) setSelected(k *Knob, pos Vec2) bool {
	prev := s.selected
	if prev == k {
		return false
	}
	s.selected = k
	ctx := SelectContext{Knob: k, Previous: prev, Pos: pos}
	for _, h := range s.handlers.sel {
		h.fn(ctx)
	}
	return true
}

func (s *Session) fireChange(ctx KnobContext) {
	for _, h := range s.handlers.change {
		h.fn(ctx)
	}
}

// RotationDegrees computes a knob rotation from a pointer sample and the delta
// since the previous sample:
//
//	radians = atan2(pos.X - delta.X, pos.Y - delta.Y)
//	degrees = radians * (180/π) * -1 + 90
//
// pos - delta is the previous sample, so the angle is that of the previous
// sample measured from the canvas origin, not from the knob. atan2(0, 0) is 0.
func RotationDegrees(pos, delta Vec2) float64 {
	radians := math.Atan2(pos.X-delta.X, pos.Y-delta.Y)
	return radians*(180/math.Pi)*-1 + 90
}
