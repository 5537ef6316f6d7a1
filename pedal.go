package pedal

import (
	"errors"
	"fmt"
	"math"
)

// Vec2 is a 2D point or offset in logical canvas units (resolution = 1).
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. A rectangle with zero or negative
// width or height contains nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale returns r with every component multiplied by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{r.X * f, r.Y * f, r.Width * f, r.Height * f}
}

// Validate returns an error wrapping ErrNegativeSize when the rectangle has a
// negative width or height.
func (r Rect) Validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("rect %vx%v: %w", r.Width, r.Height, ErrNegativeSize)
	}
	return nil
}

// Errors returned by construction-time validation. Pointer handling itself
// never fails.
var (
	ErrNegativeSize      = errors.New("pedal: negative size")
	ErrInvalidResolution = errors.New("pedal: resolution must be a positive finite number")
	ErrDuplicateKnob     = errors.New("pedal: duplicate knob id")
)

// Resolution is the render scale factor between logical units and device
// pixels. The same value must be used to draw and to interpret pointer input.
type Resolution float64

// DefaultResolution matches a 2x backing store, the usual setting for HiDPI
// canvases.
const DefaultResolution Resolution = 2

// Validate returns ErrInvalidResolution unless r is positive and finite.
func (r Resolution) Validate() error {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("resolution %v: %w", f, ErrInvalidResolution)
	}
	return nil
}

// ToLogical converts a device-pixel position to logical units.
func (r Resolution) ToLogical(p Vec2) Vec2 {
	return Vec2{p.X / float64(r), p.Y / float64(r)}
}

// ToDevice converts a logical position to device pixels.
func (r Resolution) ToDevice(p Vec2) Vec2 {
	return Vec2{p.X * float64(r), p.Y * float64(r)}
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // primary button pressed
	EventPointerMove                  // pointer moved (with or without a button held)
	EventPointerUp                    // primary button released
	EventPointerOut                   // pointer left the canvas
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "down"
	case EventPointerMove:
		return "move"
	case EventPointerUp:
		return "up"
	case EventPointerOut:
		return "out"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// PointerEvent is a single pointer sample in logical units.
type PointerEvent struct {
	Type EventType
	Pos  Vec2
}

// State is the interaction state of a Session.
type State uint8

const (
	StateIdle     State = iota // no knob grabbed
	StateDragging              // a drag region was hit; moves translate the knob
	StateRotating              // a rotate region was hit; moves set the knob rotation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateRotating:
		return "rotating"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
