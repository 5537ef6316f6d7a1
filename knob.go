package pedal

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Knob is a rotatable, positionable control on a pedal panel. Knobs are owned
// by the caller's data layer; a Session only writes PosX, PosY and Rotation
// while a knob is grabbed.
type Knob struct {
	ID   string `mapstructure:"id" json:"id"`
	Name string `mapstructure:"name" json:"name,omitempty"`

	// PosX and PosY are the knob center in panel-local logical units.
	PosX float64 `mapstructure:"x" json:"posX"`
	PosY float64 `mapstructure:"y" json:"posY"`

	// Rotation is in degrees: 0 points up (12 o'clock), increasing clockwise.
	Rotation float64 `mapstructure:"rotation" json:"rotation"`
}

// NewKnob creates a knob at (x, y) with a fresh random ID.
func NewKnob(name string, x, y float64) *Knob {
	return &Knob{ID: uuid.NewString(), Name: name, PosX: x, PosY: y}
}

// Position returns the knob center as a Vec2.
func (k *Knob) Position() Vec2 {
	return Vec2{k.PosX, k.PosY}
}

// Default layout metrics, in logical units.
const (
	DefaultKnobRadius     = 24.0
	DefaultHandleSize     = 12.0
	DefaultHandleDistance = 8.0
)

// Layout is the pedal layout metadata a render pass builds knob geometry from.
type Layout struct {
	// Width and Height are the logical size of the pedal panel.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// OffsetX and OffsetY place the panel on the canvas.
	OffsetX float64 `mapstructure:"offset_x"`
	OffsetY float64 `mapstructure:"offset_y"`

	KnobRadius float64 `mapstructure:"knob_radius"`
	HandleSize float64 `mapstructure:"handle_size"`

	// HandleDistance is the gap between the knob edge and the center of its
	// rotate handle.
	HandleDistance float64 `mapstructure:"handle_distance"`

	Knobs []*Knob `mapstructure:"knobs"`
}

// NewLayout returns a layout of the given panel size using the default knob
// metrics.
func NewLayout(width, height float64, knobs ...*Knob) *Layout {
	return &Layout{
		Width:          width,
		Height:         height,
		KnobRadius:     DefaultKnobRadius,
		HandleSize:     DefaultHandleSize,
		HandleDistance: DefaultHandleDistance,
		Knobs:          knobs,
	}
}

// Validate rejects negative dimensions, nil knobs and duplicate knob IDs.
// Knobs without an ID are assigned one.
func (l *Layout) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"width", l.Width},
		{"height", l.Height},
		{"knob_radius", l.KnobRadius},
		{"handle_size", l.HandleSize},
		{"handle_distance", l.HandleDistance},
	}
	for _, d := range dims {
		if d.v < 0 {
			return fmt.Errorf("layout %s %v: %w", d.name, d.v, ErrNegativeSize)
		}
	}
	seen := make(map[string]bool, len(l.Knobs))
	for i, k := range l.Knobs {
		if k == nil {
			return fmt.Errorf("layout knob %d: nil knob", i)
		}
		if k.ID == "" {
			k.ID = uuid.NewString()
		}
		if seen[k.ID] {
			return fmt.Errorf("layout knob %q: %w", k.ID, ErrDuplicateKnob)
		}
		seen[k.ID] = true
	}
	return nil
}

// Knob returns the knob with the given ID, or nil.
func (l *Layout) Knob(id string) *Knob {
	for _, k := range l.Knobs {
		if k != nil && k.ID == id {
			return k
		}
	}
	return nil
}

// Panel returns the panel rectangle in canvas logical units.
func (l *Layout) Panel() Rect {
	return Rect{l.OffsetX, l.OffsetY, l.Width, l.Height}
}

// KnobShape is the per-render interaction geometry of one knob. Shapes are
// rebuilt every render pass and never persisted.
type KnobShape struct {
	Knob *Knob

	// DragElement, when hit, starts a position drag.
	DragElement Rect
	// RotateElement, when hit, starts a rotation drag.
	RotateElement Rect

	// Selected is the UI highlight flag. HitTest never touches it; Session
	// sets it on pointer-down.
	Selected bool
}

// Shape builds the geometry for a single knob in canvas logical units.
func (l *Layout) Shape(k *Knob) *KnobShape {
	cx := l.OffsetX + k.PosX
	cy := l.OffsetY + k.PosY
	r := l.KnobRadius

	tip := HandleCenter(Vec2{cx, cy}, k.Rotation, r+l.HandleDistance)
	hs := l.HandleSize

	return &KnobShape{
		Knob:          k,
		DragElement:   Rect{cx - r, cy - r, 2 * r, 2 * r},
		RotateElement: Rect{tip.X - hs/2, tip.Y - hs/2, hs, hs},
	}
}

// Shapes builds knob geometry for every knob in layout order. The shape whose
// knob ID equals selectedID is flagged as selected.
func (l *Layout) Shapes(selectedID string) []*KnobShape {
	shapes := make([]*KnobShape, 0, len(l.Knobs))
	for _, k := range l.Knobs {
		if k == nil {
			continue
		}
		s := l.Shape(k)
		s.Selected = selectedID != "" && k.ID == selectedID
		shapes = append(shapes, s)
	}
	return shapes
}

// HandleCenter returns the point at distance dist from center in the direction
// of rotation degrees (0 up, clockwise).
func HandleCenter(center Vec2, rotation, dist float64) Vec2 {
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	return Vec2{center.X + sin*dist, center.Y - cos*dist}
}
