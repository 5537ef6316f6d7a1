package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pedal"
)

// sample is one frame of mouse state in device pixels.
type sample struct {
	x, y     float64
	pressed  bool // left button went down this frame
	released bool // left button went up this frame
	inside   bool // cursor is within the canvas
}

// readSample reads the mouse from ebiten. w and h are the canvas size in
// device pixels.
func readSample(w, h int) sample {
	mx, my := ebiten.CursorPosition()
	return sample{
		x:        float64(mx),
		y:        float64(my),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		inside:   mx >= 0 && my >= 0 && mx < w && my < h,
	}
}

// pointerEvents turns the transition from prev to cur into pointer events in
// logical units. Leaving the canvas produces a single out event; nothing else
// is reported while the cursor is outside.
func pointerEvents(prev, cur sample, res pedal.Resolution) []pedal.PointerEvent {
	if !cur.inside {
		if prev.inside {
			return []pedal.PointerEvent{{Type: pedal.EventPointerOut, Pos: res.ToLogical(pedal.Vec2{X: prev.x, Y: prev.y})}}
		}
		return nil
	}

	pos := res.ToLogical(pedal.Vec2{X: cur.x, Y: cur.y})
	var evs []pedal.PointerEvent
	switch {
	case cur.pressed:
		evs = append(evs, pedal.PointerEvent{Type: pedal.EventPointerDown, Pos: pos})
	case cur.x != prev.x || cur.y != prev.y:
		evs = append(evs, pedal.PointerEvent{Type: pedal.EventPointerMove, Pos: pos})
	}
	if cur.released {
		evs = append(evs, pedal.PointerEvent{Type: pedal.EventPointerUp, Pos: pos})
	}
	return evs
}
