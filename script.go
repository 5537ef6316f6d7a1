package pedal

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// scriptStep represents a single action in a replay script. Coordinates are in
// device pixels, the same space a browser or window reports the mouse in.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a replay script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded sequence of pointer actions that can be replayed
// against a Session, for tests and headless tooling.
type Script struct {
	steps []scriptStep
}

// deviceEvent is one expanded pointer event in device pixels.
type deviceEvent struct {
	typ  EventType
	x, y float64
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "down", "move", "up", "out", "click", "drag":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps in the script.
func (sc *Script) Len() int {
	return len(sc.steps)
}

// events expands the script into individual pointer events.
func (sc *Script) events() []deviceEvent {
	var out []deviceEvent
	for _, st := range sc.steps {
		switch st.Action {
		case "down":
			out = append(out, deviceEvent{EventPointerDown, st.X, st.Y})
		case "move":
			out = append(out, deviceEvent{EventPointerMove, st.X, st.Y})
		case "up":
			out = append(out, deviceEvent{EventPointerUp, st.X, st.Y})
		case "out":
			out = append(out, deviceEvent{EventPointerOut, st.X, st.Y})
		case "click":
			out = append(out,
				deviceEvent{EventPointerDown, st.X, st.Y},
				deviceEvent{EventPointerUp, st.X, st.Y})
		case "drag":
			out = append(out, dragEvents(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)...)
		}
	}
	return out
}

// dragEvents expands a drag into press at (fromX, fromY), frames-2 linearly
// interpolated moves, a final move to (toX, toY) and a release. Minimum frames
// is 2.
func dragEvents(fromX, fromY, toX, toY float64, frames int) []deviceEvent {
	if frames < 2 {
		frames = 2
	}
	out := []deviceEvent{{EventPointerDown, fromX, fromY}}
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		out = append(out, deviceEvent{EventPointerMove, fromX + (toX-fromX)*t, fromY + (toY-fromY)*t})
	}
	out = append(out,
		deviceEvent{EventPointerMove, toX, toY},
		deviceEvent{EventPointerUp, toX, toY})
	return out
}

// Run replays the script against s. Each sample is converted to logical units
// with res, and knob shapes are rebuilt from layout before every pointer-down,
// as a render pass would. It returns the number of events that requested a
// redraw.
func (sc *Script) Run(s *Session, layout *Layout, res Resolution) (int, error) {
	if err := res.Validate(); err != nil {
		return 0, fmt.Errorf("run script: %w", err)
	}
	if layout == nil {
		return 0, errors.New("run script: nil layout")
	}
	redraws := 0
	for _, ev := range sc.events() {
		pos := res.ToLogical(Vec2{ev.x, ev.y})
		var shapes []*KnobShape
		if ev.typ == EventPointerDown {
			shapes = layout.Shapes(s.SelectedID())
		}
		if s.Handle(PointerEvent{Type: ev.typ, Pos: pos}, shapes) {
			redraws++
		}
	}
	return redraws, nil
}
