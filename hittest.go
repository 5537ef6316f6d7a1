package pedal

// HitResult is the outcome of HitTest.
type HitResult struct {
	Shape  *KnobShape // nil on a miss
	Index  int        // position of Shape in the tested slice, -1 on a miss
	Rotate bool       // true when the rotate region was hit
}

// Hit reports whether any knob was hit.
func (r HitResult) Hit() bool {
	return r.Shape != nil
}

var noHit = HitResult{Index: -1}

// HitTest finds the knob targeted by pos. Shapes are tested in slice order;
// for each shape the drag region is checked before the rotate region and the
// first region containing pos wins, so overlapping knobs resolve to the
// earlier one.
//
// pos and the shape regions must be in the same coordinate space; HitTest does
// no scaling. It does not modify the shapes.
func HitTest(pos Vec2, shapes []*KnobShape) HitResult {
	for i, s := range shapes {
		if s == nil || s.Knob == nil {
			continue
		}
		if s.DragElement.ContainsPoint(pos) {
			return HitResult{Shape: s, Index: i}
		}
		if s.RotateElement.ContainsPoint(pos) {
			return HitResult{Shape: s, Index: i, Rotate: true}
		}
	}
	return noHit
}
