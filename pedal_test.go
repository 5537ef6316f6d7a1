package pedal

import (
	"errors"
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{5, 7}
	b := Vec2{2, 10}
	if got := a.Sub(b); got != (Vec2{3, -3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Add(b); got != (Vec2{7, 17}) {
		t.Errorf("Add = %v", got)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if got := r.Center(); got != (Vec2{25, 40}) {
		t.Errorf("Center() = %v", got)
	}
	if got := r.Translate(1, -1); got != (Rect{11, 19, 30, 40}) {
		t.Errorf("Translate() = %v", got)
	}
	if got := r.Scale(2); got != (Rect{20, 40, 60, 80}) {
		t.Errorf("Scale() = %v", got)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := (Rect{Width: -1}).Validate(); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("Validate() = %v, want ErrNegativeSize", err)
	}
}

func TestResolutionValidate(t *testing.T) {
	tests := []struct {
		res  Resolution
		want bool
	}{
		{1, true},
		{2, true},
		{0.5, true},
		{0, false},
		{-2, false},
		{Resolution(math.NaN()), false},
		{Resolution(math.Inf(1)), false},
	}
	for _, tt := range tests {
		err := tt.res.Validate()
		if (err == nil) != tt.want {
			t.Errorf("Resolution(%v).Validate() = %v", float64(tt.res), err)
		}
		if err != nil && !errors.Is(err, ErrInvalidResolution) {
			t.Errorf("Resolution(%v).Validate() = %v, want ErrInvalidResolution", float64(tt.res), err)
		}
	}
}

func TestResolutionRoundTrip(t *testing.T) {
	res := Resolution(2)
	p := Vec2{220, 140}
	l := res.ToLogical(p)
	if l != (Vec2{110, 70}) {
		t.Errorf("ToLogical(%v) = %v", p, l)
	}
	if back := res.ToDevice(l); back != p {
		t.Errorf("ToDevice(%v) = %v, want %v", l, back, p)
	}
}

func TestEnumStrings(t *testing.T) {
	if EventPointerOut.String() != "out" || EventType(42).String() != "EventType(42)" {
		t.Error("EventType.String mismatch")
	}
	if StateRotating.String() != "rotating" || State(9).String() != "State(9)" {
		t.Error("State.String mismatch")
	}
}
