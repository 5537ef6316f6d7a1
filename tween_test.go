package pedal

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenKnob_ReachesTarget(t *testing.T) {
	k := &Knob{ID: "gain", PosX: 0, PosY: 0, Rotation: 0}
	tw := TweenKnob(k, 100, 50, 90, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("tween should not be done halfway")
	}
	if k.PosX <= 0 || k.PosX >= 100 {
		t.Errorf("halfway PosX = %v, want between 0 and 100", k.PosX)
	}

	tw.Update(0.6)
	if !tw.Done {
		t.Fatal("tween should be done after full duration")
	}
	if k.PosX != 100 || k.PosY != 50 || k.Rotation != 90 {
		t.Errorf("knob = (%v, %v, %v), want (100, 50, 90)", k.PosX, k.PosY, k.Rotation)
	}
	if tw.Knob() != k {
		t.Error("Knob() should return the animated knob")
	}
}

func TestTweenKnob_Stop(t *testing.T) {
	k := &Knob{ID: "gain"}
	tw := TweenKnob(k, 100, 100, 0, 1.0, ease.Linear)
	tw.Update(0.25)
	x := k.PosX
	tw.Stop()
	tw.Update(0.5)
	if k.PosX != x {
		t.Errorf("stopped tween moved knob from %v to %v", x, k.PosX)
	}
}

func TestPulse_Bounces(t *testing.T) {
	p := NewPulse(0.5)
	if v := p.Update(0.25); v <= 0 || v >= 1 {
		t.Errorf("rising value = %v, want in (0, 1)", v)
	}
	if v := p.Update(0.3); v != 1 {
		t.Errorf("peak value = %v, want 1", v)
	}
	if v := p.Update(0.25); v <= 0 || v >= 1 {
		t.Errorf("falling value = %v, want in (0, 1)", v)
	}
	if p.Value() != p.Update(0) {
		t.Error("Value() should match the last update")
	}
}
