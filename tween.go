package pedal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// KnobTween animates a knob's position and rotation toward target values.
// Call Update(dt) each frame; values are written straight to the knob.
//
// There is no global animation manager; hosts call Update themselves.
type KnobTween struct {
	tweens [3]*gween.Tween
	fields [3]*float64
	knob   *Knob
	Done   bool
}

// TweenKnob creates a KnobTween that moves k to (toX, toY) and turns it to
// toRot degrees over duration seconds using the easing function.
func TweenKnob(k *Knob, toX, toY, toRot float64, duration float32, fn ease.TweenFunc) *KnobTween {
	t := &KnobTween{knob: k}
	t.tweens[0] = gween.New(float32(k.PosX), float32(toX), duration, fn)
	t.tweens[1] = gween.New(float32(k.PosY), float32(toY), duration, fn)
	t.tweens[2] = gween.New(float32(k.Rotation), float32(toRot), duration, fn)
	t.fields[0] = &k.PosX
	t.fields[1] = &k.PosY
	t.fields[2] = &k.Rotation
	return t
}

// Knob returns the animated knob.
func (t *KnobTween) Knob() *Knob {
	return t.knob
}

// Update advances the tween by dt seconds and writes the values to the knob.
func (t *KnobTween) Update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

// Stop ends the tween, leaving the knob where it is.
func (t *KnobTween) Stop() {
	t.Done = true
}

// Pulse is a looping 0..1..0 value, used for the selection highlight.
type Pulse struct {
	tween  *gween.Tween
	period float32
	up     bool
	value  float64
}

// NewPulse returns a pulse that takes period seconds to go from 0 to 1.
func NewPulse(period float32) *Pulse {
	p := &Pulse{period: period, up: true}
	p.tween = gween.New(0, 1, period, ease.InOutSine)
	return p
}

// Update advances the pulse by dt seconds and returns the current value.
func (p *Pulse) Update(dt float32) float64 {
	val, finished := p.tween.Update(dt)
	p.value = float64(val)
	if finished {
		p.up = !p.up
		if p.up {
			p.tween = gween.New(0, 1, p.period, ease.InOutSine)
		} else {
			p.tween = gween.New(1, 0, p.period, ease.InOutSine)
		}
	}
	return p.value
}

// Value returns the last computed value.
func (p *Pulse) Value() float64 {
	return p.value
}
