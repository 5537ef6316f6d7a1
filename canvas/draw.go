package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/pedal"
)

var (
	colorBackground = color.RGBA{R: 0x12, G: 0x1a, B: 0x33, A: 0xff}
	colorPanel      = color.RGBA{R: 0x2b, G: 0x2f, B: 0x3a, A: 0xff}
	colorPanelEdge  = color.RGBA{R: 0x5a, G: 0x60, B: 0x70, A: 0xff}
	colorKnob       = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1f, A: 0xff}
	colorKnobEdge   = color.RGBA{R: 0x8a, G: 0x8f, B: 0x99, A: 0xff}
	colorIndicator  = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	colorHandle     = color.RGBA{R: 0xe0, G: 0x9a, B: 0x2a, A: 0xff}
	colorSelected   = color.RGBA{R: 0x4c, G: 0xc9, B: 0xf0, A: 0xff}
	colorOverlay    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
)

const (
	edgeWidth      = 2 // logical units
	indicatorWidth = 3
	overlayW       = 132
	overlayH       = 48
	overlayGap     = 8
)

// drawPedal renders the panel and every knob. All geometry is in logical
// units and scaled by res here, the only place drawing touches it.
func drawPedal(dst *ebiten.Image, layout *pedal.Layout, shapes []*pedal.KnobShape, res pedal.Resolution, pulse float64) {
	r := float32(res)
	panel := layout.Panel().Scale(float64(res))
	vector.DrawFilledRect(dst, float32(panel.X), float32(panel.Y), float32(panel.Width), float32(panel.Height), colorPanel, true)
	vector.StrokeRect(dst, float32(panel.X), float32(panel.Y), float32(panel.Width), float32(panel.Height), edgeWidth*r, colorPanelEdge, true)

	for _, s := range shapes {
		drawKnob(dst, layout, s, res, pulse)
	}
}

func drawKnob(dst *ebiten.Image, layout *pedal.Layout, s *pedal.KnobShape, res pedal.Resolution, pulse float64) {
	r := float32(res)
	center := res.ToDevice(s.DragElement.Center())
	cx, cy := float32(center.X), float32(center.Y)
	radius := float32(layout.KnobRadius) * r

	vector.DrawFilledCircle(dst, cx, cy, radius, colorKnob, true)
	edge := colorKnobEdge
	if s.Selected {
		edge = fade(colorSelected, 0.5+0.5*pulse)
	}
	vector.StrokeCircle(dst, cx, cy, radius, edgeWidth*r, edge, true)

	tip := res.ToDevice(pedal.HandleCenter(s.DragElement.Center(), s.Knob.Rotation, layout.KnobRadius*0.8))
	vector.StrokeLine(dst, cx, cy, float32(tip.X), float32(tip.Y), indicatorWidth*r, colorIndicator, true)

	h := s.RotateElement.Scale(float64(res))
	hc := h.Center()
	vector.DrawFilledCircle(dst, float32(hc.X), float32(hc.Y), float32(h.Width/2), colorHandle, true)
}

// overlayText is the numeric readout shown next to the selected knob.
func overlayText(k *pedal.Knob) string {
	name := k.Name
	if name == "" {
		name = k.ID
	}
	return fmt.Sprintf("%s\nposX: %.1f\nposY: %.1f\nrot:  %.1f", name, k.PosX, k.PosY, k.Rotation)
}

// overlayAnchor places the readout to the right of the knob, or to the left
// when it would run past the panel edge. The result is in logical units.
func overlayAnchor(layout *pedal.Layout, k *pedal.Knob) pedal.Vec2 {
	x := layout.OffsetX + k.PosX + layout.KnobRadius + overlayGap
	if x+overlayW > layout.OffsetX+layout.Width {
		x = layout.OffsetX + k.PosX - layout.KnobRadius - overlayGap - overlayW
	}
	y := layout.OffsetY + k.PosY - overlayH/2
	return pedal.Vec2{X: x, Y: y}
}

func drawOverlay(dst *ebiten.Image, layout *pedal.Layout, k *pedal.Knob, res pedal.Resolution) {
	at := res.ToDevice(overlayAnchor(layout, k))
	r := float32(res)
	vector.DrawFilledRect(dst, float32(at.X), float32(at.Y), overlayW*r, overlayH*r, colorOverlay, false)
	ebitenutil.DebugPrintAt(dst, overlayText(k), int(at.X)+4, int(at.Y)+2)
}

// fade scales the alpha of c by a in [0, 1].
func fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	f := func(v uint8) uint8 { return uint8(float64(v) * a) }
	// color.RGBA is premultiplied, so every channel scales.
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}
