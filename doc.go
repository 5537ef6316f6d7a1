// Package pedal implements pointer interaction for knob controls drawn on a
// 2D pedal panel: selecting a knob, dragging it across the panel and turning
// it by its rotate handle.
//
// The package does no drawing. A host (see the canvas sub-package for an
// [Ebitengine] one) renders the panel, converts raw pointer input to logical
// units and feeds it to a [Session].
//
// # Geometry
//
// A [Layout] holds the panel metadata and its [Knob] values. Every render pass
// builds a fresh slice of [KnobShape] from it with [Layout.Shapes]. Each shape
// has a drag region covering the knob body and a rotate region around the
// indicator tip:
//
//	layout := pedal.NewLayout(300, 400,
//		pedal.NewKnob("gain", 80, 90),
//		pedal.NewKnob("tone", 220, 90),
//	)
//	shapes := layout.Shapes(session.SelectedID())
//
// # Resolution
//
// Canvases are usually backed by more device pixels than logical units. A
// single [Resolution] value is used both to scale drawing and to convert
// pointer positions back before they reach the session:
//
//	pos := res.ToLogical(pedal.Vec2{X: float64(mx), Y: float64(my)})
//
// # Hit testing
//
// [HitTest] walks the shapes in order and returns the first knob whose drag
// region, then rotate region, contains the point. It never modifies the
// shapes.
//
// # Sessions
//
// A [Session] is the per-canvas state machine. It is idle until a
// pointer-down hits a knob, then drags or rotates that knob on every move
// until pointer-up or pointer-out releases it:
//
//	session := pedal.NewSession()
//	session.OnChange(func(ctx pedal.KnobContext) {
//		fmt.Println(ctx.Knob.PosX, ctx.Knob.PosY)
//	})
//	session.PointerDown(pos, shapes)
//	session.PointerMove(next)
//	session.PointerUp()
//
// The selected knob outlives the release so property editors can stay open.
//
// [Ebitengine]: https://ebitengine.org
package pedal
