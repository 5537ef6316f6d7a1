// Package canvas hosts a pedal knob editor in an Ebitengine window. It reads
// the mouse, converts positions with the canvas resolution, drives a
// pedal.Session and redraws the panel every frame.
package canvas

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/phanxgames/pedal"
)

// Defaults for Config fields left at their zero value.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultTitle  = "Pedal"

	pulsePeriod = 0.6 // seconds from dim to bright highlight
)

// Config controls the canvas window.
type Config struct {
	Title string
	// Width and Height are the logical canvas size. The backing store is
	// Width*Resolution by Height*Resolution device pixels.
	Width, Height int
	Resolution    pedal.Resolution
	// Background fills the canvas with a dark backdrop instead of leaving it
	// transparent.
	Background bool
	Logger     *zap.Logger
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Resolution == 0 {
		c.Resolution = pedal.DefaultResolution
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Canvas implements ebiten.Game for a single pedal layout.
type Canvas struct {
	cfg     Config
	layout  *pedal.Layout
	session *pedal.Session
	log     *zap.Logger

	shapes []*pedal.KnobShape
	prev   sample
	dirty  bool

	tween *pedal.KnobTween
	pulse *pedal.Pulse
}

// New validates the layout and configuration and returns a canvas ready to run.
func New(layout *pedal.Layout, cfg Config) (*Canvas, error) {
	cfg.applyDefaults()
	if err := cfg.Resolution.Validate(); err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", cfg.Width, cfg.Height, pedal.ErrNegativeSize)
	}
	if layout == nil {
		return nil, errors.New("canvas: nil layout")
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	c := &Canvas{
		cfg:     cfg,
		layout:  layout,
		session: pedal.NewSession(),
		log:     cfg.Logger,
		pulse:   pedal.NewPulse(pulsePeriod),
		dirty:   true,
	}
	c.session.SetLogger(cfg.Logger.Named("session"))
	c.session.OnChange(func(pedal.KnobContext) { c.dirty = true })
	c.session.OnSelect(func(ctx pedal.SelectContext) {
		c.dirty = true
		if ctx.Knob != nil {
			c.log.Info("knob selected", zap.String("id", ctx.Knob.ID), zap.String("name", ctx.Knob.Name))
		}
	})
	c.session.OnRelease(func(ctx pedal.KnobContext) {
		c.log.Info("knob released",
			zap.String("id", ctx.Knob.ID),
			zap.Float64("posX", ctx.Knob.PosX),
			zap.Float64("posY", ctx.Knob.PosY),
			zap.Float64("rotation", ctx.Knob.Rotation))
	})
	c.rebuildShapes()
	return c, nil
}

// Session returns the interaction session driven by the canvas.
func (c *Canvas) Session() *pedal.Session {
	return c.session
}

// Shapes returns the knob geometry of the last render pass.
func (c *Canvas) Shapes() []*pedal.KnobShape {
	return c.shapes
}

// SetLayout replaces the layout. A nil layout makes the canvas ignore input
// until a new one is set.
func (c *Canvas) SetLayout(layout *pedal.Layout) error {
	if layout != nil {
		if err := layout.Validate(); err != nil {
			return fmt.Errorf("canvas: %w", err)
		}
	}
	c.session.Deselect()
	c.layout = layout
	c.tween = nil
	c.rebuildShapes()
	return nil
}

// AnimateSelected eases the selected knob to a new position and rotation, as
// a property editor would after the user types new values. It returns false
// when no knob is selected.
func (c *Canvas) AnimateSelected(x, y, rotation float64, duration float32) bool {
	k := c.session.Selected()
	if k == nil {
		return false
	}
	if duration <= 0 {
		c.tween = nil
		c.session.SetSelectedPosition(x, y)
		c.session.SetSelectedRotation(rotation)
		return true
	}
	c.tween = pedal.TweenKnob(k, x, y, rotation, duration, ease.OutCubic)
	return true
}

// Update implements ebiten.Game.
func (c *Canvas) Update() error {
	w, h := c.deviceSize()
	c.step(float32(1.0/float64(ebiten.TPS())), readSample(w, h))
	return nil
}

// step advances the canvas by one frame with the given mouse sample.
func (c *Canvas) step(dt float32, cur sample) {
	prev := c.prev
	c.prev = cur

	if c.tween != nil {
		c.tween.Update(dt)
		c.dirty = true
		if c.tween.Done {
			c.tween = nil
		}
	}
	if c.session.Selected() != nil {
		c.pulse.Update(dt)
	}

	if c.layout == nil {
		return
	}
	for _, ev := range pointerEvents(prev, cur, c.cfg.Resolution) {
		if ev.Type == pedal.EventPointerDown {
			// Hit regions must match what the user currently sees.
			c.rebuildShapes()
		}
		if c.session.Handle(ev, c.shapes) {
			c.dirty = true
		}
	}
	if c.dirty {
		c.rebuildShapes()
	}
}

// rebuildShapes recomputes knob geometry from the layout, as every render
// pass does.
func (c *Canvas) rebuildShapes() {
	if c.layout == nil {
		c.shapes = nil
		return
	}
	c.shapes = c.layout.Shapes(c.session.SelectedID())
	c.dirty = false
}

// Draw implements ebiten.Game.
func (c *Canvas) Draw(screen *ebiten.Image) {
	if c.cfg.Background {
		screen.Fill(colorBackground)
	}
	if c.layout == nil {
		return
	}
	drawPedal(screen, c.layout, c.shapes, c.cfg.Resolution, c.pulse.Value())
	if k := c.session.Selected(); k != nil {
		drawOverlay(screen, c.layout, k, c.cfg.Resolution)
	}
}

// Layout implements ebiten.Game. The backing store is scaled by the
// resolution; the window keeps the logical size.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.deviceSize()
}

func (c *Canvas) deviceSize() (int, int) {
	r := float64(c.cfg.Resolution)
	return int(float64(c.cfg.Width) * r), int(float64(c.cfg.Height) * r)
}

// Run opens a window and runs the canvas until it is closed.
func Run(layout *pedal.Layout, cfg Config) error {
	c, err := New(layout, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(c.cfg.Title)
	ebiten.SetWindowSize(c.cfg.Width, c.cfg.Height)
	c.log.Info("canvas started",
		zap.Int("width", c.cfg.Width),
		zap.Int("height", c.cfg.Height),
		zap.Float64("resolution", float64(c.cfg.Resolution)),
		zap.Int("knobs", len(layout.Knobs)))
	return ebiten.RunGame(c)
}
