package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/pedal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Canvas.Width)
	assert.Equal(t, 500, cfg.Canvas.Height)
	assert.Equal(t, 2.0, cfg.Canvas.Resolution)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Empty(t, cfg.Layout)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "pedal.yaml", `
canvas:
  width: 640
  resolution: 1.5
  background: true
logger:
  level: debug
layout: layouts/fuzz.yaml
`)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 500, cfg.Canvas.Height)
	assert.Equal(t, 1.5, cfg.Canvas.Resolution)
	assert.True(t, cfg.Canvas.Background)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "layouts/fuzz.yaml", cfg.Layout)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PEDAL_CANVAS_RESOLUTION", "3")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Canvas.Resolution)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit missing file should fail")

	path := writeFile(t, "bad.yaml", "canvas:\n  resolution: 0\n")
	_, err = Load(viper.New(), path)
	assert.ErrorIs(t, err, pedal.ErrInvalidResolution)

	path = writeFile(t, "neg.yaml", "canvas:\n  width: -1\n")
	_, err = Load(viper.New(), path)
	assert.ErrorIs(t, err, pedal.ErrNegativeSize)
}

func TestLoadLayout(t *testing.T) {
	path := writeFile(t, "layout.yaml", `
width: 300
height: 200
offset_x: 10
offset_y: 20
knob_radius: 30
knobs:
  - id: gain
    name: Gain
    x: 80
    y: 60
    rotation: 15
  - name: Tone
    x: 200
    y: 60
`)
	l, err := LoadLayout(path)
	require.NoError(t, err)

	assert.Equal(t, 300.0, l.Width)
	assert.Equal(t, 10.0, l.OffsetX)
	assert.Equal(t, 30.0, l.KnobRadius)
	assert.Equal(t, pedal.DefaultHandleSize, l.HandleSize)
	require.Len(t, l.Knobs, 2)
	assert.Equal(t, &pedal.Knob{ID: "gain", Name: "Gain", PosX: 80, PosY: 60, Rotation: 15}, l.Knobs[0])
	assert.NotEmpty(t, l.Knobs[1].ID, "missing id should be generated")
}

func TestLoadLayout_JSON(t *testing.T) {
	path := writeFile(t, "layout.json", `{"width": 100, "height": 100, "knobs": [{"id": "a", "x": 50, "y": 50}]}`)
	l, err := LoadLayout(path)
	require.NoError(t, err)
	require.Len(t, l.Knobs, 1)
	assert.Equal(t, 50.0, l.Knobs[0].PosX)
}

func TestLoadLayout_Errors(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "dup.yaml", `
width: 100
height: 100
knobs:
  - {id: a, x: 1, y: 1}
  - {id: a, x: 2, y: 2}
`)
	_, err = LoadLayout(path)
	assert.ErrorIs(t, err, pedal.ErrDuplicateKnob)
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())
	assert.Len(t, l.Knobs, 3)

	// Knobs must not overlap so every one is reachable by hit testing.
	shapes := l.Shapes("")
	for i, s := range shapes {
		hit := pedal.HitTest(s.DragElement.Center(), shapes)
		assert.Equal(t, i, hit.Index, "knob %s", s.Knob.ID)
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
