// Package config loads pedalcanvas settings and pedal layouts with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/phanxgames/pedal"
)

// EnvPrefix is the prefix for environment overrides, e.g. PEDAL_CANVAS_RESOLUTION.
const EnvPrefix = "PEDAL"

// Config is the top-level pedalcanvas configuration.
type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas"`
	Logger LoggerConfig `mapstructure:"logger"`
	// Layout is the path of a layout file. Empty selects the built-in demo
	// layout.
	Layout string `mapstructure:"layout"`
}

// CanvasConfig controls the editor window.
type CanvasConfig struct {
	Title      string  `mapstructure:"title"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Resolution float64 `mapstructure:"resolution"`
	Background bool    `mapstructure:"background"`
}

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"` // "console" or "json"
	ServiceName string `mapstructure:"service_name"`
	AddSource   bool   `mapstructure:"add_source"`

	// LogFile enables a rotating JSON log file in addition to the console.
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("canvas.title", "Pedal")
	v.SetDefault("canvas.width", 500)
	v.SetDefault("canvas.height", 500)
	v.SetDefault("canvas.resolution", float64(pedal.DefaultResolution))
	v.SetDefault("canvas.background", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "pedalcanvas")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
}

// Load reads configuration into a Config. When path is empty, Load looks for
// an optional config.yaml in the working directory; a missing file is not an
// error in that case. Environment variables prefixed with PEDAL_ override
// file values.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the canvas settings.
func (c *Config) Validate() error {
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("config canvas %dx%d: %w", c.Canvas.Width, c.Canvas.Height, pedal.ErrNegativeSize)
	}
	if err := pedal.Resolution(c.Canvas.Resolution).Validate(); err != nil {
		return fmt.Errorf("config canvas: %w", err)
	}
	return nil
}

// LoadLayout reads a pedal layout file (YAML, JSON or TOML by extension).
// Knob metrics missing from the file fall back to the package defaults.
func LoadLayout(path string) (*pedal.Layout, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("knob_radius", pedal.DefaultKnobRadius)
	v.SetDefault("handle_size", pedal.DefaultHandleSize)
	v.SetDefault("handle_distance", pedal.DefaultHandleDistance)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return decodeLayout(v)
}

func decodeLayout(v *viper.Viper) (*pedal.Layout, error) {
	var l pedal.Layout
	if err := v.Unmarshal(&l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return &l, nil
}

// DefaultLayout returns the built-in three-knob demo pedal.
func DefaultLayout() *pedal.Layout {
	l := pedal.NewLayout(360, 240,
		&pedal.Knob{ID: "level", Name: "Level", PosX: 70, PosY: 80, Rotation: -30},
		&pedal.Knob{ID: "tone", Name: "Tone", PosX: 180, PosY: 80},
		&pedal.Knob{ID: "drive", Name: "Drive", PosX: 290, PosY: 80, Rotation: 45},
	)
	l.OffsetX, l.OffsetY = 70, 130
	return l
}
