// Package config loads the canopy command's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/ease"
)

const (
	DefaultTitle      = "canopy"
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultTPS        = 60
	DefaultClearColor = "#000000"
	DefaultVelocity   = 45.0
	DefaultItems      = 15
	DefaultEase       = "quad-in-out"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Font     string         `yaml:"font"` // path to a TTF/OTF file; empty uses Go Regular
	Log      LogConfig      `yaml:"log"`
	Demo     DemoConfig     `yaml:"demo"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TPS        int    `yaml:"tps"`
	ClearColor string `yaml:"clear_color"`
	ShowFPS    bool   `yaml:"show_fps"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DemoConfig tunes the bundled demo scene.
type DemoConfig struct {
	Velocity float64 `yaml:"velocity"` // rotation speed in degrees per second
	Items    int     `yaml:"items"`    // number of shapes in the row
	Ease     string  `yaml:"ease"`     // ease name for the pulse animation
}

type SnapshotConfig struct {
	Dir  string  `yaml:"dir"`
	Time float64 `yaml:"time"` // seconds of simulated time before capture
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      DefaultTitle,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			TPS:        DefaultTPS,
			ClearColor: DefaultClearColor,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Demo: DemoConfig{
			Velocity: DefaultVelocity,
			Items:    DefaultItems,
			Ease:     DefaultEase,
		},
		Snapshot: SnapshotConfig{
			Dir: canopy.DefaultScreenshotDir,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.Window.TPS))
	}
	if _, err := ParseColor(c.Window.ClearColor); err != nil {
		errs = append(errs, err)
	}
	if _, ok := ease.Lookup(c.Demo.Ease); !ok {
		errs = append(errs, fmt.Errorf("unknown ease %q", c.Demo.Ease))
	}
	if c.Demo.Items < 0 {
		errs = append(errs, fmt.Errorf("demo items %d must not be negative", c.Demo.Items))
	}
	return errors.Join(errs...)
}

// ClearColor returns the parsed window clear color, or black if it is
// invalid.
func (c *Config) ClearColor() canopy.Color {
	col, err := ParseColor(c.Window.ClearColor)
	if err != nil {
		return canopy.ColorBlack
	}
	return col
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseColor(s string) (canopy.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return canopy.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return canopy.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return canopy.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
