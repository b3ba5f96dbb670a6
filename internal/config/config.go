// Package config loads the chaser's tuning and window settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Motion MotionConfig `yaml:"motion"`
	Window WindowConfig `yaml:"window"`
	Sprite SpriteConfig `yaml:"sprite"`
	Log    LogConfig    `yaml:"log"`
	TPS    int          `yaml:"tps"`
}

type MotionConfig struct {
	Easing         float64 `yaml:"easing"`    // 0..1; higher = snappier
	MaxSpeed       float64 `yaml:"max_speed"` // pixels per tick
	ArrivalEpsilon float64 `yaml:"arrival_epsilon"`
	PointerPadding float64 `yaml:"pointer_padding"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	MinWidth   int    `yaml:"min_width"`
	MinHeight  int    `yaml:"min_height"`
	Background string `yaml:"background"`
	ShowFPS    bool   `yaml:"show_fps"`
}

type SpriteConfig struct {
	Name  string  `yaml:"name"` // catalog entry; empty means ask at startup
	File  string  `yaml:"file"` // image on disk, takes precedence over Name
	Scale float64 `yaml:"scale"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json or console
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Motion: MotionConfig{
			Easing:         0.15,
			MaxSpeed:       18,
			ArrivalEpsilon: 0.5,
			PointerPadding: 2,
		},
		Window: WindowConfig{
			Title:      "Snoopy Chases the Mouse",
			Width:      900,
			Height:     600,
			MinWidth:   480,
			MinHeight:  360,
			Background: "#c0c0c0",
		},
		Sprite: SpriteConfig{Scale: 0.45},
		Log:    LogConfig{Level: "info", Format: "console"},
		TPS:    60,
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(typeErr.Errors, "; "))
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	m := c.Motion
	check(m.Easing > 0 && m.Easing <= 1, "motion.easing %v not in (0, 1]", m.Easing)
	check(m.MaxSpeed > 0, "motion.max_speed %v must be positive", m.MaxSpeed)
	check(m.ArrivalEpsilon >= 0, "motion.arrival_epsilon %v must not be negative", m.ArrivalEpsilon)
	check(m.PointerPadding >= 0, "motion.pointer_padding %v must not be negative", m.PointerPadding)

	w := c.Window
	check(w.Width > 0 && w.Height > 0, "window size %dx%d must be positive", w.Width, w.Height)
	check(w.MinWidth >= 0 && w.MinHeight >= 0, "window minimum %dx%d must not be negative", w.MinWidth, w.MinHeight)
	if _, err := ParseHexColor(w.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: window.background: %v", ErrInvalid, err))
	}

	check(c.Sprite.Scale > 0, "sprite.scale %v must be positive", c.Sprite.Scale)
	check(c.TPS > 0, "tps %d must be positive", c.TPS)
	check(c.Log.Format == "json" || c.Log.Format == "console", "log.format %q must be json or console", c.Log.Format)

	return errors.Join(errs...)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
