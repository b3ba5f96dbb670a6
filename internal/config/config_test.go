package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
motion:
  easing: 0.3
  max_speed: 25
sprite:
  name: grabbing
log:
  level: debug
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Motion.Easing != 0.3 || cfg.Motion.MaxSpeed != 25 {
		t.Errorf("motion = %+v", cfg.Motion)
	}
	if cfg.Motion.PointerPadding != 2 {
		t.Errorf("pointer_padding = %v, want default 2", cfg.Motion.PointerPadding)
	}
	if cfg.Sprite.Name != "grabbing" || cfg.Sprite.Scale != 0.45 {
		t.Errorf("sprite = %+v", cfg.Sprite)
	}
	if cfg.Window != Default().Window {
		t.Errorf("window = %+v, want defaults", cfg.Window)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(\"\") = %+v, want defaults", cfg)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"easing zero", "motion: {easing: 0}", "motion.easing"},
		{"easing above one", "motion: {easing: 1.2}", "motion.easing"},
		{"negative speed", "motion: {max_speed: -1}", "motion.max_speed"},
		{"bad background", "window: {background: grey}", "window.background"},
		{"zero scale", "sprite: {scale: 0}", "sprite.scale"},
		{"zero tps", "tps: 0", "tps"},
		{"bad log format", "log: {format: xml}", "log.format"},
		{"unknown key", "motion: {speed: 3}", "speed"},
		{"wrong type", "window: {width: wide}", "wide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Motion.Easing = 0
	cfg.TPS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"motion.easing", "tps"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("err = %q, missing %q", err, key)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chaser.yaml")
	if err := os.WriteFile(path, []byte("tps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TPS != 30 {
		t.Errorf("tps = %d, want 30", cfg.TPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#c0c0c0", color.RGBA{0xc0, 0xc0, 0xc0, 0xff}, false},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"c0c0c0", color.RGBA{}, true},
		{"#c0c0", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
