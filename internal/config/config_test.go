package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
background = "#fafafa"
color = "red"
palette = ["red", "#00ff00"]
pen_width = 7
min_scale = 1.0
max_scale = 4.0
grid = false
persist = false
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Background != "#fafafa" || cfg.Color != "red" {
		t.Errorf("unexpected colors %q %q", cfg.Background, cfg.Color)
	}
	if len(cfg.Palette) != 2 || cfg.Palette[1] != "#00ff00" {
		t.Errorf("unexpected palette %v", cfg.Palette)
	}
	if cfg.PenWidth != 7 || cfg.MinScale != 1 || cfg.MaxScale != 4 {
		t.Errorf("unexpected numbers %+v", cfg)
	}
	if cfg.Grid || cfg.Persist {
		t.Error("expected grid and persist to be off")
	}
	if cfg.AppID != "io.localboard.whiteboard" {
		t.Errorf("default app_id lost: %q", cfg.AppID)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.PenWidth != 3 || cfg.MinScale != 0.5 || cfg.MaxScale != 5 || !cfg.Persist {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := map[string]string{
		"unknown key":    `colour = "red"`,
		"bad color":      `color = "reddish"`,
		"wide pen":       `pen_width = 31`,
		"scale range":    "min_scale = 2.0\nmax_scale = 1.0",
		"min scale low":  "min_scale = 0.1",
		"max scale high": "max_scale = 20.0",
		"empty palette":  `palette = []`,
		"not toml":       `= =`,
		"zero grid size": "grid = true\ngrid_size = 0.0",
	}
	for name, input := range inputs {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestCircular(t *testing.T) {
	cfg := New()
	cfg.Color = "blue"
	cfg.PenWidth = 12

	back, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, cfg.String())
	}
	if back.Color != "blue" || back.PenWidth != 12 || len(back.Palette) != len(cfg.Palette) {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestLoaderOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.toml")
	if err := os.WriteFile(path, []byte(`pen_width = 9`), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(path)
	if got := l.GetConfigPath(); got != path {
		t.Errorf("GetConfigPath = %q, want %q", got, path)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PenWidth != 9 {
		t.Errorf("pen_width = %d, want 9", cfg.PenWidth)
	}
}
