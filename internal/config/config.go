package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"LocalBoard/internal/tools"
	"LocalBoard/internal/viewport"
)

// Config holds the application configuration.
type Config struct {
	AppID      string   `toml:"app_id"`
	Background string   `toml:"background"`
	Color      string   `toml:"color"`
	Palette    []string `toml:"palette"`
	PenWidth   int      `toml:"pen_width"`
	MinScale   float64  `toml:"min_scale"`
	MaxScale   float64  `toml:"max_scale"`
	Grid       bool     `toml:"grid"`
	GridSize   float64  `toml:"grid_size"`
	Persist    bool     `toml:"persist"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		AppID:      "io.localboard.whiteboard",
		Background: "#ffffff",
		Color:      "black",
		Palette:    append([]string{}, tools.Palette...),
		PenWidth:   tools.DefaultPenWidth,
		MinScale:   viewport.MinScale,
		MaxScale:   viewport.MaxScale,
		Grid:       true,
		GridSize:   50,
		Persist:    true,
	}
}

// Parse reads a TOML configuration on top of the defaults. Unknown keys are
// rejected so typos do not go unnoticed.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("parse config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and colors.
func (c *Config) Validate() error {
	for _, s := range append([]string{c.Background, c.Color}, c.Palette...) {
		if _, err := tools.ParseColor(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("config: palette is empty")
	}
	if c.PenWidth < tools.MinPenWidth || c.PenWidth > tools.MaxPenWidth {
		return fmt.Errorf("config: pen_width %d outside [%d, %d]", c.PenWidth, tools.MinPenWidth, tools.MaxPenWidth)
	}
	if c.MinScale < viewport.MinScale || c.MaxScale > viewport.MaxScale || c.MaxScale < c.MinScale {
		return fmt.Errorf("config: scale range [%v, %v] not within [%v, %v]", c.MinScale, c.MaxScale, viewport.MinScale, viewport.MaxScale)
	}
	if c.Grid && c.GridSize <= 0 {
		return fmt.Errorf("config: grid_size must be positive, got %v", c.GridSize)
	}
	if c.AppID == "" {
		return fmt.Errorf("config: app_id is empty")
	}
	return nil
}

// String returns the configuration in TOML form.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("# error encoding config: %v\n", err)
	}
	return sb.String()
}
