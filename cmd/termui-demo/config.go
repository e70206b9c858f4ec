package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	termui "github.com/grindlemire/go-termui"
)

// Config is the demo configuration, read from a TOML file.
type Config struct {
	Backend   string       `toml:"backend"`
	FrameRate int          `toml:"frame_rate"`
	Mouse     bool         `toml:"mouse"`
	Colors    ColorsConfig `toml:"colors"`
}

// ColorsConfig holds hex colors, "#RGB", "#RRGGBB" or "#RRGGBBAA".
type ColorsConfig struct {
	Background string `toml:"background"`
	Frame      string `toml:"frame"`
	Text       string `toml:"text"`
	Accent     string `toml:"accent"`
}

// Theme is ColorsConfig parsed.
type Theme struct {
	Background termui.Color
	Frame      termui.Color
	Text       termui.Color
	Accent     termui.Color
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Backend:   "ansi",
		FrameRate: 60,
		Mouse:     true,
		Colors: ColorsConfig{
			Background: "#1e1e2e",
			Frame:      "#89b4fa",
			Text:       "#cdd6f4",
			Accent:     "#f38ba8",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the values a renderer or backend would reject later.
func (c Config) Validate() error {
	switch c.Backend {
	case "ansi", "tcell":
	default:
		return fmt.Errorf("unknown backend %q, want ansi or tcell", c.Backend)
	}
	if c.FrameRate < 0 || c.FrameRate > termui.MaxFrameRate {
		return fmt.Errorf("frame_rate %d out of range 0..%d", c.FrameRate, termui.MaxFrameRate)
	}
	if _, err := c.Colors.Theme(); err != nil {
		return err
	}
	return nil
}

// Theme parses the colors.
func (c ColorsConfig) Theme() (Theme, error) {
	var t Theme
	for _, f := range []struct {
		name string
		hex  string
		dst  *termui.Color
	}{
		{"background", c.Background, &t.Background},
		{"frame", c.Frame, &t.Frame},
		{"text", c.Text, &t.Text},
		{"accent", c.Accent, &t.Accent},
	} {
		col, err := termui.HexColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return t, nil
}
