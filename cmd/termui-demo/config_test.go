package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	termui "github.com/grindlemire/go-termui"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termui-demo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	type tc struct {
		content string
		check   func(t *testing.T, c Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty file keeps defaults": {
			content: "",
			check: func(t *testing.T, c Config) {
				if c != DefaultConfig() {
					t.Errorf("config = %+v, want defaults", c)
				}
			},
		},
		"overrides": {
			content: `
backend = "tcell"
frame_rate = 0
mouse = false

[colors]
accent = "#fff"
`,
			check: func(t *testing.T, c Config) {
				if c.Backend != "tcell" || c.FrameRate != 0 || c.Mouse {
					t.Errorf("config = %+v", c)
				}
				if c.Colors.Accent != "#fff" || c.Colors.Text != DefaultConfig().Colors.Text {
					t.Errorf("colors = %+v", c.Colors)
				}
			},
		},
		"unknown backend": {
			content: `backend = "sdl"`,
			wantErr: "unknown backend",
		},
		"frame rate too high": {
			content: `frame_rate = 100000`,
			wantErr: "frame_rate",
		},
		"bad color": {
			content: "[colors]\nframe = \"#12\"",
			wantErr: "colors.frame",
		},
		"bad toml": {
			content: `backend = `,
			wantErr: "failed to parse",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := LoadConfig(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", c)
	}
}

func TestColorsConfig_Theme(t *testing.T) {
	theme, err := DefaultConfig().Colors.Theme()
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if want := termui.RGBColor(0x89, 0xb4, 0xfa); theme.Frame != want {
		t.Errorf("Frame = %+v, want %+v", theme.Frame, want)
	}
}
