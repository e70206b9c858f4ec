package ansi

import (
	"strings"

	termui "github.com/grindlemire/go-termui"
)

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal.
	ColorNone ColorCapability = iota
	// Color16 indicates the basic 16 ANSI colors.
	Color16
	// Color256 indicates the 256 color palette.
	Color256
	// ColorTrue indicates 24-bit RGB support.
	ColorTrue
)

// Capabilities describes what the terminal supports.
type Capabilities struct {
	Colors    ColorCapability
	Unicode   bool
	AltScreen bool
}

// DefaultCapabilities is what is assumed when nothing is detected.
func DefaultCapabilities() Capabilities {
	return Capabilities{Colors: Color16, Unicode: true, AltScreen: true}
}

// trueColorVars are set by terminals known to support 24-bit color.
var trueColorVars = []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"}

// DetectCapabilities derives capabilities from environment variables read
// through getenv, usually os.Getenv.
func DetectCapabilities(getenv func(string) string) Capabilities {
	caps := DefaultCapabilities()

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		return caps
	}
	for _, v := range trueColorVars {
		if getenv(v) != "" {
			caps.Colors = ColorTrue
			return caps
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone}
	case strings.Contains(term, "truecolor") || strings.Contains(term, "direct"):
		caps.Colors = ColorTrue
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}
	return caps
}

// EffectiveColor maps c onto what the terminal can show. RGB colors fall
// back to the nearest palette entry, and everything falls back to the
// default color on a monochrome terminal.
func (c Capabilities) EffectiveColor(color termui.Color) termui.Color {
	switch color.Kind() {
	case termui.ColorDefault:
		return color
	case termui.ColorANSI:
		if c.Colors == ColorNone || (c.Colors == Color16 && color.ANSI() >= 16) {
			return termui.DefaultColor()
		}
		return color
	}
	switch c.Colors {
	case ColorTrue:
		return color
	case Color256:
		return color.ToANSI()
	}
	return termui.DefaultColor()
}

// String returns a short description such as "256-color, unicode".
func (c Capabilities) String() string {
	var parts []string
	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}
	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	if c.AltScreen {
		parts = append(parts, "altscreen")
	}
	return strings.Join(parts, ", ")
}
