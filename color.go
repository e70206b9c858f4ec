package termui

import (
	"errors"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind distinguishes between color representations.
type ColorKind uint8

const (
	// ColorDefault is the terminal's own foreground or background.
	ColorDefault ColorKind = iota
	// ColorANSI is an entry of the 256 color palette.
	ColorANSI
	// ColorRGB is a 24-bit color.
	ColorRGB
)

// Color is a cell color with an alpha channel.
// The zero value is the terminal default color, which is always opaque.
type Color struct {
	kind    ColorKind
	r, g, b uint8 // r holds the palette index for ColorANSI
	alpha   uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns an opaque color from the 256 color palette.
func ANSIColor(index uint8) Color {
	return Color{kind: ColorANSI, r: index, alpha: 0xff}
}

// RGBColor returns an opaque 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{kind: ColorRGB, r: r, g: g, b: b, alpha: 0xff}
}

// RGBAColor returns a 24-bit color with the given alpha.
// An alpha of 0 is fully transparent, 255 is opaque.
func RGBAColor(r, g, b, a uint8) Color {
	return Color{kind: ColorRGB, r: r, g: g, b: b, alpha: a}
}

// Transparent draws nothing when used as a fill or background.
var Transparent = RGBAColor(0, 0, 0, 0)

// HexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	var vals [4]uint8
	switch len(hex) {
	case 3:
		for i := range 3 {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return Color{}, err
			}
			vals[i] = n<<4 | n
		}
		vals[3] = 0xff
	case 6, 8:
		vals[3] = 0xff
		for i := 0; i < len(hex); i += 2 {
			hi, err := parseHexNibble(hex[i])
			if err != nil {
				return Color{}, err
			}
			lo, err := parseHexNibble(hex[i+1])
			if err != nil {
				return Color{}, err
			}
			vals[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB, #RRGGBB or #RRGGBBAA")
	}
	return RGBAColor(vals[0], vals[1], vals[2], vals[3]), nil
}

func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Kind returns the representation of the color.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsDefault reports whether this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.kind == ColorDefault
}

// Alpha returns the alpha channel. The default color reports 255.
func (c Color) Alpha() uint8 {
	if c.kind == ColorDefault {
		return 0xff
	}
	return c.alpha
}

// Opaque reports whether the color fully hides what is below it.
func (c Color) Opaque() bool {
	return c.Alpha() == 0xff
}

// WithAlpha returns the color with its alpha replaced. The default color
// has no components to blend and is returned unchanged.
func (c Color) WithAlpha(a uint8) Color {
	if c.kind == ColorDefault {
		return c
	}
	c.alpha = a
	return c
}

// ANSI returns the palette index.
// Panics if the color is not a palette color.
func (c Color) ANSI() uint8 {
	if c.kind != ColorANSI {
		panic("termui: Color.ANSI called on non-palette color")
	}
	return c.r
}

// RGB returns the red, green and blue components of any color. Palette
// entries are approximated and the default color reports black.
func (c Color) RGB() (r, g, b uint8) {
	switch c.kind {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		return paletteRGB(c.r)
	}
	return 0, 0, 0
}

// Over composites c on top of dst. Opaque colors replace dst, fully
// transparent ones leave it untouched, anything in between is blended
// in RGB space and yields an opaque 24-bit color.
func (c Color) Over(dst Color) Color {
	switch a := c.Alpha(); a {
	case 0xff:
		return c
	case 0:
		return dst
	default:
		src := toColorful(c)
		out := toColorful(dst).BlendRgb(src, float64(a)/255).Clamped()
		r, g, b := out.RGB255()
		return RGBColor(r, g, b)
	}
}

func toColorful(c Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ToANSI approximates a 24-bit color with the nearest palette entry.
// Palette and default colors are returned unchanged.
func (c Color) ToANSI() Color {
	if c.kind != ColorRGB {
		return c
	}
	r, g, b := c.r, c.g, c.b
	if r == g && g == b {
		switch {
		case r < 8:
			return ANSIColor(16)
		case r > 248:
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}
	cube := func(v uint8) int { return int(v) * 5 / 255 }
	return ANSIColor(uint8(16 + 36*cube(r) + 6*cube(g) + cube(b)))
}

// Standard palette colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// Typical values for the first 16 palette entries; terminals vary.
var basePalette = [16][3]uint8{
	{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
	{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
	{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
	{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
}

func paletteRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		rgb := basePalette[idx]
		return rgb[0], rgb[1], rgb[2]
	case idx < 232:
		idx -= 16
		level := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return level(idx / 36), level(idx % 36 / 6), level(idx % 6)
	default:
		gray := 8 + (idx-232)*10
		return gray, gray, gray
	}
}
