package tcellbackend

import (
	"github.com/gdamore/tcell/v2"

	termui "github.com/grindlemire/go-termui"
)

// maxStyles bounds the style cache. Screens rarely use more than a few
// dozen distinct styles; a cache that fills up is simply dropped.
const maxStyles = 1024

// styleKey is the part of a cell that determines its tcell style.
type styleKey struct {
	fg, bg, decor termui.Color
	font          termui.Font
	attrs         termui.Attr
	border        termui.BorderSides
}

type styleCache struct {
	styles map[styleKey]tcell.Style
}

func newStyleCache() *styleCache {
	return &styleCache{styles: make(map[styleKey]tcell.Style)}
}

func (c *styleCache) get(cell termui.Cell) tcell.Style {
	k := styleKey{
		fg:     cell.Fg,
		bg:     cell.Bg,
		decor:  cell.Decor,
		font:   cell.Font,
		attrs:  cell.Attrs,
		border: cell.Border,
	}
	if s, ok := c.styles[k]; ok {
		return s
	}
	if len(c.styles) >= maxStyles {
		clear(c.styles)
	}
	s := toStyle(k)
	c.styles[k] = s
	return s
}

// toStyle converts a cell style. Borders have no tcell equivalent and
// show as an underline when they include the bottom edge.
func toStyle(k styleKey) tcell.Style {
	underline := k.attrs&termui.AttrUnderline != 0 ||
		(k.attrs&termui.AttrBorder != 0 && k.border&termui.BorderBottom != 0)
	return tcell.StyleDefault.
		Foreground(toColor(k.fg)).
		Background(toColor(k.bg)).
		Bold(k.font.Bold).
		Italic(k.font.Italic).
		Underline(underline).
		StrikeThrough(k.attrs&termui.AttrStrikethrough != 0).
		Blink(k.attrs&termui.AttrBlink != 0).
		Dim(k.attrs&termui.AttrDim != 0).
		Reverse(k.attrs&termui.AttrReverse != 0)
}

func toColor(c termui.Color) tcell.Color {
	switch c.Kind() {
	case termui.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case termui.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
