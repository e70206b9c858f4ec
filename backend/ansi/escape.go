package ansi

import (
	"strconv"
	"unicode/utf8"

	termui "github.com/grindlemire/go-termui"
)

// escBuilder accumulates escape sequences and text into one reusable
// byte slice so a whole frame goes out in a single write.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) csi(seq string) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, seq...)
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.csi("")
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen()     { e.csi("2J") }
func (e *escBuilder) HideCursor()      { e.csi("?25l") }
func (e *escBuilder) ShowCursor()      { e.csi("?25h") }
func (e *escBuilder) EnterAltScreen()  { e.csi("?1049h") }
func (e *escBuilder) ExitAltScreen()   { e.csi("?1049l") }
func (e *escBuilder) BeginSyncUpdate() { e.csi("?2026h") }
func (e *escBuilder) EndSyncUpdate()   { e.csi("?2026l") }
func (e *escBuilder) EnablePaste()     { e.csi("?2004h") }
func (e *escBuilder) DisablePaste()    { e.csi("?2004l") }
func (e *escBuilder) ResetStyle()      { e.csi("0m") }

// EnableMouse turns on any-event tracking with SGR coordinates, so moves
// are reported even with no button held.
func (e *escBuilder) EnableMouse() {
	e.csi("?1003h")
	e.csi("?1006h")
}

func (e *escBuilder) DisableMouse() {
	e.csi("?1006l")
	e.csi("?1003l")
}

// cellStyle is the part of a cell that maps to SGR attributes.
type cellStyle struct {
	fg, bg, decor termui.Color
	font          termui.Font
	attrs         termui.Attr
	underline     bool
}

func styleOf(c termui.Cell) cellStyle {
	bottom := c.HasAttr(termui.AttrBorder) && c.Border&termui.BorderBottom != 0
	return cellStyle{
		fg:        c.Fg,
		bg:        c.Bg,
		decor:     c.Decor,
		font:      c.Font,
		attrs:     c.Attrs,
		underline: c.HasAttr(termui.AttrUnderline) || bottom,
	}
}

// SetStyle emits a full SGR sequence for s, starting from a reset.
func (e *escBuilder) SetStyle(s cellStyle, caps Capabilities) {
	e.csi("0")
	if s.font.Bold {
		e.buf = append(e.buf, ";1"...)
	}
	if s.attrs&termui.AttrDim != 0 {
		e.buf = append(e.buf, ";2"...)
	}
	if s.font.Italic {
		e.buf = append(e.buf, ";3"...)
	}
	if s.underline {
		e.buf = append(e.buf, ";4"...)
	}
	if s.attrs&termui.AttrBlink != 0 {
		e.buf = append(e.buf, ";5"...)
	}
	if s.attrs&termui.AttrReverse != 0 {
		e.buf = append(e.buf, ";7"...)
	}
	if s.attrs&termui.AttrStrikethrough != 0 {
		e.buf = append(e.buf, ";9"...)
	}
	e.appendColor(caps.EffectiveColor(s.fg), 30, 38)
	e.appendColor(caps.EffectiveColor(s.bg), 40, 48)
	if s.underline && caps.Colors >= Color256 {
		e.appendColor(caps.EffectiveColor(s.decor), -1, 58)
	}
	e.buf = append(e.buf, 'm')
}

// appendColor writes one color parameter. basic is the base code of the
// 8 standard colors, or -1 where only extended forms exist; extended is
// the 38/48/58 introducer.
func (e *escBuilder) appendColor(c termui.Color, basic, extended int) {
	switch c.Kind() {
	case termui.ColorANSI:
		idx := int(c.ANSI())
		switch {
		case basic >= 0 && idx < 8:
			e.buf = append(e.buf, ';')
			e.writeInt(basic + idx)
		case basic >= 0 && idx < 16:
			e.buf = append(e.buf, ';')
			e.writeInt(basic + 60 + idx - 8)
		default:
			e.buf = append(e.buf, ';')
			e.writeInt(extended)
			e.buf = append(e.buf, ";5;"...)
			e.writeInt(idx)
		}
	case termui.ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(extended)
		e.buf = append(e.buf, ";2;"...)
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
