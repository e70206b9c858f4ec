package termui

import "github.com/mattn/go-runewidth"

// Attr is a set of cell attributes.
type Attr uint8

const (
	// AttrNone represents no attributes.
	AttrNone Attr = 0
	// AttrUnderline underlines the glyph in the decoration color.
	AttrUnderline Attr = 1 << iota
	// AttrStrikethrough draws a line through the glyph.
	AttrStrikethrough
	// AttrBlink makes the glyph blink where supported.
	AttrBlink
	// AttrBorder draws the sides named by Cell.Border in the decoration color.
	AttrBorder
	// AttrDim renders the glyph faint.
	AttrDim
	// AttrReverse swaps foreground and background.
	AttrReverse
)

// BorderSides selects which edges of a cell carry a border line.
type BorderSides uint8

const (
	BorderLeft BorderSides = 1 << iota
	BorderTop
	BorderRight
	BorderBottom

	BorderNone BorderSides = 0
	BorderAll              = BorderLeft | BorderTop | BorderRight | BorderBottom
)

// Font describes how the glyph of a cell is drawn.
// Size is a scale factor for backends that support it; 0 means normal.
type Font struct {
	Size   int
	Bold   bool
	Italic bool
}

// Cell is a single character cell in the buffer.
// Wide characters occupy two cells; the second is a continuation with
// Width 0 and no rune.
type Cell struct {
	Rune   rune
	Width  uint8
	Fg     Color
	Bg     Color
	Decor  Color
	Font   Font
	Attrs  Attr
	Border BorderSides
}

// BlankCell is a space with default colors.
func BlankCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// IsContinuation reports whether the cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// HasAttr reports whether all attributes in a are set.
func (c Cell) HasAttr(a Attr) bool {
	return c.Attrs&a == a
}

// Style bundles the appearance applied to text drawn on a Canvas.
type Style struct {
	Fg    Color
	Bg    Color
	Decor Color
	Font  Font
	Attrs Attr
}

// NewStyle returns a Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background color set.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Decoration returns a copy with the decoration color set.
func (s Style) Decoration(c Color) Style {
	s.Decor = c
	return s
}

// Bold returns a copy with a bold font.
func (s Style) Bold() Style {
	s.Font.Bold = true
	return s
}

// Italic returns a copy with an italic font.
func (s Style) Italic() Style {
	s.Font.Italic = true
	return s
}

// Underline returns a copy with the underline attribute.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Strikethrough returns a copy with the strikethrough attribute.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// Blink returns a copy with the blink attribute.
func (s Style) Blink() Style {
	s.Attrs |= AttrBlink
	return s
}

// apply writes the glyph r with this style over dst. A translucent
// background is composited over the existing one.
func (s Style) apply(dst Cell, r rune, width uint8) Cell {
	return Cell{
		Rune:  r,
		Width: width,
		Fg:    s.Fg,
		Bg:    s.Bg.Over(dst.Bg),
		Decor: s.Decor,
		Font:  s.Font,
		Attrs: s.Attrs,
	}
}

// RuneWidth returns the number of cells r occupies: 2 for East Asian wide
// and most emoji, 1 otherwise. Zero-width runes are reported as 1 so
// every rune claims a cell.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
