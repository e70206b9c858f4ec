package termui

// BoxStyle selects how Canvas.Border draws a frame.
type BoxStyle uint8

const (
	// BoxFlags only marks cells with border side flags and leaves glyphs
	// alone; backends that can draw cell borders render them.
	BoxFlags BoxStyle = iota
	// BoxSingle uses single-line box-drawing runes (─, │, ┌, ...).
	BoxSingle
	// BoxDouble uses double-line runes (═, ║, ╔, ...).
	BoxDouble
	// BoxRounded uses single lines with rounded corners (╭, ╮, ╰, ╯).
	BoxRounded
	// BoxThick uses heavy runes (━, ┃, ┏, ...).
	BoxThick
)

// BoxRunes holds the runes used to draw a frame.
type BoxRunes struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

var boxRunes = map[BoxStyle]BoxRunes{
	BoxSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BoxDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BoxRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BoxThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
}

// Runes returns the frame runes for the style. ok is false for BoxFlags.
func (s BoxStyle) Runes() (r BoxRunes, ok bool) {
	r, ok = boxRunes[s]
	return r, ok
}

// at returns the rune for a frame cell crossed by sides. Corners are
// only drawn where two requested sides meet.
func (r BoxRunes) at(sides BorderSides) rune {
	top, bottom := sides&BorderTop != 0, sides&BorderBottom != 0
	left, right := sides&BorderLeft != 0, sides&BorderRight != 0
	switch {
	case top && left:
		return r.TopLeft
	case top && right:
		return r.TopRight
	case bottom && left:
		return r.BottomLeft
	case bottom && right:
		return r.BottomRight
	case top:
		return r.Top
	case bottom:
		return r.Bottom
	case left:
		return r.Left
	case right:
		return r.Right
	}
	return 0
}

// sidesAt returns which frame sides pass through the cell at (x, y).
func sidesAt(x, y, w, h int) BorderSides {
	var s BorderSides
	if x == 0 {
		s |= BorderLeft
	}
	if x == w-1 {
		s |= BorderRight
	}
	if y == 0 {
		s |= BorderTop
	}
	if y == h-1 {
		s |= BorderBottom
	}
	return s
}
