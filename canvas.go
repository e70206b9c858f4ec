package termui

// Canvas is the drawing surface handed to a widget while it paints.
// Coordinates are local to the widget; every operation is clipped to the
// widget's VisibleArea before it reaches the buffer.
type Canvas struct {
	area VisibleArea
	size Size
	buf  *Buffer
}

// NewCanvas binds a visible area of buf to a surface of the given size.
func NewCanvas(area VisibleArea, size Size, buf *Buffer) *Canvas {
	return &Canvas{area: area, size: size, buf: buf}
}

// Size returns the logical size of the surface.
func (c *Canvas) Size() Size {
	return c.size
}

// Bounds returns the whole surface as a Rect at the origin.
func (c *Canvas) Bounds() Rect {
	return RectAt(Point{}, c.size)
}

// VisibleRect returns the part of the surface that reaches the buffer.
func (c *Canvas) VisibleRect() Rect {
	return c.area.Rect()
}

// clip intersects rect with the visible area and returns it in buffer
// coordinates.
func (c *Canvas) clip(rect Rect) Rect {
	vis := c.area.Rect().Intersect(rect)
	if vis.IsEmpty() || c.buf == nil {
		return Rect{}
	}
	return vis.Offset(c.area.Offset()).Intersect(c.buf.Rect())
}

func (c *Canvas) each(rect Rect, fn func(x, y int)) {
	r := c.clip(rect)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			fn(x, y)
		}
	}
}

// Fill paints rect with color. An opaque color replaces the cells with
// blanks on that background. A translucent color is composited over the
// foreground, background and decoration colors of each cell.
func (c *Canvas) Fill(rect Rect, color Color) {
	if color.Alpha() == 0 {
		return
	}
	if color.Opaque() {
		c.each(rect, func(x, y int) {
			c.buf.breakWide(x, y)
			c.buf.SetCell(x, y, Cell{Rune: ' ', Width: 1, Bg: color})
		})
		return
	}
	c.each(rect, func(x, y int) {
		c.buf.update(x, y, func(cell Cell) Cell {
			cell.Fg = color.Over(cell.Fg)
			cell.Bg = color.Over(cell.Bg)
			cell.Decor = color.Over(cell.Decor)
			return cell
		})
	})
}

// SetCell stores cell at (x, y) if that point is visible.
func (c *Canvas) SetCell(x, y int, cell Cell) {
	c.each(NewRect(x, y, 1, 1), func(bx, by int) {
		c.buf.breakWide(bx, by)
		c.buf.SetCell(bx, by, cell)
	})
}

// Cell returns the buffer cell under local point (x, y), or a zero Cell
// when that point is not visible.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.area.Rect().Contains(x, y) || c.buf == nil {
		return Cell{}
	}
	p := c.area.ToBuffer(Pt(x, y))
	return c.buf.Cell(p.X, p.Y)
}

// Text draws s on row y starting at column x and returns the width the
// text occupies, visible or not. Wide runes take two cells and are
// skipped when only one of them is visible.
func (c *Canvas) Text(x, y int, s string, style Style) int {
	vis := c.clip(NewRect(x, y, StringWidth(s), 1))
	cur := x
	for _, r := range s {
		w := RuneWidth(r)
		p := c.area.ToBuffer(Pt(cur, y))
		cur += w
		if !vis.Contains(p.X, p.Y) || !vis.Contains(p.X+w-1, p.Y) {
			continue
		}
		c.buf.breakWide(p.X, p.Y)
		if w == 2 {
			c.buf.breakWide(p.X+1, p.Y)
		}
		c.buf.update(p.X, p.Y, func(dst Cell) Cell {
			return style.apply(dst, r, uint8(w))
		})
		if w == 2 {
			c.buf.update(p.X+1, p.Y, func(dst Cell) Cell {
				return style.apply(dst, 0, 0)
			})
		}
	}
	return cur - x
}

// Border frames rect. The cells along each requested side get the
// matching side flags, AttrBorder and color as their decoration color;
// box styles also draw frame runes in color.
func (c *Canvas) Border(rect Rect, sides BorderSides, color Color, box BoxStyle) {
	runes, drawRunes := box.Runes()
	c.each(rect, func(x, y int) {
		local := c.area.ToLocal(Pt(x, y)).Sub(rect.TopLeft())
		s := sidesAt(local.X, local.Y, rect.Width, rect.Height) & sides
		if s == 0 {
			return
		}
		if drawRunes {
			c.buf.breakWide(x, y)
		}
		c.buf.update(x, y, func(cell Cell) Cell {
			cell.Border |= s
			cell.Attrs |= AttrBorder
			cell.Decor = color
			if drawRunes {
				if r := runes.at(s); r != 0 {
					cell.Rune, cell.Width, cell.Fg = r, 1, color
				}
			}
			return cell
		})
	})
}

// Attributes sets attrs on every visible cell of rect.
func (c *Canvas) Attributes(rect Rect, attrs Attr) {
	c.each(rect, func(x, y int) {
		c.buf.update(x, y, func(cell Cell) Cell {
			cell.Attrs |= attrs
			return cell
		})
	})
}

// ClearAttributes removes attrs from every visible cell of rect.
func (c *Canvas) ClearAttributes(rect Rect, attrs Attr) {
	c.each(rect, func(x, y int) {
		c.buf.update(x, y, func(cell Cell) Cell {
			cell.Attrs &^= attrs
			return cell
		})
	})
}
