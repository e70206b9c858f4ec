package termui

import "strings"

// Buffer is the grid of cells widgets paint into and backends read from.
// Every access from outside the UI goroutine must hold the buffer's lock;
// the renderer holds it (with priority) while painting and rendering.
type Buffer struct {
	PriorityLock

	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given dimensions filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or a zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell stores c at (x, y). Out of bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// update replaces the cell at (x, y) with fn applied to it.
func (b *Buffer) update(x, y int, fn func(Cell) Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = fn(b.cells[i])
}

// breakWide blanks any wide character that overlaps (x, y) so a write there
// never leaves half a glyph behind.
func (b *Buffer) breakWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation() && x > 0:
		b.update(x-1, y, blankKeepBg)
	case c.Width == 2:
		b.update(x+1, y, blankKeepBg)
	}
}

func blankKeepBg(c Cell) Cell {
	return Cell{Rune: ' ', Width: 1, Bg: c.Bg}
}

// Row returns a copy of row y.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]Cell, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row
}

// Clone returns a deep copy of the buffer without its lock state.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{width: b.width, height: b.height, cells: make([]Cell, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

// Clear resets every cell to a blank.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = BlankCell()
	}
}

// Resize changes the dimensions, keeping the overlapping region.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if b.cells != nil && width == b.width && height == b.height {
		return
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = BlankCell()
	}
	for y := range min(height, b.height) {
		copy(cells[y*width:y*width+min(width, b.width)], b.cells[y*b.width:])
	}
	b.cells, b.width, b.height = cells, width, height
}

// String renders the buffer's glyphs for debugging, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := range b.height {
		b.writeRow(&sb, y)
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	for y := range b.height {
		var line strings.Builder
		b.writeRow(&line, y)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Buffer) writeRow(sb *strings.Builder, y int) {
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		switch {
		case c.IsContinuation():
		case c.Rune == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(c.Rune)
		}
	}
}
