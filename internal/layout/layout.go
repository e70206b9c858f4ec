package layout

// Layout positions and sizes the children of a node.
// Implementations hold no per-node state so a value can be shared freely,
// but each widget owns the one it was given.
type Layout interface {
	// Layout assigns positions and sizes to n's children.
	Layout(n Layoutable)

	// CalculateOverlay marks the children of n that are covered by a
	// sibling painted after them.
	CalculateOverlay(n Layoutable)
}

// Base provides the default overlay computation. Embed it in custom layouts.
type Base struct{}

// CalculateOverlay walks the visible children from the topmost down,
// keeping the bounding box of everything painted above; a child is overlaid
// when its rectangle intersects that box.
func (Base) CalculateOverlay(n Layoutable) {
	children := n.LayoutChildren()
	var above Rect
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if !c.Visible() {
			c.SetOverlaid(false)
			continue
		}
		r := c.Rect()
		c.SetOverlaid(r.Intersects(above))
		above = above.Union(r)
	}
}

// HintedSize returns the size a child should have given the space the
// parent offers. natural is the size used for AutoLayout dimensions.
func HintedSize(c Layoutable, available, natural Size) Size {
	cur := c.Rect().Size()
	return Size{
		Width:  c.WidthHint().Resolve(available.Width, natural.Width, cur.Width),
		Height: c.HeightHint().Resolve(available.Height, natural.Height, cur.Height),
	}
}

// None applies the children's size hints and leaves positions alone.
// AutoLayout dimensions take the full contents size.
type None struct {
	Base
}

// Layout implements Layout.
func (None) Layout(n Layoutable) {
	avail := n.ContentsSize()
	for _, c := range n.LayoutChildren() {
		if !c.Visible() {
			continue
		}
		c.Resize(HintedSize(c, avail, avail))
	}
}

// Maximized sizes children like None and then centers each of them in the
// contents area, so AutoLayout children fill the parent and fixed-size
// children float in the middle.
type Maximized struct {
	Base
}

// Layout implements Layout.
func (Maximized) Layout(n Layoutable) {
	avail := n.ContentsSize()
	area := RectAt(Point{}, avail)
	for _, c := range n.LayoutChildren() {
		if !c.Visible() {
			continue
		}
		size := HintedSize(c, avail, avail)
		c.Resize(size)
		c.Move(area.Align(RectAt(Point{}, size), Center, Middle))
	}
}

// Direction specifies the main axis of a Stack.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Stack places visible children one after another along its main axis.
// AutoLayout children share the space left over by the others; on the
// cross axis AutoLayout children fill the parent.
type Stack struct {
	Base
	Direction Direction
	Gap       int
}

// RowLayout returns a left-to-right Stack.
func RowLayout(gap int) Stack {
	return Stack{Direction: Row, Gap: gap}
}

// ColumnLayout returns a top-to-bottom Stack.
func ColumnLayout(gap int) Stack {
	return Stack{Direction: Column, Gap: gap}
}

// Layout implements Layout.
func (s Stack) Layout(n Layoutable) {
	avail := n.ContentsSize()
	var children []Layoutable
	for _, c := range n.LayoutChildren() {
		if c.Visible() {
			children = append(children, c)
		}
	}
	if len(children) == 0 {
		return
	}

	mainAvail, crossAvail := s.split(avail)
	sizes := make([]Size, len(children))
	used := s.Gap * (len(children) - 1)
	auto := 0
	for i, c := range children {
		sizes[i] = HintedSize(c, avail, avail)
		if s.mainHint(c).IsAutoLayout() {
			auto++
			continue
		}
		m, _ := s.split(sizes[i])
		used += m
	}

	if auto > 0 {
		remaining := max(mainAvail-used, 0)
		share, extra := remaining/auto, remaining%auto
		for i, c := range children {
			if !s.mainHint(c).IsAutoLayout() {
				continue
			}
			m := share
			if extra > 0 {
				m++
				extra--
			}
			_, cross := s.split(sizes[i])
			sizes[i] = s.join(m, cross)
		}
	}

	pos := 0
	for i, c := range children {
		main, cross := s.split(sizes[i])
		if s.crossHint(c).IsAutoLayout() {
			cross = crossAvail
		}
		c.Resize(s.join(main, cross))
		if s.Direction == Row {
			c.Move(Point{X: pos})
		} else {
			c.Move(Point{Y: pos})
		}
		pos += main + s.Gap
	}
}

func (s Stack) split(sz Size) (main, cross int) {
	if s.Direction == Row {
		return sz.Width, sz.Height
	}
	return sz.Height, sz.Width
}

func (s Stack) join(main, cross int) Size {
	if s.Direction == Row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (s Stack) mainHint(c Layoutable) SizeHint {
	if s.Direction == Row {
		return c.WidthHint()
	}
	return c.HeightHint()
}

func (s Stack) crossHint(c Layoutable) SizeHint {
	if s.Direction == Row {
		return c.HeightHint()
	}
	return c.WidthHint()
}
