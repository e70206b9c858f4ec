package termui

import "github.com/grindlemire/go-termui/internal/debug"

// layoutNode exposes a widget to Layout implementations through the
// Layoutable accessors only.
type layoutNode struct {
	w *Widget
}

var _ Layoutable = layoutNode{}

func (n layoutNode) ContentsSize() Size   { return n.w.ContentsSize() }
func (n layoutNode) Rect() Rect           { return n.w.rect }
func (n layoutNode) WidthHint() SizeHint  { return n.w.widthHint }
func (n layoutNode) HeightHint() SizeHint { return n.w.heightHint }
func (n layoutNode) Visible() bool        { return n.w.visible }
func (n layoutNode) Move(p Point)         { n.w.Move(p) }
func (n layoutNode) Resize(s Size)        { n.w.Resize(s) }
func (n layoutNode) SetOverlaid(o bool)   { n.w.overlaid = o }

func (n layoutNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.w.children))
	for i, c := range n.w.children {
		out[i] = layoutNode{c}
	}
	return out
}

// Move places the widget at p in its parent's contents space. Moving to
// the current position does nothing. It panics on a renderer root.
func (w *Widget) Move(p Point) {
	if w.isRoot {
		panic("termui: moving the root widget")
	}
	if p == w.rect.TopLeft() {
		return
	}
	w.rect = w.rect.WithTopLeft(p)
	w.invalidateGeometry(false)
}

// Resize changes the widget's size. Resizing to the current size does nothing.
func (w *Widget) Resize(s Size) {
	s = Sz(max(s.Width, 0), max(s.Height, 0))
	if s == w.rect.Size() {
		return
	}
	w.rect = w.rect.WithSize(s)
	w.invalidateGeometry(true)
}

// SetRect moves and resizes the widget in one step.
func (w *Widget) SetRect(r Rect) {
	w.Resize(r.Size())
	if !w.isRoot {
		w.Move(r.TopLeft())
	}
}

// SetWidthHint changes how the width is derived.
func (w *Widget) SetWidthHint(h SizeHint) {
	if h == w.widthHint {
		return
	}
	w.widthHint = h
	w.invalidateGeometry(true)
}

// SetHeightHint changes how the height is derived.
func (w *Widget) SetHeightHint(h SizeHint) {
	if h == w.heightHint {
		return
	}
	w.heightHint = h
	w.invalidateGeometry(true)
}

// SetLayout replaces the layout used for the children.
func (w *Widget) SetLayout(l Layout) {
	if l == nil {
		l = NoLayout()
	}
	w.layout = l
	w.invalidateLayout()
}

// SetPadding changes the space reserved around the children.
func (w *Widget) SetPadding(e Edges) {
	if e == w.padding {
		return
	}
	w.padding = e
	w.invalidateLayout()
}

// SetScrollOffset shifts the children by -p within the contents area.
func (w *Widget) SetScrollOffset(p Point) {
	if p == w.scrollOffset {
		return
	}
	w.scrollOffset = p
	w.invalidateLayout()
}

// SetVisible shows or hides the widget. Hidden widgets are skipped by
// layout, painting, overlay computation and hit testing.
func (w *Widget) SetVisible(visible bool) {
	if visible == w.visible {
		return
	}
	w.visible = visible
	if visible {
		w.pendingRepaint.Store(false)
	}
	w.invalidateGeometry(visible)
}

// Relayout lays the children out again. Content whose natural size has
// changed calls it so AutoSize hints are re-evaluated.
func (w *Widget) Relayout() {
	w.invalidateLayout()
}

// invalidateLayout is used when w's own children need laying out again.
func (w *Widget) invalidateLayout() {
	w.pendingRelayout = true
	if p := w.parent; p != nil && p.relayouting {
		p.pendingRelayout = true
		return
	}
	w.relayout()
}

// invalidateGeometry is used when w's rectangle, hints or visibility
// changed, which is the parent's layout's business. self marks w as
// needing its own relayout too.
func (w *Widget) invalidateGeometry(self bool) {
	if self {
		w.pendingRelayout = true
	}
	p := w.parent
	switch {
	case p == nil:
		if w.pendingRelayout {
			w.relayout()
		}
	case p.relayouting:
		p.pendingRelayout = true
	default:
		p.relayout()
		if w.pendingRelayout && w.parent == p {
			w.relayout()
		}
	}
}

// relayout runs the layout fixpoint on w. A call made while w is already
// relaying out only marks it pending; the running pass picks it up.
func (w *Widget) relayout() {
	if w.relayouting {
		w.pendingRelayout = true
		return
	}
	w.relayouting = true
	for {
		w.layout.Layout(layoutNode{w})
		w.pendingRelayout = false
		for _, c := range w.children {
			if c.pendingRelayout {
				c.relayout()
			}
		}
		if w.pendingRelayout {
			continue
		}
		if size := w.autosizeHint(); size != w.rect.Size() {
			debug.Log("relayout: %s autosizes %v -> %v", w, w.rect.Size(), size)
			w.relayouting = false
			w.Resize(size)
			return
		}
		w.layout.CalculateOverlay(layoutNode{w})
		break
	}
	w.relayouting = false

	if w.parent == nil || !w.parent.relayouting {
		w.updateVisibleArea()
		w.Repaint()
	}
}

// autosizeHint returns the size w wants given its AutoSize dimensions.
// Other dimensions keep their current value.
func (w *Widget) autosizeHint() Size {
	size := w.rect.Size()
	autoW, autoH := w.widthHint.IsAutoSize(), w.heightHint.IsAutoSize()
	if !autoW && !autoH {
		return size
	}
	var natural Size
	if as, ok := w.content.(AutoSizer); ok {
		natural = as.AutosizeHint(w)
	} else {
		natural = w.childrenExtent()
	}
	if autoW {
		size.Width = natural.Width
	}
	if autoH {
		size.Height = natural.Height
	}
	return Sz(max(size.Width, 0), max(size.Height, 0))
}

// childrenExtent returns the size that just fits every visible child
// plus the padding.
func (w *Widget) childrenExtent() Size {
	var ext Size
	for _, c := range w.children {
		if !c.visible {
			continue
		}
		ext.Width = max(ext.Width, c.rect.Right())
		ext.Height = max(ext.Height, c.rect.Bottom())
	}
	ext.Width += w.padding.Horizontal()
	ext.Height += w.padding.Vertical()
	return ext
}

// updateVisibleArea recomputes the areas of w and its descendants from
// the parent's area, or from the renderer for the root.
func (w *Widget) updateVisibleArea() {
	var area VisibleArea
	switch {
	case w.parent != nil:
		area = w.parent.childArea(w)
	case w.isRoot:
		area = w.Renderer().rootArea(w)
	default:
		return
	}
	w.setArea(area)
	for _, c := range w.children {
		c.updateVisibleArea()
	}
}

// childArea derives a child's area from w's: clipped to w's contents
// rectangle, then to the child's rectangle shifted by the scroll offset.
func (w *Widget) childArea(c *Widget) VisibleArea {
	contents := w.VisibleArea().Clip(w.contentsRect())
	return contents.Clip(c.rect.Offset(Point{}.Sub(w.scrollOffset)))
}
