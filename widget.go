package termui

import (
	"sync"
	"sync/atomic"
)

// Content supplies what a widget draws. Paint is called on the UI goroutine
// with a canvas covering the widget's whole area, after the background has
// been filled and before the children are painted.
type Content interface {
	Paint(w *Widget, c *Canvas)
}

// AutoSizer is implemented by content that knows its natural size. It is
// consulted for the dimensions whose hint is AutoSize; without it a widget
// autosizes to the extent of its visible children.
type AutoSizer interface {
	AutosizeHint(w *Widget) Size
}

// HitTester is implemented by content that is not solid everywhere. A
// widget whose content reports false for a point is transparent to the
// mouse there.
type HitTester interface {
	HitTest(w *Widget, p Point) bool
}

// Widget is a node of the retained UI tree. A parent owns its children in
// paint order: the first child is drawn first and the last one ends up on
// top. Widgets are created detached; they become attached when they are
// placed under a widget reachable from a Renderer root, or made the root.
//
// Tree mutation, layout and painting happen on the UI goroutine. Other
// goroutines hand work over with Renderer.Schedule.
type Widget struct {
	name string

	// Tree structure
	parent   *Widget
	children []*Widget
	isRoot   bool

	// Geometry
	rect         Rect
	widthHint    SizeHint
	heightHint   SizeHint
	padding      Edges
	scrollOffset Point
	layout       Layout
	overlaid     bool

	// Appearance and behavior
	visible    bool
	focusable  bool
	background Color
	content    Content

	// areaMu guards area's renderer reference, which input dispatch may
	// read while a subtree is being detached.
	areaMu sync.Mutex
	area   VisibleArea

	// Relayout state
	relayouting     bool
	pendingRelayout bool

	// pendingRepaint is set while a paint that covers this widget is in
	// flight, and while the widget is detached.
	pendingRepaint atomic.Bool

	handlers handlers
}

// NewWidget creates a detached widget. By default it is visible, has
// Manual size hints, an opaque default background and no layout beyond
// applying its children's hints.
func NewWidget(opts ...WidgetOption) *Widget {
	w := &Widget{
		visible: true,
		layout:  NoLayout(),
	}
	w.pendingRepaint.Store(true)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the debug name given with WithName.
func (w *Widget) Name() string {
	return w.name
}

func (w *Widget) String() string {
	if w.name != "" {
		return w.name
	}
	return "widget"
}

// Parent returns the parent widget, or nil.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns a copy of the child list in paint order.
func (w *Widget) Children() []*Widget {
	out := make([]*Widget, len(w.children))
	copy(out, w.children)
	return out
}

// Rect returns the widget's rectangle in its parent's contents space.
func (w *Widget) Rect() Rect {
	return w.rect
}

// Position returns the top-left corner of the widget in its parent.
func (w *Widget) Position() Point {
	return w.rect.TopLeft()
}

// Size returns the widget's size.
func (w *Widget) Size() Size {
	return w.rect.Size()
}

// ContentsSize returns the space available to children: the widget's
// size less its padding.
func (w *Widget) ContentsSize() Size {
	return w.contentsRect().Size()
}

// contentsRect is the children's area in local coordinates.
func (w *Widget) contentsRect() Rect {
	return RectAt(Point{}, w.rect.Size()).Inset(w.padding)
}

// contentsOrigin is where a child at (0, 0) lands in local coordinates.
func (w *Widget) contentsOrigin() Point {
	return Pt(w.padding.Left, w.padding.Top).Sub(w.scrollOffset)
}

// WidthHint returns the hint for the widget's width.
func (w *Widget) WidthHint() SizeHint {
	return w.widthHint
}

// HeightHint returns the hint for the widget's height.
func (w *Widget) HeightHint() SizeHint {
	return w.heightHint
}

// Padding returns the space reserved between the widget's edge and its children.
func (w *Widget) Padding() Edges {
	return w.padding
}

// ScrollOffset returns how far the children are scrolled.
func (w *Widget) ScrollOffset() Point {
	return w.scrollOffset
}

// Layout returns the layout positioning the widget's children.
func (w *Widget) Layout() Layout {
	return w.layout
}

// Visible reports whether the widget is shown.
func (w *Widget) Visible() bool {
	return w.visible
}

// Focusable reports whether a click gives the widget keyboard focus.
func (w *Widget) Focusable() bool {
	return w.focusable
}

// Overlaid reports whether a later sibling overlaps the widget.
func (w *Widget) Overlaid() bool {
	return w.overlaid
}

// Background returns the color the widget fills itself with before painting.
func (w *Widget) Background() Color {
	return w.background
}

// Content returns the widget's content, or nil.
func (w *Widget) Content() Content {
	return w.content
}

// VisibleArea returns the widget's current mapping into the buffer.
func (w *Widget) VisibleArea() VisibleArea {
	w.areaMu.Lock()
	defer w.areaMu.Unlock()
	return w.area
}

func (w *Widget) setArea(a VisibleArea) {
	w.areaMu.Lock()
	w.area = a
	w.areaMu.Unlock()
}

// Renderer returns the renderer the widget is attached to, or nil.
func (w *Widget) Renderer() *Renderer {
	return w.VisibleArea().Renderer()
}

// Attached reports whether the widget is reachable from a renderer root.
func (w *Widget) Attached() bool {
	return w.VisibleArea().Attached()
}

// IsRoot reports whether the widget is the root of a renderer.
func (w *Widget) IsRoot() bool {
	return w.isRoot
}

// ToRendererCoordinates converts a point in the widget's space to buffer space.
func (w *Widget) ToRendererCoordinates(p Point) Point {
	return w.VisibleArea().ToBuffer(p)
}

// ToWidgetCoordinates converts a point in buffer space to the widget's space.
func (w *Widget) ToWidgetCoordinates(p Point) Point {
	return w.VisibleArea().ToLocal(p)
}

// depth returns the number of ancestors.
func (w *Widget) depth() int {
	n := 0
	for p := w.parent; p != nil; p = p.parent {
		n++
	}
	return n
}

// IsAncestorOf reports whether w is other or one of its ancestors.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	for p := other; p != nil; p = p.parent {
		if p == w {
			return true
		}
	}
	return false
}

// walk calls fn for w and every descendant, parents first.
func (w *Widget) walk(fn func(*Widget)) {
	fn(w)
	for _, c := range w.children {
		c.walk(fn)
	}
}

// commonAncestor returns the deepest widget that is an ancestor of both
// a and b (either may be the answer), or nil if they share no tree.
func commonAncestor(a, b *Widget) *Widget {
	da, db := a.depth(), b.depth()
	for ; da > db; da-- {
		a = a.parent
	}
	for ; db > da; db-- {
		b = b.parent
	}
	for a != b {
		a, b = a.parent, b.parent
	}
	return a
}
