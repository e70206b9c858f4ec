package termui

import "github.com/grindlemire/go-termui/internal/debug"

// Repaint asks for the widget to be painted again. Requests coalesce: a
// widget whose previous request is still in flight, or whose ancestor
// will repaint anyway, adds no work. A widget that a later sibling
// overlaps, or that is not opaque, has its parent repaint instead.
func (w *Widget) Repaint() {
	if !w.visible {
		return
	}
	if w.pendingRepaint.Swap(true) {
		return
	}
	if p := w.parent; p != nil && !p.allowRepaintRequest(w) {
		return
	}
	if r := w.Renderer(); r != nil {
		r.paint(w)
	}
}

// allowRepaintRequest decides whether child may be painted on its own.
func (w *Widget) allowRepaintRequest(child *Widget) bool {
	if !w.visible || w.pendingRepaint.Load() {
		return false
	}
	if child.overlaid || !child.background.Opaque() {
		debug.Log("repaint: %s covers request from %s", w, child)
		w.Repaint()
		return false
	}
	if w.parent == nil {
		return true
	}
	return w.parent.allowRepaintRequest(w)
}

// paint draws w and its visible descendants into buf and clears their
// pending flags. The caller holds the buffer lock.
func (w *Widget) paint(buf *Buffer) {
	if !w.visible {
		return
	}
	w.pendingRepaint.Store(false)
	area := w.VisibleArea()
	if !area.Attached() {
		return
	}
	c := NewCanvas(area, w.rect.Size(), buf)
	c.Fill(c.Bounds(), w.background)
	if w.content != nil {
		w.content.Paint(w, c)
	}
	for _, child := range w.children {
		child.paint(buf)
	}
}

// SetBackground changes the fill painted under the content.
func (w *Widget) SetBackground(c Color) {
	if c == w.background {
		return
	}
	w.background = c
	w.Repaint()
}

// SetContent replaces what the widget draws and re-evaluates its size.
func (w *Widget) SetContent(c Content) {
	w.content = c
	w.invalidateLayout()
	w.Repaint()
}

// SetFocusable changes whether a click gives the widget keyboard focus.
func (w *Widget) SetFocusable(focusable bool) {
	w.focusable = focusable
}
