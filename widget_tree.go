package termui

import "github.com/grindlemire/go-termui/internal/debug"

// Attach inserts child at the front of the child list, so it is painted
// first and sits below its siblings. Attaching a widget that is already
// a child of w only moves it to the front. It panics if child belongs to
// another parent or is a renderer root.
func (w *Widget) Attach(child *Widget) {
	w.attach(child, false)
}

// AttachBack appends child to the child list, so it is painted last and
// sits above its siblings. Re-attaching an existing child moves it to the
// back.
func (w *Widget) AttachBack(child *Widget) {
	w.attach(child, true)
}

func (w *Widget) attach(child *Widget, back bool) {
	switch {
	case child == nil:
		panic("termui: attaching a nil widget")
	case child.IsAncestorOf(w):
		panic("termui: attaching a widget below itself")
	case child.parent != nil && child.parent != w:
		panic("termui: attaching a widget that already has a parent")
	case child.isRoot:
		panic("termui: attaching a renderer root")
	}

	if child.parent == w {
		w.removeChild(child)
	} else {
		child.parent = w
		child.pendingRelayout = true
		// Its areas are stale until the relayout below recomputes them;
		// the first paint of the new subtree comes from that pass.
		child.pendingRepaint.Store(false)
	}
	if back {
		w.children = append(w.children, child)
	} else {
		w.children = append([]*Widget{child}, w.children...)
	}
	debug.Log("attach: %s -> %s (back=%v, children=%d)", child, w, back, len(w.children))

	w.invalidateLayout()
}

// Detach removes child from w. The subtree's visible areas are
// invalidated first, its scheduled callbacks are cancelled and renderer
// focus inside it moves to w. It panics if child is not a child of w.
func (w *Widget) Detach(child *Widget) {
	if child == nil || child.parent != w {
		panic("termui: detaching a widget that is not a child")
	}

	r := child.Renderer()
	child.invalidateAreas()
	if r != nil {
		r.widgetDetached(child, w)
	}

	w.removeChild(child)
	child.parent = nil
	child.overlaid = false
	child.pendingRepaint.Store(true)
	debug.Log("detach: %s from %s (children=%d)", child, w, len(w.children))

	w.invalidateLayout()
	w.Repaint()
}

// DetachAll removes every child of w.
func (w *Widget) DetachAll() {
	for len(w.children) > 0 {
		w.Detach(w.children[len(w.children)-1])
	}
}

func (w *Widget) removeChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

// invalidateAreas detaches the visible area of w and all its descendants.
func (w *Widget) invalidateAreas() {
	w.walk(func(n *Widget) {
		n.areaMu.Lock()
		n.area.Detach()
		n.areaMu.Unlock()
	})
}
