package termui

// Each On method registers a handler and returns a function that removes
// it. Handlers run on the UI goroutine in registration order; after all
// of a widget's handlers have run the event moves on to the parent unless
// one of them called Stop. Mouse positions are translated into each
// receiving widget's coordinates on the way up.

// OnMouseMove registers a handler for pointer motion.
func (w *Widget) OnMouseMove(fn Handler[MouseInput]) func() {
	return w.handlers.mouseMove.add(fn)
}

// OnMouseDown registers a handler for button presses.
func (w *Widget) OnMouseDown(fn Handler[MouseInput]) func() {
	return w.handlers.mouseDown.add(fn)
}

// OnMouseUp registers a handler for button releases.
func (w *Widget) OnMouseUp(fn Handler[MouseInput]) func() {
	return w.handlers.mouseUp.add(fn)
}

// OnClick registers a handler for a press and release on the same widget.
func (w *Widget) OnClick(fn Handler[MouseInput]) func() {
	return w.handlers.mouseClick.add(fn)
}

// OnDoubleClick registers a handler for two quick clicks on the same widget.
func (w *Widget) OnDoubleClick(fn Handler[MouseInput]) func() {
	return w.handlers.mouseDoubleClick.add(fn)
}

// OnMouseIn registers a handler for the pointer entering the widget.
func (w *Widget) OnMouseIn(fn Handler[MouseInput]) func() {
	return w.handlers.mouseIn.add(fn)
}

// OnMouseOut registers a handler for the pointer leaving the widget.
func (w *Widget) OnMouseOut(fn Handler[MouseInput]) func() {
	return w.handlers.mouseOut.add(fn)
}

// OnMouseWheel registers a handler for wheel scrolling.
func (w *Widget) OnMouseWheel(fn Handler[WheelInput]) func() {
	return w.handlers.mouseWheel.add(fn)
}

// OnKeyDown registers a handler for key presses.
func (w *Widget) OnKeyDown(fn Handler[KeyInput]) func() {
	return w.handlers.keyDown.add(fn)
}

// OnKeyUp registers a handler for key releases.
func (w *Widget) OnKeyUp(fn Handler[KeyInput]) func() {
	return w.handlers.keyUp.add(fn)
}

// OnKeyChar registers a handler for text input.
func (w *Widget) OnKeyChar(fn Handler[CharInput]) func() {
	return w.handlers.keyChar.add(fn)
}

// OnPaste registers a handler for clipboard paste.
func (w *Widget) OnPaste(fn Handler[PasteInput]) func() {
	return w.handlers.paste.add(fn)
}

// OnFocusIn registers a handler for gaining keyboard focus.
func (w *Widget) OnFocusIn(fn Handler[FocusInput]) func() {
	return w.handlers.focusIn.add(fn)
}

// OnFocusOut registers a handler for losing keyboard focus.
func (w *Widget) OnFocusOut(fn Handler[FocusInput]) func() {
	return w.handlers.focusOut.add(fn)
}

// parentOffset is added to a point in w's coordinates to get the same
// point in its parent's coordinates.
func (w *Widget) parentOffset() Point {
	if w.parent == nil {
		return Point{}
	}
	return w.rect.TopLeft().Add(w.parent.contentsOrigin())
}

// mouseTarget returns the deepest visible widget under p, given in w's
// coordinates, checking the topmost child first.
func (w *Widget) mouseTarget(p Point) *Widget {
	if !w.contentsRect().ContainsPoint(p) {
		return w
	}
	inner := p.Sub(w.contentsOrigin())
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if !c.visible || !c.rect.ContainsPoint(inner) {
			continue
		}
		local := inner.Sub(c.rect.TopLeft())
		if ht, ok := c.content.(HitTester); ok && !ht.HitTest(c, local) {
			continue
		}
		return c.mouseTarget(local)
	}
	return w
}

// focusableAncestor returns the nearest focusable widget at or above w.
func (w *Widget) focusableAncestor() *Widget {
	for n := w; n != nil; n = n.parent {
		if n.focusable {
			return n
		}
	}
	return nil
}
