package termui

import "github.com/grindlemire/go-termui/internal/debug"

// The input entry points below are called by backends on the UI goroutine
// with positions in buffer coordinates. Backends that read input on
// another goroutine hand it over with Schedule.

// Modifiers returns the modifier keys currently believed to be held.
func (r *Renderer) Modifiers() Modifiers {
	return r.mods
}

// SetModifiers corrects the modifier state without emitting key events,
// for backends that only learn about modifiers alongside other input.
func (r *Renderer) SetModifiers(m Modifiers) {
	r.mods = m
}

// KeyboardFocus returns the widget receiving keyboard input, or nil.
func (r *Renderer) KeyboardFocus() *Widget {
	return r.keyboardFocus
}

// MouseFocus returns the widget receiving mouse input, or nil.
func (r *Renderer) MouseFocus() *Widget {
	return r.mouseFocus
}

// PressedButtons returns the mouse buttons currently held.
func (r *Renderer) PressedButtons() MouseButtons {
	return r.pressed
}

// SetKeyboardFocus moves keyboard focus to w, which may be nil. The
// widget losing focus gets a focus-out event, then w gets a focus-in.
func (r *Renderer) SetKeyboardFocus(w *Widget) {
	old := r.keyboardFocus
	if w == old {
		return
	}
	r.keyboardFocus = w
	debug.Log("focus: keyboard %v -> %v", old, w)
	if old != nil {
		bubble(old, FocusInput{Other: w}, pickFocusOut, nil)
	}
	if w != nil && r.keyboardFocus == w {
		bubble(w, FocusInput{Other: old}, pickFocusIn, nil)
	}
}

// MouseTarget returns the widget under p, in buffer coordinates: the
// deepest visible widget containing it, topmost siblings first, or the
// root when nothing else does.
func (r *Renderer) MouseTarget(p Point) *Widget {
	if r.root == nil || !r.root.visible {
		return r.root
	}
	return r.root.mouseTarget(r.root.ToWidgetCoordinates(p))
}

// keyTarget is where keyboard input goes.
func (r *Renderer) keyTarget() *Widget {
	if r.keyboardFocus != nil {
		return r.keyboardFocus
	}
	return r.root
}

// KeyDown dispatches a key press. Modifier keys update the modifier state
// before the event is sent.
func (r *Renderer) KeyDown(k Key) {
	r.mods |= modifierFor(k)
	if t := r.keyTarget(); t != nil {
		bubble(t, KeyInput{Key: k, Mods: r.mods}, pickKeyDown, nil)
	}
}

// KeyUp dispatches a key release. Releasing a modifier key clears it
// before the event is sent.
func (r *Renderer) KeyUp(k Key) {
	r.mods &^= modifierFor(k)
	if t := r.keyTarget(); t != nil {
		bubble(t, KeyInput{Key: k, Mods: r.mods}, pickKeyUp, nil)
	}
}

// KeyChar dispatches typed text, one rune at a time.
func (r *Renderer) KeyChar(ch rune) {
	if t := r.keyTarget(); t != nil {
		bubble(t, CharInput{Char: ch, Mods: r.mods}, pickKeyChar, nil)
	}
}

// Paste dispatches clipboard text to the keyboard focus.
func (r *Renderer) Paste(text string) {
	if t := r.keyTarget(); t != nil {
		bubble(t, PasteInput{Text: text}, pickPaste, nil)
	}
}

// MouseMove dispatches pointer motion to the mouse focus.
func (r *Renderer) MouseMove(p Point) {
	r.updateMouseFocus(p)
	r.dispatchMouse(r.mouseFocus, ButtonNone, pickMouseMove)
}

// MouseWheel dispatches wheel scrolling at p.
func (r *Renderer) MouseWheel(p Point, delta int) {
	r.updateMouseFocus(p)
	t := r.mouseFocus
	if t == nil {
		return
	}
	in := WheelInput{Pos: t.ToWidgetCoordinates(p), Delta: delta, Mods: r.mods}
	bubble(t, in, pickMouseWheel, WheelInput.translate)
}

// MouseDown dispatches a button press at p. The widget under the pointer
// keeps the mouse focus until every button is released, and the nearest
// focusable widget at or above it takes keyboard focus.
func (r *Renderer) MouseDown(p Point, b MouseButton) {
	r.updateMouseFocus(p)
	r.pressed = r.pressed.With(b)
	t := r.mouseFocus
	if t == nil {
		return
	}
	r.downTargets[b] = t
	if f := t.focusableAncestor(); f != nil {
		r.SetKeyboardFocus(f)
	}
	r.dispatchMouse(t, b, pickMouseDown)
}

// MouseUp dispatches a button release at p, followed by a click or double
// click when the press happened on the same widget.
func (r *Renderer) MouseUp(p Point, b MouseButton) {
	r.mousePos = p
	r.pressed = r.pressed.Without(b)
	t := r.mouseFocus
	if t != nil {
		r.dispatchMouse(t, b, pickMouseUp)
	}

	down := r.downTargets[b]
	delete(r.downTargets, b)
	if t != nil && down == t && r.MouseTarget(p) == t {
		r.click(t, b)
	}
	r.updateMouseFocus(p)
}

func (r *Renderer) click(t *Widget, b MouseButton) {
	now := r.clock()
	last := r.lastClick
	if last.target == t && last.button == b && now.Sub(last.at) <= r.doubleClick {
		r.lastClick = clickRecord{}
		r.dispatchMouse(t, b, pickMouseClick)
		r.dispatchMouse(t, b, pickMouseDoubleClick)
		return
	}
	r.lastClick = clickRecord{target: t, button: b, at: now}
	r.dispatchMouse(t, b, pickMouseClick)
}

// updateMouseFocus records the pointer position and, unless a button is
// held, moves the mouse focus to the widget under it with leave and enter
// events.
func (r *Renderer) updateMouseFocus(p Point) {
	r.mousePos = p
	if r.pressed != 0 {
		return
	}
	t := r.MouseTarget(p)
	old := r.mouseFocus
	if t == old {
		return
	}
	r.mouseFocus = t
	if old != nil && old.Attached() {
		r.dispatchMouse(old, ButtonNone, pickMouseOut)
	}
	if t != nil {
		r.dispatchMouse(t, ButtonNone, pickMouseIn)
	}
}

func (r *Renderer) dispatchMouse(t *Widget, b MouseButton, pick func(*handlers) *handlerList[MouseInput]) {
	if t == nil {
		return
	}
	in := MouseInput{
		Pos:     t.ToWidgetCoordinates(r.mousePos),
		Button:  b,
		Buttons: r.pressed,
		Mods:    r.mods,
	}
	bubble(t, in, pick, MouseInput.translate)
}

func pickMouseMove(h *handlers) *handlerList[MouseInput]        { return &h.mouseMove }
func pickMouseDown(h *handlers) *handlerList[MouseInput]        { return &h.mouseDown }
func pickMouseUp(h *handlers) *handlerList[MouseInput]          { return &h.mouseUp }
func pickMouseClick(h *handlers) *handlerList[MouseInput]       { return &h.mouseClick }
func pickMouseDoubleClick(h *handlers) *handlerList[MouseInput] { return &h.mouseDoubleClick }
func pickMouseIn(h *handlers) *handlerList[MouseInput]          { return &h.mouseIn }
func pickMouseOut(h *handlers) *handlerList[MouseInput]         { return &h.mouseOut }
func pickMouseWheel(h *handlers) *handlerList[WheelInput]       { return &h.mouseWheel }
func pickKeyDown(h *handlers) *handlerList[KeyInput]            { return &h.keyDown }
func pickKeyUp(h *handlers) *handlerList[KeyInput]              { return &h.keyUp }
func pickKeyChar(h *handlers) *handlerList[CharInput]           { return &h.keyChar }
func pickPaste(h *handlers) *handlerList[PasteInput]            { return &h.paste }
func pickFocusIn(h *handlers) *handlerList[FocusInput]          { return &h.focusIn }
func pickFocusOut(h *handlers) *handlerList[FocusInput]         { return &h.focusOut }
