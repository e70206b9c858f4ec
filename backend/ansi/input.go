package ansi

import termui "github.com/grindlemire/go-termui"

// event is decoded terminal input, replayed on the UI goroutine as
// renderer calls.
type event interface {
	dispatch(r *termui.Renderer)
}

// keyEvent is one key press. Terminals report presses only, so dispatch
// sends the down and up pair back to back. ch is the typed character, 0
// for keys that do not type.
type keyEvent struct {
	key  termui.Key
	ch   rune
	mods termui.Modifiers
}

func (e keyEvent) dispatch(r *termui.Renderer) {
	r.SetModifiers(e.mods)
	if e.key != termui.KeyNone {
		r.KeyDown(e.key)
	}
	if e.ch != 0 {
		r.KeyChar(e.ch)
	}
	if e.key != termui.KeyNone {
		r.KeyUp(e.key)
	}
	r.SetModifiers(termui.ModNone)
}

type mouseAction uint8

const (
	mousePress mouseAction = iota
	mouseRelease
	mouseMotion
	mouseWheel
)

// mouseEvent is one SGR mouse report in 0-indexed cell coordinates.
// delta is -1 for wheel up and +1 for wheel down.
type mouseEvent struct {
	pos    termui.Point
	button termui.MouseButton
	action mouseAction
	delta  int
	mods   termui.Modifiers
}

func (e mouseEvent) dispatch(r *termui.Renderer) {
	r.SetModifiers(e.mods)
	switch e.action {
	case mousePress:
		r.MouseDown(e.pos, e.button)
	case mouseRelease:
		r.MouseUp(e.pos, e.button)
	case mouseMotion:
		r.MouseMove(e.pos)
	case mouseWheel:
		r.MouseWheel(e.pos, e.delta)
	}
	r.SetModifiers(termui.ModNone)
}

type pasteEvent struct {
	text string
}

func (e pasteEvent) dispatch(r *termui.Renderer) {
	r.Paste(e.text)
}
