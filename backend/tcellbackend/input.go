package tcellbackend

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	termui "github.com/grindlemire/go-termui"
)

// input turns tcell events into renderer calls. tcell reports the full
// button state with every mouse event, so presses and releases are found
// by comparing with the previous state.
type input struct {
	buttons tcell.ButtonMask
	pos     termui.Point
	moved   bool

	pasting bool
	paste   strings.Builder
}

// mouseButtons lists the buttons termui tracks with their tcell masks.
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button termui.MouseButton
}{
	{tcell.Button1, termui.ButtonLeft},
	{tcell.Button3, termui.ButtonMiddle},
	{tcell.Button2, termui.ButtonRight},
}

func (in *input) handleKey(r *termui.Renderer, ev *tcell.EventKey) {
	if in.pasting {
		switch ev.Key() {
		case tcell.KeyRune:
			in.paste.WriteRune(ev.Rune())
		case tcell.KeyEnter:
			in.paste.WriteByte('\n')
		case tcell.KeyTab:
			in.paste.WriteByte('\t')
		}
		return
	}

	key, ch, mods := translateKey(ev)
	r.SetModifiers(mods)
	if key != termui.KeyNone {
		r.KeyDown(key)
	}
	if ch != 0 {
		r.KeyChar(ch)
	}
	if key != termui.KeyNone {
		r.KeyUp(key)
	}
	r.SetModifiers(termui.ModNone)
}

func (in *input) handlePaste(r *termui.Renderer, ev *tcell.EventPaste) {
	switch {
	case ev.Start():
		in.pasting = true
		in.paste.Reset()
	case ev.End() && in.pasting:
		in.pasting = false
		r.Paste(in.paste.String())
	}
}

func (in *input) handleMouse(r *termui.Renderer, ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := termui.Pt(x, y)
	mask := ev.Buttons()
	r.SetModifiers(translateMods(ev.Modifiers()))
	defer r.SetModifiers(termui.ModNone)

	if !in.moved || p != in.pos {
		in.pos, in.moved = p, true
		r.MouseMove(p)
	}

	switch {
	case mask&tcell.WheelUp != 0:
		r.MouseWheel(p, -1)
	case mask&tcell.WheelDown != 0:
		r.MouseWheel(p, 1)
	}

	for _, b := range mouseButtons {
		was, is := in.buttons&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was:
			r.MouseDown(p, b.button)
		case was && !is:
			r.MouseUp(p, b.button)
		}
	}
	in.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
}

// specialKeys maps tcell keys that do not type a character.
var specialKeys = map[tcell.Key]termui.Key{
	tcell.KeyEscape:     termui.KeyEscape,
	tcell.KeyEnter:      termui.KeyEnter,
	tcell.KeyTab:        termui.KeyTab,
	tcell.KeyBackspace:  termui.KeyBackspace,
	tcell.KeyBackspace2: termui.KeyBackspace,
	tcell.KeyDelete:     termui.KeyDelete,
	tcell.KeyInsert:     termui.KeyInsert,
	tcell.KeyUp:         termui.KeyUp,
	tcell.KeyDown:       termui.KeyDown,
	tcell.KeyLeft:       termui.KeyLeft,
	tcell.KeyRight:      termui.KeyRight,
	tcell.KeyHome:       termui.KeyHome,
	tcell.KeyEnd:        termui.KeyEnd,
	tcell.KeyPgUp:       termui.KeyPageUp,
	tcell.KeyPgDn:       termui.KeyPageDown,
	tcell.KeyF1:         termui.KeyF1,
	tcell.KeyF2:         termui.KeyF2,
	tcell.KeyF3:         termui.KeyF3,
	tcell.KeyF4:         termui.KeyF4,
	tcell.KeyF5:         termui.KeyF5,
	tcell.KeyF6:         termui.KeyF6,
	tcell.KeyF7:         termui.KeyF7,
	tcell.KeyF8:         termui.KeyF8,
	tcell.KeyF9:         termui.KeyF9,
	tcell.KeyF10:        termui.KeyF10,
	tcell.KeyF11:        termui.KeyF11,
	tcell.KeyF12:        termui.KeyF12,
}

// translateKey returns the physical key, the typed character (0 if
// none) and the modifiers of ev.
func translateKey(ev *tcell.EventKey) (termui.Key, rune, termui.Modifiers) {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			mods |= termui.ModShift
		}
		if mods.Has(termui.ModAlt) || mods.Has(termui.ModCtrl) {
			return termui.KeyForRune(r), 0, mods
		}
		return termui.KeyForRune(r), r, mods
	case k == tcell.KeyBacktab:
		return termui.KeyTab, 0, mods | termui.ModShift
	case k == tcell.KeyCtrlSpace:
		return termui.KeySpace, 0, mods | termui.ModCtrl
	}
	if key, ok := specialKeys[k]; ok {
		return key, 0, mods
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return termui.KeyA + termui.Key(k-tcell.KeyCtrlA), 0, mods | termui.ModCtrl
	}
	return termui.KeyNone, 0, mods
}

func translateMods(m tcell.ModMask) termui.Modifiers {
	var mods termui.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= termui.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= termui.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= termui.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= termui.ModWin
	}
	return mods
}
