package termui

import (
	"strconv"
	"strings"
)

// Key identifies a physical key, independent of the text it produces.
// Text input arrives separately as CharInput.
type Key uint16

const (
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys
	KeyShift
	KeyCtrl
	KeyAlt
	KeyWin

	// KeyA through KeyZ and Key0 through Key9 are contiguous.
	KeyA
	KeyZ = KeyA + 25
	Key0 = KeyZ + 1
	Key9 = Key0 + 9
)

var keyNames = map[Key]string{
	KeyNone: "None", KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyDelete: "Delete", KeyInsert: "Insert",
	KeySpace: "Space", KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left",
	KeyRight: "Right", KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp",
	KeyPageDown: "PageDown", KeyShift: "Shift", KeyCtrl: "Ctrl",
	KeyAlt: "Alt", KeyWin: "Win",
}

// String returns a human-readable name of the key.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeyForRune returns the key that types r on a US layout, or KeyNone.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	case r == ' ':
		return KeySpace
	}
	return KeyNone
}

// Modifiers is the set of modifier keys held down.
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModWin
)

// modifierFor returns the modifier a key controls, or ModNone.
func modifierFor(k Key) Modifiers {
	switch k {
	case KeyShift:
		return ModShift
	case KeyCtrl:
		return ModCtrl
	case KeyAlt:
		return ModAlt
	case KeyWin:
		return ModWin
	}
	return ModNone
}

// Has reports whether every modifier in mod is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// String returns the modifiers joined with "+".
func (m Modifiers) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	for _, p := range []struct {
		mod  Modifiers
		name string
	}{{ModCtrl, "Ctrl"}, {ModAlt, "Alt"}, {ModShift, "Shift"}, {ModWin, "Win"}} {
		if m.Has(p.mod) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "+")
}
