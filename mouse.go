package termui

import "strings"

// MouseButton identifies a single mouse button.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	}
	return "None"
}

// MouseButtons is a set of buttons.
type MouseButtons uint8

func (b MouseButton) mask() MouseButtons {
	if b == ButtonNone {
		return 0
	}
	return 1 << (b - 1)
}

// Has reports whether b is in the set.
func (s MouseButtons) Has(b MouseButton) bool {
	return b != ButtonNone && s&b.mask() != 0
}

// With returns the set plus b.
func (s MouseButtons) With(b MouseButton) MouseButtons {
	return s | b.mask()
}

// Without returns the set minus b.
func (s MouseButtons) Without(b MouseButton) MouseButtons {
	return s &^ b.mask()
}

// String lists the buttons in the set.
func (s MouseButtons) String() string {
	var parts []string
	for _, b := range []MouseButton{ButtonLeft, ButtonMiddle, ButtonRight} {
		if s.Has(b) {
			parts = append(parts, b.String())
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}
