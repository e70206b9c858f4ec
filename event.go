package termui

// Event wraps an input payload while it bubbles from its target widget up
// to the root. Any handler may call Stop to end the bubbling once every
// handler of the current widget has run.
type Event[P any] struct {
	Payload P
	active  bool
}

// NewEvent returns an active event carrying p.
func NewEvent[P any](p P) *Event[P] {
	return &Event[P]{Payload: p, active: true}
}

// Stop prevents the event from reaching further ancestors.
func (e *Event[P]) Stop() {
	e.active = false
}

// Active reports whether the event is still bubbling.
func (e *Event[P]) Active() bool {
	return e.active
}

// MouseInput is the payload of mouse move, button, click, enter and leave
// events. Pos is in the receiving widget's coordinates.
type MouseInput struct {
	Pos     Point
	Button  MouseButton  // button that changed, ButtonNone for moves
	Buttons MouseButtons // buttons held after the change
	Mods    Modifiers
}

// WheelInput is the payload of wheel events. Positive Delta scrolls down.
type WheelInput struct {
	Pos   Point
	Delta int
	Mods  Modifiers
}

// KeyInput is the payload of key down and key up events.
type KeyInput struct {
	Key  Key
	Mods Modifiers
}

// CharInput is the payload of text input events.
type CharInput struct {
	Char rune
	Mods Modifiers
}

// PasteInput is the payload of clipboard paste events.
type PasteInput struct {
	Text string
}

// FocusInput is the payload of keyboard focus events. Other is the widget
// losing focus for a focus-in, and the one gaining it for a focus-out.
type FocusInput struct {
	Other *Widget
}

// Events carrying each payload type.
type (
	MouseEvent = Event[MouseInput]
	WheelEvent = Event[WheelInput]
	KeyEvent   = Event[KeyInput]
	CharEvent  = Event[CharInput]
	PasteEvent = Event[PasteInput]
	FocusEvent = Event[FocusInput]
)

func (m MouseInput) translate(d Point) MouseInput {
	m.Pos = m.Pos.Add(d)
	return m
}

func (m WheelInput) translate(d Point) WheelInput {
	m.Pos = m.Pos.Add(d)
	return m
}
