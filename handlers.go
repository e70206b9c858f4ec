package termui

import "sync"

// Handler receives an event while it bubbles.
type Handler[P any] func(e *Event[P])

type handlerEntry[P any] struct {
	id int
	fn Handler[P]
}

// handlerList is an ordered list of handlers that may be added to or
// removed from while it is firing.
type handlerList[P any] struct {
	mu      sync.RWMutex
	nextID  int
	entries []handlerEntry[P]
}

// add appends fn and returns a function removing it again.
func (l *handlerList[P]) add(fn Handler[P]) (remove func()) {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[P]{id: id, fn: fn})
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// fire calls every handler registered when fire started.
func (l *handlerList[P]) fire(e *Event[P]) {
	l.mu.RLock()
	entries := l.entries
	l.mu.RUnlock()
	for _, entry := range entries {
		entry.fn(e)
	}
}

func (l *handlerList[P]) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// handlers holds a widget's handler list per event kind.
type handlers struct {
	mouseMove        handlerList[MouseInput]
	mouseDown        handlerList[MouseInput]
	mouseUp          handlerList[MouseInput]
	mouseClick       handlerList[MouseInput]
	mouseDoubleClick handlerList[MouseInput]
	mouseIn          handlerList[MouseInput]
	mouseOut         handlerList[MouseInput]
	mouseWheel       handlerList[WheelInput]
	keyDown          handlerList[KeyInput]
	keyUp            handlerList[KeyInput]
	keyChar          handlerList[CharInput]
	paste            handlerList[PasteInput]
	focusIn          handlerList[FocusInput]
	focusOut         handlerList[FocusInput]
}

// bubble fires the list picked by pick on target and then on each
// ancestor until a handler stops the event. translate, when set, maps
// the payload from a child's coordinates into its parent's.
func bubble[P any](target *Widget, payload P, pick func(*handlers) *handlerList[P], translate func(P, Point) P) *Event[P] {
	e := NewEvent(payload)
	for w := target; w != nil; w = w.parent {
		pick(&w.handlers).fire(e)
		if !e.Active() || w.parent == nil {
			break
		}
		if translate != nil {
			e.Payload = translate(e.Payload, w.parentOffset())
		}
	}
	return e
}
