package termui

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-termui/internal/debug"
)

// Backend is what a Renderer drives: a terminal, a test double or any
// other surface able to show a Buffer.
type Backend interface {
	// EventNotify is called after work is scheduled from any goroutine.
	// The backend wakes its event loop so the UI goroutine drains the
	// queue with ProcessEvents.
	EventNotify()

	// Render shows the part of buf inside rect, in buffer coordinates.
	// It is called with the buffer locked and must not modify it.
	Render(buf *Buffer, rect Rect)
}

// Renderer owns the root widget and the buffer it paints into. It tracks
// keyboard and mouse focus, turns backend input into bubbling events,
// coalesces repaint requests and runs callbacks scheduled from other
// goroutines on the UI goroutine.
type Renderer struct {
	backend Backend
	buf     *Buffer
	root    *Widget
	clock   func() time.Time

	// Paint tracking, UI goroutine only
	renderWidget *Widget
	painting     bool

	// Frame pacing
	fps          int
	framePending atomic.Bool // a paint is waiting for the next frame
	frameQueued  atomic.Bool // a frame callback is in the queue
	stopTicker   chan struct{}
	tickerDone   chan struct{}

	// Focus and input state, UI goroutine only
	keyboardFocus *Widget
	mouseFocus    *Widget
	pressed       MouseButtons
	mods          Modifiers
	mousePos      Point
	downTargets   map[MouseButton]*Widget
	lastClick     clickRecord
	doubleClick   time.Duration

	// Scheduled callbacks
	mu     sync.Mutex
	queue  []scheduled
	wake   chan struct{}
	closed chan struct{}
	once   sync.Once
}

// clickRecord remembers the last click for double-click detection.
type clickRecord struct {
	target *Widget
	button MouseButton
	at     time.Time
}

// NewRenderer creates a renderer drawing through backend.
func NewRenderer(backend Backend, opts ...RendererOption) (*Renderer, error) {
	if backend == nil {
		return nil, errNilBackend
	}
	r := &Renderer{
		backend:     backend,
		buf:         NewBuffer(80, 24),
		clock:       time.Now,
		doubleClick: 500 * time.Millisecond,
		downTargets: make(map[MouseButton]*Widget),
		wake:        make(chan struct{}, 1),
		closed:      make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.fps > 0 {
		r.startTicker()
	}
	debug.Log("NewRenderer: size=%v fps=%d", r.buf.Size(), r.fps)
	return r, nil
}

// Buffer returns the buffer widgets paint into. Hold its lock while
// reading it outside of Backend.Render.
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Root returns the root widget, or nil.
func (r *Renderer) Root() *Widget {
	return r.root
}

// Size returns the buffer size.
func (r *Renderer) Size() Size {
	return r.buf.Size()
}

// SetRoot makes w the root widget, sized to the buffer. The previous root
// is detached. It panics if w has a parent or is the root of another
// renderer.
func (r *Renderer) SetRoot(w *Widget) {
	if w == r.root {
		return
	}
	if w != nil {
		if w.parent != nil {
			panic("termui: root widget already has a parent")
		}
		if w.isRoot {
			panic("termui: widget is already a renderer root")
		}
	}

	if old := r.root; old != nil {
		old.invalidateAreas()
		r.widgetDetached(old, nil)
		old.isRoot = false
		old.pendingRepaint.Store(true)
	}
	r.root = w
	if w == nil {
		return
	}

	w.isRoot = true
	w.rect = RectAt(Point{}, w.rect.Size())
	w.setArea(r.rootArea(w))
	w.pendingRepaint.Store(false)
	w.pendingRelayout = true
	if w.rect.Size() != r.buf.Size() {
		w.Resize(r.buf.Size())
	} else {
		w.relayout()
	}
	debug.Log("SetRoot: %s size=%v", w, w.Size())
}

// rootArea is the visible area of the root widget: all of it that fits
// in the buffer.
func (r *Renderer) rootArea(w *Widget) VisibleArea {
	if r == nil {
		return VisibleArea{}
	}
	rect := RectAt(Point{}, w.rect.Size()).Intersect(r.buf.Rect())
	return NewVisibleArea(r, Point{}, rect)
}

// Resize changes the buffer size and resizes the root to match.
func (r *Renderer) Resize(width, height int) {
	size := Sz(max(width, 0), max(height, 0))
	if size == r.buf.Size() {
		return
	}
	r.buf.LockPriority()
	r.buf.Resize(size.Width, size.Height)
	r.buf.Unlock()
	debug.Log("Renderer.Resize: %v", size)

	if r.root == nil {
		return
	}
	// The new cells hold nothing yet, so the whole root must be drawn even
	// if a paint was already pending for part of it.
	r.root.pendingRepaint.Store(false)
	if r.root.Size() != size {
		r.root.Resize(size)
	} else {
		r.root.updateVisibleArea()
		r.root.Repaint()
	}
}

// Close stops frame pacing and makes Run return. It is safe to call more
// than once.
func (r *Renderer) Close() {
	r.once.Do(func() {
		r.stopFrameTicker()
		close(r.closed)
		debug.Log("Renderer.Close")
	})
}

// Done is closed once Close has been called.
func (r *Renderer) Done() <-chan struct{} {
	return r.closed
}

// widgetDetached is called before w's subtree leaves the tree. Queued
// callbacks owned by the subtree are dropped and focus inside it moves to
// parent, which may be nil when the root is replaced.
func (r *Renderer) widgetDetached(w, parent *Widget) {
	r.cancelWidgetEvents(w)

	if r.renderWidget != nil && w.IsAncestorOf(r.renderWidget) {
		r.renderWidget = parent
	}
	if r.keyboardFocus != nil && w.IsAncestorOf(r.keyboardFocus) {
		debug.Log("focus: keyboard focus %s detached, moving to %v", r.keyboardFocus, parent)
		r.SetKeyboardFocus(parent)
	}
	if r.mouseFocus != nil && w.IsAncestorOf(r.mouseFocus) {
		r.mouseFocus = parent
	}
	for b, t := range r.downTargets {
		if w.IsAncestorOf(t) {
			delete(r.downTargets, b)
		}
	}
	if r.lastClick.target != nil && w.IsAncestorOf(r.lastClick.target) {
		r.lastClick = clickRecord{}
	}
}
