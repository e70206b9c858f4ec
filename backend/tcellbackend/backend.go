package tcellbackend

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	termui "github.com/grindlemire/go-termui"
	"github.com/grindlemire/go-termui/internal/debug"
)

// Backend renders a termui buffer to a tcell screen.
type Backend struct {
	screen tcell.Screen
	mouse  bool
	styles *styleCache
	input  input
}

var _ termui.Backend = (*Backend)(nil)

// New creates a backend on the terminal, or on the screen given with
// WithScreen.
func New(opts ...Option) (*Backend, error) {
	b := &Backend{mouse: true, styles: newStyleCache()}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	if b.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		b.screen = s
	}
	return b, nil
}

// Screen returns the underlying tcell screen.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Start initializes the screen. Call Stop to restore the terminal.
func (b *Backend) Start() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if b.mouse {
		b.screen.EnableMouse()
	}
	b.screen.EnablePaste()
	b.screen.HideCursor()
	b.screen.Clear()
	w, h := b.screen.Size()
	debug.Log("tcellbackend.Start: size=%dx%d colors=%d", w, h, b.screen.Colors())
	return nil
}

// Stop restores the terminal.
func (b *Backend) Stop() error {
	b.screen.Fini()
	debug.Log("tcellbackend.Stop")
	return nil
}

// Size returns the screen size.
func (b *Backend) Size() termui.Size {
	w, h := b.screen.Size()
	return termui.Sz(w, h)
}

// EventNotify wakes Run so it drains the renderer's queue.
func (b *Backend) EventNotify() {
	// A full queue already holds events that will wake Run.
	_ = b.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Render copies the cells of rect to the screen and shows them.
func (b *Backend) Render(buf *termui.Buffer, rect termui.Rect) {
	w, h := b.screen.Size()
	rect = rect.Intersect(buf.Rect()).Intersect(termui.NewRect(0, 0, w, h))
	if rect.IsEmpty() {
		return
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c := buf.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			b.screen.SetContent(x, y, r, nil, b.styles.get(c))
		}
	}
	b.screen.Show()
}

// Run is the UI loop. It processes r's scheduled callbacks and feeds
// screen events to r until ctx is done or r is closed.
func (b *Backend) Run(ctx context.Context, r *termui.Renderer) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})

	g.Go(func() error {
		b.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		for {
			r.ProcessEvents()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				b.handle(r, ev)
			}
		}
	})
	return g.Wait()
}

func (b *Backend) handle(r *termui.Renderer, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b.input.handleKey(r, ev)
	case *tcell.EventMouse:
		b.input.handleMouse(r, ev)
	case *tcell.EventPaste:
		b.input.handlePaste(r, ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		debug.Log("tcellbackend: resize %dx%d", w, h)
		b.screen.Sync()
		r.Resize(w, h)
	case *tcell.EventInterrupt:
	}
}
