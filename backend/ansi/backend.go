package ansi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	termui "github.com/grindlemire/go-termui"
	"github.com/grindlemire/go-termui/internal/debug"
)

// pollInterval bounds how long the input reader waits before checking
// for cancellation.
const pollInterval = 50 * time.Millisecond

// Backend renders a termui buffer to an ANSI terminal.
type Backend struct {
	in    io.Reader
	out   io.Writer
	inFd  int
	outFd int
	caps  Capabilities

	mouse     bool
	altScreen bool

	mu        sync.Mutex // guards the fields below
	front     *termui.Buffer
	full      bool
	esc       *escBuilder
	lastStyle cellStyle
	styled    bool
	writeErr  error
	started   bool
	rawState  *term.State

	notify chan struct{}
}

var _ termui.Backend = (*Backend)(nil)

// New creates a backend on stdin and stdout with capabilities detected
// from the environment.
func New(opts ...Option) (*Backend, error) {
	b := &Backend{
		in:        os.Stdin,
		out:       os.Stdout,
		caps:      DetectCapabilities(os.Getenv),
		mouse:     true,
		altScreen: true,
		esc:       newEscBuilder(4096),
		notify:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.inFd, b.outFd = fileFd(b.in), fileFd(b.out)
	debug.Log("ansi.New: caps=%s inFd=%d outFd=%d", b.caps, b.inFd, b.outFd)
	return b, nil
}

func fileFd(v any) int {
	if f, ok := v.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

// Caps returns the capabilities used to encode colors.
func (b *Backend) Caps() Capabilities {
	return b.caps
}

// Size returns the terminal size, or 80x24 when it cannot be queried.
func (b *Backend) Size() termui.Size {
	if b.outFd >= 0 {
		if w, h, err := windowSize(b.outFd); err == nil && w > 0 && h > 0 {
			return termui.Sz(w, h)
		}
	}
	return termui.Sz(80, 24)
}

// Start puts the terminal in raw mode and prepares the screen. Call Stop
// to undo it.
func (b *Backend) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return errors.New("ansi backend already started")
	}
	if b.inFd >= 0 && term.IsTerminal(b.inFd) {
		state, err := term.MakeRaw(b.inFd)
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		b.rawState = state
	}

	b.esc.Reset()
	if b.altScreen && b.caps.AltScreen {
		b.esc.EnterAltScreen()
	}
	b.esc.HideCursor()
	if b.mouse {
		b.esc.EnableMouse()
	}
	b.esc.EnablePaste()
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.full, b.styled, b.started = true, false, true
	if _, err := b.out.Write(b.esc.Bytes()); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	debug.Log("ansi.Start: raw=%v", b.rawState != nil)
	return nil
}

// Stop restores the terminal to the state Start found it in.
func (b *Backend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return nil
	}
	b.started = false

	b.esc.Reset()
	b.esc.ResetStyle()
	b.esc.DisablePaste()
	if b.mouse {
		b.esc.DisableMouse()
	}
	b.esc.ShowCursor()
	if b.altScreen && b.caps.AltScreen {
		b.esc.ExitAltScreen()
	}
	_, werr := b.out.Write(b.esc.Bytes())

	var rerr error
	if b.rawState != nil {
		rerr = term.Restore(b.inFd, b.rawState)
		b.rawState = nil
	}
	debug.Log("ansi.Stop")
	if werr != nil {
		return fmt.Errorf("restore screen: %w", werr)
	}
	if rerr != nil {
		return fmt.Errorf("restore terminal mode: %w", rerr)
	}
	return nil
}

// EventNotify wakes Run so it drains the renderer's queue.
func (b *Backend) EventNotify() {
	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Render writes the cells of rect that differ from what the terminal
// shows. A size change redraws everything.
func (b *Backend) Render(buf *termui.Buffer, rect termui.Rect) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.front == nil || b.front.Size() != buf.Size() {
		b.front = termui.NewBuffer(buf.Width(), buf.Height())
		b.full = true
	}
	if b.full {
		rect = buf.Rect()
	}
	rect = rect.Intersect(buf.Rect())
	if rect.IsEmpty() {
		return
	}

	e := b.esc
	e.Reset()
	e.BeginSyncUpdate()
	if b.full {
		e.ResetStyle()
		e.ClearScreen()
		b.styled = false
	}
	start := e.Len()

	lastX, lastY := -1, -1
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c := buf.Cell(x, y)
			if !b.full && c == b.front.Cell(x, y) {
				continue
			}
			b.front.SetCell(x, y, c)
			if c.IsContinuation() {
				continue
			}
			if y != lastY || x != lastX+1 {
				e.MoveTo(x, y)
			}
			if s := styleOf(c); !b.styled || s != b.lastStyle {
				e.SetStyle(s, b.caps)
				b.lastStyle, b.styled = s, true
			}
			if c.Rune == 0 {
				e.WriteRune(' ')
			} else {
				e.WriteRune(c.Rune)
			}
			lastX, lastY = x+max(int(c.Width), 1)-1, y
		}
	}
	full := b.full
	b.full = false
	if e.Len() == start && !full {
		return
	}
	e.EndSyncUpdate()

	if _, err := b.out.Write(e.Bytes()); err != nil && b.writeErr == nil {
		b.writeErr = fmt.Errorf("write frame: %w", err)
		debug.Log("ansi.Render: %v", err)
	}
}

func (b *Backend) err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeErr
}

// Invalidate forces the next Render to redraw the whole screen.
func (b *Backend) Invalidate() {
	b.mu.Lock()
	b.full = true
	b.mu.Unlock()
}

// Run is the UI loop. It processes r's scheduled callbacks, feeds decoded
// input to r and resizes r with the terminal until ctx is done, r is
// closed or writing to the terminal fails.
func (b *Backend) Run(ctx context.Context, r *termui.Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	inputs := make(chan []event, 16)
	resizes := make(chan termui.Size, 1)

	if b.inFd >= 0 && canPoll {
		g.Go(func() error { return b.pollInput(ctx, inputs) })
	} else {
		// A plain reader cannot be interrupted; it ends with its stream.
		go func() { _ = b.readInput(ctx, inputs) }()
	}
	if b.outFd >= 0 {
		g.Go(func() error { return watchResize(ctx, b.outFd, resizes) })
	}

	g.Go(func() error {
		defer cancel()
		for {
			r.ProcessEvents()
			if err := b.err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.Done():
				return nil
			case <-b.notify:
			case evs := <-inputs:
				for _, ev := range evs {
					ev.dispatch(r)
				}
			case s := <-resizes:
				debug.Log("ansi.Run: resize %v", s)
				b.Invalidate()
				r.Resize(s.Width, s.Height)
			}
		}
	})
	return g.Wait()
}

// readInput reads from a stream that cannot be polled.
func (b *Backend) readInput(ctx context.Context, out chan<- []event) error {
	buf := make([]byte, 4096)
	var pending []byte
	for {
		n, err := b.in.Read(buf)
		if n > 0 {
			var evs []event
			evs, pending = parseInput(append(pending, buf[:n]...))
			if len(evs) > 0 {
				select {
				case out <- evs:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// pollInput reads from a file descriptor, waking up regularly to notice
// cancellation. A sequence still incomplete after a quiet poll interval
// is flushed as typed.
func (b *Backend) pollInput(ctx context.Context, out chan<- []event) error {
	buf := make([]byte, 4096)
	var pending []byte
	for {
		if ctx.Err() != nil {
			return nil
		}
		ready, err := waitReadable(b.inFd, pollInterval)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		var evs []event
		switch {
		case ready:
			n, err := b.in.Read(buf)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return fmt.Errorf("read input: %w", err)
			}
			evs, pending = parseInput(append(pending, buf[:n]...))
		case len(pending) > 0:
			evs, _ = parseInput(pending[:1])
			more, rest := parseInput(pending[1:])
			evs, pending = append(evs, more...), rest
		}
		if len(evs) == 0 {
			continue
		}
		select {
		case out <- evs:
		case <-ctx.Done():
			return nil
		}
	}
}
