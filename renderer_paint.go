package termui

import (
	"time"

	"github.com/grindlemire/go-termui/internal/debug"
)

// paint records that w needs painting. The renderer keeps a single widget
// to paint, the lowest common ancestor of every request since the last
// flush. Without frame pacing the flush happens right away.
func (r *Renderer) paint(w *Widget) {
	switch {
	case r.renderWidget == nil:
		r.renderWidget = w
	default:
		if lca := commonAncestor(r.renderWidget, w); lca != nil {
			r.renderWidget = lca
		} else {
			r.renderWidget = r.root
		}
	}
	if r.fps == 0 {
		r.paintAndRender()
		return
	}
	r.framePending.Store(true)
}

// Flush paints and renders any pending repaint now. Call it on the UI
// goroutine.
func (r *Renderer) Flush() {
	r.paintAndRender()
}

// paintAndRender paints the tracked widget under the buffer's priority
// lock and hands its buffer rectangle to the backend. Requests made while
// painting are picked up by the next round.
func (r *Renderer) paintAndRender() {
	if r.painting {
		return
	}
	for r.renderWidget != nil {
		w := r.renderWidget
		r.renderWidget = nil
		r.framePending.Store(false)
		if w.Renderer() != r {
			continue
		}
		r.renderTree(w)
	}
}

func (r *Renderer) renderTree(w *Widget) {
	r.painting = true
	r.buf.LockPriority()
	defer func() {
		r.buf.Unlock()
		r.painting = false
	}()

	w.paint(r.buf)
	rect := w.VisibleArea().BufferRect()
	if rect.IsEmpty() {
		return
	}
	debug.Log("render: %s rect=%+v", w, rect)
	r.backend.Render(r.buf, rect)
}

// FrameRate returns the paint cadence, 0 when painting synchronously.
func (r *Renderer) FrameRate() int {
	return r.fps
}

// SetFrameRate changes the paint cadence. See WithFrameRate. Call it on
// the UI goroutine.
func (r *Renderer) SetFrameRate(fps int) error {
	if err := validateFrameRate(fps); err != nil {
		return err
	}
	if fps == r.fps {
		return nil
	}
	r.stopFrameTicker()
	r.fps = fps
	if fps > 0 {
		r.startTicker()
	} else {
		r.paintAndRender()
	}
	return nil
}

// startTicker starts the pacing goroutine. Each tick with a paint pending
// queues one frame on the UI goroutine; the goroutine never touches the
// tree or the buffer itself.
func (r *Renderer) startTicker() {
	stop := make(chan struct{})
	done := make(chan struct{})
	r.stopTicker, r.tickerDone = stop, done
	interval := time.Second / time.Duration(r.fps)

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if r.framePending.Load() && r.frameQueued.CompareAndSwap(false, true) {
					r.Schedule(r.frame, nil)
				}
			}
		}
	}()
}

func (r *Renderer) frame() {
	r.frameQueued.Store(false)
	r.paintAndRender()
}

func (r *Renderer) stopFrameTicker() {
	if r.stopTicker == nil {
		return
	}
	close(r.stopTicker)
	<-r.tickerDone
	r.stopTicker, r.tickerDone = nil, nil
}
