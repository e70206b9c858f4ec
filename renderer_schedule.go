package termui

import (
	"context"

	"github.com/grindlemire/go-termui/internal/debug"
)

// scheduled is a queued callback and the widget it belongs to, if any.
type scheduled struct {
	fn    func()
	owner *Widget
}

// Schedule queues fn to run on the UI goroutine and wakes the backend.
// It is safe to call from any goroutine. When owner is detached before fn
// runs, fn is dropped.
func (r *Renderer) Schedule(fn func(), owner *Widget) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.queue = append(r.queue, scheduled{fn: fn, owner: owner})
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
	r.backend.EventNotify()
}

// ProcessEvents runs queued callbacks in order until the queue is empty,
// including callbacks queued while it runs. Call it on the UI goroutine.
func (r *Renderer) ProcessEvents() {
	for {
		r.mu.Lock()
		if len(r.queue) == 0 {
			r.mu.Unlock()
			return
		}
		next := r.queue[0]
		r.queue[0] = scheduled{}
		r.queue = r.queue[1:]
		r.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of queued callbacks.
func (r *Renderer) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// YieldToUIThread blocks until the UI goroutine has run everything queued
// before the call, or ctx is done. It must not be called on the UI
// goroutine, which would wait for itself.
func (r *Renderer) YieldToUIThread(ctx context.Context) error {
	done := make(chan struct{})
	r.Schedule(func() { close(done) }, nil)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.closed:
		return context.Canceled
	}
}

// cancelWidgetEvents drops queued callbacks owned by w or its descendants.
func (r *Renderer) cancelWidgetEvents(w *Widget) {
	owners := make(map[*Widget]struct{})
	w.walk(func(n *Widget) { owners[n] = struct{}{} })

	r.mu.Lock()
	kept := r.queue[:0]
	dropped := 0
	for _, s := range r.queue {
		if _, ok := owners[s.owner]; ok && s.owner != nil {
			dropped++
			continue
		}
		kept = append(kept, s)
	}
	clear(r.queue[len(kept):])
	r.queue = kept
	r.mu.Unlock()

	if dropped > 0 {
		debug.Log("schedule: dropped %d callbacks owned by %s", dropped, w)
	}
}

// Run is the UI loop for backends without one of their own: it drains
// the queue whenever work is scheduled until ctx is done or the renderer
// is closed.
func (r *Renderer) Run(ctx context.Context) error {
	for {
		r.ProcessEvents()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.closed:
			return nil
		case <-r.wake:
		}
	}
}
