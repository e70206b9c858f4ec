package termui

import "testing"

// newTestRenderer creates a synchronous renderer over a MockBackend.
func newTestRenderer(t *testing.T, width, height int, opts ...RendererOption) (*Renderer, *MockBackend) {
	t.Helper()
	backend := NewMockBackend()
	r, err := NewRenderer(backend, append([]RendererOption{WithBufferSize(width, height)}, opts...)...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r, backend
}

// newTestRoot creates a renderer with an attached root widget.
func newTestRoot(t *testing.T, width, height int, opts ...RendererOption) (*Renderer, *MockBackend, *Widget) {
	t.Helper()
	r, backend := newTestRenderer(t, width, height, opts...)
	root := NewWidget(WithName("root"))
	r.SetRoot(root)
	return r, backend, root
}

// fillContent paints its widget with a single rune.
type fillContent struct {
	r      rune
	paints int
}

func (f *fillContent) Paint(_ *Widget, c *Canvas) {
	f.paints++
	b := c.Bounds()
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			c.SetCell(x, y, Cell{Rune: f.r, Width: 1})
		}
	}
}

// checkRelayoutSettled fails if any widget below w is mid-relayout.
func checkRelayoutSettled(t *testing.T, w *Widget) {
	t.Helper()
	w.walk(func(n *Widget) {
		if n.pendingRelayout {
			t.Errorf("%s: pendingRelayout = true after relayout", n)
		}
		if n.relayouting {
			t.Errorf("%s: relayouting = true after relayout", n)
		}
	})
}
