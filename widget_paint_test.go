package termui

import (
	"math/rand"
	"testing"
)

func TestRepaint_Synchronous(t *testing.T) {
	_, backend, root := newTestRoot(t, 20, 10)
	content := &fillContent{r: 'a'}
	w := NewWidget(WithRect(NewRect(2, 1, 3, 2)), WithContent(content))
	root.Attach(w)
	if got := backend.Line(1); got != "  aaa" {
		t.Fatalf("Line(1) = %q, want %q", got, "  aaa")
	}
	backend.Reset()

	content.r = 'b'
	w.Repaint()

	renders := backend.Renders()
	if len(renders) != 1 || renders[0] != NewRect(2, 1, 3, 2) {
		t.Fatalf("Renders() = %+v, want one render of the widget", renders)
	}
	if got := backend.Line(2); got != "  bbb" {
		t.Errorf("Line(2) = %q, want %q", got, "  bbb")
	}
}

func TestRepaint_CoalescesCoveredWidget(t *testing.T) {
	r, backend, root := newTestRoot(t, 80, 24, WithFrameRate(1))
	a := NewWidget(WithName("a"), WithRect(NewRect(0, 0, 10, 5)))
	b := NewWidget(WithName("b"), WithRect(NewRect(5, 0, 10, 5)))
	root.AttachBack(a)
	root.AttachBack(b)
	r.Flush()
	backend.Reset()

	if !a.Overlaid() || b.Overlaid() {
		t.Fatalf("Overlaid() a=%v b=%v, want true, false", a.Overlaid(), b.Overlaid())
	}

	a.Repaint()
	b.Repaint()
	if n := backend.RenderCount(); n != 0 {
		t.Fatalf("RenderCount() = %d before flush, want 0", n)
	}
	r.Flush()

	renders := backend.Renders()
	if len(renders) != 1 || renders[0] != NewRect(0, 0, 80, 24) {
		t.Errorf("Renders() = %+v, want one render of the root", renders)
	}
}

func TestRepaint_CommonAncestor(t *testing.T) {
	r, backend, root := newTestRoot(t, 40, 20, WithFrameRate(1))
	panel := NewWidget(WithName("panel"), WithRect(NewRect(1, 1, 20, 10)))
	c1 := NewWidget(WithName("c1"), WithRect(NewRect(0, 0, 5, 5)))
	c2 := NewWidget(WithName("c2"), WithRect(NewRect(10, 0, 5, 5)))
	panel.AttachBack(c1)
	panel.AttachBack(c2)
	root.Attach(panel)
	r.Flush()
	backend.Reset()

	c1.Repaint()
	c2.Repaint()
	r.Flush()

	renders := backend.Renders()
	if len(renders) != 1 || renders[0] != NewRect(1, 1, 20, 10) {
		t.Errorf("Renders() = %+v, want one render of the panel", renders)
	}
}

func TestRepaint_RepeatedRequestsCoalesce(t *testing.T) {
	r, backend, root := newTestRoot(t, 20, 10, WithFrameRate(1))
	content := &fillContent{r: 'x'}
	w := NewWidget(WithRect(NewRect(0, 0, 4, 4)), WithContent(content))
	root.Attach(w)
	r.Flush()
	backend.Reset()
	content.paints = 0

	for range 5 {
		w.Repaint()
	}
	r.Flush()

	if content.paints != 1 {
		t.Errorf("paints = %d, want 1", content.paints)
	}
	if n := backend.RenderCount(); n != 1 {
		t.Errorf("RenderCount() = %d, want 1", n)
	}
}

func TestRepaint_TranslucentDefersToParent(t *testing.T) {
	r, backend, root := newTestRoot(t, 20, 10, WithFrameRate(1))
	w := NewWidget(WithRect(NewRect(2, 2, 4, 4)), WithBackground(RGBAColor(0, 0, 255, 100)))
	root.Attach(w)
	r.Flush()
	backend.Reset()

	w.Repaint()
	r.Flush()

	renders := backend.Renders()
	if len(renders) != 1 || renders[0] != root.VisibleArea().BufferRect() {
		t.Errorf("Renders() = %+v, want one render of the root", renders)
	}
}

func TestRepaint_HiddenWidget(t *testing.T) {
	_, backend, root := newTestRoot(t, 10, 2)
	content := &fillContent{r: 'h'}
	w := NewWidget(WithRect(NewRect(0, 0, 3, 1)), WithContent(content))
	root.Attach(w)
	if got := backend.Line(0); got != "hhh" {
		t.Fatalf("Line(0) = %q, want %q", got, "hhh")
	}

	w.SetVisible(false)
	if got := backend.Line(0); got != "" {
		t.Errorf("Line(0) after hide = %q, want empty", got)
	}
	backend.Reset()
	w.Repaint()
	if n := backend.RenderCount(); n != 0 {
		t.Errorf("RenderCount() = %d for a hidden widget, want 0", n)
	}

	w.SetVisible(true)
	if got := backend.Line(0); got != "hhh" {
		t.Errorf("Line(0) after show = %q, want %q", got, "hhh")
	}
}

func TestRepaint_DetachedWidget(t *testing.T) {
	_, backend, _ := newTestRoot(t, 10, 2)
	backend.Reset()
	w := NewWidget(WithRect(NewRect(0, 0, 3, 1)))
	w.Repaint()
	if n := backend.RenderCount(); n != 0 {
		t.Errorf("RenderCount() = %d for a detached widget, want 0", n)
	}
}

func TestRepaint_ResizeRendersWholeBuffer(t *testing.T) {
	r, backend, _ := newTestRoot(t, 10, 5)
	backend.Reset()

	r.Resize(12, 6)

	renders := backend.Renders()
	if len(renders) == 0 || renders[len(renders)-1] != NewRect(0, 0, 12, 6) {
		t.Errorf("Renders() = %+v, want a final render of the whole buffer", renders)
	}
}

// TestRepaint_IncrementalMatchesFull applies random changes to a tree and
// checks that the screen built from partial repaints matches a full one.
func TestRepaint_IncrementalMatchesFull(t *testing.T) {
	colors := []Color{Red, Green, Blue, Yellow, RGBColor(10, 20, 30), DefaultColor()}
	runes := []rune{'a', 'b', 'c', '#', '.'}

	for seed := range int64(20) {
		rng := rand.New(rand.NewSource(seed))
		_, backend, root := newTestRoot(t, 30, 12)

		var widgets []*Widget
		var contents []*fillContent
		for i := range 8 {
			parent := root
			if i > 0 && rng.Intn(2) == 0 {
				parent = widgets[rng.Intn(len(widgets))]
			}
			fc := &fillContent{r: runes[rng.Intn(len(runes))]}
			w := NewWidget(
				WithRect(NewRect(rng.Intn(20)-2, rng.Intn(8)-1, rng.Intn(10)+1, rng.Intn(5)+1)),
				WithContent(fc),
				WithBackground(colors[rng.Intn(len(colors))]),
			)
			parent.AttachBack(w)
			widgets = append(widgets, w)
			contents = append(contents, fc)
		}

		for range 40 {
			i := rng.Intn(len(widgets))
			w := widgets[i]
			switch rng.Intn(6) {
			case 0:
				w.Move(Pt(rng.Intn(20)-2, rng.Intn(8)-1))
			case 1:
				w.Resize(Sz(rng.Intn(10)+1, rng.Intn(5)+1))
			case 2:
				w.SetBackground(colors[rng.Intn(len(colors))])
			case 3:
				w.SetVisible(!w.Visible())
			case 4:
				contents[i].r = runes[rng.Intn(len(runes))]
				w.Repaint()
			case 5:
				if p := w.Parent(); p != nil {
					p.Attach(w)
				}
			}
		}

		incremental := screenCells(backend, 30, 12)
		root.pendingRepaint.Store(false)
		root.Repaint()
		full := screenCells(backend, 30, 12)
		for i := range full {
			if full[i] != incremental[i] {
				t.Fatalf("seed %d: cell (%d, %d) = %+v after partial repaints, want %+v",
					seed, i%30, i/30, incremental[i], full[i])
			}
		}
	}
}

func screenCells(m *MockBackend, width, height int) []Cell {
	cells := make([]Cell, 0, width*height)
	for y := range height {
		for x := range width {
			cells = append(cells, m.Cell(x, y))
		}
	}
	return cells
}
