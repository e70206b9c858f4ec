package termui

import "testing"

func TestWidget_AutoSizeFromChildren(t *testing.T) {
	_, _, root := newTestRoot(t, 80, 24)

	a := NewWidget(WithName("a"), WithSize(10, 1))
	b := NewWidget(WithName("b"), WithSize(20, 1))
	row := NewWidget(
		WithName("row"),
		WithHints(AutoSize(), Manual()),
		WithSize(0, 5),
		WithLayout(RowLayout(0)),
		WithChildren(a, b),
	)
	root.Attach(row)

	if got, want := row.Size(), Sz(30, 5); got != want {
		t.Errorf("row Size() = %v, want %v", got, want)
	}
	if got, want := b.Position(), Pt(10, 0); got != want {
		t.Errorf("b Position() = %v, want %v", got, want)
	}
	checkRelayoutSettled(t, root)
}

func TestWidget_RelayoutPropagates(t *testing.T) {
	_, backend, root := newTestRoot(t, 40, 10)

	row := NewWidget(
		WithName("row"),
		WithHints(AutoSize(), AutoSize()),
		WithLayout(RowLayout(1)),
		WithChildren(
			NewWidget(WithSize(3, 1)),
			NewWidget(WithSize(4, 2)),
		),
	)
	label := NewLabel("hello", WithName("label"))
	outer := NewWidget(
		WithName("outer"),
		WithHints(AutoSize(), AutoSize()),
		WithLayout(ColumnLayout(0)),
		WithChildren(row, label.Widget),
	)
	root.Attach(outer)

	if got, want := row.Size(), Sz(8, 2); got != want {
		t.Fatalf("row Size() = %v, want %v", got, want)
	}
	if got, want := outer.Size(), Sz(8, 3); got != want {
		t.Fatalf("outer Size() = %v, want %v", got, want)
	}
	if got := backend.Line(2); got != "hello" {
		t.Fatalf("Line(2) = %q, want %q", got, "hello")
	}

	label.SetText("hello, world!")

	if got, want := label.Size(), Sz(13, 1); got != want {
		t.Errorf("label Size() = %v, want %v", got, want)
	}
	if got, want := outer.Size(), Sz(13, 3); got != want {
		t.Errorf("outer Size() = %v, want %v", got, want)
	}
	if got := backend.Line(2); got != "hello, world!" {
		t.Errorf("Line(2) = %q, want %q", got, "hello, world!")
	}
	checkRelayoutSettled(t, root)
}

func TestWidget_PercentageHints(t *testing.T) {
	r, _, root := newTestRoot(t, 80, 24)
	child := NewWidget(WithHints(Percentage(50), Percentage(25)))
	root.Attach(child)

	if got, want := child.Size(), Sz(40, 6); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}

	r.Resize(40, 20)
	if got, want := root.Size(), Sz(40, 20); got != want {
		t.Errorf("root Size() = %v, want %v", got, want)
	}
	if got, want := child.Size(), Sz(20, 5); got != want {
		t.Errorf("after resize Size() = %v, want %v", got, want)
	}
	checkRelayoutSettled(t, root)
}

func TestWidget_MaximizedLayout(t *testing.T) {
	_, _, root := newTestRoot(t, 20, 10)
	root.SetLayout(MaximizedLayout())
	root.SetPadding(EdgeAll(1))
	child := NewWidget(WithHints(AutoLayout(), Manual()), WithSize(0, 2))
	root.Attach(child)

	if got, want := child.Rect(), NewRect(0, 3, 18, 2); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
	if got, want := child.VisibleArea().BufferRect(), NewRect(1, 4, 18, 2); got != want {
		t.Errorf("BufferRect() = %+v, want %+v", got, want)
	}
}

func TestWidget_GeometryNoOps(t *testing.T) {
	_, backend, root := newTestRoot(t, 20, 10)
	w := NewWidget(WithRect(NewRect(1, 1, 4, 4)))
	root.Attach(w)
	backend.Reset()

	w.Move(Pt(1, 1))
	w.Resize(Sz(4, 4))
	w.SetRect(NewRect(1, 1, 4, 4))
	w.SetPadding(Edges{})
	w.SetWidthHint(Manual())
	w.SetVisible(true)

	if n := backend.RenderCount(); n != 0 {
		t.Errorf("RenderCount() = %d after no-op changes, want 0", n)
	}

	w.Resize(Sz(-3, 2))
	if got, want := w.Size(), Sz(0, 2); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestWidget_MoveRootPanics(t *testing.T) {
	_, _, root := newTestRoot(t, 10, 10)
	defer func() {
		if recover() == nil {
			t.Error("Move() on the root did not panic")
		}
	}()
	root.Move(Pt(1, 1))
}

func TestWidget_VisibleAreaClipping(t *testing.T) {
	type tc struct {
		parent   Rect
		padding  Edges
		scroll   Point
		child    Rect
		expected Rect
	}

	tests := map[string]tc{
		"inside": {
			parent:   NewRect(2, 2, 10, 5),
			child:    NewRect(1, 1, 3, 2),
			expected: NewRect(3, 3, 3, 2),
		},
		"clipped by parent": {
			parent:   NewRect(2, 2, 10, 5),
			child:    NewRect(8, 3, 6, 6),
			expected: NewRect(10, 5, 2, 2),
		},
		"clipped by padding": {
			parent:   NewRect(0, 0, 10, 5),
			padding:  EdgeAll(1),
			child:    NewRect(-1, -1, 4, 4),
			expected: NewRect(1, 1, 3, 3),
		},
		"scrolled": {
			parent:   NewRect(0, 0, 10, 5),
			scroll:   Pt(0, 2),
			child:    NewRect(0, 0, 4, 4),
			expected: NewRect(0, 0, 4, 2),
		},
		"scrolled out": {
			parent:   NewRect(0, 0, 10, 5),
			scroll:   Pt(20, 0),
			child:    NewRect(0, 0, 4, 4),
			expected: Rect{},
		},
		"beyond the buffer": {
			parent:   NewRect(15, 8, 10, 5),
			child:    NewRect(0, 0, 10, 5),
			expected: NewRect(15, 8, 5, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, root := newTestRoot(t, 20, 10)
			parent := NewWidget(WithRect(tt.parent), WithPadding(tt.padding))
			child := NewWidget(WithRect(tt.child))
			parent.Attach(child)
			root.Attach(parent)
			parent.SetScrollOffset(tt.scroll)

			if got := child.VisibleArea().BufferRect(); got != tt.expected {
				t.Errorf("BufferRect() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestWidget_HiddenSkippedByLayout(t *testing.T) {
	_, _, root := newTestRoot(t, 40, 10)
	a := NewWidget(WithSize(5, 1))
	b := NewWidget(WithSize(5, 1), WithHidden())
	c := NewWidget(WithSize(5, 1))
	box := NewWidget(
		WithHints(AutoSize(), AutoSize()),
		WithLayout(RowLayout(1)),
		WithChildren(a, b, c),
	)
	root.Attach(box)

	if got, want := box.Size(), Sz(11, 1); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}

	b.SetVisible(true)
	if got, want := box.Size(), Sz(17, 1); got != want {
		t.Errorf("after show Size() = %v, want %v", got, want)
	}
	if got, want := c.Position(), Pt(12, 0); got != want {
		t.Errorf("c Position() = %v, want %v", got, want)
	}
	checkRelayoutSettled(t, root)
}
