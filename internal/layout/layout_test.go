package layout

import "testing"

// fakeNode is a minimal Layoutable used to drive the layout algorithms.
type fakeNode struct {
	rect     Rect
	contents Size
	wHint    SizeHint
	hHint    SizeHint
	hidden   bool
	overlaid bool
	children []*fakeNode
}

func (n *fakeNode) ContentsSize() Size {
	if n.contents != (Size{}) {
		return n.contents
	}
	return n.rect.Size()
}

func (n *fakeNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *fakeNode) Rect() Rect                { return n.rect }
func (n *fakeNode) WidthHint() SizeHint       { return n.wHint }
func (n *fakeNode) HeightHint() SizeHint      { return n.hHint }
func (n *fakeNode) Visible() bool             { return !n.hidden }
func (n *fakeNode) Move(p Point)              { n.rect = n.rect.WithTopLeft(p) }
func (n *fakeNode) Resize(s Size)             { n.rect = n.rect.WithSize(s) }
func (n *fakeNode) SetOverlaid(overlaid bool) { n.overlaid = overlaid }

func TestSizeHint_Resolve(t *testing.T) {
	type tc struct {
		hint     SizeHint
		expected int
	}

	tests := map[string]tc{
		"manual keeps current":     {hint: Manual(), expected: 7},
		"autosize keeps current":   {hint: AutoSize(), expected: 7},
		"autolayout takes natural": {hint: AutoLayout(), expected: 40},
		"percentage of available":  {hint: Percentage(25), expected: 20},
		"percentage floors":        {hint: Percentage(33), expected: 26},
		"percentage clamps high":   {hint: Percentage(150), expected: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.hint.Resolve(80, 40, 7); got != tt.expected {
				t.Errorf("%s.Resolve(80, 40, 7) = %d, want %d", tt.hint, got, tt.expected)
			}
		})
	}
}

func TestNone_AppliesHintsOnly(t *testing.T) {
	manual := &fakeNode{rect: NewRect(3, 4, 5, 6)}
	fill := &fakeNode{rect: NewRect(1, 1, 1, 1), wHint: AutoLayout(), hHint: Percentage(50)}
	hidden := &fakeNode{rect: NewRect(0, 0, 2, 2), wHint: AutoLayout(), hidden: true}
	parent := &fakeNode{rect: NewRect(0, 0, 80, 24), children: []*fakeNode{manual, fill, hidden}}

	None{}.Layout(parent)

	if manual.rect != NewRect(3, 4, 5, 6) {
		t.Errorf("manual child = %+v, want unchanged", manual.rect)
	}
	if fill.rect != NewRect(1, 1, 80, 12) {
		t.Errorf("fill child = %+v, want {1 1 80 12}", fill.rect)
	}
	if hidden.rect != NewRect(0, 0, 2, 2) {
		t.Errorf("hidden child = %+v, want unchanged", hidden.rect)
	}
}

func TestMaximized_CentersChildren(t *testing.T) {
	type tc struct {
		child    *fakeNode
		expected Rect
	}

	tests := map[string]tc{
		"manual child centered": {
			child:    &fakeNode{rect: NewRect(0, 0, 10, 4)},
			expected: NewRect(35, 10, 10, 4),
		},
		"autolayout child fills": {
			child:    &fakeNode{wHint: AutoLayout(), hHint: AutoLayout()},
			expected: NewRect(0, 0, 80, 24),
		},
		"percentage child centered": {
			child:    &fakeNode{rect: NewRect(0, 0, 0, 2), wHint: Percentage(50)},
			expected: NewRect(20, 11, 40, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := &fakeNode{rect: NewRect(0, 0, 80, 24), children: []*fakeNode{tt.child}}
			Maximized{}.Layout(parent)
			if tt.child.rect != tt.expected {
				t.Errorf("child = %+v, want %+v", tt.child.rect, tt.expected)
			}
		})
	}
}

func TestStack_Row(t *testing.T) {
	a := &fakeNode{rect: NewRect(9, 9, 10, 1)}
	b := &fakeNode{wHint: AutoLayout(), hHint: AutoLayout()}
	c := &fakeNode{wHint: AutoLayout(), rect: NewRect(0, 0, 0, 2)}
	parent := &fakeNode{rect: NewRect(0, 0, 31, 5), children: []*fakeNode{a, b, c}}

	RowLayout(1).Layout(parent)

	if a.rect != NewRect(0, 0, 10, 1) {
		t.Errorf("a = %+v, want {0 0 10 1}", a.rect)
	}
	// 31 - 10 - 2 gaps = 19 shared by two auto children: 10 and 9
	if b.rect != NewRect(11, 0, 10, 5) {
		t.Errorf("b = %+v, want {11 0 10 5}", b.rect)
	}
	if c.rect != NewRect(22, 0, 9, 2) {
		t.Errorf("c = %+v, want {22 0 9 2}", c.rect)
	}
}

func TestStack_ColumnSkipsHidden(t *testing.T) {
	a := &fakeNode{rect: NewRect(0, 0, 4, 3)}
	hidden := &fakeNode{rect: NewRect(7, 7, 4, 3), hidden: true}
	b := &fakeNode{rect: NewRect(0, 0, 4, 2)}
	parent := &fakeNode{rect: NewRect(0, 0, 10, 10), children: []*fakeNode{a, hidden, b}}

	ColumnLayout(0).Layout(parent)

	if b.rect != NewRect(0, 3, 4, 2) {
		t.Errorf("b = %+v, want {0 3 4 2}", b.rect)
	}
	if hidden.rect != NewRect(7, 7, 4, 3) {
		t.Errorf("hidden = %+v, want unchanged", hidden.rect)
	}
}

func TestBase_CalculateOverlay(t *testing.T) {
	type tc struct {
		children []*fakeNode
		expected []bool
	}

	tests := map[string]tc{
		"covered by later sibling": {
			children: []*fakeNode{
				{rect: NewRect(0, 0, 5, 5)},
				{rect: NewRect(0, 0, 10, 10)},
			},
			expected: []bool{true, false},
		},
		"side by side": {
			children: []*fakeNode{
				{rect: NewRect(0, 0, 5, 5)},
				{rect: NewRect(5, 0, 5, 5)},
			},
			expected: []bool{false, false},
		},
		"hidden sibling does not cover": {
			children: []*fakeNode{
				{rect: NewRect(0, 0, 5, 5)},
				{rect: NewRect(0, 0, 5, 5), hidden: true},
			},
			expected: []bool{false, false},
		},
		"covered by union of later siblings": {
			children: []*fakeNode{
				{rect: NewRect(4, 0, 2, 2)},
				{rect: NewRect(0, 0, 3, 3)},
				{rect: NewRect(7, 0, 3, 3)},
			},
			expected: []bool{true, false, false},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := &fakeNode{rect: NewRect(0, 0, 20, 20), children: tt.children}
			Base{}.CalculateOverlay(parent)
			for i, c := range tt.children {
				if c.overlaid != tt.expected[i] {
					t.Errorf("child %d overlaid = %v, want %v", i, c.overlaid, tt.expected[i])
				}
			}
		})
	}
}
