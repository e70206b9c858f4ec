package layout

import "testing"

func TestRect_Corners(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if got := r.TopLeft(); got != Pt(2, 3) {
		t.Errorf("TopLeft() = %+v, want {2 3}", got)
	}
	if got := r.TopRight(); got != Pt(12, 3) {
		t.Errorf("TopRight() = %+v, want {12 3}", got)
	}
	if got := r.BottomLeft(); got != Pt(2, 7) {
		t.Errorf("BottomLeft() = %+v, want {2 7}", got)
	}
	if got := r.BottomRight(); got != Pt(12, 7) {
		t.Errorf("BottomRight() = %+v, want {12 7}", got)
	}
	if got := r.Size(); got != Sz(10, 4) {
		t.Errorf("Size() = %+v, want {10 4}", got)
	}
}

func TestRectFromCorners(t *testing.T) {
	type tc struct {
		a, b     Point
		expected Rect
	}

	tests := map[string]tc{
		"ordered corners": {
			a:        Pt(1, 1),
			b:        Pt(5, 4),
			expected: NewRect(1, 1, 4, 3),
		},
		"reversed corners": {
			a:        Pt(5, 4),
			b:        Pt(1, 1),
			expected: NewRect(1, 1, 4, 3),
		},
		"mixed corners": {
			a:        Pt(5, 1),
			b:        Pt(1, 4),
			expected: NewRect(1, 1, 4, 3),
		},
		"same point": {
			a:        Pt(3, 3),
			b:        Pt(3, 3),
			expected: NewRect(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := RectFromCorners(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("RectFromCorners(%+v, %+v) = %+v, want %+v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsIsHalfOpen(t *testing.T) {
	type tc struct {
		p        Point
		expected bool
	}

	r := NewRect(0, 0, 3, 2)
	tests := map[string]tc{
		"top left":            {p: Pt(0, 0), expected: true},
		"last cell":           {p: Pt(2, 1), expected: true},
		"right edge":          {p: Pt(3, 0), expected: false},
		"bottom edge":         {p: Pt(0, 2), expected: false},
		"bottom right corner": {p: Pt(3, 2), expected: false},
		"negative":            {p: Pt(-1, 0), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.p); got != tt.expected {
				t.Errorf("ContainsPoint(%+v) = %v, want %v", tt.p, got, tt.expected)
			}
			if got := r.Contains(tt.p.X, tt.p.Y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.p.X, tt.p.Y, got, tt.expected)
			}
		})
	}
}

func TestRect_IntersectUnion(t *testing.T) {
	type tc struct {
		a, b      Rect
		intersect Rect
		union     Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:         NewRect(0, 0, 20, 20),
			b:         NewRect(10, 10, 20, 20),
			intersect: NewRect(10, 10, 10, 10),
			union:     NewRect(0, 0, 30, 30),
		},
		"disjoint": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(50, 50, 10, 10),
			intersect: Rect{},
			union:     NewRect(0, 0, 60, 60),
		},
		"touching edges": {
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(10, 0, 10, 10),
			intersect: Rect{},
			union:     NewRect(0, 0, 20, 10),
		},
		"empty operand": {
			a:         NewRect(4, 4, 2, 2),
			b:         Rect{},
			intersect: Rect{},
			union:     NewRect(4, 4, 2, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.intersect {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.intersect)
			}
			if got := tt.a.Union(tt.b); got != tt.union {
				t.Errorf("Union() = %+v, want %+v", got, tt.union)
			}
		})
	}
}

func TestRect_Align(t *testing.T) {
	type tc struct {
		h        HAlign
		v        VAlign
		expected Point
	}

	outer := NewRect(10, 20, 11, 5)
	child := NewRect(0, 0, 4, 2)
	tests := map[string]tc{
		"left top":      {h: Left, v: Top, expected: Pt(10, 20)},
		"center middle": {h: Center, v: Middle, expected: Pt(13, 21)},
		"right bottom":  {h: Right, v: Bottom, expected: Pt(17, 23)},
		"center bottom": {h: Center, v: Bottom, expected: Pt(13, 23)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outer.Align(child, tt.h, tt.v); got != tt.expected {
				t.Errorf("Align() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(0, 0, 10, 6)
	if got := r.Inset(EdgeAll(1)); got != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, want {1 1 8 4}", got)
	}
	if got := r.Inset(EdgeAll(6)); !got.IsEmpty() {
		t.Errorf("Inset(6) = %+v, want empty", got)
	}
}

func TestPoint_Comparisons(t *testing.T) {
	if !Pt(3, 3).GreaterEq(Pt(3, 2)) {
		t.Error("{3 3} should be >= {3 2}")
	}
	if Pt(3, 1).GreaterEq(Pt(3, 2)) {
		t.Error("{3 1} should not be >= {3 2}")
	}
	if !Pt(1, 1).Less(Pt(2, 2)) {
		t.Error("{1 1} should be < {2 2}")
	}
	if Pt(1, 2).Less(Pt(2, 2)) {
		t.Error("{1 2} should not be < {2 2}")
	}
	if got := Pt(1, 2).Add(Pt(3, 4)).Sub(Pt(1, 1)); got != Pt(3, 5) {
		t.Errorf("Add/Sub = %+v, want {3 5}", got)
	}
}

func TestSize_Empty(t *testing.T) {
	type tc struct {
		size     Size
		expected bool
	}

	tests := map[string]tc{
		"both set":    {size: Sz(2, 3), expected: false},
		"zero width":  {size: Sz(0, 3), expected: true},
		"zero height": {size: Sz(2, 0), expected: true},
		"zero":        {size: Size{}, expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.Empty(); got != tt.expected {
				t.Errorf("Empty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func FuzzRect_IntersectUnion(f *testing.F) {
	f.Add(int16(0), int16(0), int16(10), int16(10), int16(5), int16(5), int16(10), int16(10))
	f.Add(int16(0), int16(0), int16(10), int16(10), int16(10), int16(0), int16(10), int16(10))
	f.Add(int16(-4), int16(2), int16(0), int16(3), int16(-4), int16(2), int16(1), int16(1))

	f.Fuzz(func(t *testing.T, ax, ay, aw, ah, bx, by, bw, bh int16) {
		a := NewRect(int(ax), int(ay), abs(int(aw)), abs(int(ah)))
		b := NewRect(int(bx), int(by), abs(int(bw)), abs(int(bh)))

		overlap := !a.IsEmpty() && !b.IsEmpty() &&
			a.X < b.Right() && b.X < a.Right() &&
			a.Y < b.Bottom() && b.Y < a.Bottom()

		inter := a.Intersect(b)
		if inter.IsEmpty() == overlap {
			t.Fatalf("%+v & %+v = %+v, overlap=%v", a, b, inter, overlap)
		}
		if !a.ContainsRect(inter) || !b.ContainsRect(inter) {
			t.Fatalf("%+v & %+v = %+v is not inside both", a, b, inter)
		}

		u := a.Union(b)
		if !u.ContainsRect(a) || !u.ContainsRect(b) {
			t.Fatalf("%+v | %+v = %+v does not contain both", a, b, u)
		}

		c := RectFromCorners(a.TopLeft(), b.BottomRight())
		if c.Width < 0 || c.Height < 0 {
			t.Fatalf("RectFromCorners produced negative size %+v", c)
		}
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
