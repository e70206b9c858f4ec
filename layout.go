// layout.go re-exports geometry and layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package termui

import "github.com/grindlemire/go-termui/internal/layout"

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// HAlign specifies horizontal alignment.
type HAlign = layout.HAlign

const (
	Left   = layout.Left
	Center = layout.Center
	Right  = layout.Right
)

// VAlign specifies vertical alignment.
type VAlign = layout.VAlign

const (
	Top    = layout.Top
	Middle = layout.Middle
	Bottom = layout.Bottom
)

// SizeHint describes how one dimension of a widget is derived.
type SizeHint = layout.SizeHint

// Layout positions and sizes the children of a widget.
type Layout = layout.Layout

// Layoutable is the accessor surface a Layout works through.
type Layoutable = layout.Layoutable

// Direction specifies the main axis of a stack layout.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return layout.Pt(x, y)
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return layout.Sz(w, h)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectAt creates a Rect from a top-left point and a size.
func RectAt(topLeft Point, size Size) Rect {
	return layout.RectAt(topLeft, size)
}

// RectFromCorners creates a Rect spanning two corner points in any order.
func RectFromCorners(a, b Point) Rect {
	return layout.RectFromCorners(a, b)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// Manual returns a hint that keeps the current size.
func Manual() SizeHint {
	return layout.Manual()
}

// Percentage returns a hint sizing a widget to pct percent of its parent.
func Percentage(pct int) SizeHint {
	return layout.Percentage(pct)
}

// AutoLayout returns a hint that lets the parent's layout size the widget.
func AutoLayout() SizeHint {
	return layout.AutoLayout()
}

// AutoSize returns a hint that sizes the widget from its contents.
func AutoSize() SizeHint {
	return layout.AutoSize()
}

// NoLayout returns the layout that applies size hints and leaves positions alone.
func NoLayout() Layout {
	return layout.None{}
}

// MaximizedLayout returns the layout that centers each child in the parent.
func MaximizedLayout() Layout {
	return layout.Maximized{}
}

// RowLayout returns a layout placing children left-to-right.
func RowLayout(gap int) Layout {
	return layout.RowLayout(gap)
}

// ColumnLayout returns a layout placing children top-to-bottom.
func ColumnLayout(gap int) Layout {
	return layout.ColumnLayout(gap)
}
