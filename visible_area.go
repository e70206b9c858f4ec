package termui

// VisibleArea maps a widget's local coordinate space onto the renderer's
// buffer. offset is the widget's origin in buffer coordinates and rect is
// the part of the widget, in its own coordinates, that its ancestors leave
// visible. An area without a renderer is detached and draws nothing.
type VisibleArea struct {
	renderer *Renderer
	offset   Point
	rect     Rect
}

// NewVisibleArea creates an area bound to r.
func NewVisibleArea(r *Renderer, offset Point, rect Rect) VisibleArea {
	return VisibleArea{renderer: r, offset: offset, rect: rect}
}

// Attached reports whether the area is bound to a renderer.
func (a VisibleArea) Attached() bool {
	return a.renderer != nil
}

// Renderer returns the renderer the area draws into, or nil when detached.
func (a VisibleArea) Renderer() *Renderer {
	return a.renderer
}

// Offset returns the position of the local origin in buffer coordinates.
func (a VisibleArea) Offset() Point {
	return a.offset
}

// Rect returns the visible part of the widget in local coordinates.
func (a VisibleArea) Rect() Rect {
	return a.rect
}

// Clip derives the area of a sub-rectangle given in this area's local
// coordinates. The result's local origin is sub's top-left corner.
func (a VisibleArea) Clip(sub Rect) VisibleArea {
	origin := sub.TopLeft()
	visible := a.rect.Intersect(sub)
	if !visible.IsEmpty() {
		visible = visible.Offset(Point{}.Sub(origin))
	}
	return VisibleArea{
		renderer: a.renderer,
		offset:   a.offset.Add(origin),
		rect:     visible,
	}
}

// Detach drops the renderer, invalidating the area until it is recomputed.
func (a *VisibleArea) Detach() {
	a.renderer = nil
}

// BufferRect returns the visible rectangle in buffer coordinates.
func (a VisibleArea) BufferRect() Rect {
	if a.rect.IsEmpty() {
		return Rect{}
	}
	return a.rect.Offset(a.offset)
}

// ToBuffer converts a local point to buffer coordinates.
func (a VisibleArea) ToBuffer(p Point) Point {
	return p.Add(a.offset)
}

// ToLocal converts a buffer point to local coordinates.
func (a VisibleArea) ToLocal(p Point) Point {
	return p.Sub(a.offset)
}
