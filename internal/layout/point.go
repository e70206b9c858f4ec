package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Translate returns the point moved by (dx, dy).
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// GreaterEq reports whether p is at or beyond other on both axes.
func (p Point) GreaterEq(other Point) bool {
	return p.X >= other.X && p.Y >= other.Y
}

// Less reports whether p is strictly before other on both axes.
func (p Point) Less(other Point) bool {
	return p.X < other.X && p.Y < other.Y
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.ContainsPoint(p)
}
