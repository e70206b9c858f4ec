package layout

// Layoutable is the accessor surface a layout algorithm sees of a node.
// Layouts never touch node internals; they read the contents size, hints
// and children and call Move/Resize on those children.
type Layoutable interface {
	// ContentsSize returns the space available to children.
	ContentsSize() Size

	// LayoutChildren returns the children in painting order.
	LayoutChildren() []Layoutable

	// Rect returns the node's position and size inside its parent.
	Rect() Rect

	// WidthHint and HeightHint return the sizing policy per axis.
	WidthHint() SizeHint
	HeightHint() SizeHint

	// Visible reports whether the node takes part in layout and painting.
	Visible() bool

	// Move sets the node's top-left corner. Moving to the current position is a no-op.
	Move(p Point)

	// Resize sets the node's size. Resizing to the current size is a no-op.
	Resize(s Size)

	// SetOverlaid records whether a sibling painted later covers this node.
	SetOverlaid(overlaid bool)
}
