package layout

// HAlign is horizontal alignment inside a rectangle.
type HAlign uint8

const (
	Left HAlign = iota
	Center
	Right
)

// VAlign is vertical alignment inside a rectangle.
type VAlign uint8

const (
	Top VAlign = iota
	Middle
	Bottom
)
