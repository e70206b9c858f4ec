package layout

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns Width*Height, or 0 for an empty size.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.Width * s.Height
}

// Clamp returns the size with negative dimensions raised to zero.
func (s Size) Clamp() Size {
	return Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}
