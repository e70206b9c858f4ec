package termui

// Panel is a container with an optional frame and title. When framed, its
// children are laid out inside the frame.
type Panel struct {
	*Widget

	box        BoxStyle
	sides      BorderSides
	frameColor Color
	title      string
	titleStyle Style
}

var _ Content = (*Panel)(nil)

// NewPanel creates an unframed panel.
func NewPanel(opts ...WidgetOption) *Panel {
	p := &Panel{}
	p.Widget = NewWidget(append([]WidgetOption{WithContent(p)}, opts...)...)
	return p
}

// SetFrame draws a frame of the given style and color on all four sides
// and pads the children inside it. BorderNone removes the frame.
func (p *Panel) SetFrame(box BoxStyle, sides BorderSides, color Color) {
	p.box, p.sides, p.frameColor = box, sides, color
	var pad Edges
	if sides&BorderLeft != 0 {
		pad.Left = 1
	}
	if sides&BorderRight != 0 {
		pad.Right = 1
	}
	if sides&BorderTop != 0 {
		pad.Top = 1
	}
	if sides&BorderBottom != 0 {
		pad.Bottom = 1
	}
	p.SetPadding(pad)
	p.Repaint()
}

// SetTitle sets text drawn over the top edge of the frame.
func (p *Panel) SetTitle(title string, style Style) {
	p.title, p.titleStyle = title, style
	p.Repaint()
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}

// Paint draws the frame and title.
func (p *Panel) Paint(_ *Widget, c *Canvas) {
	if p.sides == BorderNone {
		return
	}
	bounds := c.Bounds()
	c.Border(bounds, p.sides, p.frameColor, p.box)
	if p.title != "" && bounds.Width > 4 {
		c.Text(2, 0, p.title, p.titleStyle)
	}
}
