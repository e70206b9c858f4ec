package termui

import "strings"

// Label is a widget showing one or more lines of text. By default it
// autosizes to its text in both dimensions.
type Label struct {
	*Widget

	text   string
	lines  []string
	style  Style
	halign HAlign
	valign VAlign
}

var (
	_ Content   = (*Label)(nil)
	_ AutoSizer = (*Label)(nil)
)

// NewLabel creates a label. opts apply to the underlying widget after the
// label defaults, so hints given there win.
func NewLabel(text string, opts ...WidgetOption) *Label {
	l := &Label{}
	l.setText(text)
	base := []WidgetOption{WithHints(AutoSize(), AutoSize()), WithContent(l)}
	l.Widget = NewWidget(append(base, opts...)...)
	l.Relayout()
	return l
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and re-evaluates the label's size.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.setText(text)
	l.Relayout()
	l.Repaint()
}

func (l *Label) setText(text string) {
	l.text = text
	l.lines = strings.Split(text, "\n")
}

// SetStyle changes how the text is drawn.
func (l *Label) SetStyle(s Style) {
	l.style = s
	l.Repaint()
}

// SetAlignment changes where the text block sits inside the label.
func (l *Label) SetAlignment(h HAlign, v VAlign) {
	l.halign, l.valign = h, v
	l.Repaint()
}

// AutosizeHint returns the size of the text block.
func (l *Label) AutosizeHint(*Widget) Size {
	width := 0
	for _, line := range l.lines {
		width = max(width, StringWidth(line))
	}
	return Sz(width, len(l.lines))
}

// Paint draws the text block aligned inside the label. Each line is
// aligned on its own horizontally.
func (l *Label) Paint(_ *Widget, c *Canvas) {
	bounds := c.Bounds()
	block := l.AutosizeHint(nil)
	top := bounds.Align(RectAt(Point{}, block), l.halign, l.valign).Y
	for i, line := range l.lines {
		lineRect := RectAt(Point{}, Sz(StringWidth(line), 1))
		x := bounds.Align(lineRect, l.halign, Top).X
		c.Text(x, top+i, line, l.style)
	}
}
