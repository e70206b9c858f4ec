package termui

// WidgetOption configures a Widget at construction.
type WidgetOption func(*Widget)

// WithName sets a name used in debug output.
func WithName(name string) WidgetOption {
	return func(w *Widget) {
		w.name = name
	}
}

// WithRect sets the initial position and size.
func WithRect(r Rect) WidgetOption {
	return func(w *Widget) {
		w.rect = r
	}
}

// WithPosition sets the initial position.
func WithPosition(x, y int) WidgetOption {
	return func(w *Widget) {
		w.rect = w.rect.WithTopLeft(Pt(x, y))
	}
}

// WithSize sets the initial size.
func WithSize(width, height int) WidgetOption {
	return func(w *Widget) {
		w.rect = w.rect.WithSize(Sz(width, height))
	}
}

// WithWidthHint sets how the width is derived.
func WithWidthHint(h SizeHint) WidgetOption {
	return func(w *Widget) {
		w.widthHint = h
	}
}

// WithHeightHint sets how the height is derived.
func WithHeightHint(h SizeHint) WidgetOption {
	return func(w *Widget) {
		w.heightHint = h
	}
}

// WithHints sets both size hints.
func WithHints(width, height SizeHint) WidgetOption {
	return func(w *Widget) {
		w.widthHint = width
		w.heightHint = height
	}
}

// WithLayout sets the layout used for the children.
func WithLayout(l Layout) WidgetOption {
	return func(w *Widget) {
		w.layout = l
	}
}

// WithPadding reserves space between the widget's edge and its children.
func WithPadding(e Edges) WidgetOption {
	return func(w *Widget) {
		w.padding = e
	}
}

// WithBackground sets the fill painted under the content. Use Transparent
// to paint nothing.
func WithBackground(c Color) WidgetOption {
	return func(w *Widget) {
		w.background = c
	}
}

// WithContent sets what the widget draws.
func WithContent(c Content) WidgetOption {
	return func(w *Widget) {
		w.content = c
	}
}

// WithFocusable lets a click give the widget keyboard focus.
func WithFocusable(focusable bool) WidgetOption {
	return func(w *Widget) {
		w.focusable = focusable
	}
}

// WithHidden creates the widget hidden.
func WithHidden() WidgetOption {
	return func(w *Widget) {
		w.visible = false
	}
}

// WithChildren attaches children in order, the last one on top.
func WithChildren(children ...*Widget) WidgetOption {
	return func(w *Widget) {
		for _, c := range children {
			w.AttachBack(c)
		}
	}
}
