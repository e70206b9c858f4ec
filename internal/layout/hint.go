package layout

import "fmt"

// HintKind specifies who controls one dimension of a widget.
type HintKind uint8

const (
	// HintManual keeps whatever size the widget was given explicitly.
	HintManual HintKind = iota
	// HintPercentage sizes the widget as a share of its parent's contents.
	HintPercentage
	// HintAutoLayout lets the parent's layout assign the size.
	HintAutoLayout
	// HintAutoSize derives the size from the widget's own contents.
	HintAutoSize
)

// SizeHint describes how a single dimension of a widget is derived.
// The zero value is Manual.
type SizeHint struct {
	Kind    HintKind
	Percent int // 0..100, only meaningful for HintPercentage
}

// Manual returns a hint that keeps the current size.
func Manual() SizeHint {
	return SizeHint{Kind: HintManual}
}

// AutoLayout returns a hint that lets the parent's layout size the widget.
func AutoLayout() SizeHint {
	return SizeHint{Kind: HintAutoLayout}
}

// AutoSize returns a hint that sizes the widget from its contents.
func AutoSize() SizeHint {
	return SizeHint{Kind: HintAutoSize}
}

// Percentage returns a hint sizing the widget to pct percent of its parent.
// Values outside 0..100 are clamped.
func Percentage(pct int) SizeHint {
	return SizeHint{Kind: HintPercentage, Percent: min(max(pct, 0), 100)}
}

// IsManual reports whether the hint is Manual.
func (h SizeHint) IsManual() bool {
	return h.Kind == HintManual
}

// IsAutoLayout reports whether the hint is AutoLayout.
func (h SizeHint) IsAutoLayout() bool {
	return h.Kind == HintAutoLayout
}

// IsAutoSize reports whether the hint is AutoSize.
func (h SizeHint) IsAutoSize() bool {
	return h.Kind == HintAutoSize
}

// IsPercentage reports whether the hint is Percentage.
func (h SizeHint) IsPercentage() bool {
	return h.Kind == HintPercentage
}

// ParentControlled reports whether the parent's layout may change this
// dimension. Manual and AutoSize dimensions belong to the widget.
func (h SizeHint) ParentControlled() bool {
	return h.Kind == HintAutoLayout || h.Kind == HintPercentage
}

// Resolve computes the dimension for a parent-controlled hint given the
// parent's available contents dimension. natural is used for AutoLayout,
// current for Manual and AutoSize.
func (h SizeHint) Resolve(available, natural, current int) int {
	switch h.Kind {
	case HintPercentage:
		return available * h.Percent / 100
	case HintAutoLayout:
		return natural
	default:
		return current
	}
}

// String returns a readable form of the hint.
func (h SizeHint) String() string {
	switch h.Kind {
	case HintManual:
		return "Manual"
	case HintPercentage:
		return fmt.Sprintf("Percentage(%d)", h.Percent)
	case HintAutoLayout:
		return "AutoLayout"
	case HintAutoSize:
		return "AutoSize"
	default:
		return fmt.Sprintf("SizeHint(%d)", h.Kind)
	}
}
