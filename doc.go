// Package termui is a retained-mode terminal UI core.
//
// Widgets form a tree owned by a Renderer. Layouts position children, and
// size hints let widgets derive their size from their parent, their
// contents or neither; relayout iterates until autosizing settles. Each
// attached widget carries a VisibleArea mapping its coordinates onto the
// renderer's cell buffer, clipped by its ancestors. Repaint requests are
// coalesced up the tree and flushed to a Backend either immediately or at
// a fixed frame rate. Input from the backend is dispatched to the focused
// or hovered widget and bubbles up to the root until a handler stops it.
//
// Users import this single package for the public API; backends live in
// the backend subpackages.
package termui
