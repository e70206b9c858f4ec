// Package ansi is a termui backend that drives any terminal understanding
// ANSI/VT escape sequences over a pair of byte streams.
//
// Render diffs the rendered region against what the terminal already
// shows and writes only changed cells, wrapped in a synchronized update.
// Run owns the UI goroutine: it drains the renderer's scheduled
// callbacks, decodes keyboard, SGR mouse and bracketed paste input into
// renderer calls, and follows window size changes.
//
//	b, err := ansi.New()
//	r, err := termui.NewRenderer(b, termui.WithBufferSize(b.Size().Width, b.Size().Height))
//	if err := b.Start(); err != nil { ... }
//	defer b.Stop()
//	err = b.Run(ctx, r)
//
// Terminals cannot draw per-cell borders, so border side flags without
// frame runes only show as an underline for bottom edges. Font sizes are
// ignored.
package ansi
