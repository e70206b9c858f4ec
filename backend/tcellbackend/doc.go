// Package tcellbackend renders termui widgets through a tcell screen.
//
// tcell takes care of terminfo lookups, platform consoles and input
// decoding, which makes this backend the portable choice. Package ansi is
// the lighter alternative for terminals that speak plain xterm sequences.
//
//	b, err := tcellbackend.New()
//	if err != nil {
//		return err
//	}
//	if err := b.Start(); err != nil {
//		return err
//	}
//	defer b.Stop()
//
//	r, err := termui.NewRenderer(b, termui.WithBufferSize(b.Size().Width, b.Size().Height))
//	if err != nil {
//		return err
//	}
//	r.SetRoot(root)
//	return b.Run(ctx, r)
package tcellbackend
