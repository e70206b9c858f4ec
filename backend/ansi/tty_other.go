//go:build !unix

package ansi

import (
	"context"
	"time"

	"golang.org/x/term"

	termui "github.com/grindlemire/go-termui"
)

const canPoll = false

func windowSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

func waitReadable(int, time.Duration) (bool, error) {
	return true, nil
}

// watchResize has no signal to wait for; size changes are not followed.
func watchResize(ctx context.Context, _ int, _ chan termui.Size) error {
	<-ctx.Done()
	return nil
}
