//go:build unix

package ansi

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	termui "github.com/grindlemire/go-termui"
)

// canPoll reports whether waitReadable can time out on a descriptor.
const canPoll = true

func windowSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// waitReadable waits up to timeout for fd to have input.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	var fds unix.FdSet
	fds.Zero()
	fds.Set(fd)
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0 && fds.IsSet(fd), nil
}

// watchResize sends the window size of fd on out after every SIGWINCH
// until ctx is done. Only the latest size is kept when the receiver lags.
func watchResize(ctx context.Context, fd int, out chan termui.Size) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sig:
		}
		w, h, err := windowSize(fd)
		if err != nil {
			continue
		}
		size := termui.Sz(w, h)
		select {
		case out <- size:
		default:
			select {
			case <-out:
			default:
			}
			out <- size
		}
	}
}
