package termui

import (
	"errors"
	"fmt"
	"time"
)

var errNilBackend = errors.New("termui: nil backend")

// MaxFrameRate is the highest frame rate accepted by WithFrameRate.
const MaxFrameRate = 240

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer) error

// WithBufferSize sets the initial buffer size. Default is 80x24.
func WithBufferSize(width, height int) RendererOption {
	return func(r *Renderer) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("buffer size %dx%d must not be negative", width, height)
		}
		r.buf.Resize(width, height)
		return nil
	}
}

// WithFrameRate sets the paint cadence. 0, the default, paints and
// renders synchronously on every allowed repaint request. A positive
// rate paints at most that many times per second. Valid range is 0-240.
func WithFrameRate(fps int) RendererOption {
	return func(r *Renderer) error {
		if err := validateFrameRate(fps); err != nil {
			return err
		}
		r.fps = fps
		return nil
	}
}

// WithDoubleClickInterval sets how close two clicks must be to count as a
// double click. Default is 500ms.
func WithDoubleClickInterval(d time.Duration) RendererOption {
	return func(r *Renderer) error {
		if d <= 0 {
			return fmt.Errorf("double click interval must be positive, got %v", d)
		}
		r.doubleClick = d
		return nil
	}
}

// WithClock replaces time.Now for click timing.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) error {
		if now == nil {
			return errors.New("clock must not be nil")
		}
		r.clock = now
		return nil
	}
}

func validateFrameRate(fps int) error {
	if fps < 0 {
		return fmt.Errorf("frame rate must not be negative, got %d", fps)
	}
	if fps > MaxFrameRate {
		return fmt.Errorf("frame rate cannot exceed %d fps, got %d", MaxFrameRate, fps)
	}
	return nil
}
