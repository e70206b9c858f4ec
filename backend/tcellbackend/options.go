package tcellbackend

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Option is a functional option for configuring a Backend.
type Option func(*Backend) error

// WithScreen draws on s instead of a newly created terminal screen. Tests
// pass a tcell.SimulationScreen.
func WithScreen(s tcell.Screen) Option {
	return func(b *Backend) error {
		if s == nil {
			return errors.New("screen must not be nil")
		}
		b.screen = s
		return nil
	}
}

// WithoutMouse leaves mouse reporting off.
func WithoutMouse() Option {
	return func(b *Backend) error {
		b.mouse = false
		return nil
	}
}
