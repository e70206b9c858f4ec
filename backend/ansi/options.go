package ansi

import (
	"errors"
	"io"
)

// Option is a functional option for configuring a Backend.
type Option func(*Backend) error

// WithInput sets where input is read from. Default is os.Stdin.
func WithInput(in io.Reader) Option {
	return func(b *Backend) error {
		if in == nil {
			return errors.New("input must not be nil")
		}
		b.in = in
		return nil
	}
}

// WithOutput sets where frames are written. Default is os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(b *Backend) error {
		if out == nil {
			return errors.New("output must not be nil")
		}
		b.out = out
		return nil
	}
}

// WithCapabilities overrides capability detection.
func WithCapabilities(caps Capabilities) Option {
	return func(b *Backend) error {
		b.caps = caps
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

// WithoutAltScreen draws on the main screen instead of the alternate one.
func WithoutAltScreen() Option {
	return func(b *Backend) error {
		b.altScreen = false
		return nil
	}
}
