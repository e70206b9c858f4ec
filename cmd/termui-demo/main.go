// Command termui-demo shows a small widget tree on the terminal.
//
// Usage:
//
//	termui-demo [-config termui-demo.toml] [-backend ansi|tcell] [-fps n]
//
// The config file is optional:
//
//	backend = "tcell"
//	frame_rate = 30
//	mouse = true
//
//	[colors]
//	background = "#1e1e2e"
//	frame = "#89b4fa"
//	text = "#cdd6f4"
//	accent = "#f38ba8"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	termui "github.com/grindlemire/go-termui"
	"github.com/grindlemire/go-termui/backend/ansi"
	"github.com/grindlemire/go-termui/backend/tcellbackend"
)

// backend is what the demo needs from either backend package.
type backend interface {
	termui.Backend
	Start() error
	Stop() error
	Size() termui.Size
	Run(ctx context.Context, r *termui.Renderer) error
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("termui-demo", flag.ContinueOnError)
	configPath := fs.String("config", "termui-demo.toml", "path to the TOML config file")
	backendName := fs.String("backend", "", "backend to use, ansi or tcell (overrides the config)")
	fps := fs.Int("fps", -1, "frame rate, 0 paints synchronously (overrides the config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *backendName != "" {
		config.Backend = *backendName
	}
	if *fps >= 0 {
		config.FrameRate = *fps
	}
	if err := config.Validate(); err != nil {
		return err
	}
	theme, err := config.Colors.Theme()
	if err != nil {
		return err
	}

	b, err := newBackend(config)
	if err != nil {
		return err
	}
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	size := b.Size()
	r, err := termui.NewRenderer(b,
		termui.WithBufferSize(size.Width, size.Height),
		termui.WithFrameRate(config.FrameRate),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	d := newDemo(theme, r.Close)
	r.SetRoot(d.root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.Run(ctx, r) })
	g.Go(func() error { return runClock(ctx, r, d) })
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newBackend(config Config) (backend, error) {
	switch config.Backend {
	case "tcell":
		var opts []tcellbackend.Option
		if !config.Mouse {
			opts = append(opts, tcellbackend.WithoutMouse())
		}
		return tcellbackend.New(opts...)
	default:
		var opts []ansi.Option
		if !config.Mouse {
			opts = append(opts, ansi.WithoutMouse())
		}
		return ansi.New(opts...)
	}
}

// runClock schedules a clock update every second until the renderer
// closes.
func runClock(ctx context.Context, r *termui.Renderer, d *demo) error {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	now := time.Now()
	for {
		at := now
		r.Schedule(func() { d.tick(at) }, d.clock.Widget)
		select {
		case <-ctx.Done():
			return nil
		case <-r.Done():
			return nil
		case now = <-t.C:
		}
	}
}
