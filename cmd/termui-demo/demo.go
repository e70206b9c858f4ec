package main

import (
	"fmt"
	"strings"
	"time"

	termui "github.com/grindlemire/go-termui"
)

// maxLog is how many key presses the log label keeps.
const maxLog = 8

// demo is the widget tree shown by the command.
type demo struct {
	theme Theme
	quit  func()

	root   *termui.Widget
	button *termui.Panel
	log    *termui.Label
	status *termui.Label
	clock  *termui.Label

	clicks int
	keys   []string
}

// newDemo builds the tree. quit is called when the user asks to exit.
func newDemo(theme Theme, quit func()) *demo {
	d := &demo{theme: theme, quit: quit}
	text := termui.NewStyle().Foreground(theme.Text)

	header := termui.NewLabel("termui demo  ·  q quits  ·  tab moves focus",
		termui.WithWidthHint(termui.AutoLayout()))
	header.SetStyle(termui.NewStyle().Foreground(theme.Accent).Bold())

	caption := termui.NewLabel("click me", termui.WithHints(termui.AutoLayout(), termui.AutoLayout()))
	caption.SetStyle(text)
	caption.SetAlignment(termui.Center, termui.Middle)
	d.button = termui.NewPanel(
		termui.WithName("button"),
		termui.WithSize(14, 3),
		termui.WithFocusable(true),
		termui.WithLayout(termui.MaximizedLayout()),
		termui.WithChildren(caption.Widget),
	)
	d.button.SetFrame(termui.BoxSingle, termui.BorderAll, theme.Frame)

	d.log = termui.NewLabel("", termui.WithHints(termui.AutoLayout(), termui.AutoLayout()))
	d.log.SetStyle(text)

	body := termui.NewPanel(
		termui.WithName("body"),
		termui.WithHints(termui.AutoLayout(), termui.AutoLayout()),
		termui.WithLayout(termui.RowLayout(2)),
		termui.WithChildren(d.button.Widget, d.log.Widget),
	)
	body.SetFrame(termui.BoxRounded, termui.BorderAll, theme.Frame)
	body.SetTitle(" widgets ", termui.NewStyle().Foreground(theme.Accent))

	d.status = termui.NewLabel("no clicks yet", termui.WithWidthHint(termui.AutoLayout()))
	d.status.SetStyle(text)
	d.clock = termui.NewLabel("--:--:--")
	d.clock.SetStyle(termui.NewStyle().Foreground(theme.Accent))
	footer := termui.NewWidget(
		termui.WithName("footer"),
		termui.WithHints(termui.AutoLayout(), termui.Manual()),
		termui.WithSize(0, 1),
		termui.WithLayout(termui.RowLayout(1)),
		termui.WithChildren(d.status.Widget, d.clock.Widget),
	)

	d.root = termui.NewWidget(
		termui.WithName("root"),
		termui.WithBackground(theme.Background),
		termui.WithLayout(termui.ColumnLayout(0)),
		termui.WithChildren(header.Widget, body.Widget, footer),
	)
	d.bind()
	return d
}

func (d *demo) bind() {
	d.button.OnClick(func(*termui.MouseEvent) {
		d.clicks++
		d.status.SetText(fmt.Sprintf("clicked %d times", d.clicks))
	})
	d.button.OnDoubleClick(func(*termui.MouseEvent) {
		d.status.SetText("double click")
	})
	d.button.OnMouseIn(func(*termui.MouseEvent) {
		d.button.SetFrame(termui.BoxThick, termui.BorderAll, d.theme.Accent)
	})
	d.button.OnMouseOut(func(*termui.MouseEvent) {
		d.button.SetFrame(termui.BoxSingle, termui.BorderAll, d.theme.Frame)
	})
	d.button.OnFocusIn(func(*termui.FocusEvent) {
		d.button.SetBackground(d.theme.Frame.WithAlpha(0x40))
	})
	d.button.OnFocusOut(func(*termui.FocusEvent) {
		d.button.SetBackground(termui.Transparent)
	})
	d.button.OnKeyDown(func(e *termui.KeyEvent) {
		if e.Payload.Key == termui.KeyEnter || e.Payload.Key == termui.KeySpace {
			d.clicks++
			d.status.SetText(fmt.Sprintf("pressed %d times", d.clicks))
			e.Stop()
		}
	})

	d.root.OnKeyDown(func(e *termui.KeyEvent) {
		d.handleKey(e.Payload)
	})
	d.root.OnPaste(func(e *termui.PasteEvent) {
		d.record(fmt.Sprintf("paste %q", e.Payload.Text))
	})
}

func (d *demo) handleKey(in termui.KeyInput) {
	switch {
	case in.Key == termui.KeyForRune('q') && in.Mods == termui.ModNone,
		in.Key == termui.KeyForRune('c') && in.Mods == termui.ModCtrl:
		d.quit()
		return
	case in.Key == termui.KeyTab:
		r := d.root.Renderer()
		if r.KeyboardFocus() == d.button.Widget {
			r.SetKeyboardFocus(nil)
		} else {
			r.SetKeyboardFocus(d.button.Widget)
		}
	}
	name := in.Key.String()
	if in.Mods != termui.ModNone {
		name = in.Mods.String() + "+" + name
	}
	d.record(name)
}

func (d *demo) record(entry string) {
	d.keys = append(d.keys, entry)
	if len(d.keys) > maxLog {
		d.keys = d.keys[len(d.keys)-maxLog:]
	}
	d.log.SetText(strings.Join(d.keys, "\n"))
}

// tick updates the clock. It runs on the UI goroutine.
func (d *demo) tick(now time.Time) {
	d.clock.SetText(now.Format("15:04:05"))
}
