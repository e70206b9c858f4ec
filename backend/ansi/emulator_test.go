package ansi

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	termui "github.com/grindlemire/go-termui"
)

// screenEmulator interprets the subset of escape sequences the backend
// emits and keeps the resulting glyph grid, so tests can compare what a
// terminal would show with the renderer's buffer.
type screenEmulator struct {
	width, height int
	screen        [][]rune // 0 marks the trailing half of a wide rune
	row, col      int

	cursorHidden bool
	altScreen    bool
	mouse        bool
	paste        bool
}

func newScreenEmulator(width, height int) *screenEmulator {
	e := &screenEmulator{width: width, height: height}
	e.screen = make([][]rune, height)
	for i := range e.screen {
		e.screen[i] = make([]rune, width)
	}
	e.clear()
	return e
}

func (e *screenEmulator) clear() {
	for _, row := range e.screen {
		for i := range row {
			row[i] = ' '
		}
	}
}

func (e *screenEmulator) Write(b []byte) (int, error) {
	for i := 0; i < len(b); {
		if b[i] == 0x1b && i+1 < len(b) && b[i+1] == '[' {
			i += 2 + e.csi(b[i+2:])
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		e.put(r)
		i += size
	}
	return len(b), nil
}

func (e *screenEmulator) put(r rune) {
	w := max(termui.RuneWidth(r), 1)
	if e.row < 0 || e.row >= e.height || e.col+w > e.width {
		e.col += w
		return
	}
	e.screen[e.row][e.col] = r
	if w == 2 {
		e.screen[e.row][e.col+1] = 0
	}
	e.col += w
}

// csi applies one sequence and returns how many bytes after ESC [ it used.
func (e *screenEmulator) csi(s []byte) int {
	for i, ch := range s {
		if ch < 0x40 || ch > 0x7e {
			continue
		}
		params := string(s[:i])
		switch ch {
		case 'H':
			e.row, e.col = 0, 0
			if parts := strings.Split(params, ";"); len(parts) == 2 {
				row, _ := strconv.Atoi(parts[0])
				col, _ := strconv.Atoi(parts[1])
				e.row, e.col = row-1, col-1
			}
		case 'J':
			if params == "2" {
				e.clear()
			}
		case 'h', 'l':
			e.privateMode(params, ch == 'h')
		}
		return i + 1
	}
	return len(s)
}

func (e *screenEmulator) privateMode(params string, on bool) {
	switch params {
	case "?25":
		e.cursorHidden = !on
	case "?1049":
		e.altScreen = on
	case "?1003":
		e.mouse = on
	case "?2004":
		e.paste = on
	}
}

func (e *screenEmulator) String() string {
	var sb strings.Builder
	for y, row := range e.screen {
		for _, r := range row {
			if r != 0 {
				sb.WriteRune(r)
			}
		}
		if y < e.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func TestEmulator_ModesFollowStartStop(t *testing.T) {
	emu := newScreenEmulator(4, 2)
	b := newTestBackend(t, strings.NewReader(""), emu)

	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !emu.altScreen || !emu.mouse || !emu.paste || !emu.cursorHidden {
		t.Errorf("after Start: %+v", emu)
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if emu.altScreen || emu.mouse || emu.paste || emu.cursorHidden {
		t.Errorf("after Stop: %+v", emu)
	}
}

func TestEmulator_ScreenMatchesRenderer(t *testing.T) {
	emu := newScreenEmulator(16, 5)
	b := newTestBackend(t, strings.NewReader(""), emu)
	r, err := termui.NewRenderer(b, termui.WithBufferSize(16, 5))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	label := termui.NewLabel("hello", termui.WithPosition(1, 0))
	panel := termui.NewPanel(
		termui.WithRect(termui.NewRect(1, 1, 12, 3)),
		termui.WithChildren(label.Widget),
	)
	panel.SetFrame(termui.BoxSingle, termui.BorderAll, termui.Blue)
	root := termui.NewWidget(termui.WithChildren(panel.Widget))
	r.SetRoot(root)

	check := func(step string) {
		t.Helper()
		if got, want := emu.String(), r.Buffer().String(); got != want {
			t.Errorf("%s: terminal shows\n%s\nwant\n%s", step, got, want)
		}
	}
	check("initial")

	label.SetText("世界!")
	check("wide text")

	panel.Move(termui.Pt(3, 2))
	check("moved")

	emu = newScreenEmulator(10, 4)
	b.out = emu
	r.Resize(10, 4)
	check("resized")
}
