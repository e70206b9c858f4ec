package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetOutput_RoutesLogger(t *testing.T) {
	var buf bytes.Buffer
	prev, wasEnabled := Logger(), Enabled()
	t.Cleanup(func() {
		SetOutput(prev)
		enabled = wasEnabled
	})

	SetOutput(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("relayout", "widget", "root")

	if !strings.Contains(buf.String(), "msg=relayout") {
		t.Errorf("output = %q, want msg=relayout", buf.String())
	}
	if !strings.Contains(buf.String(), "widget=root") {
		t.Errorf("output = %q, want widget=root", buf.String())
	}
}

func TestLog_FormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	prev, wasEnabled := Logger(), Enabled()
	t.Cleanup(func() {
		SetOutput(prev)
		enabled = wasEnabled
	})

	SetOutput(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Log("resize %dx%d", 80, 24)

	if !strings.Contains(buf.String(), `msg="resize 80x24"`) {
		t.Errorf("output = %q, want the formatted message", buf.String())
	}
}
