package debug

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TERMUI_DEBUG"

var (
	once    sync.Once
	logger  = slog.New(slog.DiscardHandler)
	enabled bool
)

func setup() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	enabled = true
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Logger returns the shared debug logger.
func Logger() *slog.Logger {
	once.Do(setup)
	return logger
}

// Enabled reports whether debug output is being written anywhere.
func Enabled() bool {
	once.Do(setup)
	return enabled
}

// Log writes a printf-style debug message.
func Log(format string, args ...any) {
	if !Enabled() {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// SetOutput replaces the logger and enables Log. Intended for tests.
func SetOutput(l *slog.Logger) {
	once.Do(setup)
	logger, enabled = l, true
}
