package termui

import (
	"strings"
	"sync"
)

// MockBackend is a Backend for tests. It keeps its own copy of every cell
// it was asked to render and records each render and wake-up.
type MockBackend struct {
	mu      sync.Mutex
	screen  *Buffer
	renders []Rect
	notify  int
}

var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a mock backend with an empty screen.
func NewMockBackend() *MockBackend {
	return &MockBackend{screen: NewBuffer(0, 0)}
}

// EventNotify counts wake-ups.
func (m *MockBackend) EventNotify() {
	m.mu.Lock()
	m.notify++
	m.mu.Unlock()
}

// Render copies the cells inside rect to the mock screen.
func (m *MockBackend) Render(buf *Buffer, rect Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Resize(buf.Width(), buf.Height())
	rect = rect.Intersect(buf.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			m.screen.SetCell(x, y, buf.Cell(x, y))
		}
	}
	m.renders = append(m.renders, rect)
}

// Renders returns the rectangles passed to Render, in order.
func (m *MockBackend) Renders() []Rect {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Rect, len(m.renders))
	copy(out, m.renders)
	return out
}

// RenderCount returns how many times Render was called.
func (m *MockBackend) RenderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.renders)
}

// NotifyCount returns how many times EventNotify was called.
func (m *MockBackend) NotifyCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notify
}

// Reset forgets recorded renders and wake-ups but keeps the screen.
func (m *MockBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renders = nil
	m.notify = 0
}

// Cell returns the rendered cell at (x, y).
func (m *MockBackend) Cell(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen.Cell(x, y)
}

// String returns the rendered glyphs, one line per row.
func (m *MockBackend) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen.String()
}

// StringTrimmed returns the rendered glyphs without trailing spaces.
func (m *MockBackend) StringTrimmed() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen.StringTrimmed()
}

// Line returns row y of the rendered glyphs without trailing spaces.
func (m *MockBackend) Line(y int) string {
	lines := strings.Split(m.StringTrimmed(), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}
