package prefixlog

import "sync"

// DefaultPalette is the set of prefix colors handed out round-robin.
var DefaultPalette = []string{
	"#F2777A",
	"#F99157",
	"#FFCC66",
	"#99CC99",
	"#66CCCC",
	"#6699CC",
	"#CC99CC",
}

// ColorWheel hands out palette colors in round-robin order. It is shared by
// every logger of a Factory so that prefixes get distinct colors without the
// callers coordinating.
type ColorWheel struct {
	mu      sync.Mutex
	palette []string
	next    uint64
}

// NewColorWheel returns a wheel over palette, or DefaultPalette when empty.
func NewColorWheel(palette ...string) *ColorWheel {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	cp := make([]string, len(palette))
	copy(cp, palette)
	return &ColorWheel{palette: cp}
}

// Next returns the next color and advances the wheel.
func (w *ColorWheel) Next() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := w.palette[w.next%uint64(len(w.palette))]
	w.next++
	return c
}

// Used returns how many colors the wheel has handed out.
func (w *ColorWheel) Used() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.next
}

// Reset rewinds the wheel to the first color.
func (w *ColorWheel) Reset() {
	w.mu.Lock()
	w.next = 0
	w.mu.Unlock()
}
