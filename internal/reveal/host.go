package reveal

import (
	"sort"
	"sync"
)

// Host is the viewport-intersection capability supplied by whatever is
// displaying the page.
//
// Observe registers targets and starts delivering batches of entries to fn.
// Implementations must deliver one pass synchronously during Observe so that
// elements already in view are reported without waiting for a scroll. The
// returned function disconnects the registration; it is safe to call twice.
type Host interface {
	Observe(targets []Target, fn func([]Entry)) (disconnect func())
}

// ScrollHost is a Host driven by synthetic scroll offsets. It is the
// non-browser intersection source used by the terminal preview and by tests.
type ScrollHost struct {
	mu       sync.Mutex
	viewport Viewport
	nextID   int
	regs     map[int]registration
}

type registration struct {
	targets []Target
	fn      func([]Entry)
}

// NewScrollHost creates a host with a viewport of the given height scrolled to the top.
func NewScrollHost(height float64) *ScrollHost {
	return &ScrollHost{
		viewport: Viewport{Height: height},
		regs:     make(map[int]registration),
	}
}

// Observe implements Host.
func (h *ScrollHost) Observe(targets []Target, fn func([]Entry)) func() {
	own := make([]Target, len(targets))
	copy(own, targets)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.regs[id] = registration{targets: own, fn: fn}
	vp := h.viewport
	h.mu.Unlock()

	fn(entriesFor(own, vp))

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.regs, id)
			h.mu.Unlock()
		})
	}
}

// ScrollTo moves the viewport and notifies every registration.
func (h *ScrollHost) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	h.mu.Lock()
	h.viewport.ScrollY = y
	h.mu.Unlock()
	h.notify()
}

// ScrollBy moves the viewport relative to its current offset.
func (h *ScrollHost) ScrollBy(dy float64) {
	h.mu.Lock()
	y := h.viewport.ScrollY + dy
	h.mu.Unlock()
	h.ScrollTo(y)
}

// Resize changes the viewport height and notifies every registration.
func (h *ScrollHost) Resize(height float64) {
	if height < 0 {
		height = 0
	}
	h.mu.Lock()
	h.viewport.Height = height
	h.mu.Unlock()
	h.notify()
}

// Viewport returns the current viewport.
func (h *ScrollHost) Viewport() Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

// Registrations returns the number of live (not yet disconnected) registrations.
func (h *ScrollHost) Registrations() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.regs)
}

// notify delivers a pass to every registration in registration order.
// Callbacks run without the host lock held so they may call back into the host.
func (h *ScrollHost) notify() {
	h.mu.Lock()
	ids := make([]int, 0, len(h.regs))
	for id := range h.regs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	regs := make([]registration, 0, len(ids))
	for _, id := range ids {
		regs = append(regs, h.regs[id])
	}
	vp := h.viewport
	h.mu.Unlock()

	for _, r := range regs {
		r.fn(entriesFor(r.targets, vp))
	}
}

func entriesFor(targets []Target, vp Viewport) []Entry {
	entries := make([]Entry, len(targets))
	for i, t := range targets {
		entries[i] = Intersect(t, vp)
	}
	return entries
}
