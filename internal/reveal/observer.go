package reveal

import "sync"

// Thresholds used by the page sections.
const (
	ExperienceThreshold = 0.3
	TechStackThreshold  = 0.3
	ProjectsThreshold   = 0.2
)

// Observer watches one section's elements and flips each into the visible
// state the first time it satisfies the threshold.
//
// Membership is monotonic for a mount lifetime: scrolling an element out of
// view never removes it. Mounting again starts a new lifetime with an empty set.
type Observer struct {
	mu         sync.Mutex
	threshold  float64
	visible    *VisibilitySet
	disconnect func()
	generation int
	mounted    bool
	onReveal   []func(id int)
}

// New creates an unmounted observer. The threshold is clamped to [0, 1].
func New(threshold float64) *Observer {
	return &Observer{
		threshold: min(max(threshold, 0), 1),
		visible:   &VisibilitySet{},
	}
}

// Threshold returns the fraction of an element that must be visible to reveal it.
func (o *Observer) Threshold() float64 { return o.threshold }

// OnReveal registers fn to run once per ID, right after the ID joins the set.
// Hooks run synchronously on the goroutine delivering the notification.
// IDs already in the set when fn is registered are passed to it before
// OnReveal returns, so a late hook still sees every ID exactly once.
func (o *Observer) OnReveal(fn func(id int)) {
	o.mu.Lock()
	o.onReveal = append(o.onReveal, fn)
	seen := o.visible.IDs()
	o.mu.Unlock()

	for _, id := range seen {
		fn(id)
	}
}

// Mount registers targets with host. A nil host means the capability is not
// available, in which case every target is revealed immediately rather than
// never appearing.
func (o *Observer) Mount(host Host, targets []Target) {
	o.Unmount()

	o.mu.Lock()
	o.generation++
	gen := o.generation
	o.mounted = true
	o.visible = NewVisibilitySet(maxID(targets) + 1)
	o.mu.Unlock()

	if host == nil {
		all := make([]Entry, len(targets))
		for i, t := range targets {
			all[i] = Entry{ID: t.ID, Ratio: 1, Intersecting: true}
		}
		o.handle(gen, all)
		return
	}

	disconnect := host.Observe(targets, func(entries []Entry) {
		o.handle(gen, entries)
	})

	o.mu.Lock()
	if o.generation == gen && o.mounted {
		o.disconnect = disconnect
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()
	// Unmounted while the first pass was running.
	disconnect()
}

// Unmount disconnects the host registration. Notifications that still arrive
// for the old registration are ignored. Unmounting twice is a no-op.
func (o *Observer) Unmount() {
	o.mu.Lock()
	disconnect := o.disconnect
	o.disconnect = nil
	o.mounted = false
	o.mu.Unlock()

	if disconnect != nil {
		disconnect()
	}
}

// Mounted reports whether the observer is currently registered.
func (o *Observer) Mounted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mounted
}

// Revealed reports whether id has been seen during the current mount.
func (o *Observer) Revealed(id int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible.Has(id)
}

// Visible returns a snapshot of the set.
func (o *Observer) Visible() *VisibilitySet {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible.Clone()
}

func (o *Observer) handle(gen int, entries []Entry) {
	o.mu.Lock()
	if !o.mounted || gen != o.generation {
		o.mu.Unlock()
		return
	}
	var added []int
	for _, e := range entries {
		if e.Satisfies(o.threshold) && o.visible.Add(e.ID) {
			added = append(added, e.ID)
		}
	}
	hooks := append(([]func(int))(nil), o.onReveal...)
	o.mu.Unlock()

	for _, id := range added {
		for _, fn := range hooks {
			fn(id)
		}
	}
}

func maxID(targets []Target) int {
	m := -1
	for _, t := range targets {
		m = max(m, t.ID)
	}
	return m
}
