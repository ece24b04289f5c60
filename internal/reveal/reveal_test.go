package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three 100px tall elements spaced out below a 100px viewport.
func jobTargets() []Target {
	return []Target{
		{ID: 1, Bounds: Rect{Top: 200, Height: 100}},
		{ID: 2, Bounds: Rect{Top: 400, Height: 100}},
		{ID: 3, Bounds: Rect{Top: 600, Height: 100}},
	}
}

// leakyHost never honours disconnect so tests can keep firing after unmount.
type leakyHost struct {
	fn           func([]Entry)
	disconnected int
}

func (h *leakyHost) Observe(_ []Target, fn func([]Entry)) func() {
	h.fn = fn
	return func() { h.disconnected++ }
}

func TestVisibilitySet_AddIsIdempotent(t *testing.T) {
	var s VisibilitySet

	assert.True(t, s.Add(3))
	assert.False(t, s.Add(3))
	assert.True(t, s.Has(3))
	assert.Equal(t, 1, s.Len())
}

func TestVisibilitySet_RejectsNegativeIDs(t *testing.T) {
	s := NewVisibilitySet(4)

	assert.False(t, s.Add(-1))
	assert.False(t, s.Has(-1))
	assert.Zero(t, s.Len())
}

func TestVisibilitySet_GrowsPastInitialCapacity(t *testing.T) {
	s := NewVisibilitySet(2)

	s.Add(130)
	s.Add(0)
	s.Add(64)

	assert.Equal(t, []int{0, 64, 130}, s.IDs())
	assert.False(t, s.Has(129))
}

func TestVisibilitySet_NilIsEmpty(t *testing.T) {
	var s *VisibilitySet

	assert.False(t, s.Has(0))
	assert.Zero(t, s.Len())
	assert.Nil(t, s.IDs())
	assert.Zero(t, s.Clone().Len())
}

func TestVisibilitySet_CloneIsIndependent(t *testing.T) {
	s := NewVisibilitySet(8)
	s.Add(1)

	c := s.Clone()
	c.Add(2)

	assert.False(t, s.Has(2))
	assert.True(t, c.Has(1))
}

func TestIntersect(t *testing.T) {
	vp := Viewport{ScrollY: 100, Height: 200}

	tests := []struct {
		name      string
		target    Target
		wantRatio float64
		wantIn    bool
	}{
		{"fully inside", Target{Bounds: Rect{Top: 150, Height: 50}}, 1, true},
		{"above viewport", Target{Bounds: Rect{Top: 0, Height: 100}}, 0, false},
		{"below viewport", Target{Bounds: Rect{Top: 300, Height: 10}}, 0, false},
		{"top half clipped", Target{Bounds: Rect{Top: 50, Height: 100}}, 0.5, true},
		{"taller than viewport", Target{Bounds: Rect{Top: 0, Height: 400}}, 0.5, true},
		{"zero height inside", Target{Bounds: Rect{Top: 120}}, 1, true},
		{"zero height at bottom edge", Target{Bounds: Rect{Top: 300}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Intersect(tt.target, vp)
			assert.InDelta(t, tt.wantRatio, e.Ratio, 1e-9)
			assert.Equal(t, tt.wantIn, e.Intersecting)
		})
	}
}

func TestObserver_RevealsOnceThresholdIsMet(t *testing.T) {
	host := NewScrollHost(100)
	obs := New(ExperienceThreshold)
	obs.Mount(host, jobTargets())

	assert.Zero(t, obs.Visible().Len(), "nothing is in view at the top")

	// 20% of job 2 visible: below the 0.3 threshold.
	host.ScrollTo(320)
	assert.False(t, obs.Revealed(2))

	// 50% of job 2 visible.
	host.ScrollTo(350)
	assert.True(t, obs.Revealed(2))
	assert.False(t, obs.Revealed(1))
	assert.False(t, obs.Revealed(3))
}

func TestObserver_MembershipIsMonotonic(t *testing.T) {
	host := NewScrollHost(100)
	obs := New(ExperienceThreshold)

	var revealed []int
	obs.OnReveal(func(id int) { revealed = append(revealed, id) })
	obs.Mount(host, jobTargets())

	host.ScrollTo(400) // job 2 in view
	host.ScrollTo(0)   // and out again
	host.ScrollTo(400) // and back in

	assert.True(t, obs.Revealed(2), "scrolling out must not remove the entry")
	assert.Equal(t, []int{2}, revealed, "the enter transition fires exactly once")
}

func TestObserver_AlreadyInViewAtMount(t *testing.T) {
	host := NewScrollHost(100)
	host.ScrollTo(600)

	obs := New(ExperienceThreshold)
	obs.Mount(host, jobTargets())

	assert.Equal(t, []int{3}, obs.Visible().IDs())
}

func TestObserver_LateHookSeesEarlierReveals(t *testing.T) {
	host := NewScrollHost(100)
	host.ScrollTo(600)

	obs := New(ExperienceThreshold)
	obs.Mount(host, jobTargets())

	var revealed []int
	obs.OnReveal(func(id int) { revealed = append(revealed, id) })
	assert.Equal(t, []int{3}, revealed, "already-visible IDs are replayed on registration")

	host.ScrollTo(610)
	host.ScrollTo(350)
	assert.Equal(t, []int{3, 2}, revealed)
}

func TestObserver_UnmountDisconnectsHost(t *testing.T) {
	host := NewScrollHost(100)
	obs := New(ExperienceThreshold)
	obs.Mount(host, jobTargets())
	require.Equal(t, 1, host.Registrations())

	obs.Unmount()

	assert.Zero(t, host.Registrations())
	assert.False(t, obs.Mounted())

	host.ScrollTo(400)
	assert.False(t, obs.Revealed(2))
}

func TestObserver_IgnoresCallbacksAfterUnmount(t *testing.T) {
	host := &leakyHost{}
	obs := New(ExperienceThreshold)
	obs.Mount(host, jobTargets())

	obs.Unmount()
	obs.Unmount()

	host.fn([]Entry{{ID: 1, Ratio: 1, Intersecting: true}})

	assert.Equal(t, 1, host.disconnected)
	assert.False(t, obs.Revealed(1))
}

func TestObserver_RemountStartsFreshLifetime(t *testing.T) {
	host := NewScrollHost(100)
	obs := New(ExperienceThreshold)
	obs.Mount(host, jobTargets())
	host.ScrollTo(400)
	require.True(t, obs.Revealed(2))

	obs.Mount(host, jobTargets())
	host.ScrollTo(0)

	assert.False(t, obs.Revealed(2))
	assert.Equal(t, 1, host.Registrations())
}

func TestObserver_NilHostRevealsEverything(t *testing.T) {
	obs := New(ProjectsThreshold)
	obs.Mount(nil, jobTargets())

	assert.Equal(t, []int{1, 2, 3}, obs.Visible().IDs())
}

func TestObserver_SectionsAreIndependent(t *testing.T) {
	host := NewScrollHost(100)
	jobs := New(ExperienceThreshold)
	tech := New(TechStackThreshold)

	jobs.Mount(host, jobTargets())
	tech.Mount(host, []Target{{ID: 0, Bounds: Rect{Top: 900, Height: 200}}})

	host.ScrollTo(400)
	jobs.Unmount()
	host.ScrollTo(900)

	assert.True(t, tech.Revealed(0))
	assert.Equal(t, []int{2}, jobs.Visible().IDs())
}

func TestNew_ClampsThreshold(t *testing.T) {
	assert.Equal(t, 1.0, New(4).Threshold())
	assert.Equal(t, 0.0, New(-1).Threshold())
}
