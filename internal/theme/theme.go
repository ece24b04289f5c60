// Package theme holds the page-wide light/dark switch.
//
// There is exactly one State per mounted page. The Composer owns it and is
// the only writer (through the toggle control); everything else reads the
// current Mode or subscribes to changes. The document-wide marker is a class
// on the Root: present in dark mode, absent in light mode. Style rules key off
// that class and nothing else reads it.
package theme

import "sync"

// MarkerClass is the class set on the document root while dark mode is active.
const MarkerClass = "dark"

// Mode is the active presentation mode.
type Mode int

const (
	Dark Mode = iota
	Light
)

// Default is the mode of a freshly loaded page.
const Default = Dark

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool { return m != Light }

// Toggled returns the other mode.
func (m Mode) Toggled() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Pick returns dark or light depending on m.
func (m Mode) Pick(dark, light string) string {
	if m.IsDark() {
		return dark
	}
	return light
}

// State is an observable Mode. Subscribers are notified synchronously, in
// registration order, after every Toggle.
type State struct {
	mu     sync.Mutex
	mode   Mode
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(Mode)
}

// NewState returns a State in the default (dark) mode.
func NewState() *State {
	return &State{mode: Default}
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the mode, notifies subscribers and returns the new mode.
func (s *State) Toggle() Mode {
	s.mu.Lock()
	s.mode = s.mode.Toggled()
	mode := s.mode
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(mode)
	}
	return mode
}

// Subscribe registers fn for future changes and returns a function that
// removes it.
func (s *State) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
