package theme

import (
	"strings"
	"sync"
)

// Root is the class list of the document root element.
type Root struct {
	mu      sync.Mutex
	classes []string
}

// NewRoot returns a root carrying the given classes, duplicates dropped.
func NewRoot(classes ...string) *Root {
	r := &Root{}
	for _, c := range classes {
		r.Add(c)
	}
	return r
}

// Add appends class unless already present.
func (r *Root) Add(class string) {
	class = strings.TrimSpace(class)
	if class == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.classes {
		if c == class {
			return
		}
	}
	r.classes = append(r.classes, class)
}

// Remove drops class if present.
func (r *Root) Remove(class string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.classes {
		if c == class {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return
		}
	}
}

// Contains reports whether class is present.
func (r *Root) Contains(class string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the value of the root's class attribute.
func (r *Root) Attr() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.classes, " ")
}

// Apply sets or clears the marker class for m.
func (r *Root) Apply(m Mode) {
	if m.IsDark() {
		r.Add(MarkerClass)
		return
	}
	r.Remove(MarkerClass)
}

// Bind mirrors s onto r: the marker is applied immediately and again on every
// toggle. The returned function stops mirroring.
func Bind(s *State, r *Root) (unbind func()) {
	r.Apply(s.Mode())
	return s.Subscribe(r.Apply)
}
