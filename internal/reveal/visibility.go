// Package reveal turns "element entered the viewport" notifications into a
// one-shot visible state per tracked element.
//
// The pieces, leaf-first:
//
//	VisibilitySet → which IDs have been seen (monotonic bitset)
//	Host          → the viewport-intersection capability (browser, terminal, tests)
//	Observer      → one per section; mounts on a Host, fills its VisibilitySet
//
// A section mounts its Observer when it appears and unmounts it when it goes
// away. Unmount disconnects the Host registration, after which nothing the
// Host does can touch the set again.
package reveal

import "math/bits"

// VisibilitySet is a grow-only set of small non-negative IDs backed by a bitset.
// The zero value is an empty set ready to use.
type VisibilitySet struct {
	words []uint64
	count int
}

// NewVisibilitySet returns an empty set with room for IDs below capacity
// without reallocating.
func NewVisibilitySet(capacity int) *VisibilitySet {
	if capacity < 0 {
		capacity = 0
	}
	return &VisibilitySet{words: make([]uint64, (capacity+63)/64)}
}

// Add records id as seen. It reports whether id was newly added; adding an
// existing member (or a negative id) is a no-op that returns false.
func (s *VisibilitySet) Add(id int) bool {
	if id < 0 {
		return false
	}
	w, bit := id/64, uint64(1)<<(uint(id)%64)
	for len(s.words) <= w {
		s.words = append(s.words, 0)
	}
	if s.words[w]&bit != 0 {
		return false
	}
	s.words[w] |= bit
	s.count++
	return true
}

// Has reports whether id has been seen. A nil set has no members.
func (s *VisibilitySet) Has(id int) bool {
	if s == nil || id < 0 {
		return false
	}
	w := id / 64
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(uint64(1)<<(uint(id)%64)) != 0
}

// Len returns the number of members.
func (s *VisibilitySet) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// IDs returns the members in ascending order.
func (s *VisibilitySet) IDs() []int {
	if s == nil {
		return nil
	}
	ids := make([]int, 0, s.count)
	for w, word := range s.words {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			ids = append(ids, w*64+tz)
			word &^= uint64(1) << uint(tz)
		}
	}
	return ids
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (s *VisibilitySet) Clone() *VisibilitySet {
	if s == nil {
		return &VisibilitySet{}
	}
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return &VisibilitySet{words: words, count: s.count}
}
