package reveal

// Rect is the vertical extent of an element in document coordinates.
// Only the scrolling axis matters for reveal, so there is no X/width.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the first coordinate below the element.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Viewport is the visible window onto the document.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Bottom returns the first coordinate below the visible window.
func (v Viewport) Bottom() float64 { return v.ScrollY + v.Height }

// Target is an element handle tagged with the entity ID it represents.
type Target struct {
	ID     int
	Bounds Rect
}

// Entry is one element's state in an intersection notification.
type Entry struct {
	ID           int
	Ratio        float64 // fraction of the element's height inside the viewport, 0..1
	Intersecting bool
}

// Intersect computes the entry for a target against a viewport.
//
// The ratio is visible height over element height, matching the browser's
// intersectionRatio on the scrolling axis. A zero-height element counts as
// fully visible when its top lies inside the viewport.
func Intersect(t Target, v Viewport) Entry {
	if t.Bounds.Height <= 0 {
		in := t.Bounds.Top >= v.ScrollY && t.Bounds.Top < v.Bottom()
		e := Entry{ID: t.ID, Intersecting: in}
		if in {
			e.Ratio = 1
		}
		return e
	}

	top := max(t.Bounds.Top, v.ScrollY)
	bottom := min(t.Bounds.Bottom(), v.Bottom())
	overlap := bottom - top
	if overlap <= 0 {
		return Entry{ID: t.ID}
	}

	ratio := overlap / t.Bounds.Height
	if ratio > 1 {
		ratio = 1
	}
	return Entry{ID: t.ID, Ratio: ratio, Intersecting: true}
}

// Satisfies reports whether the entry meets a reveal threshold.
func (e Entry) Satisfies(threshold float64) bool {
	return e.Intersecting && e.Ratio >= threshold
}
