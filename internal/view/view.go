// Package view turns catalog data into the view trees the page renders.
//
// Builders are pure: they take the theme mode, the section's data and the
// section's visibility set, and return plain structs. Nothing here touches
// the DOM, the terminal or the network. The HTML renderer in this package and
// the terminal renderer in internal/preview both consume the same trees.
package view

import (
	"github.com/sakif/portfolio/internal/reveal"
	"github.com/sakif/portfolio/internal/theme"
)

// Kind identifies a section in the composed document.
type Kind string

const (
	KindHero       Kind = "hero"
	KindExperience Kind = "experience"
	KindTechStack  Kind = "techstack"
	KindProjects   Kind = "projects"
	KindResume     Kind = "resume"
	KindFooter     Kind = "footer"
)

// Section is one top-level block of the page.
type Section interface {
	Kind() Kind
	// Anchor is the fragment id of the section element, used by quick links.
	Anchor() string
}

// Reveal classes toggled on tracked elements. The browser script swaps them in
// place; the renderer emits the one matching the visibility set.
const (
	ClassVisible = "is-visible"
	ClassHidden  = "is-hidden"
)

// TechStackTargetID is the single tracked element of the technology grid.
// The whole section reveals at once.
const TechStackTargetID = 0

// Visibility carries one set per tracked section. A nil set means nothing in
// that section has been revealed yet.
type Visibility struct {
	Experience *reveal.VisibilitySet
	TechStack  *reveal.VisibilitySet
	Projects   *reveal.VisibilitySet
}

func revealClass(visible bool) string {
	if visible {
		return ClassVisible
	}
	return ClassHidden
}

// Palette is the colour set for one theme mode. The stylesheet carries the
// same values keyed on the root marker class; the terminal preview reads them
// from here.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
	Tag        string
}

var (
	darkPalette = Palette{
		Background: "#111827",
		Surface:    "#1F2937",
		Text:       "#FFFFFF",
		Muted:      "#9CA3AF",
		Accent:     "#60A5FA",
		Border:     "#1E40AF",
		Tag:        "#10B981",
	}
	lightPalette = Palette{
		Background: "#FFFFFF",
		Surface:    "#F9FAFB",
		Text:       "#111827",
		Muted:      "#4B5563",
		Accent:     "#2563EB",
		Border:     "#BFDBFE",
		Tag:        "#3B82F6",
	}
)

// PaletteFor returns the palette of m.
func PaletteFor(m theme.Mode) Palette {
	if m.IsDark() {
		return darkPalette
	}
	return lightPalette
}
