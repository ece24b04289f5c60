package view

import "github.com/sakif/portfolio/internal/theme"

// Document is the whole page: the root element state, the fixed chrome and
// the sections in display order.
type Document struct {
	Title      string
	Mode       theme.Mode
	RootClass  string
	Palette    Palette
	Toggle     Toggle
	Background Background
	Sections   []Section
}

// Section returns the first section of kind k, or nil.
func (d Document) Section(k Kind) Section {
	for _, s := range d.Sections {
		if s.Kind() == k {
			return s
		}
	}
	return nil
}

// Toggle is the fixed theme switch. It shows the sun while dark mode is active
// (click for light) and the moon otherwise.
type Toggle struct {
	Icon  string
	Label string
}

// BuildToggle builds the switch for m.
func BuildToggle(m theme.Mode) Toggle {
	return Toggle{
		Icon:  m.Pick("sun", "moon"),
		Label: "Switch to " + m.Toggled().String() + " mode",
	}
}

// Background is the decorative animated backdrop behind the sections.
type Background struct {
	Orbs []Orb
}

// Orb is one blurred, slowly drifting blob of the backdrop.
type Orb struct {
	Class string
	Color string
}

// BuildBackground builds the backdrop for m. Orbs are dimmer in dark mode.
func BuildBackground(m theme.Mode) Background {
	return Background{Orbs: []Orb{
		{Class: "orb orb-1", Color: m.Pick("rgba(59, 130, 246, 0.15)", "rgba(59, 130, 246, 0.25)")},
		{Class: "orb orb-2", Color: m.Pick("rgba(16, 185, 129, 0.12)", "rgba(16, 185, 129, 0.2)")},
		{Class: "orb orb-3", Color: m.Pick("rgba(6, 182, 212, 0.1)", "rgba(6, 182, 212, 0.18)")},
	}}
}
