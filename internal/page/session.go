package page

import (
	"github.com/sakif/portfolio/internal/reveal"
	"github.com/sakif/portfolio/internal/theme"
	"github.com/sakif/portfolio/internal/view"
)

// Layout is where the tracked elements sit, in document coordinates.
type Layout struct {
	Jobs      []reveal.Target
	TechStack reveal.Rect
	Projects  []reveal.Target
}

// Session is a mounted page: each tracked section has its own observer
// registered with the host. Sessions are independent; mounting twice yields
// two sets of observers.
type Session struct {
	composer   *Composer
	experience *reveal.Observer
	techstack  *reveal.Observer
	projects   *reveal.Observer
}

// Mount registers the page's observers with host. A nil host has no
// intersection capability and everything is revealed at once.
func (c *Composer) Mount(host reveal.Host, layout Layout) *Session {
	s := &Session{
		composer:   c,
		experience: reveal.New(reveal.ExperienceThreshold),
		techstack:  reveal.New(reveal.TechStackThreshold),
	}

	s.experience.Mount(host, layout.Jobs)
	s.techstack.Mount(host, []reveal.Target{{ID: view.TechStackTargetID, Bounds: layout.TechStack}})
	if c.opts.MountProjects {
		s.projects = reveal.New(reveal.ProjectsThreshold)
		s.projects.Mount(host, layout.Projects)
	}
	return s
}

// OnReveal registers fn for every element revealed in any section. Elements
// already revealed are reported before OnReveal returns.
func (s *Session) OnReveal(fn func(kind view.Kind, id int)) {
	s.experience.OnReveal(func(id int) { fn(view.KindExperience, id) })
	s.techstack.OnReveal(func(id int) { fn(view.KindTechStack, id) })
	if s.projects != nil {
		s.projects.OnReveal(func(id int) { fn(view.KindProjects, id) })
	}
}

// Visibility is a snapshot of every section's set.
func (s *Session) Visibility() view.Visibility {
	v := view.Visibility{
		Experience: s.experience.Visible(),
		TechStack:  s.techstack.Visible(),
	}
	if s.projects != nil {
		v.Projects = s.projects.Visible()
	}
	return v
}

// Document builds the page as the session currently sees it.
func (s *Session) Document() view.Document {
	return s.composer.Document(s.Visibility())
}

// Toggle flips the page theme.
func (s *Session) Toggle() theme.Mode {
	return s.composer.ToggleTheme()
}

// Mounted reports whether every section's observer is still registered.
func (s *Session) Mounted() bool {
	if s.projects != nil && !s.projects.Mounted() {
		return false
	}
	return s.experience.Mounted() && s.techstack.Mounted()
}

// Unmount disconnects every observer. The visibility sets keep their last
// contents but no longer change.
func (s *Session) Unmount() {
	s.experience.Unmount()
	s.techstack.Unmount()
	if s.projects != nil {
		s.projects.Unmount()
	}
}
