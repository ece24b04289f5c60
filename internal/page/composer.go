// Package page composes the sections into one document.
//
// A Composer owns the page-wide theme state and the document root and decides
// which sections appear and in what order. It can build a document for any
// visibility snapshot; a Session adds the live part, one scroll-reveal
// observer per tracked section, for hosts that can report intersections.
package page

import (
	"fmt"
	"io"
	"time"

	"github.com/sakif/portfolio/internal/content"
	"github.com/sakif/portfolio/internal/theme"
	"github.com/sakif/portfolio/internal/view"
)

// RootClasses are the classes the document root carries regardless of theme.
var RootClasses = []string{"scroll-smooth"}

// Options configure a Composer.
type Options struct {
	Title string
	// MountProjects puts the projects gallery between the technology grid and
	// the résumé, and adds its quick link to the footer.
	MountProjects bool
	// Revision is shown in the footer when non-empty.
	Revision string
	// Now is the clock used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Composer builds the page.
type Composer struct {
	catalog  *content.Catalog
	opts     Options
	state    *theme.State
	root     *theme.Root
	renderer *view.Renderer
}

// NewComposer returns a composer over catalog in the default theme.
func NewComposer(catalog *content.Catalog, opts Options) (*Composer, error) {
	if catalog == nil {
		return nil, fmt.Errorf("page: nil catalog")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Title == "" {
		opts.Title = catalog.Profile.Name + " | " + catalog.Profile.Headline
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	c := &Composer{
		catalog:  catalog,
		opts:     opts,
		state:    theme.NewState(),
		root:     theme.NewRoot(RootClasses...),
		renderer: renderer,
	}
	theme.Bind(c.state, c.root)
	return c, nil
}

// Catalog returns the data the composer renders.
func (c *Composer) Catalog() *content.Catalog { return c.catalog }

// Theme returns the page-wide theme state.
func (c *Composer) Theme() *theme.State { return c.state }

// Root returns the document root whose class list carries the theme marker.
func (c *Composer) Root() *theme.Root { return c.root }

// ToggleTheme flips the theme. The root marker follows before it returns.
func (c *Composer) ToggleTheme() theme.Mode { return c.state.Toggle() }

// ProjectsMounted reports whether the projects gallery is on the page.
func (c *Composer) ProjectsMounted() bool { return c.opts.MountProjects }

// Document builds the page for the current theme and the given visibility.
// Sections appear in fixed order: hero, experience, technology grid,
// projects (when mounted), résumé, footer.
func (c *Composer) Document(vis view.Visibility) view.Document {
	mode := c.state.Mode()
	cat := c.catalog

	sections := []view.Section{
		view.BuildHero(cat.Profile),
		view.BuildExperience(cat.Jobs, vis.Experience),
		view.BuildTechStack(mode, cat.Technologies, vis.TechStack),
	}
	if c.opts.MountProjects {
		sections = append(sections, view.BuildProjects(cat.Projects, vis.Projects))
	}
	sections = append(sections,
		view.BuildResume(cat.Profile),
		view.BuildFooter(cat.Profile, view.FooterOptions{
			Year:            c.opts.Now().Year(),
			ProjectsMounted: c.opts.MountProjects,
			Revision:        c.opts.Revision,
		}),
	)

	return view.Document{
		Title:      c.opts.Title,
		Mode:       mode,
		RootClass:  c.root.Attr(),
		Palette:    view.PaletteFor(mode),
		Toggle:     view.BuildToggle(mode),
		Background: view.BuildBackground(mode),
		Sections:   sections,
	}
}

// Render writes the HTML document for vis to w.
func (c *Composer) Render(w io.Writer, vis view.Visibility) error {
	return c.renderer.Render(w, c.Document(vis))
}
