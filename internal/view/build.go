package view

import (
	"fmt"
	"slices"

	"github.com/sakif/portfolio/internal/model"
	"github.com/sakif/portfolio/internal/reveal"
	"github.com/sakif/portfolio/internal/theme"
)

// Icon frame backgrounds of the technology grid.
const (
	TechBackgroundDark  = "#1F2937"
	TechBackgroundLight = "white"
)

// techRevealDelay is applied to the icon transition once the grid is visible.
const techRevealDelay = "0.2s"

const techCaption = "All the languages I am familiar with and have experience using."

// BuildHero builds the profile block.
func BuildHero(p model.Profile) Hero {
	return Hero{
		Name:     p.Name,
		Headline: p.Headline,
		Bio:      p.Bio,
		Image:    p.Image,
		Location: p.Location,
		Email:    p.Email,
		Links:    socialLinks(p.Links),
	}
}

// BuildExperience builds one row per job, in input order. Rows alternate
// direction starting with a normal row. A row is visible iff its job ID is in
// visible.
func BuildExperience(jobs []model.Job, visible *reveal.VisibilitySet) Experience {
	entries := make([]JobEntry, len(jobs))
	for i, j := range jobs {
		entries[i] = JobEntry{
			ID:           j.ID,
			Company:      j.Company,
			Position:     j.Position,
			Duration:     j.Duration,
			Description:  j.Description,
			Logo:         j.Logo,
			LogoAlt:      j.Company + " logo",
			LogoStyle:    j.LogoCSS(),
			Link:         j.Link,
			Technologies: slices.Clone(j.Technologies),
			Reversed:     i%2 == 1,
			Visible:      visible.Has(j.ID),
		}
	}
	return Experience{
		Title:     "Work Experience",
		Threshold: reveal.ExperienceThreshold,
		Entries:   entries,
	}
}

// BuildTechStack builds the technology grid. The whole grid is one tracked
// element; the caption and the icon scale-in follow its visibility.
func BuildTechStack(m theme.Mode, techs []model.Technology, visible *reveal.VisibilitySet) TechStack {
	shown := visible.Has(TechStackTargetID)
	bg := m.Pick(TechBackgroundDark, TechBackgroundLight)

	delay := "0s"
	if shown {
		delay = techRevealDelay
	}

	icons := make([]TechIcon, len(techs))
	for i, t := range techs {
		icons[i] = TechIcon{
			Name:  t.Name,
			Years: t.Years,
			Logo:  t.Logo,
			Color: t.Color,
			Style: fmt.Sprintf("background-color: %s; border-color: %s; transition-delay: %s", bg, t.Color, delay),
		}
	}

	return TechStack{
		Title:           "Technology Stack",
		Caption:         techCaption,
		Threshold:       reveal.TechStackThreshold,
		TargetID:        TechStackTargetID,
		Visible:         shown,
		Background:      bg,
		BackgroundDark:  TechBackgroundDark,
		BackgroundLight: TechBackgroundLight,
		Icons:           icons,
	}
}

// BuildProjects builds the gallery. The heading is singular when there is
// only one project to show.
func BuildProjects(projects []model.Project, visible *reveal.VisibilitySet) Projects {
	cards := make([]ProjectCard, len(projects))
	for i, p := range projects {
		cards[i] = ProjectCard{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Image:        p.Image,
			GitHubURL:    p.GitHubURL,
			LiveURL:      p.LiveURL,
			Technologies: slices.Clone(p.Technologies),
			Featured:     p.Featured,
			Visible:      visible.Has(p.ID),
		}
	}

	title := "Featured Projects"
	if len(cards) == 1 {
		title = "Featured Project"
	}
	return Projects{
		Title:     title,
		Threshold: reveal.ProjectsThreshold,
		Cards:     cards,
	}
}

// BuildResume builds the document viewer for the profile's résumé.
func BuildResume(p model.Profile) Resume {
	return Resume{Title: "Resume", Src: p.Resume}
}

// FooterOptions are the footer inputs that do not come from the profile.
type FooterOptions struct {
	Year            int
	ProjectsMounted bool
	Revision        string
}

// BuildFooter builds the footer. The projects quick link is only offered when
// the gallery is on the page.
func BuildFooter(p model.Profile, opts FooterOptions) Footer {
	links := []QuickLink{
		{Label: "About Me", Href: "#about"},
		{Label: "Experience", Href: "#experience"},
	}
	if opts.ProjectsMounted {
		links = append(links, QuickLink{Label: "Projects", Href: "#projects"})
	}
	links = append(links, QuickLink{Label: "Resume", Href: "#resume"})

	return Footer{
		Name:       p.Name,
		Blurb:      p.FooterBlurb,
		Email:      p.Email,
		Location:   p.Location,
		QuickLinks: links,
		Links:      socialLinks(p.Links),
		Year:       opts.Year,
		MadeWith:   "using Go & html/template",
		Revision:   opts.Revision,
	}
}

func socialLinks(links []model.Link) []SocialLink {
	out := make([]SocialLink, len(links))
	for i, l := range links {
		out[i] = SocialLink{Label: l.Label, URL: l.URL, Icon: l.Icon}
	}
	return out
}
