package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakif/portfolio/internal/page"
	"github.com/sakif/portfolio/internal/reveal"
	"github.com/sakif/portfolio/internal/view"
)

// Frame is a document laid out as terminal lines.
type Frame struct {
	Lines  []string
	Layout page.Layout
}

// Render lays doc out at the given width. Tracked elements that are not yet
// revealed keep their height and render as blank lines, so the layout does
// not depend on visibility.
func Render(doc view.Document, width int) Frame {
	r := &renderer{width: max(width, minWidth), pal: doc.Palette}
	for _, s := range doc.Sections {
		switch s := s.(type) {
		case view.Hero:
			r.hero(s)
		case view.Experience:
			r.experience(s)
		case view.TechStack:
			r.techStack(s)
		case view.Projects:
			r.projects(s)
		case view.Resume:
			r.resume(s)
		case view.Footer:
			r.footer(s)
		}
		r.gap()
	}
	return Frame{Lines: r.lines, Layout: r.layout}
}

const minWidth = 40

type renderer struct {
	width  int
	pal    view.Palette
	lines  []string
	layout page.Layout
}

// add appends block and returns the line span it occupies.
func (r *renderer) add(block string) reveal.Rect {
	ls := strings.Split(block, "\n")
	top := len(r.lines)
	r.lines = append(r.lines, ls...)
	return reveal.Rect{Top: float64(top), Height: float64(len(ls))}
}

// addTracked appends block, or blank lines of the same height when hidden.
func (r *renderer) addTracked(block string, visible bool) reveal.Rect {
	if visible {
		return r.add(block)
	}
	return r.add(strings.Repeat("\n", lipgloss.Height(block)-1))
}

func (r *renderer) gap() { r.lines = append(r.lines, "") }

func (r *renderer) color(c string) lipgloss.Color {
	if c == view.TechBackgroundLight {
		return lipgloss.Color("#FFFFFF")
	}
	return lipgloss.Color(c)
}

func (r *renderer) heading(title string) {
	r.add(lipgloss.NewStyle().
		Bold(true).
		Foreground(r.color(r.pal.Accent)).
		Width(r.width).
		Align(lipgloss.Center).
		Render(title))
	r.gap()
}

func (r *renderer) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.color(r.pal.Text))
}

func (r *renderer) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.color(r.pal.Muted))
}

func (r *renderer) tags(names []string) string {
	style := lipgloss.NewStyle().Foreground(r.color(r.pal.Tag))
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = style.Render("[" + n + "]")
	}
	return lipgloss.NewStyle().Width(r.width - 6).Render(strings.Join(parts, " "))
}

func (r *renderer) links(links []view.SocialLink) string {
	var b strings.Builder
	for i, l := range links {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.text().Bold(true).Render(l.Label) + " " + r.muted().Render(l.URL))
	}
	return b.String()
}

func (r *renderer) hero(h view.Hero) {
	name := lipgloss.NewStyle().Bold(true).Foreground(r.color(r.pal.Accent)).Render(h.Name)
	body := lipgloss.JoinVertical(lipgloss.Left,
		name,
		r.muted().Render(h.Headline),
		"",
		r.text().Width(r.width).Render(h.Bio),
		"",
		r.links(h.Links),
		"",
		r.muted().Render(h.Location+"  ·  "+h.Email),
	)
	r.add(body)
}

func (r *renderer) experience(e view.Experience) {
	r.heading(e.Title)

	for i, entry := range e.Entries {
		if i > 0 {
			r.gap()
		}
		bounds := r.addTracked(r.jobRow(entry), entry.Visible)
		r.layout.Jobs = append(r.layout.Jobs, reveal.Target{ID: entry.ID, Bounds: bounds})
	}
}

func (r *renderer) jobRow(e view.JobEntry) string {
	logo := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.color(r.pal.Accent)).
		Padding(0, 1).
		Render(initials(e.Company))

	cardWidth := r.width - lipgloss.Width(logo) - 1
	head := lipgloss.JoinVertical(lipgloss.Left,
		r.text().Bold(true).Foreground(r.color(r.pal.Accent)).Render(e.Position),
		r.text().Render(e.Company),
		r.muted().Render(e.Duration),
	)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.color(r.pal.Border)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			head,
			"",
			r.text().Render(e.Description),
			"",
			r.tags(e.Technologies),
		))

	if e.Reversed {
		return lipgloss.JoinHorizontal(lipgloss.Center, card, " ", logo)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, logo, " ", card)
}

func (r *renderer) techStack(t view.TechStack) {
	r.heading(t.Title)

	var rows []string
	var row []string
	rowWidth := 0
	for _, icon := range t.Icons {
		cell := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(icon.Color)).
			Background(r.color(t.Background)).
			Foreground(lipgloss.Color(icon.Color)).
			Padding(0, 1).
			Render(icon.Name)
		w := lipgloss.Width(cell) + 1
		if rowWidth+w > r.width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, cell, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	grid := lipgloss.NewStyle().Width(r.width).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
	caption := r.muted().Width(r.width).Align(lipgloss.Center).Render(t.Caption)

	bounds := r.addTracked(grid+"\n\n"+caption, t.Visible)
	r.layout.TechStack = bounds
}

func (r *renderer) projects(p view.Projects) {
	r.heading(p.Title)

	for i, c := range p.Cards {
		if i > 0 {
			r.gap()
		}
		var badge string
		if c.Featured {
			badge = lipgloss.NewStyle().Foreground(r.color(r.pal.Tag)).Bold(true).Render("★ Featured Project") + "\n"
		}
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(r.color(r.pal.Border)).
			Padding(0, 1).
			Width(r.width - 2).
			Render(badge + lipgloss.JoinVertical(lipgloss.Left,
				r.text().Bold(true).Render(c.Title),
				"",
				r.text().Render(c.Description),
				"",
				r.tags(c.Technologies),
				"",
				r.muted().Render("Code  "+c.GitHubURL),
				r.muted().Render("Live  "+c.LiveURL),
			))
		bounds := r.addTracked(card, c.Visible)
		r.layout.Projects = append(r.layout.Projects, reveal.Target{ID: c.ID, Bounds: bounds})
	}
}

func (r *renderer) resume(res view.Resume) {
	r.heading(res.Title)
	r.add(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.color(r.pal.Muted)).
		Width(r.width - 2).
		Align(lipgloss.Center).
		Render(r.muted().Render("document: " + res.Src)))
}

func (r *renderer) footer(f view.Footer) {
	rule := r.muted().Render(strings.Repeat("─", r.width))

	quick := make([]string, len(f.QuickLinks))
	for i, l := range f.QuickLinks {
		quick[i] = l.Label + " (" + l.Href + ")"
	}

	lines := []string{
		rule,
		lipgloss.NewStyle().Bold(true).Foreground(r.color(r.pal.Accent)).Render(f.Name),
		r.muted().Width(r.width).Render(f.Blurb),
		"",
		r.text().Bold(true).Render("Quick Links") + "  " + r.muted().Render(strings.Join(quick, " · ")),
		r.text().Bold(true).Render("Get In Touch") + "  " + r.muted().Render(f.Email+" · "+f.Location),
		r.links(f.Links),
		rule,
		r.muted().Render(fmt.Sprintf("© %d %s. All rights reserved.", f.Year, f.Name)),
		r.muted().Render("Made with ♥ " + f.MadeWith),
	}
	if f.Revision != "" {
		lines = append(lines, r.muted().Render("build "+f.Revision))
	}
	r.add(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func initials(company string) string {
	var out []rune
	for _, w := range strings.Fields(company) {
		for _, c := range w {
			if ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				out = append(out, c)
			}
			break
		}
		if len(out) == 3 {
			break
		}
	}
	if len(out) == 0 {
		return "•"
	}
	return string(out)
}
