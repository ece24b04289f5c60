package view

// SocialLink is an outbound icon link.
type SocialLink struct {
	Label string
	URL   string
	Icon  string
}

// Hero is the profile block at the top of the page.
type Hero struct {
	Name     string
	Headline string
	Bio      string
	Image    string
	Location string
	Email    string
	Links    []SocialLink
}

func (Hero) Kind() Kind     { return KindHero }
func (Hero) Anchor() string { return "about" }

// Experience is the work history list.
type Experience struct {
	Title     string
	Threshold float64
	Entries   []JobEntry
}

func (Experience) Kind() Kind     { return KindExperience }
func (Experience) Anchor() string { return "experience" }

// JobEntry is one row of the work history.
type JobEntry struct {
	ID           int
	Company      string
	Position     string
	Duration     string
	Description  string
	Logo         string
	LogoAlt      string
	LogoStyle    string
	Link         string
	Technologies []string
	Reversed     bool
	Visible      bool
}

// Direction is the flex direction of the row. Rows alternate so that logos
// zig-zag down the page.
func (e JobEntry) Direction() string {
	if e.Reversed {
		return "flex-row-reverse"
	}
	return "flex-row"
}

// RevealClass is ClassVisible once the row has been revealed.
func (e JobEntry) RevealClass() string { return revealClass(e.Visible) }

// TechStack is the grid of technology icons.
type TechStack struct {
	Title           string
	Caption         string
	Threshold       float64
	TargetID        int
	Visible         bool
	Background      string
	BackgroundDark  string
	BackgroundLight string
	Icons           []TechIcon
}

func (TechStack) Kind() Kind     { return KindTechStack }
func (TechStack) Anchor() string { return "tech-stack" }

// RevealClass is ClassVisible once the section has been revealed.
func (t TechStack) RevealClass() string { return revealClass(t.Visible) }

// TechIcon is one icon of the grid. Style is the complete inline style of the
// icon frame, accent colour included verbatim.
type TechIcon struct {
	Name  string
	Years float64
	Logo  string
	Color string
	Style string
}

// Projects is the project gallery.
type Projects struct {
	Title     string
	Threshold float64
	Cards     []ProjectCard
}

func (Projects) Kind() Kind     { return KindProjects }
func (Projects) Anchor() string { return "projects" }

// ProjectCard is one project of the gallery.
type ProjectCard struct {
	ID           int
	Title        string
	Description  string
	Image        string
	GitHubURL    string
	LiveURL      string
	Technologies []string
	Featured     bool
	Visible      bool
}

// RevealClass is ClassVisible once the card has been revealed.
func (p ProjectCard) RevealClass() string { return revealClass(p.Visible) }

// Resume is the embedded document viewer.
type Resume struct {
	Title string
	Src   string
}

func (Resume) Kind() Kind     { return KindResume }
func (Resume) Anchor() string { return "resume" }

// QuickLink is an in-page navigation link.
type QuickLink struct {
	Label string
	Href  string
}

// Footer closes the page.
type Footer struct {
	Name       string
	Blurb      string
	Email      string
	Location   string
	QuickLinks []QuickLink
	Links      []SocialLink
	Year       int
	MadeWith   string
	Revision   string
}

func (Footer) Kind() Kind     { return KindFooter }
func (Footer) Anchor() string { return "contact" }
