package content

import "github.com/sakif/portfolio/internal/model"

// Project datasets. Which one is shown, and whether the gallery is mounted at
// all, is site configuration.
const (
	DatasetFeatured  = "featured"
	DatasetPortfolio = "portfolio"
)

// FeaturedProjects is the single-project placeholder gallery.
var FeaturedProjects = []model.Project{arcSolvers}

// PortfolioProjects is the multi-project gallery.
var PortfolioProjects = []model.Project{
	arcSolvers,
	{
		ID:    2,
		Title: "Oakbotics Vision Pipeline",
		Description: "Real-time target tracking for an FRC robot: camera frames are filtered and contoured on a " +
			"co-processor and the target pose is streamed to the roboRIO over NetworkTables for auto-aim.",
		Technologies: []string{"Java", "WPILib", "OpenCV", "NetworkTables"},
		Image:        "/assets/vision-pipeline.png",
		GitHubURL:    "https://github.com/BrendanGoddard/vision-pipeline",
		LiveURL:      "https://www.oakbotics.ca",
	},
	{
		ID:    3,
		Title: "CAD Drawing Mirror",
		Description: "Python tooling that OCRs PDF CAD drawings with Tesseract, mirrors the geometry and re-labels " +
			"dimensions so left and right handed parts can be produced from a single source drawing.",
		Technologies: []string{"Python", "Tesseract", "PDF"},
		Image:        "/assets/cad-mirror.png",
		GitHubURL:    "https://github.com/BrendanGoddard/cad-mirror",
		LiveURL:      "https://armotool.com/",
	},
}

var arcSolvers = model.Project{
	ID:    1,
	Title: "ARC-1 Handmade Puzzle Solvers",
	Description: "An interactive web showcase of three manually coded ARC-1 puzzles, built entirely with HTML, CSS, " +
		"and JavaScript. Each solver loads real ARC JSON data, visualizes input and output grids, and applies " +
		"rule-based transformations to mimic human-style reasoning: no AI or ML required.",
	Technologies: []string{"JavaScript", "HTML5", "CSS3", "JSON", "ARC Dataset"},
	Image:        "/assets/arc-display.png",
	GitHubURL:    "https://github.com/BrendanGoddard/ARC-1-Puzzle-Solver",
	LiveURL:      "https://arc-1-puzzle-solver.vercel.app/",
	Featured:     true,
}
