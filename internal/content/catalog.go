// Package content holds the hand-authored data the page renders: the profile,
// the work history, the technology grid and the project datasets.
//
// The data is compile-time constant. Load copies it into a Catalog and runs
// it through the validator once at startup so a typo (duplicate job ID, bad
// colour, relative URL) stops the process before anything is served.
package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/model"
)

// Catalog is everything a page composes.
type Catalog struct {
	Profile      model.Profile
	Jobs         []model.Job        `validate:"unique=ID,dive"`
	Technologies []model.Technology `validate:"unique=Name,dive"`
	Projects     []model.Project    `validate:"unique=ID,dive"`
}

// Load builds a validated catalog using the named project dataset.
func Load(dataset string) (*Catalog, error) {
	projects, err := ProjectsFor(dataset)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Profile:      cloneProfile(Profile),
		Jobs:         cloneJobs(Jobs),
		Technologies: slices.Clone(Technologies),
		Projects:     cloneProjects(projects),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ProjectsFor returns the project dataset with the given name.
func ProjectsFor(dataset string) ([]model.Project, error) {
	switch strings.ToLower(strings.TrimSpace(dataset)) {
	case "", DatasetFeatured:
		return FeaturedProjects, nil
	case DatasetPortfolio:
		return PortfolioProjects, nil
	default:
		return nil, apperror.ValidationFailed("projects.dataset",
			fmt.Sprintf("unknown project dataset %q", dataset))
	}
}

// Validate checks the catalog invariants: unique IDs, required fields,
// absolute outbound links, hex accent colours.
func (c *Catalog) Validate() error {
	err := model.Validator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperror.ValidationFailed(fe.Namespace(),
			fmt.Sprintf("content: %s failed %q validation", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("content: validating catalog: %w", err)
}

func cloneProfile(p model.Profile) model.Profile {
	p.Links = slices.Clone(p.Links)
	return p
}

func cloneJobs(jobs []model.Job) []model.Job {
	out := slices.Clone(jobs)
	for i := range out {
		out[i].Technologies = slices.Clone(out[i].Technologies)
	}
	return out
}

func cloneProjects(projects []model.Project) []model.Project {
	out := slices.Clone(projects)
	for i := range out {
		out[i].Technologies = slices.Clone(out[i].Technologies)
	}
	return out
}
