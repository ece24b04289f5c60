package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/model"
)

// Site is the content configuration of the page.
type Site struct {
	Title        string   `yaml:"title"         toml:"title"         validate:"max=120"`
	ShowRevision bool     `yaml:"show_revision" toml:"show_revision"`
	Projects     Projects `yaml:"projects"      toml:"projects"`
}

// Projects selects the projects gallery.
type Projects struct {
	Mount   bool   `yaml:"mount"   toml:"mount"`
	Dataset string `yaml:"dataset" toml:"dataset" validate:"omitempty,oneof=featured portfolio"`
}

// DefaultSite is used when no site file is configured: the gallery is
// defined but not on the page.
func DefaultSite() Site {
	return Site{
		ShowRevision: true,
		Projects:     Projects{Mount: false, Dataset: "featured"},
	}
}

// LoadSite reads a site file. The format follows the extension: .yaml/.yml or
// .toml. Unknown keys are rejected.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading site file: %w", err)
	}

	site := DefaultSite()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&site); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&site); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return nil, apperror.ValidationFailed("SITE_CONFIG",
			fmt.Sprintf("unsupported site file extension %q", filepath.Ext(path)))
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the site settings.
func (s *Site) Validate() error {
	err := model.Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperror.ValidationFailed(fe.Namespace(),
			fmt.Sprintf("config: %s failed %q validation (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("config: validating site: %w", err)
}
