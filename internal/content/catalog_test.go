package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/model"
)

func TestLoad_BuiltInDatasetsAreValid(t *testing.T) {
	for _, dataset := range []string{"", DatasetFeatured, DatasetPortfolio} {
		t.Run("dataset="+dataset, func(t *testing.T) {
			c, err := Load(dataset)
			require.NoError(t, err)
			assert.Len(t, c.Jobs, len(Jobs))
			assert.Len(t, c.Technologies, len(Technologies))
			assert.NotEmpty(t, c.Projects)
		})
	}
}

func TestLoad_UnknownDataset(t *testing.T) {
	_, err := Load("everything")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestLoad_CopiesPackageData(t *testing.T) {
	c, err := Load(DatasetFeatured)
	require.NoError(t, err)

	c.Jobs[0].Technologies[0] = "COBOL"
	c.Profile.Links[0].Label = "changed"

	assert.NotEqual(t, "COBOL", Jobs[0].Technologies[0])
	assert.NotEqual(t, "changed", Profile.Links[0].Label)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"duplicate job id", func(c *Catalog) { c.Jobs[1].ID = c.Jobs[0].ID }},
		{"job id past bitset range", func(c *Catalog) { c.Jobs[0].ID = model.MaxElementID + 1 }},
		{"huge job id", func(c *Catalog) { c.Jobs[0].ID = 1 << 30 }},
		{"negative project id", func(c *Catalog) { c.Projects[0].ID = -1 }},
		{"project id past bitset range", func(c *Catalog) { c.Projects[0].ID = model.MaxElementID + 1 }},
		{"missing job duration", func(c *Catalog) { c.Jobs[0].Duration = "" }},
		{"relative job link", func(c *Catalog) { c.Jobs[0].Link = "oakbotics.ca" }},
		{"relative logo path", func(c *Catalog) { c.Jobs[0].Logo = "../public/logo.png" }},
		{"bad accent colour", func(c *Catalog) { c.Technologies[0].Color = "yellow-ish" }},
		{"negative years", func(c *Catalog) { c.Technologies[0].Years = -1 }},
		{"duplicate technology", func(c *Catalog) { c.Technologies[1].Name = c.Technologies[0].Name }},
		{"bad email", func(c *Catalog) { c.Profile.Email = "not-an-email" }},
		{"unknown link icon", func(c *Catalog) { c.Profile.Links[0].Icon = "myspace" }},
		{"project without live url", func(c *Catalog) { c.Projects[0].LiveURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(DatasetPortfolio)
			require.NoError(t, err)

			tt.mutate(c)
			err = c.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)
		})
	}
}

func TestValidate_AcceptsLargestElementID(t *testing.T) {
	c, err := Load(DatasetFeatured)
	require.NoError(t, err)

	c.Jobs[0].ID = model.MaxElementID
	assert.NoError(t, c.Validate())
}

func TestValidate_OptionalJobLink(t *testing.T) {
	c, err := Load(DatasetFeatured)
	require.NoError(t, err)

	c.Jobs[0].Link = ""
	assert.NoError(t, c.Validate())
}
