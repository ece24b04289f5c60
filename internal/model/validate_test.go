package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_RegistersAssetRule(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Var("/assets/resume.pdf", "asset"))
	assert.Error(t, v.Var("resume.pdf", "asset"))
}

func TestValidator_IsShared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestIsAsset(t *testing.T) {
	assert.True(t, IsAsset("/assets/bell.png"))
	assert.True(t, IsAsset("https://cdn.jsdelivr.net/icon.svg"))
	assert.False(t, IsAsset("//evil.example/x.png"))
	assert.False(t, IsAsset("/assets/../etc/passwd"))
	assert.False(t, IsAsset("bell.png"))
	assert.False(t, IsAsset("ftp://host/file"))
}

func TestJob_LogoCSS(t *testing.T) {
	assert.Equal(t, DefaultLogoStyle, Job{}.LogoCSS())
	assert.Equal(t, "object-fit: cover", Job{LogoStyle: "object-fit: cover"}.LogoCSS())
}
