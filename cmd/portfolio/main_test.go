package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/portfolio/internal/auth"
)

// executeCommand runs the root command with args and captured output.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Isolate from the developer's environment and .env file.
	for _, key := range []string{"SITE_CONFIG", "ASSETS_DIR", "ANALYTICS_ENABLED", "PORT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")

	stdout, err := executeCommand(t, "", "--repo", t.TempDir(), "export", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "to "+outDir)

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `class="scroll-smooth dark"`)
	assert.FileExists(t, filepath.Join(outDir, "static", "css", "site.css"))
}

func TestExportCommand_SiteFileMountsProjects(t *testing.T) {
	dir := t.TempDir()
	site := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(site, []byte("projects:\n  mount: true\n  dataset: portfolio\n"), 0o644))
	outDir := filepath.Join(dir, "out")

	_, err := executeCommand(t, "", "--site", site, "--repo", dir, "export", "--out", outDir)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `id="projects"`)
}

func TestExportCommand_BadSiteFile(t *testing.T) {
	dir := t.TempDir()
	site := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(site, []byte("projects:\n  dataset: everything\n"), 0o644))

	_, err := executeCommand(t, "", "--site", site, "export", "--out", filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestHashPasswordCommand(t *testing.T) {
	stdout, err := executeCommand(t, "s3cret-pass\n", "hash-password")
	require.NoError(t, err)

	hash := strings.TrimSpace(stdout)
	assert.NoError(t, auth.NewPasswordService().Verify(hash, "s3cret-pass"))
}

func TestHashPasswordCommand_EmptyInput(t *testing.T) {
	_, err := executeCommand(t, "", "hash-password")
	assert.Error(t, err)
}

func TestVersionCommand_OutsideRepository(t *testing.T) {
	stdout, err := executeCommand(t, "", "--repo", t.TempDir(), "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "portfolio dev")
	assert.Contains(t, stdout, "not a git repository")
}
