package revision

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("portfolio"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Portfolio",
			Email: "portfolio@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, hash.String()
}

func TestDetect_CleanRepo(t *testing.T) {
	dir, hash := initRepo(t)

	info, err := Detect(dir)
	require.NoError(t, err)

	assert.Equal(t, hash, info.Hash)
	assert.False(t, info.Dirty)
	assert.Equal(t, hash[:ShortLen], info.Short())
	assert.NotEmpty(t, info.Branch)
}

func TestDetect_SearchesParents(t *testing.T) {
	dir, hash := initRepo(t)
	sub := filepath.Join(dir, "web", "static")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := Detect(sub)
	require.NoError(t, err)
	assert.Equal(t, hash, info.Hash)
}

func TestDetect_DirtyWorktree(t *testing.T) {
	dir, hash := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("changed"), 0o644))

	info, err := Detect(dir)
	require.NoError(t, err)

	assert.True(t, info.Dirty)
	assert.Equal(t, hash[:ShortLen]+"-dirty", info.Short())
}

func TestDetect_NotARepository(t *testing.T) {
	info, err := Detect(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Info{}, info)
	assert.Empty(t, info.Short())
}

func TestDetect_EmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	info, err := Detect(dir)
	require.NoError(t, err)
	assert.Empty(t, info.Short())
}
