// Package revision reads the build revision shown in the page footer from the
// git repository the binary is run in.
package revision

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ShortLen is the number of hash characters kept.
const ShortLen = 7

// Info describes the checked-out commit.
type Info struct {
	Hash   string
	Branch string
	Dirty  bool
}

// Short returns the abbreviated hash with a "-dirty" suffix when the worktree
// has uncommitted changes.
func (i Info) Short() string {
	if i.Hash == "" {
		return ""
	}
	s := i.Hash
	if len(s) > ShortLen {
		s = s[:ShortLen]
	}
	if i.Dirty {
		s += "-dirty"
	}
	return s
}

// Detect opens the repository containing dir (searching parent directories)
// and reports its HEAD. A directory outside any repository yields a zero Info
// and no error.
func Detect(dir string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Info{}, nil
	}
	if err != nil {
		return Info{}, fmt.Errorf("revision: opening repository: %w", err)
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Freshly initialised, no commits yet.
		return Info{}, nil
	}
	if err != nil {
		return Info{}, fmt.Errorf("revision: reading HEAD: %w", err)
	}

	info := Info{Hash: head.Hash().String()}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return info, nil
	}
	if err != nil {
		return Info{}, fmt.Errorf("revision: opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return Info{}, fmt.Errorf("revision: reading status: %w", err)
	}
	info.Dirty = !status.IsClean()

	return info, nil
}
