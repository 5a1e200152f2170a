// Package project resolves the root directory a rule runs from.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/pkgcheck/internal/domain"
)

// Ensure Locator implements domain.ProjectLocator.
var _ domain.ProjectLocator = (*Locator)(nil)

// Locator finds the project root. With repository detection it is the top
// of the enclosing git worktree, and the directory itself outside a
// repository. Without detection the directory is always the root.
type Locator struct {
	detectRepo bool
}

// NewLocator creates a Locator that climbs to the enclosing git worktree.
func NewLocator() *Locator {
	return &Locator{detectRepo: true}
}

// NewDirLocator creates a Locator that uses the directory as given.
func NewDirLocator() *Locator {
	return &Locator{}
}

// Root returns the absolute project root for dir.
func (l *Locator) Root(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	if !l.detectRepo {
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project root: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project root: %s is not a directory", abs)
		}
		return abs, nil
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}
