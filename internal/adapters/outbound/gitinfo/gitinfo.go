package gitinfo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ShortLen is the length of the abbreviated hashes Revision returns.
const ShortLen = 12

// GitInfoAdapter stamps rule corpora with the commit they were loaded from.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// Revision returns the abbreviated hash of the most recent commit that
// touched path. Edits to files outside path leave the revision unchanged,
// so cached scores survive unrelated commits.
func (g *GitInfoAdapter) Revision(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("opening worktree: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("locating %s in worktree: %w", path, err)
	}
	prefix := filepath.ToSlash(rel)

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	opts := &git.LogOptions{From: head.Hash()}
	if prefix != "." {
		opts.PathFilter = func(p string) bool {
			return p == prefix || strings.HasPrefix(p, prefix+"/")
		}
	}
	iter, err := repo.Log(opts)
	if err != nil {
		return "", fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	c, err := iter.Next()
	if err != nil {
		return "", fmt.Errorf("no commit touches %s: %w", prefix, err)
	}
	return short(c), nil
}

func open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%s is not inside a git repository: %w", path, err)
	}
	return repo, err
}

func short(c *object.Commit) string {
	return c.Hash.String()[:ShortLen]
}
