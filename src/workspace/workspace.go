// Package workspace locates the project the configuration is written into and
// performs the file writes.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Root returns the top of the git worktree containing dir. Outside a
// repository dir itself is returned.
func Root(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree.
		return abs, nil
	}
	return wt.Filesystem.Root(), nil
}

// Dirty reports whether path has changes git would lose if it were
// overwritten: staged or unstaged modifications, or an untracked file.
// Paths outside a repository are never dirty.
func Dirty(path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, nil
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return false, err
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("reading worktree status: %w", err)
	}

	s, ok := status[filepath.ToSlash(rel)]
	if !ok {
		return false, nil
	}
	return s.Worktree != git.Unmodified || s.Staging != git.Unmodified, nil
}

// Exists reports whether a regular file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// WriteFile atomically replaces dir/name with content. The data goes to a
// temporary file in the same directory first, so a failed write never leaves
// a partial file behind.
func WriteFile(dir, name string, content []byte) (string, error) {
	target := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("replacing %s: %w", name, err)
	}
	return target, nil
}
