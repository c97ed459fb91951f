// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git locates the repository enclosing a workspace and reports
// which files have uncommitted changes.
package git

import (
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoGit is returned when the directory is not inside a git repository.
var ErrNoGit = errors.New("not a git repository")

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
	root string
}

// Open opens the repository containing dir, searching parent directories
// for the .git directory. Returns ErrNoGit if none is found.
func Open(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	return &Repo{repo: r, root: wt.Filesystem.Root()}, nil
}

// Root returns the absolute path of the worktree root.
func (r *Repo) Root() string {
	return r.root
}

// ChangedFiles returns the slash-separated, root-relative paths of files
// that are modified, added, renamed, or untracked. Deleted files are left
// out since there is nothing to scan.
func (r *Repo) ChangedFiles() ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	var files []string
	for path, s := range status {
		if s.Worktree == gogit.Deleted || (s.Staging == gogit.Deleted && s.Worktree == gogit.Unmodified) {
			continue
		}
		if s.Worktree == gogit.Unmodified && s.Staging == gogit.Unmodified {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// ProjectRoot returns the worktree root of the repository containing dir,
// or dir itself when it is not inside a repository.
func ProjectRoot(dir string) string {
	r, err := Open(dir)
	if err != nil {
		return dir
	}
	return r.Root()
}
