// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package workspace lists source files under a project root and scans them
// for log statements.
package workspace

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/spf13/afero"

	"github.com/petar-djukic/codelog/internal/config"
)

// Options controls which files ListFiles returns.
type Options struct {
	Include   []string // Gitignore-style patterns a file must match; empty matches all
	Exclude   []string // Gitignore-style patterns that drop files and directories
	MaxDepth  int      // Deepest directory level searched; 0 is unlimited
	Hidden    bool     // Include dot files and dot directories
	Gitignore bool     // Honor .gitignore files found while walking
}

// OptionsFrom converts the files section of a Config.
func OptionsFrom(f config.Files) Options {
	return Options{
		Include:   f.IncludedFilePatterns,
		Exclude:   f.ExcludedFilePatterns,
		MaxDepth:  f.MaxSearchRecursionDepth,
		Hidden:    f.SupportsHiddenFiles,
		Gitignore: f.PreserveGitignoreSettings,
	}
}

// ListFiles walks root and returns the slash-separated, root-relative paths
// of matching files in lexical order.
func ListFiles(fs afero.Fs, root string, opts Options) ([]string, error) {
	include := gitignore.NewMatcher(parsePatterns(opts.Include, nil))
	exclude := gitignore.NewMatcher(parsePatterns(opts.Exclude, nil))
	var ignored []gitignore.Pattern

	var files []string
	err := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil // Skip entries we cannot stat.
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		var parts []string
		if rel != "." {
			parts = strings.Split(filepath.ToSlash(rel), "/")
		}

		if info.IsDir() {
			if len(parts) > 0 {
				name := parts[len(parts)-1]
				if name == ".git" || (!opts.Hidden && isHidden(name)) {
					return filepath.SkipDir
				}
				if exclude.Match(parts, true) || gitignore.NewMatcher(ignored).Match(parts, true) {
					return filepath.SkipDir
				}
				if opts.MaxDepth > 0 && len(parts) >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			if opts.Gitignore {
				ps, err := readGitignore(fs, filepath.Join(p, ".gitignore"), parts)
				if err != nil {
					return err
				}
				ignored = append(ignored, ps...)
			}
			return nil
		}

		if !opts.Hidden && isHidden(parts[len(parts)-1]) {
			return nil
		}
		if len(opts.Include) > 0 && !include.Match(parts, false) {
			return nil
		}
		if exclude.Match(parts, false) || gitignore.NewMatcher(ignored).Match(parts, false) {
			return nil
		}
		files = append(files, path.Join(parts...))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func parsePatterns(lines []string, domain []string) []gitignore.Pattern {
	var ps []gitignore.Pattern
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	return ps
}

// readGitignore parses the .gitignore at name, scoping its patterns to
// domain. A missing file yields no patterns.
func readGitignore(fs afero.Fs, name string, domain []string) ([]gitignore.Pattern, error) {
	f, err := fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return parsePatterns(lines, domain), nil
}

// RelativePath returns p relative to root with forward slashes, or p's base
// name when it is not below root.
func RelativePath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(p)
	}
	return filepath.ToSlash(rel)
}

// FileLabel names a listed file for display: its base name, followed by
// its directory or "(root)" when withDir is set.
func FileLabel(rel string, withDir bool) string {
	name := path.Base(rel)
	if !withDir {
		return name
	}
	dir := path.Dir(rel)
	if dir == "." {
		return name + " (root)"
	}
	return name + " (" + dir + ")"
}
