// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package workspace

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/petar-djukic/codelog/internal/locator"
	"github.com/petar-djukic/codelog/internal/log"
)

// DefaultConcurrency bounds how many files are scanned at once.
const DefaultConcurrency = 2

// Hit is one line containing a log call.
type Hit struct {
	Line int    // 1-based line number
	Text string // Trimmed line text
}

// FileHits holds the hits of one file.
type FileHits struct {
	Path  string // Root-relative, slash-separated path
	Label string // Display name, see FileLabel
	Hits  []Hit
}

// Scanner scans workspace files line by line for calls of a log command.
type Scanner struct {
	Fs          afero.Fs
	Root        string
	Concurrency int  // Defaults to DefaultConcurrency when zero
	WithDir     bool // Label files with their directory
	Logger      log.Logger
}

// Scan reads files (root-relative) and returns those with at least one
// call of command, sorted by path. Files that cannot be read are logged and
// skipped. The returned error is non-nil only when ctx ends early.
func (s *Scanner) Scan(ctx context.Context, files []string, command string) ([]FileHits, error) {
	re := locator.Pattern(command)
	logger := s.logger()

	n := s.Concurrency
	if n <= 0 {
		n = DefaultConcurrency
	}
	p := pool.NewWithResults[*FileHits]().WithContext(ctx).WithMaxGoroutines(n)

	for _, rel := range files {
		p.Go(func(ctx context.Context) (*FileHits, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			data, err := afero.ReadFile(s.Fs, filepath.Join(s.Root, filepath.FromSlash(rel)))
			if err != nil {
				logger.Warn("skipping unreadable file", "path", rel, "error", err)
				return nil, nil
			}
			hits := scanLines(data, re)
			logger.Debug("scanned file", "path", rel, "hits", len(hits))
			if len(hits) == 0 {
				return nil, nil
			}
			return &FileHits{Path: rel, Label: FileLabel(rel, s.WithDir), Hits: hits}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	out := make([]FileHits, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (s *Scanner) logger() log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// scanLines tests every line against re once, so a line with two calls is
// a single hit.
func scanLines(data []byte, re *regexp.Regexp) []Hit {
	var hits []Hit
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if re.Match(sc.Bytes()) {
			hits = append(hits, Hit{Line: line, Text: strings.TrimSpace(sc.Text())})
		}
	}
	return hits
}

// TotalHits counts hits across files.
func TotalHits(files []FileHits) int {
	n := 0
	for _, f := range files {
		n += len(f.Hits)
	}
	return n
}
