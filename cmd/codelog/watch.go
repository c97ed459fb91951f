// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/workspace"
)

// newWatchCmd creates the "watch" command.
func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Report log statement counts as project files change",
		Long: "Watch prints the log statement count of every project file that is written, " +
			"and reloads the config file when it changes. It runs until interrupted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context())
		},
	}
}

func (a *app) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := a.watchFiles(ctx, w); err != nil {
		return err
	}

	// a.cfg is guarded by mu from here on.
	var mu sync.Mutex
	if a.v.ConfigFileUsed() != "" {
		config.Watch(a.v, func(cfg config.Config, err error) {
			if err != nil {
				a.logger.Warn("keeping previous config", "error", err)
				return
			}
			mu.Lock()
			a.cfg = cfg
			mu.Unlock()
			fmt.Fprintln(a.stdout, "config reloaded")
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", "error", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			mu.Lock()
			err := a.rescan(ctx, ev.Name)
			mu.Unlock()
			if err != nil && ctx.Err() == nil {
				a.logger.Warn("rescan failed", "path", ev.Name, "error", err)
			}
		}
	}
}

// watchFiles adds the directories of every project file to w and reports the
// initial log statement count.
func (a *app) watchFiles(ctx context.Context, w *fsnotify.Watcher) error {
	files, err := a.projectFiles(false)
	if err != nil {
		return err
	}
	for _, dir := range watchDirs(a.root, files) {
		if err := w.Add(dir); err != nil {
			a.logger.Warn("cannot watch directory", "dir", dir, "error", err)
		}
	}

	hits, err := a.scan(ctx, files, workspace.DefaultConcurrency)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "watching %d files, %d log statements\n", len(files), workspace.TotalHits(hits))
	return nil
}

// rescan reports the log statement count of the file at path when it is a
// listed project file.
func (a *app) rescan(ctx context.Context, path string) error {
	files, err := a.projectFiles(false)
	if err != nil {
		return err
	}
	rel := workspace.RelativePath(a.root, path)
	if !slices.Contains(files, rel) {
		a.logger.Debug("ignoring change", "path", rel)
		return nil
	}

	hits, err := a.scan(ctx, []string{rel}, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: %d log statements\n", workspace.FileLabel(rel, a.cfg.Files.IncludeFilePath), workspace.TotalHits(hits))
	return nil
}

// watchDirs returns the root and every directory holding one of files.
func watchDirs(root string, files []string) []string {
	dirs := []string{root}
	for _, f := range files {
		dir := filepath.Join(root, filepath.Dir(filepath.FromSlash(f)))
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	slices.Sort(dirs)
	return dirs
}
