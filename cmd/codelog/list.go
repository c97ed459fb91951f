// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/petar-djukic/codelog/internal/git"
	"github.com/petar-djukic/codelog/internal/highlight"
	"github.com/petar-djukic/codelog/internal/workspace"
	"github.com/petar-djukic/codelog/pkg/codelog"
)

// newListCmd creates the "list" command.
func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List log statements across the project",
		Long: "List scans every project file matched by the files settings for calls of the log command " +
			"resolved for the default language (or --language).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, _ := cmd.Flags().GetBool("changed")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			files, err := a.projectFiles(changed)
			if err != nil {
				return err
			}
			hits, err := a.scan(cmd.Context(), files, concurrency)
			if err != nil {
				return err
			}

			for _, f := range hits {
				fmt.Fprintf(a.stdout, "%s [%d]\n", f.Label, len(f.Hits))
				for _, h := range f.Hits {
					fmt.Fprintf(a.stdout, "  %d: %s\n", h.Line, h.Text)
				}
			}
			fmt.Fprintf(a.stdout, "%d log statements in %d files\n", workspace.TotalHits(hits), len(hits))
			return nil
		},
	}

	cmd.Flags().Bool("changed", false, "Only scan files changed in the git worktree")
	cmd.Flags().Int("concurrency", workspace.DefaultConcurrency, "Files scanned in parallel")

	return cmd
}

// newFilesCmd creates the "files" command.
func newFilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the project files that would be scanned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.projectFiles(false)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(a.stdout, f)
			}
			return nil
		},
	}
}

// projectFiles lists the files under the project root, optionally narrowed
// to those the git worktree reports as changed.
func (a *app) projectFiles(changedOnly bool) ([]string, error) {
	files, err := workspace.ListFiles(a.fs, a.root, workspace.OptionsFrom(a.cfg.Files))
	if err != nil {
		return nil, err
	}
	a.logger.Info("listed project files", "root", a.root, "count", len(files))
	if !changedOnly {
		return files, nil
	}

	repo, err := git.Open(a.root)
	if err != nil {
		return nil, err
	}
	changed, err := repo.ChangedFiles()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(files, func(f string) bool {
		_, found := slices.BinarySearch(changed, f)
		return !found
	}), nil
}

func (a *app) scan(ctx context.Context, files []string, concurrency int) ([]workspace.FileHits, error) {
	languageID := a.v.GetString("language")
	if languageID == "" {
		languageID = a.cfg.DefaultLanguage
	}

	s := &workspace.Scanner{
		Fs:          a.fs,
		Root:        a.root,
		Concurrency: concurrency,
		WithDir:     a.cfg.Files.IncludeFilePath,
		Logger:      a.logger,
	}
	return s.Scan(ctx, files, codelog.ResolvedLogCommand(a.cfg, languageID))
}

// newEntriesCmd creates the "entries" command.
func newEntriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entries FILE",
		Short: "Show the log statements of a file with their enclosing functions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.runner()
			doc, err := a.open(r, args[0])
			if err != nil {
				return err
			}

			for _, e := range r.Entries(cmd.Context(), a.cfg, doc) {
				fn := e.FunctionName
				if fn == "" {
					fn = "-"
				}
				state := "active"
				if e.IsCommented {
					state = "commented"
				}
				fmt.Fprintf(a.stdout, "%s:%s\t%s\t%s\t%s\n", doc.Rel, e.Range.Start, fn, state, e.Log)
			}
			return nil
		},
	}
}

// newHighlightCmd creates the "highlight" command.
func newHighlightCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print a file with its log statements highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			color, _ := cmd.Flags().GetString("color")
			style, _ := cmd.Flags().GetString("style")
			if color == "" {
				color = a.cfg.HighlightColor
			}
			if style == "" {
				style = a.cfg.HighlightStyle
			}

			r := a.runner()
			doc, err := a.open(r, args[0])
			if err != nil {
				return err
			}

			h := highlight.NewWithRenderer(lipgloss.NewRenderer(a.stdout), color, style)
			decs := h.Decorations(r.Entries(cmd.Context(), a.cfg, doc))
			for _, l := range h.RenderLines(doc.Source, decs) {
				if all || l.Decorated {
					fmt.Fprintf(a.stdout, "%5d  %s\n", l.Number, l.Text)
				}
			}
			if !all {
				for _, d := range decs {
					fmt.Fprintf(a.stdout, "%s  %s\n", d.Range.Start, d.Hover)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Print every line, not only highlighted ones")
	cmd.Flags().String("color", "", "Highlight color (default from config)")
	cmd.Flags().String("style", "", "Highlight style: solid, double, dotted, dashed, wavy")

	return cmd
}
