// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/codelog/internal/document"
)

// newOpCmd creates the "comment", "uncomment", and "remove" commands.
func newOpCmd(a *app, op document.Op, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.String() + " FILE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := cmd.Flags().GetIntSlice("line")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return a.applyAll(cmd, args, document.Request{Op: op, Lines: lines}, dryRun)
		},
	}
	addSelectionFlags(cmd)
	return cmd
}

// newEditCmd creates the "edit" command.
func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit FILE...",
		Short: "Replace the log command of log statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := cmd.Flags().GetIntSlice("line")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			command, _ := cmd.Flags().GetString("command")
			return a.applyAll(cmd, args, document.Request{Op: document.OpEdit, Lines: lines, Command: command}, dryRun)
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().String("command", "", "New log command, e.g. console.debug (required)")
	cmd.MarkFlagRequired("command")
	return cmd
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceP("line", "l", nil, "Only statements starting on these 1-based lines (repeatable)")
	cmd.Flags().Bool("dry-run", false, "Print the diff instead of writing the files")
}

// applyAll runs req on every file in paths and reports one line per file.
func (a *app) applyAll(cmd *cobra.Command, paths []string, req document.Request, dryRun bool) error {
	r := a.runner()
	for _, path := range paths {
		doc, err := a.open(r, path)
		if err != nil {
			return err
		}
		res, err := r.Apply(cmd.Context(), a.cfg, doc, req)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("%s: %d log statements (%s)", doc.Rel, res.Changed, req.Op)
		if err := a.finish(r, res, dryRun, msg); err != nil {
			return err
		}
	}
	return nil
}
