// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/codelog/internal/classify"
	"github.com/petar-djukic/codelog/internal/document"
	"github.com/petar-djukic/codelog/internal/lang"
	"github.com/petar-djukic/codelog/pkg/codelog"
)

// newInsertCmd creates the "insert" command.
func newInsertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert FILE",
		Short: "Insert a log statement below a line",
		Long: "Insert renders the log template for the file's language and inserts it on the line after --line. " +
			"The logged variable is --selection, else the word at --column, else \"variable\".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, _ := cmd.Flags().GetInt("line")
			column, _ := cmd.Flags().GetInt("column")
			selection, _ := cmd.Flags().GetString("selection")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			r := a.runner()
			doc, err := a.open(r, args[0])
			if err != nil {
				return err
			}

			res, err := r.Insert(cmd.Context(), a.cfg, doc, document.Cursor{
				Line:      line - 1,
				Column:    max(column-1, 0),
				Selection: selection,
			})
			if err != nil {
				return err
			}
			if res.Changed == 0 {
				fmt.Fprintf(a.stdout, "no log template for %s\n", doc.LanguageID)
				return nil
			}
			return a.finish(r, res, dryRun, fmt.Sprintf("inserted log statement after %s:%d", doc.Rel, line))
		},
	}

	cmd.Flags().IntP("line", "l", 0, "1-based line the statement is inserted after (required)")
	cmd.Flags().IntP("column", "c", 1, "1-based column of the cursor on --line")
	cmd.Flags().StringP("selection", "s", "", "Selected text to log")
	cmd.Flags().Bool("dry-run", false, "Print the diff instead of writing the file")
	cmd.MarkFlagRequired("line")

	return cmd
}

// newSnippetCmd creates the "snippet" command.
func newSnippetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Print a rendered log statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			function, _ := cmd.Flags().GetString("function")
			variable, _ := cmd.Flags().GetString("variable")
			line, _ := cmd.Flags().GetInt("line")
			indent, _ := cmd.Flags().GetString("indent")

			languageID := a.v.GetString("language")
			if languageID == "" {
				languageID = lang.ForPath(file)
			}
			if variable == "" {
				variable = classify.DefaultVariableName
			}

			fmt.Fprint(a.stdout, codelog.RenderLogSnippet(a.cfg, indent, file, function, variable, line, languageID))
			return nil
		},
	}

	cmd.Flags().String("file", "", "File name shown in the message")
	cmd.Flags().String("function", "", "Enclosing function name")
	cmd.Flags().String("variable", "", "Variable to log")
	cmd.Flags().Int("line", 1, "Line number shown in the message")
	cmd.Flags().String("indent", "", "Indentation prefix")

	return cmd
}

// finish prints the diff of res in dry-run mode, or writes it and prints msg.
func (a *app) finish(r *document.Runner, res document.Result, dryRun bool, msg string) error {
	if dryRun {
		fmt.Fprint(a.stdout, res.Diff())
		return nil
	}
	if err := r.Write(res); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, msg)
	return nil
}
