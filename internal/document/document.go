// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package document runs log operations against source files: it wires the
// locator, classifier, symbol providers, renderer, and editor together the
// way the CLI uses them.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/petar-djukic/codelog/internal/classify"
	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/editor"
	"github.com/petar-djukic/codelog/internal/lang"
	"github.com/petar-djukic/codelog/internal/locator"
	"github.com/petar-djukic/codelog/internal/log"
	"github.com/petar-djukic/codelog/internal/template"
	"github.com/petar-djukic/codelog/internal/workspace"
	"github.com/petar-djukic/codelog/pkg/types"
)

var (
	// ErrDisabled is returned when the enable setting is off.
	ErrDisabled = errors.New("codelog is disabled")

	// ErrLineOutOfRange is returned for an insertion line outside the file.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrNoCommand is returned by Edit when no replacement command is given.
	ErrNoCommand = errors.New("no new log command provided")
)

// Deps holds injected dependencies for the runner.
type Deps struct {
	Fs      afero.Fs
	Root    string               // Project root used for relative file names
	Symbols types.SymbolProvider // Nil falls back to the line heuristic
	Logger  log.Logger
}

// Runner executes log operations on documents.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return &Runner{deps: deps}
}

// Document is a loaded source file.
type Document struct {
	Path       string // Path as given
	Rel        string // Path relative to the project root
	LanguageID string
	Source     string
}

// Open reads path. An empty languageID is detected from the extension.
func (r *Runner) Open(path, languageID string) (*Document, error) {
	src, err := editor.ReadFile(r.deps.Fs, path)
	if err != nil {
		return nil, err
	}
	if languageID == "" {
		languageID = lang.ForPath(path)
	}

	rel := filepath.ToSlash(path)
	if r.deps.Root != "" {
		abs, err := filepath.Abs(path)
		if err == nil {
			rel = workspace.RelativePath(r.deps.Root, abs)
		}
	}
	return &Document{Path: path, Rel: rel, LanguageID: languageID, Source: src}, nil
}

// symbols returns the document's symbol tree. Provider failures are logged
// and treated as an empty tree.
func (r *Runner) symbols(ctx context.Context, doc *Document) []types.DocumentSymbol {
	if r.deps.Symbols == nil {
		return nil
	}
	syms, err := r.deps.Symbols.DocumentSymbols(ctx, doc.LanguageID, []byte(doc.Source))
	if err != nil {
		r.deps.Logger.Warn("symbol lookup failed", "path", doc.Path, "language", doc.LanguageID, "error", err)
		return nil
	}
	return syms
}

// Entries locates and classifies every log statement of doc.
func (r *Runner) Entries(ctx context.Context, cfg config.Config, doc *Document) []types.ClassifiedEntry {
	found := locator.FindLogEntries(cfg, doc.Source, doc.LanguageID)
	if len(found) == 0 {
		return nil
	}
	r.deps.Logger.Debug("located log statements", "path", doc.Path, "count", len(found))
	return classify.Classify(doc.Source, doc.LanguageID, found, r.symbols(ctx, doc))
}

// Cursor describes where a snippet is requested.
type Cursor struct {
	Line      int    // 0-based line of the cursor
	Column    int    // Byte column of the cursor
	Selection string // Selected text, may be empty
}

// Result is the outcome of an operation on one document.
type Result struct {
	Path    string
	Before  string
	After   string
	Changed int // Statements inserted or modified
}

// Modified reports whether the operation changed the document.
func (res Result) Modified() bool {
	return res.Before != res.After
}

// Diff renders the change as a line diff.
func (res Result) Diff() string {
	return editor.Diff(res.Path, res.Before, res.After)
}

// Insert renders a snippet for the cursor and inserts it below the cursor
// line.
func (r *Runner) Insert(ctx context.Context, cfg config.Config, doc *Document, cur Cursor) (Result, error) {
	if !cfg.Enable {
		return Result{}, ErrDisabled
	}

	idx := classify.NewLineIndex(doc.Source)
	if cur.Line < 0 || cur.Line >= idx.LineCount() {
		return Result{}, fmt.Errorf("%w: %d (file has %d lines)", ErrLineOutOfRange, cur.Line+1, idx.LineCount())
	}

	lineText := idx.LineText(cur.Line)
	offset := idx.Offset(types.Position{Line: cur.Line, Column: cur.Column})

	snippet := template.Render(cfg, template.Request{
		Indent:       classify.Indent(lineText),
		FileName:     doc.Rel,
		FunctionName: classify.FunctionNameAt(r.symbols(ctx, doc), lineText, offset),
		VariableName: classify.VariableName(cur.Selection, lineText, cur.Column),
		LineNumber:   cur.Line + 1,
		LanguageID:   doc.LanguageID,
	})
	if snippet == "" {
		r.deps.Logger.Warn("no template for language", "language", doc.LanguageID)
		return Result{Path: doc.Path, Before: doc.Source, After: doc.Source}, nil
	}

	return Result{
		Path:    doc.Path,
		Before:  doc.Source,
		After:   editor.InsertSnippet(doc.Source, cur.Line, snippet),
		Changed: 1,
	}, nil
}

// Op is a bulk operation on located statements.
type Op int

const (
	OpComment Op = iota
	OpUncomment
	OpRemove
	OpEdit
)

func (op Op) String() string {
	switch op {
	case OpComment:
		return "comment"
	case OpUncomment:
		return "uncomment"
	case OpRemove:
		return "remove"
	case OpEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Request selects the statements an operation applies to.
type Request struct {
	Op      Op
	Lines   []int  // 1-based start lines to restrict to; empty selects all
	Command string // Replacement command for OpEdit
}

// Apply runs req against doc.
func (r *Runner) Apply(ctx context.Context, cfg config.Config, doc *Document, req Request) (Result, error) {
	if req.Op == OpEdit && req.Command == "" {
		return Result{}, ErrNoCommand
	}

	entries := Select(r.Entries(ctx, cfg, doc), req.Lines)
	token := classify.CommentToken(doc.LanguageID)

	var edits []editor.Edit
	switch req.Op {
	case OpComment:
		edits = editor.CommentEdits(entries, token)
	case OpUncomment:
		edits = editor.UncommentEdits(doc.Source, entries, token)
	case OpRemove:
		edits = editor.RemoveEdits(doc.Source, entries)
	case OpEdit:
		edits = editor.ReplaceCommandEdits(doc.Source, entries, req.Command)
	default:
		return Result{}, fmt.Errorf("unknown operation %d", req.Op)
	}

	after, applied := editor.Apply(doc.Source, edits)
	r.deps.Logger.Info("applied operation", "op", req.Op.String(), "path", doc.Path, "statements", applied)
	return Result{Path: doc.Path, Before: doc.Source, After: after, Changed: applied}, nil
}

// Write persists res when it modified the document.
func (r *Runner) Write(res Result) error {
	if !res.Modified() {
		return nil
	}
	return editor.WriteFile(r.deps.Fs, res.Path, res.After)
}

// Select keeps the entries starting on one of lines (1-based). An empty
// lines list keeps everything.
func Select(entries []types.ClassifiedEntry, lines []int) []types.ClassifiedEntry {
	if len(lines) == 0 {
		return entries
	}
	var out []types.ClassifiedEntry
	for _, e := range entries {
		if slices.Contains(lines, e.Line) {
			out = append(out, e)
		}
	}
	return out
}
