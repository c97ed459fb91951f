// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editor rewrites source text around located log statements:
// inserting snippets, removing, commenting, uncommenting, and renaming the
// log command. Operations are pure string transforms; WriteFile persists
// the result atomically.
package editor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/petar-djukic/codelog/internal/classify"
	"github.com/petar-djukic/codelog/pkg/types"
)

// Edit replaces Text[Start:End] of a document. Start == End inserts.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Apply applies edits to source from the highest offset down so earlier
// offsets stay valid. Edits that fall outside source or overlap an edit
// already applied are skipped. It returns the new text and the number of
// edits applied.
func Apply(source string, edits []Edit) (string, int) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start > sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	floor := len(source)
	applied := 0
	for _, e := range sorted {
		if e.Start < 0 || e.Start > e.End || e.End > floor {
			continue
		}
		source = source[:e.Start] + e.Text + source[e.End:]
		floor = e.Start
		applied++
	}
	return source, applied
}

// InsertSnippet inserts snippet at the start of the line following
// afterLine (0-based). When afterLine is the last line the snippet is
// appended, adding a line break first if source lacks one.
func InsertSnippet(source string, afterLine int, snippet string) string {
	idx := classify.NewLineIndex(source)
	at := idx.LineStart(max(afterLine+1, 0))
	if at == len(source) && source != "" && !strings.HasSuffix(source, "\n") {
		snippet = "\n" + snippet
	}
	return source[:at] + snippet + source[at:]
}

// RemoveEdits deletes each entry along with a directly following ";".
// When nothing but whitespace surrounds the entry (or its line is commented
// out) the whole lines it spans are removed, line break included.
func RemoveEdits(source string, entries []types.ClassifiedEntry) []Edit {
	idx := classify.NewLineIndex(source)
	edits := make([]Edit, 0, len(entries))
	for _, e := range entries {
		first, last := e.Range.Start.Line, e.Range.End.Line
		end := e.End
		if end < len(source) && source[end] == ';' {
			end++
		}

		lineEnd := idx.LineEnd(last)
		leading := e.IsCommented || strings.TrimSpace(e.Indentation) == ""
		trailing := end <= lineEnd && strings.TrimSpace(source[end:lineEnd]) == ""
		if leading && trailing {
			edits = append(edits, Edit{Start: idx.LineStart(first), End: idx.LineStart(last + 1)})
			continue
		}
		edits = append(edits, Edit{Start: e.Start, End: end})
	}
	return edits
}

// CommentEdits prefixes every uncommented entry with token.
func CommentEdits(entries []types.ClassifiedEntry, token string) []Edit {
	var edits []Edit
	for _, e := range entries {
		if e.IsCommented {
			continue
		}
		edits = append(edits, Edit{Start: e.Start, End: e.Start, Text: token})
	}
	return edits
}

// UncommentEdits removes token from commented entries. The token is only
// removed when it sits right after the line's indentation; a token without
// its trailing space is accepted too.
func UncommentEdits(source string, entries []types.ClassifiedEntry, token string) []Edit {
	idx := classify.NewLineIndex(source)
	bare := strings.TrimSpace(token)

	var edits []Edit
	for _, e := range entries {
		if !e.IsCommented {
			continue
		}
		line := idx.LineText(e.Range.Start.Line)
		at := idx.LineStart(e.Range.Start.Line) + len(classify.Indent(line))
		rest := line[len(classify.Indent(line)):]

		switch {
		case strings.HasPrefix(rest, token):
			edits = append(edits, Edit{Start: at, End: at + len(token)})
		case bare != "" && strings.HasPrefix(rest, bare):
			edits = append(edits, Edit{Start: at, End: at + len(bare)})
		}
	}
	return edits
}

// commandRe matches the command identifier at the start of a statement.
var commandRe = regexp.MustCompile(`^(\s*)([a-zA-Z0-9_.]+)(\s*\()`)

// ReplaceCommandEdits renames the log command of every entry to command.
// Entries whose command is not a dotted identifier followed by "(" are left
// alone.
func ReplaceCommandEdits(source string, entries []types.ClassifiedEntry, command string) []Edit {
	var edits []Edit
	for _, e := range entries {
		if e.Start < 0 || e.End > len(source) || e.Start > e.End {
			continue
		}
		loc := commandRe.FindStringSubmatchIndex(source[e.Start:e.End])
		if loc == nil {
			continue
		}
		edits = append(edits, Edit{Start: e.Start + loc[4], End: e.Start + loc[5], Text: command})
	}
	return edits
}

// Remove deletes entries from source.
func Remove(source string, entries []types.ClassifiedEntry) string {
	out, _ := Apply(source, RemoveEdits(source, entries))
	return out
}

// Comment comments out entries with token.
func Comment(source string, entries []types.ClassifiedEntry, token string) string {
	out, _ := Apply(source, CommentEdits(entries, token))
	return out
}

// Uncomment strips token from commented entries.
func Uncomment(source string, entries []types.ClassifiedEntry, token string) string {
	out, _ := Apply(source, UncommentEdits(source, entries, token))
	return out
}

// ReplaceCommand renames the log command of entries.
func ReplaceCommand(source string, entries []types.ClassifiedEntry, command string) string {
	out, _ := Apply(source, ReplaceCommandEdits(source, entries, command))
	return out
}
