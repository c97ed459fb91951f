// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package classify enriches located log statements with the attributes the
// edit, remove, and comment flows need: indentation, comment state,
// enclosing function, and the logged payload.
package classify

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/codelog/pkg/types"
)

// payloadRe captures the trailing argument(s) before the closing ')'.
var payloadRe = regexp.MustCompile(`,\s*([^)]*)\s*\)`)

// Classify derives a ClassifiedEntry for every entry located in source.
// symbols may be nil, in which case function names come from the line
// heuristic alone.
func Classify(source, languageID string, entries []types.LogEntry, symbols []types.DocumentSymbol) []types.ClassifiedEntry {
	if len(entries) == 0 {
		return nil
	}

	idx := NewLineIndex(source)
	token := strings.TrimSpace(CommentToken(languageID))

	out := make([]types.ClassifiedEntry, len(entries))
	for i, e := range entries {
		r := idx.Range(e.Start, e.End)
		lineText := idx.LineText(r.Start.Line)

		out[i] = types.ClassifiedEntry{
			LogEntry:     e,
			Indentation:  lineText[:min(r.Start.Column, len(lineText))],
			FunctionName: FunctionNameAt(symbols, lineText, e.Start),
			Log:          Payload(e),
			IsCommented:  strings.HasPrefix(strings.TrimSpace(lineText), token),
			Range:        r,
		}
	}
	return out
}

// Payload extracts the logged argument(s) from an entry, falling back to
// its preview.
func Payload(e types.LogEntry) string {
	if m := payloadRe.FindStringSubmatch(e.FullText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return e.Preview
}
