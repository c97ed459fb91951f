// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package locator finds log statements in source text.
package locator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/template"
	"github.com/petar-djukic/codelog/pkg/types"
)

// previewLength is the number of characters shown in an entry preview.
const previewLength = 25

// Pattern compiles the call pattern for command: the literal command,
// optional whitespace, and an opening parenthesis. Every regexp
// metacharacter in command is escaped, so "std::cout" or
// "Console.WriteLine" match literally.
func Pattern(command string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(command) + `\s*\(`)
}

// FindLogEntries returns every call of the resolved log command in source,
// in ascending start order. The command is resolved with the same rules the
// snippet renderer uses.
func FindLogEntries(cfg config.Config, source, languageID string) []types.LogEntry {
	return FindCommand(source, template.Command(cfg, languageID))
}

// FindCommand returns every call of command in source. Matching resumes
// right after each matched "command(" so calls nested inside another
// call's arguments are reported too.
func FindCommand(source, command string) []types.LogEntry {
	if command == "" || source == "" {
		return nil
	}

	var entries []types.LogEntry
	for _, loc := range Pattern(command).FindAllStringIndex(source, -1) {
		start := loc[0]
		end := findClosingParenthesis(source, start)
		entries = append(entries, types.LogEntry{
			Start:    start,
			End:      end,
			Line:     countLines(source, start),
			Preview:  preview(source[start:]),
			FullText: strings.TrimSpace(source[start:end]),
		})
	}
	return entries
}

// findClosingParenthesis scans from start and returns the offset just past
// the ')' that brings the parenthesis depth back to zero. Unbalanced input
// extends to the end of source.
func findClosingParenthesis(source string, start int) int {
	depth := 0
	for i := start; i < len(source); i++ {
		switch source[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(source)
}

// preview returns the first previewLength characters of s, trimmed, with
// "..." appended unconditionally.
func preview(s string) string {
	n := 0
	for i := 0; i < previewLength && n < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	return strings.TrimSpace(s[:n]) + "..."
}

// countLines returns the number of newlines before a byte offset, plus 1
// (for 1-based line numbering).
func countLines(s string, offset int) int {
	return strings.Count(s[:offset], "\n") + 1
}
