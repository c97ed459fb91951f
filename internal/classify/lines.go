// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"sort"
	"strings"

	"github.com/petar-djukic/codelog/pkg/types"
)

// LineIndex converts between byte offsets and line/column positions.
type LineIndex struct {
	source string
	starts []int // Byte offset of the first character of each line
}

// NewLineIndex indexes the line starts of source.
func NewLineIndex(source string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{source: source, starts: starts}
}

// LineCount returns the number of lines, counting a trailing empty line.
func (x *LineIndex) LineCount() int {
	return len(x.starts)
}

// Position returns the zero-based line and byte column of offset. Offsets
// outside the source are clamped.
func (x *LineIndex) Position(offset int) types.Position {
	offset = max(0, min(offset, len(x.source)))
	line := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset }) - 1
	return types.Position{Line: line, Column: offset - x.starts[line]}
}

// Offset is the inverse of Position. Columns past the end of the line are
// clamped to the line end.
func (x *LineIndex) Offset(p types.Position) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(x.starts) {
		return len(x.source)
	}
	return min(x.starts[p.Line]+max(p.Column, 0), x.LineEnd(p.Line))
}

// LineStart returns the offset of the first character of line.
func (x *LineIndex) LineStart(line int) int {
	if line >= len(x.starts) {
		return len(x.source)
	}
	return x.starts[max(line, 0)]
}

// LineEnd returns the offset of the newline ending line, or the source
// length for the last line.
func (x *LineIndex) LineEnd(line int) int {
	if line+1 < len(x.starts) {
		return x.starts[line+1] - 1
	}
	return len(x.source)
}

// LineText returns line without its terminating newline or carriage return.
func (x *LineIndex) LineText(line int) string {
	if line < 0 || line >= len(x.starts) {
		return ""
	}
	return strings.TrimSuffix(x.source[x.starts[line]:x.LineEnd(line)], "\r")
}

// Range converts a byte span into a line/column range.
func (x *LineIndex) Range(start, end int) types.Range {
	return types.Range{Start: x.Position(start), End: x.Position(end)}
}
