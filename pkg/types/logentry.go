// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Position is a zero-based line and byte column inside a document.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Range spans two positions; End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// LogEntry is one located log statement.
type LogEntry struct {
	Start    int    // Byte offset of the log command
	End      int    // Byte offset just past the balancing ')' (exclusive)
	Line     int    // 1-based line of Start
	Preview  string // First 25 characters, trimmed, followed by "..."
	FullText string // Trimmed source[Start:End]
}

// ClassifiedEntry is a LogEntry enriched with the attributes needed by the
// edit, remove, and comment flows.
type ClassifiedEntry struct {
	LogEntry
	Indentation  string // Start-line text before the entry's start column
	FunctionName string // Enclosing function, empty when unknown
	Log          string // Logged payload extracted from FullText
	IsCommented  bool   // Start line begins with the language's comment token
	Range        Range  // Line/column equivalent of Start and End
}
