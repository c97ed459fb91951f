// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"regexp"
	"strings"
)

// DefaultVariableName is logged when there is no selection and no word
// under the cursor.
const DefaultVariableName = "variable"

var wordRe = regexp.MustCompile(`[\w$]+`)

// Indent returns the leading whitespace of lineText.
func Indent(lineText string) string {
	return lineText[:len(lineText)-len(strings.TrimLeft(lineText, " \t"))]
}

// WordAt returns the identifier-like word touching byte column col of
// lineText, or "".
func WordAt(lineText string, col int) string {
	for _, loc := range wordRe.FindAllStringIndex(lineText, -1) {
		if col >= loc[0] && col <= loc[1] {
			return lineText[loc[0]:loc[1]]
		}
	}
	return ""
}

// VariableName picks what to log: the trimmed selection, else the word under
// the cursor, else DefaultVariableName.
func VariableName(selection, lineText string, col int) string {
	if s := strings.TrimSpace(selection); s != "" {
		return s
	}
	if w := WordAt(lineText, col); w != "" {
		return w
	}
	return DefaultVariableName
}
