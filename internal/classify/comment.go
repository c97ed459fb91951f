// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

// DefaultCommentToken is used for languages without a table entry.
const DefaultCommentToken = "// "

// commentTokens maps language identifiers to their line comment token,
// including the trailing space inserted when commenting a statement.
var commentTokens = map[string]string{
	"javascript":  "// ",
	"typescript":  "// ",
	"java":        "// ",
	"csharp":      "// ",
	"cpp":         "// ",
	"go":          "// ",
	"php":         "// ",
	"dart":        "// ",
	"kotlin":      "// ",
	"swift":       "// ",
	"scala":       "// ",
	"python":      "# ",
	"ruby":        "# ",
	"perl":        "# ",
	"r":           "# ",
	"elixir":      "# ",
	"shellscript": "# ",
	"lua":         "-- ",
	"haskell":     "-- ",
}

// CommentToken returns the line comment token for languageID, falling back
// to DefaultCommentToken.
func CommentToken(languageID string) string {
	if tok, ok := commentTokens[languageID]; ok {
		return tok
	}
	return DefaultCommentToken
}
