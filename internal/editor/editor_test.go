// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codelog/internal/classify"
	"github.com/petar-djukic/codelog/internal/locator"
	"github.com/petar-djukic/codelog/pkg/types"
)

const sample = `function f() {
  console.log("a", a);
  const y = 1; console.log(y);
  // console.log("old");
  return y;
}
`

func entriesOf(source, languageID, command string) []types.ClassifiedEntry {
	return classify.Classify(source, languageID, locator.FindCommand(source, command), nil)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		edits       []Edit
		want        string
		wantApplied int
	}{
		{
			name:        "applied from last to first",
			source:      "abcdef",
			edits:       []Edit{{Start: 0, End: 1, Text: "A"}, {Start: 4, End: 6, Text: "EF!"}},
			want:        "AbcdEF!",
			wantApplied: 2,
		},
		{
			name:        "insertions",
			source:      "ab",
			edits:       []Edit{{Start: 1, End: 1, Text: "-"}, {Start: 2, End: 2, Text: "."}},
			want:        "a-b.",
			wantApplied: 2,
		},
		{
			name:        "overlapping edit is skipped",
			source:      "abcdef",
			edits:       []Edit{{Start: 1, End: 4}, {Start: 3, End: 5, Text: "X"}},
			want:        "abcXf",
			wantApplied: 1,
		},
		{
			name:        "out of range edit is skipped",
			source:      "abc",
			edits:       []Edit{{Start: 2, End: 9}, {Start: -1, End: 0}, {Start: 2, End: 1}},
			want:        "abc",
			wantApplied: 0,
		},
		{
			name:   "no edits",
			source: "abc",
			want:   "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := Apply(tt.source, tt.edits)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantApplied, applied)
		})
	}
}

func TestInsertSnippet(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		afterLine int
		want      string
	}{
		{"middle line", "a\nb\n", 0, "a\nX\nb\n"},
		{"after last line with newline", "a\nb\n", 1, "a\nb\nX\n"},
		{"after last line without newline", "a\nb", 1, "a\nb\nX\n"},
		{"past the end", "a\n", 7, "a\nX\n"},
		{"empty document", "", 0, "X\n"},
		{"negative line inserts at top", "a\n", -5, "X\na\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertSnippet(tt.source, tt.afterLine, "X\n"))
		})
	}
}

func TestRemove(t *testing.T) {
	got := Remove(sample, entriesOf(sample, "javascript", "console.log"))
	assert.Equal(t, "function f() {\n  const y = 1; \n  return y;\n}\n", got)
}

func TestRemove_MultiLineStatement(t *testing.T) {
	src := "a();\nconsole.log(\n  x,\n  y\n);\nb();\n"
	got := Remove(src, entriesOf(src, "javascript", "console.log"))
	assert.Equal(t, "a();\nb();\n", got)
}

func TestRemove_TrailingCodeKept(t *testing.T) {
	src := "  console.log(x); next();\n"
	got := Remove(src, entriesOf(src, "javascript", "console.log"))
	assert.Equal(t, "   next();\n", got)
}

func TestComment(t *testing.T) {
	got := Comment(sample, entriesOf(sample, "javascript", "console.log"), "// ")
	assert.Equal(t, `function f() {
  // console.log("a", a);
  const y = 1; // console.log(y);
  // console.log("old");
  return y;
}
`, got)
}

func TestUncomment(t *testing.T) {
	got := Uncomment(sample, entriesOf(sample, "javascript", "console.log"), "// ")
	assert.Equal(t, strings.Replace(sample, `// console.log("old")`, `console.log("old")`, 1), got)
}

func TestUncomment_TokenMustFollowIndentation(t *testing.T) {
	src := "x = 1 # print(x)\n    #print(y)\n"
	entries := entriesOf(src, "python", "print")
	require.Len(t, entries, 2)

	got := Uncomment(src, entries, "# ")
	assert.Equal(t, "x = 1 # print(x)\n    print(y)\n", got)
}

func TestCommentUncommentRoundTrip(t *testing.T) {
	src := "def run(x):\n    print(x)\n    if x:\n        print(x, 1)\n"

	commented := Comment(src, entriesOf(src, "python", "print"), "# ")
	assert.Equal(t, "def run(x):\n    # print(x)\n    if x:\n        # print(x, 1)\n", commented)

	restored := Uncomment(commented, entriesOf(commented, "python", "print"), "# ")
	assert.Equal(t, src, restored)
}

func TestReplaceCommand(t *testing.T) {
	got := ReplaceCommand(sample, entriesOf(sample, "javascript", "console.log"), "console.debug")
	assert.Equal(t, strings.ReplaceAll(sample, "console.log", "console.debug"), got)
}

func TestReplaceCommand_SkipsNonIdentifierCommands(t *testing.T) {
	src := "std::cout(x);\n"
	got := ReplaceCommand(src, entriesOf(src, "cpp", "std::cout"), "printf")
	assert.Equal(t, src, got)
}

func TestReplaceCommand_LeadingCommandOnly(t *testing.T) {
	src := "console.log(\n  format(x),\n  y\n);\n"
	got := ReplaceCommand(src, entriesOf(src, "javascript", "console.log"), "console.debug")
	assert.Equal(t, "console.debug(\n  format(x),\n  y\n);\n", got)
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff("a.js", "same\n", "same\n"))

	before := "1\n2\n3\n4\n5\n6\n7\n8\n"
	after := "1\n2\n3\n4\nfive\n6\n7\n8\n"
	got := Diff("a.js", before, after)

	assert.True(t, strings.HasPrefix(got, "--- a/a.js\n+++ b/a.js\n"), got)
	assert.Contains(t, got, "-5\n+five\n")
	assert.Contains(t, got, " 3\n 4\n")
	assert.Contains(t, got, " 6\n 7\n")
	assert.NotContains(t, got, " 1\n")
	assert.NotContains(t, got, " 8\n")
	assert.Contains(t, got, "@@\n")
}

func TestWriteFile_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/app.js", []byte("old"), 0o600))

	require.NoError(t, WriteFile(fs, "/src/app.js", "new"))

	got, err := ReadFile(fs, "/src/app.js")
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	info, err := fs.Stat("/src/app.js")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := afero.ReadDir(fs, "/src")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFile_OsFs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0o644))

	fs := afero.NewOsFs()
	require.NoError(t, WriteFile(fs, path, "print(2)\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print(2)\n", string(got))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(afero.NewMemMapFs(), "/nope.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nope.js")
}
