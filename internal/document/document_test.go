// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package document

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/log"
	"github.com/petar-djukic/codelog/pkg/types"
)

const appJS = `function greet(name) {
  const msg = name;
  console.log("hi", msg);
  return msg;
}
`

type stubSymbols struct {
	syms []types.DocumentSymbol
	err  error
}

func (s stubSymbols) DocumentSymbols(context.Context, string, []byte) ([]types.DocumentSymbol, error) {
	return s.syms, s.err
}

func newTestRunner(t *testing.T, symbols types.SymbolProvider) (*Runner, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/src/app.js", []byte(appJS), 0o644))
	return NewRunner(Deps{Fs: fs, Root: "/proj", Symbols: symbols, Logger: log.NewNoop()}), fs
}

func greetSymbols() stubSymbols {
	return stubSymbols{syms: []types.DocumentSymbol{{Name: "greet", Kind: types.Function, Start: 0, End: len(appJS)}}}
}

func TestOpen(t *testing.T) {
	r, _ := newTestRunner(t, nil)

	doc, err := r.Open("/proj/src/app.js", "")
	require.NoError(t, err)
	assert.Equal(t, "src/app.js", doc.Rel)
	assert.Equal(t, "javascript", doc.LanguageID)
	assert.Equal(t, appJS, doc.Source)

	doc, err = r.Open("/proj/src/app.js", "typescript")
	require.NoError(t, err)
	assert.Equal(t, "typescript", doc.LanguageID)

	_, err = r.Open("/proj/missing.js", "")
	assert.Error(t, err)
}

func TestInsert(t *testing.T) {
	r, _ := newTestRunner(t, greetSymbols())
	doc, err := r.Open("/proj/src/app.js", "")
	require.NoError(t, err)

	res, err := r.Insert(context.Background(), config.Default(), doc, Cursor{Line: 1, Column: 9})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Changed)
	assert.True(t, res.Modified())
	assert.Equal(t, `function greet(name) {
  const msg = name;
  console.log("🔍 ~ greet ~ src/app.js:2 ~ msg:", msg)
  console.log("hi", msg);
  return msg;
}
`, res.After)
	assert.Contains(t, res.Diff(), `+  console.log("🔍 ~ greet ~ src/app.js:2 ~ msg:", msg)`)
}

func TestInsert_SelectionWins(t *testing.T) {
	r, _ := newTestRunner(t, nil)
	doc, err := r.Open("/proj/src/app.js", "")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.IsSemicolonRequired = true
	res, err := r.Insert(context.Background(), cfg, doc, Cursor{Line: 0, Column: 0, Selection: " name "})
	require.NoError(t, err)
	assert.Contains(t, res.After, "\nconsole.log(\"🔍 ~  ~ src/app.js:1 ~ name:\", name);\n  const msg")
}

func TestInsert_Errors(t *testing.T) {
	r, _ := newTestRunner(t, nil)
	doc, err := r.Open("/proj/src/app.js", "")
	require.NoError(t, err)

	_, err = r.Insert(context.Background(), config.Default(), doc, Cursor{Line: 99})
	assert.ErrorIs(t, err, ErrLineOutOfRange)

	cfg := config.Default()
	cfg.Enable = false
	_, err = r.Insert(context.Background(), cfg, doc, Cursor{Line: 0})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestEntries_SymbolFailureFallsBack(t *testing.T) {
	var buf bytes.Buffer
	fs := afero.NewMemMapFs()
	src := "const run = () => { console.log(\"x\", x) }\n"
	require.NoError(t, afero.WriteFile(fs, "/a.js", []byte(src), 0o644))

	r := NewRunner(Deps{
		Fs:      fs,
		Symbols: stubSymbols{err: errors.New("parser crashed")},
		Logger:  log.NewText(&buf, false, false),
	})
	doc, err := r.Open("/a.js", "")
	require.NoError(t, err)

	entries := r.Entries(context.Background(), config.Default(), doc)
	require.Len(t, entries, 1)
	assert.Equal(t, "run", entries[0].FunctionName)
	assert.Contains(t, buf.String(), "symbol lookup failed")
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		req         Request
		wantChanged int
		wantAfter   string
	}{
		{
			name:        "comment",
			req:         Request{Op: OpComment},
			wantChanged: 1,
			wantAfter:   "function greet(name) {\n  const msg = name;\n  // console.log(\"hi\", msg);\n  return msg;\n}\n",
		},
		{
			name:        "remove",
			req:         Request{Op: OpRemove},
			wantChanged: 1,
			wantAfter:   "function greet(name) {\n  const msg = name;\n  return msg;\n}\n",
		},
		{
			name:        "edit",
			req:         Request{Op: OpEdit, Command: "console.warn"},
			wantChanged: 1,
			wantAfter:   "function greet(name) {\n  const msg = name;\n  console.warn(\"hi\", msg);\n  return msg;\n}\n",
		},
		{
			name:      "line filter excludes entry",
			req:       Request{Op: OpRemove, Lines: []int{1, 2}},
			wantAfter: appJS,
		},
		{
			name:      "uncomment leaves plain statements",
			req:       Request{Op: OpUncomment},
			wantAfter: appJS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRunner(t, greetSymbols())
			doc, err := r.Open("/proj/src/app.js", "")
			require.NoError(t, err)

			res, err := r.Apply(context.Background(), config.Default(), doc, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, res.Changed)
			assert.Equal(t, tt.wantAfter, res.After)
		})
	}
}

func TestApply_EditNeedsCommand(t *testing.T) {
	r, _ := newTestRunner(t, nil)
	doc, err := r.Open("/proj/src/app.js", "")
	require.NoError(t, err)

	_, err = r.Apply(context.Background(), config.Default(), doc, Request{Op: OpEdit})
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestWrite(t *testing.T) {
	r, fs := newTestRunner(t, nil)
	doc, err := r.Open("/proj/src/app.js", "")
	require.NoError(t, err)

	res, err := r.Apply(context.Background(), config.Default(), doc, Request{Op: OpComment, Lines: []int{3}})
	require.NoError(t, err)
	require.NoError(t, r.Write(res))

	got, err := afero.ReadFile(fs, "/proj/src/app.js")
	require.NoError(t, err)
	assert.Contains(t, string(got), "  // console.log(\"hi\", msg);")

	unchanged := Result{Path: "/proj/other.js", Before: "x", After: "x"}
	require.NoError(t, r.Write(unchanged))
	exists, err := afero.Exists(fs, "/proj/other.js")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "comment", OpComment.String())
	assert.Equal(t, "edit", OpEdit.String())
	assert.Equal(t, "unknown", Op(42).String())
}
