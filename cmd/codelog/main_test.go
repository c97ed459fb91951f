// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codelog/internal/config"
)

const appJS = `function greet(name) {
  const x = name;
  console.log("x", x);
  return x;
}
`

// setupProject writes files into a temp dir and returns its path.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--workdir", dir}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "codelog "+version+"\n", out)
}

func TestSnippet(t *testing.T) {
	out, err := run(t, t.TempDir(), "snippet", "--file", "app.js", "--function", "foo", "--variable", "x", "--line", "10")
	require.NoError(t, err)
	assert.Equal(t, `console.log("🔍 ~ foo ~ app.js:10 ~ x:", x)`+"\n", out)

	out, err = run(t, t.TempDir(), "--language", "python", "snippet", "--indent", "    ")
	require.NoError(t, err)
	assert.Equal(t, `    print(f"🔍 ~  ~ :1 ~ {variable}:")`+"\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := setupProject(t, map[string]string{
		".codelog.yaml": "logMessagePrefix: DBG\nisSemicolonRequired: true\n",
	})

	out, err := run(t, dir, "snippet", "--file", "a.js", "--variable", "v")
	require.NoError(t, err)
	assert.Equal(t, `console.log("DBG ~  ~ a.js:1 ~ v:", v);`+"\n", out)

	out, err = run(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "logMessagePrefix: DBG\n")
	assert.Contains(t, out, "isSemicolonRequired: true\n")
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := setupProject(t, map[string]string{".codelog.yaml": "borderWrapLength: -1\n"})

	_, err := run(t, dir, "version")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigFile_ExplicitMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "--config", filepath.Join(dir, "nope.yaml"), "version")
	assert.Error(t, err)
}

func TestInsert(t *testing.T) {
	dir := setupProject(t, map[string]string{"app.js": appJS})
	path := filepath.Join(dir, "app.js")

	out, err := run(t, dir, "insert", path, "--line", "2", "--column", "9", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, `+  console.log("🔍 ~ greet ~ app.js:2 ~ x:", x)`)
	assert.Equal(t, appJS, readFile(t, path), "dry run leaves the file alone")

	out, err = run(t, dir, "insert", path, "--line", "2", "--selection", "name")
	require.NoError(t, err)
	assert.Equal(t, "inserted log statement after app.js:2\n", out)
	assert.Contains(t, readFile(t, path), "  const x = name;\n  console.log(\"🔍 ~ greet ~ app.js:2 ~ name:\", name)\n  console.log(\"x\", x);")
}

func TestInsert_Errors(t *testing.T) {
	dir := setupProject(t, map[string]string{"app.js": appJS})

	_, err := run(t, dir, "insert", filepath.Join(dir, "app.js"), "--line", "40")
	assert.ErrorContains(t, err, "line out of range")

	_, err = run(t, dir, "insert", filepath.Join(dir, "app.js"))
	assert.Error(t, err, "--line is required")

	_, err = run(t, dir, "insert", filepath.Join(dir, "missing.js"), "--line", "1")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := setupProject(t, map[string]string{
		"app.js":         appJS,
		"src/util.js":    "console.log(1)\nconsole.log(2)\n",
		"src/none.js":    "let a = 1\n",
		"README.md":      "console.log(doc)\n",
		"dist/bundle.js": "console.log(built)\n",
	})

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, `app.js (root) [1]
  3: console.log("x", x);
util.js (src) [2]
  1: console.log(1)
  2: console.log(2)
3 log statements in 2 files
`, out)

	out, err = run(t, dir, "files")
	require.NoError(t, err)
	assert.Equal(t, "app.js\nsrc/none.js\nsrc/util.js\n", out)
}

func TestEntriesAndHighlight(t *testing.T) {
	dir := setupProject(t, map[string]string{"app.js": appJS})
	path := filepath.Join(dir, "app.js")

	out, err := run(t, dir, "entries", path)
	require.NoError(t, err)
	assert.Equal(t, "app.js:3:3\tgreet\tactive\tx\n", out)

	out, err = run(t, dir, "highlight", path)
	require.NoError(t, err)
	assert.Contains(t, out, `console.log("x", x)`)
	assert.Contains(t, out, "3:3  Log statement in greet: x\n")
	assert.NotContains(t, out, "return x")

	out, err = run(t, dir, "highlight", path, "--all", "--style", "double")
	require.NoError(t, err)
	assert.Contains(t, out, "return x")
}

func TestCommentUncommentRemove(t *testing.T) {
	dir := setupProject(t, map[string]string{"app.js": appJS})
	path := filepath.Join(dir, "app.js")

	out, err := run(t, dir, "comment", path)
	require.NoError(t, err)
	assert.Equal(t, "app.js: 1 log statements (comment)\n", out)
	assert.Contains(t, readFile(t, path), "  // console.log(\"x\", x);\n")

	_, err = run(t, dir, "uncomment", path, "--line", "3")
	require.NoError(t, err)
	assert.Equal(t, appJS, readFile(t, path))

	out, err = run(t, dir, "remove", path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "-  console.log(\"x\", x);\n")
	assert.Equal(t, appJS, readFile(t, path))

	_, err = run(t, dir, "remove", path)
	require.NoError(t, err)
	assert.Equal(t, "function greet(name) {\n  const x = name;\n  return x;\n}\n", readFile(t, path))
}

func TestEdit(t *testing.T) {
	dir := setupProject(t, map[string]string{"app.js": appJS})
	path := filepath.Join(dir, "app.js")

	_, err := run(t, dir, "edit", path)
	assert.Error(t, err, "--command is required")

	_, err = run(t, dir, "edit", path, "--command", "console.debug")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), "  console.debug(\"x\", x);\n")

	out, err := run(t, dir, "--log-command", "console.debug", "entries", path)
	require.NoError(t, err)
	assert.Equal(t, "app.js:3:3\tgreet\tactive\tx\n", out)
}

func TestWatchDirs(t *testing.T) {
	got := watchDirs("/p", []string{"a.js", "src/b.js", "src/c.js", "src/lib/d.js"})
	assert.Equal(t, []string{"/p", "/p/src", "/p/src/lib"}, got)
}

func TestWatchFiles(t *testing.T) {
	dir := setupProject(t, map[string]string{
		"app.js":      appJS,
		"src/util.js": "console.log(1)\nconsole.log(2)\n",
	})

	var stdout, stderr bytes.Buffer
	a := &app{v: viper.New(), fs: afero.NewOsFs(), stdout: &stdout, stderr: &stderr}
	a.v.Set("workdir", dir)
	require.NoError(t, a.setup())

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, a.watchFiles(context.Background(), w))
	assert.Equal(t, "watching 2 files, 3 log statements\n", stdout.String())
	assert.ElementsMatch(t, watchDirs(a.root, []string{"app.js", "src/util.js"}), w.WatchList())
}
