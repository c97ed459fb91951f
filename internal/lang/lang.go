// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lang holds the language identifiers codelog understands and maps
// file paths onto them.
package lang

import (
	"path/filepath"
	"slices"
	"strings"
)

// Language identifiers with built-in log commands and templates.
const (
	JavaScript = "javascript"
	TypeScript = "typescript"
	Java       = "java"
	CSharp     = "csharp"
	PHP        = "php"
	Dart       = "dart"
	Python     = "python"
	Cpp        = "cpp"
	Ruby       = "ruby"
	Go         = "go"
	Kotlin     = "kotlin"
	Swift      = "swift"
	Scala      = "scala"
	Lua        = "lua"
	Perl       = "perl"
	Elixir     = "elixir"
	Haskell    = "haskell"
)

// Languages recognized by path and comment token only.
const (
	R           = "r"
	ShellScript = "shellscript"
)

// supported lists the languages in the order they are documented.
var supported = []string{
	JavaScript, TypeScript, Java, CSharp, PHP, Dart, Python, Cpp, Ruby,
	Go, Kotlin, Swift, Scala, Lua, Perl, Elixir, Haskell,
}

// extensions maps lowercase file extensions to language identifiers. It also
// covers a few languages that only have a comment token (r, shellscript).
var extensions = map[string]string{
	".js":    JavaScript,
	".jsx":   JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TypeScript,
	".mts":   TypeScript,
	".cts":   TypeScript,
	".java":  Java,
	".cs":    CSharp,
	".php":   PHP,
	".dart":  Dart,
	".py":    Python,
	".cpp":   Cpp,
	".cc":    Cpp,
	".cxx":   Cpp,
	".hpp":   Cpp,
	".h":     Cpp,
	".rb":    Ruby,
	".go":    Go,
	".kt":    Kotlin,
	".kts":   Kotlin,
	".swift": Swift,
	".scala": Scala,
	".lua":   Lua,
	".pl":    Perl,
	".pm":    Perl,
	".ex":    Elixir,
	".exs":   Elixir,
	".hs":    Haskell,
	".r":     R,
	".sh":    ShellScript,
	".bash":  ShellScript,
}

// Supported returns a copy of the supported language identifiers.
func Supported() []string {
	return slices.Clone(supported)
}

// IsSupported reports whether id has a built-in log command and template.
func IsSupported(id string) bool {
	return slices.Contains(supported, id)
}

// ForPath returns the language identifier for a file path based on its
// extension, or "" when the extension is unknown.
func ForPath(path string) string {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns the file extensions mapped to supported languages,
// sorted. The workspace scanner uses it to build default include patterns.
func Extensions() []string {
	var exts []string
	for ext, id := range extensions {
		if IsSupported(id) {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return exts
}
