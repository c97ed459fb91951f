// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package template resolves per-language log commands and templates and
// renders log snippets from them.
package template

import (
	"strings"

	"github.com/petar-djukic/codelog/internal/lang"
	"github.com/petar-djukic/codelog/pkg/types"
)

// FallbackCommand is used when neither an override nor a per-language
// command is available.
const FallbackCommand = "console.log"

// DefaultCommands maps each supported language to its log call prefix.
var DefaultCommands = map[string]string{
	lang.JavaScript: "console.log",
	lang.TypeScript: "console.log",
	lang.Java:       "System.out.println",
	lang.CSharp:     "Console.WriteLine",
	lang.PHP:        "echo",
	lang.Dart:       "print",
	lang.Python:     "print",
	lang.Cpp:        "std::cout",
	lang.Ruby:       "puts",
	lang.Go:         "fmt.Println",
	lang.Kotlin:     "println",
	lang.Swift:      "print",
	lang.Scala:      "println",
	lang.Lua:        "print",
	lang.Perl:       "print",
	lang.Elixir:     "IO.puts",
	lang.Haskell:    "putStrLn",
}

// message is the shared "prefix ~ function ~ file:line ~ variable suffix"
// body every default template quotes.
const message = "{{{logMessagePrefix}}}{{{messageLogDelimiter}}}{{{functionName}}}{{{messageLogDelimiter}}}" +
	"{{{fileName}}}:{{{lineNumber}}}{{{messageLogDelimiter}}}"

// quoted wraps body in the configured quote with the variable name and suffix.
func quoted(body string) string {
	return "{{{quote}}}" + message + body + "{{{messageLogSuffix}}}{{{quote}}}"
}

const (
	indentCmd = "{{{indent}}}{{{logCommand}}}"
	variable  = "{{{variableName}}}"
)

// DefaultTemplates holds one built-in template per supported language.
var DefaultTemplates = []types.LogTemplate{
	{Language: lang.JavaScript, Template: indentCmd + "(" + quoted(variable) + ", " + variable + ");\n"},
	{Language: lang.TypeScript, Template: indentCmd + "(" + quoted(variable) + ", " + variable + ");\n"},
	{Language: lang.Java, Template: indentCmd + "(" + quoted(variable) + " + " + variable + ");\n"},
	{Language: lang.CSharp, Template: indentCmd + "(" + quoted(variable) + " + " + variable + ");\n"},
	{Language: lang.PHP, Template: indentCmd + "(" + quoted(variable) + " . " + variable + ");\n"},
	{Language: lang.Dart, Template: indentCmd + "(" + quoted(variable) + " + " + variable + ");\n"},
	{Language: lang.Python, Template: indentCmd + "(f" + quoted("{{{literalOpen}}}"+variable+"{{{literalClose}}}") + ");\n"},
	{Language: lang.Cpp, Template: indentCmd + " << " + quoted(variable) + " << " + variable + " << std::endl;\n"},
	{Language: lang.Ruby, Template: indentCmd + " " + quoted(variable) + ", " + variable + ";\n"},
	{Language: lang.Go, Template: indentCmd + "(" + quoted(variable) + ", " + variable + ");\n"},
	{Language: lang.Kotlin, Template: indentCmd + "(" + quoted(variable) + " + " + variable + ");\n"},
	{Language: lang.Swift, Template: indentCmd + "(" + quoted(variable) + ", " + variable + ");\n"},
	{Language: lang.Scala, Template: indentCmd + "(s" + quoted(variable) + " + " + variable + ");\n"},
	{Language: lang.Lua, Template: indentCmd + "(" + quoted(variable) + " .. " + variable + ");\n"},
	{Language: lang.Perl, Template: indentCmd + " " + quoted(variable) + " . " + variable + ";\n"},
	{Language: lang.Elixir, Template: indentCmd + "(" + quoted(variable) + " <> to_string(" + variable + "));\n"},
	{Language: lang.Haskell, Template: indentCmd + " ((" + quoted(variable) + ") ++ show " + variable + ");\n"},
}

// ResolveLanguage returns requested when it is in supported, otherwise
// defaultLanguage. There is no further fallback: an unsupported
// defaultLanguage is returned as is.
func ResolveLanguage(requested, defaultLanguage string, supported []string) string {
	for _, s := range supported {
		if s == requested {
			return requested
		}
	}
	return defaultLanguage
}

// ResolveCommand picks the log command for language: the user override when
// set, then the per-language default, then FallbackCommand. Snippet rendering
// and statement location both go through this function so that inserted
// statements are always discoverable.
func ResolveCommand(language, override string, commands map[string]string) string {
	if override != "" {
		return override
	}
	if cmd := commands[language]; cmd != "" {
		return cmd
	}
	return FallbackCommand
}

// ResolveTemplate searches user templates, then defaults, for the first
// entry whose language matches. Entries with an empty template are treated
// as absent. The returned template always ends with a newline.
func ResolveTemplate(language string, user, defaults []types.LogTemplate) (string, bool) {
	t, ok := findTemplate(language, user)
	if !ok {
		t, ok = findTemplate(language, defaults)
	}
	if !ok || t.Template == "" {
		return "", false
	}
	if !strings.HasSuffix(t.Template, "\n") {
		return t.Template + "\n", true
	}
	return t.Template, true
}

func findTemplate(language string, templates []types.LogTemplate) (types.LogTemplate, bool) {
	for _, t := range templates {
		if t.Language == language {
			return t, true
		}
	}
	return types.LogTemplate{}, false
}
