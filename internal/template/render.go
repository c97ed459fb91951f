// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package template

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/lang"
)

// accessibleText maps emoji prefixes to screen-reader friendly labels.
var accessibleText = map[string]string{
	"🔍":  "[DEBUG]",
	"⚠️": "[WARNING]",
	"⚠":  "[WARNING]",
	"❌":  "[ERROR]",
	"✅":  "[SUCCESS]",
	"📝":  "[INFO]",
	"🚀":  "[LAUNCH]",
	"💡":  "[TIP]",
	"🛑":  "[STOP]",
	"⭐":  "[IMPORTANT]",
	"🔄":  "[UPDATE]",
	"🔒":  "[SECURE]",
	"📊":  "[DATA]",
}

// trailingSemicolonRe matches a line-final ";", before "\r" on CRLF lines.
var trailingSemicolonRe = regexp.MustCompile(`(?m);(\r?)$`)

// Request carries the caller-side facts about the insertion point.
type Request struct {
	Indent       string // Leading whitespace of the triggering line
	FileName     string // Path relative to the project root
	FunctionName string // Enclosing function, may be empty
	VariableName string // Selection, word under cursor, or "variable"
	LineNumber   int    // 1-based triggering line
	LanguageID   string // Host language identifier
}

// renderContext holds the resolved placeholder values. Every field is set
// for every render.
type renderContext struct {
	indent              string
	logCommand          string
	quote               string
	logMessagePrefix    string
	messageLogDelimiter string
	fileName            string
	lineNumber          int
	functionName        string
	variableName        string
	messageLogSuffix    string
	literalOpen         string
	literalClose        string
}

func (c renderContext) vars() map[string]string {
	return map[string]string{
		"indent":              c.indent,
		"logCommand":          c.logCommand,
		"quote":               c.quote,
		"logMessagePrefix":    c.logMessagePrefix,
		"messageLogDelimiter": c.messageLogDelimiter,
		"fileName":            c.fileName,
		"lineNumber":          strconv.Itoa(c.lineNumber),
		"functionName":        c.functionName,
		"variableName":        c.variableName,
		"messageLogSuffix":    c.messageLogSuffix,
		"literalOpen":         c.literalOpen,
		"literalClose":        c.literalClose,
	}
}

// EffectiveLanguage returns the language used for resolution once an
// unsupported host language has fallen back to the configured default.
func EffectiveLanguage(cfg config.Config, languageID string) string {
	return ResolveLanguage(languageID, cfg.DefaultLanguage, lang.Supported())
}

// Command returns the log command for languageID under cfg, applying the
// same language fallback as Render.
func Command(cfg config.Config, languageID string) string {
	return ResolveCommand(EffectiveLanguage(cfg, languageID), cfg.LogCommand, DefaultCommands)
}

// Render produces the snippet for req. It returns "" when no template
// exists for the effective language.
func Render(cfg config.Config, req Request) string {
	language := EffectiveLanguage(cfg, req.LanguageID)

	tmpl, ok := ResolveTemplate(language, cfg.CustomLogTemplates, DefaultTemplates)
	if !ok {
		return ""
	}

	ctx := buildContext(cfg, req, language)
	snippet := substitute(tmpl, ctx.vars())

	if cfg.IsLogMessageWrapped {
		border := borderLine(ctx, cfg.BorderWrapCharacter, cfg.BorderWrapLength)
		snippet = border + "\n" + snippet + border + "\n"
	}
	if cfg.AddEmptyLineBeforeLogMessage {
		snippet = "\n" + snippet
	}
	if cfg.AddEmptyLineAfterLog {
		snippet += "\n"
	}

	if !cfg.IsSemicolonRequired {
		snippet = trailingSemicolonRe.ReplaceAllString(snippet, "$1")
	}
	return snippet
}

func buildContext(cfg config.Config, req Request, language string) renderContext {
	prefix := cfg.LogMessagePrefix
	if cfg.UseAccessibleLogs {
		if text, ok := accessibleText[prefix]; ok {
			prefix = text
		}
	}

	quote := `"`
	if cfg.UseSingleQuotes {
		quote = "'"
	}

	delimiter := ""
	if cfg.MessageLogDelimiter != "" {
		delimiter = " " + cfg.MessageLogDelimiter + " "
	}

	return renderContext{
		indent:              req.Indent,
		logCommand:          ResolveCommand(language, cfg.LogCommand, DefaultCommands),
		quote:               quote,
		logMessagePrefix:    prefix,
		messageLogDelimiter: delimiter,
		fileName:            req.FileName,
		lineNumber:          req.LineNumber,
		functionName:        req.FunctionName,
		variableName:        req.VariableName,
		messageLogSuffix:    cfg.MessageLogSuffix,
		literalOpen:         cfg.LiteralOpen,
		literalClose:        cfg.LiteralClose,
	}
}

// borderLine builds the decorative statement placed before and after a
// wrapped snippet. It reuses the snippet's command, quote, prefix, and
// delimiter so the border is itself a discoverable log statement.
func borderLine(ctx renderContext, char string, length int) string {
	if length < 0 {
		length = 0
	}
	return ctx.indent + ctx.logCommand + "(" + ctx.quote + ctx.logMessagePrefix + ctx.messageLogDelimiter +
		strings.Repeat(char, length) + ctx.messageLogDelimiter + ctx.quote + ");"
}
