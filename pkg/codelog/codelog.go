// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package codelog is the public interface to the log snippet engine and the
// log statement locator. Every function is pure over its inputs and safe for
// concurrent use; the configuration is a value the caller owns.
package codelog

import (
	"context"

	"github.com/petar-djukic/codelog/internal/classify"
	"github.com/petar-djukic/codelog/internal/config"
	"github.com/petar-djukic/codelog/internal/locator"
	"github.com/petar-djukic/codelog/internal/template"
	"github.com/petar-djukic/codelog/pkg/types"
)

// Config is the settings snapshot passed to every call.
type Config = config.Config

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = config.ErrInvalidConfig

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return config.Default()
}

// RenderLogSnippet produces the statement to insert on the line after
// lineNumber. It returns "" when no template exists for the language.
func RenderLogSnippet(cfg Config, indent, fileName, functionName, variableName string, lineNumber int, languageID string) string {
	return template.Render(cfg, template.Request{
		Indent:       indent,
		FileName:     fileName,
		FunctionName: functionName,
		VariableName: variableName,
		LineNumber:   lineNumber,
		LanguageID:   languageID,
	})
}

// FindLogEntries returns every call of the resolved log command in source.
func FindLogEntries(cfg Config, source, languageID string) []types.LogEntry {
	return locator.FindLogEntries(cfg, source, languageID)
}

// ResolvedLogCommand returns the log command used for languageID under cfg.
func ResolvedLogCommand(cfg Config, languageID string) string {
	return template.Command(cfg, languageID)
}

// CommentToken returns the line comment token, with its trailing space, for
// languageID.
func CommentToken(languageID string) string {
	return classify.CommentToken(languageID)
}

// Classify locates the log statements of source and enriches them for the
// edit, remove, and comment flows. provider may be nil; when it is nil or
// fails, enclosing functions are found by the line heuristic alone.
func Classify(ctx context.Context, cfg Config, source, languageID string, provider types.SymbolProvider) []types.ClassifiedEntry {
	entries := locator.FindLogEntries(cfg, source, languageID)
	if len(entries) == 0 {
		return nil
	}

	var symbols []types.DocumentSymbol
	if provider != nil {
		if syms, err := provider.DocumentSymbols(ctx, languageID, []byte(source)); err == nil {
			symbols = syms
		}
	}
	return classify.Classify(source, languageID, entries, symbols)
}
