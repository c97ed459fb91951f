// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides the structured diagnostic logger used by the CLI and
// the workspace scanner. Diagnostics go to stderr; command results are
// written to stdout by the commands themselves.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Logger is the interface for structured logging. Methods match slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that adds args to every entry.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

// NewText returns a text Logger writing to w. Verbose enables INFO, debug
// enables DEBUG; otherwise only warnings and errors are written.
func NewText(w io.Writer, verbose, debug bool) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(verbose, debug)}))
}

// Level maps the CLI verbosity flags onto a slog level.
func Level(verbose, debug bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

type noopLogger struct{}

// NewNoop returns a logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger, a noop logger until SetDefault
// is called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. A nil logger resets it to
// the noop logger.
func SetDefault(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
