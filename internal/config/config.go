// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the codelog settings record, its hard-coded defaults,
// and the viper-backed loader used by the CLI.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/petar-djukic/codelog/internal/lang"
	"github.com/petar-djukic/codelog/pkg/types"
)

// ErrInvalidConfig is returned when a loaded setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultLanguage            = lang.JavaScript
	DefaultLogMessagePrefix    = "🔍"
	DefaultMessageLogDelimiter = "~"
	DefaultMessageLogSuffix    = ":"
	DefaultBorderWrapCharacter = "-"
	DefaultBorderWrapLength    = 20
	DefaultLiteralOpen         = "{"
	DefaultLiteralClose        = "}"
	DefaultHighlightColor      = "#FFD700"
	DefaultHighlightStyle      = "wavy"
)

// HighlightStyles lists the accepted values of HighlightStyle.
var HighlightStyles = []string{"solid", "double", "dotted", "dashed", "wavy"}

// Config is a read-only snapshot of every codelog setting. Engines receive
// it by value and never modify it.
type Config struct {
	Enable                       bool                `mapstructure:"enable" yaml:"enable"`
	DefaultLanguage              string              `mapstructure:"defaultLanguage" yaml:"defaultLanguage"`
	LogCommand                   string              `mapstructure:"logCommand" yaml:"logCommand"`
	IsLogMessageWrapped          bool                `mapstructure:"isLogMessageWrapped" yaml:"isLogMessageWrapped"`
	BorderWrapCharacter          string              `mapstructure:"borderWrapCharacter" yaml:"borderWrapCharacter"`
	BorderWrapLength             int                 `mapstructure:"borderWrapLength" yaml:"borderWrapLength"`
	LogMessagePrefix             string              `mapstructure:"logMessagePrefix" yaml:"logMessagePrefix"`
	UseAccessibleLogs            bool                `mapstructure:"useAccessibleLogs" yaml:"useAccessibleLogs"`
	MessageLogDelimiter          string              `mapstructure:"messageLogDelimiter" yaml:"messageLogDelimiter"`
	MessageLogSuffix             string              `mapstructure:"messageLogSuffix" yaml:"messageLogSuffix"`
	IsSemicolonRequired          bool                `mapstructure:"isSemicolonRequired" yaml:"isSemicolonRequired"`
	AddEmptyLineBeforeLogMessage bool                `mapstructure:"addEmptyLineBeforeLogMessage" yaml:"addEmptyLineBeforeLogMessage"`
	AddEmptyLineAfterLog         bool                `mapstructure:"addEmptyLineAfterLog" yaml:"addEmptyLineAfterLog"`
	UseSingleQuotes              bool                `mapstructure:"useSingleQuotes" yaml:"useSingleQuotes"`
	LiteralOpen                  string              `mapstructure:"literalOpen" yaml:"literalOpen"`
	LiteralClose                 string              `mapstructure:"literalClose" yaml:"literalClose"`
	HighlightColor               string              `mapstructure:"highlightColor" yaml:"highlightColor"`
	HighlightStyle               string              `mapstructure:"highlightStyle" yaml:"highlightStyle"`
	CustomLogTemplates           []types.LogTemplate `mapstructure:"customLogTemplates" yaml:"customLogTemplates"`
	Files                        Files               `mapstructure:"files" yaml:"files"`
}

// Files configures workspace listing.
type Files struct {
	IncludedFilePatterns      []string `mapstructure:"includedFilePatterns" yaml:"includedFilePatterns"`
	ExcludedFilePatterns      []string `mapstructure:"excludedFilePatterns" yaml:"excludedFilePatterns"`
	MaxSearchRecursionDepth   int      `mapstructure:"maxSearchRecursionDepth" yaml:"maxSearchRecursionDepth"` // 0 = unlimited
	SupportsHiddenFiles       bool     `mapstructure:"supportsHiddenFiles" yaml:"supportsHiddenFiles"`
	PreserveGitignoreSettings bool     `mapstructure:"preserveGitignoreSettings" yaml:"preserveGitignoreSettings"`
	IncludeFilePath           bool     `mapstructure:"includeFilePath" yaml:"includeFilePath"`
}

// Default returns the hard-coded settings used when the user supplies none.
func Default() Config {
	return Config{
		Enable:              true,
		DefaultLanguage:     DefaultLanguage,
		BorderWrapCharacter: DefaultBorderWrapCharacter,
		BorderWrapLength:    DefaultBorderWrapLength,
		LogMessagePrefix:    DefaultLogMessagePrefix,
		MessageLogDelimiter: DefaultMessageLogDelimiter,
		MessageLogSuffix:    DefaultMessageLogSuffix,
		LiteralOpen:         DefaultLiteralOpen,
		LiteralClose:        DefaultLiteralClose,
		HighlightColor:      DefaultHighlightColor,
		HighlightStyle:      DefaultHighlightStyle,
		CustomLogTemplates:  []types.LogTemplate{},
		Files: Files{
			IncludedFilePatterns:      defaultIncludePatterns(),
			ExcludedFilePatterns:      []string{"node_modules/", "vendor/", "dist/", "out/", "build/", "coverage/"},
			SupportsHiddenFiles:       false,
			PreserveGitignoreSettings: true,
			IncludeFilePath:           true,
		},
	}
}

// defaultIncludePatterns matches every file extension with a built-in template.
func defaultIncludePatterns() []string {
	exts := lang.Extensions()
	patterns := make([]string, len(exts))
	for i, ext := range exts {
		patterns[i] = "*" + ext
	}
	return patterns
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (c Config) Clone() Config {
	c.CustomLogTemplates = slices.Clone(c.CustomLogTemplates)
	c.Files.IncludedFilePatterns = slices.Clone(c.Files.IncludedFilePatterns)
	c.Files.ExcludedFilePatterns = slices.Clone(c.Files.ExcludedFilePatterns)
	return c
}

// Validate checks values that cannot be fixed up by falling back to defaults.
func (c Config) Validate() error {
	if c.BorderWrapLength < 0 {
		return fmt.Errorf("%w: borderWrapLength must not be negative, got %d", ErrInvalidConfig, c.BorderWrapLength)
	}
	if c.Files.MaxSearchRecursionDepth < 0 {
		return fmt.Errorf("%w: files.maxSearchRecursionDepth must not be negative, got %d", ErrInvalidConfig, c.Files.MaxSearchRecursionDepth)
	}
	if !slices.Contains(HighlightStyles, c.HighlightStyle) {
		return fmt.Errorf("%w: highlightStyle must be one of %s, got %q",
			ErrInvalidConfig, strings.Join(HighlightStyles, ", "), c.HighlightStyle)
	}
	for i, t := range c.CustomLogTemplates {
		if t.Language == "" {
			return fmt.Errorf("%w: customLogTemplates[%d] has no language", ErrInvalidConfig, i)
		}
	}
	return nil
}

// SetDefaults registers every default with v so that values coming from
// environment variables are visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("enable", d.Enable)
	v.SetDefault("defaultLanguage", d.DefaultLanguage)
	v.SetDefault("logCommand", d.LogCommand)
	v.SetDefault("isLogMessageWrapped", d.IsLogMessageWrapped)
	v.SetDefault("borderWrapCharacter", d.BorderWrapCharacter)
	v.SetDefault("borderWrapLength", d.BorderWrapLength)
	v.SetDefault("logMessagePrefix", d.LogMessagePrefix)
	v.SetDefault("useAccessibleLogs", d.UseAccessibleLogs)
	v.SetDefault("messageLogDelimiter", d.MessageLogDelimiter)
	v.SetDefault("messageLogSuffix", d.MessageLogSuffix)
	v.SetDefault("isSemicolonRequired", d.IsSemicolonRequired)
	v.SetDefault("addEmptyLineBeforeLogMessage", d.AddEmptyLineBeforeLogMessage)
	v.SetDefault("addEmptyLineAfterLog", d.AddEmptyLineAfterLog)
	v.SetDefault("useSingleQuotes", d.UseSingleQuotes)
	v.SetDefault("literalOpen", d.LiteralOpen)
	v.SetDefault("literalClose", d.LiteralClose)
	v.SetDefault("highlightColor", d.HighlightColor)
	v.SetDefault("highlightStyle", d.HighlightStyle)
	v.SetDefault("customLogTemplates", d.CustomLogTemplates)
	v.SetDefault("files.includedFilePatterns", d.Files.IncludedFilePatterns)
	v.SetDefault("files.excludedFilePatterns", d.Files.ExcludedFilePatterns)
	v.SetDefault("files.maxSearchRecursionDepth", d.Files.MaxSearchRecursionDepth)
	v.SetDefault("files.supportsHiddenFiles", d.Files.SupportsHiddenFiles)
	v.SetDefault("files.preserveGitignoreSettings", d.Files.PreserveGitignoreSettings)
	v.SetDefault("files.includeFilePath", d.Files.IncludeFilePath)
}

// Load builds a Config from v layered over the defaults and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Watch reloads the configuration whenever the file backing v changes and
// passes the fresh snapshot to fn. A reload that fails validation is passed
// along with its error so the caller can keep the previous snapshot.
func Watch(v *viper.Viper, fn func(Config, error)) {
	v.OnConfigChange(func(fsnotify.Event) {
		fn(Load(v))
	})
	v.WatchConfig()
}
