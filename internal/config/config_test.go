// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codelog/pkg/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Enable)
	assert.Equal(t, "javascript", cfg.DefaultLanguage)
	assert.Empty(t, cfg.LogCommand)
	assert.Equal(t, "🔍", cfg.LogMessagePrefix)
	assert.Equal(t, "~", cfg.MessageLogDelimiter)
	assert.Equal(t, ":", cfg.MessageLogSuffix)
	assert.Equal(t, "-", cfg.BorderWrapCharacter)
	assert.Equal(t, 20, cfg.BorderWrapLength)
	assert.False(t, cfg.IsSemicolonRequired)
	assert.Equal(t, "{", cfg.LiteralOpen)
	assert.Equal(t, "}", cfg.LiteralClose)
	assert.Contains(t, cfg.Files.IncludedFilePatterns, "*.ts")
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative border length", func(c *Config) { c.BorderWrapLength = -1 }},
		{"negative depth", func(c *Config) { c.Files.MaxSearchRecursionDepth = -2 }},
		{"unknown highlight style", func(c *Config) { c.HighlightStyle = "zigzag" }},
		{"template without language", func(c *Config) {
			c.CustomLogTemplates = append(c.CustomLogTemplates, types.LogTemplate{Template: "x"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".codelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
defaultLanguage: python
logCommand: logger.debug
isSemicolonRequired: true
customLogTemplates:
  - language: python
    template: "{{{indent}}}{{{logCommand}}}({{{variableName}}})"
files:
  maxSearchRecursionDepth: 3
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "python", cfg.DefaultLanguage)
	assert.Equal(t, "logger.debug", cfg.LogCommand)
	assert.True(t, cfg.IsSemicolonRequired)
	require.Len(t, cfg.CustomLogTemplates, 1)
	assert.Equal(t, "python", cfg.CustomLogTemplates[0].Language)
	assert.Equal(t, 3, cfg.Files.MaxSearchRecursionDepth)

	// Untouched settings keep their defaults.
	assert.Equal(t, "🔍", cfg.LogMessagePrefix)
	assert.Equal(t, 20, cfg.BorderWrapLength)
	assert.True(t, cfg.Files.PreserveGitignoreSettings)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	d := Default()
	assert.Equal(t, d.DefaultLanguage, cfg.DefaultLanguage)
	assert.Equal(t, d.LogMessagePrefix, cfg.LogMessagePrefix)
	assert.Equal(t, d.HighlightStyle, cfg.HighlightStyle)
	assert.Equal(t, d.Files.IncludedFilePatterns, cfg.Files.IncludedFilePatterns)
	assert.Empty(t, cfg.CustomLogTemplates)
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("highlightStyle", "sparkles")

	_, err := Load(v)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.CustomLogTemplates = append(cfg.CustomLogTemplates, types.LogTemplate{Language: "go", Template: "a"})

	clone := cfg.Clone()
	clone.CustomLogTemplates[0].Template = "b"
	clone.Files.IncludedFilePatterns[0] = "*.nope"

	assert.Equal(t, "a", cfg.CustomLogTemplates[0].Template)
	assert.NotEqual(t, "*.nope", cfg.Files.IncludedFilePatterns[0])
}
