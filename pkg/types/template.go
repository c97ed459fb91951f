// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// LogTemplate is a placeholder template for one language. Placeholders use
// mustache syntax ({{{name}}}) and are substituted without escaping.
type LogTemplate struct {
	Language string `mapstructure:"language" yaml:"language" json:"language"`
	Template string `mapstructure:"template" yaml:"template" json:"template"`
}
