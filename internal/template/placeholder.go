// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package template

import (
	"regexp"
	"strings"
)

// placeholderRe matches {{{name}}} and {{name}}. The triple form is tried
// first so "{{{a}}}}" leaves a single literal brace behind.
var placeholderRe = regexp.MustCompile(`\{\{\{\s*([^{}]*?)\s*\}\}\}|\{\{\s*([^{}]*?)\s*\}\}`)

// substitute replaces every placeholder in tmpl with its value from vars.
// Values are inserted verbatim; no HTML or string escaping is applied.
// Unknown names, including mustache section tags, render as "".
func substitute(tmpl string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(tag string) string {
		m := placeholderRe.FindStringSubmatch(tag)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		return vars[strings.TrimPrefix(name, "&")]
	})
}
