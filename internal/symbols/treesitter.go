// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/scala"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/petar-djukic/codelog/internal/lang"
	"github.com/petar-djukic/codelog/pkg/types"
)

// langSpec holds the grammar and definition query for a language. The query
// captures the whole definition under its kind (@function, @method, @class,
// @interface) and its identifier as @name.
type langSpec struct {
	lang  *sitter.Language
	query string
}

const jsQuery = `
	(function_declaration name: (_) @name) @function
	(generator_function_declaration name: (_) @name) @function
	(method_definition name: (_) @name) @method
	(class_declaration name: (_) @name) @class
	(variable_declarator name: (identifier) @name value: (arrow_function)) @function
`

var specs = map[string]*langSpec{
	lang.JavaScript: {lang: javascript.GetLanguage(), query: jsQuery},
	lang.TypeScript: {
		lang: typescript.GetLanguage(),
		query: jsQuery + `
			(interface_declaration name: (_) @name) @interface
		`,
	},
	lang.Python: {
		lang: python.GetLanguage(),
		query: `
			(function_definition name: (_) @name) @function
			(class_definition name: (_) @name) @class
		`,
	},
	lang.Java: {
		lang: java.GetLanguage(),
		query: `
			(method_declaration name: (_) @name) @method
			(constructor_declaration name: (_) @name) @method
			(class_declaration name: (_) @name) @class
			(interface_declaration name: (_) @name) @interface
		`,
	},
	lang.CSharp: {
		lang: csharp.GetLanguage(),
		query: `
			(method_declaration name: (_) @name) @method
			(class_declaration name: (_) @name) @class
			(interface_declaration name: (_) @name) @interface
		`,
	},
	lang.PHP: {
		lang: php.GetLanguage(),
		query: `
			(function_definition name: (_) @name) @function
			(method_declaration name: (_) @name) @method
			(class_declaration name: (_) @name) @class
		`,
	},
	lang.Cpp: {
		lang: cpp.GetLanguage(),
		query: `
			(function_definition declarator: (function_declarator declarator: (_) @name)) @function
			(class_specifier name: (_) @name) @class
			(struct_specifier name: (_) @name) @class
		`,
	},
	lang.Ruby: {
		lang: ruby.GetLanguage(),
		query: `
			(method name: (_) @name) @method
			(singleton_method name: (_) @name) @method
			(class name: (_) @name) @class
			(module name: (_) @name) @class
		`,
	},
	lang.Kotlin: {
		lang: kotlin.GetLanguage(),
		query: `
			(function_declaration (simple_identifier) @name) @function
			(class_declaration (type_identifier) @name) @class
		`,
	},
	lang.Swift: {
		lang: swift.GetLanguage(),
		query: `
			(function_declaration name: (_) @name) @function
			(class_declaration name: (_) @name) @class
		`,
	},
	lang.Scala: {
		lang: scala.GetLanguage(),
		query: `
			(function_definition name: (_) @name) @function
			(class_definition name: (_) @name) @class
			(object_definition name: (_) @name) @class
		`,
	},
	lang.ShellScript: {
		lang: bash.GetLanguage(),
		query: `
			(function_definition name: (_) @name) @function
		`,
	},
}

var captureKinds = map[string]types.SymbolKind{
	"function":  types.Function,
	"method":    types.Method,
	"class":     types.Class,
	"interface": types.Interface,
}

// TreeSitterProvider extracts symbols with tree-sitter grammars.
type TreeSitterProvider struct{}

// Supports reports whether a grammar is registered for languageID.
func (TreeSitterProvider) Supports(languageID string) bool {
	_, ok := specs[languageID]
	return ok
}

// DocumentSymbols parses source with the grammar for languageID. Languages
// without a grammar yield no symbols and no error.
func (TreeSitterProvider) DocumentSymbols(ctx context.Context, languageID string, source []byte) ([]types.DocumentSymbol, error) {
	spec, ok := specs[languageID]
	if !ok {
		return nil, nil
	}

	root, err := sitter.ParseCtx(ctx, source, spec.lang)
	if err != nil {
		return nil, fmt.Errorf("parsing %s source: %w", languageID, err)
	}
	if root == nil {
		return nil, nil
	}

	q, err := sitter.NewQuery([]byte(spec.query), spec.lang)
	if err != nil {
		return nil, fmt.Errorf("compiling %s symbol query: %w", languageID, err)
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	var flat []types.DocumentSymbol
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}

		var sym types.DocumentSymbol
		var found bool
		for _, c := range m.Captures {
			capture := q.CaptureNameForId(c.Index)
			if capture == "name" {
				sym.Name = strings.TrimSpace(c.Node.Content(source))
				continue
			}
			if kind, ok := captureKinds[capture]; ok {
				sym.Kind = kind
				sym.Start = int(c.Node.StartByte())
				sym.End = int(c.Node.EndByte())
				found = true
			}
		}
		if found && sym.Name != "" {
			flat = append(flat, sym)
		}
	}

	return nest(flat), nil
}
