// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symbols builds document symbol trees used to name the function
// enclosing a log statement. Go sources are parsed with go/parser; other
// languages go through tree-sitter grammars.
package symbols

import (
	"math"
	"sort"

	"github.com/petar-djukic/codelog/pkg/types"
)

// nest arranges a flat symbol list into a tree by range containment.
// Functions placed directly inside a class or interface become methods.
func nest(flat []types.DocumentSymbol) []types.DocumentSymbol {
	sort.SliceStable(flat, func(i, j int) bool {
		if flat[i].Start != flat[j].Start {
			return flat[i].Start < flat[j].Start
		}
		return flat[i].End > flat[j].End
	})

	var build func(i, limit int, parent types.SymbolKind) ([]types.DocumentSymbol, int)
	build = func(i, limit int, parent types.SymbolKind) ([]types.DocumentSymbol, int) {
		var out []types.DocumentSymbol
		for i < len(flat) && flat[i].Start < limit {
			sym := flat[i]
			if sym.Kind == types.Function && (parent == types.Class || parent == types.Interface) {
				sym.Kind = types.Method
			}
			sym.Children, i = build(i+1, sym.End, sym.Kind)
			out = append(out, sym)
		}
		return out, i
	}

	tree, _ := build(0, math.MaxInt, types.Variable)
	return tree
}
