// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/codelog/pkg/types"
)

// assignedFunctionRe recognizes "const name = function" and
// "let name = async (...) =>" style assignments on a single line.
var assignedFunctionRe = regexp.MustCompile(`\b(?:const|let|var)\s+([\w$]+)\s*=\s*(?:async\s*)?(?:function\b|\(.*\)\s*=>)`)

// FunctionNameAt names the function enclosing offset. It is a heuristic, in
// this order:
//  1. the innermost Function or Method symbol containing offset;
//  2. a const/let/var function assignment on lineText.
//
// It returns "" when neither applies.
func FunctionNameAt(symbols []types.DocumentSymbol, lineText string, offset int) string {
	if sym, ok := findFunctionSymbol(symbols, offset); ok {
		return strings.TrimSpace(sym.Name)
	}
	if m := assignedFunctionRe.FindStringSubmatch(lineText); m != nil {
		return m[1]
	}
	return ""
}

// findFunctionSymbol returns the deepest callable symbol containing offset.
// A callable's children are searched before the callable itself.
func findFunctionSymbol(symbols []types.DocumentSymbol, offset int) (types.DocumentSymbol, bool) {
	for _, sym := range symbols {
		if !sym.Contains(offset) {
			continue
		}
		if found, ok := findFunctionSymbol(sym.Children, offset); ok {
			return found, true
		}
		if sym.Kind.IsCallable() {
			return sym, true
		}
	}
	return types.DocumentSymbol{}, false
}
