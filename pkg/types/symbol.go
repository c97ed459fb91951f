// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across codelog packages.
package types

import "context"

// SymbolKind identifies the category of a document symbol.
type SymbolKind int

const (
	Function  SymbolKind = iota // Free function or named function value
	Method                      // Function bound to a type or class
	Class                       // Class, struct, module, or object container
	Interface                   // Interface or protocol declaration
	Variable                    // Variable declaration
	Constant                    // Constant declaration
)

// String returns the human-readable name of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case Function:
		return "Function"
	case Method:
		return "Method"
	case Class:
		return "Class"
	case Interface:
		return "Interface"
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// IsCallable reports whether the kind names something a log statement can
// be enclosed by.
func (k SymbolKind) IsCallable() bool {
	return k == Function || k == Method
}

// DocumentSymbol is one node of a document's symbol tree. Start and End are
// byte offsets into the source; End is exclusive.
type DocumentSymbol struct {
	Name     string
	Kind     SymbolKind
	Start    int
	End      int
	Children []DocumentSymbol
}

// Contains reports whether offset falls inside the symbol's range. The end
// offset is inclusive so a cursor sitting right after a closing brace still
// counts as inside.
func (s DocumentSymbol) Contains(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// SymbolProvider returns the symbol tree of a document. Implementations
// return a nil slice and no error for languages they do not understand.
type SymbolProvider interface {
	DocumentSymbols(ctx context.Context, languageID string, source []byte) ([]DocumentSymbol, error)
}
