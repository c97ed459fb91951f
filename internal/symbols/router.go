// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"context"

	"github.com/petar-djukic/codelog/internal/lang"
	"github.com/petar-djukic/codelog/pkg/types"
)

// Router dispatches symbol requests to the appropriate provider based on
// language. Go sources are routed to the go/ast provider; everything else
// goes to tree-sitter.
type Router struct {
	GoProvider   types.SymbolProvider // Provider for Go sources
	TextProvider types.SymbolProvider // Provider for everything else
}

// NewRouter returns a Router wired to the built-in providers.
func NewRouter() *Router {
	return &Router{
		GoProvider:   GoProvider{},
		TextProvider: TreeSitterProvider{},
	}
}

// DocumentSymbols returns the symbol tree of source. A nil provider yields
// no symbols.
func (r *Router) DocumentSymbols(ctx context.Context, languageID string, source []byte) ([]types.DocumentSymbol, error) {
	p := r.providerFor(languageID)
	if p == nil {
		return nil, nil
	}
	return p.DocumentSymbols(ctx, languageID, source)
}

func (r *Router) providerFor(languageID string) types.SymbolProvider {
	if languageID == lang.Go {
		return r.GoProvider
	}
	return r.TextProvider
}
