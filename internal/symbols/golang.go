// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/petar-djukic/codelog/pkg/types"
)

// GoProvider extracts symbols from Go source. Besides declared functions,
// methods, and types it names function literals by what they are assigned
// to, so a log inside "handler := func() {...}" reports "handler".
type GoProvider struct{}

// DocumentSymbols parses source and returns its symbol tree. A file with
// syntax errors still yields the symbols of its well-formed declarations.
func (GoProvider) DocumentSymbols(ctx context.Context, _ string, source []byte) ([]types.DocumentSymbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", source, parser.SkipObjectResolution)
	if file == nil {
		return nil, fmt.Errorf("parsing Go source: %w", err)
	}

	offset := func(p token.Pos) int { return fset.Position(p).Offset }
	var flat []types.DocumentSymbol
	add := func(name string, kind types.SymbolKind, n ast.Node) {
		flat = append(flat, types.DocumentSymbol{
			Name:  name,
			Kind:  kind,
			Start: offset(n.Pos()),
			End:   offset(n.End()),
		})
	}

	astutil.Apply(file, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			kind := types.Function
			if n.Recv != nil {
				kind = types.Method
			}
			add(n.Name.Name, kind, n)
		case *ast.TypeSpec:
			switch n.Type.(type) {
			case *ast.StructType:
				add(n.Name.Name, types.Class, n)
			case *ast.InterfaceType:
				add(n.Name.Name, types.Interface, n)
			}
		case *ast.FuncLit:
			if name := funcLitName(c.Parent(), n); name != "" {
				add(name, types.Function, n)
			}
		}
		return true
	}, nil)

	return nest(flat), nil
}

// funcLitName returns the identifier a function literal is bound to by its
// parent node, or "" for anonymous uses such as call arguments.
func funcLitName(parent ast.Node, lit *ast.FuncLit) string {
	switch p := parent.(type) {
	case *ast.AssignStmt:
		for i, rhs := range p.Rhs {
			if rhs == lit && i < len(p.Lhs) {
				return exprName(p.Lhs[i])
			}
		}
	case *ast.ValueSpec:
		for i, v := range p.Values {
			if v == lit && i < len(p.Names) {
				return p.Names[i].Name
			}
		}
	case *ast.KeyValueExpr:
		if p.Value == lit {
			return exprName(p.Key)
		}
	}
	return ""
}

func exprName(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Ident:
		if x.Name != "_" {
			return x.Name
		}
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.BasicLit:
		if s, err := strconv.Unquote(x.Value); err == nil {
			return s
		}
	}
	return ""
}
