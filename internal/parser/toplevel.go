package parser

import (
	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/token"
)

// ParseTopLevel parses one top-level declaration: a function, foreign
// function, function alias, composite, or type alias (spec.md §4.1's
// top-level dispatch list). Global variable, namespace, import, and pragma
// productions are named in spec.md's dispatch list but given no grammar
// anywhere in spec.md or original_source; they have no case here, so their
// tokens reach the "Unexpected token at top level" diagnostic.
func ParseTopLevel(ctx *Context) (interface{}, error) {
	switch ctx.Peek() {
	case token.TFunc:
		if ctx.PeekAt(1) == token.TAlias {
			return ParseFuncAlias(ctx)
		}
		return ParseFunc(ctx)
	case token.TForeign, token.TStdcall, token.TVerbatim, token.TImplicit, token.TExternal:
		return ParseFunc(ctx)
	case token.TStruct, token.TUnion, token.TRecord, token.TEnum:
		return ParseComposite(ctx)
	case token.TAlias:
		return ParseTypeAlias(ctx)
	default:
		return nil, ctx.Panicf("Unexpected token at top level")
	}
}

// ParseAll parses every top-level declaration in ctx until end of stream.
func ParseAll(ctx *Context) (*ast.AST, error) {
	for {
		for ctx.Peek() == token.TNewline {
			ctx.I++
		}
		if ctx.Peek() == token.TNone {
			return ctx.AST, nil
		}
		if _, err := ParseTopLevel(ctx); err != nil {
			return nil, err
		}
	}
}
