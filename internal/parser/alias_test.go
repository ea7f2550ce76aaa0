package parser

import (
	"testing"

	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/logger"
	"github.com/nyxlang/corec/internal/token"
)

// func alias f => g  ->  no argument-type list means "match first" (spec.md §4.1.5).
func TestParseFuncAliasMatchFirst(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "f")
	b.Push(token.TStrongArrow, logger.NullLoc)
	word(b, "g")

	ctx := newTestContext(b)
	alias, err := ParseFuncAlias(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if !alias.MatchFirstOfName {
		t.Error("expected MatchFirstOfName to be true when no argument list is given")
	}
	if alias.From != "f" || alias.To != "g" {
		t.Errorf("expected f -> g, got %s -> %s", alias.From, alias.To)
	}
	if alias.Arity != 0 || len(alias.ArgTypes) != 0 {
		t.Errorf("expected no argument types, got %+v", alias.ArgTypes)
	}
}

// func alias f(int, cstring) => g  ->  specific-overload match.
func TestParseFuncAliasWithArgTypes(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "int")
	b.Push(token.TNext, logger.NullLoc)
	word(b, "cstring")
	b.Push(token.TClose, logger.NullLoc)
	b.Push(token.TStrongArrow, logger.NullLoc)
	word(b, "g")

	ctx := newTestContext(b)
	alias, err := ParseFuncAlias(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if alias.MatchFirstOfName {
		t.Error("expected MatchFirstOfName to be false when an argument list is given")
	}
	if alias.Arity != 2 {
		t.Fatalf("expected arity 2, got %d", alias.Arity)
	}
	if !alias.ArgTypes[0].IsBaseOf("int") || !alias.ArgTypes[1].IsBaseOf("cstring") {
		t.Errorf("unexpected argument types: %+v", alias.ArgTypes)
	}
}

// func alias f(...) => g  ->  required vararg (C-style) overload.
func TestParseFuncAliasVarargOverload(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	b.Push(token.TEllipsis, logger.NullLoc)
	b.Push(token.TClose, logger.NullLoc)
	b.Push(token.TStrongArrow, logger.NullLoc)
	word(b, "g")

	ctx := newTestContext(b)
	alias, err := ParseFuncAlias(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if !alias.RequiredTraits.Has(ast.TraitVararg) {
		t.Error("expected TraitVararg to be required")
	}
}

// func alias f(..) => g  ->  required variadic (native) overload.
func TestParseFuncAliasVariadicOverload(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	b.Push(token.TRange, logger.NullLoc)
	b.Push(token.TClose, logger.NullLoc)
	b.Push(token.TStrongArrow, logger.NullLoc)
	word(b, "g")

	ctx := newTestContext(b)
	alias, err := ParseFuncAlias(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if !alias.RequiredTraits.Has(ast.TraitVariadic) {
		t.Error("expected TraitVariadic to be required")
	}
}

// func alias f(..., int) => g  ->  rejected: a variadic marker may only
// appear as the final entry (spec.md §4.1.5, alias.go's own doc comment).
func TestParseFuncAliasRejectsArgumentAfterVarargMarker(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	b.Push(token.TEllipsis, logger.NullLoc)
	b.Push(token.TNext, logger.NullLoc)
	word(b, "int")
	b.Push(token.TClose, logger.NullLoc)
	b.Push(token.TStrongArrow, logger.NullLoc)
	word(b, "g")

	ctx := newTestContext(b)
	_, err := ParseFuncAlias(ctx)
	if err == nil {
		t.Fatal("expected an error for an argument following a vararg marker")
	}
}

// func alias f(..., ..) => g  ->  same rejection applies to a second
// variadic-style marker following the first.
func TestParseFuncAliasRejectsMarkerAfterVarargMarker(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	b.Push(token.TEllipsis, logger.NullLoc)
	b.Push(token.TNext, logger.NullLoc)
	b.Push(token.TRange, logger.NullLoc)
	b.Push(token.TClose, logger.NullLoc)
	b.Push(token.TStrongArrow, logger.NullLoc)
	word(b, "g")

	ctx := newTestContext(b)
	_, err := ParseFuncAlias(ctx)
	if err == nil {
		t.Fatal("expected an error for a second marker following a vararg marker")
	}
}

// alias Name = int  ->  a plain type alias, distinct from a function alias.
func TestParseTypeAlias(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TAlias, logger.NullLoc)
	word(b, "Name")
	b.Push(token.TAssign, logger.NullLoc)
	word(b, "int")

	ctx := newTestContext(b)
	alias, err := ParseTypeAlias(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if alias.Name != "Name" {
		t.Errorf("expected name %q, got %q", "Name", alias.Name)
	}
	if !alias.Target.IsBaseOf("int") {
		t.Errorf("expected target type int, got %s", alias.Target)
	}
	if len(ctx.AST.TypeAliases) != 1 || ctx.AST.TypeAliases[0] != alias {
		t.Error("expected the type alias to be recorded on the AST root")
	}
}
