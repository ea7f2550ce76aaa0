package parser

import (
	"testing"

	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/config"
	"github.com/nyxlang/corec/internal/logger"
	"github.com/nyxlang/corec/internal/token"
)

func newTestContext(tb *token.Builder) *Context {
	list := tb.Build()
	astRoot := ast.New()
	opts := &config.Options{Log: logger.NewDeferLog()}
	return New(list, astRoot, opts)
}

func word(b *token.Builder, name string) *token.Builder {
	return b.Word(name, logger.NullLoc)
}

func num(b *token.Builder, literal string) *token.Builder {
	return b.PushPayload(token.TGenericInt, logger.NullLoc, literal)
}

// Backfill inheritance: func f(a, b, c int = 7) void { }
func TestParseFuncBackfillInheritance(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "a")
	b.Push(token.TNext, logger.NullLoc)
	word(b, "b")
	b.Push(token.TNext, logger.NullLoc)
	word(b, "c")
	word(b, "int")
	b.Push(token.TAssign, logger.NullLoc)
	num(b, "7")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")
	b.Push(token.TBegin, logger.NullLoc)
	b.Push(token.TEnd, logger.NullLoc)

	ctx := newTestContext(b)
	f, err := ParseFunc(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}

	if f.Arity != 3 {
		t.Fatalf("expected arity 3, got %d", f.Arity)
	}
	for i, name := range []string{"a", "b", "c"} {
		if f.ArgNames[i] != name {
			t.Errorf("arg %d: expected name %q, got %q", i, name, f.ArgNames[i])
		}
		if !f.ArgTypes[i].IsBaseOf("int") {
			t.Errorf("arg %d: expected type int, got %s", i, f.ArgTypes[i])
		}
		if f.ArgDefaults[i] == nil {
			t.Fatalf("arg %d: expected a default expression", i)
		}
		n, ok := f.ArgDefaults[i].Data.(*ast.ENumber)
		if !ok || n.Value != 7 {
			t.Errorf("arg %d: expected default 7, got %#v", i, f.ArgDefaults[i].Data)
		}
	}
	// backfilled types must be independently mutable clones (spec.md §8 law 2).
	f.ArgTypes[0][0].(*ast.ElemBase).Name = "mutated"
	if f.ArgTypes[2].IsBaseOf("mutated") {
		t.Error("backfilled argument types must not alias each other")
	}
}

// func f(a = 9, b, c int = 7) void { } -> defaults 9,7,7
func TestParseFuncBackfillPartialDefaults(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "a")
	b.Push(token.TAssign, logger.NullLoc)
	num(b, "9")
	b.Push(token.TNext, logger.NullLoc)
	word(b, "b")
	b.Push(token.TNext, logger.NullLoc)
	word(b, "c")
	word(b, "int")
	b.Push(token.TAssign, logger.NullLoc)
	num(b, "7")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")
	b.Push(token.TBegin, logger.NullLoc)
	b.Push(token.TEnd, logger.NullLoc)

	ctx := newTestContext(b)
	f, err := ParseFunc(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}

	wantDefaults := []float64{9, 7, 7}
	for i, want := range wantDefaults {
		if f.ArgDefaults[i] == nil {
			t.Fatalf("arg %d: expected a default expression", i)
		}
		n, ok := f.ArgDefaults[i].Data.(*ast.ENumber)
		if !ok || n.Value != want {
			t.Errorf("arg %d: expected default %v, got %#v", i, want, f.ArgDefaults[i].Data)
		}
	}
}

// foreign puts(cstring) -> one anonymous argument of type cstring
func TestParseForeignAnonymousArgument(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TForeign, logger.NullLoc)
	word(b, "puts")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "cstring")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")

	ctx := newTestContext(b)
	f, err := ParseFunc(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if f.Arity != 1 {
		t.Fatalf("expected arity 1, got %d", f.Arity)
	}
	if f.ArgNames[0] != "" {
		t.Errorf("expected anonymous argument, got name %q", f.ArgNames[0])
	}
	if !f.ArgTypes[0].IsBaseOf("cstring") {
		t.Errorf("expected type cstring, got %s", f.ArgTypes[0])
	}
}

// foreign puts(msg cstring) -> one named argument
func TestParseForeignNamedArgument(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TForeign, logger.NullLoc)
	word(b, "puts")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "msg")
	word(b, "cstring")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")

	ctx := newTestContext(b)
	f, err := ParseFunc(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if f.Arity != 1 || f.ArgNames[0] != "msg" || !f.ArgTypes[0].IsBaseOf("cstring") {
		t.Fatalf("unexpected parse result: %+v", f)
	}
}

// foreign puts(cstring, msg int) -> ambiguous: previous bare-type argument
// followed by one that resolves as a name.
func TestParseForeignAmbiguousArgument(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TForeign, logger.NullLoc)
	word(b, "puts")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "cstring")
	b.Push(token.TNext, logger.NullLoc)
	word(b, "msg")
	word(b, "int")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")

	ctx := newTestContext(b)
	_, err := ParseFunc(ctx)
	if err == nil {
		t.Fatal("expected an ambiguity error, got none")
	}
	msgs := ctx.Log().Done()
	if len(msgs) == 0 {
		t.Fatal("expected a diagnostic to be recorded")
	}
	found := false
	for _, m := range msgs {
		if m.Text != "" && contains(m.Text, "ambiguous") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an 'ambiguous' diagnostic, got %v", msgs)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

// func __defer__(this *Foo) void { } succeeds.
func TestParseDeferPrototypeSucceeds(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	word(b, "__defer__")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "this")
	b.Push(token.TMultiply, logger.NullLoc)
	word(b, "Foo")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")
	b.Push(token.TBegin, logger.NullLoc)
	b.Push(token.TEnd, logger.NullLoc)

	ctx := newTestContext(b)
	if _, err := ParseFunc(ctx); err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
}

// func __defer__(this *Foo) int { } fails the __defer__ prototype check.
func TestParseDeferPrototypeRejectsNonVoidReturn(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	word(b, "__defer__")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "this")
	b.Push(token.TMultiply, logger.NullLoc)
	word(b, "Foo")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "int")
	b.Push(token.TBegin, logger.NullLoc)
	b.Push(token.TEnd, logger.NullLoc)

	ctx := newTestContext(b)
	_, err := ParseFunc(ctx)
	if err == nil {
		t.Fatal("expected __defer__ prototype violation to be rejected")
	}
}

// foreign bar($T) void is rejected: polymorphic foreign functions.
func TestParsePolymorphicForeignRejected(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TForeign, logger.NullLoc)
	word(b, "bar")
	b.Push(token.TOpen, logger.NullLoc)
	b.Push(token.TPolymorph, logger.NullLoc)
	word(b, "T")
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")

	ctx := newTestContext(b)
	_, err := ParseFunc(ctx)
	if err == nil {
		t.Fatal("expected polymorphic foreign function to be rejected")
	}
}

// func f(items ...) void { } -> variadic_arg_name "items", arity 0.
func TestParseVariadicTransform(t *testing.T) {
	b := &token.Builder{}
	b.Push(token.TFunc, logger.NullLoc)
	word(b, "f")
	b.Push(token.TOpen, logger.NullLoc)
	word(b, "items")
	b.Push(token.TEllipsis, logger.NullLoc)
	b.Push(token.TClose, logger.NullLoc)
	word(b, "void")
	b.Push(token.TBegin, logger.NullLoc)
	b.Push(token.TEnd, logger.NullLoc)

	ctx := newTestContext(b)
	f, err := ParseFunc(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v, diagnostics: %v", err, ctx.Log().Done())
	}
	if f.VariadicArgName != "items" {
		t.Errorf("expected variadic_arg_name 'items', got %q", f.VariadicArgName)
	}
	if f.Arity != 0 {
		t.Errorf("expected arity 0, got %d", f.Arity)
	}
	if !f.Traits.Has(ast.TraitVariadic) {
		t.Error("expected VARIADIC trait to be set")
	}
}
