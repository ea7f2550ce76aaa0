package irgen

import (
	"testing"

	"github.com/nyxlang/corec/internal/ast"
)

func TestModuleSharedTypesAreMemoized(t *testing.T) {
	m := NewModule()

	if !ast.Identical(m.UsizeType(), m.UsizeType()) {
		t.Fatal("expected repeated UsizeType() calls to return structurally identical types")
	}
	if !ast.Identical(m.UsizePtrType(), ast.MakeBasePtr("usize")) {
		t.Fatal("expected UsizePtrType() to be *usize")
	}
	if !ast.Identical(m.BoolType(), ast.MakeBase("bool")) {
		t.Fatal("expected BoolType() to be bool")
	}
}

func TestModuleStaticAndGlobalBuilders(t *testing.T) {
	m := NewModule()

	one := Value{Data: &ValueLiteralNumber{Value: 1}}
	two := Value{Data: &ValueLiteralNumber{Value: 2}}

	structVal := m.BuildStaticStruct(ast.MakeBase("Point"), []Value{one, two}, false)
	ref, ok := structVal.Data.(*ValueLiteralStruct)
	if !ok || len(ref.Struct.Values) != 2 {
		t.Fatalf("expected a 2-field static struct value, got %#v", structVal.Data)
	}

	arrayVal := m.BuildStaticArray(ast.MakeBase("int"), []Value{one, two, one})
	arrRef, ok := arrayVal.Data.(*ValueLiteralArray)
	if !ok || len(arrRef.Array.Values) != 3 {
		t.Fatalf("expected a 3-element static array value, got %#v", arrayVal.Data)
	}

	g := m.BuildAnonGlobal(ast.MakeBase("int"), true)
	gref, ok := g.Data.(*ValueGlobalPtr)
	if !ok {
		t.Fatalf("expected BuildAnonGlobal to return a global-pointer value, got %#v", g.Data)
	}
	if !gref.Global.IsConstant {
		t.Error("expected the anonymous global to be marked constant")
	}
	if err := m.BuildAnonGlobalInitializer(g, one); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gref.Global.Initializer == nil {
		t.Fatal("expected the anonymous global to have an initializer attached")
	}

	if err := m.BuildAnonGlobalInitializer(structVal, one); err == nil {
		t.Fatal("expected an error when attaching an initializer to a non-global value")
	}
}
