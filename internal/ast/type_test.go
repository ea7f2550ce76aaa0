package ast

import "testing"

func TestCloneIsMutationIndependent(t *testing.T) {
	original := MakeBase("int")
	clone := original.Clone()

	clone[0].(*ElemBase).Name = "float"

	if original[0].(*ElemBase).Name != "int" {
		t.Fatalf("mutating a clone affected the original: %q", original[0].(*ElemBase).Name)
	}
	if !Identical(original, MakeBase("int")) {
		t.Fatal("original type changed unexpectedly")
	}
}

func TestIdenticalStructural(t *testing.T) {
	a := MakeBasePtr("Foo")
	b := MakeBasePtr("Foo")
	c := MakeBasePtr("Bar")

	if !Identical(a, b) {
		t.Fatal("expected *Foo to be identical to *Foo")
	}
	if Identical(a, c) {
		t.Fatal("expected *Foo to differ from *Bar")
	}
}

func TestHashStableAcrossClone(t *testing.T) {
	original := MakeBasePtr("Foo")
	clone := original.Clone()

	if original.Hash() != clone.Hash() {
		t.Fatal("hash should be stable across Clone")
	}
}

func TestPredicates(t *testing.T) {
	voidType := MakeBase("void")
	if !voidType.IsVoid() {
		t.Fatal("expected void type to report IsVoid")
	}

	ptr := MakeBasePtr("Foo")
	if !ptr.IsPointer() || !ptr.IsBasePtr() {
		t.Fatal("expected *Foo to be a pointer and a base pointer")
	}
	if !IsPointerTo(ptr, MakeBase("Foo")) {
		t.Fatal("expected *Foo to be pointer-to Foo")
	}

	poly := MakePolymorph("T", false)
	if !poly.IsPolymorph() {
		t.Fatal("expected $T to report IsPolymorph")
	}
}
