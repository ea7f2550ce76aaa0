package ast

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Element is one link of a Type, read outside-in: the first element is the
// outermost (e.g. a pointer), the last is the innermost named type.
type Element interface {
	isTypeElement()
	// encode appends a canonical, order-sensitive byte representation of
	// this element to buf, for use by Type.Hash and Identical.
	encode(buf *strings.Builder)
	clone() Element
	String() string
}

// Type is an ordered sequence of type elements. A well-formed Type has
// length >= 1 and its tail element is never ElemPointer (spec.md §3).
type Type []Element

// MakeBase builds the single-element Type `name`.
func MakeBase(name string) Type {
	return Type{&ElemBase{Name: name}}
}

// MakeBasePtr builds the two-element Type `*name`.
func MakeBasePtr(name string) Type {
	return Type{&ElemPointer{}, &ElemBase{Name: name}}
}

// MakePolymorph builds the single-element Type `$name`.
func MakePolymorph(name string, allowAutoConversion bool) Type {
	return Type{&ElemPolymorph{Name: name, AllowAutoConversion: allowAutoConversion}}
}

// ElemBase is a named type such as `int` or `MyStruct`.
type ElemBase struct{ Name string }

// ElemPointer prepends one level of indirection.
type ElemPointer struct{}

// ElemFixedArray is `[N]` with a literal length known at parse time.
type ElemFixedArray struct{ Length uint64 }

// ElemPolycount is `[$#N]` with a polymorphic count variable — the form
// ElemVarFixedArray collapses into after parsing, per spec.md §4.1.1's
// post-parse transformation.
type ElemPolycount struct{ Name string }

// ElemVarFixedArray is `[expr]` where expr is not yet known to be a
// polycount; the parser collapses these to ElemPolycount where applicable
// and leaves the rest (ordinary compile-time array-length expressions) as
// is. ExprText is a placeholder rendering of the length expression; actual
// expression evaluation is out of scope for this core (spec.md §1).
type ElemVarFixedArray struct{ ExprText string }

// ElemPolymorph is a polymorphic type variable `$T`.
type ElemPolymorph struct {
	Name                string
	AllowAutoConversion bool
}

// ElemGenericBase is `<$A,$B> StructName`.
type ElemGenericBase struct {
	Name              string
	Generics          []Type
	NameIsPolymorphic bool
}

// ElemFuncPtr is a function-pointer type shape.
type ElemFuncPtr struct {
	ArgTypes []Type
	ReturnType Type
	IsVararg bool
}

func (*ElemBase) isTypeElement()          {}
func (*ElemPointer) isTypeElement()       {}
func (*ElemFixedArray) isTypeElement()    {}
func (*ElemPolycount) isTypeElement()     {}
func (*ElemVarFixedArray) isTypeElement() {}
func (*ElemPolymorph) isTypeElement()     {}
func (*ElemGenericBase) isTypeElement()   {}
func (*ElemFuncPtr) isTypeElement()       {}

func (e *ElemBase) String() string { return e.Name }
func (e *ElemPointer) String() string { return "*" }
func (e *ElemFixedArray) String() string { return fmt.Sprintf("[%d]", e.Length) }
func (e *ElemPolycount) String() string { return fmt.Sprintf("[$#%s]", e.Name) }
func (e *ElemVarFixedArray) String() string { return fmt.Sprintf("[%s]", e.ExprText) }
func (e *ElemPolymorph) String() string { return "$" + e.Name }
func (e *ElemGenericBase) String() string {
	parts := make([]string, len(e.Generics))
	for i, g := range e.Generics {
		parts[i] = g.String()
	}
	return fmt.Sprintf("<%s> %s", strings.Join(parts, ","), e.Name)
}
func (e *ElemFuncPtr) String() string {
	parts := make([]string, len(e.ArgTypes))
	for i, a := range e.ArgTypes {
		parts[i] = a.String()
	}
	return fmt.Sprintf("func(%s) %s", strings.Join(parts, ","), e.ReturnType.String())
}

func (e *ElemBase) encode(buf *strings.Builder)          { buf.WriteString("B:" + e.Name + ";") }
func (e *ElemPointer) encode(buf *strings.Builder)        { buf.WriteString("P;") }
func (e *ElemFixedArray) encode(buf *strings.Builder)     { fmt.Fprintf(buf, "F:%d;", e.Length) }
func (e *ElemPolycount) encode(buf *strings.Builder)      { buf.WriteString("C:" + e.Name + ";") }
func (e *ElemVarFixedArray) encode(buf *strings.Builder)  { buf.WriteString("V:" + e.ExprText + ";") }
func (e *ElemPolymorph) encode(buf *strings.Builder) {
	fmt.Fprintf(buf, "M:%s:%v;", e.Name, e.AllowAutoConversion)
}
func (e *ElemGenericBase) encode(buf *strings.Builder) {
	buf.WriteString("G:" + e.Name + "[")
	for _, g := range e.Generics {
		g.encode(buf)
		buf.WriteString(",")
	}
	buf.WriteString("];")
}
func (e *ElemFuncPtr) encode(buf *strings.Builder) {
	buf.WriteString("FP[")
	for _, a := range e.ArgTypes {
		a.encode(buf)
		buf.WriteString(",")
	}
	buf.WriteString("]->")
	e.ReturnType.encode(buf)
	fmt.Fprintf(buf, ":%v;", e.IsVararg)
}

func (e *ElemBase) clone() Element { cp := *e; return &cp }
func (e *ElemPointer) clone() Element { cp := *e; return &cp }
func (e *ElemFixedArray) clone() Element { cp := *e; return &cp }
func (e *ElemPolycount) clone() Element { cp := *e; return &cp }
func (e *ElemVarFixedArray) clone() Element { cp := *e; return &cp }
func (e *ElemPolymorph) clone() Element { cp := *e; return &cp }
func (e *ElemGenericBase) clone() Element {
	cp := &ElemGenericBase{Name: e.Name, NameIsPolymorphic: e.NameIsPolymorphic}
	cp.Generics = make([]Type, len(e.Generics))
	for i, g := range e.Generics {
		cp.Generics[i] = g.Clone()
	}
	return cp
}
func (e *ElemFuncPtr) clone() Element {
	cp := &ElemFuncPtr{IsVararg: e.IsVararg, ReturnType: e.ReturnType.Clone()}
	cp.ArgTypes = make([]Type, len(e.ArgTypes))
	for i, a := range e.ArgTypes {
		cp.ArgTypes[i] = a.Clone()
	}
	return cp
}

// Clone returns a deep, mutation-independent copy of t (spec.md §8 law 2:
// "backfilled argument types are clones").
func (t Type) Clone() Type {
	if t == nil {
		return nil
	}
	out := make(Type, len(t))
	for i, e := range t {
		out[i] = e.clone()
	}
	return out
}

// String renders t outside-in with elements separated by single spaces,
// e.g. "* int" or "<$A> Box".
func (t Type) String() string {
	var b strings.Builder
	for i, e := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

func (t Type) encode() string {
	var b strings.Builder
	for _, e := range t {
		e.encode(&b)
	}
	return b.String()
}

// Hash returns a structural hash of t, stable across Clone and across
// process runs for the same structural shape. Used as the key of the
// special-function cache (spec.md §4.3: "the hash is AST-type structural").
func (t Type) Hash() uint64 {
	return xxhash.Sum64String(t.encode())
}

// Identical reports whether t and other have the same structural shape.
// Two clones of the same Type are always Identical.
func Identical(a, b Type) bool {
	return a.encode() == b.encode()
}

func (t Type) head() Element {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

func (t Type) tail() Element {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// IsVoid reports whether t is the single-element base type "void".
func (t Type) IsVoid() bool {
	return t.IsBaseOf("void")
}

// IsBase reports whether t is a single-element named type.
func (t Type) IsBase() bool {
	if len(t) != 1 {
		return false
	}
	_, ok := t[0].(*ElemBase)
	return ok
}

// IsBaseOf reports whether t is the single-element named type `name`.
func (t Type) IsBaseOf(name string) bool {
	b, ok := t.headBase()
	return ok && len(t) == 1 && b.Name == name
}

func (t Type) headBase() (*ElemBase, bool) {
	if len(t) == 0 {
		return nil, false
	}
	b, ok := t[0].(*ElemBase)
	return b, ok
}

// IsPointer reports whether t's outermost element is one level of
// indirection.
func (t Type) IsPointer() bool {
	if len(t) == 0 {
		return false
	}
	_, ok := t[0].(*ElemPointer)
	return ok
}

// IsBasePtr reports whether t is exactly `*Name`.
func (t Type) IsBasePtr() bool {
	if len(t) != 2 {
		return false
	}
	if _, ok := t[0].(*ElemPointer); !ok {
		return false
	}
	_, ok := t[1].(*ElemBase)
	return ok
}

// IsPolymorph reports whether t is a single-element polymorph `$T`.
func (t Type) IsPolymorph() bool {
	if len(t) != 1 {
		return false
	}
	_, ok := t[0].(*ElemPolymorph)
	return ok
}

// IsPolymorphPtr reports whether t is exactly `*$T`.
func (t Type) IsPolymorphPtr() bool {
	if len(t) != 2 {
		return false
	}
	if _, ok := t[0].(*ElemPointer); !ok {
		return false
	}
	_, ok := t[1].(*ElemPolymorph)
	return ok
}

// IsGenericBase reports whether t is a single-element generic-base type
// `<$A,$B> Name`.
func (t Type) IsGenericBase() bool {
	if len(t) != 1 {
		return false
	}
	_, ok := t[0].(*ElemGenericBase)
	return ok
}

// IsGenericBasePtr reports whether t is exactly `*<$A,$B> Name`.
func (t Type) IsGenericBasePtr() bool {
	if len(t) != 2 {
		return false
	}
	if _, ok := t[0].(*ElemPointer); !ok {
		return false
	}
	_, ok := t[1].(*ElemGenericBase)
	return ok
}

// IsFixedArray reports whether t's outermost element is a fixed-size array.
func (t Type) IsFixedArray() bool {
	if len(t) == 0 {
		return false
	}
	_, ok := t[0].(*ElemFixedArray)
	return ok
}

// IsPointerTo reports whether t is exactly one level of indirection more
// than other, i.e. t == *other.
func IsPointerTo(t, other Type) bool {
	if len(t) == 0 {
		return false
	}
	if _, ok := t[0].(*ElemPointer); !ok {
		return false
	}
	return Identical(t[1:], other)
}

// CollapsePolycountVarFixedArrays recursively rewrites every
// ElemVarFixedArray in t whose length expression denotes a polymorphic
// count into the dedicated ElemPolycount element, per spec.md §4.1.1's
// post-parse transformation. polycountName reports whether a given
// ElemVarFixedArray's ExprText is in fact a polycount reference (`$#N`)
// and, if so, returns its bare name; the caller passes the actual check
// because Type itself doesn't know about expressions.
func CollapsePolycountVarFixedArrays(t Type, polycountName func(exprText string) (string, bool)) {
	for i, e := range t {
		if vfa, ok := e.(*ElemVarFixedArray); ok {
			if name, ok := polycountName(vfa.ExprText); ok {
				t[i] = &ElemPolycount{Name: name}
			}
		}
		if gb, ok := e.(*ElemGenericBase); ok {
			for _, g := range gb.Generics {
				CollapsePolycountVarFixedArrays(g, polycountName)
			}
		}
	}
}
