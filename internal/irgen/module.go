package irgen

import "github.com/nyxlang/corec/internal/ast"

// Global is one module-level anonymous or named global variable
// (build_anon_global / build_anon_global_initializer).
type Global struct {
	ID          int
	Type        ast.Type
	IsConstant  bool
	Initializer *Value
}

// StaticStruct is a module-level static aggregate value
// (build_static_struct): a fixed field-value list bound to a composite
// type, optionally mutable in place.
type StaticStruct struct {
	Type      ast.Type
	Values    []Value
	IsMutable bool
}

// StaticArray is a module-level static array value (build_static_array).
type StaticArray struct {
	Type   ast.Type
	Values []Value
}

// Module is everything shared across every function built within one
// translation unit: the instruction arena, module-level globals and
// static aggregates, and the set of IR types memoized so repeated queries
// for the same shared shape return the identical Type value
// (ir_builder_funcptr / ir_builder_usize / ir_builder_usize_ptr /
// ir_builder_bool).
type Module struct {
	Pool *Pool

	Globals       []*Global
	StaticStructs []*StaticStruct
	StaticArrays  []*StaticArray

	sharedFuncPtr  ast.Type
	sharedUsize    ast.Type
	sharedUsizePtr ast.Type
	sharedBool     ast.Type
}

// NewModule returns an empty Module with a fresh instruction arena.
func NewModule() *Module {
	return &Module{Pool: NewPool()}
}

// BuildStaticStruct registers a static struct value and returns a Value
// referencing it.
func (m *Module) BuildStaticStruct(typ ast.Type, values []Value, makeMutable bool) Value {
	s := &StaticStruct{Type: typ, Values: values, IsMutable: makeMutable}
	m.StaticStructs = append(m.StaticStructs, s)
	return Value{Data: &ValueLiteralStruct{Struct: s}}
}

// BuildStaticArray registers a static array value and returns a Value
// referencing it.
func (m *Module) BuildStaticArray(typ ast.Type, values []Value) Value {
	a := &StaticArray{Type: typ, Values: values}
	m.StaticArrays = append(m.StaticArrays, a)
	return Value{Data: &ValueLiteralArray{Array: a}}
}

// BuildAnonGlobal declares a new anonymous global of the given type and
// returns a Value referencing a pointer to it (build_anon_global).
func (m *Module) BuildAnonGlobal(typ ast.Type, isConstant bool) Value {
	g := &Global{ID: len(m.Globals), Type: typ, IsConstant: isConstant}
	m.Globals = append(m.Globals, g)
	return Value{Data: &ValueGlobalPtr{Global: g}}
}

// BuildAnonGlobalInitializer attaches initializer to the anonymous global
// anonGlobal was built from (build_anon_global_initializer).
func (m *Module) BuildAnonGlobalInitializer(anonGlobal Value, initializer Value) error {
	ref, ok := anonGlobal.Data.(*ValueGlobalPtr)
	if !ok {
		return internalErrorf("BuildAnonGlobalInitializer called on a value that is not an anonymous global pointer")
	}
	ref.Global.Initializer = &initializer
	return nil
}

// FuncPtrType returns the shared IR function-pointer type, memoizing it
// on first use (ir_builder_funcptr).
func (m *Module) FuncPtrType() ast.Type {
	if m.sharedFuncPtr == nil {
		m.sharedFuncPtr = ast.Type{&ast.ElemFuncPtr{}}
	}
	return m.sharedFuncPtr
}

// UsizeType returns the shared IR usize type, memoizing it on first use
// (ir_builder_usize).
func (m *Module) UsizeType() ast.Type {
	if m.sharedUsize == nil {
		m.sharedUsize = ast.MakeBase("usize")
	}
	return m.sharedUsize
}

// UsizePtrType returns the shared IR usize-pointer type, memoizing it on
// first use (ir_builder_usize_ptr).
func (m *Module) UsizePtrType() ast.Type {
	if m.sharedUsizePtr == nil {
		m.sharedUsizePtr = ast.MakeBasePtr("usize")
	}
	return m.sharedUsizePtr
}

// BoolType returns the shared IR bool type, memoizing it on first use
// (ir_builder_bool).
func (m *Module) BoolType() ast.Type {
	if m.sharedBool == nil {
		m.sharedBool = ast.MakeBase("bool")
	}
	return m.sharedBool
}
