package irgen

import "github.com/nyxlang/corec/internal/ast"

// Instruction is one IR operation. SPEC_FULL §4 fixes the closed set the
// statement walker emits: Load, Store, VarPtr, GVarPtr, Break, CondBreak,
// Call, Arithmetic, Ret, Phi. CondBreak is the one addition beyond
// spec.md's representative ("…") list, required to lower `if`/`while` to
// basic blocks.
type Instruction interface{ isInstr() }

func (*Load) isInstr()       {}
func (*Store) isInstr()      {}
func (*VarPtr) isInstr()     {}
func (*GVarPtr) isInstr()    {}
func (*Break) isInstr()      {}
func (*CondBreak) isInstr()  {}
func (*Call) isInstr()       {}
func (*Arithmetic) isInstr() {}
func (*Ret) isInstr()        {}
func (*Phi) isInstr()        {}

// Load reads the value pointed to by Value.
type Load struct{ Value Value }

// Store writes Value into the location Destination points to.
type Store struct {
	Value       Value
	Destination Value
}

// VarPtr produces a pointer to the bridge-scope local variable VariableID.
type VarPtr struct {
	Type       ast.Type
	VariableID int
}

// GVarPtr produces a pointer to the module-level global GlobalID.
type GVarPtr struct {
	Type     ast.Type
	GlobalID int
}

// Break is an unconditional terminator, jumping to BlockID.
type Break struct{ BlockID int }

// CondBreak is a conditional terminator: jumps to TrueBlockID if Cond is
// truthy, FalseBlockID otherwise. Not part of spec.md's explicit
// instruction list — added because lowering `if`/`while` requires a
// conditional branch and spec.md's "…" leaves the rest of the set open.
type CondBreak struct {
	Cond         Value
	TrueBlockID  int
	FalseBlockID int
}

// Call invokes the function named Target with Args, yielding ReturnType.
type Call struct {
	Target     string
	Args       []Value
	ReturnType ast.Type
}

// Arithmetic applies a binary operator to two already-built values.
type Arithmetic struct {
	Op    ast.BinaryOp
	Left  Value
	Right Value
}

// Ret is a terminator returning from the current function. ValueOrNil is
// nil for a bare `return` from a void function.
type Ret struct{ ValueOrNil *Value }

// PhiIncoming is one (value, predecessor block) pair feeding a Phi.
type PhiIncoming struct {
	Value       Value
	PredBlockID int
}

// Phi selects among values produced by distinct predecessor blocks. Named
// in spec.md's representative instruction list; this core never emits one
// itself (the statement walker always re-reads through a bridge variable
// instead of merging SSA values directly), but the type is defined so a
// later pass can construct one.
type Phi struct{ Incoming []PhiIncoming }

// Value is an IR operand: either the result of a previously built
// instruction or a literal.
type Value struct{ Data ValueData }

// ValueData is never called; its only purpose is to encode a closed
// variant type in Go's type system.
type ValueData interface{ isValue() }

func (*ValueResult) isValue()        {}
func (*ValueLiteralNumber) isValue() {}
func (*ValueLiteralString) isValue() {}
func (*ValueLiteralBool) isValue()   {}
func (*ValueNullPointer) isValue()   {}
func (*ValueLiteralStruct) isValue() {}
func (*ValueLiteralArray) isValue()  {}
func (*ValueGlobalPtr) isValue()     {}

// ValueResult references the result of the instruction at InstrIndex
// within block BlockID (build_value_from_prev_instruction).
type ValueResult struct {
	BlockID    int
	InstrIndex int
}

// ValueLiteralNumber is a literal numeric constant (build_literal_usize
// and friends, generalized beyond usize).
type ValueLiteralNumber struct{ Value float64 }

// ValueLiteralString is a literal C-string constant (build_literal_cstr).
type ValueLiteralString struct{ Value string }

// ValueLiteralBool is a literal boolean constant (build_bool).
type ValueLiteralBool struct{ Value bool }

// ValueNullPointer is the literal null pointer (build_null_pointer /
// build_null_pointer_of_type).
type ValueNullPointer struct{ Type ast.Type }

// ValueLiteralStruct references a module-level static struct
// (build_static_struct).
type ValueLiteralStruct struct{ Struct *StaticStruct }

// ValueLiteralArray references a module-level static array
// (build_static_array).
type ValueLiteralArray struct{ Array *StaticArray }

// ValueGlobalPtr references a module-level global variable
// (build_anon_global).
type ValueGlobalPtr struct{ Global *Global }
