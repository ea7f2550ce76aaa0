package irgen

import "github.com/nyxlang/corec/internal/ast"

// BasicBlock is one id-addressed block of instructions. Blocks are
// referenced by pointer throughout the Builder; because Builder.Blocks
// holds *BasicBlock rather than BasicBlock, appending a new block never
// invalidates an already-held block pointer — unlike
// original_source/include/IRGEN/ir_builder.h's realloc-backed
// ir_basicblock_t array, whose doc comment warns every pointer must be
// recalculated after build_basicblock.
type BasicBlock struct {
	ID     int
	Instrs []*Instruction
}

// loopContext is one entry of the break/continue label stack
// ((label?, breakBlockID, continueBlockID), spec.md §4's unchanged
// shape).
type loopContext struct {
	label           string
	breakBlockID    int
	continueBlockID int
}

// Builder holds all per-function IR construction state
// (original_source/include/IRGEN/ir_builder.h's ir_builder_t).
type Builder struct {
	Module *Module
	Func   *ast.Func

	Blocks  []*BasicBlock
	Current *BasicBlock

	loopStack []loopContext

	VarScope  *VarScope
	NextVarID int
}

// NewBuilder returns a Builder ready to build fn's body into module,
// starting with a single open entry block.
func NewBuilder(module *Module, fn *ast.Func) *Builder {
	b := &Builder{Module: module, Func: fn}
	b.VarScope = &VarScope{vars: make(map[string]*Variable)}
	b.BuildUsingBasicBlock(b.BuildBasicBlock())
	return b
}

// BuildBasicBlock appends a new, empty basic block and returns its id.
func (b *Builder) BuildBasicBlock() int {
	id := len(b.Blocks)
	b.Blocks = append(b.Blocks, &BasicBlock{ID: id})
	return id
}

// BuildUsingBasicBlock switches the block subsequent instructions are
// appended into.
func (b *Builder) BuildUsingBasicBlock(basicblockID int) {
	b.Current = b.Blocks[basicblockID]
}

// PrepareForNewLabel is a no-op kept for API parity with
// original_source's prepare_for_new_label, whose sole purpose (ensuring
// spare capacity in a manually managed label-stack array before a push)
// has no counterpart once that stack is a plain Go slice — append already
// grows it as needed.
func (b *Builder) PrepareForNewLabel() {}

// PushLoopLabel opens a new break/continue target for a (possibly
// labeled) loop.
func (b *Builder) PushLoopLabel(label string, breakBlockID, continueBlockID int) {
	b.loopStack = append(b.loopStack, loopContext{label: label, breakBlockID: breakBlockID, continueBlockID: continueBlockID})
}

// PopLoopLabel closes the innermost loop's break/continue target.
func (b *Builder) PopLoopLabel() {
	b.loopStack = b.loopStack[:len(b.loopStack)-1]
}

// resolveLoopTarget finds the break/continue loop context named label, or
// the innermost one if label is "".
func (b *Builder) resolveLoopTarget(label string) (loopContext, bool) {
	if label == "" {
		if len(b.loopStack) == 0 {
			return loopContext{}, false
		}
		return b.loopStack[len(b.loopStack)-1], true
	}
	for i := len(b.loopStack) - 1; i >= 0; i-- {
		if b.loopStack[i].label == label {
			return b.loopStack[i], true
		}
	}
	return loopContext{}, false
}

// BuildInstruction appends instr to the current block and returns a
// stable pointer to it.
func (b *Builder) BuildInstruction(instr Instruction) *Instruction {
	ptr := b.Module.Pool.Alloc(instr)
	b.Current.Instrs = append(b.Current.Instrs, ptr)
	return ptr
}

// BuildValueFromPrevInstruction returns a Value referencing the result of
// the most recently built instruction in the current block.
func (b *Builder) BuildValueFromPrevInstruction() Value {
	return Value{Data: &ValueResult{BlockID: b.Current.ID, InstrIndex: len(b.Current.Instrs) - 1}}
}

// IsCurrentBlockTerminated reports whether the current block already ends
// in a terminator (Break, CondBreak, or Ret); the statement walker uses
// this to avoid emitting unreachable fallthrough edges after `return` or
// `break`.
func (b *Builder) IsCurrentBlockTerminated() bool {
	if len(b.Current.Instrs) == 0 {
		return false
	}
	switch (*b.Current.Instrs[len(b.Current.Instrs)-1]).(type) {
	case *Break, *CondBreak, *Ret:
		return true
	default:
		return false
	}
}

// BuildVarPtr builds a varptr instruction and returns its value.
func (b *Builder) BuildVarPtr(typ ast.Type, variableID int) Value {
	b.BuildInstruction(&VarPtr{Type: typ, VariableID: variableID})
	return b.BuildValueFromPrevInstruction()
}

// BuildGVarPtr builds a globalvarptr instruction and returns its value.
func (b *Builder) BuildGVarPtr(typ ast.Type, globalID int) Value {
	b.BuildInstruction(&GVarPtr{Type: typ, GlobalID: globalID})
	return b.BuildValueFromPrevInstruction()
}

// BuildLoad builds a load instruction and returns its value.
func (b *Builder) BuildLoad(value Value) Value {
	b.BuildInstruction(&Load{Value: value})
	return b.BuildValueFromPrevInstruction()
}

// BuildStore builds a store instruction.
func (b *Builder) BuildStore(value, destination Value) {
	b.BuildInstruction(&Store{Value: value, Destination: destination})
}

// BuildBreak builds an unconditional break to basicblockID.
func (b *Builder) BuildBreak(basicblockID int) {
	b.BuildInstruction(&Break{BlockID: basicblockID})
}

// BuildCondBreak builds a conditional break.
func (b *Builder) BuildCondBreak(cond Value, trueBlockID, falseBlockID int) {
	b.BuildInstruction(&CondBreak{Cond: cond, TrueBlockID: trueBlockID, FalseBlockID: falseBlockID})
}

// BuildCall builds a call instruction and returns its value.
func (b *Builder) BuildCall(target string, args []Value, returnType ast.Type) Value {
	b.BuildInstruction(&Call{Target: target, Args: args, ReturnType: returnType})
	return b.BuildValueFromPrevInstruction()
}

// BuildArithmetic builds a binary-operator instruction and returns its
// value.
func (b *Builder) BuildArithmetic(op ast.BinaryOp, left, right Value) Value {
	b.BuildInstruction(&Arithmetic{Op: op, Left: left, Right: right})
	return b.BuildValueFromPrevInstruction()
}

// BuildRet builds a return instruction. valueOrNil is nil for a bare
// `return` from a void function.
func (b *Builder) BuildRet(valueOrNil *Value) {
	b.BuildInstruction(&Ret{ValueOrNil: valueOrNil})
}
