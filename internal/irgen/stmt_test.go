package irgen

import (
	"testing"

	"github.com/nyxlang/corec/internal/ast"
)

func newTestBuilder() *Builder {
	fn := &ast.Func{Name: "test", ReturnType: ast.MakeBase("void")}
	return NewBuilder(NewModule(), fn)
}

// while true { break } lowers to exactly two new basic blocks beyond the
// function's entry block (spec.md §8's "IR break target" scenario): a
// body block and a post-loop merge block, with the body's break
// instruction targeting the merge block's id.
func TestWhileTrueBreakLowersToTwoBlocks(t *testing.T) {
	builder := newTestBuilder()
	entryID := builder.Current.ID

	whileStmt := ast.Stmt{Data: &ast.SWhile{
		Cond: ast.Expr{Data: &ast.EBool{Value: true}},
		Body: []ast.Stmt{{Data: &ast.SBreak{}}},
	}}

	if err := BuildStatements(builder, []ast.Stmt{whileStmt}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(builder.Blocks) != 3 {
		t.Fatalf("expected 3 total blocks (entry + body + merge), got %d", len(builder.Blocks))
	}

	bodyID := entryID + 1
	mergeID := entryID + 2

	entryBlock := builder.Blocks[entryID]
	if len(entryBlock.Instrs) != 1 {
		t.Fatalf("expected entry block to hold exactly 1 instruction, got %d", len(entryBlock.Instrs))
	}
	entryBreak, ok := (*entryBlock.Instrs[0]).(*Break)
	if !ok || entryBreak.BlockID != bodyID {
		t.Fatalf("expected entry block to unconditionally jump to body block %d, got %#v", bodyID, *entryBlock.Instrs[0])
	}

	bodyBlock := builder.Blocks[bodyID]
	if len(bodyBlock.Instrs) != 1 {
		t.Fatalf("expected body block to hold exactly 1 instruction, got %d", len(bodyBlock.Instrs))
	}
	bodyBreak, ok := (*bodyBlock.Instrs[0]).(*Break)
	if !ok || bodyBreak.BlockID != mergeID {
		t.Fatalf("expected break instruction to target post-loop merge block %d, got %#v", mergeID, *bodyBlock.Instrs[0])
	}

	if builder.Current.ID != mergeID {
		t.Fatalf("expected builder to end positioned on the merge block %d, got %d", mergeID, builder.Current.ID)
	}
}

// A block's instruction count depends only on how many instructions were
// built into it, not on how many unrelated blocks were created in
// between (the pool's stable-pointer arena must not let interleaved
// BuildBasicBlock calls disturb an existing block's Instrs).
func TestBlockLengthInvariantAcrossInterleavedBlocks(t *testing.T) {
	builder := newTestBuilder()
	target := builder.Current

	const n = 5
	for i := 0; i < n; i++ {
		builder.BuildInstruction(&Ret{})
		builder.BuildBasicBlock() // unrelated block, current pointer unchanged
	}

	if len(target.Instrs) != n {
		t.Fatalf("expected %d instructions in the original block, got %d", n, len(target.Instrs))
	}
	// total blocks: entry + n newly created (BuildUsingBasicBlock was
	// never called, so Current still points at the entry block).
	if len(builder.Blocks) != n+1 {
		t.Fatalf("expected %d total blocks, got %d", n+1, len(builder.Blocks))
	}
	if builder.Current != target {
		t.Fatal("expected builder.Current to remain the original block since BuildUsingBasicBlock was never called")
	}
}
