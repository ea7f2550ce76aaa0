package sfcache

import (
	"testing"

	"github.com/nyxlang/corec/internal/ast"
)

// Two lookups of structurally identical (but distinct, independently
// constructed) types must return the exact same entry address, and any
// tri-state answer recorded on one lookup must be visible through the
// other.
func TestLocateOrInsertStableAcrossClones(t *testing.T) {
	c := New()

	a := ast.MakeBasePtr("Foo")
	b := ast.MakeBasePtr("Foo")

	first := c.LocateOrInsert(a)
	second := c.LocateOrInsert(b)

	if first != second {
		t.Fatalf("expected the same entry for structurally identical types, got %p and %p", first, second)
	}

	first.HasDefer = ast.Yes
	if second.HasDefer != ast.Yes {
		t.Fatal("expected an update through one lookup to be visible through the other")
	}
}

// Distinct structural types must not collide onto the same entry
// (barring an actual hash collision, which a reasonable test fixture
// should not trigger).
func TestLocateOrInsertDistinctTypesDistinctEntries(t *testing.T) {
	c := New()

	foo := c.LocateOrInsert(ast.MakeBase("Foo"))
	bar := c.LocateOrInsert(ast.MakeBase("Bar"))

	if foo == bar {
		t.Fatal("expected distinct structural types to receive distinct entries")
	}
	if ast.Identical(foo.Type, bar.Type) {
		t.Fatal("expected distinct structural types to be structurally non-identical")
	}
}

// Values are never stored by reference to the caller's Type: mutating the
// Type after insertion must not perturb the cached entry (LocateOrInsert
// clones, mirroring ast_type_clone in the original).
func TestLocateOrInsertClonesInput(t *testing.T) {
	c := New()

	t1 := ast.MakeBasePtr("Foo")
	entry := c.LocateOrInsert(t1)

	t1[1].(*ast.ElemBase).Name = "mutated"

	if ast.Identical(entry.Type, t1) {
		t.Fatal("expected the cached entry's type to be independent of the caller's mutated type")
	}
}

// Many distinct structural types inserted into the fixed 1024-bucket table
// (64 of them, enough that some likely share a bucket, though no collision
// is guaranteed) each resolve to a distinct entry, whether it is a bucket
// head or chained off one.
func TestLocateOrInsertChainsOnCollision(t *testing.T) {
	c := New()

	seen := map[*Entry]bool{}
	for i := 0; i < 64; i++ {
		name := string(rune('A' + i%26))
		if i >= 26 {
			name += string(rune('a' + i/26))
		}
		e := c.LocateOrInsert(ast.MakeBase(name))
		seen[e] = true
	}

	if len(seen) != 64 {
		t.Fatalf("expected 64 distinct entries for 64 distinct types, got %d", len(seen))
	}
}
