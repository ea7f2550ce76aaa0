// Package sfcache implements the special-function cache: a fixed-capacity
// hash table memoizing, per AST type, whether that type has a __pass__,
// __defer__, or __assign__ management function, so the IR builder only
// asks the answer once per distinct structural type.
package sfcache

import "github.com/nyxlang/corec/internal/ast"

// capacity is the fixed bucket count (original_source's
// IR_GEN_SF_CACHE_SIZE), never resized; collisions chain off the bucket
// head instead.
const capacity = 1024

// Entry holds the tri-state management-function answers for one
// structural AST type. Answers only ever move Unknown -> {Yes, No}, never
// back (spec.md §4.3, ast.Troolean's own invariant).
type Entry struct {
	Type      ast.Type
	HasPass   ast.Troolean
	HasDefer  ast.Troolean
	HasAssign ast.Troolean

	next *Entry
}

// Cache is the fixed-capacity closed-addressing hash table
// (original_source/src/IRGEN/ir_cache.c's ir_gen_sf_cache_t): each bucket
// holds its first entry embedded in the storage array, with any further
// colliding entries chained off of it.
type Cache struct {
	storage  [capacity]Entry
	occupied [capacity]bool
}

// New returns an empty special-function cache.
func New() *Cache {
	return &Cache{}
}

// LocateOrInsert returns the cache entry for t, inserting a fresh
// Unknown/Unknown/Unknown entry the first time t (by structural identity,
// not pointer identity) is seen. The returned pointer is stable for the
// lifetime of the cache (ir_gen_sf_cache_locate_or_insert).
func (c *Cache) LocateOrInsert(t ast.Type) *Entry {
	idx := t.Hash() % capacity

	if !c.occupied[idx] {
		c.storage[idx] = newEntry(t)
		c.occupied[idx] = true
		return &c.storage[idx]
	}

	entry := &c.storage[idx]
	for {
		if ast.Identical(entry.Type, t) {
			return entry
		}
		if entry.next == nil {
			fresh := newEntry(t)
			entry.next = &fresh
			return entry.next
		}
		entry = entry.next
	}
}

func newEntry(t ast.Type) Entry {
	return Entry{
		Type:      t.Clone(),
		HasPass:   ast.Unknown,
		HasDefer:  ast.Unknown,
		HasAssign: ast.Unknown,
	}
}
