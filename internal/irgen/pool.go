package irgen

// poolChunkCapacity bounds how many instructions a single pool chunk holds
// before a new chunk is appended. Fixed capacity per chunk keeps every
// *Instruction handed out by Alloc stable for the chunk's lifetime — an
// append that grows a chunk's backing array would otherwise invalidate
// earlier pointers into it.
const poolChunkCapacity = 256

// Pool is an arena allocator for Instructions, grounded in
// original_source/src/IRGEN/ir_cache.c's embedded-first-entry,
// monotonic-growth convention: instructions are appended and never freed
// individually, the whole arena is dropped at once when the owning Module
// goes out of scope.
type Pool struct {
	chunks []*poolChunk
}

type poolChunk struct {
	items [poolChunkCapacity]Instruction
	len   int
}

// NewPool returns an empty instruction arena.
func NewPool() *Pool {
	return &Pool{}
}

// Alloc stores instr in the arena and returns a stable pointer to it.
func (p *Pool) Alloc(instr Instruction) *Instruction {
	if len(p.chunks) == 0 || p.chunks[len(p.chunks)-1].len == poolChunkCapacity {
		p.chunks = append(p.chunks, &poolChunk{})
	}
	c := p.chunks[len(p.chunks)-1]
	c.items[c.len] = instr
	ptr := &c.items[c.len]
	c.len++
	return ptr
}
