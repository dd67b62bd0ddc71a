// This file is part of GopherST.
//
// GopherST is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherST is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherST.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jetsetilly/gopherst/curated"
)

// Sentinal error patterns.
const (
	PoolExhausted = "memory: %s exhausted (requested %d bytes)"
	NoPool        = "memory: no %s pool"
	InvalidSize   = "memory: invalid allocation size (%d)"
)

// Alignment of every allocation.
const Alignment = 16

// Pool identifies a memory pool.
type Pool int

// List of valid Pool values.
const (
	STRAM Pool = iota
	TTRAM
	VRAM
)

func (p Pool) String() string {
	switch p {
	case STRAM:
		return "ST-RAM"
	case TTRAM:
		return "TT-RAM"
	case VRAM:
		return "VRAM"
	}
	return fmt.Sprintf("unknown pool (%d)", int(p))
}

// Block is an allocated area of memory. The Pool field is the pool that the
// memory was actually allocated from, which might not be the pool that was
// requested.
type Block struct {
	Pool Pool
	Addr uint32
	Data []byte
}

func (b Block) String() string {
	return fmt.Sprintf("%s %#08x (%d bytes)", b.Pool, b.Addr, len(b.Data))
}

// Allocator is implemented by types that can allocate memory from a pool.
type Allocator interface {
	Allocate(pool Pool, size int) (Block, error)
	Free(b Block)
}

// AlignSize rounds size up to the next multiple of Alignment.
func AlignSize(size int) int {
	return (size + Alignment - 1) &^ (Alignment - 1)
}

type span struct {
	offset int
	size   int
}

// Arena is a contiguous area of memory at a fixed bus address. Allocation is
// first-fit.
type Arena struct {
	crit sync.Mutex

	pool Pool
	base uint32
	mem  []byte

	// free spans sorted by offset. adjacent spans are always merged
	free []span

	// allocated spans keyed by offset
	used map[int]int
}

// NewArena is the preferred method of initialisation for the Arena type. The
// base address and size are rounded to the Alignment.
func NewArena(pool Pool, base uint32, size int) *Arena {
	base = (base + Alignment - 1) &^ (Alignment - 1)
	size &^= Alignment - 1

	return &Arena{
		pool: pool,
		base: base,
		mem:  make([]byte, size),
		free: []span{{offset: 0, size: size}},
		used: make(map[int]int),
	}
}

func (a *Arena) String() string {
	a.crit.Lock()
	defer a.crit.Unlock()
	return fmt.Sprintf("%s: base %#08x, size %d, free %d in %d spans, %d allocations",
		a.pool, a.base, len(a.mem), a.available(), len(a.free), len(a.used))
}

// Pool returns the pool that the Arena represents.
func (a *Arena) Pool() Pool {
	return a.pool
}

// Base returns the bus address of the first byte in the Arena.
func (a *Arena) Base() uint32 {
	return a.base
}

// Size returns the size of the Arena in bytes.
func (a *Arena) Size() int {
	return len(a.mem)
}

// Available returns the number of free bytes. The free memory might be
// fragmented.
func (a *Arena) Available() int {
	a.crit.Lock()
	defer a.crit.Unlock()
	return a.available()
}

func (a *Arena) available() int {
	n := 0
	for _, s := range a.free {
		n += s.size
	}
	return n
}

// Allocate a Block from the Arena.
func (a *Arena) Allocate(size int) (Block, error) {
	if size <= 0 {
		return Block{}, curated.Errorf(InvalidSize, size)
	}
	size = AlignSize(size)

	a.crit.Lock()
	defer a.crit.Unlock()

	for i, s := range a.free {
		if s.size < size {
			continue
		}

		if s.size == size {
			a.free = append(a.free[:i], a.free[i+1:]...)
		} else {
			a.free[i] = span{offset: s.offset + size, size: s.size - size}
		}
		a.used[s.offset] = size

		// memory is cleared on allocation
		d := a.mem[s.offset : s.offset+size : s.offset+size]
		clear(d)

		return Block{
			Pool: a.pool,
			Addr: a.base + uint32(s.offset),
			Data: d,
		}, nil
	}

	return Block{}, curated.Errorf(PoolExhausted, a.pool, size)
}

// Owns returns true if the Block was allocated by the Arena.
func (a *Arena) Owns(b Block) bool {
	if b.Pool != a.pool || b.Addr < a.base {
		return false
	}
	a.crit.Lock()
	defer a.crit.Unlock()
	_, ok := a.used[int(b.Addr-a.base)]
	return ok
}

// Free a Block previously allocated by the Arena. Blocks not allocated by
// the Arena are ignored.
func (a *Arena) Free(b Block) {
	if b.Addr < a.base {
		return
	}
	offset := int(b.Addr - a.base)

	a.crit.Lock()
	defer a.crit.Unlock()

	size, ok := a.used[offset]
	if !ok {
		return
	}
	delete(a.used, offset)

	i := sort.Search(len(a.free), func(i int) bool {
		return a.free[i].offset > offset
	})
	a.free = append(a.free, span{})
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = span{offset: offset, size: size}

	// merge with following span
	if i+1 < len(a.free) && a.free[i].offset+a.free[i].size == a.free[i+1].offset {
		a.free[i].size += a.free[i+1].size
		a.free = append(a.free[:i+1], a.free[i+2:]...)
	}

	// merge with preceding span
	if i > 0 && a.free[i-1].offset+a.free[i-1].size == a.free[i].offset {
		a.free[i-1].size += a.free[i].size
		a.free = append(a.free[:i], a.free[i+1:]...)
	}
}

// Slice returns n bytes of the Arena starting at the bus address. Returns
// false if the range is not entirely inside the Arena.
func (a *Arena) Slice(addr uint32, n int) ([]byte, bool) {
	if addr < a.base || n < 0 {
		return nil, false
	}
	offset := int(addr - a.base)
	if offset+n > len(a.mem) {
		return nil, false
	}
	return a.mem[offset : offset+n], true
}
