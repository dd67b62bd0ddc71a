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
	"github.com/jetsetilly/gopherst/curated"
)

// Pools is the default Allocator. TT-RAM is optional.
type Pools struct {
	st *Arena
	tt *Arena
}

// NewPools is the preferred method of initialisation for the Pools type. The
// tt argument can be nil if the machine has no TT-RAM.
func NewPools(st *Arena, tt *Arena) *Pools {
	return &Pools{st: st, tt: tt}
}

// Allocate implements the Allocator interface. Requests for TT-RAM are
// satisfied from ST-RAM if there is no TT-RAM or if TT-RAM is exhausted.
// Requests for ST-RAM are never satisfied from TT-RAM.
func (p *Pools) Allocate(pool Pool, size int) (Block, error) {
	switch pool {
	case STRAM:
		return p.st.Allocate(size)
	case TTRAM:
		if p.tt != nil {
			b, err := p.tt.Allocate(size)
			if err == nil {
				return b, nil
			}
			if !curated.Is(err, PoolExhausted) {
				return Block{}, err
			}
		}
		return p.st.Allocate(size)
	}
	return Block{}, curated.Errorf(NoPool, pool)
}

// Free implements the Allocator interface.
func (p *Pools) Free(b Block) {
	switch b.Pool {
	case STRAM:
		p.st.Free(b)
	case TTRAM:
		if p.tt != nil {
			p.tt.Free(b)
		}
	}
}

// ST returns the ST-RAM arena.
func (p *Pools) ST() *Arena {
	return p.st
}

// TT returns the TT-RAM arena. Returns nil if there is no TT-RAM.
func (p *Pools) TT() *Arena {
	return p.tt
}

// Slice returns n bytes of memory at the bus address from whichever pool
// contains it.
func (p *Pools) Slice(addr uint32, n int) ([]byte, bool) {
	if d, ok := p.st.Slice(addr, n); ok {
		return d, true
	}
	if p.tt != nil {
		return p.tt.Slice(addr, n)
	}
	return nil, false
}

// VideoRAM is the Allocator for machines with a SuperVidel. Requests for
// ST-RAM are satisfied from the SuperVidel's video RAM. All other requests
// are passed to the fallback Allocator.
type VideoRAM struct {
	vram     *Arena
	fallback Allocator
}

// NewVRAM is the preferred method of initialisation for the VideoRAM type.
func NewVRAM(vram *Arena, fallback Allocator) *VideoRAM {
	return &VideoRAM{vram: vram, fallback: fallback}
}

// Allocate implements the Allocator interface.
func (v *VideoRAM) Allocate(pool Pool, size int) (Block, error) {
	if pool == STRAM || pool == VRAM {
		return v.vram.Allocate(size)
	}
	return v.fallback.Allocate(pool, size)
}

// Free implements the Allocator interface.
func (v *VideoRAM) Free(b Block) {
	if b.Pool == VRAM {
		v.vram.Free(b)
		return
	}
	v.fallback.Free(b)
}

// Arena returns the video RAM arena.
func (v *VideoRAM) Arena() *Arena {
	return v.vram
}

// Slice returns n bytes of memory at the bus address from the video RAM or
// from the fallback Allocator, if it supports the Slice() function.
func (v *VideoRAM) Slice(addr uint32, n int) ([]byte, bool) {
	if d, ok := v.vram.Slice(addr, n); ok {
		return d, true
	}
	if s, ok := v.fallback.(interface {
		Slice(uint32, int) ([]byte, bool)
	}); ok {
		return s.Slice(addr, n)
	}
	return nil, false
}
