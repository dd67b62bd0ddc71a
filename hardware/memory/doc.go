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

// Package memory models the memory pools of the Atari ST/TT/Falcon family.
//
// ST-RAM is the memory that the video hardware can read. Anything that is
// scanned out must be allocated from ST-RAM. TT-RAM (sometimes called "fast
// RAM" or "alt RAM") cannot be seen by the video hardware and is preferred for
// buffers that are only touched by the CPU. Machines without TT-RAM satisfy
// TT-RAM requests from ST-RAM, in the same way as TOS Mxalloc() mode 3.
//
// The Allocator interface is the only way the graphics package gets memory.
// The allocator is chosen when the graphics manager is created and is not
// changed afterwards. SuperVidel equipped machines use the VRAM allocator,
// which places screen memory in the SuperVidel's own video RAM.
//
// All allocations are rounded up to a multiple of 16 bytes and are aligned to
// 16 bytes.
package memory
