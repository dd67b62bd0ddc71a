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

package graphics

import (
	"image"

	"github.com/jetsetilly/gopherst/graphics/c2p"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/hardware/memory"
)

// Hardware is the video chipset that the graphics manager draws for.
type Hardware interface {
	Name() string

	// the allocator for screen and buffer memory. the allocator must not
	// change during the lifetime of the graphics manager
	Allocator() memory.Allocator

	// the pixel converter for the chipset
	Converter() c2p.Converter

	// the format of the palette registers
	PaletteEncoding() palette.Encoding

	// the screen resolutions supported by the chipset. in order of
	// preference
	Resolutions() []image.Point

	// write to the video registers
	SetResolution(res image.Point)
	SetScreenBase(addr uint32)
	SetPalette(regs palette.Registers)

	// wait for the vertical blank
	WaitVBL()
}
