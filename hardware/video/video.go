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

package video

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/jetsetilly/gopherst/curated"
	"github.com/jetsetilly/gopherst/graphics/c2p"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/hardware/memory"
	"github.com/jetsetilly/gopherst/limiter"
)

// Sentinal error patterns.
const (
	UnknownChipset = "video: unknown chipset (%s)"
	ScanoutFailed  = "video: screen base %#08x is not readable"
)

// Bus gives the video hardware access to memory.
type Bus interface {
	Slice(addr uint32, n int) ([]byte, bool)
}

// Registers are the video registers.
type Registers struct {
	ScreenBase uint32
	Palette    palette.Registers
	Mode       image.Point

	// the number of vertical blanks that have been waited for
	VBL int
}

// Chipset is the video hardware.
type Chipset struct {
	name        string
	alloc       memory.Allocator
	bus         Bus
	conv        c2p.Converter
	enc         palette.Encoding
	resolutions []image.Point
	refreshRate float32

	// paces WaitVBL(). can be nil
	limiter *limiter.Limiter

	Regs Registers
}

// Memory sizes and addresses used by New().
const (
	STRAMBase = 0x00010000
	STRAMSize = 4 * 1024 * 1024
	TTRAMBase = 0x01000000
	TTRAMSize = 16 * 1024 * 1024
	VRAMBase  = 0xa0000000
	VRAMSize  = 16 * 1024 * 1024
)

// List of chipset names accepted by New().
const (
	Videl      = "videl"
	SuperVidel = "supervidel"
	TT         = "tt"
)

// Chipsets returns the names accepted by New().
func Chipsets() []string {
	return []string{Videl, SuperVidel, TT}
}

// New creates a Chipset with a default memory configuration. The memory
// pools are created as part of the Chipset.
func New(name string) (*Chipset, error) {
	switch strings.ToLower(name) {
	case Videl:
		return NewVidel(memory.NewPools(memory.NewArena(memory.STRAM, STRAMBase, STRAMSize),
			memory.NewArena(memory.TTRAM, TTRAMBase, TTRAMSize))), nil
	case SuperVidel:
		pools := memory.NewPools(memory.NewArena(memory.STRAM, STRAMBase, STRAMSize),
			memory.NewArena(memory.TTRAM, TTRAMBase, TTRAMSize))
		return NewSuperVidel(memory.NewVRAM(memory.NewArena(memory.VRAM, VRAMBase, VRAMSize), pools)), nil
	case TT:
		return NewTT(memory.NewPools(memory.NewArena(memory.STRAM, STRAMBase, STRAMSize),
			memory.NewArena(memory.TTRAM, TTRAMBase, TTRAMSize))), nil
	}
	return nil, curated.Errorf(UnknownChipset, name)
}

// NewVidel creates the Falcon video hardware.
func NewVidel(pools *memory.Pools) *Chipset {
	return &Chipset{
		name:        "Videl",
		alloc:       pools,
		bus:         pools,
		conv:        c2p.Planar8{},
		enc:         palette.EncodingFalcon,
		refreshRate: 60,
		resolutions: []image.Point{
			image.Pt(320, 200), image.Pt(320, 240), image.Pt(640, 400), image.Pt(640, 480),
		},
	}
}

// NewSuperVidel creates the SuperVidel video hardware. Screens are
// allocated in the video RAM.
func NewSuperVidel(vram *memory.VideoRAM) *Chipset {
	return &Chipset{
		name:        "SuperVidel",
		alloc:       vram,
		bus:         vram,
		conv:        c2p.Packed{},
		enc:         palette.EncodingSuperVidel,
		refreshRate: 60,
		resolutions: []image.Point{
			image.Pt(320, 200), image.Pt(320, 240), image.Pt(640, 400), image.Pt(640, 480),
		},
	}
}

// NewTT creates the TT video hardware.
func NewTT(pools *memory.Pools) *Chipset {
	return &Chipset{
		name:        "TT",
		alloc:       pools,
		bus:         pools,
		conv:        c2p.Planar8{},
		enc:         palette.EncodingTT,
		refreshRate: 50,
		resolutions: []image.Point{
			image.Pt(320, 200), image.Pt(320, 480), image.Pt(640, 400),
		},
	}
}

func (c *Chipset) String() string {
	return fmt.Sprintf("%s %dx%d base=%#08x", c.name, c.Regs.Mode.X, c.Regs.Mode.Y, c.Regs.ScreenBase)
}

// Name implements the graphics.Hardware interface.
func (c *Chipset) Name() string {
	return c.name
}

// Allocator implements the graphics.Hardware interface.
func (c *Chipset) Allocator() memory.Allocator {
	return c.alloc
}

// Converter implements the graphics.Hardware interface.
func (c *Chipset) Converter() c2p.Converter {
	return c.conv
}

// PaletteEncoding implements the graphics.Hardware interface.
func (c *Chipset) PaletteEncoding() palette.Encoding {
	return c.enc
}

// Resolutions implements the graphics.Hardware interface.
func (c *Chipset) Resolutions() []image.Point {
	return c.resolutions
}

// SetResolution implements the graphics.Hardware interface.
func (c *Chipset) SetResolution(res image.Point) {
	c.Regs.Mode = res
}

// SetScreenBase implements the graphics.Hardware interface.
func (c *Chipset) SetScreenBase(addr uint32) {
	c.Regs.ScreenBase = addr
}

// SetPalette implements the graphics.Hardware interface.
func (c *Chipset) SetPalette(regs palette.Registers) {
	c.Regs.Palette = regs
}

// WaitVBL implements the graphics.Hardware interface. It blocks until the
// next frame if a Limiter has been attached.
func (c *Chipset) WaitVBL() {
	c.Regs.VBL++
	if c.limiter != nil {
		c.limiter.CheckFrame()
		c.limiter.MeasureActual()
	}
}

// RefreshRate returns the number of frames per second of the chipset.
func (c *Chipset) RefreshRate() float32 {
	return c.refreshRate
}

// AttachLimiter paces WaitVBL() with the Limiter. The refresh rate of the
// Limiter is set to the refresh rate of the chipset.
func (c *Chipset) AttachLimiter(lmtr *limiter.Limiter) {
	c.limiter = lmtr
	if lmtr != nil {
		lmtr.SetRefreshRate(c.refreshRate)
	}
}

// Bus returns the memory that the video hardware reads from.
func (c *Chipset) Bus() Bus {
	return c.bus
}

// Scanout reads the screen from memory and converts it to RGBA using the
// palette registers. The dst image is reused if it is the correct size,
// otherwise a new image is returned.
func (c *Chipset) Scanout(dst *image.RGBA) (*image.RGBA, error) {
	w, h := c.Regs.Mode.X, c.Regs.Mode.Y
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if w == 0 || h == 0 {
		return dst, nil
	}

	pitch := memory.AlignSize(w)
	scr, ok := c.bus.Slice(c.Regs.ScreenBase, pitch*h)
	if !ok {
		return dst, curated.Errorf(ScanoutFailed, c.Regs.ScreenBase)
	}

	chunky := make([]byte, w)
	for y := 0; y < h; y++ {
		row := scr[y*pitch : y*pitch+w]
		if c.conv.Planar() {
			c2p.DecodePlanar8(chunky, row, w)
		} else {
			copy(chunky, row)
		}
		for x, p := range chunky {
			r, g, b := c.Regs.Palette.Decode(p)
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return dst, nil
}
