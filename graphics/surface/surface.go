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

// Package surface implements the pixel surfaces used by the graphics
// package. A Surface is a rectangle of pixels in a byte slice. The slice
// might be memory allocated from one of the Atari memory pools, in which case
// the Surface knows the bus address of its first pixel.
package surface

import (
	"fmt"
	"image"

	"github.com/jetsetilly/gopherst/hardware/memory"
)

// PixelFormat of a Surface.
type PixelFormat int

// List of valid PixelFormat values.
const (
	CLUT8 PixelFormat = iota
	RGB332
	RGB565
)

func (f PixelFormat) String() string {
	switch f {
	case CLUT8:
		return "CLUT8"
	case RGB332:
		return "RGB332"
	case RGB565:
		return "RGB565"
	}
	return fmt.Sprintf("unknown format (%d)", int(f))
}

// BytesPerPixel returns the number of bytes used by a single pixel.
func (f PixelFormat) BytesPerPixel() int {
	if f == RGB565 {
		return 2
	}
	return 1
}

// Surface is a rectangle of pixels.
type Surface struct {
	Pixels []byte
	W      int
	H      int

	// number of bytes from the start of one row to the start of the next
	Pitch int

	Format PixelFormat

	// bus address of the first pixel. zero if the surface is not in
	// emulated memory
	Addr uint32

	// the memory block the surface owns. only valid for surfaces created with
	// Allocate(). views created with Sub() never own memory
	block memory.Block
	owned bool
}

func (s *Surface) String() string {
	return fmt.Sprintf("%dx%d %s pitch=%d addr=%#08x", s.W, s.H, s.Format, s.Pitch, s.Addr)
}

// New creates a Surface in Go memory.
func New(w int, h int, format PixelFormat) *Surface {
	pitch := w * format.BytesPerPixel()
	return &Surface{
		Pixels: make([]byte, pitch*h),
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: format,
	}
}

// Allocate creates a Surface in the requested memory pool. The pitch of the
// surface is rounded up to the memory alignment so that every row starts on
// an aligned address.
func Allocate(alloc memory.Allocator, pool memory.Pool, w int, h int, format PixelFormat) (*Surface, error) {
	pitch := memory.AlignSize(w * format.BytesPerPixel())

	b, err := alloc.Allocate(pool, pitch*h)
	if err != nil {
		return nil, err
	}

	return &Surface{
		Pixels: b.Data,
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: format,
		Addr:   b.Addr,
		block:  b,
		owned:  true,
	}, nil
}

// Free the memory owned by the Surface. The Surface should not be used
// afterwards. It is safe to call Free() on a view or on a Surface created
// with New().
func (s *Surface) Free(alloc memory.Allocator) {
	if !s.owned {
		return
	}
	alloc.Free(s.block)
	s.owned = false
	s.Pixels = nil
}

// Block returns the memory block owned by the Surface. Returns false if the
// Surface doesn't own a block.
func (s *Surface) Block() (memory.Block, bool) {
	return s.block, s.owned
}

// Bounds returns the rectangle covered by the Surface. The top-left corner
// is always (0,0).
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// PixelOffset returns the index into Pixels of the pixel at (x,y).
func (s *Surface) PixelOffset(x int, y int) int {
	return y*s.Pitch + x*s.Format.BytesPerPixel()
}

// Row returns the pixels of row y.
func (s *Surface) Row(y int) []byte {
	o := s.PixelOffset(0, y)
	return s.Pixels[o : o+s.W*s.Format.BytesPerPixel()]
}

// Sub returns a view of the Surface. Changes to the pixels of the view are
// changes to the pixels of the Surface. The rectangle is clipped to the
// bounds of the Surface.
func (s *Surface) Sub(r image.Rectangle) *Surface {
	r = r.Intersect(s.Bounds())
	o := s.PixelOffset(r.Min.X, r.Min.Y)

	v := &Surface{
		W:      r.Dx(),
		H:      r.Dy(),
		Pitch:  s.Pitch,
		Format: s.Format,
	}

	if !r.Empty() {
		v.Pixels = s.Pixels[o:]
		if s.Addr != 0 {
			v.Addr = s.Addr + uint32(o)
		}
	}

	return v
}

// CopyRectFrom copies the rectangle r of the src Surface to the point pt of
// this Surface. Both surfaces must have the same PixelFormat. The copy is
// clipped to both surfaces.
func (s *Surface) CopyRectFrom(src *Surface, r image.Rectangle, pt image.Point) {
	r = r.Intersect(src.Bounds())
	if r.Empty() {
		return
	}

	// clip destination and adjust source to match
	dst := r.Sub(r.Min).Add(pt)
	clipped := dst.Intersect(s.Bounds())
	if clipped.Empty() {
		return
	}
	r.Min = r.Min.Add(clipped.Min.Sub(dst.Min))
	r.Max = r.Min.Add(clipped.Size())

	bpp := s.Format.BytesPerPixel()
	n := clipped.Dx() * bpp
	for y := 0; y < clipped.Dy(); y++ {
		so := src.PixelOffset(r.Min.X, r.Min.Y+y)
		do := s.PixelOffset(clipped.Min.X, clipped.Min.Y+y)
		copy(s.Pixels[do:do+n], src.Pixels[so:so+n])
	}
}

// CopyFromBuffer copies w×h pixels from buf, which has the specified pitch,
// to the point (x,y) of the Surface. The copy is clipped to the Surface.
func (s *Surface) CopyFromBuffer(buf []byte, pitch int, x int, y int, w int, h int) {
	src := &Surface{
		Pixels: buf,
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: s.Format,
	}
	s.CopyRectFrom(src, src.Bounds(), image.Pt(x, y))
}

// Fill the entire Surface with the colour.
func (s *Surface) Fill(c uint32) {
	s.FillRect(s.Bounds(), c)
}

// FillRect fills the rectangle with the colour. The rectangle is clipped to
// the Surface. RGB565 colours are stored big-endian.
func (s *Surface) FillRect(r image.Rectangle, c uint32) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}

	bpp := s.Format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.Pixels[s.PixelOffset(r.Min.X, y):s.PixelOffset(r.Max.X, y)]
		if bpp == 1 {
			for i := range row {
				row[i] = byte(c)
			}
			continue
		}
		for i := 0; i < len(row); i += 2 {
			row[i] = byte(c >> 8)
			row[i+1] = byte(c)
		}
	}
}

// At returns the value of the pixel at (x,y). Returns zero if the point is
// outside the Surface.
func (s *Surface) At(x int, y int) uint32 {
	if !image.Pt(x, y).In(s.Bounds()) {
		return 0
	}
	o := s.PixelOffset(x, y)
	if s.Format.BytesPerPixel() == 2 {
		return uint32(s.Pixels[o])<<8 | uint32(s.Pixels[o+1])
	}
	return uint32(s.Pixels[o])
}
