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

package cursor

import (
	"fmt"
	"image"

	"github.com/jetsetilly/gopherst/graphics/c2p"
	"github.com/jetsetilly/gopherst/graphics/dirty"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/logger"
)

// Cursor is the mouse cursor.
type Cursor struct {
	visible bool

	// position of the cursor's hotspot. the game screen and the overlay each
	// have a position. the position of the screen not being shown is kept in
	// swapPos
	pos     image.Point
	swapPos image.Point

	bitmap   *surface.Surface
	hotspot  image.Point
	keycolor uint32

	// palette used when drawing the cursor on the overlay
	pal        palette.Palette
	hasPalette bool

	// set by Rects() when the cursor is entirely outside of the bounds
	outOfScreen bool

	// scratch surface used for compositing
	cache *surface.Surface
}

// NewCursor is the preferred method of initialisation for the Cursor type.
func NewCursor() *Cursor {
	return &Cursor{}
}

func (c *Cursor) String() string {
	if c.bitmap == nil {
		return fmt.Sprintf("no bitmap at %d,%d", c.pos.X, c.pos.Y)
	}
	return fmt.Sprintf("%dx%d at %d,%d (hotspot %d,%d)", c.bitmap.W, c.bitmap.H,
		c.pos.X, c.pos.Y, c.hotspot.X, c.hotspot.Y)
}

// SetSurface replaces the cursor bitmap. The buf slice is copied. Only the
// CLUT8 pixel format is supported.
func (c *Cursor) SetSurface(buf []byte, w int, h int, hotspotX int, hotspotY int, keycolor uint32, format surface.PixelFormat) {
	if format != surface.CLUT8 {
		logger.Logf(logger.Allow, "cursor", "unsupported cursor format: %s", format)
		return
	}

	if w <= 0 || h <= 0 || len(buf) < w*h {
		c.bitmap = nil
		return
	}

	c.bitmap = surface.New(w, h, format)
	c.bitmap.CopyFromBuffer(buf, w, 0, 0, w, h)
	c.hotspot = image.Pt(hotspotX, hotspotY)
	c.keycolor = keycolor
}

// Size returns the dimensions of the cursor bitmap.
func (c *Cursor) Size() image.Point {
	if c.bitmap == nil {
		return image.Point{}
	}
	return image.Pt(c.bitmap.W, c.bitmap.H)
}

// KeyColor returns the colour of the transparent pixels in the bitmap.
func (c *Cursor) KeyColor() uint32 {
	return c.keycolor
}

// SetPalette sets entries of the palette used to draw the cursor on the
// overlay. The colors slice is packed RGB triplets.
func (c *Cursor) SetPalette(colors []byte, start int, num int) {
	c.pal.Set(colors, start, num)
	c.hasPalette = true
}

// DisablePalette causes the cursor to be drawn on the overlay with the
// palette supplied to Composite().
func (c *Cursor) DisablePalette() {
	c.hasPalette = false
}

// SetVisible shows or hides the cursor. Returns the previous visibility.
func (c *Cursor) SetVisible(visible bool) bool {
	v := c.visible
	c.visible = visible
	return v
}

// Visible returns true if the cursor is visible.
func (c *Cursor) Visible() bool {
	return c.visible
}

// SetPosition moves the cursor to an absolute position. The position is not
// clamped.
func (c *Cursor) SetPosition(x int, y int) {
	c.pos = image.Pt(x, y)
}

// UpdatePosition moves the cursor relative to the current position. The new
// position is clamped to the bounds.
func (c *Cursor) UpdatePosition(dx int, dy int, bounds image.Rectangle) {
	c.pos = clamp(c.pos.Add(image.Pt(dx, dy)), bounds)
}

// Position returns the position of the cursor's hotspot.
func (c *Cursor) Position() image.Point {
	return c.pos
}

// SetSwapPosition sets the position that the next call to Swap() will move
// the cursor to.
func (c *Cursor) SetSwapPosition(x int, y int) {
	c.swapPos = image.Pt(x, y)
}

// Swap exchanges the current position with the swap position. Used when
// changing between the game screen and the overlay so that each keeps its own
// cursor position. The new position is clamped to the bounds.
func (c *Cursor) Swap(bounds image.Rectangle) {
	c.pos, c.swapPos = clamp(c.swapPos, bounds), c.pos
}

func clamp(p image.Point, bounds image.Rectangle) image.Point {
	if bounds.Empty() {
		return p
	}
	p.X = max(bounds.Min.X, min(p.X, bounds.Max.X-1))
	p.Y = max(bounds.Min.Y, min(p.Y, bounds.Max.Y-1))
	return p
}

// OutOfScreen returns true if the most recent call to Rects() found the
// cursor to be entirely outside of the bounds.
func (c *Cursor) OutOfScreen() bool {
	return c.outOfScreen
}

// Rects returns the part of the cursor bitmap that is visible inside the
// bounds and the area of the bounds that it covers. The two rectangles are
// the same size. Returns false if no part of the cursor is visible.
func (c *Cursor) Rects(bounds image.Rectangle) (src image.Rectangle, dst image.Rectangle, ok bool) {
	if c.bitmap == nil {
		c.outOfScreen = true
		return image.Rectangle{}, image.Rectangle{}, false
	}

	full := c.bitmap.Bounds().Add(c.pos.Sub(c.hotspot))
	dst = full.Intersect(bounds)
	if dst.Empty() {
		c.outOfScreen = true
		return image.Rectangle{}, image.Rectangle{}, false
	}

	c.outOfScreen = false
	src = dst.Sub(full.Min)
	return src, dst, true
}

// Target describes the screen that the cursor is composited onto.
type Target struct {
	// the hardware screen. the same size as the background
	Screen *surface.Surface

	// the chunky pixels that make up the screen
	Background *surface.Surface

	// converter from chunky pixels to the hardware format
	Converter c2p.Converter

	// pixels in the cursor bitmap matching the key color are not drawn
	Keyed bool

	// the background is the overlay. cursor pixels are converted to RGB332
	// using the cursor palette or the Palette field if the cursor palette has
	// been disabled
	Overlay bool
	Palette *palette.Palette
}

// Composite draws the cursor onto the target. Returns the area of the screen
// that was changed and the number of cursor pixels that were drawn. Nothing
// is drawn if the cursor is not visible or is outside of the screen.
func (c *Cursor) Composite(t Target) (image.Rectangle, int) {
	if !c.visible || c.bitmap == nil {
		return image.Rectangle{}, 0
	}

	bounds := t.Background.Bounds()
	src, dst, ok := c.Rects(bounds)
	if !ok {
		return image.Rectangle{}, 0
	}

	aligned := dirty.Align(dst, t.Converter.Granularity(), bounds)
	scratch := c.scratch(aligned.Size())

	// background
	scratch.CopyRectFrom(t.Background, aligned, image.Point{})

	// cursor
	pal := &c.pal
	if !c.hasPalette && t.Palette != nil {
		pal = t.Palette
	}

	offset := dst.Min.Sub(aligned.Min)
	n := 0
	for y := 0; y < src.Dy(); y++ {
		row := scratch.Row(offset.Y + y)
		for x := 0; x < src.Dx(); x++ {
			p := c.bitmap.At(src.Min.X+x, src.Min.Y+y)
			if t.Keyed && p == c.keycolor {
				continue
			}
			if t.Overlay {
				p = uint32(toRGB332(pal, uint8(p)))
			}
			row[offset.X+x] = byte(p)
			n++
		}
	}

	// converting the scratch surface to a view of the screen means the
	// rectangle for the conversion starts at the origin
	t.Converter.Convert(t.Screen.Sub(aligned), scratch, scratch.Bounds())

	return aligned, n
}

// Restore copies the area of the background described by r to the screen,
// removing a previously composited cursor. The rectangle is usually one
// returned by Composite().
func Restore(t Target, r image.Rectangle) {
	r = dirty.Align(r, t.Converter.Granularity(), t.Background.Bounds())
	if r.Empty() {
		return
	}
	t.Converter.Convert(t.Screen, t.Background, r)
}

// scratch returns a view of the cache surface of the requested size. The
// cache is only reallocated if it is too small.
func (c *Cursor) scratch(sz image.Point) *surface.Surface {
	if c.cache == nil || c.cache.W < sz.X || c.cache.H < sz.Y {
		w, h := sz.X, sz.Y
		if c.cache != nil {
			w = max(w, c.cache.W)
			h = max(h, c.cache.H)
		}
		c.cache = surface.New(w, h, surface.CLUT8)
	}
	return c.cache.Sub(image.Rectangle{Max: sz})
}

// CacheSize returns the size of the scratch surface.
func (c *Cursor) CacheSize() image.Point {
	if c.cache == nil {
		return image.Point{}
	}
	return image.Pt(c.cache.W, c.cache.H)
}

func toRGB332(pal *palette.Palette, idx uint8) uint8 {
	r, g, b := pal.RGB(idx)
	return r&0xe0 | (g>>3)&0x1c | b>>6
}
