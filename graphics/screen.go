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
	"fmt"
	"image"

	"github.com/jetsetilly/gopherst/graphics/dirty"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/hardware/memory"
)

// ScreenID identifies the screens owned by the graphics manager.
type ScreenID int

// List of valid ScreenID values.
const (
	FrontBuffer ScreenID = iota
	BackBuffer1
	BackBuffer2
	OverlayBuffer
	NumScreens
)

func (id ScreenID) String() string {
	switch id {
	case FrontBuffer:
		return "front"
	case BackBuffer1:
		return "back1"
	case BackBuffer2:
		return "back2"
	case OverlayBuffer:
		return "overlay"
	}
	return fmt.Sprintf("unknown screen (%d)", int(id))
}

// the number of rows above and below the visible area of a screen. the
// padding means the video hardware never reads beyond the allocated memory
const screenPadding = 2

// screen is a surface in ST-RAM that can be shown by the video hardware.
type screen struct {
	// the entire allocation
	surf *surface.Surface

	// the visible area of the screen, starting after the padding
	visible *surface.Surface

	// the area of the visible screen that the game (or overlay) draws to. the
	// view is centred on the visible screen
	view   *surface.Surface
	offset image.Point

	dirty *dirty.Tracker

	// the palette to use when the screen is shown
	pal *palette.Palette

	cursorPositionChanged   bool
	cursorSurfaceChanged    bool
	cursorVisibilityChanged bool

	// the area of the view that contained the cursor when the screen was
	// last drawn
	oldCursorRect image.Rectangle
}

// newScreen allocates the memory for a screen. The view is size sz and the
// horizontal offset of the view is aligned to the granularity.
func newScreen(alloc memory.Allocator, res image.Point, sz image.Point, granularity int, pal *palette.Palette) (*screen, error) {
	surf, err := surface.Allocate(alloc, memory.STRAM, res.X, res.Y+screenPadding*2, surface.CLUT8)
	if err != nil {
		return nil, err
	}

	scr := &screen{
		surf: surf,
		pal:  pal,
	}

	scr.visible = surf.Sub(image.Rect(0, screenPadding, res.X, res.Y+screenPadding))

	scr.offset = image.Pt((res.X-sz.X)/2, (res.Y-sz.Y)/2)
	if granularity > 1 {
		scr.offset.X -= scr.offset.X % granularity
	}
	scr.view = scr.visible.Sub(image.Rectangle{Max: sz}.Add(scr.offset))

	scr.dirty = dirty.NewTracker(scr.view.Bounds())
	scr.dirty.SetFullRedraw()

	return scr, nil
}

func (scr *screen) String() string {
	return fmt.Sprintf("%s view=%v dirty=%d full=%v", scr.surf, scr.offset, len(scr.dirty.Rects()), scr.dirty.FullRedraw())
}

// base is the address of the first visible pixel
func (scr *screen) base() uint32 {
	return scr.visible.Addr
}

func (scr *screen) free(alloc memory.Allocator) {
	scr.surf.Free(alloc)
}

// addDirtyRect in the coordinates of the view
func (scr *screen) addDirtyRect(r image.Rectangle) {
	scr.dirty.Add(r)
}

func (scr *screen) cursorChanged() bool {
	return scr.cursorPositionChanged || scr.cursorSurfaceChanged || scr.cursorVisibilityChanged
}

func (scr *screen) clearCursorFlags() {
	scr.cursorPositionChanged = false
	scr.cursorSurfaceChanged = false
	scr.cursorVisibilityChanged = false
}

// clear the entire screen, including the padding and the border around the
// view
func (scr *screen) clear() {
	scr.surf.Fill(0)
	scr.oldCursorRect = image.Rectangle{}
	scr.dirty.SetFullRedraw()
}
