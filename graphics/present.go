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

	"github.com/jetsetilly/gopherst/graphics/cursor"
	"github.com/jetsetilly/gopherst/graphics/dirty"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/graphics/surface"
)

// the screen that will be drawn to by the next present and the surface of
// chunky pixels that it is drawn from
func (m *Manager) workingScreen() (*screen, *surface.Surface) {
	if m.overlayVisible {
		return m.screens[OverlayBuffer], m.overlay
	}
	if m.current.Mode == TripleBuffering {
		return m.screens[BackBuffer1], m.chunky
	}
	return m.screens[FrontBuffer], m.chunky
}

// UpdateScreen presents the changes made since the previous call. Nothing
// happens if nothing has changed.
func (m *Manager) UpdateScreen() {
	if !m.ready() {
		return
	}

	scr, src := m.workingScreen()

	cursorVisible := m.cursor.Visible()
	if scr.dirty.Empty() && !scr.cursorChanged() {
		if m.paletteChanged {
			m.setPaletteRegisters(scr)
		}
		return
	}

	m.stats.Presents++

	cv := m.hw.Converter()
	gran := cv.Granularity()

	tgt := cursor.Target{
		Screen:     scr.view,
		Background: src,
		Converter:  cv,
		Keyed:      m.cursorKeyed(),
		Overlay:    m.overlayVisible,
		Palette:    &m.pal,
	}

	if scr.dirty.FullRedraw() {
		m.stats.FullRedraws++
	} else if !scr.oldCursorRect.Empty() && (scr.cursorChanged() || !cursorVisible) {
		// remove the cursor drawn by the previous present of this screen
		cursor.Restore(tgt, scr.oldCursorRect)
		m.stats.Restores++
	}

	redrawCursor := scr.cursorChanged() || scr.dirty.FullRedraw()
	_, cursorRect, _ := m.cursor.Rects(scr.view.Bounds())
	for _, r := range scr.dirty.Rects() {
		r = dirty.Align(r, gran, scr.view.Bounds())
		if r.Empty() {
			continue
		}
		cv.Convert(scr.view, src, r)
		m.stats.Conversions++
		if r.Overlaps(scr.oldCursorRect) || r.Overlaps(cursorRect) {
			redrawCursor = true
		}
	}

	m.stats.CursorPixels = 0
	if cursorVisible && redrawCursor {
		r, n := m.cursor.Composite(tgt)
		scr.oldCursorRect = r
		m.stats.CursorPixels = n
	} else if !cursorVisible {
		scr.oldCursorRect = image.Rectangle{}
	}

	scr.dirty.Clear()
	scr.clearCursorFlags()

	m.flip()
}

// cursor keycolors outside of the CLUT8 range mean the cursor has no
// transparent pixels
func (m *Manager) cursorKeyed() bool {
	return m.cursor.KeyColor() <= 0xff
}

// show the working screen
func (m *Manager) flip() {
	m.stats.Flips++

	if m.prefs.WaitVBL.Get().(bool) {
		m.hw.WaitVBL()
	}

	var shown *screen
	switch {
	case m.overlayVisible:
		shown = m.screens[OverlayBuffer]
	case m.current.Mode == TripleBuffering:
		// the newly drawn screen is ready to be shown. the old front buffer
		// becomes the next screen to be drawn to after the screen that was
		// already waiting
		m.screens[BackBuffer1], m.screens[BackBuffer2] = m.screens[BackBuffer2], m.screens[BackBuffer1]
		m.screens[FrontBuffer], m.screens[BackBuffer2] = m.screens[BackBuffer2], m.screens[FrontBuffer]
		shown = m.screens[FrontBuffer]
	default:
		shown = m.screens[FrontBuffer]
	}

	m.hw.SetScreenBase(shown.base())

	if m.paletteChanged {
		m.setPaletteRegisters(shown)
	}
}

func (m *Manager) setPaletteRegisters(scr *screen) {
	m.hw.SetPalette(palette.Encode(scr.pal, m.hw.PaletteEncoding()))
	m.paletteChanged = false
}

// ShownScreen returns the screen that is currently being shown.
func (m *Manager) ShownScreen() ScreenID {
	if m.overlayVisible {
		return OverlayBuffer
	}
	return FrontBuffer
}
