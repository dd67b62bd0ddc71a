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

	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/hardware/memory"
	"github.com/jetsetilly/gopherst/logger"
)

// BeginGFXTransaction starts a transaction. The pending state starts as a
// copy of the current state.
func (m *Manager) BeginGFXTransaction() {
	if m.inTransaction {
		logger.Log(logger.Allow, "graphics", "transaction already started")
		return
	}
	m.inTransaction = true
	m.pending = m.current
}

// SetGraphicsMode changes the mode in the pending state. Returns false if it
// is called outside of a transaction.
func (m *Manager) SetGraphicsMode(mode Mode) bool {
	if !m.inTransaction {
		logger.Logf(logger.Allow, "graphics", "SetGraphicsMode(%s) outside of transaction", mode)
		return false
	}
	m.pending.Mode = mode
	return true
}

// InitSize changes the game screen size and format in the pending state.
// It is ignored if it is called outside of a transaction.
func (m *Manager) InitSize(width int, height int, format surface.PixelFormat) {
	if !m.inTransaction {
		logger.Logf(logger.Allow, "graphics", "InitSize(%d, %d) outside of transaction", width, height)
		return
	}
	m.pending.Width = width
	m.pending.Height = height
	m.pending.Format = format
}

// validate the pending state. returns the resolution to use for the pending
// state
func (m *Manager) validate() (image.Point, TransactionError) {
	var err TransactionError

	switch m.pending.Mode {
	case SingleBuffering, TripleBuffering:
	default:
		// size change failure is also set because callers only treat a size
		// change failure as fatal
		err |= ModeSwitchFailed | SizeChangeFailed
	}

	if m.pending.Format != surface.CLUT8 {
		err |= FormatNotSupported | SizeChangeFailed
	}

	var res image.Point
	found := false
	if m.pending.Width > 0 && m.pending.Height > 0 {
		for _, r := range m.hw.Resolutions() {
			if r.X >= m.pending.Width && r.Y >= m.pending.Height {
				res = r
				found = true
				break
			}
		}
	}
	if !found {
		err |= SizeChangeFailed
	}

	return res, err
}

// EndGFXTransaction validates and commits the pending state. If validation
// fails the current state is unchanged and the failures are returned.
func (m *Manager) EndGFXTransaction() TransactionError {
	if !m.inTransaction {
		logger.Log(logger.Allow, "graphics", "transaction not started")
		return TransactionSuccess
	}
	m.inTransaction = false

	res, terr := m.validate()
	if terr != TransactionSuccess {
		logger.Logf(logger.Allow, "graphics", "transaction failed: %s: %s", m.pending, terr)
		m.pending = m.current
		return terr
	}

	if m.pending == m.current && m.ready() {
		return TransactionSuccess
	}

	m.release()
	m.res = res

	err := m.allocate()
	if err != nil {
		m.release()
		m.pending = m.current
		m.fatal(err)

		// fatal should not return but if it does the transaction has failed
		return SizeChangeFailed
	}

	m.current = m.pending
	m.hw.SetResolution(m.res)
	m.paletteChanged = true

	// make sure the cursor is somewhere sensible in the new screen
	m.WarpMouse(m.cursor.Position().X, m.cursor.Position().Y)
	if !m.overlayVisible {
		m.overlayCursorSet = false
	}

	logger.Logf(logger.Allow, "graphics", "%s on %dx%d screen", m.current, m.res.X, m.res.Y)

	return TransactionSuccess
}

// allocate the surfaces and screens for the pending state
func (m *Manager) allocate() error {
	alloc := m.hw.Allocator()
	gran := m.hw.Converter().Granularity()

	m.pitchWidth = m.pending.Width
	if gran > 1 {
		m.pitchWidth = (m.pending.Width + gran - 1) / gran * gran
	}
	sz := image.Pt(m.pitchWidth, m.pending.Height)

	var err error

	// chunky buffers are only touched by the CPU
	m.chunky, err = surface.Allocate(alloc, memory.TTRAM, sz.X, sz.Y, surface.CLUT8)
	if err != nil {
		return err
	}
	m.overlay, err = surface.Allocate(alloc, memory.TTRAM, m.res.X, m.res.Y, surface.RGB332)
	if err != nil {
		return err
	}

	ids := []ScreenID{FrontBuffer, OverlayBuffer}
	if m.pending.Mode == TripleBuffering {
		ids = append(ids, BackBuffer1, BackBuffer2)
	}

	for _, id := range ids {
		if id == OverlayBuffer {
			m.screens[id], err = newScreen(alloc, m.res, m.res, gran, m.overlayPal)
		} else {
			m.screens[id], err = newScreen(alloc, m.res, sz, gran, &m.pal)
		}
		if err != nil {
			return err
		}
		m.screens[id].clear()
		m.applyDirtyPrefs(m.screens[id])
	}

	return nil
}

// release all memory owned by the graphics manager
func (m *Manager) release() {
	alloc := m.hw.Allocator()
	for i, scr := range m.screens {
		if scr != nil {
			scr.free(alloc)
			m.screens[i] = nil
		}
	}
	if m.chunky != nil {
		m.chunky.Free(alloc)
		m.chunky = nil
	}
	if m.overlay != nil {
		m.overlay.Free(alloc)
		m.overlay = nil
	}
	m.locked = nil
}

// Destroy releases all memory owned by the graphics manager.
func (m *Manager) Destroy() {
	m.release()
}
