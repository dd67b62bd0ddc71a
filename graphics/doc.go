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

// Package graphics is the graphics manager. It owns the screens that are
// scanned out by the video hardware, the chunky surface that the game draws
// to, the overlay, the palettes and the mouse cursor.
//
// Changes to the graphics mode and to the size of the game screen are made
// in a transaction:
//
//	m.BeginGFXTransaction()
//	m.SetGraphicsMode(graphics.TripleBuffering)
//	m.InitSize(320, 200, surface.CLUT8)
//	if err := m.EndGFXTransaction(); err != graphics.TransactionSuccess {
//		...
//	}
//
// Either all of the pending changes are committed or none of them are. The
// failures are reported as a bitmask. Calls to SetGraphicsMode() and
// InitSize() outside of a transaction are ignored.
//
// The game draws into a chunky surface in TT-RAM with CopyRectToScreen(),
// FillScreen() or LockScreen(). The areas that have changed are recorded by
// every screen. UpdateScreen() converts the dirty areas of the working
// screen to the hardware pixel format, composites the cursor and then shows
// the screen.
//
// In triple buffering mode the working screen is the first back buffer.
// After it has been drawn it is exchanged with the second back buffer, which
// is then exchanged with the front buffer at the next vertical blank.
package graphics
