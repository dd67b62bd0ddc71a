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

// Package demo is a small engine that exercises the OSystem. It sets up the
// graphics with a transaction, draws test patterns, moves the cursor and
// plays a tone. Every input event is logged.
//
// Keys:
//
//	Escape      quit
//	Help        toggle overlay (PageDown on a PC keyboard)
//	Space       redraw the test pattern
//	Cursor keys move the mouse cursor
//	M           toggle the mouse cursor
//
// The left mouse button paints on the game screen and the mouse wheel
// changes the paint colour.
package demo
