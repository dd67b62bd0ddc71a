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

// Package sdlhost runs the OSystem in an SDL window. Keyboard and mouse
// events from SDL are translated into IKBD scancodes and mouse packets and
// sent to the interrupt handle. Frames are drawn with either the SDL
// renderer or with OpenGL.
//
// All functions must be called from the main thread.
package sdlhost
