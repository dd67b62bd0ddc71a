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

// Package termhost runs the OSystem in a terminal. Keyboard input is read
// from the terminal in raw mode and sent to the IKBD interrupt handle as
// scancodes. Frames can optionally be drawn to the terminal with 24bit
// colour block characters.
//
// The mouse is not supported by the terminal host.
package termhost
