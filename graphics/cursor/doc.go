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

// Package cursor implements the mouse cursor and the compositing of the
// cursor onto a screen.
//
// The cursor is never drawn into the game's own pixels. During the present
// the part of the background under the cursor is copied into a scratch
// surface, the cursor is drawn over it and the scratch surface is converted
// to the screen in one pass. The scratch surface is aligned to the
// granularity of the screen's pixel converter so that the conversion never
// touches pixels outside the cursor's area.
//
// The scratch surface is owned by the Cursor and is only reallocated when a
// larger area is required.
package cursor
