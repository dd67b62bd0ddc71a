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

// Package video emulates the video hardware of the Atari TT and Falcon,
// including the SuperVidel expansion for the Falcon.
//
// A Chipset holds the video registers that are written by the graphics
// manager: the screen base address, the palette and the resolution. The
// Scanout() function reads the screen from emulated memory in the same way
// as the real video hardware and produces an image that can be shown by the
// host.
package video
