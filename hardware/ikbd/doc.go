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

// Package ikbd is the boundary between the keyboard/mouse interrupt and the
// poll loop. On the real machine the IKBD (intelligent keyboard controller)
// sends a stream of bytes to the host and an interrupt handler moves those
// bytes into a queue of scancodes and a set of mouse scalars. This package
// preserves that protocol exactly.
//
// Scancode bytes: bit 7 is the release flag and bits 0 to 6 are the
// scancode. Mouse buttons: bit 0 is the right button and bit 1 is the left
// button. Mouse movement is accumulated between polls and is drained by the
// poll context with a single atomic swap.
//
// The Shared type owns all state. The interrupt context uses the Interrupt
// handle and the poll context uses the Poll handle.
package ikbd
