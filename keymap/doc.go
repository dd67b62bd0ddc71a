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

// Package keymap contains the translation tables used to turn Atari
// keyboard scancodes into portable keycodes and ASCII values.
//
// A Layout is the set of three 128 byte ASCII tables (unshifted, shifted and
// capslock) that the host operating system uses for the attached keyboard.
// Tables are built once from a Layout with NewTables() and are not modified
// afterwards.
//
// The package also provides the descriptors consumed by an external key
// remapping layer: HardwareInputSet() lists every key that can be pressed
// and the Keymap type describes a named list of actions and their default
// key combinations.
package keymap
