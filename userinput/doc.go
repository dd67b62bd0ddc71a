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

// Package userinput is the portable event model. Events are produced by the
// events package, which decodes the Atari hardware input, and are consumed by
// the engine through the HandleInput interface.
//
// Keycodes are compatible with ASCII for the printable keys. The values of
// the non-printable keys are the values used by SDL 1.2, which many engines
// still expect.
package userinput
