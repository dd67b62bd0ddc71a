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

// Package platform composes the event source, the graphics manager, the
// mixer and the timer manager into an OSystem. The OSystem is the only type
// that a game engine needs.
//
// The OSystem is not safe for concurrent use. It must be used from the
// goroutine that created it, which is also the goroutine that services the
// host. The only other goroutine is the host's interrupt context, which
// communicates through the ikbd package.
package platform
