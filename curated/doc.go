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

// Package curated wraps the Go error type so that errors can be identified by
// the pattern used to create them. Packages export their patterns as
// constants:
//
//	const PoolExhausted = "memory: %s exhausted (requested %d bytes)"
//
//	err := curated.Errorf(memory.PoolExhausted, pool, size)
//	if curated.Is(err, memory.PoolExhausted) {
//		...
//	}
//
// Has() looks for the pattern anywhere in the error chain. Curated errors
// unwrap to the errors in their values so errors.Is() and errors.As() from the
// standard library work as expected.
package curated
