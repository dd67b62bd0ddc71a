//go:build !statsview

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

package statsview

import (
	"fmt"
	"io"
)

// Address is empty when statsview is not available.
const Address = ""

// Launch writes a message to output explaining that statsview is not
// available in this build.
func Launch(output io.Writer) (stop func()) {
	fmt.Fprintln(output, "stats server not available in this build (build with -tags statsview)")
	return func() {}
}

// Available returns false when statsview is not available.
func Available() bool {
	return false
}
