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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/gopherst/assert"
	"github.com/jetsetilly/gopherst/test"
)

func TestOwner(t *testing.T) {
	o := assert.NewOwner()
	test.ExpectSuccess(t, o.OnOwner())
	test.ExpectInequality(t, assert.GetGoRoutineID(), 0)

	done := make(chan bool)
	go func() {
		done <- o.OnOwner()
	}()
	test.ExpectFailure(t, <-done)
}
