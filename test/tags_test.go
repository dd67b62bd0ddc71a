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

package test

import "testing"

func TestTagPrefix(t *testing.T) {
	ExpectEquality(t, id(), "")
	ExpectEquality(t, id(3), "[3]: ")
	ExpectEquality(t, id("videl", 320, 200), "[videl 320 200]: ")
}

func TestExpectTypes(t *testing.T) {
	ExpectSuccess(t, expect(t, true))
	ExpectSuccess(t, expect(t, nil))
	ExpectFailure(t, expect(t, false))
	ExpectFailure(t, expect(t, errorString("failure")))
}

type errorString string

func (e errorString) Error() string {
	return string(e)
}
