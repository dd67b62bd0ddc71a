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

package ansi_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopherst/host/termhost/ansi"
	"github.com/jetsetilly/gopherst/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("green", "black", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32;40m")

	s, err = ansi.ColorBuild("", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("puce", "", false, false)
	test.ExpectFailure(t, err)
}

func TestTrueColor(t *testing.T) {
	b := ansi.TrueColor(nil, color.RGBA{R: 255, G: 0, B: 16}, color.RGBA{R: 1, G: 2, B: 3})
	test.ExpectEquality(t, string(b), "\033[38;2;255;0;16;48;2;1;2;3m")
}
