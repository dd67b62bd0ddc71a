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

package palette_test

import (
	"testing"

	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/test"
)

func TestSetGrab(t *testing.T) {
	var p palette.Palette

	p.Set([]byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}, 254, 2)
	r, g, b := p.RGB(254)
	test.ExpectEquality(t, r, uint8(0x10))
	test.ExpectEquality(t, g, uint8(0x20))
	test.ExpectEquality(t, b, uint8(0x30))
	r, g, b = p.RGB(255)
	test.ExpectEquality(t, r, uint8(0x40))
	test.ExpectEquality(t, g, uint8(0x50))
	test.ExpectEquality(t, b, uint8(0x60))

	// writing past the end of the palette is ignored
	p.Set([]byte{1, 2, 3, 4, 5, 6}, 255, 2)
	r, _, _ = p.RGB(255)
	test.ExpectEquality(t, r, uint8(1))
	r, _, _ = p.RGB(0)
	test.ExpectEquality(t, r, uint8(0))

	colors := make([]byte, 6)
	p.Grab(colors, 254, 2)
	test.ExpectEquality(t, colors[0], uint8(0x10))
	test.ExpectEquality(t, colors[3], uint8(1))
	test.ExpectEquality(t, colors[5], uint8(3))

	// a short colors slice limits the number of entries
	p.Set([]byte{9, 9, 9, 9}, 0, 2)
	r, _, _ = p.RGB(1)
	test.ExpectEquality(t, r, uint8(0))
}

func TestEncoding(t *testing.T) {
	var p palette.Palette
	p.Set([]byte{0xf0, 0x80, 0x1f}, 7, 1)

	tt := palette.EncodeTT(&p)
	test.ExpectEquality(t, tt[7], uint16(0x0f81))

	falcon := palette.EncodeFalcon(&p)
	test.ExpectEquality(t, falcon[7], uint32(0xf080001f))

	sv := palette.EncodeSuperVidel(&p)
	test.ExpectEquality(t, sv[7], uint32(0x00f0801f))

	regs := palette.Encode(&p, palette.EncodingFalcon)
	r, g, b := regs.Decode(7)
	test.ExpectEquality(t, r, uint8(0xf0))
	test.ExpectEquality(t, g, uint8(0x80))
	test.ExpectEquality(t, b, uint8(0x1f))

	regs = palette.Encode(&p, palette.EncodingTT)
	r, g, b = regs.Decode(7)
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectEquality(t, g, uint8(0x88))
	test.ExpectEquality(t, b, uint8(0x11))
}

func TestRGB332(t *testing.T) {
	p := palette.NewRGB332()
	r, g, b := p.RGB(0xff)
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectEquality(t, g, uint8(0xff))
	test.ExpectEquality(t, b, uint8(0xff))

	r, g, b = p.RGB(0xe0)
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectEquality(t, g, uint8(0))
	test.ExpectEquality(t, b, uint8(0))
}
