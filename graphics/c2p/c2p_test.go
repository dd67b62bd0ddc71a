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

package c2p_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gopherst/graphics/c2p"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/test"
)

func TestEncodeGroup(t *testing.T) {
	chunky := make([]byte, 16)
	planar := make([]byte, 16)

	// pixel 0 is colour 1 (bitplane 0) and pixel 15 is colour 0x80 (bitplane 7)
	chunky[0] = 0x01
	chunky[15] = 0x80
	c2p.EncodeGroup(planar, chunky)

	test.ExpectEquality(t, planar[0], uint8(0x80))
	test.ExpectEquality(t, planar[1], uint8(0x00))
	test.ExpectEquality(t, planar[14], uint8(0x00))
	test.ExpectEquality(t, planar[15], uint8(0x01))
	for i := 2; i < 14; i++ {
		test.ExpectEquality(t, planar[i], uint8(0), i)
	}

	// all pixels colour 0xff sets every bit of every plane
	for i := range chunky {
		chunky[i] = 0xff
	}
	c2p.EncodeGroup(planar, chunky)
	for i := range planar {
		test.ExpectEquality(t, planar[i], uint8(0xff), i)
	}
}

func TestRoundTrip(t *testing.T) {
	chunky := make([]byte, 64)
	for i := range chunky {
		chunky[i] = byte(i * 37)
	}

	planar := make([]byte, 64)
	for x := 0; x < 64; x += 16 {
		c2p.EncodeGroup(planar[x:x+16], chunky[x:x+16])
	}

	decoded := make([]byte, 64)
	c2p.DecodePlanar8(decoded, planar, 64)
	for i := range chunky {
		test.ExpectEquality(t, decoded[i], chunky[i], i)
	}
}

func TestConvertRect(t *testing.T) {
	src := surface.New(64, 4, surface.CLUT8)
	src.Fill(0x55)
	dst := surface.New(64, 4, surface.CLUT8)

	var cv c2p.Converter = c2p.Planar8{}
	test.ExpectEquality(t, cv.Granularity(), 16)
	test.ExpectSuccess(t, cv.Planar())

	cv.Convert(dst, src, image.Rect(16, 1, 32, 2))

	// only the group in the rectangle has been converted
	row := dst.Row(1)
	test.ExpectEquality(t, row[15], uint8(0))
	test.ExpectEquality(t, row[16], uint8(0xff))
	test.ExpectEquality(t, row[17], uint8(0xff))
	test.ExpectEquality(t, row[18], uint8(0x00))
	test.ExpectEquality(t, row[32], uint8(0))
	test.ExpectEquality(t, dst.Row(0)[16], uint8(0))
	test.ExpectEquality(t, dst.Row(2)[16], uint8(0))
}

func TestPacked(t *testing.T) {
	src := surface.New(8, 2, surface.CLUT8)
	src.Fill(9)
	dst := surface.New(8, 2, surface.CLUT8)

	var cv c2p.Converter = c2p.Packed{}
	test.ExpectFailure(t, cv.Planar())
	cv.Convert(dst, src, image.Rect(4, 0, 8, 1))
	test.ExpectEquality(t, dst.At(3, 0), uint32(0))
	test.ExpectEquality(t, dst.At(4, 0), uint32(9))
	test.ExpectEquality(t, dst.At(4, 1), uint32(0))
}
