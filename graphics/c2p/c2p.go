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

// Package c2p converts chunky pixels (one byte per pixel) into the format
// used by the video hardware.
//
// The Videl (Falcon) and TT video hardware use interleaved bitplanes. Each
// group of 16 pixels is stored as 8 consecutive big-endian words. Word n
// holds bit n of every pixel in the group, with the leftmost pixel in the
// most significant bit. The SuperVidel uses packed pixels, which are the same
// as chunky pixels.
package c2p

import (
	"image"

	"github.com/jetsetilly/gopherst/graphics/surface"
)

// Converter is implemented by the chunky to hardware converters.
type Converter interface {
	// Convert the rectangle r of src into dst. The rectangle must be aligned
	// to the Granularity() of the converter and must be inside both
	// surfaces.
	Convert(dst *surface.Surface, src *surface.Surface, r image.Rectangle)

	// Granularity is the number of pixels that the converter works on at a
	// time. Rectangles passed to Convert() must have horizontal edges that
	// are a multiple of this value.
	Granularity() int

	// Planar returns true if the converter produces bitplanes.
	Planar() bool
}

// Planar8 converts chunky pixels to 8 interleaved bitplanes.
type Planar8 struct{}

// PlanarGroup is the number of pixels in a bitplane group.
const PlanarGroup = 16

// Granularity implements the Converter interface.
func (Planar8) Granularity() int {
	return PlanarGroup
}

// Planar implements the Converter interface.
func (Planar8) Planar() bool {
	return true
}

// Convert implements the Converter interface. The planar surface has the
// same dimensions and pitch requirements as the chunky surface because 8
// bitplanes use one byte per pixel.
func (Planar8) Convert(dst *surface.Surface, src *surface.Surface, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x+PlanarGroup <= r.Max.X; x += PlanarGroup {
			so := src.PixelOffset(x, y)
			do := dst.PixelOffset(x, y)
			EncodeGroup(dst.Pixels[do:do+PlanarGroup], src.Pixels[so:so+PlanarGroup])
		}
	}
}

// EncodeGroup converts 16 chunky pixels into 8 bitplane words.
func EncodeGroup(planar []byte, chunky []byte) {
	var words [8]uint16
	for i := 0; i < PlanarGroup; i++ {
		c := chunky[i]
		bit := uint16(0x8000) >> i
		for p := 0; p < 8; p++ {
			if c&(1<<p) != 0 {
				words[p] |= bit
			}
		}
	}
	for p := 0; p < 8; p++ {
		planar[p*2] = byte(words[p] >> 8)
		planar[p*2+1] = byte(words[p])
	}
}

// DecodeGroup converts 8 bitplane words into 16 chunky pixels.
func DecodeGroup(chunky []byte, planar []byte) {
	for i := 0; i < PlanarGroup; i++ {
		chunky[i] = 0
	}
	for p := 0; p < 8; p++ {
		w := uint16(planar[p*2])<<8 | uint16(planar[p*2+1])
		for i := 0; i < PlanarGroup; i++ {
			if w&(0x8000>>i) != 0 {
				chunky[i] |= 1 << p
			}
		}
	}
}

// DecodePlanar8 converts a row of interleaved bitplanes into chunky pixels.
// The width is rounded down to a multiple of PlanarGroup.
func DecodePlanar8(chunky []byte, planar []byte, width int) {
	for x := 0; x+PlanarGroup <= width; x += PlanarGroup {
		DecodeGroup(chunky[x:x+PlanarGroup], planar[x:x+PlanarGroup])
	}
}

// Packed copies chunky pixels. Used by the SuperVidel.
type Packed struct{}

// PackedGranularity is the granularity of the Packed converter. The
// SuperVidel transfers four pixels at a time.
const PackedGranularity = 4

// Granularity implements the Converter interface.
func (Packed) Granularity() int {
	return PackedGranularity
}

// Planar implements the Converter interface.
func (Packed) Planar() bool {
	return false
}

// Convert implements the Converter interface.
func (Packed) Convert(dst *surface.Surface, src *surface.Surface, r image.Rectangle) {
	dst.CopyRectFrom(src, r, r.Min)
}
