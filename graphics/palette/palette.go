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

// Package palette holds the canonical 256 entry RGB palette used by the
// graphics manager and the cursor, along with the functions that encode it
// for the different video chipsets.
//
// The palette is always stored as 8 bits per channel. Conversion to the
// hardware representation happens only when the video registers are
// written.
package palette

import "fmt"

// NumEntries is the number of entries in a palette.
const NumEntries = 256

// Palette is the canonical palette representation.
type Palette [NumEntries][3]uint8

// Set copies num colours from the colors slice into the palette, starting at
// palette entry start. The colors slice is packed RGB triplets. Entries that
// would fall outside the palette are ignored.
func (p *Palette) Set(colors []byte, start int, num int) {
	if start < 0 {
		return
	}
	for i := 0; i < num && start+i < NumEntries && i*3+2 < len(colors); i++ {
		p[start+i][0] = colors[i*3]
		p[start+i][1] = colors[i*3+1]
		p[start+i][2] = colors[i*3+2]
	}
}

// Grab copies num colours from the palette, starting at palette entry start,
// into the colors slice as packed RGB triplets.
func (p *Palette) Grab(colors []byte, start int, num int) {
	if start < 0 {
		return
	}
	for i := 0; i < num && start+i < NumEntries && i*3+2 < len(colors); i++ {
		colors[i*3] = p[start+i][0]
		colors[i*3+1] = p[start+i][1]
		colors[i*3+2] = p[start+i][2]
	}
}

// RGB returns the colour at palette entry idx.
func (p *Palette) RGB(idx uint8) (uint8, uint8, uint8) {
	return p[idx][0], p[idx][1], p[idx][2]
}

func (p *Palette) String() string {
	return fmt.Sprintf("%02x%02x%02x..%02x%02x%02x",
		p[0][0], p[0][1], p[0][2],
		p[NumEntries-1][0], p[NumEntries-1][1], p[NumEntries-1][2])
}

// NewRGB332 returns a palette in which each index is interpreted as a RGB332
// value. This is the fixed palette used by the overlay.
func NewRGB332() *Palette {
	var p Palette
	for i := 0; i < NumEntries; i++ {
		r := uint8(i>>5) & 0x07
		g := uint8(i>>2) & 0x07
		b := uint8(i) & 0x03
		p[i][0] = r<<5 | r<<2 | r>>1
		p[i][1] = g<<5 | g<<2 | g>>1
		p[i][2] = b<<6 | b<<4 | b<<2 | b
	}
	return &p
}

// Encoding identifies the format of the hardware palette registers.
type Encoding int

// List of valid Encoding values.
const (
	EncodingTT Encoding = iota
	EncodingFalcon
	EncodingSuperVidel
)

func (e Encoding) String() string {
	switch e {
	case EncodingTT:
		return "tt"
	case EncodingFalcon:
		return "falcon"
	case EncodingSuperVidel:
		return "supervidel"
	}
	return "unknown encoding"
}

// Registers is the palette as it would be written to the hardware. Only the
// slice matching the Encoding is populated.
type Registers struct {
	Encoding Encoding
	TT       [NumEntries]uint16
	RGB      [NumEntries]uint32
}

// Encode the palette using the specified encoding.
func Encode(p *Palette, enc Encoding) Registers {
	r := Registers{Encoding: enc}
	switch enc {
	case EncodingTT:
		r.TT = EncodeTT(p)
	case EncodingFalcon:
		r.RGB = EncodeFalcon(p)
	case EncodingSuperVidel:
		r.RGB = EncodeSuperVidel(p)
	}
	return r
}

// Decode returns the RGB value of entry idx. Channels are expanded back to 8
// bits so that the result can be used directly for display.
func (r *Registers) Decode(idx uint8) (uint8, uint8, uint8) {
	switch r.Encoding {
	case EncodingTT:
		v := r.TT[idx]
		red := uint8(v>>8) & 0x0f
		green := uint8(v>>4) & 0x0f
		blue := uint8(v) & 0x0f
		return red<<4 | red, green<<4 | green, blue<<4 | blue
	case EncodingFalcon:
		v := r.RGB[idx]
		return uint8(v >> 24), uint8(v >> 16), uint8(v)
	case EncodingSuperVidel:
		v := r.RGB[idx]
		return uint8(v >> 16), uint8(v >> 8), uint8(v)
	}
	return 0, 0, 0
}

// EncodeTT encodes the palette for the TT shifter. Each entry is a 16 bit
// word with 4 bits per channel in the form 0x0RGB.
func EncodeTT(p *Palette) [NumEntries]uint16 {
	var enc [NumEntries]uint16
	for i := range p {
		enc[i] = uint16(p[i][0]>>4)<<8 | uint16(p[i][1]>>4)<<4 | uint16(p[i][2]>>4)
	}
	return enc
}

// EncodeFalcon encodes the palette for the Videl. Each entry is a 32 bit long
// word in the form RRGG00BB.
func EncodeFalcon(p *Palette) [NumEntries]uint32 {
	var enc [NumEntries]uint32
	for i := range p {
		enc[i] = uint32(p[i][0])<<24 | uint32(p[i][1])<<16 | uint32(p[i][2])
	}
	return enc
}

// EncodeSuperVidel encodes the palette for the SuperVidel. Each entry is a 32
// bit long word in the form 00RRGGBB.
func EncodeSuperVidel(p *Palette) [NumEntries]uint32 {
	var enc [NumEntries]uint32
	for i := range p {
		enc[i] = uint32(p[i][0])<<16 | uint32(p[i][1])<<8 | uint32(p[i][2])
	}
	return enc
}
