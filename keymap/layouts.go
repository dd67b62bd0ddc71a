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

package keymap

// non-ASCII characters in the layouts use the Atari character set
const (
	atariCCedilla  = 0x87
	atariEAcute    = 0x82
	atariEGrave    = 0x8a
	atariAGrave    = 0x85
	atariUGrave    = 0x97
	atariAUmlaut   = 0x84
	atariOUmlaut   = 0x94
	atariUUmlaut   = 0x81
	atariAUmlautUC = 0x8e
	atariOUmlautUC = 0x99
	atariUUmlautUC = 0x9a
	atariEszett    = 0x9e
	atariSection   = 0xdd
	atariDegree    = 0xf8
	atariPound     = 0x9c
	atariDiaeresis = 0xb9
)

func init() {
	register(us())
	register(de())
	register(fr())
}

func us() *Layout {
	b := newLayoutBuilder("us", "")
	b.row(0x02, "1234567890-=", "!@#$%^&*()_+")
	b.row(0x10, "qwertyuiop[]", "QWERTYUIOP{}")
	b.row(0x1e, "asdfghjkl;'`", "ASDFGHJKL:\"~")
	b.key(0x2b, '\\', '|')
	b.row(0x2c, "zxcvbnm,./", "ZXCVBNM<>?")
	return b.layout()
}

func de() *Layout {
	b := newLayoutBuilder("de", string([]byte{atariAUmlaut, atariOUmlaut, atariUUmlaut}))
	b.row(0x02, "1234567890", "!\"\x00$%&/()=")
	b.key(0x04, '3', atariSection)
	b.key(0x0c, atariEszett, '?')
	b.key(0x0d, '\'', '`')
	b.row(0x10, "qwertzuiop", "QWERTZUIOP")
	b.key(0x1a, atariUUmlaut, atariUUmlautUC)
	b.key(0x1b, '+', '*')
	b.row(0x1e, "asdfghjkl", "ASDFGHJKL")
	b.key(0x27, atariOUmlaut, atariOUmlautUC)
	b.key(0x28, atariAUmlaut, atariAUmlautUC)
	b.key(0x29, '#', '^')
	b.key(0x2b, '~', '|')
	b.row(0x2c, "yxcvbnm,.-", "YXCVBNM;:_")
	b.key(ScanISO, '<', '>')
	return b.layout()
}

func fr() *Layout {
	b := newLayoutBuilder("fr", "")
	b.row(0x02, "&\x00\"'(\x00\x00!\x00\x00)-", "1234567890\x00_")
	b.key(0x03, atariEAcute, '2')
	b.key(0x07, atariSection, '6')
	b.key(0x08, atariEGrave, '7')
	b.key(0x0a, atariCCedilla, '9')
	b.key(0x0b, atariAGrave, '0')
	b.key(0x0c, ')', atariDegree)
	b.row(0x10, "azertyuiop", "AZERTYUIOP")
	b.key(0x1a, '^', atariDiaeresis)
	b.key(0x1b, '$', '*')
	b.row(0x1e, "qsdfghjklm", "QSDFGHJKLM")
	b.key(0x28, atariUGrave, '%')
	b.key(0x29, '`', atariPound)
	b.key(0x2b, '#', '|')
	b.row(0x2c, "wxcvbn,;:=", "WXCVBN?./+")
	b.key(ScanISO, '<', '>')
	return b.layout()
}
