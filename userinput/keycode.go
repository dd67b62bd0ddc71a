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

package userinput

// KeyCode identifies a key independently of the keyboard layout.
type KeyCode int

// KeycodeInvalid is used for keys that have no KeyCode.
const KeycodeInvalid KeyCode = 0

// List of KeyCode values.
const (
	KeycodeBackspace KeyCode = 8
	KeycodeTab       KeyCode = 9
	KeycodeClear     KeyCode = 12
	KeycodeReturn    KeyCode = 13
	KeycodePause     KeyCode = 19
	KeycodeEscape    KeyCode = 27
	KeycodeSpace     KeyCode = 32

	KeycodeExclaim    KeyCode = 33
	KeycodeQuoteDbl   KeyCode = 34
	KeycodeHash       KeyCode = 35
	KeycodeDollar     KeyCode = 36
	KeycodePercent    KeyCode = 37
	KeycodeAmpersand  KeyCode = 38
	KeycodeQuote      KeyCode = 39
	KeycodeLeftParen  KeyCode = 40
	KeycodeRightParen KeyCode = 41
	KeycodeAsterisk   KeyCode = 42
	KeycodePlus       KeyCode = 43
	KeycodeComma      KeyCode = 44
	KeycodeMinus      KeyCode = 45
	KeycodePeriod     KeyCode = 46
	KeycodeSlash      KeyCode = 47

	Keycode0 KeyCode = 48
	Keycode1 KeyCode = 49
	Keycode2 KeyCode = 50
	Keycode3 KeyCode = 51
	Keycode4 KeyCode = 52
	Keycode5 KeyCode = 53
	Keycode6 KeyCode = 54
	Keycode7 KeyCode = 55
	Keycode8 KeyCode = 56
	Keycode9 KeyCode = 57

	KeycodeColon     KeyCode = 58
	KeycodeSemicolon KeyCode = 59
	KeycodeLess      KeyCode = 60
	KeycodeEquals    KeyCode = 61
	KeycodeGreater   KeyCode = 62
	KeycodeQuestion  KeyCode = 63
	KeycodeAt        KeyCode = 64

	KeycodeLeftBracket  KeyCode = 91
	KeycodeBackslash    KeyCode = 92
	KeycodeRightBracket KeyCode = 93
	KeycodeCaret        KeyCode = 94
	KeycodeUnderscore   KeyCode = 95
	KeycodeBackquote    KeyCode = 96

	KeycodeA KeyCode = 97
	KeycodeB KeyCode = 98
	KeycodeC KeyCode = 99
	KeycodeD KeyCode = 100
	KeycodeE KeyCode = 101
	KeycodeF KeyCode = 102
	KeycodeG KeyCode = 103
	KeycodeH KeyCode = 104
	KeycodeI KeyCode = 105
	KeycodeJ KeyCode = 106
	KeycodeK KeyCode = 107
	KeycodeL KeyCode = 108
	KeycodeM KeyCode = 109
	KeycodeN KeyCode = 110
	KeycodeO KeyCode = 111
	KeycodeP KeyCode = 112
	KeycodeQ KeyCode = 113
	KeycodeR KeyCode = 114
	KeycodeS KeyCode = 115
	KeycodeT KeyCode = 116
	KeycodeU KeyCode = 117
	KeycodeV KeyCode = 118
	KeycodeW KeyCode = 119
	KeycodeX KeyCode = 120
	KeycodeY KeyCode = 121
	KeycodeZ KeyCode = 122

	KeycodeTilde  KeyCode = 126
	KeycodeDelete KeyCode = 127

	KeycodeKP0        KeyCode = 256
	KeycodeKP1        KeyCode = 257
	KeycodeKP2        KeyCode = 258
	KeycodeKP3        KeyCode = 259
	KeycodeKP4        KeyCode = 260
	KeycodeKP5        KeyCode = 261
	KeycodeKP6        KeyCode = 262
	KeycodeKP7        KeyCode = 263
	KeycodeKP8        KeyCode = 264
	KeycodeKP9        KeyCode = 265
	KeycodeKPPeriod   KeyCode = 266
	KeycodeKPDivide   KeyCode = 267
	KeycodeKPMultiply KeyCode = 268
	KeycodeKPMinus    KeyCode = 269
	KeycodeKPPlus     KeyCode = 270
	KeycodeKPEnter    KeyCode = 271
	KeycodeKPEquals   KeyCode = 272

	KeycodeUp       KeyCode = 273
	KeycodeDown     KeyCode = 274
	KeycodeRight    KeyCode = 275
	KeycodeLeft     KeyCode = 276
	KeycodeInsert   KeyCode = 277
	KeycodeHome     KeyCode = 278
	KeycodeEnd      KeyCode = 279
	KeycodePageUp   KeyCode = 280
	KeycodePageDown KeyCode = 281

	KeycodeF1  KeyCode = 282
	KeycodeF2  KeyCode = 283
	KeycodeF3  KeyCode = 284
	KeycodeF4  KeyCode = 285
	KeycodeF5  KeyCode = 286
	KeycodeF6  KeyCode = 287
	KeycodeF7  KeyCode = 288
	KeycodeF8  KeyCode = 289
	KeycodeF9  KeyCode = 290
	KeycodeF10 KeyCode = 291
	KeycodeF11 KeyCode = 292
	KeycodeF12 KeyCode = 293
	KeycodeF13 KeyCode = 294
	KeycodeF14 KeyCode = 295
	KeycodeF15 KeyCode = 296

	KeycodeNumLock   KeyCode = 300
	KeycodeCapsLock  KeyCode = 301
	KeycodeScrolLock KeyCode = 302
	KeycodeRShift    KeyCode = 303
	KeycodeLShift    KeyCode = 304
	KeycodeRCtrl     KeyCode = 305
	KeycodeLCtrl     KeyCode = 306
	KeycodeRAlt      KeyCode = 307
	KeycodeLAlt      KeyCode = 308

	KeycodeHelp  KeyCode = 315
	KeycodePrint KeyCode = 316
	KeycodeBreak KeyCode = 318
	KeycodeMenu  KeyCode = 319
	KeycodeUndo  KeyCode = 322
)

// ASCII values for keys that don't have a printable character.
const (
	ASCIIBackspace uint16 = 8
	ASCIITab       uint16 = 9
	ASCIIReturn    uint16 = 13
	ASCIIEscape    uint16 = 27
	ASCIISpace     uint16 = 32

	ASCIIF1  uint16 = 315
	ASCIIF2  uint16 = 316
	ASCIIF3  uint16 = 317
	ASCIIF4  uint16 = 318
	ASCIIF5  uint16 = 319
	ASCIIF6  uint16 = 320
	ASCIIF7  uint16 = 321
	ASCIIF8  uint16 = 322
	ASCIIF9  uint16 = 323
	ASCIIF10 uint16 = 324
	ASCIIF11 uint16 = 325
	ASCIIF12 uint16 = 326
)

// ASCIIForFunctionKey returns the ASCII constant for function keys F1 to
// F12. Returns false for any other keycode.
func ASCIIForFunctionKey(k KeyCode) (uint16, bool) {
	if k >= KeycodeF1 && k <= KeycodeF12 {
		return ASCIIF1 + uint16(k-KeycodeF1), true
	}
	return 0, false
}
