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

// Atari scancodes with special meaning. The release flag is not included.
const (
	ScanEsc       = 0x01
	ScanBackspace = 0x0e
	ScanTab       = 0x0f
	ScanReturn    = 0x1c
	ScanCtrl      = 0x1d
	ScanLShift    = 0x2a
	ScanRShift    = 0x36
	ScanAlt       = 0x38
	ScanSpace     = 0x39
	ScanCapsLock  = 0x3a
	ScanF1        = 0x3b
	ScanF10       = 0x44
	ScanClrHome   = 0x47
	ScanUp        = 0x48
	ScanKPMinus   = 0x4a
	ScanLeft      = 0x4b
	ScanRight     = 0x4d
	ScanKPPlus    = 0x4e
	ScanDown      = 0x50
	ScanInsert    = 0x52
	ScanDelete    = 0x53

	// F11 and F12 don't exist on the Atari keyboard. Shift+F1 and Shift+F2
	// are used instead
	ScanShiftF1 = 0x54
	ScanShiftF2 = 0x55

	// the mouse wheel is reported through the keyboard. these scancodes
	// overlap shifted function keys that are otherwise unused
	ScanWheelUp   = 0x59
	ScanWheelDown = 0x5a

	ScanISO        = 0x60
	ScanUndo       = 0x61
	ScanHelp       = 0x62
	ScanKPLParen   = 0x63
	ScanKPRParen   = 0x64
	ScanKPDivide   = 0x65
	ScanKPMultiply = 0x66
	ScanKP7        = 0x67
	ScanKP8        = 0x68
	ScanKP9        = 0x69
	ScanKP4        = 0x6a
	ScanKP5        = 0x6b
	ScanKP6        = 0x6c
	ScanKP1        = 0x6d
	ScanKP2        = 0x6e
	ScanKP3        = 0x6f
	ScanKP0        = 0x70
	ScanKPPeriod   = 0x71
	ScanKPEnter    = 0x72
)

// NumScancodes is the number of possible scancodes (and the size of each
// ASCII table).
const NumScancodes = 128
