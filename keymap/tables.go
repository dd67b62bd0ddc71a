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

import (
	"github.com/jetsetilly/gopherst/userinput"
)

// Table selects one of the three ASCII tables of a Layout.
type Table int

// List of valid Table values.
const (
	TableUnshifted Table = iota
	TableShifted
	TableCapsLock
)

// the first and last ASCII values in the ASCII indexed keycode table
const (
	asciiFirst = ' '
	asciiLast  = '~'
)

// Tables are the lookup tables used to decode scancodes. Tables should be
// created with NewTables().
type Tables struct {
	layout Layout

	// keys that aren't described well by the ASCII tables. scancodes not in
	// the map have an invalid keycode
	scancodeToKeycode map[byte]userinput.KeyCode

	// keycodes for printable ASCII
	asciiToKeycode [asciiLast - asciiFirst + 1]userinput.KeyCode
}

// NewTables is the preferred method of initialisation for the Tables type.
func NewTables(l Layout) *Tables {
	t := &Tables{
		layout: l,
		scancodeToKeycode: map[byte]userinput.KeyCode{
			ScanEsc:       userinput.KeycodeEscape,
			ScanBackspace: userinput.KeycodeBackspace,
			ScanTab:       userinput.KeycodeTab,
			ScanReturn:    userinput.KeycodeReturn,
			ScanCtrl:      userinput.KeycodeLCtrl,
			ScanLShift:    userinput.KeycodeLShift,
			ScanRShift:    userinput.KeycodeRShift,
			ScanAlt:       userinput.KeycodeLAlt,
			ScanSpace:     userinput.KeycodeSpace,
			ScanCapsLock:  userinput.KeycodeCapsLock,

			ScanClrHome: userinput.KeycodeHome,
			ScanUp:      userinput.KeycodeUp,
			ScanLeft:    userinput.KeycodeLeft,
			ScanRight:   userinput.KeycodeRight,
			ScanDown:    userinput.KeycodeDown,
			ScanInsert:  userinput.KeycodeInsert,
			ScanDelete:  userinput.KeycodeDelete,
			ScanShiftF1: userinput.KeycodeF11,
			ScanShiftF2: userinput.KeycodeF12,
			ScanUndo:    userinput.KeycodeUndo,
			ScanHelp:    userinput.KeycodeHelp,

			ScanKPMinus:    userinput.KeycodeKPMinus,
			ScanKPPlus:     userinput.KeycodeKPPlus,
			ScanKPDivide:   userinput.KeycodeKPDivide,
			ScanKPMultiply: userinput.KeycodeKPMultiply,
			ScanKP0:        userinput.KeycodeKP0,
			ScanKP1:        userinput.KeycodeKP1,
			ScanKP2:        userinput.KeycodeKP2,
			ScanKP3:        userinput.KeycodeKP3,
			ScanKP4:        userinput.KeycodeKP4,
			ScanKP5:        userinput.KeycodeKP5,
			ScanKP6:        userinput.KeycodeKP6,
			ScanKP7:        userinput.KeycodeKP7,
			ScanKP8:        userinput.KeycodeKP8,
			ScanKP9:        userinput.KeycodeKP9,
			ScanKPPeriod:   userinput.KeycodeKPPeriod,
			ScanKPEnter:    userinput.KeycodeKPEnter,
		},
	}

	for i := 0; i <= ScanF10-ScanF1; i++ {
		t.scancodeToKeycode[byte(ScanF1+i)] = userinput.KeycodeF1 + userinput.KeyCode(i)
	}

	// most printable ASCII values are also keycodes. upper case letters map
	// to the lower case keycode
	for a := asciiFirst; a <= asciiLast; a++ {
		k := userinput.KeyCode(a)
		switch {
		case a >= 'A' && a <= 'Z':
			k = userinput.KeyCode(a - 'A' + 'a')
		case a == '{' || a == '|' || a == '}':
			k = userinput.KeycodeInvalid
		}
		t.asciiToKeycode[a-asciiFirst] = k
	}

	return t
}

// Layout returns the Layout the Tables were built from.
func (t *Tables) Layout() *Layout {
	return &t.layout
}

// Keycode returns the keycode for keys that are not described well by their
// ASCII value. Returns KeycodeInvalid for all other keys.
func (t *Tables) Keycode(scancode byte) userinput.KeyCode {
	if k, ok := t.scancodeToKeycode[scancode&(NumScancodes-1)]; ok {
		return k
	}
	return userinput.KeycodeInvalid
}

// KeycodeForASCII returns the keycode for a printable ASCII value. Returns
// KeycodeInvalid for values outside of the printable range.
func (t *Tables) KeycodeForASCII(ascii uint16) userinput.KeyCode {
	if ascii < asciiFirst || ascii > asciiLast {
		return userinput.KeycodeInvalid
	}
	return t.asciiToKeycode[ascii-asciiFirst]
}

// ASCII returns the value in the specified table for the scancode.
func (t *Tables) ASCII(scancode byte, table Table) byte {
	scancode &= NumScancodes - 1
	switch table {
	case TableShifted:
		return t.layout.Shifted[scancode]
	case TableCapsLock:
		return t.layout.CapsLock[scancode]
	}
	return t.layout.Unshifted[scancode]
}
