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

package sdlhost

import (
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodes maps SDL scancodes to Atari scancodes. Both describe the physical
// position of the key so the mapping doesn't depend on the keyboard layout.
var scancodes = map[sdl.Scancode]byte{
	sdl.SCANCODE_ESCAPE:       keymap.ScanEsc,
	sdl.SCANCODE_1:            0x02,
	sdl.SCANCODE_2:            0x03,
	sdl.SCANCODE_3:            0x04,
	sdl.SCANCODE_4:            0x05,
	sdl.SCANCODE_5:            0x06,
	sdl.SCANCODE_6:            0x07,
	sdl.SCANCODE_7:            0x08,
	sdl.SCANCODE_8:            0x09,
	sdl.SCANCODE_9:            0x0a,
	sdl.SCANCODE_0:            0x0b,
	sdl.SCANCODE_MINUS:        0x0c,
	sdl.SCANCODE_EQUALS:       0x0d,
	sdl.SCANCODE_BACKSPACE:    keymap.ScanBackspace,
	sdl.SCANCODE_TAB:          keymap.ScanTab,
	sdl.SCANCODE_Q:            0x10,
	sdl.SCANCODE_W:            0x11,
	sdl.SCANCODE_E:            0x12,
	sdl.SCANCODE_R:            0x13,
	sdl.SCANCODE_T:            0x14,
	sdl.SCANCODE_Y:            0x15,
	sdl.SCANCODE_U:            0x16,
	sdl.SCANCODE_I:            0x17,
	sdl.SCANCODE_O:            0x18,
	sdl.SCANCODE_P:            0x19,
	sdl.SCANCODE_LEFTBRACKET:  0x1a,
	sdl.SCANCODE_RIGHTBRACKET: 0x1b,
	sdl.SCANCODE_RETURN:       keymap.ScanReturn,
	sdl.SCANCODE_LCTRL:        keymap.ScanCtrl,
	sdl.SCANCODE_RCTRL:        keymap.ScanCtrl,
	sdl.SCANCODE_A:            0x1e,
	sdl.SCANCODE_S:            0x1f,
	sdl.SCANCODE_D:            0x20,
	sdl.SCANCODE_F:            0x21,
	sdl.SCANCODE_G:            0x22,
	sdl.SCANCODE_H:            0x23,
	sdl.SCANCODE_J:            0x24,
	sdl.SCANCODE_K:            0x25,
	sdl.SCANCODE_L:            0x26,
	sdl.SCANCODE_SEMICOLON:    0x27,
	sdl.SCANCODE_APOSTROPHE:   0x28,
	sdl.SCANCODE_GRAVE:        0x29,
	sdl.SCANCODE_LSHIFT:       keymap.ScanLShift,
	sdl.SCANCODE_BACKSLASH:    0x2b,
	sdl.SCANCODE_Z:            0x2c,
	sdl.SCANCODE_X:            0x2d,
	sdl.SCANCODE_C:            0x2e,
	sdl.SCANCODE_V:            0x2f,
	sdl.SCANCODE_B:            0x30,
	sdl.SCANCODE_N:            0x31,
	sdl.SCANCODE_M:            0x32,
	sdl.SCANCODE_COMMA:        0x33,
	sdl.SCANCODE_PERIOD:       0x34,
	sdl.SCANCODE_SLASH:        0x35,
	sdl.SCANCODE_RSHIFT:       keymap.ScanRShift,
	sdl.SCANCODE_LALT:         keymap.ScanAlt,
	sdl.SCANCODE_RALT:         keymap.ScanAlt,
	sdl.SCANCODE_SPACE:        keymap.ScanSpace,
	sdl.SCANCODE_CAPSLOCK:     keymap.ScanCapsLock,
	sdl.SCANCODE_F1:           keymap.ScanF1,
	sdl.SCANCODE_F2:           keymap.ScanF1 + 1,
	sdl.SCANCODE_F3:           keymap.ScanF1 + 2,
	sdl.SCANCODE_F4:           keymap.ScanF1 + 3,
	sdl.SCANCODE_F5:           keymap.ScanF1 + 4,
	sdl.SCANCODE_F6:           keymap.ScanF1 + 5,
	sdl.SCANCODE_F7:           keymap.ScanF1 + 6,
	sdl.SCANCODE_F8:           keymap.ScanF1 + 7,
	sdl.SCANCODE_F9:           keymap.ScanF1 + 8,
	sdl.SCANCODE_F10:          keymap.ScanF10,
	sdl.SCANCODE_F11:          keymap.ScanShiftF1,
	sdl.SCANCODE_F12:          keymap.ScanShiftF2,
	sdl.SCANCODE_HOME:         keymap.ScanClrHome,
	sdl.SCANCODE_UP:           keymap.ScanUp,
	sdl.SCANCODE_LEFT:         keymap.ScanLeft,
	sdl.SCANCODE_RIGHT:        keymap.ScanRight,
	sdl.SCANCODE_DOWN:         keymap.ScanDown,
	sdl.SCANCODE_INSERT:       keymap.ScanInsert,
	sdl.SCANCODE_DELETE:       keymap.ScanDelete,

	// keys that the PC keyboard doesn't have
	sdl.SCANCODE_NONUSBACKSLASH: keymap.ScanISO,
	sdl.SCANCODE_PAGEUP:         keymap.ScanUndo,
	sdl.SCANCODE_PAGEDOWN:       keymap.ScanHelp,

	sdl.SCANCODE_KP_LEFTPAREN:  keymap.ScanKPLParen,
	sdl.SCANCODE_KP_RIGHTPAREN: keymap.ScanKPRParen,
	sdl.SCANCODE_KP_DIVIDE:     keymap.ScanKPDivide,
	sdl.SCANCODE_KP_MULTIPLY:   keymap.ScanKPMultiply,
	sdl.SCANCODE_KP_MINUS:      keymap.ScanKPMinus,
	sdl.SCANCODE_KP_PLUS:       keymap.ScanKPPlus,
	sdl.SCANCODE_KP_7:          keymap.ScanKP7,
	sdl.SCANCODE_KP_8:          keymap.ScanKP8,
	sdl.SCANCODE_KP_9:          keymap.ScanKP9,
	sdl.SCANCODE_KP_4:          keymap.ScanKP4,
	sdl.SCANCODE_KP_5:          keymap.ScanKP5,
	sdl.SCANCODE_KP_6:          keymap.ScanKP6,
	sdl.SCANCODE_KP_1:          keymap.ScanKP1,
	sdl.SCANCODE_KP_2:          keymap.ScanKP2,
	sdl.SCANCODE_KP_3:          keymap.ScanKP3,
	sdl.SCANCODE_KP_0:          keymap.ScanKP0,
	sdl.SCANCODE_KP_PERIOD:     keymap.ScanKPPeriod,
	sdl.SCANCODE_KP_ENTER:      keymap.ScanKPEnter,
}
