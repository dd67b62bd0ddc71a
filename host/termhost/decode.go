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

package termhost

import (
	"github.com/jetsetilly/gopherst/host/termhost/easyterm"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
)

// a key press is sent to the interrupt handle as make codes for the
// modifiers and the key, followed by the break codes in reverse order
type keyPress struct {
	scancode byte
	shift    bool
	ctrl     bool
}

// the longest escape sequence that will be buffered
const maxSeqLen = 8

// decoder turns terminal input into key presses. Escape sequences can be
// split over more than one read.
type decoder struct {
	layout *keymap.Layout

	// incomplete escape sequence
	seq []byte

	// set when the terminal receives ctrl-c and ctrl-z
	interrupt bool
	suspend   bool
}

func newDecoder(layout keymap.Layout) *decoder {
	return &decoder{
		layout: &layout,
		seq:    make([]byte, 0, maxSeqLen),
	}
}

// decode appends the key presses for the input to keys
func (d *decoder) decode(input []byte, keys []keyPress) []keyPress {
	for _, b := range input {
		if len(d.seq) > 0 {
			var done bool
			keys, done = d.escape(b, keys)
			if done {
				continue
			}
		}
		keys = d.single(b, keys)
	}
	return keys
}

// flush handles an incomplete escape sequence at the end of the input. A
// lone escape character is the escape key.
func (d *decoder) flush(keys []keyPress) []keyPress {
	if len(d.seq) == 1 {
		keys = append(keys, keyPress{scancode: keymap.ScanEsc})
	} else if len(d.seq) > 1 {
		logger.Logf(logger.Allow, "termhost", "incomplete escape sequence: %q", d.seq)
	}
	d.seq = d.seq[:0]
	return keys
}

// escape continues an escape sequence. Returns false if the byte has not
// been consumed and should be handled as a single key.
func (d *decoder) escape(b byte, keys []keyPress) ([]keyPress, bool) {
	if len(d.seq) == 1 {
		if b == easyterm.EscCursor || b == easyterm.EscFunction {
			d.seq = append(d.seq, b)
			return keys, true
		}

		// escape followed by something that doesn't start a sequence
		d.seq = d.seq[:0]
		return append(keys, keyPress{scancode: keymap.ScanEsc}), false
	}

	if d.seq[1] == easyterm.EscFunction {
		d.seq = d.seq[:0]
		switch b {
		case easyterm.FunctionF1, easyterm.FunctionF2, easyterm.FunctionF3, easyterm.FunctionF4:
			return append(keys, keyPress{scancode: keymap.ScanF1 + b - easyterm.FunctionF1}), true
		}
		logger.Logf(logger.Allow, "termhost", "unsupported function key: %q", b)
		return keys, true
	}

	switch {
	case b >= '0' && b <= '9':
		if len(d.seq) >= maxSeqLen {
			logger.Logf(logger.Allow, "termhost", "escape sequence too long: %q", d.seq)
			d.seq = d.seq[:0]
			return keys, true
		}
		d.seq = append(d.seq, b)
		return keys, true
	case b == easyterm.EscTilde:
		n := 0
		for _, c := range d.seq[2:] {
			n = n*10 + int(c-'0')
		}
		d.seq = d.seq[:0]
		switch n {
		case easyterm.EscInsert:
			return append(keys, keyPress{scancode: keymap.ScanInsert}), true
		case easyterm.EscDelete:
			return append(keys, keyPress{scancode: keymap.ScanDelete}), true
		}
		logger.Logf(logger.Allow, "termhost", "unsupported key: ESC [ %d ~", n)
		return keys, true
	}

	d.seq = d.seq[:0]
	switch b {
	case easyterm.CursorUp:
		keys = append(keys, keyPress{scancode: keymap.ScanUp})
	case easyterm.CursorDown:
		keys = append(keys, keyPress{scancode: keymap.ScanDown})
	case easyterm.CursorForward:
		keys = append(keys, keyPress{scancode: keymap.ScanRight})
	case easyterm.CursorBackward:
		keys = append(keys, keyPress{scancode: keymap.ScanLeft})
	case easyterm.CursorHome:
		keys = append(keys, keyPress{scancode: keymap.ScanClrHome})
	default:
		logger.Logf(logger.Allow, "termhost", "unsupported escape sequence ending with %q", b)
	}
	return keys, true
}

func (d *decoder) single(b byte, keys []keyPress) []keyPress {
	switch b {
	case easyterm.KeyEsc:
		d.seq = append(d.seq, b)
		return keys
	case easyterm.KeyCtrlC:
		d.interrupt = true
		return keys
	case easyterm.KeySuspend:
		d.suspend = true
		return keys
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return append(keys, keyPress{scancode: keymap.ScanReturn})
	case easyterm.KeyBackspace, easyterm.KeyBackspaceCtrlH:
		return append(keys, keyPress{scancode: keymap.ScanBackspace})
	case easyterm.KeyTab:
		return append(keys, keyPress{scancode: keymap.ScanTab})
	}

	// control characters are ctrl and a letter
	if b >= 1 && b <= 26 {
		s, shift, ok := d.layout.Find('a' + b - 1)
		if ok {
			return append(keys, keyPress{scancode: s, shift: shift, ctrl: true})
		}
	}

	s, shift, ok := d.layout.Find(b)
	if !ok {
		logger.Logf(logger.Allow, "termhost", "no scancode for %#02x in layout %s", b, d.layout.Name)
		return keys
	}
	return append(keys, keyPress{scancode: s, shift: shift})
}
