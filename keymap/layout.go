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
	"sort"
	"strings"

	"github.com/jetsetilly/gopherst/curated"
)

// UnknownLayout is the pattern of the error returned by LayoutByName() when
// the name isn't recognised.
const UnknownLayout = "keymap: unknown layout (%s)"

// Layout is the set of ASCII tables for a keyboard. Each table is indexed by
// scancode. A value of zero means the key has no ASCII value in that table.
type Layout struct {
	Name      string
	Unshifted [NumScancodes]byte
	Shifted   [NumScancodes]byte
	CapsLock  [NumScancodes]byte
}

// Find the scancode that produces the ASCII value. The unshifted table is
// searched before the shifted table and the main keyboard is searched before
// the keypad. Returns false if no key produces the value.
func (l *Layout) Find(ascii byte) (scancode byte, shift bool, ok bool) {
	if ascii == 0 {
		return 0, false, false
	}
	for s := range NumScancodes {
		if l.Unshifted[s] == ascii {
			return byte(s), false, true
		}
	}
	for s := range NumScancodes {
		if l.Shifted[s] == ascii {
			return byte(s), true, true
		}
	}
	return 0, false, false
}

var layouts = map[string]*Layout{}

func register(l *Layout) {
	layouts[l.Name] = l
}

// LayoutByName returns a copy of the named Layout.
func LayoutByName(name string) (Layout, error) {
	l, ok := layouts[strings.ToLower(name)]
	if !ok {
		return Layout{}, curated.Errorf(UnknownLayout, name)
	}
	return *l, nil
}

// Layouts returns the names of the built-in layouts in alphabetical order.
func Layouts() []string {
	n := make([]string, 0, len(layouts))
	for k := range layouts {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// layoutBuilder helps the construction of the built-in layouts. keys that are
// the same on all keyboards are added by newLayoutBuilder()
type layoutBuilder struct {
	l Layout

	// characters outside of a-z that are affected by capslock
	letters string
}

func newLayoutBuilder(name string, letters string) *layoutBuilder {
	b := &layoutBuilder{
		l:       Layout{Name: name},
		letters: letters,
	}

	b.key(ScanEsc, 0x1b, 0x1b)
	b.key(ScanBackspace, 0x08, 0x08)
	b.key(ScanTab, 0x09, 0x09)
	b.key(ScanReturn, 0x0d, 0x0d)
	b.key(ScanSpace, ' ', ' ')
	b.key(ScanDelete, 0x7f, 0x7f)

	b.key(ScanKPMinus, '-', '-')
	b.key(ScanKPPlus, '+', '+')
	b.key(ScanKPLParen, '(', '(')
	b.key(ScanKPRParen, ')', ')')
	b.key(ScanKPDivide, '/', '/')
	b.key(ScanKPMultiply, '*', '*')
	b.row(ScanKP7, "789", "789")
	b.row(ScanKP4, "456", "456")
	b.row(ScanKP1, "1230.", "1230.")
	b.key(ScanKPEnter, 0x0d, 0x0d)

	return b
}

func (b *layoutBuilder) key(scancode byte, unshifted byte, shifted byte) {
	b.l.Unshifted[scancode] = unshifted
	b.l.Shifted[scancode] = shifted
	if (unshifted >= 'a' && unshifted <= 'z') || strings.IndexByte(b.letters, unshifted) >= 0 {
		b.l.CapsLock[scancode] = shifted
	} else {
		b.l.CapsLock[scancode] = unshifted
	}
}

// row adds keys with consecutive scancodes. both strings must be the same
// length.
func (b *layoutBuilder) row(start byte, unshifted string, shifted string) {
	for i := 0; i < len(unshifted); i++ {
		b.key(start+byte(i), unshifted[i], shifted[i])
	}
}

func (b *layoutBuilder) layout() *Layout {
	return &b.l
}
