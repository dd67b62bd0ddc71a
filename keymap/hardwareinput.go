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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherst/userinput"
)

// KeyDescriptor describes a key that can be pressed on the keyboard.
type KeyDescriptor struct {
	ID          string
	Keycode     userinput.KeyCode
	ASCII       uint16
	Description string
}

// ModifierDescriptor describes a modifier key. The ID is used as a prefix
// in hardware input IDs. For example, "C+q" is Ctrl and Q.
type ModifierDescriptor struct {
	Flag        userinput.KeyMod
	ID          string
	Description string
}

// InputSet is the list of every key and modifier that can be used in a key
// mapping. An InputSet is static. Use HardwareInputSet() to get it.
type InputSet struct {
	Keys      []KeyDescriptor
	Modifiers []ModifierDescriptor

	byID      map[string]int
	byKeycode map[userinput.KeyCode]int
}

var hardwareInputSet *InputSet

// HardwareInputSet returns the static descriptor of all the keys available
// on the Atari keyboard. Keys are described independently of keyboard
// layout.
func HardwareInputSet() *InputSet {
	return hardwareInputSet
}

func init() {
	s := &InputSet{
		Keys: []KeyDescriptor{
			{"BACKSPACE", userinput.KeycodeBackspace, userinput.ASCIIBackspace, "Backspace"},
			{"TAB", userinput.KeycodeTab, userinput.ASCIITab, "Tab"},
			{"RETURN", userinput.KeycodeReturn, userinput.ASCIIReturn, "Return"},
			{"ESCAPE", userinput.KeycodeEscape, userinput.ASCIIEscape, "Esc"},
			{"SPACE", userinput.KeycodeSpace, userinput.ASCIISpace, "Space"},
			{"DELETE", userinput.KeycodeDelete, 0x7f, "Delete"},
			{"INSERT", userinput.KeycodeInsert, 0, "Insert"},
			{"HOME", userinput.KeycodeHome, 0, "Clr Home"},
			{"UP", userinput.KeycodeUp, 0, "Up"},
			{"DOWN", userinput.KeycodeDown, 0, "Down"},
			{"LEFT", userinput.KeycodeLeft, 0, "Left"},
			{"RIGHT", userinput.KeycodeRight, 0, "Right"},
			{"HELP", userinput.KeycodeHelp, 0, "Help"},
			{"UNDO", userinput.KeycodeUndo, 0, "Undo"},
			{"KP_PERIOD", userinput.KeycodeKPPeriod, '.', "."},
			{"KP_DIVIDE", userinput.KeycodeKPDivide, '/', "/"},
			{"KP_MULTIPLY", userinput.KeycodeKPMultiply, '*', "*"},
			{"KP_MINUS", userinput.KeycodeKPMinus, '-', "-"},
			{"KP_PLUS", userinput.KeycodeKPPlus, '+', "+"},
			{"KP_ENTER", userinput.KeycodeKPEnter, userinput.ASCIIReturn, "Enter"},
		},
		Modifiers: []ModifierDescriptor{
			{userinput.KeyModCtrl, "C", "Ctrl"},
			{userinput.KeyModShift, "S", "Shift"},
			{userinput.KeyModAlt, "A", "Alt"},
		},
	}

	for i := range 12 {
		k := userinput.KeycodeF1 + userinput.KeyCode(i)
		a, _ := userinput.ASCIIForFunctionKey(k)
		s.Keys = append(s.Keys, KeyDescriptor{fmt.Sprintf("F%d", i+1), k, a, fmt.Sprintf("F%d", i+1)})
	}
	for i := range 10 {
		s.Keys = append(s.Keys, KeyDescriptor{fmt.Sprintf("KP%d", i), userinput.KeycodeKP0 + userinput.KeyCode(i), uint16('0' + i), fmt.Sprintf("KP %d", i)})
	}
	for c := '0'; c <= '9'; c++ {
		s.Keys = append(s.Keys, KeyDescriptor{string(c), userinput.KeyCode(c), uint16(c), string(c)})
	}
	for c := 'a'; c <= 'z'; c++ {
		s.Keys = append(s.Keys, KeyDescriptor{string(c), userinput.KeyCode(c), uint16(c), strings.ToUpper(string(c))})
	}
	for _, c := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`~" {
		s.Keys = append(s.Keys, KeyDescriptor{string(c), userinput.KeyCode(c), uint16(c), string(c)})
	}

	s.byID = make(map[string]int)
	s.byKeycode = make(map[userinput.KeyCode]int)
	for i, k := range s.Keys {
		s.byID[k.ID] = i
		s.byKeycode[k.Keycode] = i
	}

	hardwareInputSet = s
}

// ID returns the hardware input ID for the key state. The capslock flag is
// ignored. Returns false if the keycode is not in the InputSet.
func (s *InputSet) ID(ks userinput.KeyState) (string, bool) {
	i, ok := s.byKeycode[ks.Keycode]
	if !ok {
		return "", false
	}

	b := strings.Builder{}
	for _, m := range s.Modifiers {
		if ks.Flags&m.Flag == m.Flag {
			b.WriteString(m.ID)
			b.WriteString("+")
		}
	}
	b.WriteString(s.Keys[i].ID)

	return b.String(), true
}

// Find the key and modifiers for a hardware input ID. Returns false if the
// ID is not valid.
func (s *InputSet) Find(id string) (KeyDescriptor, userinput.KeyMod, bool) {
	var mod userinput.KeyMod

	// the key itself might be "+" so we can't just split on the separator
	for {
		found := false
		for _, m := range s.Modifiers {
			p := m.ID + "+"
			if strings.HasPrefix(id, p) && len(id) > len(p) {
				mod |= m.Flag
				id = id[len(p):]
				found = true
			}
		}
		if !found {
			break
		}
	}

	i, ok := s.byID[id]
	if !ok {
		return KeyDescriptor{}, userinput.KeyModNone, false
	}
	return s.Keys[i], mod, true
}
