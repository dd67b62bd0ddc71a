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

package userinput_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gopherst/test"
	"github.com/jetsetilly/gopherst/userinput"
)

type recorder struct {
	events []userinput.Event
}

func (r *recorder) HandleEvent(ev userinput.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func TestHandleUserInput(t *testing.T) {
	var r recorder

	quit, err := userinput.HandleUserInput(userinput.Event{Type: userinput.EventNone}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, len(r.events), 0)

	quit, err = userinput.HandleUserInput(userinput.Event{
		Type: userinput.EventKeyDown,
		Kbd:  userinput.KeyState{Keycode: userinput.KeycodeQ, ASCII: 'q'},
	}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, len(r.events), 1)

	quit, err = userinput.HandleUserInput(userinput.Event{
		Type: userinput.EventKeyDown,
		Kbd:  userinput.KeyState{Keycode: userinput.KeycodeQ, ASCII: 'q', Flags: userinput.KeyModCtrl},
	}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
	test.ExpectEquality(t, len(r.events), 1)

	quit, err = userinput.HandleUserInput(userinput.Event{Type: userinput.EventQuit}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
	test.ExpectEquality(t, len(r.events), 1)
}

func TestFunctionKeys(t *testing.T) {
	a, ok := userinput.ASCIIForFunctionKey(userinput.KeycodeF1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, userinput.ASCIIF1)

	a, ok = userinput.ASCIIForFunctionKey(userinput.KeycodeF12)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, userinput.ASCIIF12)

	_, ok = userinput.ASCIIForFunctionKey(userinput.KeycodeF13)
	test.ExpectFailure(t, ok)
	_, ok = userinput.ASCIIForFunctionKey(userinput.KeycodeA)
	test.ExpectFailure(t, ok)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyModNone.String(), "none")
	test.ExpectEquality(t, (userinput.KeyModShift | userinput.KeyModCtrl).String(), "ctrl+shift")

	ev := userinput.Event{
		Type:     userinput.EventMouseMove,
		Mouse:    image.Pt(10, 20),
		Relative: image.Pt(5, -3),
	}
	test.ExpectEquality(t, ev.String(), "mousemove: 10,20 (+5,-3)")

	ev = userinput.Event{
		Type: userinput.EventKeyUp,
		Kbd:  userinput.KeyState{Keycode: userinput.KeycodeA, ASCII: 'a'},
	}
	test.ExpectEquality(t, ev.String(), "keyup: keycode=97 ascii=97 (a) mod=none")
}
