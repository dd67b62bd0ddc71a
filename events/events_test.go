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

package events_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gopherst/events"
	"github.com/jetsetilly/gopherst/hardware/ikbd"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/test"
	"github.com/jetsetilly/gopherst/userinput"
)

// mockGraphics implements the events.GraphicsManager interface
type mockGraphics struct {
	pos    image.Point
	bounds image.Rectangle
	km     keymap.Keymap
}

func (g *mockGraphics) MousePosition() image.Point {
	return g.pos
}

func (g *mockGraphics) UpdateMousePosition(dx int, dy int) {
	g.pos = g.pos.Add(image.Pt(dx, dy))
	g.pos.X = max(g.bounds.Min.X, min(g.pos.X, g.bounds.Max.X-1))
	g.pos.Y = max(g.bounds.Min.Y, min(g.pos.Y, g.bounds.Max.Y-1))
}

func (g *mockGraphics) Keymap() *keymap.Keymap {
	return &g.km
}

func newEventSource(t *testing.T) (*events.EventSource, *ikbd.Interrupt, *mockGraphics) {
	t.Helper()

	l, err := keymap.LayoutByName("us")
	test.DemandSuccess(t, err)

	sh := ikbd.NewShared(256)
	gm := &mockGraphics{
		pos:    image.Pt(160, 100),
		bounds: image.Rect(0, 0, 320, 200),
		km:     keymap.Keymap{Name: "mock"},
	}

	return events.NewEventSource(sh.Poll(), keymap.NewTables(l), gm), sh.Interrupt(), gm
}

func expectKey(t *testing.T, es *events.EventSource, typ userinput.EventType, keycode userinput.KeyCode, ascii uint16, mod userinput.KeyMod) {
	t.Helper()

	var ev userinput.Event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, typ)
	test.ExpectEquality(t, ev.Kbd.Keycode, keycode)
	test.ExpectEquality(t, ev.Kbd.ASCII, ascii)
	test.ExpectEquality(t, ev.Kbd.Flags, mod)
}

func expectNoEvent(t *testing.T, es *events.EventSource) {
	t.Helper()

	var ev userinput.Event
	test.ExpectFailure(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventNone)
}

func TestNoEvent(t *testing.T) {
	es, _, _ := newEventSource(t)
	expectNoEvent(t, es)
}

func TestEndToEnd(t *testing.T) {
	es, ir, gm := newEventSource(t)

	ir.Scancode(0x1e)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeA, 'a', userinput.KeyModNone)

	ir.Scancode(0x9e)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeA, 'a', userinput.KeyModNone)

	ir.MouseMove(5, -3)

	var ev userinput.Event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventMouseMove)
	test.ExpectEquality(t, ev.Relative, image.Pt(5, -3))
	test.ExpectEquality(t, ev.Mouse, image.Pt(165, 97))
	test.ExpectEquality(t, gm.pos, image.Pt(165, 97))

	// delta has been drained
	expectNoEvent(t, es)
}

func TestPriority(t *testing.T) {
	es, ir, _ := newEventSource(t)

	ir.MouseButtons(ikbd.ButtonRight | ikbd.ButtonLeft)
	ir.MouseMove(1, 1)
	ir.Scancode(0x1e)

	order := []userinput.EventType{
		userinput.EventRButtonDown,
		userinput.EventLButtonDown,
		userinput.EventMouseMove,
		userinput.EventKeyDown,
	}

	for _, o := range order {
		var ev userinput.Event
		test.DemandSuccess(t, es.PollEvent(&ev))
		test.ExpectEquality(t, ev.Type, o)
	}
	expectNoEvent(t, es)

	// release both buttons. right button is reported first
	ir.MouseButtons(0)

	var ev userinput.Event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventRButtonUp)
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventLButtonUp)
	expectNoEvent(t, es)
}

func TestButtonPosition(t *testing.T) {
	es, ir, gm := newEventSource(t)
	gm.pos = image.Pt(10, 20)

	ir.MouseButtons(ikbd.ButtonLeft)

	var ev userinput.Event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventLButtonDown)
	test.ExpectEquality(t, ev.Mouse, image.Pt(10, 20))

	// button held. no further events
	expectNoEvent(t, es)
}

func TestShift(t *testing.T) {
	es, ir, _ := newEventSource(t)

	ir.Key(keymap.ScanLShift, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeLShift, 0, userinput.KeyModShift)

	ir.Key(0x1e, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeA, 'A', userinput.KeyModShift)
	ir.Key(0x1e, true)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeA, 'A', userinput.KeyModShift)

	ir.Key(keymap.ScanLShift, true)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeLShift, 0, userinput.KeyModNone)

	ir.Key(0x1e, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeA, 'a', userinput.KeyModNone)

	// right shift, ctrl and alt are also level sensitive
	ir.Key(keymap.ScanRShift, false)
	ir.Key(keymap.ScanCtrl, false)
	ir.Key(keymap.ScanAlt, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeRShift, 0, userinput.KeyModShift)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeLCtrl, 0, userinput.KeyModShift|userinput.KeyModCtrl)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeLAlt, 0, userinput.KeyModShift|userinput.KeyModCtrl|userinput.KeyModAlt)
	test.ExpectEquality(t, es.Modifiers(), userinput.KeyModShift|userinput.KeyModCtrl|userinput.KeyModAlt)

	ir.Key(keymap.ScanRShift, true)
	ir.Key(keymap.ScanCtrl, true)
	ir.Key(keymap.ScanAlt, true)
	for range 3 {
		var ev userinput.Event
		test.DemandSuccess(t, es.PollEvent(&ev))
	}
	test.ExpectEquality(t, es.Modifiers(), userinput.KeyModNone)
}

func TestCapsLock(t *testing.T) {
	es, ir, _ := newEventSource(t)

	ir.Key(keymap.ScanCapsLock, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeCapsLock, 0, userinput.KeyModCaps)

	// release doesn't affect the latch
	ir.Key(keymap.ScanCapsLock, true)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeCapsLock, 0, userinput.KeyModCaps)

	ir.Key(0x1e, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeA, 'A', userinput.KeyModCaps)

	// capslock table doesn't affect numbers
	ir.Key(0x02, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.Keycode1, '1', userinput.KeyModCaps)

	// shift takes priority over capslock
	ir.Key(keymap.ScanLShift, false)
	ir.Key(0x02, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeLShift, 0, userinput.KeyModCaps|userinput.KeyModShift)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeExclaim, '!', userinput.KeyModCaps|userinput.KeyModShift)
	ir.Key(keymap.ScanLShift, true)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeLShift, 0, userinput.KeyModCaps)

	// second press toggles capslock off
	ir.Key(keymap.ScanCapsLock, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeCapsLock, 0, userinput.KeyModNone)
	ir.Key(keymap.ScanCapsLock, true)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeCapsLock, 0, userinput.KeyModNone)

	ir.Key(0x1e, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeA, 'a', userinput.KeyModNone)
}

func TestControlKeyOverride(t *testing.T) {
	keys := []struct {
		scancode byte
		keycode  userinput.KeyCode
		ascii    uint16
	}{
		{keymap.ScanReturn, userinput.KeycodeReturn, userinput.ASCIIReturn},
		{keymap.ScanKPEnter, userinput.KeycodeKPEnter, userinput.ASCIIReturn},
		{keymap.ScanEsc, userinput.KeycodeEscape, userinput.ASCIIEscape},
		{keymap.ScanTab, userinput.KeycodeTab, userinput.ASCIITab},
		{keymap.ScanSpace, userinput.KeycodeSpace, userinput.ASCIISpace},
		{keymap.ScanBackspace, userinput.KeycodeBackspace, userinput.ASCIIBackspace},
		{keymap.ScanF1, userinput.KeycodeF1, userinput.ASCIIF1},
		{keymap.ScanF1 + 4, userinput.KeycodeF5, userinput.ASCIIF5},
		{keymap.ScanF10, userinput.KeycodeF10, userinput.ASCIIF10},
		{keymap.ScanShiftF1, userinput.KeycodeF11, userinput.ASCIIF11},
		{keymap.ScanShiftF2, userinput.KeycodeF12, userinput.ASCIIF12},
	}

	// the same result for every table
	tables := []struct {
		press byte
		mod   userinput.KeyMod
	}{
		{0, userinput.KeyModNone},
		{keymap.ScanLShift, userinput.KeyModShift},
		{keymap.ScanCapsLock, userinput.KeyModCaps},
	}

	for _, tb := range tables {
		es, ir, _ := newEventSource(t)
		if tb.press != 0 {
			ir.Key(tb.press, false)
			var ev userinput.Event
			test.DemandSuccess(t, es.PollEvent(&ev))
		}

		for _, k := range keys {
			ir.Key(k.scancode, false)
			expectKey(t, es, userinput.EventKeyDown, k.keycode, k.ascii, tb.mod)
		}
	}
}

func TestUnmappedScancode(t *testing.T) {
	es, ir, _ := newEventSource(t)

	ir.Key(keymap.ScanLShift, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeLShift, 0, userinput.KeyModShift)

	// 0x7e has no entry in any table
	ir.Key(0x7e, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeInvalid, 0, userinput.KeyModShift)
	ir.Key(0x7e, true)
	expectKey(t, es, userinput.EventKeyUp, userinput.KeycodeInvalid, 0, userinput.KeyModShift)

	test.ExpectEquality(t, es.Modifiers(), userinput.KeyModShift)
}

func TestWheel(t *testing.T) {
	es, ir, gm := newEventSource(t)
	gm.pos = image.Pt(1, 2)

	ir.Key(keymap.ScanWheelUp, false)
	ir.Key(keymap.ScanWheelUp, true)
	ir.Key(keymap.ScanWheelDown, false)
	ir.Key(keymap.ScanWheelDown, true)
	ir.Key(0x1e, false)

	var ev userinput.Event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventWheelUp)
	test.ExpectEquality(t, ev.Mouse, image.Pt(1, 2))

	// the release code is consumed without an event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventWheelDown)

	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeA, 'a', userinput.KeyModNone)

	// a lone release code produces nothing
	ir.Key(keymap.ScanWheelUp, true)
	expectNoEvent(t, es)
}

func TestPurgeMouse(t *testing.T) {
	es, ir, gm := newEventSource(t)

	ir.MouseMove(20, 20)
	es.PurgeMouseEvents()
	expectNoEvent(t, es)
	test.ExpectEquality(t, gm.pos, image.Pt(160, 100))
}

func TestMouseClamp(t *testing.T) {
	es, ir, gm := newEventSource(t)

	ir.MouseMove(-1000, 1000)

	var ev userinput.Event
	test.DemandSuccess(t, es.PollEvent(&ev))
	test.ExpectEquality(t, ev.Relative, image.Pt(-1000, 1000))
	test.ExpectEquality(t, ev.Mouse, image.Pt(0, 199))
	test.ExpectEquality(t, gm.pos, image.Pt(0, 199))
}

func TestKeymaps(t *testing.T) {
	es, _, _ := newEventSource(t)

	km := es.Keymaps()
	test.DemandEquality(t, len(km), 2)
	test.ExpectEquality(t, km[0].Name, "atari-events")
	test.ExpectEquality(t, km[1].Name, "mock")

	a, ok := es.Keymap().Match(userinput.KeyState{Keycode: userinput.KeycodeQ, Flags: userinput.KeyModCtrl})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a.ID, events.ActionQuit)
}

func TestLayoutChange(t *testing.T) {
	es, ir, _ := newEventSource(t)

	l, err := keymap.LayoutByName("de")
	test.DemandSuccess(t, err)
	es.SetTables(keymap.NewTables(l))

	// Y and Z are swapped on a German keyboard
	ir.Key(0x15, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeZ, 'z', userinput.KeyModNone)
	ir.Key(0x2c, false)
	expectKey(t, es, userinput.EventKeyDown, userinput.KeycodeY, 'y', userinput.KeyModNone)
}
