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

package events

import (
	"image"

	"github.com/jetsetilly/gopherst/hardware/ikbd"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
	"github.com/jetsetilly/gopherst/userinput"
)

// GraphicsManager is the part of the graphics manager that the EventSource
// needs. The mouse position is owned by the graphics manager.
type GraphicsManager interface {
	MousePosition() image.Point
	UpdateMousePosition(dx int, dy int)
	Keymap() *keymap.Keymap
}

// the latched state of the modifier keys
type modifiers struct {
	ctrl   bool
	alt    bool
	lshift bool
	rshift bool
	caps   bool
}

func (m modifiers) flags() userinput.KeyMod {
	var f userinput.KeyMod
	if m.ctrl {
		f |= userinput.KeyModCtrl
	}
	if m.alt {
		f |= userinput.KeyModAlt
	}
	if m.lshift || m.rshift {
		f |= userinput.KeyModShift
	}
	if m.caps {
		f |= userinput.KeyModCaps
	}
	return f
}

// EventSource turns the shared interrupt state into userinput.Events.
type EventSource struct {
	poll   *ikbd.Poll
	tables *keymap.Tables
	gm     GraphicsManager

	mod modifiers

	// the button state at the time of the most recent button event
	lmb bool
	rmb bool

	keymap keymap.Keymap
}

// NewEventSource is the preferred method of initialisation for the
// EventSource type.
func NewEventSource(poll *ikbd.Poll, tables *keymap.Tables, gm GraphicsManager) *EventSource {
	return &EventSource{
		poll:   poll,
		tables: tables,
		gm:     gm,
		keymap: keymap.Keymap{
			Name:        "atari-events",
			Description: "Atari event source",
			Actions: []keymap.Action{
				{ID: ActionQuit, Description: "Quit", Defaults: []string{"C+q"}},
				{ID: ActionMenu, Description: "Global main menu", Defaults: []string{"C+F5"}},
				{ID: ActionMute, Description: "Toggle mute", Defaults: []string{"C+u"}},
			},
		},
	}
}

// List of action IDs in the EventSource keymap.
const (
	ActionQuit = "QUIT"
	ActionMenu = "MENU"
	ActionMute = "MUTE"
)

// SetTables replaces the keyboard tables. Modifier state is not affected.
func (es *EventSource) SetTables(tables *keymap.Tables) {
	es.tables = tables
}

// Tables returns the current keyboard tables.
func (es *EventSource) Tables() *keymap.Tables {
	return es.tables
}

// Modifiers returns the current state of the modifier latches.
func (es *EventSource) Modifiers() userinput.KeyMod {
	return es.mod.flags()
}

// Keymap returns the static keymap of the EventSource.
func (es *EventSource) Keymap() *keymap.Keymap {
	return &es.keymap
}

// Keymaps returns the static keymap of the EventSource and the keymap of the
// graphics manager.
func (es *EventSource) Keymaps() []*keymap.Keymap {
	km := []*keymap.Keymap{&es.keymap}
	if gkm := es.gm.Keymap(); gkm != nil {
		km = append(km, gkm)
	}
	return km
}

// PurgeMouseEvents discards any accumulated mouse movement.
func (es *EventSource) PurgeMouseEvents() {
	es.poll.PurgeMouse()
}

// PollEvent fills in ev with the next input event. Returns false if there is
// no event.
func (es *EventSource) PollEvent(ev *userinput.Event) bool {
	*ev = userinput.Event{}

	buttons := es.poll.Buttons()
	rmb := buttons&ikbd.ButtonRight == ikbd.ButtonRight
	lmb := buttons&ikbd.ButtonLeft == ikbd.ButtonLeft

	switch {
	case rmb && !es.rmb:
		es.rmb = true
		ev.Type = userinput.EventRButtonDown
		ev.Mouse = es.gm.MousePosition()
		return true
	case !rmb && es.rmb:
		es.rmb = false
		ev.Type = userinput.EventRButtonUp
		ev.Mouse = es.gm.MousePosition()
		return true
	case lmb && !es.lmb:
		es.lmb = true
		ev.Type = userinput.EventLButtonDown
		ev.Mouse = es.gm.MousePosition()
		return true
	case !lmb && es.lmb:
		es.lmb = false
		ev.Type = userinput.EventLButtonUp
		ev.Mouse = es.gm.MousePosition()
		return true
	}

	if es.poll.HasDelta() {
		dx, dy := es.poll.TakeDelta()
		if dx != 0 || dy != 0 {
			es.gm.UpdateMousePosition(dx, dy)
			ev.Type = userinput.EventMouseMove
			ev.Mouse = es.gm.MousePosition()
			ev.Relative = image.Pt(dx, dy)
			return true
		}
	}

	for {
		b, ok := es.poll.Scancode()
		if !ok {
			return false
		}

		released := b&ikbd.ReleaseFlag == ikbd.ReleaseFlag
		scancode := b & ikbd.ScancodeMask

		if scancode == keymap.ScanWheelUp || scancode == keymap.ScanWheelDown {
			// only the make code of a wheel "key" produces an event
			if released {
				continue
			}
			if scancode == keymap.ScanWheelUp {
				ev.Type = userinput.EventWheelUp
			} else {
				ev.Type = userinput.EventWheelDown
			}
			ev.Mouse = es.gm.MousePosition()
			return true
		}

		es.decodeKey(scancode, released, ev)
		return true
	}
}

func (es *EventSource) decodeKey(scancode byte, released bool, ev *userinput.Event) {
	switch scancode {
	case keymap.ScanCtrl:
		es.mod.ctrl = !released
	case keymap.ScanLShift:
		es.mod.lshift = !released
	case keymap.ScanRShift:
		es.mod.rshift = !released
	case keymap.ScanAlt:
		es.mod.alt = !released
	case keymap.ScanCapsLock:
		if !released {
			es.mod.caps = !es.mod.caps
		}
	}

	table := keymap.TableUnshifted
	if es.mod.lshift || es.mod.rshift {
		table = keymap.TableShifted
	} else if es.mod.caps {
		table = keymap.TableCapsLock
	}

	ascii := uint16(es.tables.ASCII(scancode, table))
	keycode := es.tables.Keycode(scancode)

	// the ASCII tables don't describe control keys in the way that the
	// portable event model expects
	switch keycode {
	case userinput.KeycodeBackspace:
		ascii = userinput.ASCIIBackspace
	case userinput.KeycodeTab:
		ascii = userinput.ASCIITab
	case userinput.KeycodeReturn, userinput.KeycodeKPEnter:
		ascii = userinput.ASCIIReturn
	case userinput.KeycodeEscape:
		ascii = userinput.ASCIIEscape
	case userinput.KeycodeSpace:
		ascii = userinput.ASCIISpace
	default:
		if a, ok := userinput.ASCIIForFunctionKey(keycode); ok {
			ascii = a
		}
	}

	if keycode == userinput.KeycodeInvalid {
		keycode = es.tables.KeycodeForASCII(ascii)
		if keycode == userinput.KeycodeInvalid {
			logger.Logf(logger.Allow, "events", "no keycode for scancode %#02x", scancode)
		}
	}

	if released {
		ev.Type = userinput.EventKeyUp
	} else {
		ev.Type = userinput.EventKeyDown
	}
	ev.Kbd = userinput.KeyState{
		Keycode: keycode,
		ASCII:   ascii,
		Flags:   es.mod.flags(),
	}
	ev.Mouse = es.gm.MousePosition()
}
