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

import (
	"fmt"
	"image"
)

// EventType identifies the kind of input event.
type EventType int

// List of valid EventType values.
const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventLButtonDown
	EventLButtonUp
	EventRButtonDown
	EventRButtonUp
	EventWheelUp
	EventWheelDown
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventMouseMove:
		return "mousemove"
	case EventLButtonDown:
		return "lbuttondown"
	case EventLButtonUp:
		return "lbuttonup"
	case EventRButtonDown:
		return "rbuttondown"
	case EventRButtonUp:
		return "rbuttonup"
	case EventWheelUp:
		return "wheelup"
	case EventWheelDown:
		return "wheeldown"
	case EventQuit:
		return "quit"
	}
	return fmt.Sprintf("unknown event (%d)", int(t))
}

// KeyMod is a bitfield of active modifier keys.
type KeyMod int

// List of KeyMod flags.
const (
	KeyModNone  KeyMod = 0
	KeyModCtrl  KeyMod = 1 << 0
	KeyModAlt   KeyMod = 1 << 1
	KeyModShift KeyMod = 1 << 2
	KeyModCaps  KeyMod = 1 << 5
)

func (m KeyMod) String() string {
	if m == KeyModNone {
		return "none"
	}

	s := ""
	if m&KeyModCtrl == KeyModCtrl {
		s += "+ctrl"
	}
	if m&KeyModAlt == KeyModAlt {
		s += "+alt"
	}
	if m&KeyModShift == KeyModShift {
		s += "+shift"
	}
	if m&KeyModCaps == KeyModCaps {
		s += "+caps"
	}
	if len(s) == 0 {
		return "none"
	}
	return s[1:]
}

// KeyState is the keyboard part of an Event.
type KeyState struct {
	Keycode KeyCode
	ASCII   uint16
	Flags   KeyMod
}

func (k KeyState) String() string {
	a := "."
	if k.ASCII >= 32 && k.ASCII < 127 {
		a = string(rune(k.ASCII))
	}
	return fmt.Sprintf("keycode=%d ascii=%d (%s) mod=%s", k.Keycode, k.ASCII, a, k.Flags)
}

// Event is a single input event. Only the fields relevant to the Type are
// meaningful.
type Event struct {
	Type EventType

	// keyboard events only
	Kbd KeyState

	// absolute mouse position. valid for all mouse events
	Mouse image.Point

	// relative movement. valid for EventMouseMove only
	Relative image.Point
}

func (ev Event) String() string {
	switch ev.Type {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s: %s", ev.Type, ev.Kbd)
	case EventMouseMove:
		return fmt.Sprintf("%s: %d,%d (%+d,%+d)", ev.Type, ev.Mouse.X, ev.Mouse.Y, ev.Relative.X, ev.Relative.Y)
	case EventLButtonDown, EventLButtonUp, EventRButtonDown, EventRButtonUp, EventWheelUp, EventWheelDown:
		return fmt.Sprintf("%s: %d,%d", ev.Type, ev.Mouse.X, ev.Mouse.Y)
	}
	return ev.Type.String()
}
