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

// Package events decodes the state shared with the keyboard/mouse interrupt
// into portable input events.
//
// PollEvent() produces at most one event per call. Conditions are checked in
// a strict order of priority and the first match is returned:
//
//	right mouse button pressed
//	right mouse button released
//	left mouse button pressed
//	left mouse button released
//	mouse movement
//	scancode (mouse wheel or keyboard)
//
// Conditions that are not reported remain pending and will be reported by
// subsequent calls. Mouse movement between calls is summed and reported as a
// single event.
//
// The EventSource tracks the state of the modifier keys itself. Ctrl, Alt and
// the two Shift keys are active while held. CapsLock is toggled each time it
// is pressed.
package events
