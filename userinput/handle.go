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

// HandleInput is implemented by the consumer of input events. The engine in
// the demo package is an example.
type HandleInput interface {
	HandleEvent(ev Event) error
}

// HandleUserInput forwards the Event to the HandleInput implementation.
// Returns true if the event is a quit request, in which case the event is not
// forwarded.
//
// A quit request is either an EventQuit or the Ctrl+Q key combination.
func HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	switch ev.Type {
	case EventNone:
		return false, nil
	case EventQuit:
		return true, nil
	case EventKeyDown:
		if ev.Kbd.Keycode == KeycodeQ && ev.Kbd.Flags&KeyModCtrl == KeyModCtrl {
			return true, nil
		}
	}

	return false, handle.HandleEvent(ev)
}
