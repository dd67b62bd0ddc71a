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
	"github.com/jetsetilly/gopherst/userinput"
)

// Action is a named operation that can be triggered by one or more key
// combinations.
type Action struct {
	ID          string
	Description string

	// hardware input IDs. see InputSet
	Defaults []string
}

// Keymap is a named list of Actions.
type Keymap struct {
	Name        string
	Description string
	Actions     []Action
}

// Match returns the Action that the key state triggers, if any.
func (km *Keymap) Match(ks userinput.KeyState) (Action, bool) {
	id, ok := HardwareInputSet().ID(ks)
	if !ok {
		return Action{}, false
	}

	for _, a := range km.Actions {
		for _, d := range a.Defaults {
			if d == id {
				return a, true
			}
		}
	}

	return Action{}, false
}
