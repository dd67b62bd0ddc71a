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
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/paths"
	"github.com/jetsetilly/gopherst/prefs"
)

// Preferences for the EventSource.
type Preferences struct {
	es  *EventSource
	dsk *prefs.Disk

	// name of the keyboard layout. see keymap.Layouts()
	Layout prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const defaultLayout = "us"

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Changing the Layout preference rebuilds the keyboard
// tables of the EventSource.
func NewPreferences(es *EventSource) (*Preferences, error) {
	p := &Preferences{es: es}

	err := p.Layout.Set(defaultLayout)
	if err != nil {
		return nil, err
	}

	p.Layout.SetHookPre(func(v prefs.Value) error {
		_, err := keymap.LayoutByName(v.(string))
		return err
	})

	p.Layout.SetHookPost(func(v prefs.Value) error {
		l, err := keymap.LayoutByName(v.(string))
		if err != nil {
			return err
		}
		p.es.SetTables(keymap.NewTables(l))
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("events.layout", &p.Layout)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
