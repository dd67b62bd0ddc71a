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

package graphics

import (
	"fmt"

	"github.com/jetsetilly/gopherst/graphics/dirty"
	"github.com/jetsetilly/gopherst/paths"
	"github.com/jetsetilly/gopherst/prefs"
)

// Preferences for the graphics manager.
type Preferences struct {
	m   *Manager
	dsk *prefs.Disk

	// the number of dirty rectangles tracked before a screen is redrawn in
	// its entirety
	DirtyThreshold prefs.Int

	// the fraction of a screen that a single dirty rectangle must cover
	// for the screen to be redrawn in its entirety
	DirtyFraction prefs.Float

	// wait for the vertical blank before showing a screen
	WaitVBL prefs.Bool

	// correct the aspect ratio of low resolution screens when displaying
	// on the host
	Aspect prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func newPreferences(m *Manager) (*Preferences, error) {
	p := &Preferences{m: m}
	p.SetDefaults()

	p.DirtyThreshold.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("dirty threshold must be at least 1")
		}
		return nil
	})
	p.DirtyThreshold.SetHookPost(func(v prefs.Value) error {
		p.m.applyDirtyPrefsAll()
		return nil
	})

	p.DirtyFraction.SetHookPre(func(v prefs.Value) error {
		f := v.(float64)
		if f < 0.0 || f > 1.0 {
			return fmt.Errorf("dirty fraction must be between 0.0 and 1.0")
		}
		return nil
	})
	p.DirtyFraction.SetHookPost(func(v prefs.Value) error {
		p.m.applyDirtyPrefsAll()
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

	err = p.dsk.Add("graphics.dirty.threshold", &p.DirtyThreshold)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.dirty.fraction", &p.DirtyFraction)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.waitvbl", &p.WaitVBL)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("graphics.aspect", &p.Aspect)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all graphics settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.DirtyThreshold.Set(dirty.DefaultThreshold)
	_ = p.DirtyFraction.Set(dirty.DefaultLargeFraction)
	_ = p.WaitVBL.Set(true)
	_ = p.Aspect.Set(true)
}

// Load graphics preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current graphics preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

func (m *Manager) applyDirtyPrefs(scr *screen) {
	if m.prefs == nil {
		return
	}
	scr.dirty.Threshold = m.prefs.DirtyThreshold.Get().(int)
	scr.dirty.LargeFraction = m.prefs.DirtyFraction.Get().(float64)
}

func (m *Manager) applyDirtyPrefsAll() {
	for _, scr := range m.screens {
		if scr != nil {
			m.applyDirtyPrefs(scr)
		}
	}
}
