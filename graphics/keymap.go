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
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
)

// List of action IDs in the graphics manager keymap.
const (
	ActionWaitVBL = "WAITVBL"
	ActionAspect  = "ASPECT"
	ActionOverlay = "OVERLAY"
)

func newKeymap() keymap.Keymap {
	return keymap.Keymap{
		Name:        "atari-graphics",
		Description: "Atari graphics manager",
		Actions: []keymap.Action{
			{ID: ActionWaitVBL, Description: "Toggle wait for vertical blank", Defaults: []string{"C+A+v"}},
			{ID: ActionAspect, Description: "Toggle aspect ratio correction", Defaults: []string{"C+A+a"}},
			{ID: ActionOverlay, Description: "Toggle overlay", Defaults: []string{"C+A+o"}},
		},
	}
}

// HandleAction performs the action from the graphics manager keymap. Returns
// false if the action is not recognised.
func (m *Manager) HandleAction(id string) bool {
	switch id {
	case ActionWaitVBL:
		v := !m.prefs.WaitVBL.Get().(bool)
		err := m.prefs.WaitVBL.Set(v)
		if err != nil {
			logger.Log(logger.Allow, "graphics", err)
		}
		logger.Logf(logger.Allow, "graphics", "wait for vblank: %v", v)
	case ActionAspect:
		v := !m.prefs.Aspect.Get().(bool)
		err := m.prefs.Aspect.Set(v)
		if err != nil {
			logger.Log(logger.Allow, "graphics", err)
		}
		logger.Logf(logger.Allow, "graphics", "aspect correction: %v", v)
	case ActionOverlay:
		if m.overlayVisible {
			m.HideOverlay()
		} else {
			m.ShowOverlay()
		}
	default:
		return false
	}
	return true
}
