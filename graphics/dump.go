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
	"image"
	"io"

	"github.com/bradleyjkemp/memviz"
)

type screenState struct {
	ID            string
	Base          uint32
	Offset        image.Point
	Size          image.Point
	FullRedraw    bool
	Dirty         []image.Rectangle
	OldCursorRect image.Rectangle
}

type cursorState struct {
	Visible  bool
	Position image.Point
	Size     image.Point
}

type managerState struct {
	Hardware       string
	Current        State
	Pending        State
	InTransaction  bool
	Resolution     image.Point
	OverlayVisible bool
	Screens        []*screenState
	Cursor         cursorState
	Stats          Stats
}

// DumpState writes a graph of the graphics manager state in the DOT format.
func (m *Manager) DumpState(w io.Writer) {
	s := &managerState{
		Hardware:       m.hw.Name(),
		Current:        m.current,
		Pending:        m.pending,
		InTransaction:  m.inTransaction,
		Resolution:     m.res,
		OverlayVisible: m.overlayVisible,
		Cursor: cursorState{
			Visible:  m.cursor.Visible(),
			Position: m.cursor.Position(),
			Size:     m.cursor.Size(),
		},
		Stats: m.stats,
	}

	for i, scr := range m.screens {
		if scr == nil {
			continue
		}
		s.Screens = append(s.Screens, &screenState{
			ID:            ScreenID(i).String(),
			Base:          scr.base(),
			Offset:        scr.offset,
			Size:          scr.view.Bounds().Size(),
			FullRedraw:    scr.dirty.FullRedraw(),
			Dirty:         append([]image.Rectangle{}, scr.dirty.Rects()...),
			OldCursorRect: scr.oldCursorRect,
		})
	}

	memviz.Map(w, s)
}
