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

package termhost

import (
	"image"

	"github.com/jetsetilly/gopherst/host/termhost/ansi"
)

// upper half block. the pen colours the top half of the character cell and
// the paper colours the bottom half
const halfBlock = "▀"

// fit returns the number of character cells needed to show an image of the
// given size in an area of cols by rows, keeping the aspect ratio. Each cell
// shows two pixels vertically.
func fit(sz image.Point, cols int, rows int) (int, int) {
	if sz.X <= 0 || sz.Y <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	if cols*sz.Y > rows*2*sz.X {
		cols = max(1, rows*2*sz.X/sz.Y)
	} else {
		rows = max(1, cols*sz.Y/(2*sz.X))
	}
	return cols, rows
}

// render appends the image, scaled to cols by rows character cells, to b. The
// sequence starts by moving the cursor to the top left of the terminal.
func render(b []byte, img *image.RGBA, cols int, rows int) []byte {
	b = append(b, ansi.CursorHome...)

	sz := img.Bounds().Size()
	if cols <= 0 || rows <= 0 || sz.X == 0 || sz.Y == 0 {
		return b
	}

	first := true
	var prevTop, prevBot [4]uint8

	for cy := range rows {
		yt := img.Bounds().Min.Y + (cy*2)*sz.Y/(rows*2)
		yb := img.Bounds().Min.Y + (cy*2+1)*sz.Y/(rows*2)
		for cx := range cols {
			x := img.Bounds().Min.X + cx*sz.X/cols
			top := img.RGBAAt(x, yt)
			bot := img.RGBAAt(x, yb)

			t := [4]uint8{top.R, top.G, top.B, 255}
			u := [4]uint8{bot.R, bot.G, bot.B, 255}
			if first || t != prevTop || u != prevBot {
				b = ansi.TrueColor(b, top, bot)
				prevTop, prevBot = t, u
				first = false
			}
			b = append(b, halfBlock...)
		}
		b = append(b, ansi.NormalPen...)
		b = append(b, '\r', '\n')
		first = true
	}

	return b
}
